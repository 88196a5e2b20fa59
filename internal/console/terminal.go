package console

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"sync"
)

const esc = 0x1b

// Terminal reads player answers line by line and writes narration.
type Terminal struct {
	reader *bufio.Reader
	out    io.Writer
	color  bool
	mu     sync.Mutex
}

// NewTerminal wraps in and out. When color is false, Style returns text unchanged.
//
// Precondition: in and out must be non-nil.
func NewTerminal(in io.Reader, out io.Writer, color bool) *Terminal {
	return &Terminal{
		reader: bufio.NewReaderSize(in, 4096),
		out:    out,
		color:  color,
	}
}

// ReadLine reads one line of input without its line terminator. Control
// characters other than tab and escape are dropped.
//
// Postcondition: Returns the line, or io.EOF once input is exhausted and no
// partial line is pending.
func (t *Terminal) ReadLine() (string, error) {
	var line bytes.Buffer
	for {
		b, err := t.reader.ReadByte()
		if err != nil {
			if err == io.EOF && line.Len() > 0 {
				return line.String(), nil
			}
			return line.String(), err
		}

		if b == '\n' {
			break
		}
		if b == '\r' {
			next, err := t.reader.Peek(1)
			if err == nil && len(next) > 0 && next[0] == '\n' {
				_, _ = t.reader.ReadByte()
			}
			break
		}

		if b < 32 && b != '\t' && b != esc {
			continue
		}

		line.WriteByte(b)
	}
	return line.String(), nil
}

// Ask writes prompt and reads the answer.
func (t *Terminal) Ask(prompt string) (string, error) {
	if err := t.WritePrompt(prompt); err != nil {
		return "", err
	}
	return t.ReadLine()
}

// WriteLine writes text followed by a newline.
func (t *Terminal) WriteLine(text string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, err := fmt.Fprintln(t.out, text)
	return err
}

// WritePrompt writes text without a trailing newline.
func (t *Terminal) WritePrompt(text string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, err := fmt.Fprint(t.out, text)
	return err
}

// Style colorizes text when the terminal has color enabled.
func (t *Terminal) Style(color, text string) string {
	if !t.color {
		return text
	}
	return Colorize(color, text)
}
