// Package show runs the narrated, interactive Monty Hall playthrough: the
// onboarding gate, the door and switch prompts, and the themed reveals.
package show

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/cory-johannsen/montyhall/internal/console"
	"github.com/cory-johannsen/montyhall/internal/game/montyhall"
)

// ErrEscaped is returned when the player backs out of choosing a door.
// It is a terminal outcome of the round, not a failure.
var ErrEscaped = errors.New("show: player escaped")

// Host narrates one playthrough on a terminal.
type Host struct {
	term   *console.Terminal
	dealer *montyhall.Dealer
	script Script
	pacing Pacing
	logger *zap.Logger
}

// NewHost creates a Host.
//
// Precondition: term, dealer and logger must be non-nil; script must be valid.
func NewHost(term *console.Terminal, dealer *montyhall.Dealer, script Script, pacing Pacing, logger *zap.Logger) *Host {
	return &Host{
		term:   term,
		dealer: dealer,
		script: script,
		pacing: pacing,
		logger: logger,
	}
}

func (h *Host) say(lines ...string) {
	for _, l := range lines {
		_ = h.term.WriteLine(l)
	}
}

// ask prompts and reads one answer. End of input is returned as io.EOF with
// an empty answer; other read failures are wrapped.
func (h *Host) ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	answer, err := h.term.Ask(prompt)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return answer, nil
}

func (h *Host) door(d montyhall.Door) string {
	return h.term.Style(console.BrightWhite, d.String())
}
