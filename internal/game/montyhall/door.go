// Package montyhall implements the game-state logic of the Monty Hall puzzle:
// prize placement, the host's goat-reveal rule, and stay/switch resolution.
package montyhall

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrInvalidDoor is returned when input does not name one of the three doors.
var ErrInvalidDoor = errors.New("montyhall: invalid door")

// Door identifies one of the three closed doors on stage.
//
// Invariant: a valid Door is one of Door1, Door2, Door3.
type Door int

const (
	Door1 Door = iota + 1
	Door2
	Door3
)

// Doors lists every door in stage order.
var Doors = [...]Door{Door1, Door2, Door3}

// Valid reports whether d is one of the three doors.
func (d Door) Valid() bool {
	return d >= Door1 && d <= Door3
}

// ID returns the internal identifier of d, e.g. "door_2".
func (d Door) ID() string {
	return "door_" + strconv.Itoa(int(d))
}

// String returns the display label of d, e.g. "Door #2".
func (d Door) String() string {
	return FormatDoor(d.ID())
}

// FormatDoor converts an internal door identifier into its display label.
// Underscores become " #", the first letter is upper-cased and the rest lower-cased.
//
// Postcondition: FormatDoor("door_2") == "Door #2".
func FormatDoor(id string) string {
	s := strings.ReplaceAll(id, "_", " #")
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}

// ParseDoorNumber converts a player's numeric answer into a Door.
// Leading zeros are accepted ("02" is Door2).
//
// Postcondition: Returns a valid Door or an error wrapping ErrInvalidDoor.
func ParseDoorNumber(s string) (Door, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidDoor, s)
	}
	d := Door(n)
	if !d.Valid() {
		return 0, fmt.Errorf("%w: %d is out of range 1-3", ErrInvalidDoor, n)
	}
	return d, nil
}

// IsAlnum reports whether s is non-empty and made only of letters and digits.
// Any other input typed at a prompt is treated as the player backing out.
func IsAlnum(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
