package show

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/cory-johannsen/montyhall/internal/game/montyhall"
)

const (
	doorPrompt   = "Choose a door. Number 1, 2, or 3? "
	doorReprompt = "Input out of range. Please choose a number 1-3. "
)

// ChooseDoor asks for the contestant's first door until a valid number is given.
// An answer that is not alphanumeric, or end of input, is an escape.
//
// Postcondition: Returns a valid Door, an error wrapping ErrEscaped, or an I/O error.
func (h *Host) ChooseDoor(ctx context.Context) (montyhall.Door, error) {
	prompt := doorPrompt
	for reprompts := 0; ; reprompts++ {
		raw, err := h.ask(ctx, prompt)
		if errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("%w: end of input", ErrEscaped)
		}
		if err != nil {
			return 0, err
		}
		if !montyhall.IsAlnum(raw) {
			h.logger.Debug("door choice escaped", zap.String("input", raw))
			return 0, fmt.Errorf("%w: %q", ErrEscaped, raw)
		}
		d, err := montyhall.ParseDoorNumber(raw)
		if err == nil {
			h.logger.Debug("door chosen",
				zap.String("door", d.ID()),
				zap.Int("reprompts", reprompts),
			)
			return d, nil
		}
		prompt = doorReprompt
	}
}
