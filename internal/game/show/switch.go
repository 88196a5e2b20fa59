package show

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/cory-johannsen/montyhall/internal/game/montyhall"
)

// AskSwitch offers the contestant the remaining door. "y" switches and "n"
// stays in any case; other alphanumeric answers are asked again with clearer
// wording; an empty or non-alphanumeric answer, or end of input, stays with a notice.
//
// Precondition: chosen and revealed are distinct valid doors.
// Postcondition: Returns a Decision, or an error on I/O failure.
func (h *Host) AskSwitch(ctx context.Context, chosen, revealed montyhall.Door) (montyhall.Decision, error) {
	remaining := montyhall.Remaining(chosen, revealed)

	if err := h.pacing.Pause(ctx, h.pacing.Beat); err != nil {
		return montyhall.Stay, err
	}

	prompt := fmt.Sprintf("Would you like to switch to %s or stay with %s? Type Y to switch or N to stay.\n",
		h.door(remaining), h.door(chosen))
	for {
		raw, err := h.ask(ctx, prompt)
		if err != nil && !errors.Is(err, io.EOF) {
			return montyhall.Stay, err
		}
		decision, verdict := montyhall.ClassifyDecision(raw)
		switch verdict {
		case montyhall.Accepted:
			h.logger.Debug("switch decision", zap.Stringer("decision", decision))
			return decision, nil
		case montyhall.Missing:
			h.say(fmt.Sprintf("No user input detected. Let's assume you stay with %s.", h.door(chosen)))
			h.logger.Debug("switch decision missing", zap.String("input", raw))
			return montyhall.Stay, nil
		}
		prompt = fmt.Sprintf("Input out of range. Please type Y to switch to %s or type N to stay with %s. ",
			h.door(remaining), h.door(chosen))
	}
}
