package show

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Play runs one narrated playthrough from the intro to the prize reveal.
// Declining the intro or escaping the door choice ends the round with a
// message and a nil error.
//
// Postcondition: Returns nil when the round ends, or an error on I/O failure or
// context cancellation.
func (h *Host) Play(ctx context.Context) error {
	state, err := h.Intro(ctx)
	if err != nil {
		return fmt.Errorf("intro: %w", err)
	}
	if state != Confirmed {
		h.say(h.script.Restart, "")
		return nil
	}

	r := h.dealer.Open()
	logger := h.logger.With(zap.Stringer("round", r.ID))
	logger.Info("round started")

	chosen, err := h.ChooseDoor(ctx)
	if errors.Is(err, ErrEscaped) {
		logger.Info("round abandoned")
		h.say(h.script.RefuseToPlay)
		return nil
	}
	if err != nil {
		return fmt.Errorf("choosing door: %w", err)
	}
	h.say("", fmt.Sprintf("You've chosen %s.", h.door(chosen)))

	h.dealer.Reveal(&r, chosen)
	if err := h.RevealGoat(ctx, r); err != nil {
		return fmt.Errorf("revealing goat: %w", err)
	}

	h.say(
		"",
		"Now you have an opportunity.",
		fmt.Sprintf("You can Stay and keep the prize behind %s, or you can Switch to %s.",
			h.door(r.Chosen), h.door(r.Remaining)),
		"",
	)
	decision, err := h.AskSwitch(ctx, r.Chosen, r.Revealed)
	if err != nil {
		return fmt.Errorf("asking to switch: %w", err)
	}
	prize := h.dealer.Settle(&r, decision)

	if err := h.Announce(ctx, r); err != nil {
		return fmt.Errorf("announcing prize: %w", err)
	}
	logger.Info("round finished",
		zap.Stringer("decision", decision),
		zap.String("prize", string(prize)),
	)
	return nil
}
