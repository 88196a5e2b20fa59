package show

import (
	"context"
	"errors"
	"io"
	"strings"

	"go.uber.org/zap"
)

// IntroState is a state of the onboarding gate.
type IntroState int

const (
	IntroStart IntroState = iota
	AwaitingReady
	Confirmed
	Cancelled
)

func (s IntroState) String() string {
	switch s {
	case IntroStart:
		return "start"
	case AwaitingReady:
		return "awaiting_ready"
	case Confirmed:
		return "confirmed"
	default:
		return "cancelled"
	}
}

// Intro prints the rules and asks whether the player is ready.
//
// The first answer is lower-cased. An "n" earns one reconsider prompt. While
// the answer is neither "y" nor "n", ladder lines are shown in order, one per
// answer; once the ladder runs out the last answer stands. Only an exact "y"
// confirms; anything else prints the goodbye and cancels. End of input cancels.
//
// Postcondition: Returns Confirmed or Cancelled, or an error on I/O failure.
func (h *Host) Intro(ctx context.Context) (IntroState, error) {
	state := IntroStart
	h.logger.Debug("intro", zap.Stringer("state", state))

	h.say(h.script.Welcome...)

	state = AwaitingReady
	h.logger.Debug("intro", zap.Stringer("state", state))

	ready, err := h.ask(ctx, h.script.ReadyPrompt+"\n")
	if err == nil {
		ready = strings.ToLower(ready)
		if ready == "n" {
			ready, err = h.ask(ctx, h.script.ReconsiderPrompt+"\n")
		}
	}

	attempts := 0
	for err == nil && ready != "y" && ready != "n" && attempts < len(h.script.Ladder) {
		ready, err = h.ask(ctx, h.script.Ladder[attempts]+" "+h.script.CallToAction+"\n")
		attempts++
	}

	switch {
	case errors.Is(err, io.EOF):
		ready = ""
	case err != nil:
		return Cancelled, err
	}

	if ready != "y" {
		state = Cancelled
		h.say(h.script.Goodbye, "")
	} else {
		state = Confirmed
	}
	h.logger.Debug("intro",
		zap.Stringer("state", state),
		zap.Int("ladder_attempts", attempts),
	)
	return state, nil
}
