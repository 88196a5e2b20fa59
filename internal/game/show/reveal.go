package show

import (
	"context"
	"fmt"
	"strings"

	"github.com/cory-johannsen/montyhall/internal/console"
	"github.com/cory-johannsen/montyhall/internal/game/montyhall"
)

// RevealGoat narrates the host opening r.Revealed.
//
// Precondition: r.Revealed is set.
func (h *Host) RevealGoat(ctx context.Context, r montyhall.Round) error {
	h.say("", fmt.Sprintf("We're now going to reveal what's behind %s.", h.door(r.Revealed)))
	if err := h.pacing.Pause(ctx, h.pacing.Beat); err != nil {
		return err
	}
	for i := 0; i < 3; i++ {
		h.say("...")
		if err := h.pacing.Pause(ctx, h.pacing.Beat); err != nil {
			return err
		}
	}
	h.say(h.term.Style(console.Yellow, "A goat!"))
	return nil
}

// Announce narrates the outcome of a settled round: the stay or switch framing,
// the prize behind the final door and, on a loss, where the car was.
//
// Precondition: r.Final is set.
func (h *Host) Announce(ctx context.Context, r montyhall.Round) error {
	decision := r.Decision()
	conj, prep := "and", "with "+h.door(r.Final)
	if decision == montyhall.Switch {
		conj, prep = "but", "to "+h.door(r.Final)
	}

	h.say(
		"",
		fmt.Sprintf("So you originally chose %s, %s you've decided to %s %s.",
			h.door(r.Chosen), conj, strings.ToUpper(decision.String()), prep),
		fmt.Sprintf("We've already revealed that there was a goat behind %s.", h.door(r.Revealed)),
		fmt.Sprintf("Let's see if you made the right decision! We can now reveal that behind %s is a...", h.door(r.Final)),
	)
	if err := h.pacing.Pause(ctx, h.pacing.Suspense); err != nil {
		return err
	}
	for i := 0; i < 3; i++ {
		if err := h.pacing.Pause(ctx, h.pacing.Drumroll); err != nil {
			return err
		}
		h.say("...")
	}
	if err := h.pacing.Pause(ctx, h.pacing.Drumroll); err != nil {
		return err
	}

	prize := r.Prize()
	color := console.BrightRed
	if prize == montyhall.Car {
		color = console.BrightGreen
	}
	h.say("", h.term.Style(console.Bold+color, strings.ToUpper(string(prize))+"!"), "")

	if prize == montyhall.Car {
		h.say(fmt.Sprintf("You made the right decision to %s %s. You won!", decision, prep), "")
		return nil
	}
	h.say(
		fmt.Sprintf("Oh no! You shouldn't have %s %s.", decision.Past(), prep),
		fmt.Sprintf("The car was behind %s. Better luck next time...", h.door(r.Assignment.CarDoor())),
		"",
	)
	return nil
}
