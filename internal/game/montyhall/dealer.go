package montyhall

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrUnrecognizedDecision is returned by Trial when the supplied decision is
// alphanumeric but neither "y" nor "n". A silent trial has no player to re-ask.
var ErrUnrecognizedDecision = errors.New("montyhall: decision must be y or n")

// Dealer runs the game logic for rounds and logs every step at debug level.
type Dealer struct {
	picker Picker
	logger *zap.Logger
}

// NewDealer creates a Dealer that draws from picker and logs to logger.
//
// Precondition: picker and logger must be non-nil.
func NewDealer(picker Picker, logger *zap.Logger) *Dealer {
	return &Dealer{picker: picker, logger: logger}
}

// Open starts a round with a fresh ID and freshly hidden prizes.
//
// Postcondition: r.Assignment.Valid(); no doors are set.
func (d *Dealer) Open() Round {
	r := Round{ID: uuid.New(), Assignment: HidePrizes(d.picker)}
	d.logger.Debug("prizes hidden",
		zap.Stringer("round", r.ID),
		zap.String("car", r.Assignment.CarDoor().ID()),
	)
	return r
}

// Reveal records chosen on r and opens a goat door.
//
// Precondition: chosen.Valid().
// Postcondition: r.Chosen, r.Revealed and r.Remaining are set.
func (d *Dealer) Reveal(r *Round, chosen Door) {
	r.Chosen = chosen
	r.Revealed, r.Remaining = RevealGoat(r.Assignment, chosen, d.picker)
	d.logger.Debug("goat revealed",
		zap.Stringer("round", r.ID),
		zap.String("chosen", r.Chosen.ID()),
		zap.String("revealed", r.Revealed.ID()),
		zap.String("remaining", r.Remaining.ID()),
	)
}

// Settle applies decision to r and returns the prize behind the final door.
//
// Precondition: Reveal has been called on r.
func (d *Dealer) Settle(r *Round, decision Decision) Prize {
	r.Final = Resolve(r.Chosen, r.Revealed, decision)
	prize := r.Prize()
	d.logger.Debug("round settled",
		zap.Stringer("round", r.ID),
		zap.Stringer("decision", decision),
		zap.String("final", r.Final.ID()),
		zap.String("prize", string(prize)),
	)
	return prize
}

// Deal plays a whole round without a player.
//
// Precondition: first.Valid().
// Postcondition: the returned Round has every door set.
func (d *Dealer) Deal(first Door, decision Decision) Round {
	r := d.Open()
	d.Reveal(&r, first)
	d.Settle(&r, decision)
	return r
}

// Trial runs one silent round for statistical aggregation and returns its prize.
// decision follows the interactive mapping: "y" switches, "n" stays (any case),
// and an empty or non-alphanumeric value stays.
//
// Postcondition: returns Car or Goat, or an error for an invalid door or an
// unrecognized decision. No output is written.
func (d *Dealer) Trial(first Door, decision string) (Prize, error) {
	if !first.Valid() {
		return "", fmt.Errorf("%w: %d", ErrInvalidDoor, int(first))
	}
	dec, verdict := ClassifyDecision(decision)
	if verdict == Unrecognized {
		return "", fmt.Errorf("%w: got %q", ErrUnrecognizedDecision, decision)
	}
	r := d.Deal(first, dec)
	return r.Prize(), nil
}
