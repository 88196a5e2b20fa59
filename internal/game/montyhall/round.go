package montyhall

import "github.com/google/uuid"

// Round is the state of one playthrough. Doors are filled in as the round
// progresses: Chosen, then Revealed and Remaining, then Final.
//
// Invariant: Revealed != Chosen; Assignment.PrizeAt(Revealed) == Goat;
// Final is Chosen or Remaining.
type Round struct {
	ID         uuid.UUID
	Assignment Assignment
	Chosen     Door
	Revealed   Door
	Remaining  Door
	Final      Door
}

// Prize returns the prize behind the final door.
//
// Precondition: Final has been set.
func (r Round) Prize() Prize {
	return r.Assignment.PrizeAt(r.Final)
}

// Decision reports whether the contestant stayed or switched.
func (r Round) Decision() Decision {
	if r.Final != r.Chosen {
		return Switch
	}
	return Stay
}

// Won reports whether the final door hides the car.
func (r Round) Won() bool {
	return r.Prize() == Car
}
