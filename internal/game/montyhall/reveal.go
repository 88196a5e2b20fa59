package montyhall

import "fmt"

// Picker draws labelled uniform indices. *chance.Picker satisfies it.
type Picker interface {
	// Pick returns a uniform index in [0, n).
	Pick(label string, n int) int
}

// HidePrizes places the car behind a uniformly random door.
//
// Postcondition: the result is a valid Assignment; exactly one draw over 3 is consumed.
func HidePrizes(p Picker) Assignment {
	return NewAssignment(Doors[p.Pick("car door", len(Doors))])
}

// GoatCandidates returns the doors the host may open: not chosen, not hiding the car.
//
// Postcondition: len(result) is 2 when chosen hides the car, 1 otherwise.
func GoatCandidates(a Assignment, chosen Door) []Door {
	out := make([]Door, 0, 2)
	for _, d := range Doors {
		if d != chosen && a.PrizeAt(d) != Car {
			out = append(out, d)
		}
	}
	return out
}

// Remaining returns the single door that is neither chosen nor revealed.
//
// Precondition: chosen and revealed are distinct valid doors. Panics otherwise.
func Remaining(chosen, revealed Door) Door {
	if !chosen.Valid() || !revealed.Valid() || chosen == revealed {
		panic(fmt.Sprintf("montyhall: Remaining called with chosen=%d revealed=%d", int(chosen), int(revealed)))
	}
	for _, d := range Doors {
		if d != chosen && d != revealed {
			return d
		}
	}
	panic("montyhall: unreachable")
}

// RevealGoat picks the door the host opens and the door left closed beside chosen.
// With one candidate the choice is forced and no draw is consumed; with two, one
// of them is picked uniformly.
//
// Precondition: a.Valid() and chosen.Valid().
// Postcondition: revealed != chosen; a.PrizeAt(revealed) == Goat;
// {chosen, revealed, remaining} == {Door1, Door2, Door3}.
func RevealGoat(a Assignment, chosen Door, p Picker) (revealed, remaining Door) {
	candidates := GoatCandidates(a, chosen)
	switch len(candidates) {
	case 1:
		revealed = candidates[0]
	case 2:
		revealed = candidates[p.Pick("goat door", 2)]
	default:
		panic(fmt.Sprintf("montyhall: %d goat candidates for chosen=%d car=%d", len(candidates), int(chosen), int(a.car)))
	}
	return revealed, Remaining(chosen, revealed)
}
