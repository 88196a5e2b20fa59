package montyhall

import "strings"

// Decision is the contestant's final move after the goat is revealed.
type Decision int

const (
	Stay Decision = iota
	Switch
)

// String returns "stay" or "switch".
func (d Decision) String() string {
	if d == Switch {
		return "switch"
	}
	return "stay"
}

// Past returns the past tense of d: "stayed" or "switched".
func (d Decision) Past() string {
	return d.String() + "ed"
}

// Verdict classifies a raw stay/switch answer.
type Verdict int

const (
	// Accepted answers are "y" or "n" in any case.
	Accepted Verdict = iota
	// Unrecognized answers are alphanumeric but not y/n; the player is asked again.
	Unrecognized
	// Missing answers are empty or non-alphanumeric; the contestant stays.
	Missing
)

// ClassifyDecision maps a raw answer to a Decision.
// "y" switches and "n" stays, case-insensitively. Missing answers default to Stay.
//
// Postcondition: the Decision is meaningful only when the Verdict is not Unrecognized.
func ClassifyDecision(raw string) (Decision, Verdict) {
	switch strings.ToLower(raw) {
	case "y":
		return Switch, Accepted
	case "n":
		return Stay, Accepted
	}
	if IsAlnum(raw) {
		return Stay, Unrecognized
	}
	return Stay, Missing
}

// Resolve returns the final door for decision d.
//
// Precondition: chosen and revealed are distinct valid doors.
// Postcondition: Switch yields the remaining door (!= chosen); Stay yields chosen.
func Resolve(chosen, revealed Door, d Decision) Door {
	remaining := Remaining(chosen, revealed)
	if d == Switch {
		return remaining
	}
	return chosen
}
