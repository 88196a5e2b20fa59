package montyhall

import "fmt"

// Prize is what stands behind a door.
type Prize string

const (
	Car  Prize = "car"
	Goat Prize = "goat"
)

// Assignment is the hidden mapping of doors to prizes for one round.
// It is immutable once created.
//
// Invariant: exactly one door maps to Car; the other two map to Goat.
type Assignment struct {
	car Door
}

// NewAssignment places the car behind car and goats behind the other doors.
//
// Precondition: car.Valid(). Panics otherwise.
func NewAssignment(car Door) Assignment {
	if !car.Valid() {
		panic(fmt.Sprintf("montyhall: NewAssignment called with invalid door %d", int(car)))
	}
	return Assignment{car: car}
}

// Valid reports whether a was built by NewAssignment.
func (a Assignment) Valid() bool {
	return a.car.Valid()
}

// CarDoor returns the door hiding the car.
func (a Assignment) CarDoor() Door {
	return a.car
}

// PrizeAt returns the prize behind d.
//
// Precondition: a.Valid() and d.Valid().
func (a Assignment) PrizeAt(d Door) Prize {
	if d == a.car {
		return Car
	}
	return Goat
}

// Prizes returns a fresh copy of the full door-to-prize mapping.
func (a Assignment) Prizes() map[Door]Prize {
	m := make(map[Door]Prize, len(Doors))
	for _, d := range Doors {
		m[d] = a.PrizeAt(d)
	}
	return m
}
