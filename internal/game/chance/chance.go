// Package chance provides the randomness abstraction used to hide prizes and
// pick which goat the host reveals.
package chance

// Source is the randomness provider for every draw in a round.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}
