package stand

import (
	"errors"
	"fmt"
)

// ErrGameOver signals an attempt to resolve a day after the run has ended.
// Callers are expected to gate on State.CanPlay, but the engine refuses on
// its own rather than silently mutating state.
var ErrGameOver = errors.New("game over: no more days can be played")

// InsufficientFundsError is returned when a plan costs more than the stand
// has. Recoverable: the caller adjusts the plan and tries again, nothing
// was mutated.
type InsufficientFundsError struct {
	Cost  float64
	Money float64
}

func (e InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: plan costs $%.2f, have $%.2f", e.Cost, e.Money)
}
