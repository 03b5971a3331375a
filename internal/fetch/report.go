package fetch

import (
	"fmt"

	"github.com/albapepper/hoopstats-data/internal/provider"
)

// Failure records one skipped player.
type Failure struct {
	Player provider.PlayerRef
	Err    error
}

func (f Failure) String() string {
	return fmt.Sprintf("%s (%d): %v", f.Player.Name, f.Player.ID, f.Err)
}

// Report tracks the outcome of a roster sweep.
type Report struct {
	Requested   int
	Processed   int
	Retrieved   int // players that yielded at least one row
	Rows        int
	Failures    []Failure
	Interrupted bool
}

// Summary returns a human-readable summary of the sweep.
func (r Report) Summary() string {
	return fmt.Sprintf("retrieved=%d/%d rows=%d failures=%d",
		r.Retrieved, r.Requested, r.Rows, len(r.Failures))
}
