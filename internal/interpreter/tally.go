package interpreter

import "fmt"

// Tally counts origin visits. EndOfCommand only counts commands that
// finish on the origin; Total counts every step that lands there.
type Tally struct {
	EndOfCommand int
	Total        int
}

func (t Tally) String() string {
	return fmt.Sprintf("end=%d total=%d", t.EndOfCommand, t.Total)
}
