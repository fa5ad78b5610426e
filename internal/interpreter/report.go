package interpreter

import (
	"fmt"
	"io"
)

// Report prints both counters, end-of-command visits first.
func Report(w io.Writer, t Tally) error {
	_, err := fmt.Fprintf(w, "Part 1: %d\nPart 2: %d\n", t.EndOfCommand, t.Total)
	return err
}
