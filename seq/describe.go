package seq

import (
	"fmt"
	"strings"
)

// Describe renders the sequence state as a human-readable string. The
// non-verbose form reports the name and the fill level. The verbose form
// additionally reports the aggregates over the populated region and the
// full backing storage. The output is deterministic for a given state.
func (s *Sequence) Describe(verbose bool) string {
	if !verbose {
		return fmt.Sprintf("%s: %d/%d", s.name, s.length, len(s.storage))
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Sequence %s\n", s.name)
	fmt.Fprintf(&b, "\tcapacity: %d\n", len(s.storage))
	fmt.Fprintf(&b, "\tlength:   %d\n", s.length)

	if s.length == 0 {
		b.WriteString("\tempty\n")
	} else {
		fmt.Fprintf(&b, "\tmin: %v, max: %v, sum: %v, mean: %v\n",
			s.Min(), s.Max(), s.Sum(), s.Mean())
	}

	fmt.Fprintf(&b, "\tstorage: %v\n", s.storage)

	return b.String()
}
