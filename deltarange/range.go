package deltarange

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Range is a running (min, max) pair of observed values.
// Zero value is an empty range; the first observation seeds both bounds.
type Range struct {
	Min   float64
	Max   float64
	count int
}

// Update folds value into the range. NaN values are ignored.
func (r *Range) Update(value float64) {
	if math.IsNaN(value) {
		return
	}
	if r.count == 0 {
		r.Min = value
		r.Max = value
		r.count++
		return
	}
	if value < r.Min {
		r.Min = value
	}
	if value > r.Max {
		r.Max = value
	}
	r.count++
}

// Empty returns true if nothing has been observed yet
func (r Range) Empty() bool {
	return r.count == 0
}

// Count returns number of observations folded into the range
func (r Range) Count() int {
	return r.count
}

// Spread returns Max - Min (zero for empty range)
func (r Range) Spread() float64 {
	if r.count == 0 {
		return 0
	}
	return r.Max - r.Min
}

func (r Range) String() string {
	if r.count == 0 {
		return "(empty)"
	}
	return fmt.Sprintf("(%s, %s)", formatFloat(r.Min), formatFloat(r.Max))
}

// formatFloat prints shortest representation, keeping ".0" on whole numbers (1 -> "1.0")
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if math.IsInf(v, 0) || math.IsNaN(v) || strings.ContainsAny(s, ".e") {
		return s
	}
	return s + ".0"
}
