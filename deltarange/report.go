package deltarange

import (
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Report is the outcome of a sampling run
type Report struct {
	RunID uuid.UUID
	// Completed trials: accepted + skipped
	Trials   int
	Accepted int
	Skipped  int
	// Total number of drawn boxes
	Attempts int64

	IoU Range
	DX  Range
	DY  Range
	DW  Range
	DH  Range
}

// AcceptanceRate returns share of drawn boxes which have been accepted
func (r *Report) AcceptanceRate() float64 {
	if r.Attempts == 0 {
		return 0
	}
	return float64(r.Accepted) / float64(r.Attempts)
}

// WriteTo writes five labeled ranges, one per line:
//
//	iou_range: (min, max)
//	dx_range: (min, max)
//	...
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	lines := []struct {
		label string
		rng   Range
	}{
		{"iou_range", r.IoU},
		{"dx_range", r.DX},
		{"dy_range", r.DY},
		{"dw_range", r.DW},
		{"dh_range", r.DH},
	}
	var total int64
	for _, line := range lines {
		n, err := fmt.Fprintf(w, "%s: %s\n", line.label, line.rng)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
