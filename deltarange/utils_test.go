package deltarange

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIoU(t *testing.T) {
	ref := NewBox(0, 0, 10, 10)
	tests := []struct {
		name    string
		box     Box
		iou     float64
		overlap bool
	}{
		{"identical", NewBox(0, 0, 10, 10), 1.0, true},
		{"half shifted", NewBox(5, 0, 15, 10), 50.0 / 150.0, true},
		{"quarter shifted", NewBox(5, 5, 15, 15), 25.0 / 175.0, true},
		{"inside", NewBox(2, 2, 7, 7), 25.0 / 100.0, true},
		{"no overlap", NewBox(20, 20, 30, 30), 0, false},
		{"touching edge", NewBox(10, 0, 20, 10), 0, false},
		{"zero width", NewBox(5, 0, 5, 10), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iou, ok := IoU(tt.box, ref)
			require.Equal(t, tt.overlap, ok)
			if ok {
				assert.InDelta(t, tt.iou, iou, eps)
			}
		})
	}
}

func TestIoUBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	ref := NewBox(0, 0, 10, 10)
	checked := 0
	for i := 0; i < 10000; i++ {
		box := NewBox(rng.Float64()*30-10, rng.Float64()*30-10, rng.Float64()*30-10, rng.Float64()*30-10)
		box.Normalize()
		iou, ok := IoU(box, ref)
		if !ok {
			continue
		}
		checked++
		require.Greater(t, iou, 0.0)
		require.LessOrEqual(t, iou, 1.0)
	}
	assert.Greater(t, checked, 0)
}

func TestLegacyReferenceArea(t *testing.T) {
	// Both formulas agree while ref.X1 == ref.Y1
	square := NewBox(0, 0, 10, 10)
	assert.InDelta(t, ReferenceArea(square), LegacyReferenceArea(square), eps)

	shifted := NewBox(2, 0, 12, 10)
	assert.InDelta(t, 100.0, ReferenceArea(shifted), eps)
	assert.InDelta(t, 120.0, LegacyReferenceArea(shifted), eps)

	iou, ok := iouWithArea(shifted, shifted, LegacyReferenceArea)
	require.True(t, ok)
	assert.InDelta(t, 100.0/120.0, iou, eps)

	iou, ok = iouWithArea(shifted, shifted, ReferenceArea)
	require.True(t, ok)
	assert.InDelta(t, 1.0, iou, eps)
}
