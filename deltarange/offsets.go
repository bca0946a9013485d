package deltarange

import (
	"math"

	"github.com/pkg/errors"
)

// Offsets is the regression target which maps a sampled box onto the reference box.
// DX and DY are center shifts normalized by the sampled box size, DW and DH are log-scale size ratios.
type Offsets struct {
	DX float64
	DY float64
	DW float64
	DH float64
}

// BoxToOffsets encodes reference box relative to the sampled (normalized) box
func BoxToOffsets(box, ref Box) (Offsets, error) {
	if box.Degenerate() {
		return Offsets{}, errors.Wrapf(ErrDegenerateBox, "Can't encode offsets for box %s", box)
	}
	b := box.ToRectangle()
	r := ref.ToRectangle()
	return Offsets{
		DX: (r.CX - b.CX) / b.Width,
		DY: (r.CY - b.CY) / b.Height,
		DW: math.Log(r.Width / b.Width),
		DH: math.Log(r.Height / b.Height),
	}, nil
}

// ApplyOffsets decodes offsets against anchor box. It is the inverse of BoxToOffsets:
// ApplyOffsets(box, BoxToOffsets(box, ref)) gives back ref.
func ApplyOffsets(anchor Box, o Offsets) Box {
	a := anchor.ToRectangle()
	return Rectangle{
		CX:     a.CX + o.DX*a.Width,
		CY:     a.CY + o.DY*a.Height,
		Width:  a.Width * math.Exp(o.DW),
		Height: a.Height * math.Exp(o.DH),
	}.ToBox()
}
