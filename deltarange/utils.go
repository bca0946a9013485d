package deltarange

// AreaFunc computes area of the reference rectangle
type AreaFunc func(ref Box) float64

// ReferenceArea is the plain width * height area of a normalized box.
func ReferenceArea(ref Box) float64 {
	return ref.Area()
}

// LegacyReferenceArea uses Y1 in place of X1 for the width term.
// It equals ReferenceArea only when ref.X1 == ref.Y1. Kept to reproduce figures
// produced with the original formula.
func LegacyReferenceArea(ref Box) float64 {
	return (ref.X2 - ref.Y1) * (ref.Y2 - ref.Y1)
}

// IoU calculates Intersection over Union between box and reference rectangle.
// Both boxes are expected to be normalized. The second return value is false when the
// boxes do not overlap with positive area: in that case IoU is undefined rather than zero.
func IoU(box, ref Box) (float64, bool) {
	return iouWithArea(box, ref, ReferenceArea)
}

func iouWithArea(box, ref Box, refArea AreaFunc) (float64, bool) {
	xA := maxFloat64(box.X1, ref.X1)
	yA := maxFloat64(box.Y1, ref.Y1)
	xB := minFloat64(box.X2, ref.X2)
	yB := minFloat64(box.Y2, ref.Y2)

	if xB-xA <= 0 || yB-yA <= 0 {
		return 0, false
	}

	interArea := (xB - xA) * (yB - yA)
	iouVal := interArea / (refArea(ref) + box.Area() - interArea)
	return iouVal, true
}

func maxFloat64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minFloat64(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
