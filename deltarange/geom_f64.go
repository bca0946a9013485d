package deltarange

import "fmt"

// Box is an axis-aligned rectangle in corner form.
// Coordinates are not guaranteed to be ordered until Normalize is called.
type Box struct {
	X1 float64
	Y1 float64
	X2 float64
	Y2 float64
}

func NewBox(x1, y1, x2, y2 float64) Box {
	return Box{
		X1: x1,
		Y1: y1,
		X2: x2,
		Y2: y2,
	}
}

// Normalize swaps coordinates in place so that X1 <= X2 and Y1 <= Y2
func (box *Box) Normalize() {
	if box.X1 > box.X2 {
		box.X1, box.X2 = box.X2, box.X1
	}
	if box.Y1 > box.Y2 {
		box.Y1, box.Y2 = box.Y2, box.Y1
	}
}

// Normalized returns normalized copy of the box
func (box Box) Normalized() Box {
	box.Normalize()
	return box
}

func (box Box) Width() float64 {
	return box.X2 - box.X1
}

func (box Box) Height() float64 {
	return box.Y2 - box.Y1
}

func (box Box) Area() float64 {
	return box.Width() * box.Height()
}

func (box Box) Center() Point {
	return NewPoint(box.X1+box.Width()/2.0, box.Y1+box.Height()/2.0)
}

// Degenerate reports whether box has no positive width or height (NaN included).
// Call it on normalized boxes only.
func (box Box) Degenerate() bool {
	return !(box.Width() > 0) || !(box.Height() > 0)
}

// ToRectangle converts box into center form
func (box Box) ToRectangle() Rectangle {
	center := box.Center()
	return Rectangle{
		CX:     center.X,
		CY:     center.Y,
		Width:  box.Width(),
		Height: box.Height(),
	}
}

func (box Box) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", box.X1, box.Y1, box.X2, box.Y2)
}

// Rectangle is a box in center form: center point plus size.
// This is the form regression targets are expressed in.
type Rectangle struct {
	CX     float64
	CY     float64
	Width  float64
	Height float64
}

// ToBox converts rectangle back into corner form
func (rect Rectangle) ToBox() Box {
	return Box{
		X1: rect.CX - rect.Width/2.0,
		Y1: rect.CY - rect.Height/2.0,
		X2: rect.CX + rect.Width/2.0,
		Y2: rect.CY + rect.Height/2.0,
	}
}

type Point struct {
	X float64
	Y float64
}

func NewPoint(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}
