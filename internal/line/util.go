package line

import (
	"image"
)

// Orientation of an axis aligned segment.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// String returns a human readable name
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// step returns the unit offset taken between cells along the orientation
func (o Orientation) step() image.Point {
	if o == Vertical {
		return image.Pt(0, 1)
	}
	return image.Pt(1, 0)
}

// Cells returns the `length` cells covered by a straight segment starting at
// origin, walking right (Horizontal) or down (Vertical).
// A length of 0 or less covers nothing.
func Cells(origin image.Point, length int, o Orientation) []image.Point {
	if length <= 0 {
		return []image.Point{}
	}

	d := o.step()
	pts := make([]image.Point, length)
	for i := range pts {
		pts[i] = origin.Add(d.Mul(i))
	}
	return pts
}

// Bounds returns the smallest rectangle holding every cell of the segment
// (Max is exclusive, as with image.Rectangle).
func Bounds(origin image.Point, length int, o Orientation) image.Rectangle {
	if length <= 0 {
		return image.Rectangle{Min: origin, Max: origin}
	}
	end := origin.Add(o.step().Mul(length - 1))
	return image.Rectangle{Min: origin, Max: end.Add(image.Pt(1, 1))}
}
