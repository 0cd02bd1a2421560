package grid

import (
	"image"

	"github.com/boljen/go-bitmap"

	"github.com/voidshard/scootermap/internal/line"
)

// Segment is a request to carve a straight street into the grid.
// Segments only live as long as the placement attempt.
type Segment struct {
	Origin      image.Point
	Length      int
	Orientation line.Orientation
}

// Placement is the outcome of a single Place call.
// When OK is false nothing in the grid was changed.
type Placement struct {
	OK    bool
	Label int           // sequential segment label, 0 when rejected
	Cells []image.Point // cells carved, in segment order
	Units int           // street units added (== len(Cells))
}

// Grid is a fixed size occupancy map where each cell is either empty or
// part of a street.
//
// Street cells are held as one bit per cell (row major); we additionally
// remember which segment carved each cell so renderers can annotate them.
type Grid struct {
	Width  int
	Height int

	bits   bitmap.Bitmap
	labels []int
	count  int
	next   int
}

// New returns an empty grid. Negative dimensions are treated as 0.
func New(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{
		Width:  width,
		Height: height,
		bits:   bitmap.New(width * height),
		labels: make([]int, width*height),
		next:   1,
	}
}

// Rect returns the grid area
func (g *Grid) Rect() image.Rectangle {
	return image.Rect(0, 0, g.Width, g.Height)
}

// InBounds reports whether (x,y) is a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// IsStreet returns if x,y is a street cell. Out of bounds is never a street.
func (g *Grid) IsStreet(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.bits.Get(g.index(x, y))
}

// State returns 1 for a street cell & 0 otherwise.
func (g *Grid) State(x, y int) int {
	if g.IsStreet(x, y) {
		return 1
	}
	return 0
}

// Label returns the label of the segment that carved x,y (0 if none).
func (g *Grid) Label(x, y int) int {
	if !g.IsStreet(x, y) {
		return 0
	}
	return g.labels[g.index(x, y)]
}

// Count returns the number of street cells
func (g *Grid) Count() int {
	return g.count
}

// Cells returns all street cells in row major order
func (g *Grid) Cells() []image.Point {
	out := make([]image.Point, 0, g.count)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.bits.Get(g.index(x, y)) {
				out = append(out, image.Pt(x, y))
			}
		}
	}
	return out
}

// Place attempts to carve the segment into the grid.
//
// The segment must sit entirely inside the grid & may not touch any existing
// street cell. If either check fails the placement is rejected and the grid
// is left untouched; callers are expected to simply try something else.
func (g *Grid) Place(s Segment) Placement {
	if s.Length <= 0 {
		return Placement{}
	}
	if !line.Bounds(s.Origin, s.Length, s.Orientation).In(g.Rect()) {
		return Placement{}
	}

	cells := line.Cells(s.Origin, s.Length, s.Orientation)
	for _, c := range cells {
		if g.bits.Get(g.index(c.X, c.Y)) {
			return Placement{}
		}
	}

	label := g.next
	g.next++
	for _, c := range cells {
		i := g.index(c.X, c.Y)
		g.bits.Set(i, true)
		g.labels[i] = label
	}
	g.count += len(cells)

	return Placement{OK: true, Label: label, Cells: cells, Units: len(cells)}
}

// clear resets x,y to empty
func (g *Grid) clear(x, y int) {
	i := g.index(x, y)
	if !g.bits.Get(i) {
		return
	}
	g.bits.Set(i, false)
	g.labels[i] = 0
	g.count--
}

// index maps x,y to a row major index
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// coordinate maps a row major index back to x,y
func (g *Grid) coordinate(i int) (int, int) {
	return i % g.Width, i / g.Width
}
