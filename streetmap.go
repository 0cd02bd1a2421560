package scootermap

import (
	"image"

	"github.com/unixpickle/model3d/model2d"

	"github.com/voidshard/scootermap/internal/grid"
)

// gridMap implements StreetMap on top of our occupancy grid
type gridMap struct {
	g *grid.Grid
}

func (m *gridMap) Bounds() image.Rectangle {
	return m.g.Rect()
}

func (m *gridMap) IsStreet(x, y int) bool {
	return m.g.IsStreet(x, y)
}

func (m *gridMap) SegmentID(x, y int) int {
	return m.g.Label(x, y)
}

func (m *gridMap) Centre(x, y int) model2d.Coord {
	return centre(image.Pt(x, y))
}

func (m *gridMap) Cells() []image.Point {
	return m.g.Cells()
}

func (m *gridMap) Count() int {
	return m.g.Count()
}
