package scootermap

import (
	"image"

	"github.com/voidshard/scootermap/internal/line"
)

// Orientation of a street; streets run either left to right or top to bottom.
type Orientation = line.Orientation

const (
	Horizontal = line.Horizontal
	Vertical   = line.Vertical
)

// Street represents a straight segment of road that was carved into the map.
// ID is the sequential label assigned when placed (starting from 1). After
// unreachable parts of the network are removed a street may be shorter than
// Length; Cells lists what survived.
type Street struct {
	ID          int
	Origin      image.Point
	Length      int
	Orientation Orientation
	Cells       []image.Point
}

// Stats holds generic stats about how the map was built
type Stats struct {
	// street placement attempts, split by outcome
	Attempts int
	Placed   int
	Rejected int

	// number of street cells removed as unreachable from the warehouse
	Pruned int
}
