package scootermap

import (
	"image"

	"github.com/unixpickle/model3d/model2d"
)

// StreetMap is a read only view of the final (connected) street grid,
// intended for whatever draws the map.
type StreetMap interface {
	// Bounds of the grid in cells
	Bounds() image.Rectangle

	// true if x,y is part of the street network
	IsStreet(x, y int) bool

	// ID of the Street that covers x,y (0 if none)
	SegmentID(x, y int) int

	// Centre returns the real valued centre of the x,y cell
	Centre(x, y int) model2d.Coord

	// Cells returns every street cell, row major
	Cells() []image.Point

	// Count of street cells
	Count() int
}
