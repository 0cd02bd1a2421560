package scootermap

import (
	"image"

	"github.com/pkg/errors"
	"github.com/zyedidia/generic/mapset"
)

// Validate re-checks the guarantees a generated map makes:
//   - warehouse & scooters all sit on streets
//   - no scooter shares a cell with the warehouse or another scooter
//   - every street can be reached from the warehouse
//   - scooter & battery counts are consistent with what was placed
//
// It returns an error wrapping ErrInvalidLayout for the first problem found.
func (s *Scootermap) Validate() error {
	if s.grid == nil {
		return errors.Wrap(ErrInvalidLayout, "map was never built")
	}

	if !s.grid.IsStreet(s.Warehouse.X, s.Warehouse.Y) {
		return errors.Wrapf(ErrInvalidLayout, "warehouse %v not on a street", s.Warehouse)
	}
	if !s.grid.Connected(s.Warehouse) {
		return errors.Wrap(ErrInvalidLayout, "streets not all reachable from warehouse")
	}
	if s.BlackFields != s.grid.Count() {
		return errors.Wrapf(ErrInvalidLayout, "black fields %d but grid holds %d street cells", s.BlackFields, s.grid.Count())
	}

	seen := mapset.New[image.Point]()
	for _, p := range s.Scooters {
		if !s.grid.IsStreet(p.X, p.Y) {
			return errors.Wrapf(ErrInvalidLayout, "scooter %v not on a street", p)
		}
		if p == s.Warehouse {
			return errors.Wrapf(ErrInvalidLayout, "scooter %v on the warehouse", p)
		}
		if seen.Has(p) {
			return errors.Wrapf(ErrInvalidLayout, "two scooters at %v", p)
		}
		seen.Put(p)
	}

	if s.ScooterCount != seen.Size() {
		return errors.Wrapf(ErrInvalidLayout, "scooter count %d but %d placed", s.ScooterCount, seen.Size())
	}
	if s.ScooterCount > s.BlackFields-1 {
		return errors.Wrapf(ErrInvalidLayout, "%d scooters on %d street cells", s.ScooterCount, s.BlackFields)
	}
	if s.BatteryCount < 0 || s.BatteryCount > s.ScooterCount {
		return errors.Wrapf(ErrInvalidLayout, "%d batteries for %d scooters", s.BatteryCount, s.ScooterCount)
	}

	return nil
}
