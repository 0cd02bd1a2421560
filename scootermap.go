package scootermap

import (
	"encoding/json"
	"fmt"
	"image"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model2d"

	"github.com/voidshard/scootermap/internal/grid"
)

var (
	// ErrNoStreets implies no street could be placed at all, so there
	// is nowhere to put the warehouse. No map is produced.
	ErrNoStreets = fmt.Errorf("no streets generated")

	// ErrInvalidConfig is returned for configuration we can't work with.
	ErrInvalidConfig = fmt.Errorf("invalid config")

	// ErrInvalidLayout is returned by Validate for a map breaking one of
	// its guarantees.
	ErrInvalidLayout = fmt.Errorf("invalid layout")
)

// Scootermap holds a generated street network with a warehouse & scooters
// placed on it.
type Scootermap struct {
	Seed   int64
	Width  int
	Height int

	ScooterDensity        Density
	BatteryDensity        Density
	ConnectionProbability float64

	Warehouse       image.Point
	WarehouseCentre model2d.Coord

	Scooters       []image.Point
	ScooterCentres []model2d.Coord

	// BatteryCount is how many of the scooters have a full battery. It is
	// not tied to any particular scooter.
	ScooterCount int
	BatteryCount int

	// StreetUnits is the combined length of all streets & BlackFields the
	// number of street cells, both after unreachable streets are removed.
	StreetUnits int
	BlackFields int

	Streets []*Street `json:",omitempty"`
	Stats   *Stats    `json:",omitempty"`

	cfg   Config
	rng   *rand.Rand
	grid  *grid.Grid
	roads []image.Point // street cells in the order they were placed
}

// New generates a map from the given configuration.
// Returns an error wrapping ErrNoStreets if no street could be placed.
func New(cfg Config) (*Scootermap, error) {
	s := &Scootermap{cfg: cfg.withDefaults()}
	err := s.build()
	if err != nil {
		return nil, err
	}
	return s, nil
}

// JSON returns the map as json.
func (s *Scootermap) JSON() ([]byte, error) {
	return json.Marshal(s)
}

// Map returns the underlying street grid.
func (s *Scootermap) Map() StreetMap {
	return &gridMap{g: s.grid}
}

// build runs the main construction logic. Order matters; the warehouse
// must exist before we can decide which streets are reachable.
func (s *Scootermap) build() error {
	err := s.init()
	if err != nil {
		return err
	}

	s.addBaselineStreets()
	s.addConnectingStreets()

	err = s.placeWarehouse()
	if err != nil {
		return err
	}

	s.removeUnreachable()
	s.placeScooters()

	return nil
}

// init sets up our working state
func (s *Scootermap) init() error {
	err := s.cfg.Validate()
	if err != nil {
		return err
	}

	if s.cfg.Seed == 0 {
		s.cfg.Seed = time.Now().UnixNano()
	}
	s.Seed = s.cfg.Seed
	s.rng = rand.New(rand.NewSource(s.cfg.Seed))

	s.Width = s.cfg.Width
	s.Height = s.cfg.Height
	s.ScooterDensity = s.cfg.ScooterDensity
	s.BatteryDensity = s.cfg.BatteryDensity

	s.grid = grid.New(s.Width, s.Height)
	s.roads = []image.Point{}
	s.Streets = []*Street{}
	s.Scooters = []image.Point{}
	s.ScooterCentres = []model2d.Coord{}
	s.Stats = &Stats{}

	return nil
}

// place attempts to add a street & folds the result into our totals.
func (s *Scootermap) place(seg grid.Segment) bool {
	s.Stats.Attempts++

	p := s.grid.Place(seg)
	if !p.OK {
		s.Stats.Rejected++
		return false
	}

	s.Stats.Placed++
	s.StreetUnits += p.Units
	s.BlackFields += len(p.Cells)
	s.roads = append(s.roads, p.Cells...)
	s.Streets = append(s.Streets, &Street{
		ID:          p.Label,
		Origin:      seg.Origin,
		Length:      seg.Length,
		Orientation: seg.Orientation,
		Cells:       p.Cells,
	})

	return true
}

// addBaselineStreets tries to put one horizontal street on every even row
// & one vertical street on every even column so no lane is left empty.
// Streets that collide with ones already placed are dropped.
func (s *Scootermap) addBaselineStreets() {
	for y := 0; y < s.Height; y += 2 {
		length := s.streetLength()
		s.place(grid.Segment{
			Origin:      image.Pt(s.offset(s.Width, length), y),
			Length:      length,
			Orientation: Horizontal,
		})
	}
	for x := 0; x < s.Width; x += 2 {
		length := s.streetLength()
		s.place(grid.Segment{
			Origin:      image.Pt(x, s.offset(s.Height, length)),
			Length:      length,
			Orientation: Vertical,
		})
	}
}

// addConnectingStreets adds extra streets starting at points on the even
// lattice, each with the same per-map probability.
func (s *Scootermap) addConnectingStreets() {
	s.ConnectionProbability = s.cfg.ConnectionMin + s.rng.Float64()*(s.cfg.ConnectionMax-s.cfg.ConnectionMin)

	for y := 0; y < s.Height; y += 2 {
		for x := 0; x < s.Width; x += 2 {
			if s.rng.Float64() >= s.ConnectionProbability {
				continue
			}

			o := Horizontal
			if s.rng.Intn(2) == 1 {
				o = Vertical
			}
			s.place(grid.Segment{Origin: image.Pt(x, y), Length: s.streetLength(), Orientation: o})
		}
	}
}

// placeWarehouse picks any street cell for the warehouse.
func (s *Scootermap) placeWarehouse() error {
	if len(s.roads) == 0 {
		return errors.Wrapf(ErrNoStreets, "seed %d grid %dx%d", s.Seed, s.Width, s.Height)
	}

	s.Warehouse = s.roads[s.rng.Intn(len(s.roads))]
	s.WarehouseCentre = centre(s.Warehouse)

	return nil
}

// removeUnreachable drops every street cell that can't be reached from the
// warehouse, leaving one connected network.
func (s *Scootermap) removeUnreachable() {
	removed := s.grid.Prune(s.Warehouse)
	if len(removed) == 0 {
		return
	}

	s.Stats.Pruned = len(removed)
	s.StreetUnits -= len(removed)
	s.BlackFields -= len(removed)
	s.roads = s.onStreets(s.roads)

	kept := []*Street{}
	for _, st := range s.Streets {
		st.Cells = s.onStreets(st.Cells)
		if len(st.Cells) > 0 {
			kept = append(kept, st)
		}
	}
	s.Streets = kept
}

// placeScooters decides how many scooters / charged batteries we have and
// scatters the scooters over the streets (never on the warehouse).
func (s *Scootermap) placeScooters() {
	eligible := withoutPoint(s.roads, s.Warehouse)

	lo, hi := s.ScooterDensity.scooterRange()
	count := randBetween(s.rng, lo, hi)
	if count > len(eligible) {
		count = len(eligible) // we can't place more than we have room for
	}

	s.Scooters = sample(s.rng, eligible, count)
	s.ScooterCount = len(s.Scooters)
	for _, p := range s.Scooters {
		s.ScooterCentres = append(s.ScooterCentres, centre(p))
	}

	lo, hi = s.BatteryDensity.batteryRange(s.ScooterCount)
	s.BatteryCount = randBetween(s.rng, lo, hi)
}

// onStreets returns the points in `in` that are (still) street cells,
// preserving order.
func (s *Scootermap) onStreets(in []image.Point) []image.Point {
	out := make([]image.Point, 0, len(in))
	for _, p := range in {
		if s.grid.IsStreet(p.X, p.Y) {
			out = append(out, p)
		}
	}
	return out
}

// streetLength picks a random configured street length
func (s *Scootermap) streetLength() int {
	return s.cfg.StreetLengths[s.rng.Intn(len(s.cfg.StreetLengths))]
}

// offset picks a random start so that a street of `length` fits into
// `size` cells. If it can't possibly fit we return 0 & let placement fail.
func (s *Scootermap) offset(size, length int) int {
	room := size - length + 1
	if room <= 0 {
		return 0
	}
	return s.rng.Intn(room)
}
