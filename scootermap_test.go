package scootermap

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidshard/scootermap/internal/grid"
)

func seeded(seed int64) Config {
	cfg := DefaultConfig()
	cfg.Seed = seed
	return cfg
}

func TestNewProperties(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		s, err := New(seeded(seed))
		require.NoError(t, err, "seed %d", seed)
		require.NoError(t, s.Validate(), "seed %d", seed)

		m := s.Map()
		assert.True(t, m.IsStreet(s.Warehouse.X, s.Warehouse.Y))
		assert.NotContains(t, s.Scooters, s.Warehouse)
		for _, p := range s.Scooters {
			assert.True(t, m.IsStreet(p.X, p.Y), "seed %d scooter %v", seed, p)
		}

		assert.Equal(t, m.Count(), s.BlackFields)
		assert.Equal(t, s.BlackFields, s.StreetUnits)
		assert.LessOrEqual(t, s.ScooterCount, s.BlackFields-1)
		assert.LessOrEqual(t, s.BatteryCount, s.ScooterCount)
		assert.Len(t, s.ScooterCentres, s.ScooterCount)
		assert.GreaterOrEqual(t, s.ConnectionProbability, 0.5)
		assert.Less(t, s.ConnectionProbability, 0.8)
		assert.Equal(t, s.Stats.Attempts, s.Stats.Placed+s.Stats.Rejected)
	}
}

func TestNewSingleComponent(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		s, err := New(seeded(seed))
		require.NoError(t, err)

		seen := s.grid.Reachable(s.Warehouse)
		for _, p := range s.Map().Cells() {
			assert.True(t, seen[p.Y*s.Width+p.X], "seed %d cell %v unreachable", seed, p)
		}
	}
}

func TestNewDeterministic(t *testing.T) {
	a, err := New(seeded(1234))
	require.NoError(t, err)
	b, err := New(seeded(1234))
	require.NoError(t, err)

	assert.Equal(t, a.Warehouse, b.Warehouse)
	assert.Equal(t, a.Scooters, b.Scooters)
	assert.Equal(t, a.ScooterCount, b.ScooterCount)
	assert.Equal(t, a.BatteryCount, b.BatteryCount)
	assert.Equal(t, a.StreetUnits, b.StreetUnits)
	assert.Equal(t, a.BlackFields, b.BlackFields)
	assert.Equal(t, a.Map().Cells(), b.Map().Cells())

	ja, err := a.JSON()
	require.NoError(t, err)
	jb, err := b.JSON()
	require.NoError(t, err)
	assert.JSONEq(t, string(ja), string(jb))
}

func TestNewPicksSeed(t *testing.T) {
	s, err := New(DefaultConfig())
	require.NoError(t, err)
	assert.NotZero(t, s.Seed)
}

func TestScooterDensity(t *testing.T) {
	count := func(seed int64, d Density) int {
		cfg := seeded(seed)
		cfg.ScooterDensity = d
		s, err := New(cfg)
		require.NoError(t, err)
		return s.ScooterCount
	}

	// the street network only depends on the seed, so denser tiers can
	// never produce fewer scooters for the same seed
	sums := map[Density]int{}
	for seed := int64(1); seed <= 100; seed++ {
		little := count(seed, Little)
		normal := count(seed, Normal)
		much := count(seed, Much)

		assert.LessOrEqual(t, little, normal, "seed %d", seed)
		assert.LessOrEqual(t, normal, much, "seed %d", seed)

		sums[Little] += little
		sums[Normal] += normal
		sums[Much] += much
	}

	assert.Greater(t, sums[Normal], sums[Little])
	assert.Greater(t, sums[Much], sums[Normal])
}

func TestNewNoStreets(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
	}{
		{"no width", 0, 20},
		{"no height", 20, 0},
		{"empty", 0, 0},
		{"too small for any street", 1, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := seeded(7)
			cfg.Width = tc.width
			cfg.Height = tc.height

			s, err := New(cfg)
			require.ErrorIs(t, err, ErrNoStreets)
			assert.Nil(t, s)
		})
	}
}

func TestNewInvalidConfig(t *testing.T) {
	cases := []struct {
		name string
		edit func(c *Config)
	}{
		{"negative width", func(c *Config) { c.Width = -1 }},
		{"unknown scooter density", func(c *Config) { c.ScooterDensity = "lots" }},
		{"unknown battery density", func(c *Config) { c.BatteryDensity = "none" }},
		{"zero street length", func(c *Config) { c.StreetLengths = []int{2, 0} }},
		{"inverted connection", func(c *Config) { c.ConnectionMin, c.ConnectionMax = 0.9, 0.5 }},
		{"connection above one", func(c *Config) { c.ConnectionMax = 1.5 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := seeded(1)
			tc.edit(&cfg)

			_, err := New(cfg)
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

// newManual returns a map with working state set up but no streets placed.
func newManual(t *testing.T, cfg Config) *Scootermap {
	s := &Scootermap{cfg: cfg.withDefaults()}
	require.NoError(t, s.init())
	return s
}

func TestSmallGridScenario(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		s := newManual(t, Config{Width: 4, Height: 4, ScooterDensity: Little, BatteryDensity: Little, Seed: seed})

		require.True(t, s.place(grid.Segment{Origin: image.Pt(0, 0), Length: 2, Orientation: Horizontal}))
		require.True(t, s.place(grid.Segment{Origin: image.Pt(2, 0), Length: 2, Orientation: Vertical}))
		require.NoError(t, s.placeWarehouse())

		s.removeUnreachable()
		assert.Equal(t, 0, s.Stats.Pruned)
		assert.Equal(t, 4, s.BlackFields)
		assert.Equal(t, 4, s.StreetUnits)

		s.placeScooters()
		assert.Equal(t, 3, s.ScooterCount) // little asks for 5+, only 3 cells are free
		assert.Equal(t, 0, s.BatteryCount)
		require.NoError(t, s.Validate())
	}
}

func TestRemoveUnreachable(t *testing.T) {
	s := newManual(t, Config{Width: 4, Height: 4, Seed: 3})

	require.True(t, s.place(grid.Segment{Origin: image.Pt(0, 0), Length: 2, Orientation: Horizontal}))
	require.True(t, s.place(grid.Segment{Origin: image.Pt(2, 0), Length: 2, Orientation: Vertical}))
	require.True(t, s.place(grid.Segment{Origin: image.Pt(0, 3), Length: 2, Orientation: Horizontal}))
	require.Equal(t, 6, s.BlackFields)

	s.Warehouse = image.Pt(1, 0)
	s.removeUnreachable()

	assert.Equal(t, 2, s.Stats.Pruned)
	assert.Equal(t, 4, s.BlackFields)
	assert.Equal(t, 4, s.StreetUnits)
	assert.Equal(t, []image.Point{{0, 0}, {1, 0}, {2, 0}, {2, 1}}, s.roads)
	require.Len(t, s.Streets, 2)
	assert.Equal(t, 1, s.Streets[0].ID)
	assert.Equal(t, 2, s.Streets[1].ID)
	assert.False(t, s.Map().IsStreet(0, 3))
}

func TestPlaceScootersOnlyWarehouse(t *testing.T) {
	s := newManual(t, Config{Width: 3, Height: 3, ScooterDensity: Much, BatteryDensity: Much, Seed: 9})
	require.True(t, s.place(grid.Segment{Origin: image.Pt(1, 1), Length: 1, Orientation: Vertical}))
	require.NoError(t, s.placeWarehouse())

	s.removeUnreachable()
	s.placeScooters()

	assert.Equal(t, image.Pt(1, 1), s.Warehouse)
	assert.Equal(t, 0, s.ScooterCount)
	assert.Equal(t, 0, s.BatteryCount)
	assert.Empty(t, s.Scooters)
	require.NoError(t, s.Validate())
}

func TestValidateCatchesProblems(t *testing.T) {
	build := func() *Scootermap {
		s, err := New(seeded(99))
		require.NoError(t, err)
		require.NotEmpty(t, s.Scooters)
		return s
	}

	cases := []struct {
		name    string
		corrupt func(s *Scootermap)
	}{
		{"scooter on warehouse", func(s *Scootermap) { s.Scooters[0] = s.Warehouse }},
		{"scooter off street", func(s *Scootermap) { s.Scooters[0] = image.Pt(-1, -1) }},
		{"duplicate scooter", func(s *Scootermap) { s.Scooters = append(s.Scooters, s.Scooters[0]); s.ScooterCount++ }},
		{"too many batteries", func(s *Scootermap) { s.BatteryCount = s.ScooterCount + 1 }},
		{"count mismatch", func(s *Scootermap) { s.ScooterCount++ }},
		{"black fields mismatch", func(s *Scootermap) { s.BlackFields++ }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := build()
			tc.corrupt(s)
			assert.ErrorIs(t, s.Validate(), ErrInvalidLayout)
		})
	}

	assert.ErrorIs(t, (&Scootermap{}).Validate(), ErrInvalidLayout)
}

func TestStreetMap(t *testing.T) {
	s, err := New(seeded(5))
	require.NoError(t, err)

	m := s.Map()
	assert.Equal(t, image.Rect(0, 0, 20, 20), m.Bounds())

	ids := map[int]bool{}
	for _, st := range s.Streets {
		ids[st.ID] = true
		for _, c := range st.Cells {
			assert.Equal(t, st.ID, m.SegmentID(c.X, c.Y))
		}
	}
	for _, c := range m.Cells() {
		assert.True(t, ids[m.SegmentID(c.X, c.Y)], "cell %v has no street", c)
	}

	c := m.Centre(3, 4)
	assert.Equal(t, 3.5, c.X)
	assert.Equal(t, 4.5, c.Y)
	assert.Equal(t, s.WarehouseCentre, m.Centre(s.Warehouse.X, s.Warehouse.Y))
}
