package scootermap

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	// reference page layout is a 20x20 block of streets
	defaultWidth  = 20
	defaultHeight = 20

	defaultConnectionMin = 0.5
	defaultConnectionMax = 0.8
)

// defaultStreetLengths are the lengths (in cells) a random street may take.
var defaultStreetLengths = []int{2, 4}

// Config holds everything needed to generate one map.
// Most settings fall back to sane defaults if left zero, see DefaultConfig().
type Config struct {
	// Width & Height of the grid in cells. Used as given; a grid with
	// no cells can't hold any streets & generation will fail.
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`

	// How many scooters & (of those) how many charged batteries to aim for.
	// Empty implies Normal.
	ScooterDensity Density `yaml:"scooters" json:"scooters"`
	BatteryDensity Density `yaml:"batteries" json:"batteries"`

	// Seed for rng (random number chosen if not set)
	Seed int64 `yaml:"seed" json:"seed"`

	// StreetLengths random streets pick their length from
	StreetLengths []int `yaml:"street_lengths" json:"street_lengths"`

	// Bounds of the per-map connection probability. Higher values add more
	// connecting streets, though this is a soft target: streets that would
	// overlap existing ones are simply dropped.
	ConnectionMin float64 `yaml:"connection_min" json:"connection_min"`
	ConnectionMax float64 `yaml:"connection_max" json:"connection_max"`
}

// DefaultConfig returns the reference configuration.
func DefaultConfig() Config {
	return Config{
		Width:          defaultWidth,
		Height:         defaultHeight,
		ScooterDensity: Normal,
		BatteryDensity: Normal,
		StreetLengths:  append([]int{}, defaultStreetLengths...),
		ConnectionMin:  defaultConnectionMin,
		ConnectionMax:  defaultConnectionMax,
	}
}

// LoadConfig reads a yaml file on top of DefaultConfig().
// Fields missing from the file keep their default values.
func LoadConfig(fpath string) (Config, error) {
	cfg := DefaultConfig()

	data, err := ioutil.ReadFile(fpath)
	if err != nil {
		return cfg, errors.Wrap(err, "reading config")
	}

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return cfg, errors.Wrapf(ErrInvalidConfig, "parsing %s: %v", fpath, err)
	}

	return cfg, cfg.Validate()
}

// withDefaults returns a copy of the config with unset optional fields filled in.
func (c Config) withDefaults() Config {
	if c.ScooterDensity == "" {
		c.ScooterDensity = Normal
	}
	if c.BatteryDensity == "" {
		c.BatteryDensity = Normal
	}
	if len(c.StreetLengths) == 0 {
		c.StreetLengths = defaultStreetLengths
	}
	c.StreetLengths = append([]int{}, c.StreetLengths...)
	if c.ConnectionMin == 0 && c.ConnectionMax == 0 {
		c.ConnectionMin = defaultConnectionMin
		c.ConnectionMax = defaultConnectionMax
	}
	return c
}

// Validate checks the config (after defaults are applied) makes sense.
func (c Config) Validate() error {
	c = c.withDefaults()

	if c.Width < 0 || c.Height < 0 {
		return errors.Wrapf(ErrInvalidConfig, "grid size %dx%d", c.Width, c.Height)
	}
	if !c.ScooterDensity.valid() {
		return errors.Wrapf(ErrInvalidConfig, "unknown scooter density %q", c.ScooterDensity)
	}
	if !c.BatteryDensity.valid() {
		return errors.Wrapf(ErrInvalidConfig, "unknown battery density %q", c.BatteryDensity)
	}
	for _, l := range c.StreetLengths {
		if l <= 0 {
			return errors.Wrapf(ErrInvalidConfig, "street length %d", l)
		}
	}
	if c.ConnectionMin < 0 || c.ConnectionMax > 1 || c.ConnectionMin > c.ConnectionMax {
		return errors.Wrapf(ErrInvalidConfig, "connection probability [%v, %v]", c.ConnectionMin, c.ConnectionMax)
	}

	return nil
}
