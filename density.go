package scootermap

// Density is a named bucket controlling how many of something we place.
type Density string

const (
	Little Density = "little"
	Normal Density = "normal"
	Much   Density = "much"
)

var (
	allDensities = []Density{Little, Normal, Much}

	// inclusive [min, max] number of scooters
	scooterRanges = map[Density][2]int{
		Little: {5, 10},
		Normal: {10, 20},
		Much:   {20, 30},
	}

	// inclusive [min, max] percentage of scooters with a full battery
	batteryPercents = map[Density][2]int{
		Little: {0, 20},
		Normal: {20, 40},
		Much:   {40, 60},
	}
)

// valid returns if d is a known density
func (d Density) valid() bool {
	for _, known := range allDensities {
		if d == known {
			return true
		}
	}
	return false
}

// scooterRange returns the inclusive range of scooters for this density.
func (d Density) scooterRange() (int, int) {
	r := scooterRanges[d]
	return r[0], r[1]
}

// batteryRange returns the inclusive range of charged batteries given
// `scooters` scooters. Fractions are truncated.
func (d Density) batteryRange(scooters int) (int, int) {
	r := batteryPercents[d]
	return scooters * r[0] / 100, scooters * r[1] / 100
}
