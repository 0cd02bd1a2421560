package scootermap

import (
	"image"
	"math/rand"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model2d"
)

// centre returns the real valued centre of a grid cell
func centre(p image.Point) model2d.Coord {
	return model2d.Coord{X: float64(p.X) + 0.5, Y: float64(p.Y) + 0.5}
}

// randBetween returns a random int in [lo, hi]
func randBetween(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// withoutPoint returns a copy of `in` with (the first) `p` removed.
// Order of the remaining points is not preserved.
func withoutPoint(in []image.Point, p image.Point) []image.Point {
	out := append([]image.Point{}, in...)
	for i := range out {
		if out[i] == p {
			essentials.UnorderedDelete(&out, i)
			break
		}
	}
	return out
}

// sample picks n points from `in` uniformly at random without replacement.
// `in` is not modified.
func sample(rng *rand.Rand, in []image.Point, n int) []image.Point {
	if n > len(in) {
		n = len(in)
	}
	if n <= 0 {
		return []image.Point{}
	}

	pool := append([]image.Point{}, in...)
	for i := 0; i < n; i++ { // partial fisher-yates
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}
