package grid

import (
	"image"
)

// neighbours for 4-connectivity: N, E, S, W
var neighbours = [4]image.Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Reachable runs a breadth first search over street cells starting at
// `from` and returns a row major visited mask. If `from` isn't a street
// cell nothing is visited.
func (g *Grid) Reachable(from image.Point) []bool {
	seen := make([]bool, g.Width*g.Height)
	if !g.IsStreet(from.X, from.Y) {
		return seen
	}

	start := g.index(from.X, from.Y)
	seen[start] = true
	queue := []int{start}

	for qi := 0; qi < len(queue); qi++ {
		ux, uy := g.coordinate(queue[qi])
		for _, d := range neighbours {
			vx, vy := ux+d.X, uy+d.Y
			if !g.IsStreet(vx, vy) {
				continue
			}
			vi := g.index(vx, vy)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}

	return seen
}

// Prune clears every street cell not reachable from `from`, leaving a single
// connected street network. Returns the cells removed in row major order.
func (g *Grid) Prune(from image.Point) []image.Point {
	seen := g.Reachable(from)

	removed := []image.Point{}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			i := g.index(x, y)
			if !g.bits.Get(i) || seen[i] {
				continue
			}
			g.clear(x, y)
			removed = append(removed, image.Pt(x, y))
		}
	}

	return removed
}

// Connected returns true if every street cell can be reached from `from`.
// An empty grid is considered connected.
func (g *Grid) Connected(from image.Point) bool {
	if g.count == 0 {
		return true
	}
	seen := g.Reachable(from)
	visited := 0
	for _, ok := range seen {
		if ok {
			visited++
		}
	}
	return visited == g.count
}
