package gridsearch

// Heuristic returns the estimated cost from a to b.
type Heuristic func(from Point, to Point) int

// Manhattan is |dx| + |dy|. Every cell costs at least 1, so it never
// overestimates the weighted remaining cost.
func Manhattan(from, to Point) int {
	dx := from.X - to.X
	if dx < 0 {
		dx = -dx
	}
	dy := from.Y - to.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
