package gridsearch

import (
	"context"
	"sort"
)

// Result contains the outcome of a search
type Result struct {
	Algorithm     Algorithm
	Path          []Point // start to goal inclusive, nil when not found
	TotalCost     int     // g of the goal cell
	ExpandedNodes int
	Found         bool

	// Final frontier and closed sets, kept for rendering.
	Open   map[Point]bool
	Closed map[Point]bool
}

// Steps is the number of moves on the path.
func (r Result) Steps() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// Err returns ErrNoPath when the search exhausted the frontier.
func (r Result) Err() error {
	if !r.Found {
		return ErrNoPath
	}
	return nil
}

// OpenPoints returns the final frontier sorted by row, then column.
func (r Result) OpenPoints() []Point { return sortedPoints(r.Open) }

// ClosedPoints returns the closed set sorted by row, then column.
func (r Result) ClosedPoints() []Point { return sortedPoints(r.Closed) }

// Search runs the selected algorithm on grid until the goal is closed or the
// frontier is empty. An unreachable goal is not an error: the Result simply
// has Found set to false.
func Search(ctx context.Context, grid *Grid, options ...Option) (Result, error) {
	stepper, err := NewStepper(ctx, grid, options...)
	if err != nil {
		return Result{}, err
	}
	defer stepper.Close()

	for !stepper.Done() {
		if err := stepper.advance(); err != nil {
			return Result{}, err
		}
	}

	snapshot := stepper.snapshot()
	result := Result{
		Algorithm:     stepper.Algorithm(),
		ExpandedNodes: len(snapshot.Closed),
		Found:         snapshot.Found,
		Open:          snapshot.Open,
		Closed:        snapshot.Closed,
	}
	if snapshot.Found {
		result.Path = snapshot.Path
		result.TotalCost = grid.Cell(grid.End).G
	}
	return result, nil
}

func sortedPoints(set map[Point]bool) []Point {
	points := make([]Point, 0, len(set))
	for p, ok := range set {
		if ok {
			points = append(points, p)
		}
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Y != points[j].Y {
			return points[i].Y < points[j].Y
		}
		return points[i].X < points[j].X
	})
	return points
}
