package gridsearch

import "fmt"

// Point is the coordinate identity of a cell. X grows to the right, Y grows down.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Cell is one board position together with the search state attached to it.
type Cell struct {
	Point
	Cost      int  // terrain weight paid when entering the cell
	Reachable bool // false for walls

	G         int   // accumulated cost from the start
	H         int   // heuristic estimate to the goal
	F         int   // G + H
	Parent    Point // predecessor on the best known path, valid when HasParent
	HasParent bool
}

// reset clears the search state, leaving terrain untouched.
func (c *Cell) reset() {
	c.G, c.H, c.F = 0, 0, 0
	c.Parent = Point{}
	c.HasParent = false
}

// relax records a new best path into c coming from parent.
func (c *Cell) relax(parent *Cell, heuristic int) {
	c.G = parent.G + c.Cost
	c.H = heuristic
	c.F = c.G + c.H
	c.Parent = parent.Point
	c.HasParent = true
}
