package gridsearch

// Grid is a rectangular board of cells with a designated start and end.
// Its shape, costs and walls are fixed once loaded; only search state mutates.
type Grid struct {
	Width  int
	Height int
	Start  Point
	End    Point

	cells  []Cell
	matrix [][]rune
}

// directions lists neighbor offsets in expansion order: right, up, left, down.
var directions = [4]Point{{1, 0}, {0, -1}, {-1, 0}, {0, 1}}

func newGrid(matrix [][]rune, start, end Point) *Grid {
	height := len(matrix)
	width := len(matrix[0])
	g := &Grid{
		Width:  width,
		Height: height,
		Start:  start,
		End:    end,
		cells:  make([]Cell, 0, width*height),
		matrix: matrix,
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			symbol := matrix[y][x]
			g.cells = append(g.cells, Cell{
				Point:     Point{X: x, Y: y},
				Cost:      TerrainCost(symbol),
				Reachable: symbol != WallSymbol,
			})
		}
	}
	return g
}

// InBounds reports whether p lies on the board.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cell returns the cell at p, or nil when p is off the board.
func (g *Grid) Cell(p Point) *Cell {
	if !g.InBounds(p) {
		return nil
	}
	return &g.cells[p.Y*g.Width+p.X]
}

// Symbol returns the board character at p.
func (g *Grid) Symbol(p Point) rune {
	return g.matrix[p.Y][p.X]
}

// Neighbors returns the reachable orthogonal neighbors of p that are on the board.
func (g *Grid) Neighbors(p Point) []Point {
	neighbors := make([]Point, 0, len(directions))
	for _, d := range directions {
		next := Point{X: p.X + d.X, Y: p.Y + d.Y}
		if cell := g.Cell(next); cell != nil && cell.Reachable {
			neighbors = append(neighbors, next)
		}
	}
	return neighbors
}

// Reset clears g, h, f and parents so the grid can be searched again.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i].reset()
	}
}

// Rows returns a fresh copy of the board characters, one slice per row.
func (g *Grid) Rows() [][]rune {
	rows := make([][]rune, len(g.matrix))
	for y, row := range g.matrix {
		rows[y] = append([]rune(nil), row...)
	}
	return rows
}
