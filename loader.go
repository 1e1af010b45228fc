package gridsearch

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
)

const (
	WallSymbol  = '#'
	StartSymbol = 'A'
	GoalSymbol  = 'B'

	defaultCost = 1
)

var terrainCosts = map[rune]int{
	'w': 100,
	'm': 50,
	'f': 10,
	'g': 5,
}

// TerrainCost maps a board character to the cost of entering it.
// Unknown characters cost 1.
func TerrainCost(symbol rune) int {
	if cost, ok := terrainCosts[symbol]; ok {
		return cost
	}
	return defaultCost
}

// Load reads the board at path.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &MalformedBoardError{Path: path, Reason: "cannot open board", Err: err}
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		var mbe *MalformedBoardError
		if errors.As(err, &mbe) {
			mbe.Path = path
		}
		return nil, err
	}
	return g, nil
}

// Parse reads a board, one row per line. Line terminators are stripped and
// every row must have the same width. The first A and the first B found
// become the start and the goal.
func Parse(r io.Reader) (*Grid, error) {
	var matrix [][]rune
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		matrix = append(matrix, []rune(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, &MalformedBoardError{Reason: "cannot read board", Err: err}
	}
	// trailing blank lines are not rows
	for len(matrix) > 0 && len(matrix[len(matrix)-1]) == 0 {
		matrix = matrix[:len(matrix)-1]
	}
	if len(matrix) == 0 {
		return nil, &MalformedBoardError{Reason: "empty board"}
	}
	for y, row := range matrix {
		if len(row) != len(matrix[0]) {
			return nil, &MalformedBoardError{Line: y + 1, Reason: "ragged row"}
		}
	}

	start, hasStart := locate(matrix, StartSymbol)
	if !hasStart {
		return nil, &MalformedBoardError{Reason: "no start marker"}
	}
	end, hasEnd := locate(matrix, GoalSymbol)
	if !hasEnd {
		return nil, &MalformedBoardError{Reason: "no goal marker"}
	}
	return newGrid(matrix, start, end), nil
}

func locate(matrix [][]rune, symbol rune) (Point, bool) {
	for y, row := range matrix {
		for x, c := range row {
			if c == symbol {
				return Point{X: x, Y: y}, true
			}
		}
	}
	return Point{}, false
}
