package gridsearch

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Load example board", func(t *testing.T) {
		grid, err := Load("testdata/example.txt")
		require.NoError(t, err)

		assert.Equal(t, 3, grid.Width)
		assert.Equal(t, 3, grid.Height)
		assert.Equal(t, Point{X: 0, Y: 0}, grid.Start)
		assert.Equal(t, Point{X: 1, Y: 2}, grid.End)

		assert.False(t, grid.Cell(Point{X: 2, Y: 0}).Reachable)
		assert.False(t, grid.Cell(Point{X: 0, Y: 1}).Reachable)
		assert.True(t, grid.Cell(Point{X: 1, Y: 1}).Reachable)
	})

	t.Run("Terrain costs", func(t *testing.T) {
		grid, err := Parse(strings.NewReader("Awmfg.xB\n"))
		require.NoError(t, err)

		want := []int{1, 100, 50, 10, 5, 1, 1, 1}
		for x, cost := range want {
			assert.Equal(t, cost, grid.Cell(Point{X: x, Y: 0}).Cost, "x=%d", x)
			assert.True(t, grid.Cell(Point{X: x, Y: 0}).Reachable, "x=%d", x)
		}
	})

	t.Run("Windows line endings and trailing blank lines", func(t *testing.T) {
		grid, err := Load("testdata/crlf.txt")
		require.NoError(t, err)
		assert.Equal(t, 3, grid.Width)
		assert.Equal(t, 2, grid.Height)
		assert.Equal(t, Point{X: 2, Y: 0}, grid.End)
	})

	t.Run("First marker wins", func(t *testing.T) {
		grid, err := Parse(strings.NewReader("B.A\nA.B\n"))
		require.NoError(t, err)
		assert.Equal(t, Point{X: 2, Y: 0}, grid.Start)
		assert.Equal(t, Point{X: 0, Y: 0}, grid.End)
	})

	t.Run("Malformed boards", func(t *testing.T) {
		cases := map[string]string{
			"testdata/missing.txt": "cannot open board",
			"testdata/empty.txt":   "empty board",
			"testdata/ragged.txt":  "ragged row",
			"testdata/nostart.txt": "no start marker",
			"testdata/nogoal.txt":  "no goal marker",
		}
		for path, reason := range cases {
			_, err := Load(path)
			require.Error(t, err, path)
			assert.True(t, errors.Is(err, ErrMalformedBoard), path)

			var mbe *MalformedBoardError
			require.True(t, errors.As(err, &mbe), path)
			assert.Equal(t, reason, mbe.Reason)
			assert.Equal(t, path, mbe.Path)
			assert.Contains(t, err.Error(), path)
		}
	})

	t.Run("Ragged row reports its line", func(t *testing.T) {
		_, err := Load("testdata/ragged.txt")
		var mbe *MalformedBoardError
		require.True(t, errors.As(err, &mbe))
		assert.Equal(t, 2, mbe.Line)
		assert.Contains(t, err.Error(), "line 2")
	})
}
