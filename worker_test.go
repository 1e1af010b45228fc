package gridsearch

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunBatch(t *testing.T) {
	boards := []string{
		"testdata/example.txt",
		"testdata/walled.txt",
		"testdata/missing.txt",
		"testdata/shortcut.txt",
	}

	t.Run("Reports follow input order", func(t *testing.T) {
		logger, hook := test.NewNullLogger()
		logger.SetLevel(logrus.DebugLevel)

		reports, err := RunBatch(context.Background(), boards,
			WithAlgorithm(AStar), WithWorkers(2), WithLogger(logger))
		require.NoError(t, err)
		require.Len(t, reports, len(boards))

		for i, report := range reports {
			assert.Equal(t, boards[i], report.Board)
			assert.NotEqual(t, uuid.Nil, report.RunID)
		}
		assert.NotEqual(t, reports[0].RunID, reports[1].RunID)

		assert.NoError(t, reports[0].Err)
		assert.True(t, reports[0].Result.Found)
		assert.Equal(t, 3, reports[0].Result.TotalCost)

		assert.NoError(t, reports[1].Err)
		assert.False(t, reports[1].Result.Found)

		assert.True(t, errors.Is(reports[2].Err, ErrMalformedBoard))
		assert.Nil(t, reports[2].Grid)

		assert.True(t, reports[3].Result.Found)
		assert.Equal(t, 4, reports[3].Result.TotalCost)

		finished := 0
		for _, entry := range hook.AllEntries() {
			if entry.Message == "search finished" {
				finished++
				assert.Contains(t, entry.Data, "run_id")
				assert.Contains(t, entry.Data, "board")
			}
			if entry.Message == "board rejected" {
				assert.Equal(t, "testdata/missing.txt", entry.Data["board"])
				assert.Equal(t, logrus.WarnLevel, entry.Level)
			}
		}
		assert.Equal(t, 3, finished)
	})

	t.Run("Single worker", func(t *testing.T) {
		reports, err := RunBatch(context.Background(), boards[:2], WithAlgorithm(BFS), WithWorkers(1))
		require.NoError(t, err)
		assert.True(t, reports[0].Result.Found)
		assert.Equal(t, BFS, reports[0].Result.Algorithm)
	})

	t.Run("Cancelled batch", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		reports, err := RunBatch(ctx, boards[:1])
		assert.True(t, errors.Is(err, context.Canceled))
		require.Len(t, reports, 1)
		assert.True(t, errors.Is(reports[0].Err, context.Canceled))
	})
}

func TestRunBatchSampleBoards(t *testing.T) {
	boards, err := filepath.Glob("boards/*.txt")
	require.NoError(t, err)
	require.Len(t, boards, 3)

	want := map[string]bool{
		"boards/board-1-1.txt": true,
		"boards/board-1-4.txt": false,
		"boards/board-2-1.txt": true,
	}
	for _, algorithm := range algorithms {
		t.Run(string(algorithm), func(t *testing.T) {
			reports, err := RunBatch(context.Background(), boards, WithAlgorithm(algorithm))
			require.NoError(t, err)
			require.Len(t, reports, len(boards))

			for _, report := range reports {
				require.NoError(t, report.Err, report.Board)
				found, known := want[filepath.ToSlash(report.Board)]
				require.True(t, known, report.Board)
				assert.Equal(t, found, report.Result.Found, report.Board)
				if found {
					assert.Equal(t, pathCost(report.Grid, report.Result.Path), report.Result.TotalCost, report.Board)
				}
			}
		})
	}

	t.Run("Open board costs agree", func(t *testing.T) {
		bfs := SolveBoard(context.Background(), "boards/board-1-1.txt", WithAlgorithm(BFS))
		astar := SolveBoard(context.Background(), "boards/board-1-1.txt", WithAlgorithm(AStar))
		require.NoError(t, bfs.Err)
		require.NoError(t, astar.Err)
		assert.Equal(t, 23, bfs.Result.TotalCost)
		assert.Equal(t, 23, astar.Result.TotalCost)
	})
}
