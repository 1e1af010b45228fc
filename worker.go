package gridsearch

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Report is the outcome of solving one board file.
type Report struct {
	RunID  uuid.UUID
	Board  string
	Grid   *Grid
	Result Result
	Err    error // load or search failure; nil when the search ran
}

// RunBatch solves every board independently, at most NumberOfWorkers at a
// time, and returns the reports in input order. A board that fails to load
// only marks its own report; the returned error is set when ctx ends the
// batch early.
func RunBatch(ctx context.Context, boards []string, options ...Option) ([]Report, error) {
	opts := applyOptions(options)
	reports := make([]Report, len(boards))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(opts.NumberOfWorkers)
	for i, board := range boards {
		group.Go(func() error {
			reports[i] = SolveBoard(groupCtx, board, options...)
			return groupCtx.Err()
		})
	}
	if err := group.Wait(); err != nil {
		return reports, err
	}
	return reports, nil
}

// SolveBoard loads the board at path and searches it.
func SolveBoard(ctx context.Context, path string, options ...Option) Report {
	opts := applyOptions(options)
	report := Report{RunID: uuid.New(), Board: path}
	logger := opts.Logger.WithFields(logrus.Fields{
		"board":  path,
		"run_id": report.RunID.String(),
	})

	grid, err := Load(path)
	if err != nil {
		logger.WithError(err).Warn("board rejected")
		report.Err = err
		return report
	}
	report.Grid = grid

	runOptions := append(append([]Option(nil), options...), WithLogger(logger))
	result, err := Search(ctx, grid, runOptions...)
	if err != nil {
		logger.WithError(err).Warn("search aborted")
		report.Err = err
		return report
	}
	report.Result = result

	logger.WithFields(logrus.Fields{
		"found":    result.Found,
		"cost":     result.TotalCost,
		"steps":    result.Steps(),
		"expanded": result.ExpandedNodes,
	}).Info("search finished")
	return report
}
