package gridsearch

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

// Algorithm selects the frontier discipline of a search.
type Algorithm string

const (
	BFS   Algorithm = "bfs"
	AStar Algorithm = "astar"
)

// ParseAlgorithm accepts "bfs", "astar" and "a*" in any case.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs":
		return BFS, nil
	case "astar", "a*":
		return AStar, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

func (a Algorithm) newFrontier() (frontier, error) {
	switch a {
	case BFS:
		return &fifoFrontier{}, nil
	case AStar:
		return newHeapFrontier(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(a))
}

// Options defines parameters for the search.
type Options struct {
	Algorithm       Algorithm
	Heuristic       Heuristic
	NumberOfWorkers int // boards solved concurrently by RunBatch
	Logger          logrus.FieldLogger
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithAlgorithm selects BFS or AStar.
func WithAlgorithm(algorithm Algorithm) Option {
	return func(options *Options) { options.Algorithm = algorithm }
}

// WithHeuristic replaces the Manhattan distance estimate.
func WithHeuristic(heuristic Heuristic) Option {
	return func(options *Options) {
		if heuristic != nil {
			options.Heuristic = heuristic
		}
	}
}

// WithWorkers specifies how many boards RunBatch may solve at once.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) {
		if numberOfWorkers > 0 {
			options.NumberOfWorkers = numberOfWorkers
		}
	}
}

// WithLogger routes debug output of the search to logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(options *Options) {
		if logger != nil {
			options.Logger = logger
		}
	}
}

func applyOptions(options []Option) Options {
	searchOptions := Options{
		Algorithm:       AStar,
		Heuristic:       Manhattan,
		NumberOfWorkers: runtime.NumCPU(),
		Logger:          discardLogger(),
	}
	for _, option := range options {
		option(&searchOptions)
	}
	return searchOptions
}

func discardLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
