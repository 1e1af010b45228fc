package gridsearch

import (
	"context"

	"github.com/andybb/TDT4136/internal"
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot struct {
	Current   Point
	Open      map[Point]bool
	Closed    map[Point]bool
	Done      bool
	Found     bool
	Path      []Point
	StepIndex int
}

// Stepper runs a search one expansion at a time.
//
// Every cell is unseen, open or closed. A cell becomes open the first time it
// is discovered, with g, h, f and parent computed right away. Rediscovering an
// open cell through a strictly cheaper route overwrites its state in place.
// A popped cell is closed for good: it is never relaxed or expanded again.
type Stepper struct {
	ctx       context.Context
	cancel    context.CancelFunc
	grid      *Grid
	algorithm Algorithm
	heuristic Heuristic
	logger    logrus.FieldLogger

	frontier frontier
	open     mapset.Set[Point]
	closed   mapset.Set[Point]

	current   Point
	stepCount int
	done      bool
	found     bool
	path      []Point
}

// NewStepper resets grid and seeds the frontier with its start cell.
func NewStepper(parent context.Context, grid *Grid, options ...Option) (*Stepper, error) {
	opts := applyOptions(options)
	front, err := opts.Algorithm.newFrontier()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(parent)
	s := &Stepper{
		ctx: ctx, cancel: cancel,
		grid: grid, algorithm: opts.Algorithm, heuristic: opts.Heuristic,
		logger:   opts.Logger.WithField("algorithm", string(opts.Algorithm)),
		frontier: front,
		open:     mapset.New[Point](),
		closed:   mapset.New[Point](),
	}

	grid.Reset()
	start := grid.Cell(grid.Start)
	start.H = s.heuristic(grid.Start, grid.End)
	start.F = start.H
	s.open.Put(grid.Start)
	s.frontier.push(grid.Start, start.F)

	s.logger.WithFields(logrus.Fields{
		"start": grid.Start.String(),
		"goal":  grid.End.String(),
	}).Debug("search started")
	return s, nil
}

// Close stops the stepper; later calls to Step report the cancellation.
func (s *Stepper) Close() {
	if s.cancel != nil {
		s.cancel()
	}
}

// Algorithm reports which search this stepper runs.
func (s *Stepper) Algorithm() Algorithm { return s.algorithm }

// Step advances the search by one node expansion and returns a snapshot
func (s *Stepper) Step() (StepSnapshot, error) {
	if err := s.advance(); err != nil {
		return StepSnapshot{Done: true, StepIndex: s.stepCount}, err
	}
	return s.snapshot(), nil
}

// Done reports whether the search has finished, found or not.
func (s *Stepper) Done() bool { return s.done }

func (s *Stepper) advance() error {
	if s.done {
		return nil
	}
	if err := s.ctx.Err(); err != nil {
		s.done = true
		return err
	}

	current, ok := s.nextOpen()
	if !ok {
		s.done = true
		s.logger.WithField("expanded", s.closed.Size()).Debug("frontier exhausted")
		return nil
	}

	s.stepCount++
	s.current = current
	s.open.Remove(current)
	s.closed.Put(current)

	if current == s.grid.End {
		s.done = true
		s.found = true
		s.path, _ = internal.ReconstructPath(s.parentOf, current, s.grid.Start, s.grid.Width*s.grid.Height)
		s.logger.WithFields(logrus.Fields{
			"cost":     s.grid.Cell(current).G,
			"expanded": s.closed.Size(),
		}).Debug("goal reached")
		return nil
	}

	s.expand(s.grid.Cell(current))
	return nil
}

// nextOpen pops entries until one belongs to a cell that is not closed yet.
func (s *Stepper) nextOpen() (Point, bool) {
	for {
		p, ok := s.frontier.pop()
		if !ok {
			return Point{}, false
		}
		if !s.closed.Has(p) {
			return p, true
		}
	}
}

func (s *Stepper) expand(cell *Cell) {
	for _, p := range s.grid.Neighbors(cell.Point) {
		if s.closed.Has(p) {
			continue
		}
		neighbor := s.grid.Cell(p)
		if s.open.Has(p) {
			if neighbor.G > cell.G+neighbor.Cost {
				neighbor.relax(cell, s.heuristic(p, s.grid.End))
				s.frontier.improved(p, neighbor.F)
			}
			continue
		}
		neighbor.relax(cell, s.heuristic(p, s.grid.End))
		s.open.Put(p)
		s.frontier.push(p, neighbor.F)
	}
}

func (s *Stepper) parentOf(p Point) (Point, bool) {
	cell := s.grid.Cell(p)
	if cell == nil || !cell.HasParent {
		return Point{}, false
	}
	return cell.Parent, true
}

func (s *Stepper) snapshot() StepSnapshot {
	return StepSnapshot{
		Current:   s.current,
		Open:      setToBoolMap(s.open),
		Closed:    setToBoolMap(s.closed),
		Done:      s.done,
		Found:     s.found,
		Path:      append([]Point(nil), s.path...),
		StepIndex: s.stepCount,
	}
}

func setToBoolMap(set mapset.Set[Point]) map[Point]bool {
	m := make(map[Point]bool, set.Size())
	set.Each(func(p Point) {
		m[p] = true
	})
	return m
}
