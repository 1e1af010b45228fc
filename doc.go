// Package gridsearch finds paths across weighted ASCII boards with either
// breadth-first search or A*.
//
// It exposes three main entry points:
//
//   - Load / Parse: turn a text board into a Grid of weighted cells.
//   - Search: run an algorithm to completion and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//
// Render paints a Result back onto the board text, and RunBatch solves several
// independent boards on a bounded worker pool.
package gridsearch
