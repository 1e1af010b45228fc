package gridsearch

import (
	"fmt"
	"strings"
)

const (
	FrontierMarker = '*'
	ClosedMarker   = 'x'
	PathMarker     = 'o'
)

// Overlay controls whether the frontier and closed sets are painted.
type Overlay int

const (
	// OverlayAuto paints the sets for BFS results only.
	OverlayAuto Overlay = iota
	OverlayOn
	OverlayOff
)

// ParseOverlay accepts "auto", "on" and "off".
func ParseOverlay(name string) (Overlay, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return OverlayAuto, nil
	case "on", "true", "yes":
		return OverlayOn, nil
	case "off", "false", "no":
		return OverlayOff, nil
	}
	return OverlayAuto, fmt.Errorf("unknown overlay %q", name)
}

func (o Overlay) String() string {
	switch o {
	case OverlayOn:
		return "on"
	case OverlayOff:
		return "off"
	}
	return "auto"
}

func (o Overlay) enabled(algorithm Algorithm) bool {
	switch o {
	case OverlayOn:
		return true
	case OverlayOff:
		return false
	}
	return algorithm == BFS
}

type renderOptions struct {
	overlay Overlay
}

// RenderOption tweaks Render.
type RenderOption func(*renderOptions)

// WithOverlay overrides the default set overlay policy.
func WithOverlay(overlay Overlay) RenderOption {
	return func(o *renderOptions) { o.overlay = overlay }
}

// Render paints result onto a copy of the board. Frontier and closed cells are
// drawn first so the path marks win; the start and goal markers are never
// overwritten. Rows are newline terminated.
func Render(grid *Grid, result Result, options ...RenderOption) string {
	opts := renderOptions{overlay: OverlayAuto}
	for _, option := range options {
		option(&opts)
	}

	rows := grid.Rows()
	paint := func(p Point, marker rune) {
		if !grid.InBounds(p) || p == grid.Start || p == grid.End {
			return
		}
		rows[p.Y][p.X] = marker
	}

	if opts.overlay.enabled(result.Algorithm) {
		for p := range result.Open {
			paint(p, FrontierMarker)
		}
		for p := range result.Closed {
			paint(p, ClosedMarker)
		}
	}
	if result.Found {
		for _, p := range result.Path {
			paint(p, PathMarker)
		}
	}

	var board strings.Builder
	for _, row := range rows {
		board.WriteString(string(row))
		board.WriteByte('\n')
	}
	return board.String()
}
