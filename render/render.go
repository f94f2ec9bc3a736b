// Package render draws a grid.Grid as ASCII art with an optional route overlay.
//
//	+---+---+---+
//	| *   *   * |
//	+---+---+   +
//	|         * |
//	+---+---+---+
//
// Route cells are marked "*" and waypoints "@". WithCosts prints the cost of
// each open edge in the wall gap it crosses, or "~" when the two directions
// of the edge cost differently; WithColor styles markers with lipgloss.
package render

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/labyrinth/grid"
)

const (
	markPath       = "*"
	markWaypoint   = "@"
	markAsymmetric = "~"
	cellWidth      = 3
)

var (
	stylePath     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	styleWaypoint = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	styleCost     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Option configures rendering.
type Option func(*options)

type options struct {
	costs     bool
	color     bool
	waypoints map[grid.Point]bool
}

// WithCosts prints edge costs in open wall gaps: the cost of moving Right
// between columns and of moving Down between rows. Costs above 9 are shown
// as "+" in the one-character column gaps. An edge whose Left or Up cost
// differs from its Right or Down cost is shown as "~", since one gap cannot
// hold both.
func WithCosts() Option {
	return func(o *options) { o.costs = true }
}

// WithColor styles route markers, waypoints and costs.
func WithColor() Option {
	return func(o *options) { o.color = true }
}

// WithWaypoints marks pts with "@" instead of the route marker.
func WithWaypoints(pts ...grid.Point) Option {
	return func(o *options) {
		if o.waypoints == nil {
			o.waypoints = make(map[grid.Point]bool, len(pts))
		}
		for _, p := range pts {
			o.waypoints[p] = true
		}
	}
}

// Text writes g to w with p overlaid. p may be nil.
func Text(w io.Writer, g grid.Grid, p grid.Path, opts ...Option) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	onPath := make(map[grid.Point]bool, len(p))
	for _, pt := range p {
		onPath[pt] = true
	}

	bw := bufio.NewWriter(w)
	rows, cols := g.Rows(), g.Columns()

	bw.WriteString("+" + strings.Repeat("---+", cols) + "\n")
	for r := 0; r < rows; r++ {
		bw.WriteString("|")
		for c := 0; c < cols; c++ {
			pt := grid.Pt(r, c)
			bw.WriteString(o.cell(pt, onPath[pt]))
			if g.CanGo(grid.Right, r, c) {
				bw.WriteString(o.gap(g.Cost(r, c, grid.Right), g.Cost(r, c+1, grid.Left), 1))
			} else {
				bw.WriteString("|")
			}
		}
		bw.WriteString("\n+")
		for c := 0; c < cols; c++ {
			if g.CanGo(grid.Down, r, c) {
				bw.WriteString(o.gap(g.Cost(r, c, grid.Down), g.Cost(r+1, c, grid.Up), cellWidth))
			} else {
				bw.WriteString("---")
			}
			bw.WriteString("+")
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}

// String returns the rendering of g with p overlaid.
func String(g grid.Grid, p grid.Path, opts ...Option) string {
	var sb strings.Builder
	_ = Text(&sb, g, p, opts...)
	return sb.String()
}

func (o *options) cell(pt grid.Point, onPath bool) string {
	switch {
	case o.waypoints[pt]:
		return " " + o.paint(styleWaypoint, markWaypoint) + " "
	case onPath:
		return " " + o.paint(stylePath, markPath) + " "
	}
	return "   "
}

// gap renders an open wall of the given width. cost and back are the
// prices of crossing it in each direction.
func (o *options) gap(cost, back, width int) string {
	if !o.costs {
		return strings.Repeat(" ", width)
	}
	s := strconv.Itoa(cost)
	switch {
	case cost != back:
		s = markAsymmetric
	case len(s) > width:
		s = "+"
	}
	return o.paint(styleCost, lipgloss.PlaceHorizontal(width, lipgloss.Center, s))
}

func (o *options) paint(st lipgloss.Style, s string) string {
	if !o.color {
		return s
	}
	return st.Render(s)
}
