// Package render draws a patrol as text frames, one per step.
//
// A Renderer is an observer: it is subscribed to an Engine with
// patrol.WithOnStep and keeps its own copy of the visited cells, so the
// engine stays free of output and timing concerns.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/patrol/grid"
	"github.com/katalvlaran/patrol/patrol"
)

// Frame symbols.
const (
	SymbolVisited = 'X'
	clearScreen   = "\x1b[2J\x1b[H"
)

// Palette for colored frames.
var (
	colorObstacle = lipgloss.Color("#E74C3C")
	colorVisited  = lipgloss.Color("#1D9DA0")
	colorAgent    = lipgloss.Color("#F4D03F")
	colorEmpty    = lipgloss.Color("#2C4A54")
)

// Styles maps each cell kind to a lipgloss style.
type Styles struct {
	Empty    lipgloss.Style
	Obstacle lipgloss.Style
	Visited  lipgloss.Style
	Agent    lipgloss.Style
	Status   lipgloss.Style
}

// DefaultStyles returns the colored palette.
func DefaultStyles() Styles {
	return Styles{
		Empty:    lipgloss.NewStyle().Foreground(colorEmpty),
		Obstacle: lipgloss.NewStyle().Foreground(colorObstacle).Bold(true),
		Visited:  lipgloss.NewStyle().Foreground(colorVisited),
		Agent:    lipgloss.NewStyle().Foreground(colorAgent).Bold(true),
		Status:   lipgloss.NewStyle().Faint(true),
	}
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithDelay pauses for d after every frame. Non-positive values disable it.
func WithDelay(d time.Duration) Option {
	return func(r *Renderer) {
		if d > 0 {
			r.delay = d
		}
	}
}

// WithClear prefixes every frame with an ANSI clear-screen and cursor-home sequence.
func WithClear() Option {
	return func(r *Renderer) { r.clear = true }
}

// WithColor styles frames with DefaultStyles.
func WithColor() Option {
	return func(r *Renderer) {
		s := DefaultStyles()
		r.styles = &s
	}
}

// WithSleep replaces time.Sleep, mainly for tests.
func WithSleep(fn func(time.Duration)) Option {
	return func(r *Renderer) {
		if fn != nil {
			r.sleep = fn
		}
	}
}

// Renderer writes one frame per observed step.
type Renderer struct {
	w      io.Writer
	delay  time.Duration
	clear  bool
	styles *Styles
	sleep  func(time.Duration)
	err    error
}

// New returns a Renderer writing to w.
func New(w io.Writer, opts ...Option) *Renderer {
	r := &Renderer{w: w, sleep: time.Sleep}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Observer returns a step hook for an engine patrolling g, to be passed
// to patrol.WithOnStep. The start cell is visited before the first step.
func (r *Renderer) Observer(g *grid.Grid, start grid.Start) func(patrol.StepEvent) {
	visited := patrol.NewVisited(g)
	visited.Record(start.Position)
	return func(ev patrol.StepEvent) {
		visited.Record(ev.Before.Position)
		visited.Record(ev.After.Position)
		r.draw(g, visited, ev)
	}
}

// Err returns the first write error, if any. Rendering stops after it.
func (r *Renderer) Err() error {
	return r.err
}

func (r *Renderer) draw(g *grid.Grid, visited *patrol.Visited, ev patrol.StepEvent) {
	if r.err != nil {
		return
	}
	var sb strings.Builder
	if r.clear {
		sb.WriteString(clearScreen)
	}
	agent := &ev.After
	if ev.Status == patrol.Exited {
		agent = nil
	}
	writeFrame(&sb, g, visited, agent, r.styles)
	status := fmt.Sprintf("step %d  visited %d  %s", ev.Step, ev.Visited, ev.Status)
	if r.styles != nil {
		status = r.styles.Status.Render(status)
	}
	sb.WriteString(status)
	sb.WriteByte('\n')

	if _, err := io.WriteString(r.w, sb.String()); err != nil {
		r.err = err
		return
	}
	if r.delay > 0 {
		r.sleep(r.delay)
	}
}

// Frame returns the plain text picture of g: obstacles "#", visited cells
// "X", the agent's glyph, and "." elsewhere. A nil agent is not drawn.
func Frame(g *grid.Grid, visited *patrol.Visited, agent *patrol.Agent) string {
	var sb strings.Builder
	writeFrame(&sb, g, visited, agent, nil)
	return sb.String()
}

func writeFrame(sb *strings.Builder, g *grid.Grid, visited *patrol.Visited, agent *patrol.Agent, styles *Styles) {
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			ch := cellSymbol(g, visited, agent, grid.Position{Row: row, Col: col})
			if styles == nil {
				sb.WriteRune(ch)
				continue
			}
			sb.WriteString(styles.forSymbol(ch).Render(string(ch)))
		}
		sb.WriteByte('\n')
	}
}

// cellSymbol picks the symbol for p; the agent wins over everything else.
func cellSymbol(g *grid.Grid, visited *patrol.Visited, agent *patrol.Agent, p grid.Position) rune {
	switch {
	case agent != nil && agent.Position == p:
		return agent.Direction.Glyph()
	case g.IsObstacle(p):
		return grid.SymbolObstacle
	case visited != nil && visited.Contains(p):
		return SymbolVisited
	default:
		return grid.SymbolEmpty
	}
}

func (s *Styles) forSymbol(ch rune) lipgloss.Style {
	switch ch {
	case grid.SymbolObstacle:
		return s.Obstacle
	case SymbolVisited:
		return s.Visited
	case grid.SymbolEmpty:
		return s.Empty
	default:
		return s.Agent
	}
}
