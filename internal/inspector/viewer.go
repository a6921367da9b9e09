// Package inspector renders a before/after comparison of one ring's
// simplification as a pair of braille-dot canvases in a terminal, for the
// `simplifyd inspect` developer tool. It has no role in the service's
// request path.
package inspector

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/polyforge/simplifyd/internal/geomint"
	"github.com/polyforge/simplifyd/internal/simplify"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	paneStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#243141")).Padding(0, 1)
)

// keyMap is the single binding this viewer recognizes; it exists so the
// footer can be rendered through bubbles/help rather than a hand-built
// string.
type keyMap struct {
	Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding  { return []key.Binding{k.Quit} }
func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Quit}} }

var defaultKeys = keyMap{
	Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("any key", "quit")),
}

// Model is a static bubbletea model: it renders one frame comparing before
// and after, then quits on any key press.
type Model struct {
	before, after simplify.Ring
	width, height int
	paneW, paneH  int
	help          help.Model
	keys          keyMap
}

// NewModel builds a Model comparing before against after.
func NewModel(before, after simplify.Ring) Model {
	return Model{before: before, after: after, paneW: 48, paneH: 20, help: help.New(), keys: defaultKeys}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() string {
	before := paneStyle.Render(titleStyle.Render("before") + "\n" + renderRing(m.before, m.paneW, m.paneH))
	after := paneStyle.Render(titleStyle.Render("after") + "\n" + renderRing(m.after, m.paneW, m.paneH))
	body := lipgloss.JoinHorizontal(lipgloss.Top, before, " ", after)
	counts := dimStyle.Render(fmt.Sprintf(" %d -> %d vertices ", len(m.before.Points), len(m.after.Points)))
	footer := lipgloss.JoinHorizontal(lipgloss.Left, counts, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

// renderRing rasterizes one ring's edges (and its closing edge, if closed)
// into a w x h braille canvas, scaled so the ring's bounding box spans the
// whole canvas (no margin).
func renderRing(r simplify.Ring, w, h int) string {
	if len(r.Points) == 0 {
		return dimStyle.Render("(empty)")
	}

	minX, minY := r.Points[0].X, r.Points[0].Y
	maxX, maxY := minX, minY
	for _, p := range r.Points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	spanX, spanY := maxX-minX, maxY-minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}

	wMic, hMic := w*2, h*4
	project := func(p geomint.Point) (int, int) {
		nx := float64(p.X-minX) / float64(spanX)
		ny := float64(p.Y-minY) / float64(spanY)
		mx := int(nx * float64(wMic-1))
		my := int((1.0 - ny) * float64(hMic-1))
		return mx, my
	}

	buf := newBrailleBuf(w, h)
	n := len(r.Points)
	edges := n - 1
	if r.Closed {
		edges = n
	}
	for i := 0; i < edges; i++ {
		a, b := r.Points[i], r.Points[(i+1)%n]
		ax, ay := project(a)
		bx, by := project(b)
		buf.drawLineMicro(ax, ay, bx, by)
	}

	lines := buf.toLines()
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n"
		}
		out += l
	}
	return out
}
