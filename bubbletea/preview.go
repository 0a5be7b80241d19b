// Package bubbletea provides an interactive theme preview using the Bubble Tea
// framework.
package bubbletea

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/jview"
	jlipgloss "github.com/fwojciec/jview/lipgloss"
	"github.com/fwojciec/jview/logging"
)

// Compile-time interface verification.
var _ jview.ThemePreviewer = (*Previewer)(nil)

const ellipsis = "…"

// PreviewModel is the Bubble Tea model that draws a sample document with
// the resolved theme. The cursor line uses the focused states and segments
// containing the match term use the matched states.
type PreviewModel struct {
	painter   *jlipgloss.Painter
	lines     []jview.Line
	match     string
	showMatch bool
	keymap    KeyMap

	cursor   int
	width    int
	viewport viewport.Model
	ready    bool
}

// PreviewOption configures a PreviewModel.
type PreviewOption func(*PreviewModel)

// WithMatch highlights segments containing term as search matches.
func WithMatch(term string) PreviewOption {
	return func(m *PreviewModel) {
		m.match = term
		m.showMatch = term != ""
	}
}

// WithLines replaces the sample document.
func WithLines(lines []jview.Line) PreviewOption {
	return func(m *PreviewModel) {
		m.lines = lines
	}
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(km KeyMap) PreviewOption {
	return func(m *PreviewModel) {
		m.keymap = km
	}
}

// NewPreviewModel creates a PreviewModel drawing with painter.
func NewPreviewModel(painter *jlipgloss.Painter, opts ...PreviewOption) PreviewModel {
	m := PreviewModel{
		painter: painter,
		lines:   SampleDocument(),
		keymap:  DefaultKeyMap(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Cursor returns the index of the focused line.
func (m PreviewModel) Cursor() int {
	return m.cursor
}

// Init implements tea.Model.
func (m PreviewModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m PreviewModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	half := max(m.viewport.Height/2, 1)

	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keymap.PrevLine):
		m.moveCursor(m.cursor - 1)
	case key.Matches(msg, m.keymap.NextLine):
		m.moveCursor(m.cursor + 1)
	case key.Matches(msg, m.keymap.HalfUp):
		m.moveCursor(m.cursor - half)
	case key.Matches(msg, m.keymap.HalfDown):
		m.moveCursor(m.cursor + half)
	case key.Matches(msg, m.keymap.FirstLine):
		m.moveCursor(0)
	case key.Matches(msg, m.keymap.LastLine):
		m.moveCursor(len(m.lines) - 1)
	case key.Matches(msg, m.keymap.ToggleMatch):
		m.showMatch = !m.showMatch && m.match != ""
		m.refresh()
	}
	return m, nil
}

func (m PreviewModel) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	// One row is reserved for the status bar.
	height := max(msg.Height-1, 1)
	m.width = msg.Width
	if !m.ready {
		m.viewport = viewport.New(msg.Width, height)
		m.ready = true
	} else {
		m.viewport.Width = msg.Width
		m.viewport.Height = height
	}
	m.refresh()
	return m, nil
}

func (m *PreviewModel) moveCursor(line int) {
	m.cursor = max(0, min(line, len(m.lines)-1))
	m.refresh()
}

// refresh redraws the document and keeps the cursor line visible.
func (m *PreviewModel) refresh() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.render())

	switch {
	case m.cursor < m.viewport.YOffset:
		m.viewport.SetYOffset(m.cursor)
	case m.cursor >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(m.cursor - m.viewport.Height + 1)
	}
}

// View implements tea.Model.
func (m PreviewModel) View() string {
	if !m.ready {
		return "Loading..."
	}
	return m.viewport.View() + "\n" + m.renderStatusBar()
}

func (m PreviewModel) render() string {
	rows := make([]string, len(m.lines))
	for i, line := range m.lines {
		rows[i] = m.renderLine(line, i == m.cursor)
	}
	return strings.Join(rows, "\n")
}

func (m PreviewModel) renderLine(line jview.Line, focused bool) string {
	var sb strings.Builder
	indent := strings.Repeat("  ", line.Depth)
	sb.WriteString(m.painter.RenderDefault(indent))
	col := lipgloss.Width(indent)

	for _, segment := range line.Segments {
		state := jview.StateFor(focused, m.matches(segment.Text))
		text := segment.Text
		truncated := false
		if segment.Element == jview.ElementPreview && m.width > 0 {
			text, truncated = truncate(text, m.width-col-lipgloss.Width(ellipsis))
		}
		sb.WriteString(m.painter.Render(segment.Element, state, text))
		col += lipgloss.Width(text)
		if truncated {
			sb.WriteString(m.renderEllipsis(focused))
			col += lipgloss.Width(ellipsis)
		}
	}
	return sb.String()
}

func (m PreviewModel) renderEllipsis(focused bool) string {
	return m.painter.RenderChrome(jview.ElementEllipsis, jview.StateFor(focused, false), ellipsis)
}

func (m PreviewModel) matches(text string) bool {
	return m.showMatch && strings.Contains(text, m.match)
}

func (m PreviewModel) renderStatusBar() string {
	if len(m.lines) == 0 {
		return m.painter.RenderDimmed(" empty document")
	}
	line := m.lines[m.cursor]
	status := fmt.Sprintf(" %d/%d  %s", m.cursor+1, len(m.lines), strings.Join(line.Elements(), " "))
	if m.showMatch {
		status += fmt.Sprintf("  match %q", m.match)
	}
	if !m.painter.Themed() {
		status += "  (unthemed)"
	}
	return m.painter.RenderDimmed(status)
}

// truncate cuts s to at most width cells unless s fits in the space the
// ellipsis would otherwise take. It reports whether anything was removed.
func truncate(s string, width int) (string, bool) {
	if lipgloss.Width(s) <= width+lipgloss.Width(ellipsis) {
		return s, false
	}
	var sb strings.Builder
	col := 0
	for _, r := range s {
		w := lipgloss.Width(string(r))
		if col+w > width {
			break
		}
		sb.WriteRune(r)
		col += w
	}
	return sb.String(), true
}

// Previewer implements jview.ThemePreviewer using a Bubble Tea TUI.
type Previewer struct {
	renderer *lipgloss.Renderer
	opts     []PreviewOption
}

// NewPreviewer creates a Previewer drawing with renderer. If renderer is nil,
// the default Lipgloss renderer is used.
func NewPreviewer(renderer *lipgloss.Renderer, opts ...PreviewOption) *Previewer {
	return &Previewer{
		renderer: renderer,
		opts:     opts,
	}
}

// Preview displays the sample document and blocks until the user exits or
// ctx is cancelled.
func (p *Previewer) Preview(ctx context.Context, highlighter *jview.Highlighter) error {
	log := logging.Component("preview")
	log.Debug().Bool("themed", highlighter.Themed()).Msg("starting preview")

	m := NewPreviewModel(jlipgloss.NewPainter(p.renderer, highlighter), p.opts...)
	prog := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run preview: %w", err)
	}
	return nil
}
