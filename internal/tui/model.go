package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortvis/internal/present"
	"github.com/san-kum/sortvis/internal/sim"
)

const (
	chromeRows = 4 // status, blank, blank, help
	padCols    = 2
)

type tickMsg time.Time

type Model struct {
	ctrl   *sim.Controller
	canvas *Canvas
	theme  present.Theme
	keys   KeyMap
	help   help.Model

	styles styles

	width  int
	height int
}

func NewModel(ctrl *sim.Controller, theme present.Theme) Model {
	st := newStyles(theme.Palette)
	h := help.New()
	h.Styles.ShortKey = st.key
	h.Styles.ShortDesc = st.muted
	h.Styles.ShortSeparator = st.muted

	m := Model{
		ctrl:   ctrl,
		theme:  theme,
		keys:   DefaultKeyMap(),
		help:   h,
		styles: st,
		width:  80,
		height: 24,
	}
	m.canvas = NewCanvas(m.canvasSize())
	return m
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Init() tea.Cmd { return tick(present.DefaultIdleDelay) }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if present.Dispatch(m.ctrl, m.keys.Resolve(msg)) {
			return m, tea.Quit
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.canvas.Resize(m.canvasSize())
		return m, nil
	case tickMsg:
		delay := present.DefaultIdleDelay
		if m.ctrl.Step() {
			delay = time.Duration(m.ctrl.Speed()) * present.DefaultUnit
		}
		return m, tick(delay)
	}
	return m, nil
}

func (m Model) canvasSize() (int, int) {
	return max(m.width-2*padCols, 1), max(m.height-chromeRows, 1)
}

// layout drops the gap between bars when there is not room for one.
func (m Model) layout() present.Layout {
	w, _ := m.canvas.ViewportSize()
	gap := 1
	if w/max(m.ctrl.Len(), 1) < 2 {
		gap = 0
	}
	return present.Layout{Margin: 1, Gap: gap}
}

func (m Model) View() string {
	present.DrawFrame(m.canvas, m.ctrl, m.layout(), m.theme.Palette)

	s := m.ctrl.Stats()
	st := m.ctrl.Status()
	header := m.styles.title.Render(m.ctrl.Algorithm().Title()) + "  " +
		m.styles.status[st].Render(st) + "  " +
		m.styles.muted.Render(formatStats(m.ctrl.Speed(), m.ctrl.Len(), s))

	pad := lipgloss.NewStyle().PaddingLeft(padCols)
	return lipgloss.JoinVertical(lipgloss.Left,
		pad.Render(header),
		"",
		pad.Render(m.canvas.String()),
		pad.Render(m.help.View(m.keys)),
	)
}

// Run starts the terminal front-end and blocks until the user quits or ctx
// is done.
func Run(ctx context.Context, ctrl *sim.Controller, theme present.Theme) error {
	p := tea.NewProgram(NewModel(ctrl, theme), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
