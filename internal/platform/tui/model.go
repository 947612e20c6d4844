package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/litetux-lab/internal/analysis"
	"github.com/vovakirdan/litetux-lab/internal/pathing"
	"github.com/vovakirdan/litetux-lab/internal/tilegrid"
)

// Viewer layout constants
const (
	scrollStep     = 8 // tiles per horizontal scroll
	chromeHeight   = 4 // title, blank line, help, margin
	defaultWidth   = 100
	defaultHeight  = 40
	metricsReserve = 9 // rows kept for the metric columns
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
)

// ViewerModel is the Bubble Tea model for the analysis screen: the level
// with an optional overlay of the moves found by a search, and the metric
// columns beneath it.
type ViewerModel struct {
	results    []analysis.Result
	cursor     int
	showArrows bool
	freeBoard  bool
	xoff       int
	arrows     *tilegrid.Grid
	viewport   viewport.Model
	help       help.Model
	keys       ViewerKeyMap
	width      int
	height     int
	quitting   bool
}

// NewViewerModel creates a viewer over analysed levels.
func NewViewerModel(results []analysis.Result, width, height int) ViewerModel {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	m := ViewerModel{
		results:    results,
		showArrows: true,
		help:       help.New(),
		keys:       DefaultViewerKeyMap(),
		width:      width,
		height:     height,
	}
	m.viewport = viewport.New(width, m.gridHeight())
	m.refresh()
	return m
}

func (m ViewerModel) gridHeight() int {
	return max(3, m.height-chromeHeight-metricsReserve)
}

// visibleTiles is how many tiles fit across the screen.
func (m ViewerModel) visibleTiles() int {
	return max(1, m.width/2)
}

func (m ViewerModel) current() (analysis.Result, bool) {
	if m.cursor < 0 || m.cursor >= len(m.results) {
		return analysis.Result{}, false
	}
	return m.results[m.cursor], true
}

// refresh rebuilds the arrow map and the viewport content.
func (m *ViewerModel) refresh() {
	res, ok := m.current()
	if !ok || res.Metrics == nil {
		m.arrows = nil
		m.viewport.SetContent(dimStyle.Render("No analysis to show."))
		return
	}

	board := res.Metrics.RequiredBoard()
	if m.freeBoard {
		board = res.Metrics.FreeBoard()
	}
	m.arrows = nil
	if m.showArrows {
		m.arrows = pathing.ArrowMap(board)
	}

	g := res.Metrics.Grid()
	m.xoff = max(0, min(m.xoff, g.W-m.visibleTiles()))
	m.viewport.SetContent(RenderGrid(g, res.Metrics.Tiles(), m.arrows, m.xoff, m.visibleTiles()))
}

// Init initializes the viewer model.
func (m ViewerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the viewer.
func (m ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Arrows):
			m.showArrows = !m.showArrows
			m.refresh()
			return m, nil

		case key.Matches(msg, m.keys.Board):
			m.freeBoard = !m.freeBoard
			m.refresh()
			return m, nil

		case key.Matches(msg, m.keys.NextLevel):
			if len(m.results) > 0 {
				m.cursor = (m.cursor + 1) % len(m.results)
				m.xoff = 0
				m.refresh()
				m.viewport.GotoTop()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevLevel):
			if len(m.results) > 0 {
				m.cursor = (m.cursor - 1 + len(m.results)) % len(m.results)
				m.xoff = 0
				m.refresh()
				m.viewport.GotoTop()
			}
			return m, nil

		case key.Matches(msg, m.keys.Left):
			m.xoff = max(0, m.xoff-scrollStep)
			m.refresh()
			return m, nil

		case key.Matches(msg, m.keys.Right):
			m.xoff += scrollStep
			m.refresh()
			return m, nil

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = m.gridHeight()
		m.help.Width = msg.Width
		m.refresh()
		return m, nil
	}

	// Up/down and paging go to the viewport
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the viewer.
func (m ViewerModel) View() string {
	if m.quitting {
		return ""
	}

	res, ok := m.current()
	if !ok {
		return dimStyle.Render("No levels loaded.") + "\n"
	}

	var b strings.Builder

	name := res.Level.Name
	if name == "" {
		name = res.Level.ID
	}
	search := "required jumps"
	if m.freeBoard {
		search = "free jumps"
	}
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s (%d/%d)", name, m.cursor+1, len(m.results))))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %dx%d  tileset %s  search: %s  cols %d+",
		res.Report.Width, res.Report.Height, res.TileSet, search, m.xoff)))
	b.WriteString("\n")
	if res.Warning != nil {
		b.WriteString(warnStyle.Render(res.Warning.Error()))
		b.WriteString("\n")
	}
	if res.Err != nil {
		b.WriteString(warnStyle.Render(res.Err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(RenderMetrics(res.Report, m.width))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// ShowingArrows reports whether the move overlay is on.
func (m ViewerModel) ShowingArrows() bool { return m.showArrows }

// Cursor returns the index of the level on screen.
func (m ViewerModel) Cursor() int { return m.cursor }

// RunViewer runs the analysis screen until the user quits.
func RunViewer(results []analysis.Result, width, height int) error {
	p := tea.NewProgram(
		NewViewerModel(results, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
