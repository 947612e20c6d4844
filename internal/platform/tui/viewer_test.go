package tui

import (
	"context"
	"regexp"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/litetux-lab/internal/analysis"
	"github.com/vovakirdan/litetux-lab/internal/levels"
	"github.com/vovakirdan/litetux-lab/internal/metrics"
	"github.com/vovakirdan/litetux-lab/internal/pathing"
	"github.com/vovakirdan/litetux-lab/internal/tilegrid"
	"github.com/vovakirdan/litetux-lab/internal/tiles"
)

var ansi = regexp.MustCompile("\x1b\\[[0-9;]*m")

func plain(s string) string { return ansi.ReplaceAllString(s, "") }

func mustGrid(t *testing.T, rows ...[]int) *tilegrid.Grid {
	t.Helper()
	g, err := tilegrid.FromRows(rows)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestArrowGlyph(t *testing.T) {
	tests := []struct {
		mask int
		want rune
	}{
		{0, ' '},
		{int(pathing.ArrowRight), '→'},
		{int(pathing.ArrowUpLeft), '↖'},
		{int(pathing.ArrowRight | pathing.ArrowUp), '*'},
	}
	for _, tt := range tests {
		if got := ArrowGlyph(tt.mask); got != tt.want {
			t.Errorf("ArrowGlyph(%d) = %q, want %q", tt.mask, got, tt.want)
		}
	}
}

func TestTileGlyph(t *testing.T) {
	set := tiles.LiteTux()
	tests := []struct {
		code int
		want rune
	}{
		{tiles.Empty, ' '},
		{tiles.Ground, '#'},
		{tiles.Owl, 'w'},
		{tiles.Coinbox, '?'},
		{99, '?'},
		{-1, '?'},
	}
	for _, tt := range tests {
		if got, _ := TileGlyph(set, tt.code); got != tt.want {
			t.Errorf("TileGlyph(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestRenderGrid(t *testing.T) {
	set := tiles.LiteTux()
	g := mustGrid(t, []int{tiles.Empty, tiles.Coin}, []int{tiles.Ground, tiles.Ground})

	if got := plain(RenderGrid(g, set, nil, 0, 0)); got != "  o \n# # " {
		t.Errorf("unexpected grid:\n%q", got)
	}
	if got := plain(RenderGrid(g, set, nil, 1, 1)); got != "o \n# " {
		t.Errorf("unexpected scrolled grid:\n%q", got)
	}

	arrows := tilegrid.New(2, 2)
	arrows.Set(0, 0, int(pathing.ArrowRight))
	if got := plain(RenderGrid(g, set, arrows, 0, 0)); got != " →o \n# # " {
		t.Errorf("unexpected arrow overlay:\n%q", got)
	}
}

func TestMetricColumns(t *testing.T) {
	cols := MetricColumns(metrics.Report{Width: 5, Height: 3, Empty: 10, Linearity: 0.123456})
	if len(cols) != 4 {
		t.Fatalf("expected 4 columns, got %d", len(cols))
	}
	titles := []string{"Tile Statistics", "Difficulty", "Structure", "Motion"}
	for i, want := range titles {
		if cols[i].Title != want {
			t.Errorf("column %d: expected %q, got %q", i, want, cols[i].Title)
		}
	}
	if got := cols[0].Fields[0].Value; got != "10 (66.6667%)" {
		t.Errorf("empty share = %q", got)
	}
	if got := cols[2].Fields[0].Value; got != "0.1235" {
		t.Errorf("linearity = %q", got)
	}

	if got := MetricColumns(metrics.Report{})[0].Fields[0].Value; got != "0 (0%)" {
		t.Errorf("empty report share = %q", got)
	}
}

func analysed(t *testing.T, ids ...string) []analysis.Result {
	t.Helper()
	r := analysis.NewRunner(metrics.DefaultOptions())
	var out []analysis.Result
	for _, id := range ids {
		lvl := levels.Level{
			ID:       id,
			Grid:     mustGrid(t, []int{0, 0, 0}, []int{0, 0, 0}, []int{8, 8, 8}),
			Start:    tilegrid.C(0, 1),
			HasStart: true,
		}
		res, err := r.Analyze(context.Background(), lvl)
		if err != nil {
			t.Fatal(err)
		}
		out = append(out, res)
	}
	return out
}

func TestViewerModel(t *testing.T) {
	m := NewViewerModel(analysed(t, "first", "second"), 80, 40)

	view := plain(m.View())
	for _, want := range []string{"first (1/2)", "Tile Statistics", "Motion"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	m = next.(ViewerModel)
	if m.ShowingArrows() {
		t.Error("arrows should be off after toggle")
	}
	if plain(m.View()) == view {
		t.Error("view unchanged after hiding arrows")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ViewerModel)
	if m.Cursor() != 1 || !strings.Contains(plain(m.View()), "second (2/2)") {
		t.Errorf("tab did not move to next level, cursor %d", m.Cursor())
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = next.(ViewerModel)
	if cmd == nil || m.View() != "" {
		t.Error("q should quit")
	}
}

func TestViewerWithoutResults(t *testing.T) {
	m := NewViewerModel(nil, 0, 0)
	if !strings.Contains(m.View(), "No levels loaded.") {
		t.Errorf("unexpected view: %q", m.View())
	}
	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	if next.(ViewerModel).View() == "" {
		t.Error("resize should keep the view")
	}
}
