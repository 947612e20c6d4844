package tui

import (
	"fmt"
	"math"
	"math/bits"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/litetux-lab/internal/metrics"
	"github.com/vovakirdan/litetux-lab/internal/pathing"
	"github.com/vovakirdan/litetux-lab/internal/tilegrid"
	"github.com/vovakirdan/litetux-lab/internal/tiles"
)

// liteTuxGlyphs draws the default tile set.
var liteTuxGlyphs = map[int]rune{
	tiles.Empty:          ' ',
	tiles.FallingSpike:   'V',
	tiles.Cloud:          '~',
	tiles.Owl:            'w',
	tiles.Coin:           'o',
	tiles.Snowball:       '@',
	tiles.LargeCoin:      'O',
	tiles.MrIceblock:     'M',
	tiles.Ground:         '#',
	tiles.GroundSpike:    '^',
	tiles.BreakableBrick: '%',
	tiles.SlipperyGround: '=',
	tiles.Coinbox:        '?',
	tiles.CollapsingWall: '&',
	tiles.PowerUp:        '!',
	tiles.Cannon:         'C',
}

var arrowGlyphs = map[uint8]rune{
	pathing.ArrowUp:        '↑',
	pathing.ArrowUpRight:   '↗',
	pathing.ArrowRight:     '→',
	pathing.ArrowDownRight: '↘',
	pathing.ArrowDown:      '↓',
	pathing.ArrowDownLeft:  '↙',
	pathing.ArrowLeft:      '←',
	pathing.ArrowUpLeft:    '↖',
}

var (
	solidStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	hazardStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	enemyStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	rewardStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	interestingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	plainStyle       = lipgloss.NewStyle()
	arrowStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	invalidStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	columnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// TileGlyph returns the character and style used for a tile code.
func TileGlyph(set *tiles.Set, code int) (rune, lipgloss.Style) {
	d, ok := set.Def(code)
	if !ok {
		return '?', invalidStyle
	}
	style := plainStyle
	switch {
	case d.Has(tiles.TagEnemy):
		style = enemyStyle
	case d.Has(tiles.TagHazard):
		style = hazardStyle
	case d.Has(tiles.TagReward):
		style = rewardStyle
	case set.Solid(code):
		style = solidStyle
	case d.Has(tiles.TagInteresting):
		style = interestingStyle
	}

	if set.Name() == tiles.LiteTuxName {
		if r, ok := liteTuxGlyphs[code]; ok {
			return r, style
		}
	}
	switch {
	case d.Has(tiles.TagEnemy):
		return 'E', style
	case d.Has(tiles.TagHazard):
		return '^', style
	case d.Has(tiles.TagReward):
		return '$', style
	case set.Solid(code):
		return '#', style
	}
	return ' ', style
}

// ArrowGlyph returns the character for an arrow-map cell: the arrow for a
// single move, '*' when several moves leave the cell, ' ' for none.
func ArrowGlyph(mask int) rune {
	if mask <= 0 {
		return ' '
	}
	if bits.OnesCount8(uint8(mask)) > 1 {
		return '*'
	}
	return arrowGlyphs[uint8(mask)]
}

// RenderGrid draws the level two columns per tile: the tile glyph, then the
// arrow glyph of the moves leaving it when arrows is non-nil. Columns before
// xoff are skipped and at most width tiles are drawn (width <= 0 draws all).
func RenderGrid(g *tilegrid.Grid, set *tiles.Set, arrows *tilegrid.Grid, xoff, width int) string {
	xoff = max(0, min(xoff, g.W))
	end := g.W
	if width > 0 {
		end = min(g.W, xoff+width)
	}

	var sb strings.Builder
	sb.Grow((end - xoff) * g.H * 4)
	for y := 0; y < g.H; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := xoff; x < end; x++ {
			r, style := TileGlyph(set, g.Get(x, y))
			sb.WriteString(style.Render(string(r)))

			a := ' '
			if arrows != nil {
				a = ArrowGlyph(arrows.Get(x, y))
			}
			if a == ' ' {
				sb.WriteByte(' ')
			} else {
				sb.WriteString(arrowStyle.Render(string(a)))
			}
		}
	}
	return sb.String()
}

// Field is one labelled value of a metrics column.
type Field struct {
	Label string
	Value string
}

// Column is a titled group of metric fields.
type Column struct {
	Title  string
	Fields []Field
}

// MetricColumns groups a report into the four analysis columns: tile
// statistics, difficulty, structure and motion. Floats keep four decimals.
func MetricColumns(r metrics.Report) []Column {
	total := r.Width * r.Height
	pct := func(n int) string {
		if total == 0 {
			return fmt.Sprintf("%d (0%%)", n)
		}
		return fmt.Sprintf("%d (%s%%)", n, round4(100*float64(n)/float64(total)))
	}

	return []Column{
		{Title: "Tile Statistics", Fields: []Field{
			{"Empty", pct(r.Empty)},
			{"Interesting", pct(r.Interesting)},
			{"Enemy", pct(r.Enemies)},
			{"Hazard", pct(r.Hazards)},
			{"Rewards", pct(r.Rewards)},
		}},
		{Title: "Difficulty", Fields: []Field{
			{"Leniency", fmt.Sprint(r.Leniency)},
			{"Adj. Leniency", round4(r.AdjustedLeniency)},
			{"Path Leniency", round4(r.PathLeniency)},
			{"Completable", fmt.Sprint(r.Completable)},
			{"Furthest Column", fmt.Sprint(r.FurthestColumn)},
		}},
		{Title: "Structure", Fields: []Field{
			{"Linearity", round4(r.Linearity)},
			{"Negative Space", round4(r.NegativeSpace)},
			{"Density", round4(r.Density)},
			{"Gaps", fmt.Sprint(r.Gaps)},
		}},
		{Title: "Motion", Fields: []Field{
			{"Jumps", fmt.Sprint(r.Jumps)},
			{"Required Jumps", fmt.Sprint(r.RequiredJumps)},
			{"Reward Jumps", fmt.Sprint(r.RewardJumps)},
			{"Placement Violations", fmt.Sprint(r.PlacementViolations)},
			{"Usage Violations", fmt.Sprint(r.UsageViolations)},
		}},
	}
}

func round4(v float64) string {
	return fmt.Sprint(math.Round(v*1e4) / 1e4)
}

// RenderMetrics draws the metric columns side by side, or stacked when
// width is too narrow for them (width <= 0 never stacks).
func RenderMetrics(r metrics.Report, width int) string {
	var blocks []string
	for _, col := range MetricColumns(r) {
		labelW := 0
		for _, f := range col.Fields {
			labelW = max(labelW, lipgloss.Width(f.Label))
		}
		var sb strings.Builder
		sb.WriteString(headerStyle.Render(col.Title))
		for _, f := range col.Fields {
			fmt.Fprintf(&sb, "\n%-*s  %s", labelW, f.Label, f.Value)
		}
		blocks = append(blocks, columnStyle.Render(sb.String()))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
	if width > 0 && lipgloss.Width(row) > width {
		return lipgloss.JoinVertical(lipgloss.Left, blocks...)
	}
	return row
}
