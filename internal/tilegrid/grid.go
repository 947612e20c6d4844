// Package tilegrid stores levels as fixed-size grids of integer tile codes.
// Reads outside the grid either wrap or return a per-edge sentinel; writes
// outside the grid are discarded and counted.
package tilegrid

import (
	"errors"

	"github.com/charmbracelet/log"
)

// OutOfBounds is the default code returned for reads outside a non-wrapping grid.
const OutOfBounds = -1

var (
	// ErrEmptyGrid is returned when building a grid from no rows or empty rows.
	ErrEmptyGrid = errors.New("tilegrid: grid has no cells")
	// ErrNonRectangular is returned when rows have different lengths.
	ErrNonRectangular = errors.New("tilegrid: rows have different lengths")
)

// Outside holds the codes returned for reads past each edge.
type Outside struct {
	Left   int
	Right  int
	Top    int
	Bottom int
}

// DefaultOutside reports every edge as OutOfBounds.
func DefaultOutside() Outside {
	return Outside{Left: OutOfBounds, Right: OutOfBounds, Top: OutOfBounds, Bottom: OutOfBounds}
}

// Grid is a rectangular grid of tile codes.
// Cells are stored in row-major order: index = y*W + x.
// A Grid is not safe for concurrent mutation; hand each goroutine a Clone.
type Grid struct {
	W       int   // Width of the grid
	H       int   // Height of the grid
	Cells   []int // Flat array of codes, length W*H
	Wrap    bool  // Reads wrap around both axes
	Outside Outside

	rejected int
}

// New creates a w x h grid filled with code 0.
func New(w, h int) *Grid {
	return NewFilled(w, h, 0)
}

// NewFilled creates a w x h grid with every cell set to code.
// Negative sizes are treated as zero.
func NewFilled(w, h, code int) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	g := &Grid{
		W:       w,
		H:       h,
		Cells:   make([]int, w*h),
		Outside: DefaultOutside(),
	}
	if code != 0 {
		g.Fill(code)
	}
	return g
}

// FromRows builds a grid from rows of codes; rows[y][x] becomes cell (x, y).
func FromRows(rows [][]int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	g := New(w, len(rows))
	for y, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		copy(g.Cells[y*w:(y+1)*w], row)
	}
	return g, nil
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(x, y int) int {
	return y*g.W + x
}

// InBounds returns true if (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Get returns the code at (x, y), applying the wrap or outside policy.
func (g *Grid) Get(x, y int) int {
	if g.Wrap && g.W > 0 && g.H > 0 {
		return g.Cells[g.index(mod(x, g.W), mod(y, g.H))]
	}
	switch {
	case x < 0:
		return g.Outside.Left
	case x >= g.W:
		return g.Outside.Right
	case y < 0:
		return g.Outside.Top
	case y >= g.H:
		return g.Outside.Bottom
	}
	return g.Cells[g.index(x, y)]
}

// At is Get for a Coord.
func (g *Grid) At(c Coord) int {
	return g.Get(c.X, c.Y)
}

// Set writes code at (x, y). Writes outside the grid are discarded in both
// wrap modes, logged, and counted; Set reports whether the write happened.
func (g *Grid) Set(x, y, code int) bool {
	if !g.InBounds(x, y) {
		g.rejected++
		log.Warn("tilegrid: discarded out-of-bounds write", "x", x, "y", y, "code", code, "w", g.W, "h", g.H)
		return false
	}
	g.Cells[g.index(x, y)] = code
	return true
}

// Rejected returns how many writes were discarded because they were out of bounds.
func (g *Grid) Rejected() int {
	return g.rejected
}

// Fill sets every cell to code.
func (g *Grid) Fill(code int) {
	for i := range g.Cells {
		g.Cells[i] = code
	}
}

// FillRect sets a w x h block starting at (x, y). Cells past the edge are
// discarded the same way Set discards them.
func (g *Grid) FillRect(x, y, w, h, code int) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			g.Set(x+dx, y+dy, code)
		}
	}
}

// Region returns a new non-wrapping w x h grid copied from (x, y). Source
// cells are read through Get, so wrapping and outside codes apply.
func (g *Grid) Region(x, y, w, h int) *Grid {
	clip := New(w, h)
	clip.Outside = g.Outside
	for dy := 0; dy < clip.H; dy++ {
		for dx := 0; dx < clip.W; dx++ {
			clip.Cells[clip.index(dx, dy)] = g.Get(x+dx, y+dy)
		}
	}
	return clip
}

// Paste copies src onto g with its top-left corner at (x, y). Cells that
// land outside g are skipped. It returns the number of cells written.
func (g *Grid) Paste(src *Grid, x, y int) int {
	written := 0
	for sy := 0; sy < src.H; sy++ {
		for sx := 0; sx < src.W; sx++ {
			tx, ty := x+sx, y+sy
			if !g.InBounds(tx, ty) {
				continue
			}
			g.Cells[g.index(tx, ty)] = src.Cells[src.index(sx, sy)]
			written++
		}
	}
	return written
}

// Clone returns a deep copy of the grid. The rejected-write counter starts at zero.
func (g *Grid) Clone() *Grid {
	cells := make([]int, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{
		W:       g.W,
		H:       g.H,
		Cells:   cells,
		Wrap:    g.Wrap,
		Outside: g.Outside,
	}
}

// Count returns the number of cells holding code.
func (g *Grid) Count(code int) int {
	n := 0
	for _, c := range g.Cells {
		if c == code {
			n++
		}
	}
	return n
}

// Rows returns the grid as rows of codes.
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.H)
	for y := range rows {
		rows[y] = make([]int, g.W)
		copy(rows[y], g.Cells[y*g.W:(y+1)*g.W])
	}
	return rows
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.W != other.W || g.H != other.H {
		return false
	}
	for i, c := range g.Cells {
		if c != other.Cells[i] {
			return false
		}
	}
	return true
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
