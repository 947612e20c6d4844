package levels

import (
	"fmt"

	"github.com/vovakirdan/litetux-lab/internal/tilegrid"
	"github.com/vovakirdan/litetux-lab/internal/tiles"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks a level against a tile set. Analysis still runs on levels
// that fail; the error tells the caller the numbers may not mean much.
// Checks:
//   - the grid is not empty
//   - the start point lies inside the grid
//   - every tile code is defined by the set
func Validate(l Level, set *tiles.Set, start tilegrid.Coord) error {
	g := l.Grid
	if g == nil || g.W == 0 || g.H == 0 {
		return ValidationError{Code: "EMPTY_GRID", Message: "level has no tiles"}
	}
	if !g.InBounds(start.X, start.Y) {
		return ValidationError{
			Code:    "START_OUT_OF_RANGE",
			Message: fmt.Sprintf("start %s is outside the %dx%d grid", start, g.W, g.H),
		}
	}

	unknown := 0
	first := tilegrid.Coord{}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if !set.Valid(g.Get(x, y)) {
				if unknown == 0 {
					first = tilegrid.C(x, y)
				}
				unknown++
			}
		}
	}
	if unknown > 0 {
		return ValidationError{
			Code:    "UNKNOWN_TILE",
			Message: fmt.Sprintf("%d tiles unknown to tile set %s, first at %s", unknown, set.Name(), first),
		}
	}
	return nil
}
