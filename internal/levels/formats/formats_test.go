package formats_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/litetux-lab/internal/levels/formats"
	"github.com/vovakirdan/litetux-lab/internal/tilegrid"
)

func mustRows(t *testing.T, rows ...[]int) *tilegrid.Grid {
	t.Helper()
	g, err := tilegrid.FromRows(rows)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestEncodeKnownCodes(t *testing.T) {
	tests := []struct {
		name string
		grid *tilegrid.Grid
		hex  string
		code string
	}{
		{"two tiles", mustRows(t, []int{8, 0}), "020180", "AgGA"},
		{"six tiles", mustRows(t, []int{0, 3, 2}, []int{8, 9, 8}), "0302032898", "AwIDKJg="},
		{"odd length", mustRows(t, []int{0, 0, 0, 0, 0}, []int{0, 0, 0, 0, 0}, []int{8, 8, 8, 8, 8}),
			"0503000000000088888", "BQMAAAAAAIiIgA=="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hex, err := formats.EncodeHex(tt.grid)
			if err != nil {
				t.Fatal(err)
			}
			if hex != tt.hex {
				t.Errorf("EncodeHex = %q, want %q", hex, tt.hex)
			}

			code, err := formats.EncodeCode(tt.grid)
			if err != nil {
				t.Fatal(err)
			}
			if code != tt.code {
				t.Errorf("EncodeCode = %q, want %q", code, tt.code)
			}

			back, err := formats.DecodeCode(code)
			if err != nil {
				t.Fatal(err)
			}
			if !back.Equal(tt.grid) {
				t.Errorf("decoded grid %v, want %v", back.Rows(), tt.grid.Rows())
			}
		})
	}
}

func TestEncodeClampsCodes(t *testing.T) {
	hex, err := formats.EncodeHex(mustRows(t, []int{-1, 20}))
	if err != nil {
		t.Fatal(err)
	}
	if hex != "02010F" {
		t.Errorf("EncodeHex = %q", hex)
	}
}

func TestDecodeAcceptsUnpaddedAndLowercase(t *testing.T) {
	g, err := formats.DecodeCode("AwIDKJg")
	if err != nil {
		t.Fatal(err)
	}
	if g.W != 3 || g.H != 2 || g.Get(1, 1) != 9 {
		t.Errorf("unexpected grid %v", g.Rows())
	}

	g, err = formats.DecodeHex("0201a0")
	if err != nil {
		t.Fatal(err)
	}
	if g.Get(0, 0) != 10 {
		t.Errorf("lowercase hex not accepted: %v", g.Rows())
	}
}

func TestDecodeErrors(t *testing.T) {
	for _, in := range []string{"", "02", "0201", "02018", "020180FF", "0201G0", "ZZ"} {
		if _, err := formats.DecodeHex(in); !errors.Is(err, formats.ErrBadCode) {
			t.Errorf("DecodeHex(%q) = %v, want ErrBadCode", in, err)
		}
	}
	if _, err := formats.DecodeCode("!!!"); !errors.Is(err, formats.ErrBadCode) {
		t.Errorf("DecodeCode = %v, want ErrBadCode", err)
	}
	if _, err := formats.EncodeHex(tilegrid.New(256, 1)); !errors.Is(err, formats.ErrBadCode) {
		t.Errorf("oversized grid: %v", err)
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
id: demo
start: {x: 1, y: 0}
rows:
  - "0 0 0"
  - "8 f 8"
`)
	lvl, err := formats.ParseYAML(data)
	if err != nil {
		t.Fatal(err)
	}
	if lvl.ID != "demo" || !lvl.HasStart || lvl.Start != tilegrid.C(1, 0) {
		t.Errorf("unexpected header %+v", lvl)
	}
	if lvl.Grid.W != 3 || lvl.Grid.Get(1, 1) != 15 {
		t.Errorf("unexpected grid %v", lvl.Grid.Rows())
	}

	if _, err := formats.ParseYAML([]byte(`rows: ["00", "0"]`)); !errors.Is(err, tilegrid.ErrNonRectangular) {
		t.Errorf("ragged rows: %v", err)
	}
	if _, err := formats.ParseYAML([]byte(`rows: ["0x"]`)); !errors.Is(err, formats.ErrBadRow) {
		t.Errorf("bad digit: %v", err)
	}
	if _, err := formats.ParseYAML([]byte(`rows: [`)); err == nil {
		t.Error("expected yaml error")
	}
}

func TestFormatYAMLRoundTrip(t *testing.T) {
	in := formats.Level{
		ID:       "rt",
		Name:     "Round trip",
		Start:    tilegrid.C(0, 1),
		HasStart: true,
		Grid:     mustRows(t, []int{0, 12, 0}, []int{8, 8, 15}),
	}
	data, err := formats.FormatYAML(in)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "0C0") {
		t.Errorf("rows not hex encoded:\n%s", data)
	}

	out, err := formats.ParseYAML(data)
	if err != nil {
		t.Fatal(err)
	}
	if out.ID != in.ID || out.Start != in.Start || !out.Grid.Equal(in.Grid) {
		t.Errorf("round trip mismatch: %+v", out)
	}
}

func TestParseCodeHeaders(t *testing.T) {
	lvl, err := formats.ParseCode([]byte("# id: x1\n# tileset: litetux\n# ignored line\n\nAgGA\n"))
	if err != nil {
		t.Fatal(err)
	}
	if lvl.ID != "x1" || lvl.TileSet != "litetux" || lvl.Grid.Get(0, 0) != 8 {
		t.Errorf("unexpected level %+v", lvl)
	}

	if _, err := formats.ParseCode([]byte("# id: only-header\n")); !errors.Is(err, formats.ErrBadCode) {
		t.Errorf("missing code: %v", err)
	}
}

func TestFormatCodeRoundTrip(t *testing.T) {
	in := formats.Level{
		ID:       "lvl07",
		Name:     "Two Pits",
		Start:    tilegrid.C(0, 1),
		HasStart: true,
		Grid:     mustRows(t, []int{0, 0, 0}, []int{0, 2, 0}, []int{8, 0, 8}),
		Metadata: map[string]string{"author": "sam", "difficulty": "easy"},
	}
	data, err := formats.FormatCode(in)
	if err != nil {
		t.Fatal(err)
	}
	want := "# id: lvl07\n# name: Two Pits\n# start: 0,1\n# author: sam\n# difficulty: easy\n"
	if !strings.HasPrefix(string(data), want) {
		t.Errorf("headers = %q, want prefix %q", data, want)
	}

	out, err := formats.ParseCode(data)
	if err != nil {
		t.Fatal(err)
	}
	if out.ID != in.ID || out.Name != in.Name || !out.HasStart || out.Start != in.Start {
		t.Errorf("header fields lost: %+v", out)
	}
	if !out.Grid.Equal(in.Grid) {
		t.Errorf("grid = %v, want %v", out.Grid.Rows(), in.Grid.Rows())
	}
	if out.Metadata["author"] != "sam" {
		t.Errorf("metadata = %v", out.Metadata)
	}

	if _, err := formats.ParseCode([]byte("# start: left\nAgGA")); !errors.Is(err, formats.ErrBadCode) {
		t.Errorf("bad start: %v", err)
	}
}
