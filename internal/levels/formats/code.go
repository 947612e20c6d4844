package formats

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/vovakirdan/litetux-lab/internal/tilegrid"
)

// ErrBadCode is returned for level codes that cannot be decoded.
var ErrBadCode = errors.New("formats: bad level code")

// MaxCodeSide is the largest width or height a level code can carry.
const MaxCodeSide = 0xFF

// EncodeHex renders a grid as a hex string: two digits of width, two of
// height, then one digit per tile, row by row. Codes outside 0..15 are
// clamped.
func EncodeHex(g *tilegrid.Grid) (string, error) {
	if g == nil {
		return "", fmt.Errorf("%w: no grid", ErrBadCode)
	}
	if g.W > MaxCodeSide || g.H > MaxCodeSide {
		return "", fmt.Errorf("%w: %dx%d exceeds %d", ErrBadCode, g.W, g.H, MaxCodeSide)
	}
	var sb strings.Builder
	sb.Grow(4 + len(g.Cells))
	fmt.Fprintf(&sb, "%02X%02X", g.W, g.H)
	for _, code := range g.Cells {
		sb.WriteByte(hexDigit(code))
	}
	return sb.String(), nil
}

// DecodeHex parses the output of EncodeHex. A single trailing pad digit is
// accepted.
func DecodeHex(s string) (*tilegrid.Grid, error) {
	if len(s) < 4 {
		return nil, fmt.Errorf("%w: too short", ErrBadCode)
	}
	head, err := hex.DecodeString(s[:4])
	if err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrBadCode, err)
	}
	w, h := int(head[0]), int(head[1])
	body := s[4:]
	n := w * h
	switch {
	case len(body) == n:
	case len(body) == n+1 && body[n] == '0':
		body = body[:n]
	default:
		return nil, fmt.Errorf("%w: %dx%d needs %d tiles, got %d", ErrBadCode, w, h, n, len(body))
	}

	g := tilegrid.New(w, h)
	for i := 0; i < n; i++ {
		v, ok := hexValue(body[i])
		if !ok {
			return nil, fmt.Errorf("%w: %q at tile %d", ErrBadCode, body[i], i)
		}
		g.Cells[i] = v
	}
	return g, nil
}

// EncodeCode renders a grid as a shareable base64url level code.
func EncodeCode(g *tilegrid.Grid) (string, error) {
	s, err := EncodeHex(g)
	if err != nil {
		return "", err
	}
	if len(s)%2 == 1 {
		s += "0"
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadCode, err)
	}
	return base64.URLEncoding.EncodeToString(raw), nil
}

// DecodeCode parses a level code, with or without base64 padding.
func DecodeCode(code string) (*tilegrid.Grid, error) {
	code = strings.TrimRight(strings.TrimSpace(code), "=")
	raw, err := base64.RawURLEncoding.DecodeString(code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadCode, err)
	}
	return DecodeHex(strings.ToUpper(hex.EncodeToString(raw)))
}

// ParseCode parses a .lvl file: a level code, optionally preceded by
// "# key: value" header lines. The keys id, name and tileset fill the
// matching fields; anything else lands in Metadata.
func ParseCode(data []byte) (Level, error) {
	var level Level
	var code string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if rest, ok := strings.CutPrefix(line, "#"); ok {
			key, value, found := strings.Cut(rest, ":")
			if !found {
				continue
			}
			key, value = strings.TrimSpace(key), strings.TrimSpace(value)
			switch key {
			case "id":
				level.ID = value
			case "name":
				level.Name = value
			case "tileset":
				level.TileSet = value
			case "start":
				p, err := parsePoint(value)
				if err != nil {
					return Level{}, err
				}
				level.Start, level.HasStart = p, true
			default:
				if level.Metadata == nil {
					level.Metadata = map[string]string{}
				}
				level.Metadata[key] = value
			}
			continue
		}
		code += line
	}
	if code == "" {
		return Level{}, fmt.Errorf("%w: empty", ErrBadCode)
	}
	g, err := DecodeCode(code)
	if err != nil {
		return Level{}, err
	}
	level.Grid = g
	return level, nil
}

// FormatCode renders a level as a .lvl file that ParseCode reads back.
func FormatCode(l Level) ([]byte, error) {
	code, err := EncodeCode(l.Grid)
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	header := func(key, value string) {
		if value != "" {
			fmt.Fprintf(&sb, "# %s: %s\n", key, value)
		}
	}
	header("id", l.ID)
	header("name", l.Name)
	header("tileset", l.TileSet)
	if l.HasStart {
		header("start", fmt.Sprintf("%d,%d", l.Start.X, l.Start.Y))
	}
	keys := make([]string, 0, len(l.Metadata))
	for k := range l.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		header(k, l.Metadata[k])
	}
	sb.WriteString(code)
	sb.WriteByte('\n')
	return []byte(sb.String()), nil
}

func parsePoint(s string) (tilegrid.Coord, error) {
	xs, ys, ok := strings.Cut(s, ",")
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if !ok || errX != nil || errY != nil {
		return tilegrid.Coord{}, fmt.Errorf("%w: bad start %q", ErrBadCode, s)
	}
	return tilegrid.C(x, y), nil
}

func hexDigit(code int) byte {
	const digits = "0123456789ABCDEF"
	return digits[min(max(code, 0), 15)]
}

func hexValue(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	}
	return 0, false
}
