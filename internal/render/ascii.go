package render

import (
	"fmt"
	"strings"

	"cave-ca/pkg/automaton"
)

// ASCII renders cells as tile runes, one line per row. Non-zero cells are
// walls.
func ASCII(w, h int, cells []uint8) (string, error) {
	if w <= 0 || h <= 0 || len(cells) != w*h {
		return "", fmt.Errorf("render: %d cells do not fit %dx%d", len(cells), w, h)
	}
	var b strings.Builder
	b.Grow((w + 1) * h)
	for y := 0; y < h; y++ {
		for _, c := range cells[y*w : (y+1)*w] {
			t := automaton.TileNone
			if c != 0 {
				t = automaton.TileWall
			}
			b.WriteRune(t.Rune())
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}
