package automaton

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// sequence replays a fixed list of draws, wrapping around at the end.
type sequence struct {
	values []float64
	next   int
}

func (s *sequence) Float64() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

// parseGrid builds a boolean grid from rows where '#' marks a living cell.
func parseGrid(t *testing.T, rows ...string) *Grid[bool] {
	t.Helper()
	require.NotEmpty(t, rows)
	g, err := NewGrid(len(rows[0]), len(rows), false)
	require.NoError(t, err)
	for y, row := range rows {
		require.Len(t, row, g.Width(), "row %d", y)
		for x, r := range row {
			g.Set(x, y, r == '#')
		}
	}
	return g
}

func formatGrid(g *Grid[bool]) []string {
	rows := make([]string, g.Height())
	for y := range rows {
		var b strings.Builder
		for x := 0; x < g.Width(); x++ {
			if g.At(x, y) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		rows[y] = b.String()
	}
	return rows
}
