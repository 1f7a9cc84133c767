package automaton

// Regions finds the 4-connected groups of cells equal to match. Each region is
// a list of row-major indices in breadth-first order; regions are ordered by
// their first cell in row-major order.
func Regions[T comparable](g *Grid[T], match T) [][]int {
	if g == nil {
		return nil
	}
	seen := make([]bool, len(g.cells))
	offsets := [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	var regions [][]int
	for start, c := range g.cells {
		if c != match || seen[start] {
			continue
		}
		seen[start] = true
		queue := []int{start}
		for qi := 0; qi < len(queue); qi++ {
			ux, uy := queue[qi]%g.w, queue[qi]/g.w
			for _, d := range offsets {
				vx, vy := ux+d[0], uy+d[1]
				if !g.InBounds(vx, vy) {
					continue
				}
				vi := vy*g.w + vx
				if seen[vi] || g.cells[vi] != match {
					continue
				}
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
		regions = append(regions, queue)
	}
	return regions
}

// LargestRegion returns the size of the biggest region, or 0 when there is none.
func LargestRegion(regions [][]int) int {
	largest := 0
	for _, r := range regions {
		if len(r) > largest {
			largest = len(r)
		}
	}
	return largest
}
