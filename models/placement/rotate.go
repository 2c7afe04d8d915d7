package placement

// A candidate pivot cell plus the offset-from-origin it
// stands for in the new orientation. The offset is part of
// the search state: the same cell reached with a different
// offset yields a different candidate origin.
type pivotState struct {
	row    int
	col    int
	offset int
}

// Expansion order of the frontier: up, down, left, right.
var pivotNeighborSteps = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Rotate flips the named ship's orientation in place,
// searching outward for the nearest pivot at which the
// reoriented ship sits legally. A plain geometric flip
// often collides with the grid edge or another ship; the
// breadth-first search relaxes the pivot one grid step per
// round so the first hit is at minimum cell-distance from
// the ship's center. Returns false and leaves the fleet
// unchanged for unknown or unplaced ships, or when no
// legal pose exists anywhere on the board.
func (f *Fleet) Rotate(name string) bool {
	sh, prs := f.byName[name]
	if !prs || !sh.IsPlaced() {
		return false
	}

	// The center of rotation sits at offset floor((size-1)/2)
	// along the long axis. Even sizes have two equally valid
	// center cells; both are seeded so the search radiates
	// from the ship's visual middle.
	mid := (sh.size - 1) / 2
	seedOffsets := []int{mid}
	if sh.size%2 == 0 {
		seedOffsets = append(seedOffsets, mid+1)
	}

	frontier := make([]pivotState, 0, len(seedOffsets))
	visited := make(map[pivotState]bool, sh.size*GridSize)
	for _, offset := range seedOffsets {
		seed := pivotState{row: sh.origin.Row, col: sh.origin.Col, offset: offset}
		if sh.horizontal {
			seed.col += offset
		} else {
			seed.row += offset
		}
		frontier = append(frontier, seed)
		visited[seed] = true
	}

	for len(frontier) > 0 {
		next := make([]pivotState, 0, len(frontier)*len(pivotNeighborSteps))

		for _, st := range frontier {
			// Candidate origin: pivot minus offset along the
			// new orientation's long axis.
			row, col := st.row, st.col
			if sh.horizontal {
				row -= st.offset
			} else {
				col -= st.offset
			}

			if f.CanPlace(name, sh.size, row, col, !sh.horizontal) {
				sh.origin = &Cell{Row: row, Col: col}
				sh.horizontal = !sh.horizontal
				return true
			}

			for _, step := range pivotNeighborSteps {
				nb := pivotState{row: st.row + step[0], col: st.col + step[1], offset: st.offset}
				if !InBounds(nb.row, nb.col) || visited[nb] {
					continue
				}
				visited[nb] = true
				next = append(next, nb)
			}
		}

		frontier = next
	}

	// Frontier exhausted: the board is too cluttered to
	// rotate. Expected, non-exceptional outcome.
	return false
}
