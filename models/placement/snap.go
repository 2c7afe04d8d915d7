package placement

import "math"

// Rect mirrors the bounding rectangle the client reads off
// a DOM element, in pixels.
type Rect struct {
	Top    float64 `json:"top"`
	Left   float64 `json:"left"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// SnapOffset converts a raw drag offset into a grid-aligned
// one. The dragged element's projected top-left is rounded
// to the nearest cell; if that cell is on the board, the
// returned offset aligns the element's top-left exactly to
// the cell's top-left. Off the board the raw offset passes
// through untouched so the drag stays free-form (e.g. while
// repositioning in the unplaced tray).
//
// This is advisory visual feedback only. The authoritative
// decision at drop time is always the placement validator
// against the cell the pointer is actually over.
func SnapOffset(elem, board Rect, dx, dy float64) (float64, float64) {
	cellSize := board.Width / float64(GridSize)

	// a zero-width board rect (element not laid out yet) has
	// no cells to snap to; NaN from the division below would
	// slip past the range checks
	if cellSize <= 0 {
		return dx, dy
	}

	row := math.Round((elem.Top - board.Top + dy) / cellSize)
	col := math.Round((elem.Left - board.Left + dx) / cellSize)

	if row < 0 || row >= float64(GridSize) || col < 0 || col >= float64(GridSize) {
		return dx, dy
	}

	snappedDx := board.Left + col*cellSize - elem.Left
	snappedDy := board.Top + row*cellSize - elem.Top
	return snappedDx, snappedDy
}
