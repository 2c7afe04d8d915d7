package placement

// The setup board is always a 10x10 grid regardless
// of the client viewport. Cells are addressed by
// (row, col) with (0, 0) at the top-left corner.
const GridSize int = 10

type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewCell(row, col int) Cell {
	return Cell{Row: row, Col: col}
}

func InBounds(row, col int) bool {
	return row >= 0 && row < GridSize && col >= 0 && col < GridSize
}
