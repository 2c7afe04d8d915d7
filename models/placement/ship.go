package placement

// Ship is a fleet slot. It is created once at fleet
// creation and never destroyed; placement and rotation
// only mutate its origin and orientation.
type Ship struct {
	name       string
	size       int
	color      string
	horizontal bool
	origin     *Cell
}

func NewShip(name string, size int, color string) *Ship {
	return &Ship{
		name:       name,
		size:       size,
		color:      color,
		horizontal: true,
	}
}

func (sh *Ship) Name() string {
	return sh.name
}

func (sh *Ship) Size() int {
	return sh.size
}

func (sh *Ship) Color() string {
	return sh.color
}

func (sh *Ship) IsHorizontal() bool {
	return sh.horizontal
}

// nil origin means the ship is still in the unplaced tray.
func (sh *Ship) Origin() *Cell {
	return sh.origin
}

func (sh *Ship) IsPlaced() bool {
	return sh.origin != nil
}

// Occupied cells of the ship, derived from origin, size
// and orientation. Empty for an unplaced ship.
func (sh *Ship) Cells() []Cell {
	if !sh.IsPlaced() {
		return nil
	}
	return cellSpan(sh.origin.Row, sh.origin.Col, sh.size, sh.horizontal)
}

// The run of cells a ship of the given size and orientation
// would occupy starting from (row, col). Cells may be out of
// the grid bound; the validator checks that.
func cellSpan(row, col, size int, horizontal bool) []Cell {
	cells := make([]Cell, 0, size)
	for i := 0; i < size; i++ {
		if horizontal {
			cells = append(cells, NewCell(row, col+i))
		} else {
			cells = append(cells, NewCell(row+i, col))
		}
	}
	return cells
}

// ShipSnapshot is the read-only view of a ship handed
// to the rendering client.
type ShipSnapshot struct {
	Name       string `json:"name"`
	Size       int    `json:"size"`
	Color      string `json:"color"`
	Horizontal bool   `json:"horizontal"`
	Origin     *Cell  `json:"origin,omitempty"`
}

func (sh *Ship) Snapshot() ShipSnapshot {
	snapshot := ShipSnapshot{
		Name:       sh.name,
		Size:       sh.size,
		Color:      sh.color,
		Horizontal: sh.horizontal,
	}
	if sh.origin != nil {
		origin := *sh.origin
		snapshot.Origin = &origin
	}
	return snapshot
}
