package placement

const (
	ShipNameCarrier    = "Carrier"
	ShipNameBattleship = "Battleship"
	ShipNameCruiser    = "Cruiser"
	ShipNameSubmarine  = "Submarine"
	ShipNameDestroyer  = "Destroyer"
)

// Fleet is the sole mutable resource of a setup session.
// Only PlaceShip and Rotate write it and both are called
// from the serialized session loop, so no lock is needed
// at this level.
type Fleet struct {
	ships    []*Ship
	byName   map[string]*Ship
	selected string
}

func NewFleet(ships ...*Ship) *Fleet {
	fleet := &Fleet{
		ships:  ships,
		byName: make(map[string]*Ship, len(ships)),
	}
	for _, sh := range ships {
		fleet.byName[sh.name] = sh
	}
	return fleet
}

// The default five-slot fleet. Colors are display
// attributes only and never affect placement logic.
func NewStandardFleet() *Fleet {
	return NewFleet(
		NewShip(ShipNameCarrier, 5, "#7d5fff"),
		NewShip(ShipNameBattleship, 4, "#32ff7e"),
		NewShip(ShipNameCruiser, 3, "#ffaf40"),
		NewShip(ShipNameSubmarine, 3, "#18dcff"),
		NewShip(ShipNameDestroyer, 2, "#ff4d4d"),
	)
}

func (f *Fleet) Ships() []*Ship {
	return f.ships
}

func (f *Fleet) FindShip(name string) (*Ship, bool) {
	sh, prs := f.byName[name]
	return sh, prs
}

// Name of the last successfully placed ship. Selection is
// sticky: it survives until another ship is placed so that
// a follow-up rotate action has a target.
func (f *Fleet) SelectedShip() string {
	return f.selected
}

// CanPlace reports whether a ship of the given size and
// orientation fits at (row, col). It is pure and may be
// called speculatively on every pointer update during a
// drag. The named ship is excluded from the overlap check
// and unplaced ships contribute no occupied cells.
func (f *Fleet) CanPlace(name string, size, row, col int, horizontal bool) bool {
	candidate := cellSpan(row, col, size, horizontal)
	for _, c := range candidate {
		if !InBounds(c.Row, c.Col) {
			return false
		}
	}

	for _, other := range f.ships {
		if other.name == name || !other.IsPlaced() {
			continue
		}
		for _, oc := range other.Cells() {
			for _, c := range candidate {
				if oc == c {
					return false
				}
			}
		}
	}
	return true
}

// PlaceShip commits the named ship to (row, col). The
// placement is re-validated here rather than trusting an
// earlier speculative check, since the fleet may have
// changed between drag start and drop (e.g. another ship
// was rotated). On failure the fleet is left unchanged.
func (f *Fleet) PlaceShip(name string, size, row, col int, horizontal bool) bool {
	sh, prs := f.byName[name]
	if !prs {
		return false
	}

	// A ship's size is fixed at fleet creation. The wire size
	// only identifies the request; a mismatch means a stale or
	// tampered client and must not shrink the validated span.
	if size != sh.size {
		return false
	}

	if !f.CanPlace(name, sh.size, row, col, horizontal) {
		return false
	}

	sh.origin = &Cell{Row: row, Col: col}
	sh.horizontal = horizontal
	f.selected = name
	return true
}

func (f *Fleet) Snapshot() []ShipSnapshot {
	snapshots := make([]ShipSnapshot, 0, len(f.ships))
	for _, sh := range f.ships {
		snapshots = append(snapshots, sh.Snapshot())
	}
	return snapshots
}
