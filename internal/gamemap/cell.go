package gamemap

// Cell is one dungeon grid symbol. The rune values double as the wire format
// between generation and rendering and stay stable for a whole session.
type Cell rune

const (
	CellWall       Cell = '#'
	CellFloor      Cell = ' '
	CellStart      Cell = 'S'
	CellEnd        Cell = 'E'
	CellLockedDoor Cell = 'D' // opens once by consuming a key
	CellOpenDoor   Cell = 'O' // passable room door
	CellClosedDoor Cell = 'R' // sealed while the owning room has live monsters
)

// Walkable reports whether an actor may simply step onto the cell.
// Doors are deliberately excluded: movement code decides what bumping a
// door means (teleport, key consumption, or blocked).
func (c Cell) Walkable() bool {
	switch c {
	case CellFloor, CellStart, CellEnd:
		return true
	default:
		return false
	}
}

// IsDoor reports whether the cell is any door symbol.
func (c Cell) IsDoor() bool {
	switch c {
	case CellLockedDoor, CellOpenDoor, CellClosedDoor:
		return true
	default:
		return false
	}
}
