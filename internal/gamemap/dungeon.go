package gamemap

// DoorState is the logical state of one door coordinate.
type DoorState uint8

const (
	DoorOpen DoorState = iota
	DoorClosed
	DoorLocked
)

// Dungeon is the complete generation output: the carved grid, the room
// list, the flat door table, and the start/end markers. Gameplay mutates
// it in place; a restart builds a fresh value instead of clearing fields.
type Dungeon struct {
	Grid  *Grid
	Rooms []*Room

	// Doors maps every door coordinate to its logical state. Rooms store
	// positions into this table rather than owning door objects.
	Doors map[Position]DoorState

	// LockedDoors is the set of doors that still require a key. An entry
	// is consumed exactly once when the player unlocks it.
	LockedDoors map[Position]bool

	Start Position
	End   Position

	// CorridorItems are the only spawns materialized immediately rather
	// than deferred on a room: items scattered in corridors between rooms.
	CorridorItems []ItemSpawn
}

// RoomAt returns the room containing (x, y), or nil when the point is in a
// corridor or wall margin.
func (d *Dungeon) RoomAt(x, y int) *Room {
	for _, r := range d.Rooms {
		if r.Contains(x, y) {
			return r
		}
	}
	return nil
}

// RoomsWithDoor returns every room whose door list includes p. A door is a
// many-to-two relation: interior slot doors belong to both neighbors,
// corridor doors to one room.
func (d *Dungeon) RoomsWithDoor(p Position) []*Room {
	var owners []*Room
	for _, r := range d.Rooms {
		if r.HasDoor(p) {
			owners = append(owners, r)
		}
	}
	return owners
}

// RoomsOfKind returns all rooms with the given kind.
func (d *Dungeon) RoomsOfKind(k RoomKind) []*Room {
	var out []*Room
	for _, r := range d.Rooms {
		if r.Kind == k {
			out = append(out, r)
		}
	}
	return out
}
