package gamemap

// RoomKind classifies a room's role in the dungeon. The set is closed:
// connector, scheduler, and state machine switch on it exhaustively.
type RoomKind uint8

const (
	RoomStart RoomKind = iota
	RoomNormal
	RoomTreasure
	RoomShop
	RoomSecret
	RoomSuperSecret
	RoomBoss
	RoomKey // key cache branching off the main path (linear layouts)
)

// String returns the lowercase name of the room kind.
func (k RoomKind) String() string {
	switch k {
	case RoomStart:
		return "start"
	case RoomNormal:
		return "normal"
	case RoomTreasure:
		return "treasure"
	case RoomShop:
		return "shop"
	case RoomSecret:
		return "secret"
	case RoomSuperSecret:
		return "super-secret"
	case RoomBoss:
		return "boss"
	case RoomKey:
		return "key"
	default:
		return "unknown"
	}
}

// ItemKind identifies the type of a spawnable item.
type ItemKind uint8

const (
	ItemTreasure ItemKind = iota
	ItemHealthPotion
	ItemSword
	ItemShield
	ItemKey
)

// ObstacleSize selects the footprint of a room obstacle.
type ObstacleSize uint8

const (
	ObstacleSmall ObstacleSize = iota
	ObstacleMedium
	ObstacleLarge
)

// MonsterSpawn is a deferred monster descriptor stored on a room until the
// room is first entered.
type MonsterSpawn struct {
	Pos        Position
	Difficulty int // hit points of the materialized monster
}

// ItemSpawn is a deferred item descriptor.
type ItemSpawn struct {
	Pos   Position
	Kind  ItemKind
	Value int
}

// ObstacleSpawn is a deferred obstacle descriptor.
type ObstacleSpawn struct {
	Pos  Position
	Size ObstacleSize
}

// Room is a rectangle with a semantic kind, a door-position list, deferred
// spawn tables, and mutable visit/clear/door state. Rooms are created once
// at generation and dropped wholesale on regeneration.
type Room struct {
	Rect Rect
	Kind RoomKind

	// Doors holds positions only; the door state itself lives in the
	// Dungeon's flat door table, shared with the neighboring room.
	Doors []Position

	Visited     bool
	Cleared     bool
	DoorsClosed bool
	EntryDoor   *Position

	MonsterData  []MonsterSpawn
	ItemData     []ItemSpawn
	ObstacleData []ObstacleSpawn
}

// Contains reports whether the point lies inside the room's rectangle.
func (r *Room) Contains(x, y int) bool {
	return r.Rect.Contains(x, y)
}

// HasDoor reports whether p is on the room's door list.
func (r *Room) HasDoor(p Position) bool {
	for _, d := range r.Doors {
		if d == p {
			return true
		}
	}
	return false
}

// DoorOnBorder reports whether door position p sits directly against this
// room's own border. Doors inherited from a neighbor fail this test, which
// keeps visibility from leaking the neighbor's entrances.
func (r *Room) DoorOnBorder(p Position) bool {
	rc := r.Rect
	switch {
	case p.X == rc.Left()-1 && p.Y >= rc.Top() && p.Y < rc.Bottom():
		return true
	case p.X == rc.Right() && p.Y >= rc.Top() && p.Y < rc.Bottom():
		return true
	case p.Y == rc.Top()-1 && p.X >= rc.Left() && p.X < rc.Right():
		return true
	case p.Y == rc.Bottom() && p.X >= rc.Left() && p.X < rc.Right():
		return true
	default:
		return false
	}
}
