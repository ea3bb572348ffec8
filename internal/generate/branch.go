package generate

import (
	"maze-crawler/internal/gamemap"
)

// slot is a coordinate on the abstract room-slot grid, not the cell grid.
type slot struct {
	GX, GY int
}

// slotLayout carries the bookkeeping for one branching-layout run.
type slotLayout struct {
	cfg      *Config
	d        *gamemap.Dungeon
	cols     int
	rows     int
	roomW    int
	roomH    int
	rooms    [][]*gamemap.Room // indexed [gy][gx], nil = unfilled
	frontier []slot            // unfilled slots adjacent to placed rooms, in discovery order
}

// layoutBranching grows rooms over a slot grid: the start room sits in the
// center, normal rooms branch outward over cardinal neighbors, the boss
// claims the farthest corner, the treasure room buds off a dead end, and
// shop/secret/super-secret rooms consume leftover frontier slots in that
// priority order. Adjacent rooms are then joined with single-cell doors.
func layoutBranching(g *gamemap.Grid, cfg *Config) *gamemap.Dungeon {
	l := &slotLayout{
		cfg:  cfg,
		cols: cfg.SlotCols,
		rows: cfg.SlotRows,
		d: &gamemap.Dungeon{
			Grid:        g,
			Doors:       make(map[gamemap.Position]gamemap.DoorState),
			LockedDoors: make(map[gamemap.Position]bool),
		},
	}
	// One border wall, one wall column/row between slots.
	l.roomW = (cfg.Width-1)/l.cols - 1
	l.roomH = (cfg.Height-1)/l.rows - 1
	if l.roomW < 3 {
		l.roomW = 3
	}
	if l.roomH < 3 {
		l.roomH = 3
	}
	l.rooms = make([][]*gamemap.Room, l.rows)
	for gy := range l.rooms {
		l.rooms[gy] = make([]*gamemap.Room, l.cols)
	}

	start := l.placeRoom(slot{GX: l.cols / 2, GY: l.rows / 2}, gamemap.RoomStart)
	l.growNormalRooms()
	boss := l.placeBossRoom()
	l.placeTreasureRoom()
	l.placeFrontierRoom(gamemap.RoomShop)
	l.placeFrontierRoom(gamemap.RoomSecret)
	l.placeFrontierRoom(gamemap.RoomSuperSecret)
	l.connectAdjacent()

	l.d.Start = start.Rect.Center()
	end := boss
	if end == nil {
		end = l.farthestRoom(start)
	}
	l.d.End = end.Rect.Center()
	g.Set(l.d.Start.X, l.d.Start.Y, gamemap.CellStart)
	g.Set(l.d.End.X, l.d.End.Y, gamemap.CellEnd)
	return l.d
}

var cardinals = []slot{{0, -1}, {0, 1}, {1, 0}, {-1, 0}}

func (l *slotLayout) inGrid(s slot) bool {
	return s.GX >= 0 && s.GX < l.cols && s.GY >= 0 && s.GY < l.rows
}

func (l *slotLayout) at(s slot) *gamemap.Room {
	return l.rooms[s.GY][s.GX]
}

func (l *slotLayout) slotRect(s slot) gamemap.Rect {
	return gamemap.Rect{
		X: 1 + s.GX*(l.roomW+1),
		Y: 1 + s.GY*(l.roomH+1),
		W: l.roomW,
		H: l.roomH,
	}
}

// placeRoom carves a rectangular room into the slot, records it, and adds
// the slot's unfilled neighbors to the frontier.
func (l *slotLayout) placeRoom(s slot, kind gamemap.RoomKind) *gamemap.Room {
	rc := l.slotRect(s)
	carveRect(l.d.Grid, rc)
	room := &gamemap.Room{Rect: rc, Kind: kind}
	l.rooms[s.GY][s.GX] = room
	l.d.Rooms = append(l.d.Rooms, room)
	l.removeFromFrontier(s)
	for _, c := range cardinals {
		n := slot{GX: s.GX + c.GX, GY: s.GY + c.GY}
		if l.inGrid(n) && l.at(n) == nil && !l.inFrontier(n) {
			l.frontier = append(l.frontier, n)
		}
	}
	return room
}

func (l *slotLayout) inFrontier(s slot) bool {
	for _, f := range l.frontier {
		if f == s {
			return true
		}
	}
	return false
}

func (l *slotLayout) removeFromFrontier(s slot) {
	for i, f := range l.frontier {
		if f == s {
			l.frontier = append(l.frontier[:i], l.frontier[i+1:]...)
			return
		}
	}
}

// growNormalRooms expands the layout over the frontier. With probability
// BranchChance a slot from the far half of the frontier is taken, which
// biases growth away from the start and avoids corridor-like snakes.
func (l *slotLayout) growNormalRooms() {
	rng := l.cfg.Rand
	count := randRange(rng, l.cfg.ExtraRoomsMin, l.cfg.ExtraRoomsMax)
	// Leave slots for the boss, treasure, shop, and secret rooms.
	if maxFill := l.cols*l.rows - 6; count > maxFill {
		count = maxFill
	}
	for i := 0; i < count && len(l.frontier) > 0; i++ {
		idx := 0
		if rng.Float64() < l.cfg.BranchChance && len(l.frontier) > 2 {
			half := len(l.frontier) / 2
			idx = half + rng.Intn(len(l.frontier)-half)
		}
		s := l.frontier[idx]
		l.frontier = append(l.frontier[:idx], l.frontier[idx+1:]...)
		l.placeRoom(s, gamemap.RoomNormal)
	}
}

// placeBossRoom claims the unfilled slot-grid corner farthest (Manhattan)
// from the start slot, falling back to the farthest frontier slot.
func (l *slotLayout) placeBossRoom() *gamemap.Room {
	centerX, centerY := l.cols/2, l.rows/2
	corners := []slot{
		{0, 0}, {l.cols - 1, 0}, {0, l.rows - 1}, {l.cols - 1, l.rows - 1},
	}
	var best *slot
	bestDist := -1
	for _, c := range corners {
		if l.at(c) != nil {
			continue
		}
		if dist := abs(c.GX-centerX) + abs(c.GY-centerY); dist > bestDist {
			bestDist = dist
			cc := c
			best = &cc
		}
	}
	if best == nil {
		for _, f := range l.frontier {
			if dist := abs(f.GX-centerX) + abs(f.GY-centerY); dist > bestDist {
				bestDist = dist
				ff := f
				best = &ff
			}
		}
	}
	if best == nil {
		return nil
	}
	return l.placeRoom(*best, gamemap.RoomBoss)
}

// placeTreasureRoom buds the treasure room off a dead-end slot (a filled
// slot with exactly one filled neighbor). When no dead end has a free
// neighbor, the first frontier slot is used so every dungeon still gets a
// treasure room while any frontier remains.
func (l *slotLayout) placeTreasureRoom() {
	rng := l.cfg.Rand

	var deadEnds []slot
	for gy := 0; gy < l.rows; gy++ {
		for gx := 0; gx < l.cols; gx++ {
			s := slot{GX: gx, GY: gy}
			if l.at(s) == nil {
				continue
			}
			filled := 0
			for _, c := range cardinals {
				n := slot{GX: gx + c.GX, GY: gy + c.GY}
				if l.inGrid(n) && l.at(n) != nil {
					filled++
				}
			}
			if filled == 1 {
				deadEnds = append(deadEnds, s)
			}
		}
	}

	rng.Shuffle(len(deadEnds), func(i, j int) {
		deadEnds[i], deadEnds[j] = deadEnds[j], deadEnds[i]
	})
	for _, de := range deadEnds {
		for _, c := range cardinals {
			n := slot{GX: de.GX + c.GX, GY: de.GY + c.GY}
			if l.inGrid(n) && l.at(n) == nil {
				l.placeRoom(n, gamemap.RoomTreasure)
				return
			}
		}
	}
	l.placeFrontierRoom(gamemap.RoomTreasure)
}

// placeFrontierRoom consumes the oldest frontier slot for the given kind.
func (l *slotLayout) placeFrontierRoom(kind gamemap.RoomKind) *gamemap.Room {
	if len(l.frontier) == 0 {
		return nil
	}
	s := l.frontier[0]
	l.frontier = l.frontier[1:]
	return l.placeRoom(s, kind)
}

// connectAdjacent writes one door at the midpoint of every shared slot
// edge. Only south and east neighbors are scanned so each pair is handled
// once. A door touching a treasure room is locked; all other doors are open
// and belong to both rooms' door lists.
func (l *slotLayout) connectAdjacent() {
	for gy := 0; gy < l.rows; gy++ {
		for gx := 0; gx < l.cols; gx++ {
			room := l.at(slot{GX: gx, GY: gy})
			if room == nil {
				continue
			}
			south := slot{GX: gx, GY: gy + 1}
			if l.inGrid(south) && l.at(south) != nil {
				p := gamemap.Position{X: room.Rect.CenterX(), Y: room.Rect.Bottom()}
				l.placeDoor(p, room, l.at(south))
			}
			east := slot{GX: gx + 1, GY: gy}
			if l.inGrid(east) && l.at(east) != nil {
				p := gamemap.Position{X: room.Rect.Right(), Y: room.Rect.CenterY()}
				l.placeDoor(p, room, l.at(east))
			}
		}
	}
}

func (l *slotLayout) placeDoor(p gamemap.Position, a, b *gamemap.Room) {
	g := l.d.Grid
	if !g.InBounds(p.X, p.Y) {
		return
	}
	if a.Kind == gamemap.RoomTreasure || b.Kind == gamemap.RoomTreasure {
		g.Set(p.X, p.Y, gamemap.CellLockedDoor)
		l.d.Doors[p] = gamemap.DoorLocked
		l.d.LockedDoors[p] = true
		return
	}
	g.Set(p.X, p.Y, gamemap.CellOpenDoor)
	l.d.Doors[p] = gamemap.DoorOpen
	a.Doors = append(a.Doors, p)
	b.Doors = append(b.Doors, p)
}

// farthestRoom returns the room whose center is farthest (Manhattan) from
// the given room's center. Used as the end marker when no boss was placed.
func (l *slotLayout) farthestRoom(from *gamemap.Room) *gamemap.Room {
	best := from
	bestDist := -1
	fc := from.Rect.Center()
	for _, r := range l.d.Rooms {
		c := r.Rect.Center()
		if dist := abs(c.X-fc.X) + abs(c.Y-fc.Y); dist > bestDist {
			bestDist = dist
			best = r
		}
	}
	return best
}
