package generate

import (
	"maze-crawler/internal/gamemap"
)

// layoutLinear places main rooms along a fuzzed diagonal from the top-left
// toward the bottom-right, buds treasure and key rooms off the main path,
// carves L-shaped corridors, and registers doors. Placement failures are
// recovered by skipping the room; the layout always terminates.
func layoutLinear(g *gamemap.Grid, cfg *Config) *gamemap.Dungeon {
	rng := cfg.Rand
	d := &gamemap.Dungeon{
		Grid:        g,
		Doors:       make(map[gamemap.Position]gamemap.DoorState),
		LockedDoors: make(map[gamemap.Position]bool),
	}

	var mains []*gamemap.Room
	hosts := make(map[*gamemap.Room]*gamemap.Room) // side room -> main room it buds from

	mainCount := randRange(rng, cfg.MainRoomsMin, cfg.MainRoomsMax)
	for i := 0; i < mainCount; i++ {
		for attempt := 0; attempt < cfg.PlaceAttempts; attempt++ {
			progress := 0.0
			if mainCount > 1 {
				progress = float64(i) / float64(mainCount-1)
			}
			w := randRange(rng, cfg.MainRoomSizeMin, cfg.MainRoomSizeMax)
			h := randRange(rng, cfg.MainRoomSizeMin, cfg.MainRoomSizeMax)
			x := clamp(int(progress*float64(cfg.Width-10))+5+randRange(rng, -3, 3), 1, cfg.Width-w-1)
			y := clamp(int(progress*float64(cfg.Height-10))+5+randRange(rng, -3, 3), 1, cfg.Height-h-1)
			if x < 1 || y < 1 {
				continue // map too small for this room
			}

			rc := gamemap.Rect{X: x, Y: y, W: w, H: h}
			if overlapsAny(rc.Inflate(2, 2), d.Rooms, nil) {
				continue
			}
			carveInterior(g, rc, rng)
			room := &gamemap.Room{Rect: rc, Kind: gamemap.RoomNormal}
			mains = append(mains, room)
			d.Rooms = append(d.Rooms, room)
			break
		}
	}
	if len(mains) == 0 {
		// Degenerate dimensions: fall back to one room dead center so the
		// dungeon is still valid.
		w, h := cfg.Width/2, cfg.Height/2
		rc := gamemap.Rect{X: cfg.Width/2 - w/2, Y: cfg.Height/2 - h/2, W: w, H: h}
		carveRect(g, rc)
		room := &gamemap.Room{Rect: rc, Kind: gamemap.RoomStart}
		mains = append(mains, room)
		d.Rooms = append(d.Rooms, room)
	}
	mains[0].Kind = gamemap.RoomStart
	if len(mains) > 1 {
		mains[len(mains)-1].Kind = gamemap.RoomBoss
	}

	// Treasure rooms bud off interior main rooms with a 3-cell gap.
	treasureCount := randRange(rng, cfg.TreasureRoomsMin, cfg.TreasureRoomsMax)
	for i := 0; i < treasureCount; i++ {
		if len(mains) < 3 {
			break
		}
		d.Rooms = budRoom(d, cfg, hosts, mains[1:len(mains)-1], gamemap.RoomTreasure, 3, 2)
	}

	// Key rooms bud off mid-path main rooms with a 2-cell gap.
	keyCount := randRange(rng, cfg.KeyRoomsMin, cfg.KeyRoomsMax)
	for i := 0; i < keyCount; i++ {
		if len(mains) < 5 {
			break
		}
		d.Rooms = budRoom(d, cfg, hosts, mains[2:len(mains)-2], gamemap.RoomKey, 2, 1)
	}

	// Corridors: the main path in sequence, then each side room to its host.
	for i := 0; i+1 < len(mains); i++ {
		carveCorridor(g, mains[i].Rect.Center(), mains[i+1].Rect.Center(), rng.Intn(2) == 0)
	}
	for _, room := range d.Rooms {
		host, ok := hosts[room]
		if !ok {
			continue
		}
		// Horizontal-then-vertical leg order is fixed for treasure rooms so
		// the lock lands exactly on the treasure room's border.
		carveCorridor(g, host.Rect.Center(), room.Rect.Center(), true)
	}

	d.Start = mains[0].Rect.Center()
	d.End = mains[len(mains)-1].Rect.Center()
	if d.End == d.Start {
		// Single-room layout: keep the exit distinct from the start.
		for _, q := range []gamemap.Position{
			{X: d.End.X + 1, Y: d.End.Y},
			{X: d.End.X - 1, Y: d.End.Y},
			{X: d.End.X, Y: d.End.Y + 1},
		} {
			if g.At(q.X, q.Y) == gamemap.CellFloor {
				d.End = q
				break
			}
		}
	}
	g.Set(d.Start.X, d.Start.Y, gamemap.CellStart)
	g.Set(d.End.X, d.End.Y, gamemap.CellEnd)

	placeTreasureLocks(d, hosts)
	placeExitDoors(d)
	return d
}

// budRoom tries to attach one room of the given kind to a random candidate
// host, testing the four cardinal offsets from the host's border. On
// success the new room is carved and recorded; on failure the room list is
// returned unchanged.
func budRoom(d *gamemap.Dungeon, cfg *Config, hosts map[*gamemap.Room]*gamemap.Room,
	candidates []*gamemap.Room, kind gamemap.RoomKind, gap, margin int) []*gamemap.Room {

	rng := cfg.Rand
	g := d.Grid
	for attempt := 0; attempt < cfg.PlaceAttempts; attempt++ {
		host := candidates[rng.Intn(len(candidates))]
		w := randRange(rng, cfg.SideRoomSizeMin, cfg.SideRoomSizeMax)
		h := randRange(rng, cfg.SideRoomSizeMin, cfg.SideRoomSizeMax)
		hr := host.Rect

		offsets := []gamemap.Position{
			{X: hr.Right() + gap, Y: hr.CenterY() - h/2},  // east
			{X: hr.Left() - w - gap, Y: hr.CenterY() - h/2}, // west
			{X: hr.CenterX() - w/2, Y: hr.Bottom() + gap},  // south
			{X: hr.CenterX() - w/2, Y: hr.Top() - h - gap}, // north
		}
		for _, off := range offsets {
			if off.X < 1 || off.Y < 1 || off.X+w >= cfg.Width-1 || off.Y+h >= cfg.Height-1 {
				continue
			}
			rc := gamemap.Rect{X: off.X, Y: off.Y, W: w, H: h}
			if overlapsAny(rc.Inflate(margin, margin), d.Rooms, host) {
				continue
			}
			carveInterior(g, rc, rng)
			room := &gamemap.Room{Rect: rc, Kind: kind}
			hosts[room] = host
			return append(d.Rooms, room)
		}
	}
	return d.Rooms
}

// placeTreasureLocks writes one locked door on each treasure room's border,
// on the edge facing its host room.
func placeTreasureLocks(d *gamemap.Dungeon, hosts map[*gamemap.Room]*gamemap.Room) {
	g := d.Grid
	for _, room := range d.Rooms {
		if room.Kind != gamemap.RoomTreasure {
			continue
		}
		host := hosts[room]
		if host == nil {
			continue
		}
		rc := room.Rect
		hc, tc := host.Rect.Center(), rc.Center()

		var candidates []gamemap.Position
		if abs(tc.X-hc.X) > abs(tc.Y-hc.Y) {
			x := rc.Left()
			if hc.X > tc.X {
				x = rc.Right() - 1
			}
			for dy := -1; dy <= 1; dy++ {
				y := rc.CenterY() + dy
				if y >= rc.Top() && y < rc.Bottom() {
					candidates = append(candidates, gamemap.Position{X: x, Y: y})
				}
			}
		} else {
			y := rc.Top()
			if hc.Y > tc.Y {
				y = rc.Bottom() - 1
			}
			for dx := -1; dx <= 1; dx++ {
				x := rc.CenterX() + dx
				if x >= rc.Left() && x < rc.Right() {
					candidates = append(candidates, gamemap.Position{X: x, Y: y})
				}
			}
		}
		for _, p := range candidates {
			if g.At(p.X, p.Y) == gamemap.CellFloor {
				g.Set(p.X, p.Y, gamemap.CellLockedDoor)
				d.Doors[p] = gamemap.DoorLocked
				d.LockedDoors[p] = true
				break
			}
		}
	}
}

// placeExitDoors registers a door (open until the room closes) at every
// point where a corridor touches a non-treasure room's border, up to three
// per room.
func placeExitDoors(d *gamemap.Dungeon) {
	g := d.Grid
	for _, room := range d.Rooms {
		if room.Kind == gamemap.RoomTreasure {
			continue
		}
		rc := room.Rect
		// Each candidate pairs the outside door cell with the cell just
		// inside the border. Both must be floor: a corridor running tangent
		// to the room, or a shaped interior with wall on the border ring,
		// would otherwise produce a door leading nowhere.
		type crossing struct{ door, inside gamemap.Position }
		var candidates []crossing
		for x := rc.Left(); x < rc.Right(); x++ {
			candidates = append(candidates,
				crossing{gamemap.Position{X: x, Y: rc.Top() - 1}, gamemap.Position{X: x, Y: rc.Top()}},
				crossing{gamemap.Position{X: x, Y: rc.Bottom()}, gamemap.Position{X: x, Y: rc.Bottom() - 1}})
		}
		for y := rc.Top(); y < rc.Bottom(); y++ {
			candidates = append(candidates,
				crossing{gamemap.Position{X: rc.Left() - 1, Y: y}, gamemap.Position{X: rc.Left(), Y: y}},
				crossing{gamemap.Position{X: rc.Right(), Y: y}, gamemap.Position{X: rc.Right() - 1, Y: y}})
		}

		placed := 0
		for _, c := range candidates {
			if placed >= 3 {
				break
			}
			if g.At(c.door.X, c.door.Y) != gamemap.CellFloor {
				continue
			}
			if g.At(c.inside.X, c.inside.Y) != gamemap.CellFloor {
				continue
			}
			if _, taken := d.Doors[c.door]; taken {
				continue
			}
			g.Set(c.door.X, c.door.Y, gamemap.CellOpenDoor)
			d.Doors[c.door] = gamemap.DoorOpen
			room.Doors = append(room.Doors, c.door)
			placed++
		}
	}
}

// carveCorridor digs an L-shaped tunnel between two points. horizontalFirst
// fixes the leg order; pass rng-derived values for a random elbow.
func carveCorridor(g *gamemap.Grid, from, to gamemap.Position, horizontalFirst bool) {
	if horizontalFirst {
		carveH(g, from.X, to.X, from.Y)
		carveV(g, from.Y, to.Y, to.X)
	} else {
		carveV(g, from.Y, to.Y, from.X)
		carveH(g, from.X, to.X, to.Y)
	}
}

func carveH(g *gamemap.Grid, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if x > 0 && x < g.Width-1 && y > 0 && y < g.Height-1 && g.At(x, y) == gamemap.CellWall {
			g.Set(x, y, gamemap.CellFloor)
		}
	}
}

func carveV(g *gamemap.Grid, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if x > 0 && x < g.Width-1 && y > 0 && y < g.Height-1 && g.At(x, y) == gamemap.CellWall {
			g.Set(x, y, gamemap.CellFloor)
		}
	}
}

// overlapsAny reports whether rc (already grown by the caller's margin)
// collides with any existing room. except is skipped so a budding room can
// sit closer to its host than the general margin allows.
func overlapsAny(rc gamemap.Rect, rooms []*gamemap.Room, except *gamemap.Room) bool {
	for _, r := range rooms {
		if r == except {
			continue
		}
		if rc.Intersects(r.Rect) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
