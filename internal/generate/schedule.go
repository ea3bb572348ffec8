package generate

import (
	"maze-crawler/internal/gamemap"
)

// scheduleContent fills every room's deferred spawn tables and collects the
// corridor items that materialize immediately. Nothing here creates live
// entities: rooms keep descriptors until their first visit.
func scheduleContent(d *gamemap.Dungeon, cfg *Config) {
	rng := cfg.Rand
	used := map[gamemap.Position]bool{d.Start: true, d.End: true}

	for _, room := range d.Rooms {
		positions := interiorFloor(d, room)
		rng.Shuffle(len(positions), func(i, j int) {
			positions[i], positions[j] = positions[j], positions[i]
		})

		switch room.Kind {
		case gamemap.RoomStart:
			// Never monsters; regular items are still fair game.
			scheduleItems(room, positions, cfg, used)
		case gamemap.RoomNormal, gamemap.RoomBoss, gamemap.RoomTreasure:
			scheduleItems(room, positions, cfg, used)
			scheduleMonsters(room, positions, cfg, used)
		case gamemap.RoomShop:
			// Stock handled by key distribution below plus regular items.
			scheduleItems(room, positions, cfg, used)
		case gamemap.RoomSecret:
			scheduleFixedItems(room, positions, cfg.SecretItemCount, cfg, used)
		case gamemap.RoomSuperSecret:
			scheduleFixedItems(room, positions, cfg.SuperSecretItemCount, cfg, used)
		case gamemap.RoomKey:
			// Keys distributed below.
		}

		if room.Kind != gamemap.RoomStart {
			scheduleObstacles(d, room, cfg, used)
		}
	}

	distributeKeys(d, cfg, used)
	scheduleCorridorItems(d, cfg, used)
}

// interiorFloor collects the room's floor cells excluding the outermost
// ring, so nothing spawns adjacent to a door.
func interiorFloor(d *gamemap.Dungeon, room *gamemap.Room) []gamemap.Position {
	rc := room.Rect
	var out []gamemap.Position
	for y := rc.Top() + 1; y < rc.Bottom()-1; y++ {
		for x := rc.Left() + 1; x < rc.Right()-1; x++ {
			if d.Grid.At(x, y) == gamemap.CellFloor {
				out = append(out, gamemap.Position{X: x, Y: y})
			}
		}
	}
	return out
}

func scheduleItems(room *gamemap.Room, positions []gamemap.Position, cfg *Config, used map[gamemap.Position]bool) {
	table := cfg.ItemTables[room.Kind]
	density := cfg.ItemDensities[room.Kind]
	if len(table) == 0 || density <= 0 {
		return
	}
	count := len(positions) / density
	placed := 0
	for _, p := range positions {
		if placed >= count {
			break
		}
		if used[p] {
			continue
		}
		e := weightedPick(cfg.Rand, table)
		room.ItemData = append(room.ItemData, gamemap.ItemSpawn{
			Pos:   p,
			Kind:  e.Kind,
			Value: randRange(cfg.Rand, e.MinValue, e.MaxValue),
		})
		used[p] = true
		placed++
	}
}

// scheduleFixedItems places an exact number of items, used by secret rooms
// whose loot count does not scale with floor area.
func scheduleFixedItems(room *gamemap.Room, positions []gamemap.Position, count int, cfg *Config, used map[gamemap.Position]bool) {
	table := cfg.ItemTables[room.Kind]
	if len(table) == 0 {
		return
	}
	placed := 0
	for _, p := range positions {
		if placed >= count {
			break
		}
		if used[p] {
			continue
		}
		e := weightedPick(cfg.Rand, table)
		room.ItemData = append(room.ItemData, gamemap.ItemSpawn{
			Pos:   p,
			Kind:  e.Kind,
			Value: randRange(cfg.Rand, e.MinValue, e.MaxValue),
		})
		used[p] = true
		placed++
	}
}

func scheduleMonsters(room *gamemap.Room, positions []gamemap.Position, cfg *Config, used map[gamemap.Position]bool) {
	density := cfg.MonsterDensities[room.Kind]
	if density <= 0 {
		return
	}
	diff := cfg.MonsterDifficulty[room.Kind]
	if diff.Min <= 0 {
		diff = Difficulty{Min: 1, Max: 1}
	}
	count := len(positions) / density
	placed := 0
	for _, p := range positions {
		if placed >= count {
			break
		}
		if used[p] {
			continue
		}
		room.MonsterData = append(room.MonsterData, gamemap.MonsterSpawn{
			Pos:        p,
			Difficulty: randRange(cfg.Rand, diff.Min, diff.Max),
		})
		used[p] = true
		placed++
	}
}

// scheduleObstacles drops a few impassable props per room, kept off the
// walls and spaced at least 3 apart so every room stays traversable.
func scheduleObstacles(d *gamemap.Dungeon, room *gamemap.Room, cfg *Config, used map[gamemap.Position]bool) {
	rng := cfg.Rand
	if cfg.ObstaclesMax <= 0 {
		return
	}
	rc := room.Rect
	if rc.W < 6 || rc.H < 6 {
		return
	}
	want := randRange(rng, cfg.ObstaclesMin, cfg.ObstaclesMax)
	sizes := []gamemap.ObstacleSize{
		gamemap.ObstacleSmall, gamemap.ObstacleMedium,
		gamemap.ObstacleMedium, gamemap.ObstacleLarge,
	}
	placed := 0
	for attempt := 0; attempt < cfg.PlaceAttempts && placed < want; attempt++ {
		p := gamemap.Position{
			X: randRange(rng, rc.Left()+2, rc.Right()-3),
			Y: randRange(rng, rc.Top()+2, rc.Bottom()-3),
		}
		if used[p] || d.Grid.At(p.X, p.Y) != gamemap.CellFloor {
			continue
		}
		tooClose := false
		for _, o := range room.ObstacleData {
			if abs(p.X-o.Pos.X)+abs(p.Y-o.Pos.Y) < 3 {
				tooClose = true
				break
			}
		}
		if tooClose {
			continue
		}
		room.ObstacleData = append(room.ObstacleData, gamemap.ObstacleSpawn{
			Pos:  p,
			Size: sizes[rng.Intn(len(sizes))],
		})
		used[p] = true
		placed++
	}
}

// distributeKeys reserves exactly one key per locked door. Keys go into key
// rooms when the layout has them, otherwise the shop, otherwise the start
// room, so every lock is always openable without crossing it.
func distributeKeys(d *gamemap.Dungeon, cfg *Config, used map[gamemap.Position]bool) {
	needed := len(d.LockedDoors)
	if needed == 0 {
		return
	}
	holders := d.RoomsOfKind(gamemap.RoomKey)
	if len(holders) == 0 {
		holders = d.RoomsOfKind(gamemap.RoomShop)
	}
	if len(holders) == 0 {
		holders = d.RoomsOfKind(gamemap.RoomStart)
	}
	if len(holders) == 0 {
		return
	}
	for i := 0; i < needed; i++ {
		room := holders[i%len(holders)]
		positions := interiorFloor(d, room)
		cfg.Rand.Shuffle(len(positions), func(a, b int) {
			positions[a], positions[b] = positions[b], positions[a]
		})
		for _, p := range positions {
			if used[p] {
				continue
			}
			room.ItemData = append(room.ItemData, gamemap.ItemSpawn{
				Pos:   p,
				Kind:  gamemap.ItemKey,
				Value: 1,
			})
			used[p] = true
			break
		}
	}
}

// scheduleCorridorItems sprinkles immediate item spawns over floor cells
// that belong to no room.
func scheduleCorridorItems(d *gamemap.Dungeon, cfg *Config, used map[gamemap.Position]bool) {
	if len(cfg.CorridorItemTable) == 0 || cfg.CorridorItemDensity <= 0 {
		return
	}
	var corridor []gamemap.Position
	for y := 0; y < d.Grid.Height; y++ {
		for x := 0; x < d.Grid.Width; x++ {
			if d.Grid.At(x, y) != gamemap.CellFloor {
				continue
			}
			if d.RoomAt(x, y) != nil {
				continue
			}
			corridor = append(corridor, gamemap.Position{X: x, Y: y})
		}
	}
	cfg.Rand.Shuffle(len(corridor), func(i, j int) {
		corridor[i], corridor[j] = corridor[j], corridor[i]
	})
	count := len(corridor) / cfg.CorridorItemDensity
	placed := 0
	for _, p := range corridor {
		if placed >= count {
			break
		}
		if used[p] {
			continue
		}
		e := weightedPick(cfg.Rand, cfg.CorridorItemTable)
		d.CorridorItems = append(d.CorridorItems, gamemap.ItemSpawn{
			Pos:   p,
			Kind:  e.Kind,
			Value: randRange(cfg.Rand, e.MinValue, e.MaxValue),
		})
		used[p] = true
		placed++
	}
}
