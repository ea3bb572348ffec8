package game

import "maze-crawler/internal/gamemap"

// recomputeDoors rebuilds the open/closed state of every door owned by a
// visited room. Two passes: first each visited room's DoorsClosed flag is
// recomputed from its live monster count, then each door is written from
// the flags of all its owners. Unvisited rooms are never touched, so their
// doors keep the state generation gave them. The recompute is idempotent.
func (s *Session) recomputeDoors() {
	for _, room := range s.dungeon.Rooms {
		if !room.Visited {
			continue
		}
		live := 0
		for _, m := range s.monsters {
			if m.Alive && room.Contains(m.X, m.Y) {
				live++
			}
		}
		room.DoorsClosed = live > 0
		if live == 0 {
			room.Cleared = true
		}
	}

	done := make(map[gamemap.Position]bool)
	for _, room := range s.dungeon.Rooms {
		if !room.Visited {
			continue
		}
		for _, p := range room.Doors {
			if done[p] {
				continue
			}
			done[p] = true

			closed := false
			for _, owner := range s.dungeon.RoomsWithDoor(p) {
				if owner.Visited && owner.DoorsClosed {
					closed = true
					break
				}
			}
			if closed {
				s.dungeon.Grid.Set(p.X, p.Y, gamemap.CellClosedDoor)
				s.dungeon.Doors[p] = gamemap.DoorClosed
			} else {
				s.dungeon.Grid.Set(p.X, p.Y, gamemap.CellOpenDoor)
				s.dungeon.Doors[p] = gamemap.DoorOpen
			}
		}
	}
}

// OnMonsterKilled marks m dead and recomputes door state. Killing the last
// monster in a room reopens its doors and marks the room cleared. Calling
// it twice for the same monster, or with nil, is a no-op.
func (s *Session) OnMonsterKilled(m *Monster) {
	if m == nil || !m.Alive {
		return
	}
	m.Alive = false
	s.player.Score += 10
	s.recomputeDoors()
}
