package game

import "maze-crawler/internal/gamemap"

// corridorRevealRadius bounds the square of cells revealed around the
// player while walking between rooms.
const corridorRevealRadius = 2

// updateVisibility rebuilds the reveal set from scratch for the player's
// new position. The set never accumulates across moves: stepping out of a
// room hides it again, which keeps "what can I see" a pure function of
// where the player stands.
func (s *Session) updateVisibility(pos gamemap.Position, room *gamemap.Room) {
	s.visible = make(map[gamemap.Position]bool)

	if room != nil {
		rc := room.Rect
		for y := rc.Top(); y < rc.Bottom(); y++ {
			for x := rc.Left(); x < rc.Right(); x++ {
				if !s.dungeon.Grid.IsWall(x, y) {
					s.visible[gamemap.Position{X: x, Y: y}] = true
				}
			}
		}
		// The room's own entrances are visible from inside; doors a
		// neighbor registered on a far wall are not.
		for _, p := range room.Doors {
			if room.DoorOnBorder(p) {
				s.visible[p] = true
			}
		}
	} else {
		for dy := -corridorRevealRadius; dy <= corridorRevealRadius; dy++ {
			for dx := -corridorRevealRadius; dx <= corridorRevealRadius; dx++ {
				x, y := pos.X+dx, pos.Y+dy
				if !s.dungeon.Grid.InBounds(x, y) {
					continue
				}
				c := s.dungeon.Grid.At(x, y)
				if c == gamemap.CellWall || c.IsDoor() {
					continue
				}
				s.visible[gamemap.Position{X: x, Y: y}] = true
			}
		}
	}

	// The player's own cell is always visible, even when standing on a
	// door after squeezing past a blocked entrance.
	s.visible[pos] = true
}
