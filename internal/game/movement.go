package game

import "maze-crawler/internal/gamemap"

// MoveKind classifies the result of a movement attempt.
type MoveKind uint8

const (
	// MoveBlocked means the player did not move: wall, closed door,
	// locked door without a key, monster, or obstacle in the way.
	MoveBlocked MoveKind = iota
	// MoveMoved is an ordinary one-cell step.
	MoveMoved
	// MoveTeleported means the player passed through an open door and now
	// stands just inside the room on the other side.
	MoveTeleported
	// MoveConsumedKey is a teleport that spent a key to unlock the door
	// first. The door stays open afterward.
	MoveConsumedKey
)

// MoveOutcome reports what a TryMove call did and where the player ended up.
type MoveOutcome struct {
	Kind MoveKind
	Pos  gamemap.Position
}

// TryMove attempts a one-cell step by (dx, dy). All post-move state updates
// (room entry, door recompute, visibility, pickup, win check) run before it
// returns, so callers can render immediately.
func (s *Session) TryMove(dx, dy int) MoveOutcome {
	cur := gamemap.Position{X: s.player.X, Y: s.player.Y}
	next := gamemap.Position{X: cur.X + dx, Y: cur.Y + dy}

	if !s.dungeon.Grid.InBounds(next.X, next.Y) {
		return MoveOutcome{Kind: MoveBlocked, Pos: cur}
	}

	switch s.dungeon.Grid.At(next.X, next.Y) {
	case gamemap.CellWall, gamemap.CellClosedDoor:
		return MoveOutcome{Kind: MoveBlocked, Pos: cur}

	case gamemap.CellLockedDoor:
		if s.player.Keys == 0 {
			return MoveOutcome{Kind: MoveBlocked, Pos: cur}
		}
		s.player.Keys--
		delete(s.dungeon.LockedDoors, next)
		s.dungeon.Doors[next] = gamemap.DoorOpen
		s.dungeon.Grid.Set(next.X, next.Y, gamemap.CellOpenDoor)
		dest := s.doorDestination(next)
		s.OnPositionChanged(dest)
		return MoveOutcome{Kind: MoveConsumedKey, Pos: dest}

	case gamemap.CellOpenDoor:
		dest := s.doorDestination(next)
		s.OnPositionChanged(dest)
		return MoveOutcome{Kind: MoveTeleported, Pos: dest}

	default: // floor, start, end
		if s.MonsterAt(next.X, next.Y) != nil || s.obstacleAt(next.X, next.Y) != nil {
			return MoveOutcome{Kind: MoveBlocked, Pos: cur}
		}
		s.OnPositionChanged(next)
		return MoveOutcome{Kind: MoveMoved, Pos: next}
	}
}

// doorDestination resolves where passing through the door at p lands the
// player: the cell just inside the room on the far side. When that cell is
// not standable (shaped interior, monster, obstacle) the player stops on
// the door cell itself.
func (s *Session) doorDestination(p gamemap.Position) gamemap.Position {
	target := s.roomBeyondDoor(p)
	if target == nil {
		return p
	}

	rc := target.Rect
	dest := p
	switch {
	case p.Y == rc.Top()-1:
		dest = gamemap.Position{X: p.X, Y: rc.Top()}
	case p.Y == rc.Bottom():
		dest = gamemap.Position{X: p.X, Y: rc.Bottom() - 1}
	case p.X == rc.Left()-1:
		dest = gamemap.Position{X: rc.Left(), Y: p.Y}
	case p.X == rc.Right():
		dest = gamemap.Position{X: rc.Right() - 1, Y: p.Y}
	}

	if !s.standable(dest) {
		return p
	}
	return dest
}

// roomBeyondDoor picks the room the door at p leads into: any room touching
// p that does not already contain the player.
func (s *Session) roomBeyondDoor(p gamemap.Position) *gamemap.Room {
	for _, r := range s.dungeon.Rooms {
		if r.Contains(s.player.X, s.player.Y) {
			continue
		}
		if r.Contains(p.X, p.Y) || r.DoorOnBorder(p) {
			return r
		}
	}
	return nil
}

func (s *Session) standable(p gamemap.Position) bool {
	if !s.dungeon.Grid.At(p.X, p.Y).Walkable() {
		return false
	}
	return s.MonsterAt(p.X, p.Y) == nil && s.obstacleAt(p.X, p.Y) == nil
}
