package game

import (
	"testing"

	"maze-crawler/internal/gamemap"
)

func TestVisibilityInsideRoom(t *testing.T) {
	s := twoRoomFixture(0)
	vis := s.VisibleCells()

	// Every non-wall cell of the start room is revealed.
	roomA := s.roomByKind(gamemap.RoomStart)
	rc := roomA.Rect
	for y := rc.Top(); y < rc.Bottom(); y++ {
		for x := rc.Left(); x < rc.Right(); x++ {
			if !vis[gamemap.Position{X: x, Y: y}] {
				t.Errorf("room cell (%d,%d) not visible", x, y)
			}
		}
	}
	// The room's own door is revealed too.
	if !vis[gamemap.Position{X: 8, Y: 4}] {
		t.Error("room entrance not visible from inside")
	}
	// The neighboring room stays dark.
	if vis[gamemap.Position{X: 12, Y: 4}] {
		t.Error("neighboring room leaked into the reveal set")
	}
}

func TestVisibilityInCorridor(t *testing.T) {
	s := twoRoomFixture(0)
	s.OnPositionChanged(gamemap.Position{X: 9, Y: 9})
	vis := s.VisibleCells()

	if !vis[gamemap.Position{X: 9, Y: 9}] {
		t.Fatal("player's own cell not visible")
	}
	if !vis[gamemap.Position{X: 11, Y: 9}] {
		t.Error("corridor cell two steps away not visible")
	}
	if vis[gamemap.Position{X: 12, Y: 9}] {
		t.Error("corridor reveal exceeded its radius")
	}
	// Walls stay dark even inside the radius.
	if vis[gamemap.Position{X: 9, Y: 8}] {
		t.Error("wall cell visible from the corridor")
	}
}

func TestVisibilityClearsOnRoomExit(t *testing.T) {
	s := twoRoomFixture(0)
	roomA := s.roomByKind(gamemap.RoomStart)
	if !s.VisibleCells()[gamemap.Position{X: 6, Y: 6}] {
		t.Fatal("start room not revealed initially")
	}

	// Step into the corridor: the room body must go dark again. Cells
	// inside the corridor's own 5x5 radius are exempt.
	s.OnPositionChanged(gamemap.Position{X: 9, Y: 9})
	for y := roomA.Rect.Top(); y < roomA.Rect.Bottom(); y++ {
		for x := roomA.Rect.Left(); x < roomA.Rect.Right(); x++ {
			if absInt(x-9) <= corridorRevealRadius && absInt(y-9) <= corridorRevealRadius {
				continue
			}
			if s.VisibleCells()[gamemap.Position{X: x, Y: y}] {
				t.Fatalf("room cell (%d,%d) still visible from the corridor", x, y)
			}
		}
	}
}

func TestVisibilityDeterministic(t *testing.T) {
	moves := []struct{ dx, dy int }{
		{1, 0}, {1, 0}, {0, 1}, {1, 0}, {0, 1}, {0, 1},
		{-1, 0}, {0, -1}, {1, 0}, {1, 0}, {0, 1}, {1, 0},
	}

	run := func() map[gamemap.Position]bool {
		s, err := NewSession(31, 21, 42)
		if err != nil {
			t.Fatal(err)
		}
		for _, m := range moves {
			s.TryMove(m.dx, m.dy)
		}
		out := make(map[gamemap.Position]bool, len(s.VisibleCells()))
		for p := range s.VisibleCells() {
			out[p] = true
		}
		return out
	}

	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("reveal sets differ in size: %d vs %d", len(a), len(b))
	}
	for p := range a {
		if !b[p] {
			t.Fatalf("reveal sets differ at %v", p)
		}
	}
}
