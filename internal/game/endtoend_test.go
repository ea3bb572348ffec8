package game

import (
	"math/rand"
	"testing"

	"maze-crawler/internal/gamemap"
	"maze-crawler/internal/generate"
)

// TestRandomWalkInvariants drives seeded sessions with random input and
// checks the state-machine invariants after every step.
func TestRandomWalkInvariants(t *testing.T) {
	dirs := []struct{ dx, dy int }{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

	for _, strategy := range []generate.Strategy{generate.StrategyLinear, generate.StrategyBranching} {
		for seed := int64(1); seed <= 5; seed++ {
			s, err := NewSessionWithStrategy(31, 21, seed, strategy)
			if err != nil {
				t.Fatalf("strategy %d seed %d: %v", strategy, seed, err)
			}
			walk := rand.New(rand.NewSource(seed * 1000))

			for step := 0; step < 300; step++ {
				d := dirs[walk.Intn(len(dirs))]
				p := s.Player()

				// Walking into a monster attacks it, like the interactive loop.
				if m := s.MonsterAt(p.X+d.dx, p.Y+d.dy); m != nil {
					s.Attack(m)
				} else {
					out := s.TryMove(d.dx, d.dy)
					if out.Kind == MoveBlocked && (out.Pos.X != p.X || out.Pos.Y != p.Y) {
						t.Fatalf("blocked move changed position to %v", out.Pos)
					}
				}

				checkInvariants(t, s)
				if s.Won() || s.GameOver() {
					break
				}
			}
		}
	}
}

func checkInvariants(t *testing.T, s *Session) {
	t.Helper()
	p := gamemap.Position{X: s.Player().X, Y: s.Player().Y}

	// The player never stands on a wall or a closed door.
	switch s.Grid().At(p.X, p.Y) {
	case gamemap.CellWall:
		t.Fatal("player standing on a wall")
	case gamemap.CellClosedDoor, gamemap.CellLockedDoor:
		t.Fatal("player standing on an impassable door")
	}

	// The player's own cell is always revealed.
	if !s.VisibleCells()[p] {
		t.Fatal("player cell not in the reveal set")
	}

	for _, room := range s.Rooms() {
		live := 0
		for _, m := range s.Monsters() {
			if m.Alive && room.Contains(m.X, m.Y) {
				live++
			}
		}

		// Unvisited rooms never materialize entities.
		if !room.Visited && live > 0 {
			t.Fatal("monsters alive in an unvisited room")
		}
		// Visited rooms close their doors exactly while monsters live.
		if room.Visited && room.DoorsClosed != (live > 0) {
			t.Fatalf("%s room: DoorsClosed=%v with %d live monsters",
				room.Kind, room.DoorsClosed, live)
		}
		// A cleared room stays cleared.
		if room.Cleared && room.DoorsClosed {
			t.Fatalf("%s room both cleared and closed", room.Kind)
		}
	}

	// Door cells on the grid agree with the door table.
	for dp, state := range s.Dungeon().Doors {
		cell := s.Grid().At(dp.X, dp.Y)
		switch state {
		case gamemap.DoorOpen:
			if cell != gamemap.CellOpenDoor {
				t.Fatalf("door %v: table open, grid %q", dp, cell)
			}
		case gamemap.DoorClosed:
			if cell != gamemap.CellClosedDoor {
				t.Fatalf("door %v: table closed, grid %q", dp, cell)
			}
		case gamemap.DoorLocked:
			if cell != gamemap.CellLockedDoor {
				t.Fatalf("door %v: table locked, grid %q", dp, cell)
			}
			if !s.Dungeon().LockedDoors[dp] {
				t.Fatalf("door %v locked in table but missing from lock set", dp)
			}
		}
	}
}

// TestKillThroughRun plays a scripted run on the hand-made fixture from
// start to a cleared dungeon.
func TestKillThroughRun(t *testing.T) {
	s := twoRoomFixture(4)
	s.dungeon.End = gamemap.Position{X: 15, Y: 4}
	s.Grid().Set(15, 4, gamemap.CellEnd)

	// Cross the start room and pass the door.
	for s.Player().X < 7 {
		if out := s.TryMove(1, 0); out.Kind == MoveBlocked {
			t.Fatal("blocked crossing the start room")
		}
	}
	s.OnPositionChanged(gamemap.Position{X: 7, Y: 4})
	if out := s.TryMove(1, 0); out.Kind != MoveTeleported {
		t.Fatal("door crossing failed")
	}

	// Trapped with the monster; kill it.
	m := s.MonsterAt(13, 4)
	if m == nil {
		t.Fatal("no monster in the far room")
	}
	for m.Alive {
		s.Attack(m)
		if s.GameOver() {
			t.Fatal("player died to a single 4 HP monster")
		}
	}
	if s.roomByKind(gamemap.RoomNormal).DoorsClosed {
		t.Fatal("doors closed after the room was cleared")
	}

	// Walk to the exit.
	for s.Player().X < 15 {
		if out := s.TryMove(1, 0); out.Kind == MoveBlocked {
			// Step around the dead monster's old spot if something blocks.
			s.TryMove(0, 1)
		}
	}
	if !s.Won() {
		t.Fatal("reaching the end cell did not finish the run")
	}
}
