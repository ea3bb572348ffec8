package generate

import (
	"testing"

	"maze-crawler/internal/gamemap"
)

func branchDungeon(t *testing.T, seed int64) *gamemap.Dungeon {
	t.Helper()
	d, err := Generate(testConfig(61, 41, StrategyBranching, seed))
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestBranchingRoomRoster(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		d := branchDungeon(t, seed)

		counts := map[gamemap.RoomKind]int{}
		for _, r := range d.Rooms {
			counts[r.Kind]++
		}
		if counts[gamemap.RoomStart] != 1 {
			t.Errorf("seed %d: %d start rooms", seed, counts[gamemap.RoomStart])
		}
		if counts[gamemap.RoomBoss] != 1 {
			t.Errorf("seed %d: %d boss rooms", seed, counts[gamemap.RoomBoss])
		}
		if counts[gamemap.RoomTreasure] != 1 {
			t.Errorf("seed %d: %d treasure rooms", seed, counts[gamemap.RoomTreasure])
		}
	}
}

func TestBranchingRoomsDoNotOverlap(t *testing.T) {
	d := branchDungeon(t, 3)
	for i, a := range d.Rooms {
		for _, b := range d.Rooms[i+1:] {
			if a.Rect.Intersects(b.Rect) {
				t.Errorf("rooms %v and %v overlap", a.Rect, b.Rect)
			}
		}
	}
}

func TestBranchingSharedDoorsBelongToBothRooms(t *testing.T) {
	d := branchDungeon(t, 8)
	for p, state := range d.Doors {
		owners := d.RoomsWithDoor(p)
		switch state {
		case gamemap.DoorOpen:
			if len(owners) != 2 {
				t.Errorf("open door %v has %d owners, want 2", p, len(owners))
			}
		case gamemap.DoorLocked:
			// Locked doors stay out of door lists so the room state machine
			// never rewrites them before they are unlocked.
			if len(owners) != 0 {
				t.Errorf("locked door %v has %d owners, want 0", p, len(owners))
			}
		}
	}
}

func TestBranchingTreasureDoorLocked(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		d := branchDungeon(t, seed)
		treasure := d.RoomsOfKind(gamemap.RoomTreasure)
		if len(treasure) == 0 {
			t.Fatalf("seed %d: no treasure room", seed)
		}
		if len(d.LockedDoors) == 0 {
			t.Errorf("seed %d: treasure room placed but nothing is locked", seed)
		}
		for p := range d.LockedDoors {
			borders := false
			for _, r := range treasure {
				if r.DoorOnBorder(p) {
					borders = true
				}
			}
			if !borders {
				t.Errorf("seed %d: locked door %v does not border a treasure room", seed, p)
			}
		}
	}
}

func TestBranchingStartRoomCentered(t *testing.T) {
	d := branchDungeon(t, 12)
	start := d.RoomsOfKind(gamemap.RoomStart)[0]
	cx, cy := start.Rect.CenterX(), start.Rect.CenterY()
	if cx < 20 || cx > 40 || cy < 13 || cy > 27 {
		t.Errorf("start room center (%d,%d) not near the grid center", cx, cy)
	}
}

func TestBranchingBossFarFromStart(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		d := branchDungeon(t, seed)
		start := d.RoomsOfKind(gamemap.RoomStart)[0]
		boss := d.RoomsOfKind(gamemap.RoomBoss)[0]
		sc, bc := start.Rect.Center(), boss.Rect.Center()
		dist := abs(sc.X-bc.X) + abs(sc.Y-bc.Y)
		if dist < 10 {
			t.Errorf("seed %d: boss room only %d cells from start", seed, dist)
		}
	}
}
