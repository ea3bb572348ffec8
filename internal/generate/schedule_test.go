package generate

import (
	"testing"

	"maze-crawler/internal/gamemap"
)

func TestScheduleStartRoomHasNoMonsters(t *testing.T) {
	for _, strategy := range []Strategy{StrategyLinear, StrategyBranching} {
		for seed := int64(1); seed <= 10; seed++ {
			d, err := Generate(testConfig(61, 41, strategy, seed))
			if err != nil {
				t.Fatal(err)
			}
			start := d.RoomsOfKind(gamemap.RoomStart)[0]
			if len(start.MonsterData) != 0 {
				t.Errorf("strategy %d seed %d: start room scheduled %d monsters",
					strategy, seed, len(start.MonsterData))
			}
		}
	}
}

func TestScheduleSpawnsStayOffWallsAndMarkers(t *testing.T) {
	d, err := Generate(testConfig(61, 41, StrategyBranching, 4))
	if err != nil {
		t.Fatal(err)
	}
	check := func(room *gamemap.Room, p gamemap.Position, what string) {
		t.Helper()
		if d.Grid.At(p.X, p.Y) != gamemap.CellFloor {
			t.Errorf("%s at %v sits on %q, want floor", what, p, d.Grid.At(p.X, p.Y))
		}
		if !room.Contains(p.X, p.Y) {
			t.Errorf("%s at %v outside its room %v", what, p, room.Rect)
		}
	}
	for _, room := range d.Rooms {
		for _, ms := range room.MonsterData {
			check(room, ms.Pos, "monster")
		}
		for _, is := range room.ItemData {
			check(room, is.Pos, "item")
		}
		for _, os := range room.ObstacleData {
			check(room, os.Pos, "obstacle")
		}
	}
}

func TestScheduleNoDoubledPositions(t *testing.T) {
	d, err := Generate(testConfig(61, 41, StrategyBranching, 9))
	if err != nil {
		t.Fatal(err)
	}
	seen := map[gamemap.Position]bool{}
	claim := func(p gamemap.Position) {
		t.Helper()
		if seen[p] {
			t.Errorf("position %v scheduled twice", p)
		}
		seen[p] = true
	}
	for _, room := range d.Rooms {
		for _, ms := range room.MonsterData {
			claim(ms.Pos)
		}
		for _, is := range room.ItemData {
			claim(is.Pos)
		}
		for _, os := range room.ObstacleData {
			claim(os.Pos)
		}
	}
	for _, is := range d.CorridorItems {
		claim(is.Pos)
	}
}

func TestScheduleMonsterDifficultyInRange(t *testing.T) {
	cfg := testConfig(61, 41, StrategyBranching, 11)
	d, err := Generate(cfg)
	if err != nil {
		t.Fatal(err)
	}
	for _, room := range d.Rooms {
		want, ok := cfg.MonsterDifficulty[room.Kind]
		for _, ms := range room.MonsterData {
			if !ok {
				t.Fatalf("%s room has monsters but no difficulty entry", room.Kind)
			}
			if ms.Difficulty < want.Min || ms.Difficulty > want.Max {
				t.Errorf("%s room monster difficulty %d outside [%d,%d]",
					room.Kind, ms.Difficulty, want.Min, want.Max)
			}
		}
	}
}

func TestScheduleObstacleSpacing(t *testing.T) {
	d, err := Generate(testConfig(61, 41, StrategyLinear, 6))
	if err != nil {
		t.Fatal(err)
	}
	for _, room := range d.Rooms {
		obs := room.ObstacleData
		for i, a := range obs {
			for _, b := range obs[i+1:] {
				if dist := abs(a.Pos.X-b.Pos.X) + abs(a.Pos.Y-b.Pos.Y); dist < 3 {
					t.Errorf("obstacles %v and %v only %d apart", a.Pos, b.Pos, dist)
				}
			}
		}
	}
}

func TestScheduleCorridorItemsOutsideRooms(t *testing.T) {
	d, err := Generate(testConfig(61, 41, StrategyLinear, 13))
	if err != nil {
		t.Fatal(err)
	}
	for _, is := range d.CorridorItems {
		if d.RoomAt(is.Pos.X, is.Pos.Y) != nil {
			t.Errorf("corridor item at %v is inside a room", is.Pos)
		}
		if d.Grid.At(is.Pos.X, is.Pos.Y) != gamemap.CellFloor {
			t.Errorf("corridor item at %v not on floor", is.Pos)
		}
	}
}

func TestScheduleSecretRoomItemCounts(t *testing.T) {
	cfg := testConfig(61, 41, StrategyBranching, 17)
	d, err := Generate(cfg)
	if err != nil {
		t.Fatal(err)
	}
	for _, room := range d.RoomsOfKind(gamemap.RoomSecret) {
		if len(room.ItemData) > cfg.SecretItemCount {
			t.Errorf("secret room scheduled %d items, cap %d", len(room.ItemData), cfg.SecretItemCount)
		}
	}
	for _, room := range d.RoomsOfKind(gamemap.RoomSuperSecret) {
		if len(room.ItemData) > cfg.SuperSecretItemCount {
			t.Errorf("super-secret room scheduled %d items, cap %d",
				len(room.ItemData), cfg.SuperSecretItemCount)
		}
	}
}
