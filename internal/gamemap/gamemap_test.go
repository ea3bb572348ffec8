package gamemap

import "testing"

func TestRectContainsHalfOpen(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 5}
	cases := []struct {
		x, y int
		want bool
	}{
		{2, 3, true},   // top-left corner is inside
		{5, 7, true},   // last interior cell
		{6, 3, false},  // Right() is outside
		{2, 8, false},  // Bottom() is outside
		{1, 3, false},  // left of room
		{3, 5, true},   // interior
	}
	for _, c := range cases {
		if got := r.Contains(c.x, c.y); got != c.want {
			t.Errorf("Contains(%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestRectIntersectsAndInflate(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 4, H: 4}
	b := Rect{X: 4, Y: 0, W: 4, H: 4} // touching edges do not overlap
	if a.Intersects(b) {
		t.Error("edge-adjacent rects should not intersect")
	}
	if !a.Inflate(1, 1).Intersects(b) {
		t.Error("inflated rect should overlap its neighbor")
	}
	if !a.Intersects(Rect{X: 3, Y: 3, W: 2, H: 2}) {
		t.Error("overlapping rects should intersect")
	}
}

func TestGridBoundsAndAccessors(t *testing.T) {
	g := NewGrid(10, 6)
	if !g.IsWall(0, 0) {
		t.Error("new grid should be filled with walls")
	}
	if g.At(-1, 3) != CellWall || g.At(3, 99) != CellWall {
		t.Error("out-of-bounds reads should return wall")
	}
	g.Set(4, 2, CellFloor)
	if g.At(4, 2) != CellFloor {
		t.Error("Set/At round trip failed")
	}
	g.Set(-5, -5, CellFloor) // must not panic
	if got := g.Count(CellFloor); got != 1 {
		t.Errorf("Count(CellFloor) = %d, want 1", got)
	}
}

func TestGridCloneIsDeep(t *testing.T) {
	g := NewGrid(4, 4)
	g.Set(1, 1, CellFloor)
	c := g.Clone()
	c.Set(1, 1, CellEnd)
	if g.At(1, 1) != CellFloor {
		t.Error("mutating a clone changed the original")
	}
	if g.String() == c.String() {
		t.Error("expected differing renderings after clone mutation")
	}
}

func TestDungeonRoomAtAndDoorOwnership(t *testing.T) {
	a := &Room{Rect: Rect{X: 1, Y: 1, W: 5, H: 4}, Kind: RoomStart}
	b := &Room{Rect: Rect{X: 7, Y: 1, W: 5, H: 4}, Kind: RoomNormal}
	door := Position{X: 6, Y: 3} // wall column between a and b
	a.Doors = append(a.Doors, door)
	b.Doors = append(b.Doors, door)

	d := &Dungeon{
		Grid:        NewGrid(14, 7),
		Rooms:       []*Room{a, b},
		Doors:       map[Position]DoorState{door: DoorOpen},
		LockedDoors: map[Position]bool{},
	}

	if d.RoomAt(2, 2) != a {
		t.Error("RoomAt should find room a")
	}
	if d.RoomAt(6, 3) != nil {
		t.Error("door cell between rooms belongs to neither rectangle")
	}
	if owners := d.RoomsWithDoor(door); len(owners) != 2 {
		t.Fatalf("door should be owned by both rooms, got %d owners", len(owners))
	}
	if !a.DoorOnBorder(door) || !b.DoorOnBorder(door) {
		t.Error("shared slot door should sit on both rooms' borders")
	}
	if a.DoorOnBorder(Position{X: 12, Y: 3}) {
		t.Error("b's far edge must not read as a door on a's border")
	}
}

func TestRoomKindStringsAreDistinct(t *testing.T) {
	kinds := []RoomKind{RoomStart, RoomNormal, RoomTreasure, RoomShop,
		RoomSecret, RoomSuperSecret, RoomBoss, RoomKey}
	seen := map[string]bool{}
	for _, k := range kinds {
		s := k.String()
		if s == "unknown" || seen[s] {
			t.Errorf("kind %d has bad or duplicate name %q", k, s)
		}
		seen[s] = true
	}
}
