package game

import (
	"math"
	"math/rand"

	"maze-crawler/internal/gamemap"
	"maze-crawler/internal/generate"
)

const (
	// A monster materializing closer than this (Euclidean) to the player
	// is skipped so rooms never ambush-spawn on top of the actor.
	minSpawnDistance = 4.0

	playerMaxHP   = 20
	playerAttack  = 2
	monsterAttack = 2
)

// Session owns one dungeon's gameplay state: the generated Dungeon value,
// the live entity collections, and the player's visibility set. External
// renderer/input code reads the accessors and mutates only through TryMove,
// Attack, OnPositionChanged, and OnMonsterKilled.
type Session struct {
	dungeon   *gamemap.Dungeon
	player    Player
	monsters  []*Monster
	items     []*Item
	obstacles []*Obstacle

	visible     map[gamemap.Position]bool
	currentRoom *gamemap.Room
	prev        gamemap.Position

	won      bool
	gameOver bool
}

// NewSession generates a dungeon with the slot-grid branching layout and
// places the player in the start room.
func NewSession(width, height int, seed int64) (*Session, error) {
	return NewSessionWithStrategy(width, height, seed, generate.StrategyBranching)
}

// NewSessionWithStrategy generates a dungeon with an explicit layout
// strategy. Returns generate.ErrGenerationFailed when the layout cannot be
// repaired into a connected dungeon; retry with another seed.
func NewSessionWithStrategy(width, height int, seed int64, strategy generate.Strategy) (*Session, error) {
	rng := rand.New(rand.NewSource(seed))
	d, err := generate.Generate(dungeonConfig(width, height, strategy, rng))
	if err != nil {
		return nil, err
	}

	s := &Session{
		dungeon: d,
		player: Player{
			X: d.Start.X, Y: d.Start.Y,
			HP: playerMaxHP, MaxHP: playerMaxHP,
			Attack: playerAttack,
		},
		visible: make(map[gamemap.Position]bool),
		prev:    d.Start,
	}
	// Corridor items are live from the outset.
	for _, is := range d.CorridorItems {
		s.items = append(s.items, &Item{X: is.Pos.X, Y: is.Pos.Y, Kind: is.Kind, Value: is.Value})
	}
	// Entering the start position reveals the start room and materializes
	// its (monster-free) content.
	s.OnPositionChanged(d.Start)
	return s, nil
}

// OnPositionChanged moves the player to pos and runs the per-move pipeline:
// room entry (materialization + entry-door tracking), door recompute,
// visibility update, item pickup, and the win check.
func (s *Session) OnPositionChanged(pos gamemap.Position) {
	if !s.dungeon.Grid.InBounds(pos.X, pos.Y) {
		return
	}
	s.player.X, s.player.Y = pos.X, pos.Y

	room := s.dungeon.RoomAt(pos.X, pos.Y)
	if room != nil {
		if room != s.currentRoom && !room.Contains(s.prev.X, s.prev.Y) {
			s.trackEntryDoor(room)
		}
		s.currentRoom = room
		if !room.Visited {
			s.materializeRoom(room)
		}
		s.recomputeDoors()
	} else {
		s.currentRoom = nil
	}

	s.updateVisibility(pos, room)
	s.collectItemAt(pos)

	if pos == s.dungeon.End {
		s.won = true
		s.player.Score += 100
	}
	s.prev = pos
}

// trackEntryDoor remembers which door the player came through: the door on
// the room's list nearest to the previous position, if adjacent to it.
func (s *Session) trackEntryDoor(room *gamemap.Room) {
	bestDist := math.MaxInt
	var best *gamemap.Position
	for i := range room.Doors {
		p := room.Doors[i]
		d := absInt(p.X-s.prev.X) + absInt(p.Y-s.prev.Y)
		if d < bestDist {
			bestDist = d
			best = &room.Doors[i]
		}
	}
	if best != nil && bestDist <= 1 {
		entry := *best
		room.EntryDoor = &entry
	}
}

// materializeRoom performs the Unvisited -> Visited transition exactly
// once: the room's deferred spawn tables become live entities.
func (s *Session) materializeRoom(room *gamemap.Room) {
	room.Visited = true

	for _, ms := range room.MonsterData {
		dx := float64(ms.Pos.X - s.player.X)
		dy := float64(ms.Pos.Y - s.player.Y)
		if math.Sqrt(dx*dx+dy*dy) < minSpawnDistance {
			continue
		}
		s.monsters = append(s.monsters, &Monster{
			X: ms.Pos.X, Y: ms.Pos.Y,
			HP:        ms.Difficulty,
			Alive:     true,
			SpawnRoom: room,
		})
	}
	for _, os := range room.ObstacleData {
		s.obstacles = append(s.obstacles, &Obstacle{X: os.Pos.X, Y: os.Pos.Y, Size: os.Size})
	}
	for _, is := range room.ItemData {
		s.items = append(s.items, &Item{X: is.Pos.X, Y: is.Pos.Y, Kind: is.Kind, Value: is.Value})
	}
}

// collectItemAt picks up any uncollected item under the player.
func (s *Session) collectItemAt(pos gamemap.Position) {
	for _, it := range s.items {
		if it.Collected || it.X != pos.X || it.Y != pos.Y {
			continue
		}
		it.Collected = true
		switch it.Kind {
		case gamemap.ItemTreasure:
			s.player.Score += it.Value
		case gamemap.ItemHealthPotion:
			s.player.HP += it.Value
			if s.player.HP > s.player.MaxHP {
				s.player.HP = s.player.MaxHP
			}
		case gamemap.ItemSword:
			s.player.Attack += it.Value
		case gamemap.ItemShield:
			s.player.Defense += it.Value
		case gamemap.ItemKey:
			s.player.Keys += it.Value
		}
	}
}

// MonsterAt returns the live monster at (x, y), or nil.
func (s *Session) MonsterAt(x, y int) *Monster {
	for _, m := range s.monsters {
		if m.Alive && m.X == x && m.Y == y {
			return m
		}
	}
	return nil
}

func (s *Session) obstacleAt(x, y int) *Obstacle {
	for _, o := range s.obstacles {
		if o.X == x && o.Y == y {
			return o
		}
	}
	return nil
}

// Accessors. All returned state is read-only by contract: callers mutate
// the session only through the entry points above.

func (s *Session) Grid() *gamemap.Grid        { return s.dungeon.Grid }
func (s *Session) Rooms() []*gamemap.Room     { return s.dungeon.Rooms }
func (s *Session) Dungeon() *gamemap.Dungeon  { return s.dungeon }
func (s *Session) Player() *Player            { return &s.player }
func (s *Session) Monsters() []*Monster       { return s.monsters }
func (s *Session) Items() []*Item             { return s.items }
func (s *Session) Obstacles() []*Obstacle     { return s.obstacles }
func (s *Session) CurrentRoom() *gamemap.Room { return s.currentRoom }
func (s *Session) Won() bool                  { return s.won }
func (s *Session) GameOver() bool             { return s.gameOver }

// VisibleCells returns the player's current reveal set. Read-only.
func (s *Session) VisibleCells() map[gamemap.Position]bool { return s.visible }

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
