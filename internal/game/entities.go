package game

import "maze-crawler/internal/gamemap"

// Player is the single controllable actor.
type Player struct {
	X, Y    int
	HP      int
	MaxHP   int
	Attack  int
	Defense int
	Keys    int
	Score   int
}

// Monster is a live enemy materialized from a room's deferred spawn table.
// SpawnRoom is a back-reference for containment checks, not ownership.
type Monster struct {
	X, Y      int
	HP        int
	Alive     bool
	SpawnRoom *gamemap.Room
}

// Item is a live pickup on the floor.
type Item struct {
	X, Y      int
	Kind      gamemap.ItemKind
	Value     int
	Collected bool
}

// Obstacle is an impassable prop inside a room.
type Obstacle struct {
	X, Y int
	Size gamemap.ObstacleSize
}
