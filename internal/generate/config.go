package generate

import (
	"math/rand"

	"maze-crawler/internal/gamemap"
)

// Strategy selects the layout algorithm used for one dungeon.
type Strategy uint8

const (
	// StrategyLinear places rooms along a fuzzed diagonal and connects
	// them with L-shaped corridors.
	StrategyLinear Strategy = iota
	// StrategyBranching grows rooms over a slot grid and joins adjacent
	// slots with single-cell doors (no corridors).
	StrategyBranching
)

// ItemWeight is one entry of a weighted item table: the kind, its relative
// pick weight, and the inclusive value range rolled for it.
type ItemWeight struct {
	Kind     gamemap.ItemKind
	Weight   int
	MinValue int
	MaxValue int
}

// Difficulty is an inclusive [Min, Max] range for monster hit points.
type Difficulty struct {
	Min, Max int
}

// Config drives generation of one dungeon. All randomness flows through
// Rand so a seeded generator reproduces the dungeon exactly.
type Config struct {
	Width, Height int
	Strategy      Strategy

	// Linear strategy.
	MainRoomsMin, MainRoomsMax         int
	TreasureRoomsMin, TreasureRoomsMax int
	KeyRoomsMin, KeyRoomsMax           int
	MainRoomSizeMin, MainRoomSizeMax   int
	SideRoomSizeMin, SideRoomSizeMax   int

	// Branching strategy. Slot grid dimensions are in room slots; the
	// concrete room size per slot is derived from Width/Height.
	SlotCols, SlotRows         int
	ExtraRoomsMin, ExtraRoomsMax int
	BranchChance               float64

	// PlaceAttempts caps retries for one room placement before the room
	// is skipped. Generation never fails because of placement.
	PlaceAttempts int

	// Content scheduling. Densities are "one spawn per N floor cells".
	ItemTables        map[gamemap.RoomKind][]ItemWeight
	ItemDensities     map[gamemap.RoomKind]int
	MonsterDensities  map[gamemap.RoomKind]int
	MonsterDifficulty map[gamemap.RoomKind]Difficulty
	CorridorItemTable []ItemWeight
	CorridorItemDensity int
	SecretItemCount      int
	SuperSecretItemCount int
	ObstaclesMin, ObstaclesMax int

	Rand *rand.Rand
}

// randRange returns a uniform value in [lo, hi]. Degenerate ranges collapse
// to lo.
func randRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// weightedPick picks one entry from a weighted table. The table must be
// non-empty.
func weightedPick(rng *rand.Rand, table []ItemWeight) ItemWeight {
	total := 0
	for _, e := range table {
		total += e.Weight
	}
	if total <= 0 {
		return table[0]
	}
	roll := rng.Intn(total)
	for _, e := range table {
		roll -= e.Weight
		if roll < 0 {
			return e
		}
	}
	return table[len(table)-1]
}
