package game

import (
	"math/rand"

	"maze-crawler/assets"
	"maze-crawler/internal/generate"
)

// dungeonConfig builds a generate.Config from the standard balance tables.
func dungeonConfig(width, height int, strategy generate.Strategy, rng *rand.Rand) *generate.Config {
	return &generate.Config{
		Width:    width,
		Height:   height,
		Strategy: strategy,

		MainRoomsMin: 6, MainRoomsMax: 10,
		TreasureRoomsMin: 2, TreasureRoomsMax: 4,
		KeyRoomsMin: 2, KeyRoomsMax: 3,
		MainRoomSizeMin: 8, MainRoomSizeMax: 14,
		SideRoomSizeMin: 5, SideRoomSizeMax: 9,

		SlotCols: 5, SlotRows: 4,
		ExtraRoomsMin: 10, ExtraRoomsMax: 16,
		BranchChance: 0.4,

		PlaceAttempts: 50,

		ItemTables:          assets.ItemTables,
		ItemDensities:       assets.ItemDensities,
		MonsterDensities:    assets.MonsterDensities,
		MonsterDifficulty:   assets.MonsterDifficulty,
		CorridorItemTable:   assets.CorridorItemTable,
		CorridorItemDensity: 20,
		SecretItemCount:     2,
		SuperSecretItemCount: 3,
		ObstaclesMin: 2, ObstaclesMax: 5,

		Rand: rng,
	}
}
