package assets

import (
	"maze-crawler/internal/gamemap"
	"maze-crawler/internal/generate"
)

// Spawn balance: treasure areas are dangerous but rewarding, the main path
// stays manageable, corridors carry only scraps.

// ItemTables maps each room kind to its weighted loot table.
var ItemTables = map[gamemap.RoomKind][]generate.ItemWeight{
	gamemap.RoomNormal: {
		{Kind: gamemap.ItemTreasure, Weight: 3, MinValue: 20, MaxValue: 60},
		{Kind: gamemap.ItemHealthPotion, Weight: 3, MinValue: 20, MaxValue: 40},
		{Kind: gamemap.ItemSword, Weight: 1, MinValue: 1, MaxValue: 2},
		{Kind: gamemap.ItemShield, Weight: 1, MinValue: 1, MaxValue: 2},
	},
	gamemap.RoomStart: {
		{Kind: gamemap.ItemHealthPotion, Weight: 1, MinValue: 20, MaxValue: 40},
	},
	gamemap.RoomBoss: {
		{Kind: gamemap.ItemTreasure, Weight: 2, MinValue: 50, MaxValue: 120},
		{Kind: gamemap.ItemHealthPotion, Weight: 1, MinValue: 30, MaxValue: 60},
	},
	gamemap.RoomTreasure: {
		{Kind: gamemap.ItemTreasure, Weight: 5, MinValue: 100, MaxValue: 300},
		{Kind: gamemap.ItemSword, Weight: 3, MinValue: 3, MaxValue: 6},
		{Kind: gamemap.ItemShield, Weight: 2, MinValue: 3, MaxValue: 5},
		{Kind: gamemap.ItemHealthPotion, Weight: 2, MinValue: 40, MaxValue: 80},
	},
	gamemap.RoomShop: {
		{Kind: gamemap.ItemHealthPotion, Weight: 2, MinValue: 30, MaxValue: 60},
		{Kind: gamemap.ItemTreasure, Weight: 1, MinValue: 30, MaxValue: 80},
	},
	gamemap.RoomSecret: {
		{Kind: gamemap.ItemTreasure, Weight: 3, MinValue: 50, MaxValue: 150},
		{Kind: gamemap.ItemSword, Weight: 2, MinValue: 2, MaxValue: 4},
		{Kind: gamemap.ItemShield, Weight: 2, MinValue: 2, MaxValue: 4},
	},
	gamemap.RoomSuperSecret: {
		{Kind: gamemap.ItemTreasure, Weight: 4, MinValue: 100, MaxValue: 300},
		{Kind: gamemap.ItemSword, Weight: 3, MinValue: 4, MaxValue: 7},
		{Kind: gamemap.ItemShield, Weight: 3, MinValue: 4, MaxValue: 6},
		{Kind: gamemap.ItemHealthPotion, Weight: 2, MinValue: 50, MaxValue: 100},
	},
}

// ItemDensities is "one item per N interior floor cells".
var ItemDensities = map[gamemap.RoomKind]int{
	gamemap.RoomNormal:   8,
	gamemap.RoomStart:    8,
	gamemap.RoomBoss:     8,
	gamemap.RoomTreasure: 6,
	gamemap.RoomShop:     10,
}

// MonsterDensities is "one monster per N interior floor cells". Kinds
// absent here never spawn monsters.
var MonsterDensities = map[gamemap.RoomKind]int{
	gamemap.RoomNormal:   12,
	gamemap.RoomBoss:     8,
	gamemap.RoomTreasure: 8,
}

// MonsterDifficulty is the hit-point range rolled per monster.
var MonsterDifficulty = map[gamemap.RoomKind]generate.Difficulty{
	gamemap.RoomNormal:   {Min: 2, Max: 4},
	gamemap.RoomBoss:     {Min: 4, Max: 6},
	gamemap.RoomTreasure: {Min: 4, Max: 6},
}

// CorridorItemTable holds the sparse pickups scattered between rooms.
var CorridorItemTable = []generate.ItemWeight{
	{Kind: gamemap.ItemTreasure, Weight: 2, MinValue: 5, MaxValue: 20},
	{Kind: gamemap.ItemHealthPotion, Weight: 1, MinValue: 10, MaxValue: 25},
}
