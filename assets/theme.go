package assets

import (
	"github.com/gdamore/tcell/v2"

	"maze-crawler/internal/gamemap"
)

// CellGlyph is the terminal rendering of one grid cell.
type CellGlyph struct {
	Rune  rune
	Color tcell.Color
}

// CellTheme maps the grid's wire symbols to display glyphs. The wall and
// floor runes differ from the wire format purely for legibility; state
// code never reads these.
var CellTheme = map[gamemap.Cell]CellGlyph{
	gamemap.CellWall:       {Rune: '█', Color: tcell.ColorGray},
	gamemap.CellFloor:      {Rune: '·', Color: tcell.ColorDarkSlateGray},
	gamemap.CellStart:      {Rune: 'S', Color: tcell.ColorGreen},
	gamemap.CellEnd:        {Rune: 'E', Color: tcell.ColorGold},
	gamemap.CellLockedDoor: {Rune: 'D', Color: tcell.ColorOrange},
	gamemap.CellOpenDoor:   {Rune: 'O', Color: tcell.ColorSaddleBrown},
	gamemap.CellClosedDoor: {Rune: 'R', Color: tcell.ColorRed},
}

// Entity glyphs.
const (
	GlyphPlayer   = '@'
	GlyphMonster  = 'm'
	GlyphObstacle = 'o'
)

// ItemGlyphs maps item kinds to display runes.
var ItemGlyphs = map[gamemap.ItemKind]CellGlyph{
	gamemap.ItemTreasure:     {Rune: '$', Color: tcell.ColorGold},
	gamemap.ItemHealthPotion: {Rune: '+', Color: tcell.ColorRed},
	gamemap.ItemSword:        {Rune: '/', Color: tcell.ColorSilver},
	gamemap.ItemShield:       {Rune: ']', Color: tcell.ColorSilver},
	gamemap.ItemKey:          {Rune: 'k', Color: tcell.ColorYellow},
}
