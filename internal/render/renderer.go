package render

import (
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"maze-crawler/assets"
	"maze-crawler/internal/gamemap"
)

// Sprite is one drawable entity in world coordinates. Lower Order draws
// first, so higher-order sprites (the player) end up on top.
type Sprite struct {
	X, Y  int
	Glyph rune
	Color tcell.Color
	Order int
}

// Renderer draws a dungeon frame onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	// Reserve bottom 5 rows for the HUD.
	viewH := h - 5
	return &Renderer{
		screen: screen,
		camera: NewCamera(0, 0, w, viewH),
	}
}

// CenterOn recenters the camera on world position (x, y).
func (r *Renderer) CenterOn(x, y int) { r.camera.Center(x, y) }

// WorldToScreen converts world coordinates to screen coordinates.
// visible is false when the position falls outside the viewport.
func (r *Renderer) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	return r.camera.WorldToScreen(wx, wy)
}

// DrawFrame renders the revealed portion of the grid, then the sprites.
// Cells and sprites outside the reveal set stay dark.
func (r *Renderer) DrawFrame(grid *gamemap.Grid, revealed map[gamemap.Position]bool, sprites []Sprite) {
	r.screen.Clear()
	r.drawMap(grid, revealed)
	r.drawSprites(revealed, sprites)
}

func (r *Renderer) drawMap(grid *gamemap.Grid, revealed map[gamemap.Position]bool) {
	bg := tcell.StyleDefault.Background(tcell.ColorBlack)

	for p := range revealed {
		sx, sy, onScreen := r.camera.WorldToScreen(p.X, p.Y)
		if !onScreen {
			continue
		}
		glyph, ok := assets.CellTheme[grid.At(p.X, p.Y)]
		if !ok {
			continue
		}
		r.putGlyph(sx, sy, glyph.Rune, bg.Foreground(glyph.Color))
	}
}

func (r *Renderer) drawSprites(revealed map[gamemap.Position]bool, sprites []Sprite) {
	drawable := make([]Sprite, 0, len(sprites))
	for _, s := range sprites {
		if revealed[gamemap.Position{X: s.X, Y: s.Y}] {
			drawable = append(drawable, s)
		}
	}
	sort.Slice(drawable, func(i, j int) bool {
		return drawable[i].Order < drawable[j].Order
	})

	bg := tcell.StyleDefault.Background(tcell.ColorBlack)
	for _, s := range drawable {
		sx, sy, onScreen := r.camera.WorldToScreen(s.X, s.Y)
		if !onScreen {
			continue
		}
		r.putGlyph(sx, sy, s.Glyph, bg.Foreground(s.Color))
	}
}

// putGlyph draws one rune, padding the second column when the rune renders
// two terminal cells wide.
func (r *Renderer) putGlyph(x, y int, glyph rune, style tcell.Style) {
	r.screen.SetContent(x, y, glyph, nil, style)
	if runewidth.RuneWidth(glyph) == 2 {
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
