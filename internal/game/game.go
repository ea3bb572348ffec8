package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"maze-crawler/assets"
	"maze-crawler/internal/gamemap"
	"maze-crawler/internal/generate"
	"maze-crawler/internal/render"
)

// Default dungeon dimensions for interactive play.
const (
	DefaultWidth  = 61
	DefaultHeight = 41
)

// Game is the top-level orchestrator: it owns the screen, the renderer,
// and one Session at a time, and turns key events into session calls.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	session  *Session
	messages []string
	width    int
	height   int
	strategy generate.Strategy
	seed     int64
}

// New creates a Game with its own terminal screen.
func New() (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewWithScreen(screen), nil
}

// NewWithScreen creates a Game on an already initialized screen. The caller
// keeps ownership of the screen's lifecycle; used for SSH sessions where the
// screen wraps the remote tty.
func NewWithScreen(screen tcell.Screen) *Game {
	return &Game{
		screen:   screen,
		width:    DefaultWidth,
		height:   DefaultHeight,
		strategy: generate.StrategyBranching,
		seed:     time.Now().UnixNano(),
	}
}

// SetSize overrides the dungeon dimensions for the next run.
func (g *Game) SetSize(width, height int) {
	g.width, g.height = width, height
}

// SetStrategy overrides the layout strategy for the next run.
func (g *Game) SetStrategy(s generate.Strategy) { g.strategy = s }

// SetSeed fixes the generation seed for the next run.
func (g *Game) SetSeed(seed int64) { g.seed = seed }

// newRun builds a fresh session, advancing the seed until generation
// succeeds. Repair failures are rare; a handful of retries is plenty.
func (g *Game) newRun() error {
	g.messages = nil
	var err error
	for attempt := 0; attempt < 5; attempt++ {
		g.session, err = NewSessionWithStrategy(g.width, g.height, g.seed, g.strategy)
		g.seed++
		if err == nil {
			return nil
		}
		if !errors.Is(err, generate.ErrGenerationFailed) {
			return err
		}
	}
	return err
}

// Run is the main game loop. Supports multiple consecutive runs.
func (g *Game) Run() error {
	defer g.screen.Fini()

	for {
		if err := g.newRun(); err != nil {
			return err
		}
		g.renderer = render.NewRenderer(g.screen)
		g.addMessage("Use hjkl or arrow keys to move. Walk into monsters to attack.")

		for !g.session.Won() && !g.session.GameOver() {
			p := g.session.Player()
			g.renderer.CenterOn(p.X, p.Y)
			g.renderer.DrawFrame(g.session.Grid(), g.session.VisibleCells(), g.sprites())
			g.renderer.DrawHUD(g.stats(), g.messages)

			ev := g.screen.PollEvent()
			switch ev := ev.(type) {
			case *tcell.EventResize:
				g.screen.Sync()
				g.renderer = render.NewRenderer(g.screen)
				continue
			case *tcell.EventKey:
				action := keyToAction(ev)
				if action == ActionQuit {
					return nil
				}
				g.processAction(action)
			case nil:
				// Screen closed underneath us (SSH disconnect).
				return nil
			}
		}

		if !g.showEndScreen() {
			return nil
		}
	}
}

// processAction handles one player action. Walking into a monster attacks
// it instead of moving.
func (g *Game) processAction(action Action) {
	dx, dy := actionToDelta(action)
	if dx == 0 && dy == 0 {
		return
	}

	p := g.session.Player()
	if m := g.session.MonsterAt(p.X+dx, p.Y+dy); m != nil {
		res := g.session.Attack(m)
		if res.Killed {
			g.addMessage("You slay the monster!")
			if room := g.session.CurrentRoom(); room != nil && room.Cleared {
				g.addMessage("The room falls silent. The doors swing open.")
			}
		} else {
			g.addMessage(fmt.Sprintf("You hit for %d; it claws back for %d.", res.Damage, res.Retaliation))
		}
		return
	}

	before := p.Keys
	out := g.session.TryMove(dx, dy)
	switch out.Kind {
	case MoveConsumedKey:
		g.addMessage(fmt.Sprintf("The key turns. (%d left)", before-1))
	case MoveTeleported:
		if room := g.session.CurrentRoom(); room != nil && room.DoorsClosed {
			g.addMessage("The doors slam shut behind you!")
		}
	case MoveBlocked:
		if g.session.Grid().At(p.X+dx, p.Y+dy) == gamemap.CellLockedDoor {
			g.addMessage("The door is locked. You need a key.")
		}
	}
	if g.session.Won() {
		g.addMessage("You reach the exit!")
	}
}

// sprites flattens the session's live entities into draw order: obstacles,
// items, monsters, then the player on top.
func (g *Game) sprites() []render.Sprite {
	var out []render.Sprite
	for _, o := range g.session.Obstacles() {
		out = append(out, render.Sprite{
			X: o.X, Y: o.Y, Glyph: assets.GlyphObstacle,
			Color: tcell.ColorGray, Order: 0,
		})
	}
	for _, it := range g.session.Items() {
		if it.Collected {
			continue
		}
		gl := assets.ItemGlyphs[it.Kind]
		out = append(out, render.Sprite{
			X: it.X, Y: it.Y, Glyph: gl.Rune, Color: gl.Color, Order: 1,
		})
	}
	for _, m := range g.session.Monsters() {
		if !m.Alive {
			continue
		}
		out = append(out, render.Sprite{
			X: m.X, Y: m.Y, Glyph: assets.GlyphMonster,
			Color: tcell.ColorRed, Order: 2,
		})
	}
	p := g.session.Player()
	out = append(out, render.Sprite{
		X: p.X, Y: p.Y, Glyph: assets.GlyphPlayer,
		Color: tcell.ColorWhite, Order: 3,
	})
	return out
}

func (g *Game) stats() render.Stats {
	p := g.session.Player()
	st := render.Stats{
		HP: p.HP, MaxHP: p.MaxHP,
		Attack: p.Attack, Defense: p.Defense,
		Keys: p.Keys, Score: p.Score,
	}
	if room := g.session.CurrentRoom(); room != nil {
		st.RoomName = room.Kind.String()
	}
	return st
}

func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > 50 {
		g.messages = g.messages[len(g.messages)-50:]
	}
}

// showEndScreen renders the run summary and returns true if the player
// wants to try again, false to quit.
func (g *Game) showEndScreen() bool {
	won := g.session.Won()
	p := g.session.Player()

	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	gold := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	gray := tcell.StyleDefault.Foreground(tcell.ColorGray)
	green := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	red := tcell.StyleDefault.Foreground(tcell.ColorRed)

	cleared := 0
	for _, room := range g.session.Rooms() {
		if room.Cleared {
			cleared++
		}
	}

	for {
		g.screen.Clear()
		sw, _ := g.screen.Size()

		sep := func(y int) {
			for x := 0; x < sw; x++ {
				g.screen.SetContent(x, y, '─', nil, gray)
			}
		}
		label := func(y int, l, v string) {
			g.putText(2, y, l, gray)
			g.putText(20, y, v, white)
		}

		y := 1
		sep(y)
		y += 2

		if won {
			g.putText(2, y, "YOU ESCAPE THE DUNGEON", gold)
			badge := "[VICTORY]"
			g.putText(sw-len(badge)-1, y, badge, green)
		} else {
			g.putText(2, y, "THE DUNGEON KEEPS YOU", gold)
			badge := "[DEFEAT]"
			g.putText(sw-len(badge)-1, y, badge, red)
		}
		y += 2

		label(y, "Score:", fmt.Sprintf("%d", p.Score))
		y++
		label(y, "Rooms Cleared:", fmt.Sprintf("%d / %d", cleared, len(g.session.Rooms())))
		y++
		label(y, "Keys Unspent:", fmt.Sprintf("%d", p.Keys))
		y += 2

		sep(y)
		y += 2

		g.putText(2, y, "[R] Try Again", green)
		g.putText(18, y, "[Q] Quit", red)

		g.screen.Show()

		ev := g.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			g.screen.Sync()
			continue
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyRune:
				switch ev.Rune() {
				case 'r', 'R':
					return true
				case 'q', 'Q':
					return false
				}
			case tcell.KeyEscape:
				return false
			}
		case nil:
			return false
		}
	}
}

// putText writes a string to the screen at (x, y), one column per rune.
func (g *Game) putText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		g.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
