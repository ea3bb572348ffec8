package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Stats is the player snapshot shown in the status line.
type Stats struct {
	HP, MaxHP int
	Attack    int
	Defense   int
	Keys      int
	Score     int
	RoomName  string // kind of the current room, empty in corridors
}

// DrawHUD renders the status bar and message log at the bottom of the screen.
func (r *Renderer) DrawHUD(st Stats, messages []string) {
	_, screenH := r.screen.Size()
	hudY := screenH - 5

	r.drawHLine(hudY, tcell.ColorGray)

	where := "corridor"
	if st.RoomName != "" {
		where = st.RoomName + " room"
	}
	statusLine := fmt.Sprintf("HP: %d/%d  ATK:%d DEF:%d  Keys:%d  Score:%d  [%s]",
		st.HP, st.MaxHP, st.Attack, st.Defense, st.Keys, st.Score, where)
	r.drawText(0, hudY+1, statusLine, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	// Message log (last 3 messages).
	start := len(messages) - 3
	if start < 0 {
		start = 0
	}
	for i, msg := range messages[start:] {
		r.drawText(0, hudY+2+i, msg, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}

	r.screen.Show()
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col++
	}
}
