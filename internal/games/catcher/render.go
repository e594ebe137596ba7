package catcher

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/number-catcher/internal/core"
)

// Render layout constants.
const (
	MinScreenW = 40
	MinScreenH = 12

	hudRows = 2 // HUD line plus separator

	ShipRune      = '▲'
	LifeRune      = '●'
	SeparatorRune = '─'
)

// Render draws the current game state to the screen. The logical playfield is
// scaled onto whatever cells remain below the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorDefault)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), core.ColorDefault)
		return
	}

	s := &g.state
	switch s.Mode {
	case ModeRunning:
		g.renderHUD(dst)
		g.renderBubbles(dst)
		g.renderShip(dst)
		if s.Paused {
			g.renderMessage(dst, core.ColorYellow, "PAUSED", "", "Press p to resume")
		}
	case ModeIntro:
		g.renderMessage(dst, core.ColorWhite, g.introLines()...)
	case ModeNextRound:
		g.renderMessage(dst, core.ColorWhite,
			fmt.Sprintf("NEW TARGET: %d", s.CurrentTarget),
			fmt.Sprintf("You have %d seconds", s.RoundAllowedTime),
			"",
			"Press space to start...")
	case ModeOvershot:
		g.renderMessage(dst, core.ColorRed,
			"OVERSHOT!",
			fmt.Sprintf("Target %d, caught %d", s.CurrentTarget, s.CaughtSum()),
			fmt.Sprintf("Lives left: %d", s.LivesRemaining),
			"",
			"Press space to continue...")
	case ModeOutOfTime:
		g.renderMessage(dst, core.ColorRed,
			"OUT OF TIME!",
			fmt.Sprintf("Lives left: %d", s.LivesRemaining),
			"",
			"Press space to continue...")
	case ModeWin:
		g.renderMessage(dst, core.ColorGreen,
			"NOICE!",
			fmt.Sprintf("New score: %d", s.Score),
			fmt.Sprintf("(Time bonus: %d)", s.RoundTimeBonus),
			"",
			"Press space to continue...")
	case ModeDeath:
		g.renderMessage(dst, core.ColorRed,
			"NO MORE LIVES!",
			fmt.Sprintf("Your score: %d", s.Score),
			"",
			"Press space to play again...")
	}
}

func (g *Game) introLines() []string {
	gp := g.cfg.Gameplay
	return []string{
		"NUMBER CATCHER",
		"",
		"Catch bubbles whose numbers add up",
		"exactly to the target.",
		"Go over and you lose a life.",
		fmt.Sprintf("Every %d seconds left is a bonus point.", gp.SecondsPerBonusPoint),
		"",
		"Press space to start...",
	}
}

// renderHUD draws the caught sum, the clock, the lives and the score.
func (g *Game) renderHUD(dst *core.Screen) {
	s := &g.state

	sum := fmt.Sprintf("SUM: %d/%d", s.CaughtSum(), s.CurrentTarget)
	dst.DrawTextColored(1, 0, sum, core.ColorWhite)

	clock := fmt.Sprintf("TIME: %d/%d", s.RoundTimeRemaining, s.RoundAllowedTime)
	x := 1 + utf8.RuneCountInString(sum) + 3
	dst.DrawTextColored(x, 0, clock, timeColor(s.RoundTimeRemaining))

	score := fmt.Sprintf("Score: %d", s.Score)
	scoreX := dst.Width() - utf8.RuneCountInString(score) - 1
	dst.DrawTextColored(scoreX, 0, score, core.ColorBlue)

	lives := strings.Repeat(string(LifeRune), s.LivesRemaining)
	livesX := scoreX - utf8.RuneCountInString(lives) - 2
	dst.DrawTextColored(livesX, 0, lives, core.ColorGreen)

	dst.DrawHLine(0, 1, dst.Width(), SeparatorRune, core.ColorGray)
}

// timeColor goes red for the last five seconds and yellow for the last ten.
func timeColor(remaining int) core.Color {
	switch {
	case remaining <= 5:
		return core.ColorRed
	case remaining <= 10:
		return core.ColorYellow
	default:
		return core.ColorBlue
	}
}

func (g *Game) renderBubbles(dst *core.Screen) {
	for _, b := range g.state.Bubbles {
		label := "(" + strconv.Itoa(b.Number) + ")"
		cx, cy := g.project(dst, b.Position)
		dst.DrawTextColored(cx-utf8.RuneCountInString(label)/2, cy, label, core.ColorAqua)
	}
}

func (g *Game) renderShip(dst *core.Screen) {
	cx, cy := g.project(dst, g.state.Ship.Position)
	dst.SetColored(cx, cy, ShipRune, core.ColorBlue)
}

// project maps a playfield point to a screen cell below the HUD.
func (g *Game) project(dst *core.Screen, p core.Vec2) (int, int) {
	cols := dst.Width()
	rows := dst.Height() - hudRows
	fw := float64(g.cfg.Field.Width)
	fh := float64(g.cfg.Field.Height)

	x := int(p.X / fw * float64(cols-1))
	y := int(p.Y / fh * float64(rows-1))
	return core.Clamp(x, 0, cols-1), hudRows + core.Clamp(y, 0, rows-1)
}

// renderMessage draws lines inside a box centered on the screen.
// The first line takes the given color.
func (g *Game) renderMessage(dst *core.Screen, c core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}
	boxW := min(width+4, dst.Width())
	boxH := min(len(lines)+2, dst.Height())
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2), ' ')
	dst.DrawBox(box, core.ColorGray)

	for i, l := range lines {
		lc := core.ColorDefault
		if i == 0 {
			lc = c
		}
		dst.DrawTextCentered(box.Y+1+i, l, lc)
	}
}
