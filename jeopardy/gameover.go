/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package jeopardy

import "fmt"

// GameOver shows the final standings. Its only way out is a new main menu.
type GameOver struct {
	layout Layout
	menu   *MainMenu

	Rankings []*Team
	Lines    []string
	Buttons  []*Button
}

func NewGameOver(l Layout, teams []*Team, menu *MainMenu) *GameOver {
	g := &GameOver{
		layout:   l,
		menu:     menu,
		Rankings: Standings(teams),
	}

	for _, t := range g.Rankings {
		g.Lines = append(g.Lines, fmt.Sprintf("%s : %d", t.Name, t.Score))
	}

	g.Buttons = []*Button{
		newButton("Main Menu", ActionMainMenu, Rect{
			X: l.BoxPadding,
			Y: l.WindowHeight - l.DefaultButtonHeight - l.BoxPadding,
			W: l.DefaultButtonWidth,
			H: l.DefaultButtonHeight,
		}),
	}

	return g
}

func (g *GameOver) Draw(c Canvas) {
	l := g.layout

	c.Clear(l.BackgroundColor)

	y := 50.0
	for _, line := range g.Lines {
		c.DrawText(Text{
			Value: line,
			X:     l.WindowWidth / 2,
			Y:     y,
			Size:  l.MessageFontSize,
			Color: l.MessageColor,
		})
		y += 50
	}

	for _, b := range g.Buttons {
		b.draw(c, l)
	}
}

func (g *GameOver) PointerMotion(x, y float64) {
	for _, b := range g.Buttons {
		b.CheckHovered(x, y)
	}
}

func (g *GameOver) PointerRelease(x, y float64, _ PointerButton) View {
	if btn := hoveredButton(g.Buttons); btn != nil && btn.Action == ActionMainMenu && g.menu != nil {
		return g.menu.fresh()
	}

	return nil
}
