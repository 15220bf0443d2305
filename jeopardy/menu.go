/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package jeopardy

import (
	"fmt"
	"path/filepath"
)

// Options configure a game session.
type Options struct {
	Layout       Layout
	QuestionFile string
	Teams        int
	AllowQuit    bool
}

// MainMenu picks the number of teams and starts a board.
type MainMenu struct {
	opts    Options
	Teams   int
	Err     error
	Buttons []*Button

	quit bool
}

func NewMainMenu(opts Options) *MainMenu {
	l := opts.Layout

	m := &MainMenu{
		opts:  opts,
		Teams: l.ClampTeams(opts.Teams),
	}

	cx := l.WindowWidth / 2
	small := l.DefaultButtonHeight / 1.5
	selectorY := l.WindowHeight/2 - small/2

	m.Buttons = []*Button{
		newButton("-", ActionFewerTeams, Rect{cx - 100 - small, selectorY, small, small}),
		newButton("+", ActionMoreTeams, Rect{cx + 100, selectorY, small, small}),
		newButton("Start", ActionStart, Rect{
			X: cx - l.DefaultButtonWidth/2,
			Y: selectorY + small + 2*l.BoxPadding,
			W: l.DefaultButtonWidth,
			H: l.DefaultButtonHeight,
		}),
	}

	if opts.AllowQuit {
		m.Buttons = append(m.Buttons, newButton("Quit", ActionQuit, Rect{
			X: l.WindowWidth - l.QuitButtonWidth - l.BoxPadding,
			Y: l.BoxPadding,
			W: l.QuitButtonWidth,
			H: l.QuitButtonHeight,
		}))
	}

	return m
}

// fresh returns a new menu for the next game, keeping the team count.
func (m *MainMenu) fresh() *MainMenu {
	opts := m.opts
	opts.Teams = m.Teams

	return NewMainMenu(opts)
}

func (m *MainMenu) Draw(c Canvas) {
	l := m.opts.Layout

	c.Clear(l.BackgroundColor)

	c.DrawText(Text{
		Value: l.Title,
		X:     l.WindowWidth / 2,
		Y:     l.MessageBoxHeight / 2,
		Size:  48,
		Color: l.TitleColor,
	})

	c.DrawText(Text{
		Value: filepath.Base(m.opts.QuestionFile),
		X:     l.WindowWidth / 2,
		Y:     l.MessageBoxHeight,
		Size:  l.TeamDisplayFontSize,
		Color: l.MessageColor,
	})

	c.DrawText(Text{
		Value: fmt.Sprintf("Teams: %d", m.Teams),
		X:     l.WindowWidth / 2,
		Y:     l.WindowHeight / 2,
		Size:  l.MessageFontSize,
		Color: l.MessageColor,
	})

	for _, b := range m.Buttons {
		b.draw(c, l)
	}

	if m.Err != nil {
		c.DrawText(Text{
			Value: m.Err.Error(),
			X:     l.WindowWidth / 2,
			Y:     l.WindowHeight - l.TeamDisplayHeight,
			Size:  l.TeamDisplayFontSize,
			Width: l.WindowWidth - 2*l.BoxPadding,
			Color: l.ErrorColor,
		})
	}
}

func (m *MainMenu) PointerMotion(x, y float64) {
	for _, b := range m.Buttons {
		b.CheckHovered(x, y)
	}
}

func (m *MainMenu) PointerRelease(x, y float64, _ PointerButton) View {
	btn := hoveredButton(m.Buttons)
	if btn == nil {
		return nil
	}

	switch btn.Action {
	case ActionFewerTeams:
		m.Teams = m.opts.Layout.ClampTeams(m.Teams - 1)
	case ActionMoreTeams:
		m.Teams = m.opts.Layout.ClampTeams(m.Teams + 1)
	case ActionQuit:
		m.quit = true
	case ActionStart:
		board, err := NewBoard(m.opts.Layout, m.opts.QuestionFile, m.Teams, m)
		if err != nil {
			m.Err = err

			return nil
		}

		m.Err = nil

		return board
	}

	return nil
}
