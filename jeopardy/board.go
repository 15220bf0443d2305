/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package jeopardy

import (
	"fmt"
	"math"
	"slices"
)

const selectPrompt = "Please select a question..."

// Board lays out one column of question boxes per category and owns the
// teams for the length of a game.
type Board struct {
	layout Layout
	menu   *MainMenu

	Teams          []*Team
	CategoryLabels []Text
	Boxes          []*Box
	Buttons        []*Button
	TeamDisplay    string
}

// NewBoard creates numTeams teams and sets up the boxes from the question
// file at path. numTeams is clamped to the layout's bounds.
func NewBoard(l Layout, path string, numTeams int, menu *MainMenu) (*Board, error) {
	b := newBoard(l, numTeams, menu)

	if err := b.SetupBoxes(path); err != nil {
		return nil, err
	}

	return b, nil
}

// NewBoardFromSet is NewBoard for content that has already been read.
func NewBoardFromSet(l Layout, qs QuestionSet, numTeams int, menu *MainMenu) *Board {
	b := newBoard(l, numTeams, menu)
	b.layoutBoxes(qs)

	return b
}

func newBoard(l Layout, numTeams int, menu *MainMenu) *Board {
	numTeams = l.ClampTeams(numTeams)

	b := &Board{
		layout: l,
		menu:   menu,
		Teams:  make([]*Team, 0, numTeams),
	}

	for i := 0; i < numTeams; i++ {
		b.Teams = append(b.Teams, NewTeam(fmt.Sprintf("Team %d", i+1), l.MaxTeamNameChars))
	}

	b.Buttons = []*Button{
		newButton("Quit", ActionQuit, Rect{
			X: l.WindowWidth - l.QuitButtonWidth - l.BoxPadding,
			Y: l.BoxPadding,
			W: l.QuitButtonWidth,
			H: l.QuitButtonHeight,
		}),
	}

	b.UpdateTeamDisplay()

	return b
}

// SetupBoxes reads the question file at path and replaces the board's
// category labels and boxes with its content.
func (b *Board) SetupBoxes(path string) error {
	qs, err := LoadQuestionSet(path)
	if err != nil {
		return err
	}

	width, height := boxSize(b.layout, len(qs.Categories), qs.NumQuestions())
	if width <= 0 {
		return &InvalidQuestionFileError{
			Directive: DirectiveNumCategories,
			Message:   fmt.Sprintf("%d categories do not fit across a %g wide board", len(qs.Categories), b.layout.WindowWidth),
		}
	}
	if height <= 0 {
		return &InvalidQuestionFileError{
			Directive: DirectiveNumQuestions,
			Message:   fmt.Sprintf("%d questions per category do not fit on a %g high board", qs.NumQuestions(), b.layout.WindowHeight),
		}
	}

	b.layoutBoxes(qs)

	return nil
}

// boxSize returns the width and height of one box when numCategories
// columns of numQuestions boxes tile the board.
func boxSize(l Layout, numCategories, numQuestions int) (float64, float64) {
	c, q := float64(numCategories), float64(numQuestions)

	width := (l.WindowWidth - l.BoxPadding*(c+1)) / c
	height := (l.WindowHeight - l.MessageBoxHeight - l.TeamDisplayHeight -
		(l.BoxPadding*q + 2)) / (q + 0.5)

	return width, height
}

func (b *Board) layoutBoxes(qs QuestionSet) {
	l := b.layout

	boxWidth, boxHeight := boxSize(l, len(qs.Categories), qs.NumQuestions())
	categoryHeight := boxHeight / 2
	categoryFontSize := math.Floor(boxWidth / 15)

	top := l.MessageBoxHeight + categoryHeight

	b.CategoryLabels = make([]Text, 0, len(qs.Categories))
	b.Boxes = make([]*Box, 0, len(qs.Categories)*qs.NumQuestions())

	x := l.BoxPadding
	for _, category := range qs.Categories {
		b.CategoryLabels = append(b.CategoryLabels, Text{
			Value: category.Title,
			X:     x + boxWidth/2,
			Y:     l.MessageBoxHeight + categoryHeight/2,
			Size:  categoryFontSize,
			Width: boxWidth,
			Color: l.CategoryColor,
		})

		y := top
		for _, q := range category.Questions {
			b.Boxes = append(b.Boxes, newBox(q, Rect{x, y, boxWidth, boxHeight}))
			y += boxHeight + l.BoxPadding
		}

		x += boxWidth + l.BoxPadding
	}
}

// UpdateTeamDisplay rebuilds the score line. Call it after any score change.
func (b *Board) UpdateTeamDisplay() {
	b.TeamDisplay = teamSummary(b.Teams)
}

// CheckGameOver returns a GameOver view once every box has been answered,
// and the board itself until then.
func (b *Board) CheckGameOver() View {
	if len(b.Boxes) == 0 {
		return NewGameOver(b.layout, b.Teams, b.menu)
	}

	return b
}

func (b *Board) PointerMotion(x, y float64) {
	for _, box := range b.Boxes {
		box.CheckHovered(x, y)
	}

	for _, btn := range b.Buttons {
		btn.CheckHovered(x, y)
	}
}

func (b *Board) PointerRelease(x, y float64, _ PointerButton) View {
	if btn := hoveredButton(b.Buttons); btn != nil && btn.Action == ActionQuit {
		return menuView(b.menu)
	}

	for i, box := range b.Boxes {
		if box.Hovered {
			b.Boxes = slices.Delete(b.Boxes, i, i+1)

			return b.askQuestion(box.Question)
		}
	}

	return nil
}

// menuView keeps a nil menu from turning into a non-nil View.
func menuView(m *MainMenu) View {
	if m == nil {
		return nil
	}

	return m
}

func (b *Board) askQuestion(q Question) View {
	return NewQuestionView(b.layout, q, b)
}

func (b *Board) Draw(c Canvas) {
	l := b.layout

	c.Clear(l.BackgroundColor)

	c.DrawText(Text{
		Value: selectPrompt,
		X:     l.WindowWidth / 2,
		Y:     l.MessageBoxHeight / 2,
		Size:  l.MessageFontSize,
		Color: l.MessageColor,
	})

	for _, label := range b.CategoryLabels {
		c.DrawText(label)
	}

	for _, box := range b.Boxes {
		box.draw(c, l)
	}

	for _, btn := range b.Buttons {
		btn.draw(c, l)
	}

	c.DrawText(Text{
		Value: b.TeamDisplay,
		X:     l.WindowWidth / 2,
		Y:     l.WindowHeight - l.TeamDisplayHeight/2,
		Size:  l.TeamDisplayFontSize,
		Color: l.TeamDisplayColor,
	})
}
