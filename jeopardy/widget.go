/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package jeopardy

import "strconv"

// Rect is a screen rectangle with its top-left corner at (X, Y).
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies strictly inside r.
func (r Rect) Contains(x, y float64) bool {
	return x > r.X && x < r.X+r.W && y > r.Y && y < r.Y+r.H
}

func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Box is a clickable board tile holding one unanswered question.
type Box struct {
	Rect
	Question Question
	Hovered  bool
}

func newBox(q Question, r Rect) *Box {
	return &Box{Rect: r, Question: q}
}

func (b *Box) CheckHovered(x, y float64) {
	b.Hovered = b.Contains(x, y)
}

func (b *Box) Label() string {
	return strconv.Itoa(b.Question.Points)
}

func (b *Box) draw(c Canvas, l Layout) {
	fill := l.BoxColor
	if b.Hovered {
		fill = l.BoxHoverColor
	}

	c.FillRect(b.Rect, fill)
	c.DrawText(Text{
		Value: b.Label(),
		X:     b.CenterX(),
		Y:     b.CenterY(),
		Size:  min(b.H/2, 30),
		Color: l.BoxTextColor,
	})
}

// Action identifies what a Button does when released over.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionMainMenu
	ActionStart
	ActionFewerTeams
	ActionMoreTeams
	ActionReveal
	ActionAward
	ActionNoScore
)

type Button struct {
	Rect
	Label   string
	Action  Action
	Index   int // team index for ActionAward
	Hovered bool
}

func newButton(label string, action Action, r Rect) *Button {
	return &Button{Rect: r, Label: label, Action: action}
}

func (b *Button) CheckHovered(x, y float64) {
	b.Hovered = b.Contains(x, y)
}

func (b *Button) draw(c Canvas, l Layout) {
	fill := l.ButtonColor
	if b.Hovered {
		fill = l.ButtonHoverColor
	}

	c.FillRect(b.Rect, fill)
	c.DrawText(Text{
		Value: b.Label,
		X:     b.CenterX(),
		Y:     b.CenterY(),
		Size:  min(b.H/2.5, 18),
		Color: l.ButtonTextColor,
	})
}

// hoveredButton returns the first hovered button, or nil.
func hoveredButton(buttons []*Button) *Button {
	for _, b := range buttons {
		if b.Hovered {
			return b
		}
	}

	return nil
}
