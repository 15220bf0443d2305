/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package jeopardy

import "fmt"

// QuestionView shows one question taken from a Board. Releasing over a
// team awards that team the points (primary button) or deducts them
// (secondary button), then hands control back to the board.
type QuestionView struct {
	layout Layout
	board  *Board

	Question Question
	Revealed bool
	Buttons  []*Button
}

func NewQuestionView(l Layout, q Question, board *Board) *QuestionView {
	qv := &QuestionView{
		layout:   l,
		board:    board,
		Question: q,
	}

	qv.Buttons = append(qv.Buttons, newButton("Reveal", ActionReveal, Rect{
		X: l.WindowWidth/2 - l.DefaultButtonWidth/2,
		Y: l.WindowHeight*0.6 - l.DefaultButtonHeight/2,
		W: l.DefaultButtonWidth,
		H: l.DefaultButtonHeight,
	}))

	slots := float64(len(board.Teams) + 1)
	width := (l.WindowWidth - l.BoxPadding*(slots+1)) / slots
	y := l.WindowHeight - l.DefaultButtonHeight - l.BoxPadding

	x := l.BoxPadding
	for i, t := range board.Teams {
		btn := newButton(t.Name, ActionAward, Rect{x, y, width, l.DefaultButtonHeight})
		btn.Index = i
		qv.Buttons = append(qv.Buttons, btn)
		x += width + l.BoxPadding
	}

	qv.Buttons = append(qv.Buttons, newButton("No Score", ActionNoScore, Rect{x, y, width, l.DefaultButtonHeight}))

	return qv
}

func (qv *QuestionView) Draw(c Canvas) {
	l := qv.layout

	c.Clear(l.BackgroundColor)

	c.DrawText(Text{
		Value: fmt.Sprintf("%s for %d", qv.Question.Category, qv.Question.Points),
		X:     l.WindowWidth / 2,
		Y:     l.MessageBoxHeight / 3,
		Size:  l.MessageFontSize,
		Color: l.TitleColor,
	})

	c.DrawText(Text{
		Value: qv.Question.Prompt,
		X:     l.WindowWidth / 2,
		Y:     l.WindowHeight * 0.3,
		Size:  24,
		Width: l.WindowWidth - 2*l.BoxPadding,
		Color: l.MessageColor,
	})

	if qv.Revealed {
		c.DrawText(Text{
			Value: qv.Question.Answer,
			X:     l.WindowWidth / 2,
			Y:     l.WindowHeight * 0.45,
			Size:  24,
			Width: l.WindowWidth - 2*l.BoxPadding,
			Color: l.TitleColor,
		})
	}

	for _, b := range qv.Buttons {
		b.draw(c, l)
	}
}

func (qv *QuestionView) PointerMotion(x, y float64) {
	for _, b := range qv.Buttons {
		b.CheckHovered(x, y)
	}
}

func (qv *QuestionView) PointerRelease(x, y float64, button PointerButton) View {
	btn := hoveredButton(qv.Buttons)
	if btn == nil {
		return nil
	}

	switch btn.Action {
	case ActionReveal:
		qv.Revealed = true
	case ActionAward:
		team := qv.board.Teams[btn.Index]
		if button == PointerSecondary {
			team.Deduct(qv.Question.Points)
		} else {
			team.Award(qv.Question.Points)
		}
		qv.board.UpdateTeamDisplay()

		return qv.board.CheckGameOver()
	case ActionNoScore:
		return qv.board.CheckGameOver()
	}

	return nil
}
