package jeopardy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionViewAwardsOnlySelectedTeam(t *testing.T) {
	b := NewBoardFromSet(DefaultLayout(), placeholderSet(t, 2, 3), 3, nil)
	box := b.Boxes[2]
	require.Equal(t, 300, box.Question.Points)

	qv, ok := click(b, box.CenterX(), box.CenterY(), PointerPrimary).(*QuestionView)
	require.True(t, ok)

	next := clickButton(t, qv, qv.Buttons, ActionAward, 1)
	assert.Same(t, b, next)

	assert.Equal(t, 0, b.Teams[0].Score)
	assert.Equal(t, 300, b.Teams[1].Score)
	assert.Equal(t, 0, b.Teams[2].Score)
	assert.Contains(t, b.TeamDisplay, "Team 2: 300")
}

func TestQuestionViewSecondaryDeducts(t *testing.T) {
	b := NewBoardFromSet(DefaultLayout(), placeholderSet(t, 1, 2), 2, nil)
	box := b.Boxes[1]

	qv := click(b, box.CenterX(), box.CenterY(), PointerPrimary).(*QuestionView)

	for _, btn := range qv.Buttons {
		if btn.Action == ActionAward && btn.Index == 0 {
			click(qv, btn.CenterX(), btn.CenterY(), PointerSecondary)
		}
	}

	assert.Equal(t, -200, b.Teams[0].Score)
	assert.Equal(t, 0, b.Teams[1].Score)
}

func TestQuestionViewReveal(t *testing.T) {
	b := NewBoardFromSet(DefaultLayout(), placeholderSet(t, 1, 1), 2, nil)
	qv := NewQuestionView(DefaultLayout(), b.Boxes[0].Question, b)

	var before Recorder
	qv.Draw(&before)
	assert.NotContains(t, before.Texts(), "Answer for question 1")

	assert.Nil(t, clickButton(t, qv, qv.Buttons, ActionReveal, 0))
	assert.True(t, qv.Revealed)

	var after Recorder
	qv.Draw(&after)
	assert.Contains(t, after.Texts(), "Answer for question 1")
}

func TestGameOverStableRanking(t *testing.T) {
	teams := []*Team{
		{Name: "A", Score: 300},
		{Name: "B", Score: 500},
		{Name: "C", Score: 300},
		{Name: "D", Score: 100},
	}

	g := NewGameOver(DefaultLayout(), teams, nil)

	assert.Equal(t, []string{"B : 500", "A : 300", "C : 300", "D : 100"}, g.Lines)
	assert.Equal(t, "A", teams[0].Name, "the board's team order is left alone")
}

func TestGameOverReturnsToMenu(t *testing.T) {
	menu := NewMainMenu(Options{Layout: DefaultLayout(), Teams: 2})
	menu.Teams = 4
	menu.Err = errors.New("stale error")
	g := NewGameOver(DefaultLayout(), []*Team{{Name: "A"}}, menu)

	assert.Nil(t, click(g, 1, 1, PointerPrimary))

	next, ok := clickButton(t, g, g.Buttons, ActionMainMenu, 0).(*MainMenu)
	require.True(t, ok)
	assert.NotSame(t, menu, next)
	assert.Equal(t, 4, next.Teams)
	assert.NoError(t, next.Err)
}

func TestNewTeamTruncatesName(t *testing.T) {
	assert.Equal(t, "Supercalif", NewTeam("Supercalifragilistic", 10).Name)
	assert.Equal(t, "Short", NewTeam("Short", 10).Name)
}

func TestMainMenuTeamSelectorBounds(t *testing.T) {
	l := DefaultLayout()
	m := NewMainMenu(Options{Layout: l, Teams: 3})

	for i := 0; i < 10; i++ {
		clickButton(t, m, m.Buttons, ActionMoreTeams, 0)
	}
	assert.Equal(t, l.MaxNumTeams, m.Teams)

	for i := 0; i < 10; i++ {
		clickButton(t, m, m.Buttons, ActionFewerTeams, 0)
	}
	assert.Equal(t, l.MinNumTeams, m.Teams)
}

func TestMainMenuStartWithBadFileStays(t *testing.T) {
	path := writeQuestionFile(t, "NUM_QUESTIONS_PER_CATEGORY=5\n")
	m := NewMainMenu(Options{Layout: DefaultLayout(), QuestionFile: path, Teams: 2})

	assert.Nil(t, clickButton(t, m, m.Buttons, ActionStart, 0))

	var qerr *InvalidQuestionFileError
	require.ErrorAs(t, m.Err, &qerr)
	assert.Equal(t, DirectiveNumCategories, qerr.Directive)

	var rec Recorder
	m.Draw(&rec)
	assert.Contains(t, rec.Texts(), m.Err.Error())
}

func TestAppFullGame(t *testing.T) {
	path := writeQuestionFile(t, "NUM_CATEGORIES=2\nNUM_QUESTIONS_PER_CATEGORY=2\n")
	app := NewApp(Options{Layout: DefaultLayout(), QuestionFile: path, Teams: 2})

	menu, ok := app.Active().(*MainMenu)
	require.True(t, ok)

	pressButton := func(buttons []*Button, action Action, index int) {
		t.Helper()

		for _, b := range buttons {
			if b.Action == action && b.Index == index {
				app.PointerMotion(b.CenterX(), b.CenterY())
				app.PointerRelease(b.CenterX(), b.CenterY(), PointerPrimary)

				return
			}
		}
		t.Fatalf("no button for action %d", action)
	}

	pressButton(menu.Buttons, ActionStart, 0)
	board, ok := app.Active().(*Board)
	require.True(t, ok)

	for i := 0; len(board.Boxes) > 0; i++ {
		box := board.Boxes[0]
		app.PointerMotion(box.CenterX(), box.CenterY())
		assert.True(t, app.PointerRelease(box.CenterX(), box.CenterY(), PointerPrimary))

		qv, ok := app.Active().(*QuestionView)
		require.True(t, ok)

		pressButton(qv.Buttons, ActionAward, i%2)

		if len(board.Boxes) > 0 {
			assert.Same(t, board, app.Active())
		}
	}

	over, ok := app.Active().(*GameOver)
	require.True(t, ok)
	assert.Equal(t, []string{"Team 2 : 400", "Team 1 : 200"}, over.Lines)

	pressButton(over.Buttons, ActionMainMenu, 0)
	next, ok := app.Active().(*MainMenu)
	require.True(t, ok)
	assert.NotSame(t, menu, next)
	assert.False(t, app.Quitting())
	assert.NotEmpty(t, app.Frame())
}

func TestAppQuit(t *testing.T) {
	app := NewApp(Options{Layout: DefaultLayout(), Teams: 2, AllowQuit: true})
	menu := app.Active().(*MainMenu)

	for _, b := range menu.Buttons {
		if b.Action == ActionQuit {
			app.PointerMotion(b.CenterX(), b.CenterY())
			assert.False(t, app.PointerRelease(b.CenterX(), b.CenterY(), PointerPrimary))
		}
	}

	assert.True(t, app.Quitting())
}
