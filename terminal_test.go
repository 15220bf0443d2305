package main

import (
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Seednode/jeopardy/jeopardy"
)

func newSimScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)

	return screen
}

func cellText(screen tcell.Screen, row, from, to int) string {
	var out []rune
	for x := from; x < to; x++ {
		r, _, _, _ := screen.GetContent(x, row)
		out = append(out, r)
	}

	return string(out)
}

func TestWrapLines(t *testing.T) {
	assert.Equal(t, []string{"one two three"}, wrapLines("one two three", 0))
	assert.Equal(t, []string{"one two", "three"}, wrapLines("one two three", 7))
	assert.Equal(t, []string{""}, wrapLines("", 10))

	for _, line := range wrapLines("extraordinary word", 5) {
		assert.LessOrEqual(t, lipgloss.Width(line), 5, line)
	}

	lines := wrapLines("日本 語", 4)
	assert.Equal(t, []string{"日本", "語"}, lines)
}

func TestTermCanvasWideRunes(t *testing.T) {
	l := jeopardy.DefaultLayout()
	screen := newSimScreen(t, 80, 30)
	canvas := newTermCanvas(screen, l)

	canvas.Clear(jeopardy.Black)
	canvas.DrawText(jeopardy.Text{Value: "日本", X: 150, Y: 150, Color: jeopardy.White})

	r, _, _, _ := screen.GetContent(13, 7)
	assert.Equal(t, '日', r)
	r, _, _, _ = screen.GetContent(15, 7)
	assert.Equal(t, '本', r)
	r, _, _, _ = screen.GetContent(17, 7)
	assert.Equal(t, ' ', r)
}

func TestTermCanvasScalesLayout(t *testing.T) {
	l := jeopardy.DefaultLayout()
	screen := newSimScreen(t, 80, 30)
	canvas := newTermCanvas(screen, l)

	canvas.Clear(jeopardy.Black)
	canvas.FillRect(jeopardy.Rect{X: 100, Y: 100, W: 100, H: 100}, jeopardy.Green)
	canvas.DrawText(jeopardy.Text{Value: "300", X: 150, Y: 150, Color: jeopardy.Purple})

	_, _, style, _ := screen.GetContent(12, 6)
	_, bg, _ := style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(0, 255, 0), bg)

	_, _, style, _ = screen.GetContent(5, 2)
	_, bg, _ = style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(0, 0, 0), bg)

	assert.Equal(t, "300", cellText(screen, 7, 14, 17))

	x, y := canvas.toLayout(15, 7)
	assert.InDelta(t, 155, x, 1e-9)
	assert.InDelta(t, 150, y, 1e-9)
}

func TestRunScreenEscapeExits(t *testing.T) {
	cfg := testConfig(t)
	cfg.terminal = true
	screen := newSimScreen(t, 80, 30)

	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	done := make(chan error, 1)
	go func() { done <- runScreen(cfg, screen) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("runScreen did not exit on escape")
	}
}

func TestRunScreenQuitButton(t *testing.T) {
	cfg := testConfig(t)
	cfg.terminal = true
	screen := newSimScreen(t, 80, 30)

	// The menu's quit button covers layout x 740-790, y 10-45.
	screen.InjectMouse(76, 1, tcell.ButtonPrimary, tcell.ModNone)
	screen.InjectMouse(76, 1, tcell.ButtonNone, tcell.ModNone)

	done := make(chan error, 1)
	go func() { done <- runScreen(cfg, screen) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("runScreen did not exit on quit")
	}
}
