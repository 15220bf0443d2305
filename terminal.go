/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"

	"github.com/Seednode/jeopardy/jeopardy"
)

const pointerButtons = tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle

// termCanvas rasterises layout units onto terminal cells.
type termCanvas struct {
	screen tcell.Screen
	sx, sy float64
}

func newTermCanvas(screen tcell.Screen, l jeopardy.Layout) *termCanvas {
	cols, rows := screen.Size()

	return &termCanvas{
		screen: screen,
		sx:     float64(cols) / l.WindowWidth,
		sy:     float64(rows) / l.WindowHeight,
	}
}

func termColor(c jeopardy.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// toLayout maps the center of a cell back to layout units.
func (t *termCanvas) toLayout(col, row int) (float64, float64) {
	return (float64(col) + 0.5) / t.sx, (float64(row) + 0.5) / t.sy
}

func (t *termCanvas) Clear(bg jeopardy.Color) {
	t.screen.Fill(' ', tcell.StyleDefault.Background(termColor(bg)))
}

func (t *termCanvas) FillRect(r jeopardy.Rect, c jeopardy.Color) {
	style := tcell.StyleDefault.Background(termColor(c))

	x0, x1 := int(math.Round(r.X*t.sx)), int(math.Round((r.X+r.W)*t.sx))
	y0, y1 := int(math.Round(r.Y*t.sy)), int(math.Round((r.Y+r.H)*t.sy))
	x1 = max(x1, x0+1)
	y1 = max(y1, y0+1)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			t.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (t *termCanvas) DrawText(txt jeopardy.Text) {
	width := 0
	if txt.Width > 0 {
		width = max(int(txt.Width*t.sx), 1)
	}

	lines := wrapLines(txt.Value, width)
	cx := int(txt.X * t.sx)
	top := int(txt.Y*t.sy) - (len(lines)-1)/2

	for i, line := range lines {
		x := cx - lipgloss.Width(line)/2
		y := top + i

		for _, r := range line {
			_, _, style, _ := t.screen.GetContent(x, y)
			t.screen.SetContent(x, y, r, nil, style.Foreground(termColor(txt.Color)))
			x += max(lipgloss.Width(string(r)), 1)
		}
	}
}

// wrapLines splits s into centered lines at most width cells wide, with
// the alignment padding trimmed off. A width of zero means no wrapping.
func wrapLines(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}

	rendered := lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(s)

	lines := strings.Split(rendered, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}

	return lines
}

// runTerminal plays a single game in the current terminal.
func runTerminal(cfg *Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	return runScreen(cfg, screen)
}

// runScreen drives app from screen's events until the menu's quit button
// is pressed or the player hits Escape or Ctrl-C. screen must be initialised.
func runScreen(cfg *Config, screen tcell.Screen) error {
	screen.EnableMouse(tcell.MouseMotionEvents)
	defer screen.DisableMouse()

	app := jeopardy.NewApp(cfg.gameOptions())

	var held tcell.ButtonMask
	for !app.Quitting() {
		canvas := newTermCanvas(screen, cfg.layout)
		app.Draw(canvas)
		screen.Show()

		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return nil
			}
		case *tcell.EventMouse:
			x, y := canvas.toLayout(ev.Position())
			app.PointerMotion(x, y)

			pressed := ev.Buttons() & pointerButtons
			if held != 0 && pressed == 0 {
				button := jeopardy.PointerPrimary
				if held&tcell.ButtonSecondary != 0 {
					button = jeopardy.PointerSecondary
				}

				app.PointerRelease(x, y, button)
			}
			held = pressed
		}
	}

	return nil
}
