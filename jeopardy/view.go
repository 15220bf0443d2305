/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package jeopardy

// PointerButton is the pointer button that was released.
type PointerButton int

const (
	PointerPrimary PointerButton = iota
	PointerSecondary
)

// View is one full-screen mode of the game. The set is closed:
// *MainMenu, *Board, *QuestionView and *GameOver.
//
// PointerRelease returns the view that should become active, or nil to
// stay on the current one.
type View interface {
	Draw(c Canvas)
	PointerMotion(x, y float64)
	PointerRelease(x, y float64, button PointerButton) View

	view()
}

func (*MainMenu) view()     {}
func (*Board) view()        {}
func (*QuestionView) view() {}
func (*GameOver) view()     {}

// App runs the view state machine. It is not safe for concurrent use;
// frontends feed it events from a single goroutine.
type App struct {
	active View
}

func NewApp(opts Options) *App {
	return &App{active: NewMainMenu(opts)}
}

// Active returns the view currently receiving events.
func (a *App) Active() View {
	return a.active
}

func (a *App) Draw(c Canvas) {
	a.active.Draw(c)
}

func (a *App) PointerMotion(x, y float64) {
	a.active.PointerMotion(x, y)
}

// PointerRelease dispatches the release and applies any transition the
// active view requests. It reports whether the active view changed.
func (a *App) PointerRelease(x, y float64, button PointerButton) bool {
	next := a.active.PointerRelease(x, y, button)
	if next == nil || next == a.active {
		return false
	}

	a.active = next
	a.active.PointerMotion(x, y)

	return true
}

// Frame records the active view and returns its draw operations.
func (a *App) Frame() []DrawOp {
	var rec Recorder
	a.Draw(&rec)

	return rec.Ops
}

// Quitting reports whether the menu's quit button has been pressed.
func (a *App) Quitting() bool {
	menu, ok := a.active.(*MainMenu)

	return ok && menu.quit
}

// ViewName returns a short stable name for v, for logs and clients.
func ViewName(v View) string {
	switch v.(type) {
	case *MainMenu:
		return "menu"
	case *Board:
		return "board"
	case *QuestionView:
		return "question"
	case *GameOver:
		return "gameover"
	default:
		return "unknown"
	}
}
