/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package jeopardy

import "fmt"

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

// Hex returns the color in #rrggbb form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

var (
	Black        = Color{0, 0, 0}
	Yellow       = Color{255, 255, 0}
	Green        = Color{0, 255, 0}
	Purple       = Color{128, 0, 128}
	AntiqueWhite = Color{250, 235, 215}
	White        = Color{255, 255, 255}
	DarkGreen    = Color{0, 100, 0}
	SlateGray    = Color{112, 128, 144}
	LightSkyBlue = Color{135, 206, 250}
	Crimson      = Color{220, 20, 60}
)

// Layout holds every size, bound and color the views are drawn with.
// Coordinates are top-left origin with y growing downward.
type Layout struct {
	Title string

	WindowWidth  float64
	WindowHeight float64

	BoxPadding float64

	DefaultButtonWidth  float64
	DefaultButtonHeight float64

	QuitButtonWidth  float64
	QuitButtonHeight float64

	MessageBoxHeight  float64
	TeamDisplayHeight float64

	MaxTeamNameChars int
	MinNumTeams      int
	MaxNumTeams      int

	TeamDisplayFontSize float64
	MessageFontSize     float64

	BackgroundColor  Color
	TitleColor       Color
	BoxColor         Color
	BoxHoverColor    Color
	BoxTextColor     Color
	ButtonColor      Color
	ButtonHoverColor Color
	ButtonTextColor  Color
	TeamDisplayColor Color
	CategoryColor    Color
	MessageColor     Color
	ErrorColor       Color
}

// DefaultLayout returns the stock 800x600 board.
func DefaultLayout() Layout {
	return Layout{
		Title: "Jeopardy",

		WindowWidth:  800,
		WindowHeight: 600,

		BoxPadding: 10,

		DefaultButtonWidth:  125,
		DefaultButtonHeight: 75,

		QuitButtonWidth:  50,
		QuitButtonHeight: 35,

		MessageBoxHeight:  150,
		TeamDisplayHeight: 50,

		MaxTeamNameChars: 10,
		MinNumTeams:      2,
		MaxNumTeams:      5,

		TeamDisplayFontSize: 15,
		MessageFontSize:     20,

		BackgroundColor:  Black,
		TitleColor:       Yellow,
		BoxColor:         Green,
		BoxHoverColor:    DarkGreen,
		BoxTextColor:     Purple,
		ButtonColor:      SlateGray,
		ButtonHoverColor: LightSkyBlue,
		ButtonTextColor:  White,
		TeamDisplayColor: AntiqueWhite,
		CategoryColor:    AntiqueWhite,
		MessageColor:     White,
		ErrorColor:       Crimson,
	}
}

// ClampTeams bounds n to [MinNumTeams, MaxNumTeams].
func (l Layout) ClampTeams(n int) int {
	return max(l.MinNumTeams, min(n, l.MaxNumTeams))
}
