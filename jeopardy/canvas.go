/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package jeopardy

// Text is a run of text centered on (X, Y). A positive Width wraps the
// text onto several lines no wider than Width.
type Text struct {
	Value string
	X     float64
	Y     float64
	Size  float64
	Width float64
	Color Color
}

// Canvas is what views draw on. Frontends implement it.
type Canvas interface {
	Clear(bg Color)
	FillRect(r Rect, c Color)
	DrawText(t Text)
}

// DrawOp is one recorded canvas call, shaped for JSON.
type DrawOp struct {
	Op    string  `json:"op"` // "clear", "rect" or "text"
	X     float64 `json:"x,omitempty"`
	Y     float64 `json:"y,omitempty"`
	W     float64 `json:"w,omitempty"`
	H     float64 `json:"h,omitempty"`
	Size  float64 `json:"size,omitempty"`
	Text  string  `json:"text,omitempty"`
	Color string  `json:"color"`
}

// Recorder is a Canvas that keeps every call so a frame can be replayed
// elsewhere.
type Recorder struct {
	Ops []DrawOp
}

func (r *Recorder) Clear(bg Color) {
	r.Ops = append(r.Ops[:0], DrawOp{Op: "clear", Color: bg.Hex()})
}

func (r *Recorder) FillRect(rect Rect, c Color) {
	r.Ops = append(r.Ops, DrawOp{
		Op:    "rect",
		X:     rect.X,
		Y:     rect.Y,
		W:     rect.W,
		H:     rect.H,
		Color: c.Hex(),
	})
}

func (r *Recorder) DrawText(t Text) {
	r.Ops = append(r.Ops, DrawOp{
		Op:    "text",
		X:     t.X,
		Y:     t.Y,
		W:     t.Width,
		Size:  t.Size,
		Text:  t.Value,
		Color: t.Color.Hex(),
	})
}

// Texts returns the values of every recorded text op, in draw order.
func (r *Recorder) Texts() []string {
	var texts []string
	for _, op := range r.Ops {
		if op.Op == "text" {
			texts = append(texts, op.Text)
		}
	}

	return texts
}
