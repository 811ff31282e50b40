package main

import (
	"math"

	"github.com/example/chromapick/colormodel"
	"github.com/example/chromapick/picker"
)

// Rect is an on-screen rectangle in logical pixels.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Layout consolidates where every widget sits for a given window size, so
// drawing and hit testing agree.
type Layout struct {
	Title   Rect
	Preview Rect

	RGBCaption Rect
	Labels     [3]Rect
	Sliders    [3]Rect
	Boxes      [3]Rect
	CopyRGB    Rect

	HSLCaption Rect
	HSLValues  Rect
	CopyHSL    Rect

	HexCaption Rect
	HexBox     Rect
	CopyHex    Rect

	SwatchCaption Rect
	Swatches      Rect
}

// ComputeLayout lays the window out as a preview column on the left and
// the controls column on the right.
func ComputeLayout(w, h int) Layout {
	var l Layout
	top := Margin + TitleHeight
	l.Title = Rect{X: Margin, Y: Margin, W: w - 2*Margin, H: TitleHeight}
	l.Preview = Rect{X: Margin, Y: top, W: PreviewSize, H: PreviewSize}

	cx := Margin + PreviewSize + ColumnGap
	cw := w - cx - Margin
	if cw < 200 {
		cw = 200
	}

	y := top
	l.RGBCaption = Rect{X: cx, Y: y, W: cw, H: CaptionHeight}
	y += CaptionHeight
	for i := range colormodel.Channels {
		l.Labels[i] = Rect{X: cx, Y: y, W: LabelWidth, H: RowHeight}
		l.Boxes[i] = Rect{X: cx + cw - ValueBoxW, Y: y, W: ValueBoxW, H: RowHeight}
		sx := cx + LabelWidth + InnerPadding
		l.Sliders[i] = Rect{X: sx, Y: y, W: l.Boxes[i].X - InnerPadding - sx, H: RowHeight}
		y += RowHeight + RowGap
	}
	l.CopyRGB = Rect{X: cx, Y: y, W: cw, H: ButtonHeight}
	y += ButtonHeight + SectionGap

	l.HSLCaption = Rect{X: cx, Y: y, W: cw, H: CaptionHeight}
	y += CaptionHeight
	l.HSLValues = Rect{X: cx, Y: y, W: cw, H: RowHeight}
	y += RowHeight + RowGap
	l.CopyHSL = Rect{X: cx, Y: y, W: cw, H: ButtonHeight}
	y += ButtonHeight + SectionGap

	l.HexCaption = Rect{X: cx, Y: y, W: cw, H: CaptionHeight}
	y += CaptionHeight
	l.HexBox = Rect{X: cx, Y: y, W: cw, H: RowHeight}
	y += RowHeight + RowGap
	l.CopyHex = Rect{X: cx, Y: y, W: cw, H: ButtonHeight}

	sy := l.Preview.Y + l.Preview.H + SectionGap
	l.SwatchCaption = Rect{X: Margin, Y: sy, W: PreviewSize, H: CaptionHeight}
	sy += CaptionHeight
	sh := h - sy - Margin
	if sh < SwatchSize {
		sh = SwatchSize
	}
	l.Swatches = Rect{X: Margin, Y: sy, W: PreviewSize, H: sh}
	return l
}

// Track returns the thin drawn bar inside a slider's hit area.
func (l Layout) Track(i int) Rect {
	s := l.Sliders[i]
	return Rect{X: s.X, Y: s.Y + s.H/2 - 4, W: s.W, H: 8}
}

// ThumbX returns the left edge of the thumb for channel value v.
func (l Layout) ThumbX(i int, v uint8) int {
	s := l.Sliders[i]
	return s.X + int(v)*(s.W-ThumbWidth)/255
}

// SliderValue maps a cursor x position on slider i to a channel value.
func (l Layout) SliderValue(i, mx int) uint8 {
	s := l.Sliders[i]
	span := s.W - ThumbWidth
	if span <= 0 {
		return 0
	}
	v := float64(mx-s.X-ThumbWidth/2) * 255 / float64(span)
	return colormodel.ClampChannel(math.Round(v))
}

// CopyButton returns the copy button for f.
func (l Layout) CopyButton(f picker.Format) Rect {
	switch f {
	case picker.FormatHSL:
		return l.CopyHSL
	case picker.FormatHex:
		return l.CopyHex
	default:
		return l.CopyRGB
	}
}

// HitButton reports which copy button, if any, contains (x, y).
func (l Layout) HitButton(x, y int) (picker.Format, bool) {
	for _, f := range []picker.Format{picker.FormatRGB, picker.FormatHSL, picker.FormatHex} {
		if l.CopyButton(f).Contains(x, y) {
			return f, true
		}
	}
	return 0, false
}

// HitSlider returns the channel row whose slider contains (x, y), or -1.
func (l Layout) HitSlider(x, y int) int {
	for i, r := range l.Sliders {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}

// HitBox returns the channel row whose value box contains (x, y), or -1.
func (l Layout) HitBox(x, y int) int {
	for i, r := range l.Boxes {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}

func (l Layout) swatchesPerRow() int {
	n := (l.Swatches.W + SwatchGap) / (SwatchSize + SwatchGap)
	if n < 1 {
		n = 1
	}
	return n
}

// SwatchRect returns the square for swatch i.
func (l Layout) SwatchRect(i int) Rect {
	per := l.swatchesPerRow()
	col, row := i%per, i/per
	return Rect{
		X: l.Swatches.X + col*(SwatchSize+SwatchGap),
		Y: l.Swatches.Y + row*(SwatchSize+SwatchGap),
		W: SwatchSize,
		H: SwatchSize,
	}
}

// SwatchCapacity is how many swatch squares fit in the swatch area.
func (l Layout) SwatchCapacity() int {
	rows := (l.Swatches.H + SwatchGap) / (SwatchSize + SwatchGap)
	return rows * l.swatchesPerRow()
}

// HitSwatch returns the index of the swatch square under (x, y), or -1.
// n is the number of swatches currently saved.
func (l Layout) HitSwatch(x, y, n int) int {
	if !l.Swatches.Contains(x, y) {
		return -1
	}
	if c := l.SwatchCapacity(); n > c {
		n = c
	}
	for i := 0; i < n; i++ {
		if l.SwatchRect(i).Contains(x, y) {
			return i
		}
	}
	return -1
}
