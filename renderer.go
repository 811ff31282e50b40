package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"github.com/example/chromapick/colormodel"
	"github.com/example/chromapick/picker"
)

// Renderer handles all drawing operations for the application.
type Renderer struct {
	face font.Face
}

// NewRenderer creates a new Renderer drawing text with face.
func NewRenderer(face font.Face) *Renderer {
	return &Renderer{face: face}
}

// DrawPicker renders the preview, the channel rows and the derived
// representations for the current color.
func (r *Renderer) DrawPicker(screen *ebiten.Image, l Layout, p *picker.Picker, im *InputManager) {
	c := p.Color()

	drawTextAt(screen, r.face, "Color Palette Tool", l.Title.X, l.Title.Y, ColorText)
	drawTextAt(screen, r.face, "Drag the sliders or type a value to create your color", l.Title.X, l.Title.Y+CaptionHeight, ColorTextDim)

	r.drawPreview(screen, l.Preview, c)

	drawTextAt(screen, r.face, "RGB", l.RGBCaption.X, l.RGBCaption.Y, ColorText)
	for i, ch := range colormodel.Channels {
		r.drawChannelRow(screen, l, i, ch, c, im)
	}
	r.drawButton(screen, l.CopyRGB, "Copy RGB", im.hoverButton == int(picker.FormatRGB))

	hsl := p.HSL()
	drawTextAt(screen, r.face, "HSL", l.HSLCaption.X, l.HSLCaption.Y, ColorText)
	r.drawHSLValues(screen, l.HSLValues, hsl)
	r.drawButton(screen, l.CopyHSL, "Copy HSL", im.hoverButton == int(picker.FormatHSL))

	drawTextAt(screen, r.face, "HEX", l.HexCaption.X, l.HexCaption.Y, ColorText)
	r.drawBox(screen, l.HexBox, false)
	r.drawCentered(screen, l.HexBox, p.Hex().Upper(), ColorText)
	r.drawButton(screen, l.CopyHex, "Copy HEX", im.hoverButton == int(picker.FormatHex))

	r.drawSwatches(screen, l, p.Swatches())
}

func (r *Renderer) drawPreview(screen *ebiten.Image, b Rect, c colormodel.RGB) {
	fillRect(screen, b, rgba(c))
	drawBorder(screen, b, ColorPanelBorder)
	label := colormodel.ToHex(c).Upper()
	drawTextAt(screen, r.face, label, b.X+InnerPadding, b.Y+b.H-CaptionHeight-InnerPadding, rgba(colormodel.ContrastText(c)))
}

func (r *Renderer) drawChannelRow(screen *ebiten.Image, l Layout, i int, ch colormodel.Channel, c colormodel.RGB, im *InputManager) {
	label := l.Labels[i]
	var style color.Color = ColorTextDim
	if im.focus == i {
		style = ColorText
	}
	drawTextAt(screen, r.face, ch.String(), label.X, label.Y+InnerPadding, style)

	v := c.Channel(ch)
	track := l.Track(i)
	fillRect(screen, track, ColorTrack)

	// filled part of the track, tinted with the channel alone
	tx := l.ThumbX(i, v)
	filled := Rect{X: track.X, Y: track.Y, W: tx - track.X + ThumbWidth/2, H: track.H}
	fillRect(screen, filled, rgba(colormodel.RGB{}.With(ch, v)))
	drawBorder(screen, track, ColorPanelBorder)

	thumb := Rect{X: tx, Y: l.Sliders[i].Y + 4, W: ThumbWidth, H: l.Sliders[i].H - 8}
	fillRect(screen, thumb, ColorThumb)

	box := l.Boxes[i]
	editing := im.editing && im.focus == i
	r.drawBox(screen, box, editing || im.focus == i)
	txt := fmt.Sprintf("%d", v)
	if editing {
		txt = im.entry.String()
	}
	r.drawCentered(screen, box, txt, ColorText)
	if editing && im.caretVisible {
		r.drawCaret(screen, box, im.entry.String(), im.entry.BeforeCaret())
	}
}

func (r *Renderer) drawHSLValues(screen *ebiten.Image, b Rect, hsl colormodel.HSL) {
	fillRect(screen, b, ColorPanelBg)
	third := b.W / 3
	cells := []struct {
		caption string
		value   string
	}{
		{"Hue", fmt.Sprintf("%d°", hsl.H)},
		{"Saturation", fmt.Sprintf("%d%%", hsl.S)},
		{"Lightness", fmt.Sprintf("%d%%", hsl.L)},
	}
	for i, cell := range cells {
		x := b.X + i*third
		drawTextAt(screen, r.face, cell.caption+" "+cell.value, x, b.Y+InnerPadding, ColorText)
	}
}

func (r *Renderer) drawBox(screen *ebiten.Image, b Rect, focused bool) {
	fillRect(screen, b, ColorBoxBg)
	border := ColorPanelBorder
	if focused {
		border = ColorFocus
	}
	drawBorder(screen, b, border)
}

func (r *Renderer) drawButton(screen *ebiten.Image, b Rect, label string, hover bool) {
	bg := ColorButtonBg
	if hover {
		bg = ColorButtonHover
	}
	fillRect(screen, b, bg)
	drawBorder(screen, b, ColorPanelBorder)
	r.drawCentered(screen, b, label, ColorText)
}

func (r *Renderer) drawCaret(screen *ebiten.Image, b Rect, s, before string) {
	full := r.textWidth(s)
	x := b.X + (b.W-full)/2 + r.textWidth(before)
	fillRect(screen, Rect{X: x, Y: b.Y + 5, W: 1, H: b.H - 10}, ColorText)
}

func (r *Renderer) drawSwatches(screen *ebiten.Image, l Layout, s *picker.Swatches) {
	drawTextAt(screen, r.face, "Swatches", l.SwatchCaption.X, l.SwatchCaption.Y, ColorTextDim)
	n := s.Len()
	if c := l.SwatchCapacity(); n > c {
		n = c
	}
	if n == 0 {
		drawTextAt(screen, r.face, "right-click to save", l.Swatches.X, l.Swatches.Y, ColorTextDim)
		return
	}
	for i := 0; i < n; i++ {
		sw, _ := s.At(i)
		b := l.SwatchRect(i)
		fillRect(screen, b, rgba(sw.Color))
		drawBorder(screen, b, ColorPanelBorder)
	}
}

// DrawToasts stacks active notifications in the bottom-right corner,
// newest at the bottom.
func (r *Renderer) DrawToasts(screen *ebiten.Image, toasts []picker.Toast) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	y := h - Margin - ToastHeight
	for i := len(toasts) - 1; i >= 0; i-- {
		t := toasts[i]
		b := Rect{X: w - Margin - ToastWidth, Y: y, W: ToastWidth, H: ToastHeight}
		fillRect(screen, b, ColorToastBg)
		fillRect(screen, Rect{X: b.X, Y: b.Y, W: 3, H: b.H}, ColorToastBorder)
		drawTextAt(screen, r.face, t.Title, b.X+InnerPadding+4, b.Y+4, ColorText)
		drawTextAt(screen, r.face, t.Description, b.X+InnerPadding+4, b.Y+4+CaptionHeight, ColorTextDim)
		y -= ToastHeight + ToastGap
	}
}

func (r *Renderer) drawCentered(screen *ebiten.Image, b Rect, s string, col color.Color) {
	x := b.X + (b.W-r.textWidth(s))/2
	y := b.Y + (b.H-r.textHeight())/2
	drawTextAt(screen, r.face, s, x, y, col)
}

func (r *Renderer) textWidth(s string) int {
	if r.face == nil {
		// ebitenutil's debug font is 6px wide
		return 6 * len([]rune(s))
	}
	return font.MeasureString(r.face, s).Round()
}

func (r *Renderer) textHeight() int {
	if r.face == nil {
		return 16
	}
	m := r.face.Metrics()
	return (m.Ascent + m.Descent).Round()
}

func fillRect(screen *ebiten.Image, b Rect, col color.Color) {
	if b.W <= 0 || b.H <= 0 {
		return
	}
	ebitenutil.DrawRect(screen, float64(b.X), float64(b.Y), float64(b.W), float64(b.H), col)
}

func drawBorder(screen *ebiten.Image, b Rect, col color.Color) {
	fillRect(screen, Rect{X: b.X, Y: b.Y, W: BorderWidth, H: b.H}, col)
	fillRect(screen, Rect{X: b.X, Y: b.Y, W: b.W, H: BorderWidth}, col)
	fillRect(screen, Rect{X: b.X + b.W - BorderWidth, Y: b.Y, W: BorderWidth, H: b.H}, col)
	fillRect(screen, Rect{X: b.X, Y: b.Y + b.H - BorderWidth, W: b.W, H: BorderWidth}, col)
}

func rgba(c colormodel.RGB) color.RGBA {
	return color.RGBA{c.R, c.G, c.B, 0xff}
}

// drawTextAt draws text using the provided face. If face is nil, falls back to ebitenutil.DebugPrintAt.
func drawTextAt(screen *ebiten.Image, face font.Face, s string, x, y int, col color.Color) {
	if face == nil {
		ebitenutil.DebugPrintAt(screen, s, x, y)
		return
	}
	// text.Draw expects y to be baseline; DebugPrintAt uses top-left.
	// Adjust by ascent so text appears where DebugPrintAt placed it.
	ascent := face.Metrics().Ascent.Round()
	text.Draw(screen, s, face, x, y+ascent, col)
}
