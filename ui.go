package main

import (
	"os"

	"fortio.org/log"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

type UI struct {
	face font.Face
}

func NewUI(fontPath string, size float64) *UI {
	ui := &UI{}

	// Try to load a local TTF; the config points at res/ by default
	b, err := os.ReadFile(fontPath)
	if err != nil {
		log.Warnf("could not read font file: %v; falling back to basic font", err)
		ui.face = basicfont.Face7x13
		return ui
	}
	tt, err := opentype.Parse(b)
	if err != nil {
		log.Warnf("could not parse ttf: %v; falling back to basic font", err)
		ui.face = basicfont.Face7x13
		return ui
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		log.Warnf("could not create font face: %v; falling back to basic font", err)
		ui.face = basicfont.Face7x13
		return ui
	}
	ui.face = face
	return ui
}

// Draw renders the key hints along the bottom and any active toasts.
func (ui *UI) Draw(screen *ebiten.Image, g *Game) {
	// Use the actual logical screen height so the HUD sits at the bottom
	// even when the window is resized.
	screenH := screen.Bounds().Dy()
	x := g.layout.Preview.X + g.layout.Preview.W + ColumnGap
	drawTextAt(screen, ui.face, "Tab focus - Up/Down nudge (Shift x10) - Enter type a value", x, screenH-28, ColorTextDim)
	drawTextAt(screen, ui.face, "Ctrl+R/H/X copy RGB/HSL/HEX - Ctrl+S save swatch - Right-click menu", x, screenH-14, ColorTextDim)

	g.renderer.DrawToasts(screen, g.picker.Toasts().Active(g.picker.Now()))
}
