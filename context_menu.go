package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
)

// MenuAction describes what action was selected in the context menu
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionSaveSwatch
	MenuActionApplySwatch
	MenuActionRemoveSwatch
	MenuActionExportSwatches
	MenuActionImportSwatches
	MenuActionReset
)

type menuItem struct {
	label  string
	action MenuAction
	// swatch items only make sense when the menu was opened on a swatch
	needsSwatch bool
}

// ContextMenu encapsulates the state and behavior of a right-click context menu
// It provides methods to show/hide, update based on input, and draw itself.
type ContextMenu struct {
	visible  bool
	x, y     int
	items    []menuItem
	selected int
	// swatch the menu was opened on, or -1
	targetSwatch int
}

func NewContextMenu() *ContextMenu {
	return &ContextMenu{
		visible: false,
		items: []menuItem{
			{label: "Save Swatch", action: MenuActionSaveSwatch},
			{label: "Apply Swatch", action: MenuActionApplySwatch, needsSwatch: true},
			{label: "Remove Swatch", action: MenuActionRemoveSwatch, needsSwatch: true},
			{label: "Export Swatches...", action: MenuActionExportSwatches},
			{label: "Import Swatches...", action: MenuActionImportSwatches},
			{label: "Reset Color", action: MenuActionReset},
		},
		selected:     -1,
		targetSwatch: -1,
	}
}

func (cm *ContextMenu) Show(x, y int, targetSwatch int) {
	cm.visible = true
	cm.x = x
	cm.y = y
	cm.selected = -1
	cm.targetSwatch = targetSwatch
}

func (cm *ContextMenu) Hide() {
	cm.visible = false
	cm.selected = -1
}

func (cm *ContextMenu) enabled(i int) bool {
	return !cm.items[i].needsSwatch || cm.targetSwatch >= 0
}

// clampToScreen keeps the menu inside a w×h screen.
func (cm *ContextMenu) clampToScreen(w, h int) {
	mh := MenuItemH * len(cm.items)
	if cm.x+MenuWidth > w {
		cm.x = w - MenuWidth - PanelPadding
	}
	if cm.y+mh > h {
		cm.y = h - mh - PanelPadding
	}
	if cm.x < 0 {
		cm.x = 0
	}
	if cm.y < 0 {
		cm.y = 0
	}
}

// Update returns a MenuAction for any selection triggered, and may hide the menu
// as part of its behavior.
func (cm *ContextMenu) Update(g *Game) MenuAction {
	if !cm.visible {
		return MenuActionNone
	}
	cm.clampToScreen(g.width, g.height)

	mx, my := ebiten.CursorPosition()
	x := cm.x
	y := cm.y

	// determine hover index
	if mx >= x && mx <= x+MenuWidth && my >= y && my < y+MenuItemH*len(cm.items) {
		idx := (my - y) / MenuItemH
		if !cm.enabled(idx) {
			idx = -1
		}
		cm.selected = idx
	} else {
		cm.selected = -1
	}

	// left click selects or closes
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		cm.visible = false
		if cm.selected >= 0 {
			return cm.items[cm.selected].action
		}
		return MenuActionNone
	}

	// close menu on Escape
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		cm.visible = false
	}
	// if right-click again, close
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		cm.visible = false
	}

	return MenuActionNone
}

func (cm *ContextMenu) Draw(screen *ebiten.Image, face font.Face) {
	if !cm.visible {
		return
	}
	bg := Rect{
		X: cm.x - PanelPadding,
		Y: cm.y - PanelPadding,
		W: MenuWidth + PanelPadding*2,
		H: MenuItemH*len(cm.items) + PanelPadding*2,
	}
	fillRect(screen, bg, ColorMenuBg)
	drawBorder(screen, bg, ColorMenuBorder)

	for i, it := range cm.items {
		iy := cm.y + i*MenuItemH
		var col color.Color = ColorText
		if !cm.enabled(i) {
			col = ColorMenuDisabled
		}
		// highlight on hover
		if cm.selected == i {
			fillRect(screen, Rect{X: cm.x, Y: iy, W: MenuWidth, H: MenuItemH}, ColorMenuHighlight)
		}
		drawTextAt(screen, face, it.label, cm.x+InnerPadding+2, iy+InnerPadding, col)
	}
}
