package main

import (
	"fmt"
	"path/filepath"

	"fortio.org/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sqweek/dialog"

	"github.com/example/chromapick/colormodel"
	"github.com/example/chromapick/picker"
)

// InputManager handles input detection and applies it to the picker.
// It owns transient input state like slider drags and the numeric edit
// buffer. The Picker keeps the color itself; the ContextMenu manages its
// own visibility and selection state.
type InputManager struct {
	rightPressedX int
	rightPressedY int

	// slider drag
	dragging int

	// focused channel row
	focus int

	// numeric entry
	editing      bool
	entry        picker.Entry
	blinkCounter int
	caretVisible bool

	hoverButton int
}

func NewInputManager() *InputManager {
	return &InputManager{
		dragging:    -1,
		focus:       0,
		hoverButton: -1,
	}
}

func repeatingKeyPressed(key ebiten.Key) bool {
	const (
		delay    = 30
		interval = 3
	)
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= delay && (d-delay)%interval == 0
}

func ctrlPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
}

// HandleSliders starts, continues and ends slider drags.
func (im *InputManager) HandleSliders(g *Game) {
	mx, my := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !g.contextMenu.visible {
		if i := g.layout.HitSlider(mx, my); i >= 0 {
			im.commitEdit(g)
			im.dragging = i
			im.focus = i
		}
	}
	if im.dragging >= 0 && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		ch := colormodel.Channels[im.dragging]
		g.picker.SetChannel(ch, g.layout.SliderValue(im.dragging, mx))
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		im.dragging = -1
	}
}

// HandleClicks dispatches left clicks on value boxes, copy buttons and
// swatches.
func (im *InputManager) HandleClicks(g *Game) {
	mx, my := ebiten.CursorPosition()
	im.hoverButton = -1
	if f, ok := g.layout.HitButton(mx, my); ok {
		im.hoverButton = int(f)
	}
	if g.contextMenu.visible || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}

	if i := g.layout.HitBox(mx, my); i >= 0 {
		if im.editing && im.focus == i {
			return
		}
		im.commitEdit(g)
		im.startEdit(g, i)
		return
	}
	if g.layout.HitSlider(mx, my) >= 0 {
		return
	}

	// any other click ends an edit in progress
	im.commitEdit(g)

	if f, ok := g.layout.HitButton(mx, my); ok {
		im.copy(g, f)
		return
	}
	if i := g.layout.HitSwatch(mx, my, g.picker.Swatches().Len()); i >= 0 {
		sw, _ := g.picker.Swatches().At(i)
		g.picker.Set(sw.Color)
		g.picker.Notify("Applied", sw.Name)
	}
}

func (im *InputManager) copy(g *Game, f picker.Format) {
	if _, err := g.picker.Copy(f); err != nil {
		log.Errf("%v", err)
	}
}

func (im *InputManager) startEdit(g *Game, i int) {
	im.focus = i
	im.editing = true
	im.entry.Reset()
	im.blinkCounter = 0
	im.caretVisible = true
}

func (im *InputManager) commitEdit(g *Game) {
	if !im.editing {
		return
	}
	g.picker.SetChannelText(colormodel.Channels[im.focus], im.entry.String())
	im.cancelEdit()
}

func (im *InputManager) cancelEdit() {
	im.editing = false
	im.entry.Reset()
}

// HandleEditing feeds typed characters into the value box being edited.
func (im *InputManager) HandleEditing(g *Game) {
	if !im.editing {
		return
	}
	im.blinkCounter++
	if im.blinkCounter >= 30 {
		im.blinkCounter = 0
		im.caretVisible = !im.caretVisible
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		im.entry.Insert(r)
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter):
		im.commitEdit(g)
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		im.cancelEdit()
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		im.commitEdit(g)
		im.cycleFocus()
	case repeatingKeyPressed(ebiten.KeyBackspace):
		im.entry.Backspace()
	case repeatingKeyPressed(ebiten.KeyDelete):
		im.entry.Delete()
	case repeatingKeyPressed(ebiten.KeyArrowLeft):
		im.entry.Left()
	case repeatingKeyPressed(ebiten.KeyArrowRight):
		im.entry.Right()
	}
}

// cycleFocus moves focus to the next row, or the previous one with Shift.
func (im *InputManager) cycleFocus() {
	ch := colormodel.Channels[im.focus]
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		ch = ch.Prev()
	} else {
		ch = ch.Next()
	}
	im.focus = int(ch)
}

// HandleKeyboard applies focus changes, nudges and copy shortcuts when no
// value box is being edited.
func (im *InputManager) HandleKeyboard(g *Game) {
	if im.editing || g.contextMenu.visible {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		im.cycleFocus()
	}

	step := 1
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		step = 10
	}
	ch := colormodel.Channels[im.focus]
	if repeatingKeyPressed(ebiten.KeyArrowUp) || repeatingKeyPressed(ebiten.KeyArrowRight) {
		g.picker.Nudge(ch, step)
	}
	if repeatingKeyPressed(ebiten.KeyArrowDown) || repeatingKeyPressed(ebiten.KeyArrowLeft) {
		g.picker.Nudge(ch, -step)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		im.startEdit(g, im.focus)
	}

	if !ctrlPressed() {
		return
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		im.copy(g, picker.FormatRGB)
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		im.copy(g, picker.FormatHSL)
	case inpututil.IsKeyJustPressed(ebiten.KeyX):
		im.copy(g, picker.FormatHex)
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.saveSwatch()
	}
}

// HandleContextMenuOpen opens the context menu on a right click.
func (im *InputManager) HandleContextMenuOpen(g *Game) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		im.rightPressedX, im.rightPressedY = ebiten.CursorPosition()
	}
	if !inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) || g.contextMenu.visible {
		return
	}
	mx, my := ebiten.CursorPosition()
	// a right-drag is not a click
	if abs(mx-im.rightPressedX) >= 6 || abs(my-im.rightPressedY) >= 6 {
		return
	}
	im.commitEdit(g)
	target := g.layout.HitSwatch(mx, my, g.picker.Swatches().Len())
	g.contextMenu.Show(mx, my, target)
}

func (im *InputManager) HandleContextMenuInput(g *Game) {
	// Give the menu a chance to update and return an action
	action := g.contextMenu.Update(g)
	switch action {
	case MenuActionNone:
		// nothing to do
	case MenuActionSaveSwatch:
		g.saveSwatch()
	case MenuActionApplySwatch:
		sw, ok := g.picker.Swatches().At(g.contextMenu.targetSwatch)
		if !ok {
			break
		}
		g.picker.Set(sw.Color)
		g.picker.Notify("Applied", sw.Name)
	case MenuActionRemoveSwatch:
		sw, ok := g.picker.Swatches().At(g.contextMenu.targetSwatch)
		if !ok {
			break
		}
		if err := g.picker.Swatches().Remove(g.contextMenu.targetSwatch); err != nil {
			log.Warnf("remove swatch: %v", err)
			break
		}
		g.picker.Notify("Removed", sw.Name)
		g.persist()
	case MenuActionExportSwatches:
		if g.picker.Swatches().Len() == 0 {
			g.picker.Notify("Nothing to export", "Save a swatch first.")
			break
		}
		path, err := dialog.File().Filter("YAML", "yml", "yaml").Title("Export Swatches").Save()
		if err != nil {
			if err != dialog.ErrCancelled {
				log.Warnf("file save failed: %v", err)
			}
			break
		}
		if path == "" {
			break
		}
		absPath, _ := filepath.Abs(path)
		if err := g.picker.Swatches().Save(absPath); err != nil {
			log.Errf("export failed: %v", err)
			g.picker.Notify("Export failed", filepath.Base(absPath))
			break
		}
		g.picker.Notify("Exported", filepath.Base(absPath))
	case MenuActionImportSwatches:
		path, err := dialog.File().Filter("YAML", "yml", "yaml").Title("Import Swatches").Load()
		if err != nil {
			if err != dialog.ErrCancelled {
				log.Warnf("file open failed: %v", err)
			}
			break
		}
		if path == "" {
			break
		}
		absPath, _ := filepath.Abs(path)
		loaded, err := picker.LoadSwatches(absPath)
		if err != nil {
			log.Errf("import failed: %v", err)
			dialog.Message("Could not import %s:\n%v", filepath.Base(absPath), err).Title("Import failed").Error()
			break
		}
		n := g.picker.Swatches().Merge(loaded)
		g.picker.Notify("Imported", fmt.Sprintf("%d new swatches from %s", n, filepath.Base(absPath)))
		g.persist()
	case MenuActionReset:
		g.picker.Reset()
		g.picker.Notify("Reset", g.picker.Color().CSS())
	}
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
