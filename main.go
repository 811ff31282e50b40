package main

import (
	"flag"
	"os"

	"fortio.org/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/example/chromapick/picker"
)

type Game struct {
	picker *picker.Picker
	cfg    picker.Config
	ui     *UI

	input       *InputManager
	renderer    *Renderer
	contextMenu *ContextMenu

	layout        Layout
	width, height int

	statePath string
	watcher   *picker.Watcher
}

func NewGame(cfg picker.Config, statePath string) *Game {
	g := &Game{cfg: cfg, statePath: statePath}
	g.picker = picker.NewFromConfig(cfg, picker.DetectClipboard())
	g.ui = NewUI(cfg.FontPath, cfg.FontSize)
	g.input = NewInputManager()
	g.renderer = NewRenderer(g.ui.face)
	g.contextMenu = NewContextMenu()
	g.width, g.height = cfg.WindowWidth, cfg.WindowHeight
	g.layout = ComputeLayout(g.width, g.height)

	s, err := picker.LoadState(statePath)
	switch {
	case os.IsNotExist(err):
		log.Infof("No saved state at %s, starting from %s", statePath, g.picker.Color().CSS())
	case err != nil:
		log.Warnf("LoadState: %v", err)
	default:
		g.picker.Restore(s)
	}

	// Edits made to the state file by hand or by another instance are
	// applied on the next frame.
	w, err := picker.WatchState(statePath, func(s picker.State) {
		g.picker.Post(func() { g.picker.Restore(s) })
	})
	if err != nil {
		log.Warnf("not watching %s: %v", statePath, err)
	} else {
		g.watcher = w
	}
	return g
}

func (g *Game) saveSwatch() {
	g.picker.SaveSwatch("")
	g.persist()
}

func (g *Game) persist() {
	var err error
	if g.watcher != nil {
		err = g.watcher.Save(g.picker.State())
	} else {
		err = picker.SaveState(g.statePath, g.picker.State())
	}
	if err != nil {
		log.Warnf("SaveState: %v", err)
	}
}

func (g *Game) Close() {
	g.persist()
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Warnf("closing watcher: %v", err)
		}
		g.watcher = nil
	}
}

func (g *Game) Update() error {
	// apply updates posted from other goroutines
	g.picker.Drain()

	if ctrlPressed() && inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.input.HandleSliders(g)
	g.input.HandleClicks(g)

	g.input.HandleContextMenuOpen(g)
	g.input.HandleContextMenuInput(g)

	// a key that ends an edit must not also act as a shortcut this frame
	wasEditing := g.input.editing
	g.input.HandleEditing(g)
	if !wasEditing {
		g.input.HandleKeyboard(g)
	}

	g.picker.Toasts().Prune(g.picker.Now())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// dark background
	screen.Fill(ColorBackground)

	g.renderer.DrawPicker(screen, g.layout, g.picker, g.input)

	// draw UI (hints, toasts)
	g.ui.Draw(screen, g)

	// draw context menu
	g.contextMenu.Draw(screen, g.ui.face)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	// Return the outside dimensions so the logical screen matches window size.
	// This prevents black bars when the window is resized.
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.layout = ComputeLayout(g.width, g.height)
	}
	return outsideWidth, outsideHeight
}

func main() {
	configPath := flag.String("config", "chromapick.yml", "path to the YAML config file")
	statePath := flag.String("state", "", "path to the saved state file (overrides state_path in the config)")
	flag.Parse()

	cfg, err := picker.LoadConfig(*configPath)
	if err != nil {
		log.Warnf("LoadConfig: %v; using defaults", err)
	}
	if *statePath != "" {
		cfg.StatePath = *statePath
	}

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle("ChromaPick - Color Palette Tool")
	ebiten.SetWindowResizable(true)
	g := NewGame(cfg, cfg.StatePath)
	defer g.Close()
	if err := ebiten.RunGame(g); err != nil {
		log.Errf("RunGame: %v", err)
		g.Close()
		os.Exit(1)
	}
}
