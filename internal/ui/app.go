// Package ui is the desktop presentation surface: an ebiten window drawing
// the latest polled device poses top-down.
package ui

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rs/zerolog"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/trackedspace/trackviz/internal/settings"
	"github.com/trackedspace/trackviz/internal/store"
)

// Options configure the visualizer window.
type Options struct {
	Title  string
	Width  int
	Height int

	Store    *store.PoseStore
	Settings *settings.Store
	Logger   zerolog.Logger

	// PersistView, when set, is called after a hotkey changes the view
	// toggles so they survive a restart.
	PersistView func(settings.View)

	// InitError switches the window into the error screen, shown when the
	// VR runtime could not be reached.
	InitError error

	// Shutdown terminates the window when closed (e.g. on SIGINT).
	Shutdown <-chan struct{}
}

// App is the ebiten game driving the redraw loop.
type App struct {
	opts    Options
	sprites *spriteSet

	labelFace *text.GoTextFace
	monoFace  *text.GoTextFace
	errorFace *text.GoTextFace
}

var _ ebiten.Game = (*App)(nil)

// New builds the app and loads its fonts.
func New(opts Options) (*App, error) {
	labelSrc, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load label font: %w", err)
	}
	monoSrc, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load debug font: %w", err)
	}

	return &App{
		opts:      opts,
		sprites:   newSpriteSet(),
		labelFace: &text.GoTextFace{Source: labelSrc, Size: 13},
		monoFace:  &text.GoTextFace{Source: monoSrc, Size: 12},
		errorFace: &text.GoTextFace{Source: labelSrc, Size: 18},
	}, nil
}

// Run opens the window and blocks until it closes.
func (a *App) Run() error {
	ebiten.SetWindowTitle(a.opts.Title)
	ebiten.SetWindowSize(a.opts.Width, a.opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	return ebiten.RunGame(a)
}

// hotkeys maps keys to view toggles, mirroring the original's view menu.
var hotkeys = []struct {
	key    ebiten.Key
	toggle func(*settings.View)
}{
	{ebiten.KeyG, func(v *settings.View) { v.Grid = !v.Grid }},
	{ebiten.KeyL, func(v *settings.View) { v.Labels = !v.Labels }},
	{ebiten.KeyH, func(v *settings.View) { v.Height = !v.Height }},
	{ebiten.KeyF, func(v *settings.View) { v.Fingers = !v.Fingers }},
	{ebiten.KeyA, func(v *settings.View) { v.Arrows = !v.Arrows }},
	{ebiten.KeyD, func(v *settings.View) { v.Debug = !v.Debug }},
}

// Update handles shutdown and the view hotkeys.
func (a *App) Update() error {
	select {
	case <-a.opts.Shutdown:
		a.opts.Logger.Info().Msg("Shutdown requested, closing window")
		return ebiten.Termination
	default:
	}

	toggled := false
	for _, hk := range hotkeys {
		if inpututil.IsKeyJustPressed(hk.key) {
			a.opts.Settings.Update(func(s *settings.Settings) { hk.toggle(&s.View) })
			toggled = true
		}
	}
	if toggled && a.opts.PersistView != nil {
		a.opts.PersistView(a.opts.Settings.Current().View)
	}
	return nil
}

// Draw renders one frame from the latest store snapshot.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	if a.opts.InitError != nil {
		a.drawErrorScreen(screen, a.opts.InitError)
		return
	}

	st := a.opts.Settings.Current()
	snap := a.opts.Store.Snapshot()
	bounds := screen.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())

	if st.View.Grid {
		a.drawGrid(screen, w, h, st.GridSpacing)
	}
	a.drawDevices(screen, snap, st, w, h)
	if st.View.Fingers {
		a.drawFingersOverlay(screen, snap, w)
	}
	if st.View.Debug {
		a.drawDebugOverlay(screen, snap, h)
	}
}

// Layout keeps the logical canvas equal to the window size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
