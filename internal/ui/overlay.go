package ui

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/trackedspace/trackviz/internal/models"
)

// fingersOrNone renders a hand's finger list for the overlay.
func fingersOrNone(hand models.HandGestures) string {
	if len(hand.Fingers) == 0 {
		return "None"
	}
	return strings.Join(hand.Fingers, ", ")
}

// modelOrClass prefers the runtime-reported model number for debug lines,
// falling back to the device class.
func modelOrClass(device *models.TrackedDevice) string {
	if device.Model != "" {
		return device.Model
	}
	return device.Class.String()
}

// drawFingersOverlay paints the per-hand gesture readout in the top-right
// corner.
func (a *App) drawFingersOverlay(screen *ebiten.Image, snap models.Snapshot, w float64) {
	lines := []string{
		"Left Controller: " + fingersOrNone(snap.LeftHand),
		"Right Controller: " + fingersOrNone(snap.RightHand),
	}
	y := 10.0
	for _, line := range lines {
		width, _ := text.Measure(line, a.labelFace, 0)
		a.drawText(screen, line, a.labelFace, w-12-width, y, colorFingers)
		y += a.labelFace.Size + 5
	}
}

// drawDebugOverlay paints raw controller states and the process stats sample
// over a dark backdrop in the bottom-left corner.
func (a *App) drawDebugOverlay(screen *ebiten.Image, snap models.Snapshot, h float64) {
	lines := []string{"DEBUG: raw controller states"}

	for i := range snap.Devices {
		device := &snap.Devices[i]
		if device.Input == nil {
			continue
		}

		axes := make([]string, 0, len(device.Input.Axes))
		for _, axis := range device.Input.Axes {
			axes = append(axes, fmt.Sprintf("%.2f", axis.X))
		}
		lines = append(lines, fmt.Sprintf("Device %d (%s): axes[%s] pressed=%d touched=%d",
			device.Index, modelOrClass(device), strings.Join(axes, ", "),
			device.Input.Pressed, device.Input.Touched))
	}

	if snap.Stats != nil {
		lines = append(lines, fmt.Sprintf("proc: cpu=%.1f%% rss=%.1fMB goroutines=%d",
			snap.Stats.CPUPercent, float64(snap.Stats.MemoryBytes)/(1<<20), snap.Stats.Goroutines))
	}

	const lineHeight = 16.0
	backdropHeight := lineHeight*float64(len(lines)) + 10
	vector.DrawFilledRect(screen, 5, float32(h-backdropHeight-5), 440, float32(backdropHeight),
		colorDebugBackdrop, false)

	y := h - backdropHeight
	for _, line := range lines {
		a.drawText(screen, line, a.monoFace, 12, y, colorDebugText)
		y += lineHeight
	}
}

// drawErrorScreen replaces the canvas with the runtime init failure, the way
// the visualizer reports an absent runtime without dying silently.
func (a *App) drawErrorScreen(screen *ebiten.Image, err error) {
	a.drawText(screen, "VR runtime not running or failed to initialize.", a.errorFace, 20, 20, colorError)
	a.drawText(screen, err.Error(), a.labelFace, 20, 52, colorLabel)
	a.drawText(screen, "Start SteamVR and relaunch, or switch runtime.backend to \"simulated\".",
		a.labelFace, 20, 76, colorDebugText)
}
