package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/trackedspace/trackviz/internal/models"
	"github.com/trackedspace/trackviz/internal/settings"
	"github.com/trackedspace/trackviz/pkg/openvr"
	"github.com/trackedspace/trackviz/pkg/projection"
)

// drawDevices paints a marker per tracked device, plus labels and facing
// arrows where enabled.
func (a *App) drawDevices(screen *ebiten.Image, snap models.Snapshot, st settings.Settings, w, h float64) {
	for i := range snap.Devices {
		device := &snap.Devices[i]
		clr, radius := markerStyle(device)
		sx, sy := projection.WorldToScreen(device.Position, w, h, st.MetersToPixels)

		if st.View.Arrows && device.Class == openvr.DeviceClassController {
			a.drawArrow(screen, device, clr, sx, sy, st)
		}

		sprite := a.sprites.marker(clr, radius)
		op := &ebiten.DrawImageOptions{}
		bounds := sprite.Bounds()
		op.GeoM.Translate(sx-float64(bounds.Dx())/2, sy-float64(bounds.Dy())/2)
		screen.DrawImage(sprite, op)

		if st.View.Labels {
			a.drawText(screen, a.deviceLabel(device, st), a.labelFace,
				sx+radius+4, sy-a.labelFace.Size/2, colorLabel)
		}
	}
}

// deviceLabel is the marker caption, with the height readout on the headset.
func (a *App) deviceLabel(device *models.TrackedDevice, st settings.Settings) string {
	label := device.Label()
	if device.Class == openvr.DeviceClassHMD && st.View.Height {
		label += " | " + projection.FormatHeight(device.Position.Y())
	}
	return label
}

// drawArrow paints the controller's facing direction: a shaft from the
// marker plus a rotated head sprite at the tip.
func (a *App) drawArrow(screen *ebiten.Image, device *models.TrackedDevice, clr color.RGBA,
	sx, sy float64, st settings.Settings) {
	dx, dy := projection.ArrowDelta(device.Forward, st.ArrowLengthMeters, st.MetersToPixels)
	if dx == 0 && dy == 0 {
		return
	}

	ex, ey := sx+dx, sy+dy
	vector.StrokeLine(screen, float32(sx), float32(sy), float32(ex), float32(ey), 2, clr, true)

	head := a.sprites.arrowHead(clr)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-arrowHeadSize, -arrowHeadSize/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(ex, ey)
	screen.DrawImage(head, op)
}

// drawText draws s with its top-left corner at (x, y).
func (a *App) drawText(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}
