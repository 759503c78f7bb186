package ui

import (
	"image/color"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/trackedspace/trackviz/internal/models"
	"github.com/trackedspace/trackviz/pkg/openvr"
)

const arrowHeadSize = 12

// markerStyle maps a device to its marker color and radius in pixels.
func markerStyle(d *models.TrackedDevice) (color.RGBA, float64) {
	switch d.Class {
	case openvr.DeviceClassHMD:
		return colorHMD, 12
	case openvr.DeviceClassController:
		if d.Role == openvr.ControllerRoleLeftHand {
			return colorLeftController, 10
		}
		return colorRightController, 10
	case openvr.DeviceClassGenericTracker:
		return colorTracker, 8
	case openvr.DeviceClassTrackingReference:
		return colorBaseStation, 12
	default:
		return colorDevice, 8
	}
}

type markerKey struct {
	clr    color.RGBA
	radius float64
}

// spriteSet caches the pre-rendered marker dots and arrow heads. Rendering
// them once with gg keeps the per-frame path to plain image draws.
type spriteSet struct {
	markers map[markerKey]*ebiten.Image
	heads   map[color.RGBA]*ebiten.Image
}

func newSpriteSet() *spriteSet {
	return &spriteSet{
		markers: make(map[markerKey]*ebiten.Image),
		heads:   make(map[color.RGBA]*ebiten.Image),
	}
}

// marker returns (building on first use) the filled dot for a style.
func (s *spriteSet) marker(clr color.RGBA, radius float64) *ebiten.Image {
	key := markerKey{clr: clr, radius: radius}
	if img, ok := s.markers[key]; ok {
		return img
	}

	size := int(radius*2) + 2
	dc := gg.NewContext(size, size)
	dc.SetColor(clr)
	dc.DrawCircle(float64(size)/2, float64(size)/2, radius)
	dc.Fill()

	img := ebiten.NewImageFromImage(dc.Image())
	s.markers[key] = img
	return img
}

// arrowHead returns the triangular head sprite pointing along +X; callers
// rotate it into place with the draw GeoM.
func (s *spriteSet) arrowHead(clr color.RGBA) *ebiten.Image {
	if img, ok := s.heads[clr]; ok {
		return img
	}

	dc := gg.NewContext(arrowHeadSize, arrowHeadSize)
	dc.MoveTo(arrowHeadSize, arrowHeadSize/2)
	dc.LineTo(1, 1)
	dc.LineTo(1, arrowHeadSize-1)
	dc.ClosePath()
	dc.SetColor(clr)
	dc.Fill()

	img := ebiten.NewImageFromImage(dc.Image())
	s.heads[clr] = img
	return img
}
