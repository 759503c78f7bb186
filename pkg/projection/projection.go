// Package projection converts runtime pose matrices into world vectors and
// maps them onto the visualizer's top-down canvas.
package projection

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/trackedspace/trackviz/pkg/openvr"
)

const inchesPerMeter = 39.3701

// Position extracts the translation of a device-to-absolute pose matrix.
func Position(m openvr.HmdMatrix34) mgl64.Vec3 {
	return mgl64.Vec3{float64(m.M[0][3]), float64(m.M[1][3]), float64(m.M[2][3])}
}

// Forward extracts the device's facing direction. The runtime's convention
// points -Z out of the device, so the third rotation row is negated.
func Forward(m openvr.HmdMatrix34) mgl64.Vec3 {
	f := mgl64.Vec3{-float64(m.M[2][0]), -float64(m.M[2][1]), -float64(m.M[2][2])}
	if f.Len() == 0 {
		return mgl64.Vec3{0, 0, 1}
	}
	return f.Normalize()
}

// WorldToScreen maps a world position onto a w x h canvas looking straight
// down: x maps right, z maps up the screen, y (height) is discarded. The
// play-area origin lands at the canvas center.
func WorldToScreen(p mgl64.Vec3, w, h, metersToPixels float64) (float64, float64) {
	return w/2 + p.X()*metersToPixels, h/2 - p.Z()*metersToPixels
}

// ArrowDelta returns the screen-space offset of a facing arrow of the given
// length for a world forward vector.
func ArrowDelta(forward mgl64.Vec3, lengthMeters, metersToPixels float64) (float64, float64) {
	return forward.X() * lengthMeters * metersToPixels,
		-forward.Z() * lengthMeters * metersToPixels
}

// FormatHeight renders a height in meters as "N.n cm / F ft I in".
func FormatHeight(meters float64) string {
	cm := meters * 100
	totalInches := int(math.Round(meters * inchesPerMeter))
	feet, inches := totalInches/12, totalInches%12
	return fmt.Sprintf("%.1f cm / %d ft %d in", cm, feet, inches)
}
