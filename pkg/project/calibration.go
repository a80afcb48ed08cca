// Package project turns a pipeline frame's tracking dots into absolute
// screen coordinates and host-key writes: the affine calibration matrix,
// the configured screen sub-area clamp, and the virtual-pointer facade
// that the driver calls once per tick.
package project

import "github.com/friedelschoen/wiimouse/pkg/irpointer"

// Vec3 is a 3-component affine coefficient row (x, y, constant), matching
// the homogeneous (mx, my, 1) convention the pipeline's FVec3.Dot2 uses.
type Vec3 = irpointer.FVec3

// Vec2 is a 2-D point in normalized [0,10000] screen space.
type Vec2 = irpointer.FVec2

// Calibration owns the affine mapping from IR midpoint to screen space and
// the target sub-rectangle projection output is clamped into. It is
// mutated only by the driver's calibration/screen-area control-socket
// handlers or by initial config load; recomputing MouseMatX/MouseMatY is
// the only derived state and happens on every mutation.
type Calibration struct {
	// CalX, CalY are the 2x3 affine rows mapping a homogeneous IR midpoint
	// to normalized [0,10000] screen space.
	CalX, CalY Vec3

	// ScreenTL, ScreenBR bound the sub-rectangle of [0,10000]^2 that
	// projection output is clamped into.
	ScreenTL, ScreenBR Vec2

	// MouseMatX, MouseMatY are derived once per CalX/CalY/ScreenTL/ScreenBR
	// change; projection reduces to two dot products against these.
	MouseMatX, MouseMatY Vec3
}

// DefaultCalibration returns the factory mapping for a 1024x768 IR
// sensor projected onto the full [0,10000]^2 screen area.
func DefaultCalibration() *Calibration {
	c := &Calibration{
		CalX:     Vec3{X: -10000.0 / 1024, Y: 0, Z: 10000},
		CalY:     Vec3{X: 0, Y: 10000.0 / 768, Z: 0},
		ScreenTL: Vec2{X: 0, Y: 0},
		ScreenBR: Vec2{X: 10000, Y: 10000},
	}
	c.recompute()
	return c
}

// SetCalibration replaces the affine rows and recomputes the mouse matrix.
func (c *Calibration) SetCalibration(x, y Vec3) {
	c.CalX = x
	c.CalY = y
	c.recompute()
}

// SetScreenArea replaces the target sub-rectangle, clamping both corners
// into [0,10000] and ordering them, then recomputes the mouse matrix.
func (c *Calibration) SetScreenArea(tl, br Vec2) {
	left, right := tl.X, br.X
	if left > right {
		left, right = right, left
	}
	top, bottom := tl.Y, br.Y
	if top > bottom {
		top, bottom = bottom, top
	}
	c.ScreenTL = Vec2{X: irpointer.Clamp(left, 0, 10000), Y: irpointer.Clamp(top, 0, 10000)}
	c.ScreenBR = Vec2{X: irpointer.Clamp(right, 0, 10000), Y: irpointer.Clamp(bottom, 0, 10000)}
	c.recompute()
}

// recompute derives MouseMatX/MouseMatY from CalX/CalY and the screen
// sub-area:
//
//	mouse_mat_x = cal_x * (screen_br.x - screen_tl.x) / 10000
//	mouse_mat_y = cal_y * (screen_br.y - screen_tl.y) / 10000
//	mouse_mat_x.z += screen_tl.x
//	mouse_mat_y.z += screen_tl.y
func (c *Calibration) recompute() {
	sx := (c.ScreenBR.X - c.ScreenTL.X) / 10000
	sy := (c.ScreenBR.Y - c.ScreenTL.Y) / 10000
	c.MouseMatX = Vec3{X: c.CalX.X * sx, Y: c.CalX.Y * sx, Z: c.CalX.Z*sx + c.ScreenTL.X}
	c.MouseMatY = Vec3{X: c.CalY.X * sy, Y: c.CalY.Y * sy, Z: c.CalY.Z*sy + c.ScreenTL.Y}
}

// Project computes the clamped screen coordinate for a frame with at least
// one valid IR dot, using the midpoint of its first NValidIR dots. ok is
// false if the frame has no valid IR (nothing to project).
func (c *Calibration) Project(f *irpointer.Frame) (screen Vec2, ok bool) {
	if f.NValidIR <= 0 {
		return Vec2{}, false
	}
	var mid Vec2
	for i := 0; i < f.NValidIR; i++ {
		mid = mid.Add(f.Dots[i])
	}
	mid = mid.Scale(1 / float64(f.NValidIR))

	x := irpointer.Clamp(c.MouseMatX.Dot2(mid), c.ScreenTL.X, c.ScreenBR.X)
	y := irpointer.Clamp(c.MouseMatY.Dot2(mid), c.ScreenTL.Y, c.ScreenBR.Y)
	return Vec2{X: x, Y: y}, true
}
