package project

import (
	"math"
	"testing"

	"github.com/friedelschoen/wiimouse/pkg/irpointer"
)

func almost(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func frameWithDots(dots ...Vec2) *irpointer.Frame {
	f := &irpointer.Frame{NValidIR: len(dots)}
	for i, d := range dots {
		f.Dots[i] = d
	}
	return f
}

// TestCenterPointing checks that two IR spots straddling the sensor
// center project to the screen-space center.
func TestCenterPointing(t *testing.T) {
	c := DefaultCalibration()
	f := frameWithDots(Vec2{X: 462, Y: 384}, Vec2{X: 562, Y: 384})

	screen, ok := c.Project(f)
	if !ok {
		t.Fatalf("Project reported no valid IR")
	}
	if !almost(screen.X, 5000, 20) {
		t.Errorf("x = %v, want ~5000", screen.X)
	}
	if !almost(screen.Y, 5000, 20) {
		t.Errorf("y = %v, want ~5000", screen.Y)
	}
}

// TestLeftEdge checks a pair near the sensor's left edge against the
// sign-inverted x calibration.
func TestLeftEdge(t *testing.T) {
	c := DefaultCalibration()
	f := frameWithDots(Vec2{X: 100, Y: 384}, Vec2{X: 200, Y: 384})

	screen, ok := c.Project(f)
	if !ok {
		t.Fatalf("Project reported no valid IR")
	}
	if !almost(screen.X, 8535, 30) {
		t.Errorf("x = %v, want ~8535", screen.X)
	}
	if !almost(screen.Y, 5000, 20) {
		t.Errorf("y = %v, want ~5000", screen.Y)
	}
}

// TestScreenAreaRescale checks that halving the screen area halves the
// projected coordinate for the same IR input.
func TestScreenAreaRescale(t *testing.T) {
	c := DefaultCalibration()
	c.SetScreenArea(Vec2{X: 0, Y: 0}, Vec2{X: 5000, Y: 5000})

	f := frameWithDots(Vec2{X: 462, Y: 384}, Vec2{X: 562, Y: 384})
	screen, ok := c.Project(f)
	if !ok {
		t.Fatalf("Project reported no valid IR")
	}
	if !almost(screen.X, 2500, 20) {
		t.Errorf("x = %v, want ~2500", screen.X)
	}
	if !almost(screen.Y, 2500, 20) {
		t.Errorf("y = %v, want ~2500", screen.Y)
	}
}

func TestProjectNoValidIR(t *testing.T) {
	c := DefaultCalibration()
	f := &irpointer.Frame{NValidIR: 0}
	if _, ok := c.Project(f); ok {
		t.Fatalf("Project should report no valid IR")
	}
}

func TestSetScreenAreaOrdersCorners(t *testing.T) {
	c := DefaultCalibration()
	c.SetScreenArea(Vec2{X: 5000, Y: 8000}, Vec2{X: 1000, Y: 2000})
	if c.ScreenTL.X != 1000 || c.ScreenBR.X != 5000 {
		t.Errorf("x corners not ordered: tl=%v br=%v", c.ScreenTL.X, c.ScreenBR.X)
	}
	if c.ScreenTL.Y != 2000 || c.ScreenBR.Y != 8000 {
		t.Errorf("y corners not ordered: tl=%v br=%v", c.ScreenTL.Y, c.ScreenBR.Y)
	}
}

func TestSetScreenAreaClampsToNormalizedRange(t *testing.T) {
	c := DefaultCalibration()
	c.SetScreenArea(Vec2{X: -500, Y: -500}, Vec2{X: 20000, Y: 20000})
	if c.ScreenTL.X != 0 || c.ScreenTL.Y != 0 {
		t.Errorf("top-left not clamped to 0: %v", c.ScreenTL)
	}
	if c.ScreenBR.X != 10000 || c.ScreenBR.Y != 10000 {
		t.Errorf("bottom-right not clamped to 10000: %v", c.ScreenBR)
	}
}
