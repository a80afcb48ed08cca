package irpointer

import "math"

// SmootherStage applies an exponential moving average to the tracking pair
// and accelerometer, with a click-triggered freeze-then-blend schedule so
// the act of clicking doesn't itself drag the cursor.
type SmootherStage struct {
	// Enabled turns smoothing off entirely (e.g. during calibration),
	// passing the input through unchanged.
	Enabled bool

	// PosMix, PosMixClicked, AccelMix, AccelMixClicked are retention
	// fractions after a 1-second horizon, in [0,1).
	PosMix, PosMixClicked     float64
	AccelMix, AccelMixClicked float64

	// BlendDelay and FreezeDelay are seconds.
	BlendDelay, FreezeDelay float64

	// MouseButtonIDs are the HostKey ids that count as "clicked" for the
	// freeze/blend schedule (the virtual pointer's left/right/middle
	// button codes). Set by the driver at construction time; kept out of
	// the zero-value default so this package never needs to import
	// virtdev's Key constants.
	MouseButtonIDs []int

	hasAccel   bool
	lastAccel  FVec3
	hasPos     bool
	lastDots   [4]FVec2
	wasClicked bool
	timer      float64
}

// NewSmootherStage returns a stage with the default schedule: near-static
// tracking, a brief freeze and a quarter-second blend on click.
func NewSmootherStage() *SmootherStage {
	return &SmootherStage{
		Enabled:         true,
		PosMix:          0.00001,
		AccelMix:        0,
		PosMixClicked:   0.1,
		AccelMixClicked: 0,
		BlendDelay:      0.25,
		FreezeDelay:     0.1,
	}
}

func (s *SmootherStage) Process(prev *Frame) *Frame {
	f := cloneFrame(prev)

	clicked := s.anyMouseButtonPressed(prev)

	dt := prev.DeltaT.Seconds()
	s.timer = math.Max(s.timer-dt, 0)

	var accelAlpha float64
	if clicked && !s.wasClicked {
		s.timer = s.BlendDelay + s.FreezeDelay
	}
	if clicked {
		s.timer = math.Max(s.timer, s.BlendDelay)
		accelAlpha = math.Pow(s.AccelMixClicked, dt)
	} else {
		s.timer = math.Min(s.timer, s.BlendDelay)
		accelAlpha = math.Pow(s.AccelMix, dt)
	}
	s.wasClicked = clicked

	var posAlpha float64
	switch {
	case s.timer <= 0:
		posAlpha = s.PosMix
	case s.FreezeDelay > 0 && s.timer > s.BlendDelay:
		posAlpha = 1
	case s.BlendDelay <= 0:
		if clicked {
			posAlpha = s.PosMixClicked
		} else {
			posAlpha = s.PosMix
		}
	default:
		m := s.timer / s.BlendDelay
		posAlpha = s.PosMix*(1-m) + s.PosMixClicked*m
	}
	posAlpha = math.Pow(posAlpha, dt)

	if prev.NValidIR == 0 {
		s.hasPos = false
	}

	if prev.NValidIR > 0 && s.Enabled {
		if s.hasPos {
			for i := 0; i < prev.NValidIR; i++ {
				blended := f.Dots[i].Scale(1 - posAlpha).Add(s.lastDots[i].Scale(posAlpha))
				f.Dots[i] = blended
				s.lastDots[i] = blended
			}
		} else {
			for i := 0; i < prev.NValidIR; i++ {
				s.lastDots[i] = f.Dots[i]
			}
			s.hasPos = true
		}
	}

	if s.Enabled {
		if s.hasAccel {
			blended := FVec3{
				X: f.Accel.X*(1-accelAlpha) + s.lastAccel.X*accelAlpha,
				Y: f.Accel.Y*(1-accelAlpha) + s.lastAccel.Y*accelAlpha,
				Z: f.Accel.Z*(1-accelAlpha) + s.lastAccel.Z*accelAlpha,
			}
			f.Accel = blended
			s.lastAccel = blended
		} else {
			s.lastAccel = f.Accel
			s.hasAccel = true
		}
	}

	return f
}

// anyMouseButtonPressed reports whether any of MouseButtonIDs is currently
// pressed in the frame, matching the smoother's click-detection input.
func (s *SmootherStage) anyMouseButtonPressed(f *Frame) bool {
	for _, id := range s.MouseButtonIDs {
		if pressed(f, NamespaceHostKey, id) {
			return true
		}
	}
	return false
}
