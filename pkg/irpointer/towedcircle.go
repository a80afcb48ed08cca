package irpointer

// LastLeftRightCheckpoint is the history tag TowedCircleStage publishes its
// input under, so a downstream consumer can inspect the pre-transform
// positions.
const LastLeftRightCheckpoint = "lastLeftRight"

// TowedCircleStage dampens hand tremor by collapsing the tracked pair to
// its center of mass and only "towing" a persistent circle's center by
// the amount its radius is exceeded, rather than snapping straight to the
// new mean. It is not part of the default pipeline's fixed stage list and
// is exposed for callers that want to compose it in.
type TowedCircleStage struct {
	// Radius is the circle's radius in aspect-corrected units, scaled by
	// 1024 to match the sensor-extent convention. Radius <= 0
	// disables the stage entirely (passthrough).
	Radius      float64
	AspectRatio float64

	hasCircle bool
	center    FVec2
}

// NewTowedCircleStage returns a stage with the stock radius and aspect.
func NewTowedCircleStage() *TowedCircleStage {
	return &TowedCircleStage{Radius: 0.005, AspectRatio: 1024.0 / 768.0}
}

func (t *TowedCircleStage) Process(prev *Frame) *Frame {
	f := cloneFrame(prev)
	f.History = withCheckpoint(prev, LastLeftRightCheckpoint, prev)

	if prev.NValidIR <= 0 || t.Radius <= 0 {
		t.hasCircle = false
		return f
	}

	var sum FVec2
	for i := 0; i < prev.NValidIR; i++ {
		sum = sum.Add(prev.Dots[i])
	}
	mean := sum.Scale(1 / float64(prev.NValidIR))

	if !t.hasCircle {
		t.center = mean
		t.hasCircle = true
	} else {
		delta := mean.Sub(t.center)
		delta.Y *= t.AspectRatio
		if d := delta.Len(); d > t.Radius*1024 {
			excess := d - t.Radius*1024
			delta = delta.Scale(excess / d)
			delta.Y /= t.AspectRatio
			t.center = t.center.Add(delta)
		}
	}

	f.NValidIR = 1
	f.Dots[0] = t.center
	return f
}
