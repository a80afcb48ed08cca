package irpointer

import (
	"testing"
	"time"
)

func tick(f *Frame, dt time.Duration) *Frame {
	f.DeltaT = dt
	return f
}

func TestSmootherIdempotentUnderZeroMotion(t *testing.T) {
	s := NewSmootherStage()
	fixed := FVec2{X: 500, Y: 400}

	var out *Frame
	for range 20 {
		prev := tick(withDots(baseFrame(), 1, fixed, fixed), 10*time.Millisecond)
		out = s.Process(prev)
	}

	if !almostVec(out.Dots[0], fixed) {
		t.Fatalf("stationary input drifted to %v, want %v", out.Dots[0], fixed)
	}
}

func TestSmootherFreezesThenBlendsOnClick(t *testing.T) {
	s := NewSmootherStage()
	s.FreezeDelay = 0.1
	s.BlendDelay = 0.25
	s.MouseButtonIDs = []int{1}

	dt := 10 * time.Millisecond
	for range 10 {
		s.Process(tick(withDots(baseFrame(), 1, FVec2{X: 500}, FVec2{X: 500}), dt))
	}

	// click asserted this tick: timer should jump to freeze+blend
	clickFrame := tick(withDots(baseFrame(), 1, FVec2{X: 500}, FVec2{X: 500}), dt)
	setButtons(clickFrame, []ButtonState{{Namespace: NamespaceHostKey, ID: 1, Pressed: true}})
	s.Process(clickFrame)

	if s.timer <= s.BlendDelay {
		t.Fatalf("timer = %v after click, want > BlendDelay (%v)", s.timer, s.BlendDelay)
	}

	// still within the freeze window: pos_alpha should be 1 (frozen)
	frozenFrame := tick(withDots(baseFrame(), 1, FVec2{X: 500}, FVec2{X: 500}), dt)
	setButtons(frozenFrame, []ButtonState{{Namespace: NamespaceHostKey, ID: 1, Pressed: true}})
	before := s.timer
	s.Process(frozenFrame)
	if s.timer >= before {
		t.Fatalf("timer did not decay during freeze window: %v -> %v", before, s.timer)
	}
}

func TestSmootherReseedsAfterIRLoss(t *testing.T) {
	s := NewSmootherStage()
	dt := 10 * time.Millisecond

	s.Process(tick(withDots(baseFrame(), 1, FVec2{X: 500}, FVec2{X: 500}), dt))
	s.Process(tick(withDots(baseFrame(), 0), dt))

	if s.hasPos {
		t.Fatalf("smoother retained stale position state after losing IR")
	}
}
