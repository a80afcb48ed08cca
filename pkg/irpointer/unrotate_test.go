package irpointer

import "testing"

func TestUnrotateOrdersLeftRight(t *testing.T) {
	u := &UnrotateStage{}
	prev := withDots(baseFrame(), 2, FVec2{X: 700, Y: 400}, FVec2{X: 500, Y: 400})
	prev.Accel = FVec3{X: 0, Y: -1, Z: 0} // flat on y, no roll signal

	out := u.Process(prev)

	if out.Dots[0].X >= out.Dots[1].X {
		t.Fatalf("dots not left-to-right ordered: %v, %v", out.Dots[0], out.Dots[1])
	}
}

func TestUnrotateSkipsDegenerateAccel(t *testing.T) {
	u := &UnrotateStage{}
	prev := withDots(baseFrame(), 2, FVec2{X: 500, Y: 400}, FVec2{X: 700, Y: 400})
	prev.Accel = FVec3{X: 0, Y: 1, Z: 0} // zeroing y leaves (0,0): too short to normalize

	out := u.Process(prev)

	// Step A is a no-op; Step C (dual-point) is also near-identity since the
	// pair is already horizontal, so positions should be unchanged.
	if !almostVec(out.Dots[0], prev.Dots[0]) || !almostVec(out.Dots[1], prev.Dots[1]) {
		t.Fatalf("unrotate moved dots despite degenerate accel: got %v/%v, want %v/%v",
			out.Dots[0], out.Dots[1], prev.Dots[0], prev.Dots[1])
	}
}

func TestUnrotateSinglePointUnaffectedByDualPointStep(t *testing.T) {
	u := &UnrotateStage{}
	prev := withDots(baseFrame(), 1, FVec2{X: 500, Y: 400})
	prev.Accel = FVec3{X: 0, Y: -1, Z: 0}

	out := u.Process(prev)

	if out.NValidIR != 1 {
		t.Fatalf("NValidIR changed: %d", out.NValidIR)
	}
}
