package irpointer

import "testing"

func withDots(f *Frame, n int, dots ...FVec2) *Frame {
	f.NValidIR = n
	for i, d := range dots {
		f.Dots[i] = d
	}
	return f
}

func TestClusterSinglePointCollapses(t *testing.T) {
	c := NewClusterStage()
	prev := withDots(baseFrame(), 1, FVec2{X: 10, Y: 20})

	out := c.Process(prev)

	if out.NValidIR != 1 {
		t.Fatalf("NValidIR = %d, want 1", out.NValidIR)
	}
	if !almostVec(out.Dots[0], out.Dots[1]) {
		t.Fatalf("left/right not equal for a single point: %v vs %v", out.Dots[0], out.Dots[1])
	}
}

func TestClusterTwoDistinctPointsSeparate(t *testing.T) {
	c := NewClusterStage()
	c.DefaultDistance = 10 // far below the spots' separation, no collapse
	p, q := FVec2{X: 0, Y: 0}, FVec2{X: 500, Y: 0}
	prev := withDots(baseFrame(), 2, p, q)

	out := c.Process(prev)

	if out.NValidIR != 2 {
		t.Fatalf("NValidIR = %d, want 2", out.NValidIR)
	}
	got := map[FVec2]bool{out.Dots[0]: true, out.Dots[1]: true}
	if !got[p] || !got[q] {
		t.Fatalf("centroids %v/%v don't match input set {%v,%v}", out.Dots[0], out.Dots[1], p, q)
	}
}

func TestClusterFourPointsTwoPairsSeparate(t *testing.T) {
	c := NewClusterStage()
	c.DefaultDistance = 10
	left1 := FVec2{X: 0, Y: 0}
	left2 := FVec2{X: 1, Y: 0}
	right1 := FVec2{X: 500, Y: 0}
	right2 := FVec2{X: 501, Y: 0}
	prev := withDots(baseFrame(), 4, left1, right1, left2, right2)
	// seed near the left/right clusters so both iterations converge
	c.left, c.right, c.seeded = FVec2{X: 0}, FVec2{X: 500}, true

	out := c.Process(prev)

	if out.NValidIR != 2 {
		t.Fatalf("NValidIR = %d, want 2", out.NValidIR)
	}
	if out.Dots[0].X > 10 || out.Dots[1].X < 490 {
		t.Fatalf("clusters not separated: %v, %v", out.Dots[0], out.Dots[1])
	}
}

func TestClusterPointCollapseThreshold(t *testing.T) {
	c := NewClusterStage()
	c.DefaultDistance = 100
	p, q := FVec2{X: 0, Y: 0}, FVec2{X: 40, Y: 0} // dist 40 < 0.5*100
	prev := withDots(baseFrame(), 2, p, q)

	out := c.Process(prev)

	if out.NValidIR != 1 {
		t.Fatalf("expected collapse at distance 40 < 50, got NValidIR=%d", out.NValidIR)
	}
}

func TestClusterNoCandidatesInvalid(t *testing.T) {
	c := NewClusterStage()
	prev := withDots(baseFrame(), 0)

	out := c.Process(prev)

	if out.NValidIR != 0 {
		t.Fatalf("NValidIR = %d, want 0", out.NValidIR)
	}
}

func TestClusterPublishesCheckpoint(t *testing.T) {
	c := NewClusterStage()
	prev := withDots(baseFrame(), 1, FVec2{X: 1, Y: 1})

	out := c.Process(prev)

	if out.History[ClusterCheckpoint] != out {
		t.Fatalf("Cluster checkpoint not published to its own output frame")
	}
}
