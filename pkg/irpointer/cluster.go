package irpointer

// ClusterStage reduces up to four noisy IR candidates to an ordered
// (left, right) pair, seeded by the previous tick's centroids, and
// publishes its output under ClusterCheckpoint for later stages (notably
// PredictiveStage) to read.
type ClusterStage struct {
	// DefaultDistance is the point-collapse threshold scale; collapse
	// fires when the two centroids are within half of it.
	DefaultDistance float64

	// EnablePointCollapse disables collapsing near-coincident centroids
	// to a single dot; turned off during on-screen calibration so both
	// sensor-bar spots stay independently visible.
	EnablePointCollapse bool

	left, right FVec2
	seeded      bool
}

// NewClusterStage returns a stage with the default collapse distance and
// point collapse enabled.
func NewClusterStage() *ClusterStage {
	return &ClusterStage{DefaultDistance: 100, EnablePointCollapse: true}
}

func (c *ClusterStage) Process(prev *Frame) *Frame {
	f := cloneFrame(prev)

	candidates := make([]FVec2, 0, 4)
	for i := 0; i < prev.NValidIR && i < 4; i++ {
		candidates = append(candidates, prev.Dots[i])
	}
	// Only the clustering stage's own input validity matters; prev.NValidIR
	// here is whatever the Source stage populated (raw IR slot count), not
	// a downstream reinterpretation.

	switch len(candidates) {
	case 0:
		f.NValidIR = 0
		c.seeded = false
	case 1:
		f.NValidIR = 1
		f.Dots[0] = candidates[0]
		f.Dots[1] = candidates[0]
		c.left, c.right = candidates[0], candidates[0]
		c.seeded = true
	default:
		left, right := c.kmeans(candidates)
		c.left, c.right, c.seeded = left, right, true

		if c.EnablePointCollapse && Dist(left, right) < 0.5*c.DefaultDistance {
			mean := Mid(left, right)
			f.NValidIR = 1
			f.Dots[0] = mean
			f.Dots[1] = mean
		} else {
			f.NValidIR = 2
			f.Dots[0] = left
			f.Dots[1] = right
		}
	}

	f.History = withCheckpoint(prev, ClusterCheckpoint, f)
	return f
}

// kmeans runs exactly two iterations of 2-means over candidates, seeded
// with the previous tick's left/right centroids (nudging right if they
// coincide), recovering from empty clusters by copying the surviving
// centroid and then overwriting it with the farthest assigned candidate.
func (c *ClusterStage) kmeans(candidates []FVec2) (left, right FVec2) {
	left, right = c.left, c.right
	if !c.seeded {
		left, right = candidates[0], candidates[0]
	}
	if left == right {
		right = right.Add(FVec2{X: 1})
	}

	for range 2 {
		var leftPts, rightPts []FVec2
		for _, p := range candidates {
			if Dist(p, left) <= Dist(p, right) {
				leftPts = append(leftPts, p)
			} else {
				rightPts = append(rightPts, p)
			}
		}

		if len(leftPts) == 0 {
			left = right
			leftPts = []FVec2{farthest(candidates, right)}
		}
		if len(rightPts) == 0 {
			right = left
			rightPts = []FVec2{farthest(candidates, left)}
		}

		left = centroid(leftPts)
		right = centroid(rightPts)
	}
	return left, right
}

func centroid(pts []FVec2) FVec2 {
	var sum FVec2
	for _, p := range pts {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(pts)))
}

func farthest(pts []FVec2, from FVec2) FVec2 {
	best := pts[0]
	bestDist := Dist(pts[0], from)
	for _, p := range pts[1:] {
		if d := Dist(p, from); d > bestDist {
			best, bestDist = p, d
		}
	}
	return best
}
