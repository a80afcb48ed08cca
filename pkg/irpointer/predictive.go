package irpointer

import "math"

// measureStd is the assumed measurement noise standard deviation (sensor
// units) used by the log-likelihood estimator, per axis.
var measureStd = FVec2{X: 15, Y: 15}

// logLikelihoodFloor keeps rebased log-likelihoods numerically bounded.
const logLikelihoodFloor = -100000

// PredictiveStage maintains a locked inter-spot distance and, once only one
// spot remains visible after clustering, disambiguates whether it is the
// left emitter, the right emitter, or their midpoint using a Bayesian
// log-likelihood estimator, reconstructing the full pair from that belief.
type PredictiveStage struct {
	lockedDistance float64 // negative: unlocked

	left, right, center    FVec2
	lLeft, lRight, lCenter float64
}

// NewPredictiveStage returns a stage with no locked distance.
func NewPredictiveStage() *PredictiveStage {
	return &PredictiveStage{lockedDistance: -1}
}

func (p *PredictiveStage) Process(prev *Frame) *Frame {
	f := cloneFrame(prev)

	cluster, ok := prev.History[ClusterCheckpoint]
	if !ok {
		return f
	}
	n := cluster.NValidIR
	if n == 2 && cluster.Dots[0] == cluster.Dots[1] {
		n = 1
	}

	switch n {
	case 2:
		p.left, p.right = f.Dots[0], f.Dots[1]
		p.center = Mid(p.left, p.right)
		p.lLeft, p.lRight, p.lCenter = 0, 0, 0
		p.lockedDistance = Dist(p.left, p.right)

	case 1:
		if p.lockedDistance < 0 {
			return f
		}
		m := Mid(f.Dots[0], f.Dots[1])

		p.lLeft += logNormal2d(m.Sub(p.left))
		p.lRight += logNormal2d(m.Sub(p.right))
		p.lCenter += logNormal2d(m.Sub(p.center))

		maxL := math.Max(p.lLeft, math.Max(p.lRight, p.lCenter))
		p.lLeft = math.Max(p.lLeft-maxL, logLikelihoodFloor)
		p.lRight = math.Max(p.lRight-maxL, logLikelihoodFloor)
		p.lCenter = math.Max(p.lCenter-maxL, logLikelihoodFloor)

		wLeft, wRight, wCenter := math.Exp(p.lLeft), math.Exp(p.lRight), math.Exp(p.lCenter)
		z := wLeft + wRight + wCenter
		predicted := p.left.Scale(wLeft).Add(p.right.Scale(wRight)).Add(p.center.Scale(wCenter)).Scale(1 / z)

		offset := m.Sub(predicted)
		p.left = p.left.Add(offset)
		p.right = p.right.Add(offset)
		p.center = p.center.Add(offset)
		predicted = predicted.Add(offset)

		d := p.lockedDistance
		switch {
		case p.lLeft >= 0:
			f.Dots[0], f.Dots[1] = predicted, predicted.Add(FVec2{X: d})
		case p.lRight >= 0:
			f.Dots[0], f.Dots[1] = predicted.Sub(FVec2{X: d}), predicted
		default:
			f.Dots[0], f.Dots[1] = predicted.Sub(FVec2{X: d / 2}), predicted.Add(FVec2{X: d / 2})
		}

		p.left, p.right = f.Dots[0], f.Dots[1]
		p.center = Mid(p.left, p.right)
		f.NValidIR = 2

	case 0:
		p.lockedDistance = -1
	}

	return f
}

// logNormal2d evaluates the approximate 2D Gaussian log-density of
// observing d away from a hypothesis, with x/y treated independently under
// measureStd.
func logNormal2d(d FVec2) float64 {
	dx := d.X / measureStd.X
	dy := d.Y / measureStd.Y
	return -0.5*(dx*dx+dy*dy) - (math.Sqrt(2*math.Pi) + measureStd.X + measureStd.Y)
}
