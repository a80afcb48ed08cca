package irpointer

import "math"

const epsFloat = 1e-6

func almost(a, b float64) bool {
	return math.Abs(a-b) <= epsFloat
}

func almostVec(a, b FVec2) bool {
	return almost(a.X, b.X) && almost(a.Y, b.Y)
}

func baseFrame() *Frame {
	return &Frame{History: map[string]*Frame{}}
}
