package irpointer

import "math"

// FVec2 is a double-precision 2D point or vector. The pipeline works
// exclusively in float64; device-native integers are converted once at the
// Source boundary and only quantized back to integers at the control
// socket and virtual-pointer surfaces.
type FVec2 struct {
	X, Y float64
}

func (v FVec2) Add(o FVec2) FVec2 { return FVec2{v.X + o.X, v.Y + o.Y} }
func (v FVec2) Sub(o FVec2) FVec2 { return FVec2{v.X - o.X, v.Y - o.Y} }
func (v FVec2) Scale(s float64) FVec2 {
	return FVec2{v.X * s, v.Y * s}
}
func (v FVec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Unit returns v scaled to unit length, and false if v is too short to
// normalize reliably (length <= 0.01, matching the un-rotation stage's
// degenerate-input guard).
func (v FVec2) Unit() (FVec2, bool) {
	l := v.Len()
	if l <= 0.01 {
		return FVec2{}, false
	}
	return v.Scale(1 / l), true
}

// Mid returns the midpoint of a and b.
func Mid(a, b FVec2) FVec2 {
	return FVec2{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
}

// Dist is the Euclidean distance between a and b.
func Dist(a, b FVec2) float64 {
	return a.Sub(b).Len()
}

// RotateAround rotates p about center using the 2x2 matrix
// [[m00,m01],[m10,m11]].
func RotateAround(p, center FVec2, m00, m01, m10, m11 float64) FVec2 {
	rel := p.Sub(center)
	return FVec2{
		X: rel.X*m00 + rel.Y*m01,
		Y: rel.X*m10 + rel.Y*m11,
	}.Add(center)
}

// FVec3 is a double-precision 3-component vector, used for accelerometer
// samples and homogeneous affine coefficients.
type FVec3 struct {
	X, Y, Z float64
}

func (v FVec3) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Dot2 treats v as the row of a 2x3 affine matrix and p as a homogeneous
// (x, y, 1) point: v.X*p.X + v.Y*p.Y + v.Z*1.
func (v FVec3) Dot2(p FVec2) float64 {
	return v.X*p.X + v.Y*p.Y + v.Z
}

// Clamp restricts x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
