package irpointer

// SensorExtents is the Wii Remote IR camera's native resolution; un-rotation
// pivots around its center.
var SensorExtents = FVec2{X: 1024, Y: 768}

// UnrotateStage removes wrist-roll from the tracking pair using gravity
// (Step A) followed by inter-spot geometry (Step C), re-asserting
// left/right ordering after each rotation (Steps B).
type UnrotateStage struct{}

func (u *UnrotateStage) Process(prev *Frame) *Frame {
	f := cloneFrame(prev)
	center := SensorExtents.Scale(0.5)

	u.usingAccel(f, center)
	assignLeftRight(f)
	u.usingDualPoint(f, center)
	assignLeftRight(f)

	return f
}

// usingAccel applies R1 = [[az,ax],[-ax,az]] around center to every valid
// dot, where (ax,_,az) is the accelerometer vector with its y-component
// zeroed and normalized. Skipped if the zeroed vector is too short to
// normalize (near-vertical hold is ambiguous, not a translational event).
func (u *UnrotateStage) usingAccel(f *Frame, center FVec2) {
	flat := FVec2{X: f.Accel.X, Y: f.Accel.Z}
	unit, ok := flat.Unit()
	if !ok {
		return
	}
	ax, az := unit.X, unit.Y
	for i := range f.NValidIR {
		f.Dots[i] = RotateAround(f.Dots[i], center, az, ax, -ax, az)
	}
}

// usingDualPoint applies R2 = [[hx,hy],[-hy,hx]] around center, where h is
// the unit vector from Dots[0] to Dots[1]. Only meaningful with exactly two
// tracked dots.
func (u *UnrotateStage) usingDualPoint(f *Frame, center FVec2) {
	if f.NValidIR != 2 {
		return
	}
	h, ok := f.Dots[1].Sub(f.Dots[0]).Unit()
	if !ok {
		return
	}
	for i := range 2 {
		f.Dots[i] = RotateAround(f.Dots[i], center, h.X, h.Y, -h.Y, h.X)
	}
}

func assignLeftRight(f *Frame) {
	if f.NValidIR == 2 && f.Dots[1].X < f.Dots[0].X {
		f.Dots[0], f.Dots[1] = f.Dots[1], f.Dots[0]
	}
}
