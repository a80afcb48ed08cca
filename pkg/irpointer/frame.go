// Package irpointer implements the signal-processing pipeline that turns
// raw Wii Remote samples into a stable tracking pair and a set of host-key
// edge events: clustering, un-rotation, predictive dual-IR tracking,
// temporal smoothing and button mapping.
package irpointer

import "time"

// MaxButtons bounds the per-frame button list, matching the fixed-size
// button table the driver loop packs from remote + mapper output every
// tick.
const MaxButtons = 32

// ButtonNamespace distinguishes a Frame button entry's id space.
type ButtonNamespace int

const (
	// NamespaceNone is the zero value and marks the sentinel / unused
	// tail of a Frame's Buttons array.
	NamespaceNone ButtonNamespace = iota
	// NamespaceRemote ids are wiimouse.Key values (the 11 core remote
	// buttons).
	NamespaceRemote
	// NamespaceHostKey ids are virtdev.Key values (opaque host keycodes).
	NamespaceHostKey
)

// ButtonState is one (namespace, id, pressed) entry in a Frame's button
// list.
type ButtonState struct {
	Namespace ButtonNamespace
	ID        int
	Pressed   bool
}

// valid reports whether this entry is a real button rather than the
// trailing sentinel.
func (b ButtonState) valid() bool {
	return b.Namespace != NamespaceNone
}

// ClusterCheckpoint is the history tag the clustering stage publishes its
// own output frame under, so the predictive tracker can distinguish "two
// spots observed this tick" from "one spot after collapse".
const ClusterCheckpoint = "cluster"

// Frame is the pipeline's per-tick state object. Every stage reads the
// previous Frame and produces its own by copying first, then overwriting
// the fields it transforms. Frames are single-writer: a stage must never
// mutate the Frame it was handed.
type Frame struct {
	// DeltaT is the elapsed time since the previous tick.
	DeltaT time.Duration

	// Accel is the accelerometer reading for this tick, in device-native
	// units converted to float64.
	Accel FVec3

	// NValidIR is the number of meaningful entries in Dots. The Source
	// frame carries the raw count of valid IR slots (up to 4); from the
	// clustering stage on it is in {0,1,2}.
	NValidIR int

	// Dots holds up to four tracking points; only Dots[:NValidIR] is
	// meaningful. Once NValidIR==2, Dots[0] is left of Dots[1].
	Dots [4]FVec2

	// Buttons is a bounded, sentinel-terminated list of button edges.
	Buttons [MaxButtons]ButtonState

	// History maps a checkpoint tag to the frame a prior stage published
	// under that name, so a later stage can read an intermediate result
	// (the predictive tracker needs the pre-collapse cluster output).
	History map[string]*Frame
}

// cloneFrame returns a shallow copy of prev: its Dots and Buttons arrays
// are independent of prev's, while the History map is shared.
func cloneFrame(prev *Frame) *Frame {
	f := new(Frame)
	*f = *prev
	return f
}

// withCheckpoint returns a copy of the history map with tag bound to f,
// leaving prev's own map untouched.
func withCheckpoint(prev *Frame, tag string, f *Frame) map[string]*Frame {
	h := make(map[string]*Frame, len(prev.History)+1)
	for k, v := range prev.History {
		h[k] = v
	}
	h[tag] = f
	return h
}

// setButtons overwrites f.Buttons with entries, sentinel-padding and
// capping at MaxButtons.
func setButtons(f *Frame, entries []ButtonState) {
	f.Buttons = [MaxButtons]ButtonState{}
	for i, e := range entries {
		if i >= MaxButtons {
			break
		}
		f.Buttons[i] = e
	}
}

// pressed reports whether (ns, id) is present and pressed in f.Buttons.
func pressed(f *Frame, ns ButtonNamespace, id int) bool {
	for _, b := range f.Buttons {
		if !b.valid() {
			break
		}
		if b.Namespace == ns && b.ID == id && b.Pressed {
			return true
		}
	}
	return false
}

// Module is one stage of the pipeline: it reads the previous Frame and
// produces its own. Stages are free to hold private state that persists
// across ticks (clustering seeds, locked distance, smoother history); only
// the shape of Process is fixed, matching a narrow capability interface
// rather than a class hierarchy.
type Module interface {
	Process(prev *Frame) *Frame
}

// Pipeline runs an ordered, fixed list of stages, each consuming the
// previous stage's output frame. The driver builds the Source frame
// directly from a remote poll and feeds it in; the Sink (projection and
// virtual-pointer writes) reads the frame Run returns. Neither Source nor
// Sink is itself a Module: both are plain data movement at the pipeline's
// edges, not a transformation of pipeline state.
type Pipeline struct {
	Stages []Module
}

// NewPipeline builds a Pipeline in the fixed order
// Cluster -> ButtonMap -> Unrotate -> PredictiveDualIR -> Smoother.
func NewPipeline(cluster *ClusterStage, buttons *ButtonMapStage, unrotate *UnrotateStage, predictive *PredictiveStage, smoother *SmootherStage) *Pipeline {
	return &Pipeline{Stages: []Module{cluster, buttons, unrotate, predictive, smoother}}
}

// Run feeds source through every stage in order and returns the final
// frame.
func (p *Pipeline) Run(source *Frame) *Frame {
	frame := source
	for _, stage := range p.Stages {
		frame = stage.Process(frame)
	}
	return frame
}
