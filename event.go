package wiimouse

import "time"

// Key identifies one of the eleven buttons on the Remote itself. Extension
// controllers report their own button sets on separate kernel devices and
// are not handled here.
type Key uint

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeyA
	KeyB
	KeyPlus
	KeyMinus
	KeyHome
	KeyOne
	KeyTwo
)

// KeyState is the value field of a kernel key event.
type KeyState uint

const (
	StateReleased KeyState = 0
	StatePressed  KeyState = 1
	StateRepeated KeyState = 2
)

// Vec2 is a 2D point in device-native integer units.
type Vec2 struct{ X, Y int32 }

// Vec3 is a 3-axis sample in device-native integer units.
type Vec3 struct{ X, Y, Z int32 }

// invalidIRCoord is what the kernel reports on both axes of an IR slot that
// currently tracks no source.
const invalidIRCoord = 1023

// IRSlot is one of the four tracking slots of the Remote's IR camera. As
// long as a single source stays visible it keeps its slot, so slot indices
// are stable across consecutive events.
type IRSlot Vec2

// Valid reports whether the slot currently tracks an IR source.
func (slot IRSlot) Valid() bool {
	return slot.X != invalidIRCoord || slot.Y != invalidIRCoord
}

// Event is one sample delivered by Remote.Poll. Use a type switch to get at
// the concrete payload.
type Event interface {
	// Timestamp is the kernel's event time.
	Timestamp() time.Time
}

// EventKey reports a core button changing state.
type EventKey struct {
	timestamp time.Time
	Code      Key
	State     KeyState
}

func (evt *EventKey) Timestamp() time.Time {
	return evt.timestamp
}

// EventAccel reports a complete accelerometer sample. Values are raw
// acceleration readings, not speeds.
type EventAccel struct {
	timestamp time.Time
	Accel     Vec3
}

func (evt *EventAccel) Timestamp() time.Time {
	return evt.timestamp
}

// EventIR reports the state of all four IR camera slots. Check each slot
// with IRSlot.Valid; a slot with no tracked source reads (1023, 1023).
type EventIR struct {
	timestamp time.Time
	Slots     [4]IRSlot
}

func (evt *EventIR) Timestamp() time.Time {
	return evt.timestamp
}

// EventGone reports that the Remote's kernel devices disappeared. No
// further events follow; the Remote should be freed.
type EventGone struct {
	timestamp time.Time
}

func (evt *EventGone) Timestamp() time.Time {
	return evt.timestamp
}
