package wiimouse

// #include <linux/input.h>
import "C"
import "time"

// evdev constants lifted out of linux/input.h through cgo so the decoders
// and their tests can refer to them as plain Go values.
const (
	evSyn = C.EV_SYN
	evKey = C.EV_KEY
	evAbs = C.EV_ABS

	keyLeft     = C.KEY_LEFT
	keyRight    = C.KEY_RIGHT
	keyUp       = C.KEY_UP
	keyDown     = C.KEY_DOWN
	keyNext     = C.KEY_NEXT
	keyPrevious = C.KEY_PREVIOUS
	btnOne      = C.BTN_1
	btnTwo      = C.BTN_2
	btnA        = C.BTN_A
	btnB        = C.BTN_B
	btnMode     = C.BTN_MODE

	absRX = C.ABS_RX
	absRY = C.ABS_RY
	absRZ = C.ABS_RZ

	absHat0X = C.ABS_HAT0X
	absHat0Y = C.ABS_HAT0Y
	absHat1X = C.ABS_HAT1X
	absHat1Y = C.ABS_HAT1Y
	absHat2X = C.ABS_HAT2X
	absHat2Y = C.ABS_HAT2Y
	absHat3X = C.ABS_HAT3X
	absHat3Y = C.ABS_HAT3Y
)

// A decoder turns the raw evdev stream of one kernel input device into
// typed Events. Key events translate one to one; accelerometer and IR
// samples arrive axis by axis, so those decoders accumulate into a cache
// and emit it on the terminating EV_SYN.
type decoder interface {
	decode(ts time.Time, typ, code uint16, value int32) Event
}

type coreDecoder struct{}

func (d *coreDecoder) decode(ts time.Time, typ, code uint16, value int32) Event {
	if typ != evKey {
		return nil
	}
	if value < 0 || value > int32(StateRepeated) {
		return nil
	}

	var key Key
	switch code {
	case keyLeft:
		key = KeyLeft
	case keyRight:
		key = KeyRight
	case keyUp:
		key = KeyUp
	case keyDown:
		key = KeyDown
	case keyNext:
		key = KeyPlus
	case keyPrevious:
		key = KeyMinus
	case btnOne:
		key = KeyOne
	case btnTwo:
		key = KeyTwo
	case btnA:
		key = KeyA
	case btnB:
		key = KeyB
	case btnMode:
		key = KeyHome
	default:
		return nil
	}

	return &EventKey{timestamp: ts, Code: key, State: KeyState(value)}
}

type accelDecoder struct {
	cache EventAccel
}

func (d *accelDecoder) decode(ts time.Time, typ, code uint16, value int32) Event {
	switch typ {
	case evSyn:
		d.cache.timestamp = ts
		out := d.cache
		return &out
	case evAbs:
		switch code {
		case absRX:
			d.cache.Accel.X = value
		case absRY:
			d.cache.Accel.Y = value
		case absRZ:
			d.cache.Accel.Z = value
		}
	}
	return nil
}

type irDecoder struct {
	cache EventIR
}

// newIRDecoder starts with every slot marked invalid; the kernel only
// reports axes that changed, so a zeroed cache would read as four tracked
// sources at the origin until the first full report.
func newIRDecoder() *irDecoder {
	d := new(irDecoder)
	for i := range d.cache.Slots {
		d.cache.Slots[i] = IRSlot{X: invalidIRCoord, Y: invalidIRCoord}
	}
	return d
}

func (d *irDecoder) decode(ts time.Time, typ, code uint16, value int32) Event {
	switch typ {
	case evSyn:
		d.cache.timestamp = ts
		out := d.cache
		return &out
	case evAbs:
		switch code {
		case absHat0X:
			d.cache.Slots[0].X = value
		case absHat0Y:
			d.cache.Slots[0].Y = value
		case absHat1X:
			d.cache.Slots[1].X = value
		case absHat1Y:
			d.cache.Slots[1].Y = value
		case absHat2X:
			d.cache.Slots[2].X = value
		case absHat2Y:
			d.cache.Slots[2].Y = value
		case absHat3X:
			d.cache.Slots[3].X = value
		case absHat3Y:
			d.cache.Slots[3].Y = value
		}
	}
	return nil
}
