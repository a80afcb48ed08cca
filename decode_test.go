package wiimouse

import (
	"testing"
	"time"
)

var decodeTime = time.Unix(1000, 0)

func TestCoreDecoderButton(t *testing.T) {
	var d coreDecoder

	ev := d.decode(decodeTime, evKey, btnA, 1)
	key, ok := ev.(*EventKey)
	if !ok {
		t.Fatalf("expected *EventKey, got %T", ev)
	}
	if key.Code != KeyA || key.State != StatePressed {
		t.Errorf("expected (KeyA, pressed), got (%v, %v)", key.Code, key.State)
	}

	ev = d.decode(decodeTime, evKey, btnA, 0)
	key = ev.(*EventKey)
	if key.State != StateReleased {
		t.Errorf("expected released, got %v", key.State)
	}
}

func TestCoreDecoderIgnoresForeignCodes(t *testing.T) {
	var d coreDecoder

	const keySpace = 57 // not a wiimote button
	if ev := d.decode(decodeTime, evKey, keySpace, 1); ev != nil {
		t.Errorf("unmapped key code should decode to nil, got %v", ev)
	}
	if ev := d.decode(decodeTime, evAbs, absRX, 100); ev != nil {
		t.Errorf("non-key event should decode to nil, got %v", ev)
	}
	if ev := d.decode(decodeTime, evKey, btnA, 5); ev != nil {
		t.Errorf("out-of-range value should decode to nil, got %v", ev)
	}
}

func TestAccelDecoderAccumulatesUntilSyn(t *testing.T) {
	var d accelDecoder

	if ev := d.decode(decodeTime, evAbs, absRX, 10); ev != nil {
		t.Fatalf("axis update should not emit, got %v", ev)
	}
	d.decode(decodeTime, evAbs, absRY, -20)
	d.decode(decodeTime, evAbs, absRZ, 30)

	ev := d.decode(decodeTime, evSyn, 0, 0)
	accel, ok := ev.(*EventAccel)
	if !ok {
		t.Fatalf("expected *EventAccel on EV_SYN, got %T", ev)
	}
	if accel.Accel != (Vec3{10, -20, 30}) {
		t.Errorf("expected (10, -20, 30), got %v", accel.Accel)
	}

	// a later sample must not alias the one already emitted
	d.decode(decodeTime, evAbs, absRX, 99)
	d.decode(decodeTime, evSyn, 0, 0)
	if accel.Accel.X != 10 {
		t.Errorf("emitted event mutated by later sample: %v", accel.Accel)
	}
}

func TestIRDecoderStartsInvalid(t *testing.T) {
	d := newIRDecoder()

	ir := d.decode(decodeTime, evSyn, 0, 0).(*EventIR)
	for i, slot := range ir.Slots {
		if slot.Valid() {
			t.Errorf("slot %d should start untracked, got %v", i, slot)
		}
	}
}

func TestIRDecoderTracksSlots(t *testing.T) {
	d := newIRDecoder()

	d.decode(decodeTime, evAbs, absHat0X, 462)
	d.decode(decodeTime, evAbs, absHat0Y, 384)
	d.decode(decodeTime, evAbs, absHat1X, 562)
	d.decode(decodeTime, evAbs, absHat1Y, 384)

	ir := d.decode(decodeTime, evSyn, 0, 0).(*EventIR)
	if ir.Slots[0] != (IRSlot{462, 384}) || ir.Slots[1] != (IRSlot{562, 384}) {
		t.Fatalf("expected slots (462,384) (562,384), got %v %v", ir.Slots[0], ir.Slots[1])
	}
	if ir.Slots[2].Valid() || ir.Slots[3].Valid() {
		t.Errorf("untouched slots should stay untracked")
	}
}

func TestEventTimestamp(t *testing.T) {
	var d coreDecoder
	ev := d.decode(decodeTime, evKey, btnB, 1)
	if !ev.Timestamp().Equal(decodeTime) {
		t.Errorf("expected timestamp %v, got %v", decodeTime, ev.Timestamp())
	}
}
