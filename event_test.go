package wiimouse

import "testing"

func TestIRSlotValid(t *testing.T) {
	slot := IRSlot{X: 0, Y: 0}
	if !slot.Valid() {
		t.Errorf("IRSlot{%v, %v} should be valid but is not", slot.X, slot.Y)
	}
}

func TestIRSlotInvalid(t *testing.T) {
	slot := IRSlot{X: 1023, Y: 1023}
	if slot.Valid() {
		t.Errorf("IRSlot{%v, %v} should be invalid but is not", slot.X, slot.Y)
	}
}

func TestIRSlotMixedValid(t *testing.T) {
	// only if both axes read 1023 the slot is untracked
	slot := IRSlot{X: 1023, Y: 1024}
	if !slot.Valid() {
		t.Errorf("IRSlot{%v, %v} should be valid but is not", slot.X, slot.Y)
	}
}
