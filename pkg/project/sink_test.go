package project

import (
	"errors"
	"testing"

	"github.com/friedelschoen/wiimouse/pkg/irpointer"
)

type fakePointer struct {
	moves   [][2]int32
	keys    map[int]bool
	moveErr error
	keyErr  map[int]error
}

func newFakePointer() *fakePointer {
	return &fakePointer{keys: make(map[int]bool)}
}

func (f *fakePointer) Move(x, y int32) error {
	f.moves = append(f.moves, [2]int32{x, y})
	return f.moveErr
}

func (f *fakePointer) Key(key int, pressed bool) error {
	f.keys[key] = pressed
	if f.keyErr != nil {
		return f.keyErr[key]
	}
	return nil
}

func TestSinkWriteMovesAndPressesWhenEnabled(t *testing.T) {
	ptr := newFakePointer()
	s := &Sink{Calibration: DefaultCalibration(), Pointer: ptr, MouseEnabled: true}

	f := frameWithDots(Vec2{X: 462, Y: 384}, Vec2{X: 562, Y: 384})
	f.Buttons[0] = irpointer.ButtonState{Namespace: irpointer.NamespaceHostKey, ID: 0x110, Pressed: true}

	if err := s.Write(f); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if len(ptr.moves) != 1 {
		t.Fatalf("expected one move, got %d", len(ptr.moves))
	}
	if !ptr.keys[0x110] {
		t.Errorf("expected key 0x110 pressed")
	}
}

func TestSinkWriteForcesReleaseWhenMouseDisabled(t *testing.T) {
	ptr := newFakePointer()
	s := &Sink{Calibration: DefaultCalibration(), Pointer: ptr, MouseEnabled: false}

	f := frameWithDots(Vec2{X: 462, Y: 384}, Vec2{X: 562, Y: 384})
	f.Buttons[0] = irpointer.ButtonState{Namespace: irpointer.NamespaceHostKey, ID: 0x110, Pressed: true}

	if err := s.Write(f); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if len(ptr.moves) != 0 {
		t.Errorf("expected no move while mouse disabled, got %d", len(ptr.moves))
	}
	if pressed, ok := ptr.keys[0x110]; !ok || pressed {
		t.Errorf("expected key 0x110 forced released, got ok=%v pressed=%v", ok, pressed)
	}
}

func TestSinkWriteStopsAtNamespaceNone(t *testing.T) {
	ptr := newFakePointer()
	s := &Sink{Calibration: DefaultCalibration(), Pointer: ptr, MouseEnabled: true}

	f := frameWithDots(Vec2{X: 462, Y: 384}, Vec2{X: 562, Y: 384})
	if err := s.Write(f); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if len(ptr.keys) != 0 {
		t.Errorf("expected no key writes, got %v", ptr.keys)
	}
}

func TestSinkWriteReturnsFirstErrorButContinues(t *testing.T) {
	ptr := newFakePointer()
	wantErr := errors.New("uinput write failed")
	ptr.keyErr = map[int]error{0x110: wantErr}
	s := &Sink{Calibration: DefaultCalibration(), Pointer: ptr, MouseEnabled: true}

	f := frameWithDots(Vec2{X: 462, Y: 384}, Vec2{X: 562, Y: 384})
	f.Buttons[0] = irpointer.ButtonState{Namespace: irpointer.NamespaceHostKey, ID: 0x110, Pressed: true}
	f.Buttons[1] = irpointer.ButtonState{Namespace: irpointer.NamespaceHostKey, ID: 0x111, Pressed: true}

	err := s.Write(f)
	if !errors.Is(err, wantErr) {
		t.Fatalf("Write error = %v, want %v", err, wantErr)
	}
	if !ptr.keys[0x111] {
		t.Errorf("expected second key write to still happen after first errored")
	}
}
