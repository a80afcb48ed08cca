package project

import "github.com/friedelschoen/wiimouse/pkg/irpointer"

// PointerWriter is the narrow slice of virtdev.Pointer the sink needs:
// an absolute move and a keyed button edge. Accepting an interface here
// (rather than importing virtdev directly) keeps this package testable
// without a uinput device.
type PointerWriter interface {
	Move(x, y int32) error
	Key(key int, pressed bool) error
}

// Sink is the pipeline's terminal stage. It is not itself an
// irpointer.Module: Source and Sink move data across the pipeline's
// edges rather than transforming pipeline state, so Sink is a plain
// function of the final Frame, the Calibration, and whether the mouse is
// currently enabled.
type Sink struct {
	Calibration *Calibration
	Pointer     PointerWriter

	// MouseEnabled forces every HostKey write to "released" and skips the
	// move write when false, matching the "mouse" control socket
	// command's effect on output.
	MouseEnabled bool
}

// Write projects f and pushes the resulting move + button edges to the
// pointer surface. It returns the first error encountered, continuing to
// attempt subsequent writes so one stuck key doesn't suppress the others.
func (s *Sink) Write(f *irpointer.Frame) error {
	var firstErr error
	record := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if s.MouseEnabled {
		if screen, ok := s.Calibration.Project(f); ok {
			record(s.Pointer.Move(int32(screen.X), int32(screen.Y)))
		}
	}

	for _, b := range f.Buttons {
		if b.Namespace == irpointer.NamespaceNone {
			break
		}
		if b.Namespace != irpointer.NamespaceHostKey {
			continue
		}
		state := b.Pressed && s.MouseEnabled
		record(s.Pointer.Key(b.ID, state))
	}

	return firstErr
}
