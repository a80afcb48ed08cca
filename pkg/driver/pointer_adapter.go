package driver

import "github.com/friedelschoen/wiimouse/pkg/virtdev"

// pointerWriter adapts a *virtdev.Pointer to project.PointerWriter, whose
// Key method takes a plain int rather than virtdev.Key so pkg/project
// stays free of a cgo/uinput import (mirroring SmootherStage.MouseButtonIDs
// keeping pkg/irpointer free of the same dependency).
type pointerWriter struct {
	*virtdev.Pointer
}

func (p pointerWriter) Key(key int, pressed bool) error {
	return p.Pointer.Key(virtdev.Key(key), pressed)
}
