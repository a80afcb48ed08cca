package driver

import (
	"fmt"
	"strings"

	"github.com/friedelschoen/wiimouse/pkg/irpointer"
)

// broadcastState emits the per-tick unsolicited messages, in fixed order:
// one ir: line per raw IR slot, the cluster stage's lr: pair, the final
// post-pipeline flr: pair, and a b: line whenever the pressed-button set
// changed since the last tick.
func (d *Driver) broadcastState() {
	if d.control == nil {
		return
	}

	for i, slot := range d.rawIR {
		valid := 0
		if slot.Valid() {
			valid = 1
		}
		d.control.broadcast(fmt.Sprintf("ir:%d:%d:%d:%d", i, valid, slot.X, slot.Y))
	}

	d.control.broadcast(formatDotPair("lr", d.clusterFrame()))
	d.control.broadcast(formatDotPair("flr", d.lastFinal))

	msg := d.buttonsMessage()
	if msg != d.lastButtons {
		d.control.broadcast("b:" + msg)
		d.lastButtons = msg
	}
}

// clusterFrame returns the cluster stage's own published output for the
// current tick, the pre-predictive/pre-smoothing left/right pair.
func (d *Driver) clusterFrame() *irpointer.Frame {
	if d.lastFinal == nil {
		return nil
	}
	if f, ok := d.lastFinal.History[irpointer.ClusterCheckpoint]; ok {
		return f
	}
	return nil
}

func formatDotPair(tag string, f *irpointer.Frame) string {
	if f == nil || f.NValidIR < 2 {
		return tag + ":invalid"
	}
	return fmt.Sprintf("%s:%d:%d:%d:%d", tag, int64(f.Dots[0].X), int64(f.Dots[0].Y), int64(f.Dots[1].X), int64(f.Dots[1].Y))
}

func (d *Driver) buttonsMessage() string {
	var pressed []string
	for _, info := range buttonTable {
		if d.remotePressed[info.key] {
			pressed = append(pressed, info.protocol)
		}
	}
	return strings.Join(pressed, ":")
}
