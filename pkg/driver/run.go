package driver

import (
	"context"
	"errors"
	"time"

	"github.com/friedelschoen/wiimouse"
	"github.com/friedelschoen/wiimouse/pkg/irpointer"
)

const (
	tickInterval      = 10 * time.Millisecond
	discoveryInterval = 100 * time.Millisecond
	accelTimeout      = 500 * time.Millisecond
)

// Run drives the NoRemote/Running state machine until ctx is canceled. A
// *DeviceGoneError surfaces on every unplug but never stops the loop: the
// driver simply falls back to discovery and waits for the next Remote.
func (d *Driver) Run(ctx context.Context) error {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	var lastDiscovery time.Time

	for {
		select {
		case <-ctx.Done():
			d.shutdown()
			return ctx.Err()
		case <-ticker.C:
		}

		if d.control != nil {
			d.control.processEvents(d.dispatch)
		}

		switch d.state {
		case stateNoRemote:
			if time.Since(lastDiscovery) < discoveryInterval {
				continue
			}
			lastDiscovery = time.Now()
			if syspath, ok := d.discoverOnce(); ok {
				if err := d.acquire(syspath); err != nil {
					d.log.Warn().Err(err).Str("syspath", syspath).Msg("driver: failed to acquire remote")
				}
			}
		case stateRunning:
			if err := d.runningTick(); err != nil {
				var gone *DeviceGoneError
				if errors.As(err, &gone) {
					d.release(gone.Reason)
					continue
				}
				return err
			}
			d.broadcastState()
		}
	}
}

// discoverOnce scans udev for every currently-present Wii Remote and
// returns the first one found. A fresh Monitor is created per call since
// the driver's monitor is opened without hotplug watching: each scan is a
// full, one-shot re-enumeration.
func (d *Driver) discoverOnce() (string, bool) {
	mon, err := wiimouse.NewMonitor(false)
	if err != nil {
		d.log.Warn().Err(err).Msg("driver: udev scan failed")
		return "", false
	}
	defer mon.Free()

	syspath := mon.Poll()
	return syspath, syspath != ""
}

func (d *Driver) runningTick() error {
	now := time.Now()
	var dt time.Duration
	if !d.lastTick.IsZero() {
		dt = now.Sub(d.lastTick)
	}
	d.lastTick = now

	if err := d.drainEvents(); err != nil {
		return err
	}

	if !d.lastAccelAt.IsZero() && time.Since(d.lastAccelAt) > accelTimeout {
		return &DeviceGoneError{Reason: "no accelerometer event within timeout"}
	}

	source := d.buildSourceFrame(dt)
	final := d.pipeline.Run(source)
	d.lastFinal = final

	if d.sink != nil {
		if err := d.sink.Write(final); err != nil {
			d.log.Warn().Err(err).Msg("driver: pointer write failed")
		}
	}
	return nil
}

// drainEvents pumps every event currently buffered on the device into the
// driver's running state (last accelerometer sample, raw IR slots,
// pressed-button set), returning a *DeviceGoneError the moment the kernel
// reports the Remote removed.
func (d *Driver) drainEvents() error {
	gone := false
	for {
		ev, cont, err := d.device.Poll()
		if errors.Is(err, wiimouse.ErrPollAgain) {
			break
		}
		if err != nil {
			return &DeviceGoneError{Reason: err.Error()}
		}
		switch e := ev.(type) {
		case *wiimouse.EventKey:
			d.remotePressed[e.Code] = e.State != wiimouse.StateReleased
		case *wiimouse.EventAccel:
			d.lastAccel = irpointer.FVec3{X: float64(e.Accel.X), Y: float64(e.Accel.Y), Z: float64(e.Accel.Z)}
			d.lastAccelAt = time.Now()
		case *wiimouse.EventIR:
			d.rawIR = e.Slots
		case *wiimouse.EventGone:
			gone = true
		}
		if !cont {
			break
		}
	}
	if gone {
		return &DeviceGoneError{Reason: "remote removed"}
	}
	return nil
}

// buildSourceFrame packs the driver's running state into the pipeline's
// per-tick Source frame: raw (unclustered) IR dots and the currently
// pressed Remote buttons.
func (d *Driver) buildSourceFrame(dt time.Duration) *irpointer.Frame {
	f := &irpointer.Frame{DeltaT: dt, Accel: d.lastAccel, History: map[string]*irpointer.Frame{}}

	n := 0
	for _, slot := range d.rawIR {
		if slot.Valid() {
			if n < len(f.Dots) {
				f.Dots[n] = irpointer.FVec2{X: float64(slot.X), Y: float64(slot.Y)}
			}
			n++
		}
	}
	f.NValidIR = n

	i := 0
	for _, info := range buttonTable {
		if !d.remotePressed[info.key] {
			continue
		}
		if i >= irpointer.MaxButtons {
			break
		}
		f.Buttons[i] = irpointer.ButtonState{Namespace: irpointer.NamespaceRemote, ID: int(info.key), Pressed: true}
		i++
	}

	return f
}
