package wiimouse

import (
	"errors"

	"github.com/friedelschoen/wiimouse/pkg/udev"
)

// kernelDriver is the hid driver name Remotes are bound to.
const kernelDriver = "wiimote"

var errUdevMonitor = errors.New("wiimouse: cannot create udev netlink monitor")

// Monitor finds connected Remotes. It first yields the syspath of every
// Remote currently in the udev database; a Monitor created with hotplug
// watching then keeps yielding Remotes as they are paired.
//
// A Monitor is not safe for concurrent use.
type Monitor struct {
	backlog []string
	watch   *udev.Monitor
}

// NewMonitor scans the udev database for Remotes. With hotplug set, a
// netlink monitor is attached so Poll also reports Remotes paired later;
// GetFD exposes its descriptor for readiness waiting.
func NewMonitor(hotplug bool) (*Monitor, error) {
	m := new(Monitor)

	enum := udev.NewEnumerate()
	defer enum.Free()
	if err := enum.AddMatchSubsystem("hid"); err != nil {
		return nil, err
	}
	devices, err := enum.Devices()
	if err != nil {
		return nil, err
	}
	for syspath := range devices {
		if isRemote(syspath) {
			m.backlog = append(m.backlog, syspath)
		}
	}

	if hotplug {
		watch := udev.NewMonitorFromNetlink("udev")
		if watch == nil {
			return nil, errUdevMonitor
		}
		if err := watch.FilterAddMatchSubsystem("hid"); err != nil {
			return nil, err
		}
		if err := watch.EnableReceiving(); err != nil {
			return nil, err
		}
		m.watch = watch
	}
	return m, nil
}

func isRemote(syspath string) bool {
	dev := udev.NewDeviceFromSyspath(syspath)
	if dev == nil {
		return false
	}
	return dev.Driver() == kernelDriver
}

// Poll returns the syspath of the next known Remote, draining the initial
// scan first. Without hotplug watching it returns "" once the scan is
// exhausted. With hotplug watching it then checks the netlink monitor,
// still without blocking, and returns "" when no arrival is pending.
func (m *Monitor) Poll() string {
	if len(m.backlog) > 0 {
		syspath := m.backlog[0]
		m.backlog = m.backlog[1:]
		return syspath
	}
	for m.watch != nil {
		dev := m.watch.ReceiveDevice()
		if dev == nil {
			return ""
		}
		if dev.Action() == "add" && dev.Driver() == kernelDriver {
			return dev.Syspath()
		}
	}
	return ""
}

// GetFD returns the hotplug monitor's descriptor, or false for a Monitor
// created without hotplug watching.
func (m *Monitor) GetFD() (int, bool) {
	if m.watch == nil {
		return -1, false
	}
	return m.watch.GetFD(), true
}

// Free drops the Monitor's reference to its udev monitor, if any; the
// underlying libudev object is released by its finalizer.
func (m *Monitor) Free() {
	m.watch = nil
}
