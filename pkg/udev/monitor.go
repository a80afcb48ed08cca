package udev

// #cgo pkg-config: libudev
// #include <libudev.h>
import "C"
import (
	"errors"
)

// Monitor receives uevents from a netlink socket, created by
// NewMonitorFromNetlink. Install filters before EnableReceiving; after
// that, watch GetFD for readability and drain with ReceiveDevice.
type Monitor struct {
	udevContext
	ptr *C.struct_udev_monitor
}

func monitorUnref(m *Monitor) {
	C.udev_monitor_unref(m.ptr)
	C.udev_unref(m.udevPtr)
}

// GetFD returns the monitor's socket descriptor for readiness waiting.
func (m *Monitor) GetFD() int {
	m.lock()
	defer m.unlock()
	return int(C.udev_monitor_get_fd(m.ptr))
}

// EnableReceiving switches the monitor into listening mode. The socket is
// non-blocking; ReceiveDevice returns nil when nothing is pending.
func (m *Monitor) EnableReceiving() (err error) {
	m.lock()
	defer m.unlock()
	if C.udev_monitor_enable_receiving(m.ptr) != 0 {
		err = errors.New("udev: udev_monitor_enable_receiving failed")
	}
	return
}

// ReceiveDevice returns the next pending uevent's device, or nil if none
// is queued. Check Device.Action for what happened to it.
func (m *Monitor) ReceiveDevice() *Device {
	m.lock()
	defer m.unlock()
	ptr := C.udev_monitor_receive_device(m.ptr)
	if ptr == nil {
		return nil
	}
	d := newDevice()
	d.ptr = ptr
	return d
}

// FilterAddMatchSubsystem restricts the monitor to events for one
// subsystem. The filter runs inside the kernel, so non-matching events
// never wake the process. Must be installed before EnableReceiving.
func (m *Monitor) FilterAddMatchSubsystem(subsystem string) (err error) {
	m.lock()
	defer m.unlock()
	s := C.CString(subsystem)
	defer freeCharPtr(s)
	if C.udev_monitor_filter_add_match_subsystem_devtype(m.ptr, s, nil) != 0 {
		err = errors.New("udev: udev_monitor_filter_add_match_subsystem_devtype failed")
	}
	return
}
