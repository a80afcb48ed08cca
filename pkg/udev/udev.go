// Package udev is a small cgo wrapper around libudev, covering the device
// database lookups, enumeration scans and netlink monitoring the driver
// needs to find a Wii Remote's hid device and the evdev nodes below it.
package udev

// #cgo pkg-config: libudev
// #include <libudev.h>
// #include <stdlib.h>
import "C"
import (
	"iter"
	"runtime"
	"sync"
	"unsafe"
)

// udevContext carries the libudev context backing a wrapper object.
// libudev is not thread safe when called on the same struct udev, so every
// call through a wrapper takes its context lock.
type udevContext struct {
	udevPtr *C.struct_udev
	m       sync.Mutex
}

func (u *udevContext) lock() {
	u.m.Lock()
}

func (u *udevContext) unlock() {
	u.m.Unlock()
}

func freeCharPtr(s *C.char) {
	C.free(unsafe.Pointer(s))
}

func newDevice() (d *Device) {
	d = &Device{}
	d.udevPtr = C.udev_new()
	runtime.SetFinalizer(d, deviceUnref)
	return
}

func newMonitor() (m *Monitor) {
	m = &Monitor{}
	m.udevPtr = C.udev_new()
	runtime.SetFinalizer(m, monitorUnref)
	return
}

func newEnumerate() (e *Enumerate) {
	e = &Enumerate{}
	e.udevPtr = C.udev_new()
	runtime.SetFinalizer(e, enumerateUnref)
	return
}

// NewDeviceFromSyspath looks syspath up in the udev database and returns
// its Device, or nil if no such device exists.
func NewDeviceFromSyspath(syspath string) *Device {
	d := newDevice()
	d.lock()
	defer d.unlock()
	s := C.CString(syspath)
	defer freeCharPtr(s)
	d.ptr = C.udev_device_new_from_syspath(d.udevPtr, s)
	if d.ptr == nil {
		return nil
	}
	return d
}

// NewEnumerate returns a fresh enumeration scan with no filters installed.
func NewEnumerate() *Enumerate {
	e := newEnumerate()
	e.lock()
	defer e.unlock()
	e.ptr = C.udev_enumerate_new(e.udevPtr)
	return e
}

// NewMonitorFromNetlink connects a Monitor to one of the two uevent
// sources: "udev" for events that already passed udevd rule processing
// (almost always what you want) or "kernel" for raw uevents. Returns nil
// on failure.
func NewMonitorFromNetlink(name string) *Monitor {
	m := newMonitor()
	m.lock()
	defer m.unlock()
	n := C.CString(name)
	defer freeCharPtr(n)
	m.ptr = C.udev_monitor_new_from_netlink(m.udevPtr, n)
	if m.ptr == nil {
		return nil
	}
	return m
}

// enumerateName yields the name of every entry of a libudev list, taking
// the context lock around each step of the walk.
func enumerateName(locker interface {
	lock()
	unlock()
}, init func() *C.struct_udev_list_entry) iter.Seq[string] {
	return func(yield func(string) bool) {
		var l *C.struct_udev_list_entry
		for {
			locker.lock()
			if l == nil {
				l = init()
			} else {
				l = C.udev_list_entry_get_next(l)
			}
			if l == nil {
				locker.unlock()
				return
			}
			item := C.GoString(C.udev_list_entry_get_name(l))
			locker.unlock()

			if !yield(item) {
				return
			}
		}
	}
}
