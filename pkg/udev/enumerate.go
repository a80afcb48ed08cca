package udev

// #cgo pkg-config: libudev
// #include <libudev.h>
import "C"
import (
	"errors"
	"iter"
	"runtime"
)

// Enumerate builds a filtered list of syspaths from the udev database,
// mirroring libudev's udev_enumerate object: filters accumulate until
// Devices actually walks the list.
type Enumerate struct {
	udevContext
	ptr *C.struct_udev_enumerate
}

func enumerateUnref(e *Enumerate) {
	C.udev_enumerate_unref(e.ptr)
	C.udev_unref(e.udevPtr)
}

// Free releases the enumeration eagerly instead of waiting for its
// finalizer. The Enumerate must not be used afterwards.
func (e *Enumerate) Free() {
	e.lock()
	defer e.unlock()
	if e.ptr == nil {
		return
	}
	runtime.SetFinalizer(e, nil)
	enumerateUnref(e)
	e.ptr = nil
	e.udevPtr = nil
}

// AddMatchSubsystem restricts enumeration to devices in subsystem.
func (e *Enumerate) AddMatchSubsystem(subsystem string) error {
	e.lock()
	defer e.unlock()
	s := C.CString(subsystem)
	defer freeCharPtr(s)
	if C.udev_enumerate_add_match_subsystem(e.ptr, s) < 0 {
		return errors.New("udev: udev_enumerate_add_match_subsystem failed")
	}
	return nil
}

// AddMatchSysname restricts enumeration to devices whose sysname matches
// the given shell-style glob.
func (e *Enumerate) AddMatchSysname(sysname string) error {
	e.lock()
	defer e.unlock()
	s := C.CString(sysname)
	defer freeCharPtr(s)
	if C.udev_enumerate_add_match_sysname(e.ptr, s) < 0 {
		return errors.New("udev: udev_enumerate_add_match_sysname failed")
	}
	return nil
}

// Devices runs the enumeration scan and yields the syspath of every
// matching device.
func (e *Enumerate) Devices() (iter.Seq[string], error) {
	e.lock()
	if C.udev_enumerate_scan_devices(e.ptr) < 0 {
		e.unlock()
		return nil, errors.New("udev: udev_enumerate_scan_devices failed")
	}
	e.unlock()
	return enumerateName(&e.udevContext, func() *C.struct_udev_list_entry {
		return C.udev_enumerate_get_list_entry(e.ptr)
	}), nil
}
