package udev

// #cgo pkg-config: libudev
// #include <libudev.h>
// #include <stdlib.h>
import "C"

// Device wraps one entry of the udev device database. Instances are
// created by NewDeviceFromSyspath, Enumerate results or Monitor events and
// are freed by a finalizer.
type Device struct {
	udevContext
	ptr *C.struct_udev_device
}

func deviceUnref(d *Device) {
	C.udev_device_unref(d.ptr)
	C.udev_unref(d.udevPtr)
}

// Parent returns the device's parent in the sysfs tree, or nil at the
// root. The returned Device holds its own reference and outlives the
// child.
func (d *Device) Parent() *Device {
	d.lock()
	defer d.unlock()
	ptr := C.udev_device_get_parent(d.ptr)
	if ptr == nil {
		return nil
	}
	// the parent is borrowed from the child; take a reference so the
	// wrapper's finalizer stays balanced
	C.udev_device_ref(ptr)
	pd := newDevice()
	pd.ptr = ptr
	return pd
}

// Syspath returns the absolute sys path of the device, including the sys
// mount point.
func (d *Device) Syspath() string {
	d.lock()
	defer d.unlock()
	return C.GoString(C.udev_device_get_syspath(d.ptr))
}

// Sysname returns the device's kernel name, the final component of its
// syspath.
func (d *Device) Sysname() string {
	d.lock()
	defer d.unlock()
	return C.GoString(C.udev_device_get_sysname(d.ptr))
}

// Subsystem returns the subsystem the device belongs to, such as "hid" or
// "input".
func (d *Device) Subsystem() string {
	d.lock()
	defer d.unlock()
	return C.GoString(C.udev_device_get_subsystem(d.ptr))
}

// Devnode returns the device node below /dev, or "" for devices without
// one.
func (d *Device) Devnode() string {
	d.lock()
	defer d.unlock()
	return C.GoString(C.udev_device_get_devnode(d.ptr))
}

// Driver returns the name of the kernel driver bound to the device, or ""
// if none is.
func (d *Device) Driver() string {
	d.lock()
	defer d.unlock()
	return C.GoString(C.udev_device_get_driver(d.ptr))
}

// Action returns the uevent action ("add", "remove", ...) for devices
// received from a Monitor, and "" for database lookups.
func (d *Device) Action() string {
	d.lock()
	defer d.unlock()
	return C.GoString(C.udev_device_get_action(d.ptr))
}

// PropertyValue returns the value of a udev property, or "" if the device
// has no such property.
func (d *Device) PropertyValue(key string) string {
	d.lock()
	defer d.unlock()
	k := C.CString(key)
	defer freeCharPtr(k)
	return C.GoString(C.udev_device_get_property_value(d.ptr, k))
}

// SysattrValue returns the content of a sysfs attribute file, or "" if
// the attribute does not exist.
func (d *Device) SysattrValue(sysattr string) string {
	d.lock()
	defer d.unlock()
	s := C.CString(sysattr)
	defer freeCharPtr(s)
	return C.GoString(C.udev_device_get_sysattr_value(d.ptr, s))
}
