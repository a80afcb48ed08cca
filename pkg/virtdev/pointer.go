// Package virtdev creates the virtual input device the driver writes to:
// an absolute-positioning pointer backed by uinput that also carries the
// full bindable key table.
package virtdev

import (
	"errors"
	"fmt"
	"os"
	"syscall"
	"time"
	"unsafe"
)

// AbsoluteRange is the [0,10001] coordinate space the pointer surface
// reports under, matching the projection stage's clamped screen-space
// output.
const AbsoluteRange = 10001

type uinputConstructor struct {
	path string
	id   inputID
}

var defaultUinputConstructor = uinputConstructor{
	path: "/dev/uinput",
	id: inputID{
		Bustype: busUsb,
		Product: 0xdead,
		Vendor:  0xbeef,
		Version: 0,
	},
}

// UinputOption adjusts how the pointer's backing uinput device is opened.
type UinputOption func(*uinputConstructor)

// WithUinputPath sets the location of the uinput device node, normally
// /dev/uinput.
func WithUinputPath(path string) UinputOption {
	return func(uc *uinputConstructor) {
		uc.path = path
	}
}

// WithVendorProduct sets the vendor and product ID and version the
// pointer reports to the kernel.
func WithVendorProduct(vendor, product, version uint16) UinputOption {
	return func(uc *uinputConstructor) {
		uc.id.Vendor = vendor
		uc.id.Product = product
		uc.id.Version = version
	}
}

// Pointer is an absolute-positioning uinput device: its X/Y axes are
// reported in [0,AbsoluteRange) rather than relative deltas, and it
// advertises the full key table at open time so any host key can later be
// bound to a Remote button without recreating the device.
type Pointer struct {
	file *os.File
	name string
}

// CreatePointer creates a new absolute-positioning uinput device named
// name. Every Key in [KeyReserved,KeyMax] is registered up front, since
// the button map is reconfigurable at runtime over the control socket and
// the device cannot add key bits after creation.
func CreatePointer(name string, opts ...UinputOption) (*Pointer, error) {
	construct := defaultUinputConstructor
	for _, opt := range opts {
		opt(&construct)
	}
	file, err := os.OpenFile(construct.path, os.O_WRONLY|syscall.O_NONBLOCK, 0660)
	if err != nil {
		return nil, fmt.Errorf("could not open uinput device file: %w", err)
	}
	ptr := &Pointer{file: file, name: name}

	if err := ptr.setBits(uiSetEvBit, evSyn, evKey, evAbs); err != nil {
		ptr.Close()
		return nil, fmt.Errorf("failed to register virtual pointer device: %w", err)
	}
	for i := KeyReserved; i <= KeyMax; i++ {
		if err := ptr.setBits(uiSetKeyBit, uintptr(i)); err != nil {
			ptr.Close()
			return nil, fmt.Errorf("failed to register key number %d: %w", i, err)
		}
	}

	if err := ptr.setup(construct.id); err != nil {
		ptr.Close()
		return nil, err
	}
	if err := ptr.registerAbs(absX, 0, AbsoluteRange); err != nil {
		ptr.Close()
		return nil, fmt.Errorf("failed to register x axis: %w", err)
	}
	if err := ptr.registerAbs(absY, 0, AbsoluteRange); err != nil {
		ptr.Close()
		return nil, fmt.Errorf("failed to register y axis: %w", err)
	}
	return ptr, ptr.create()
}

func (ptr *Pointer) ioctl(cmd, arg uintptr) error {
	_, _, err := syscall.Syscall(syscall.SYS_IOCTL, ptr.file.Fd(), cmd, arg)
	if err == 0 {
		return nil
	}
	return err
}

// setBits enables one capability bit per argument under the given
// UI_SET_* ioctl.
func (ptr *Pointer) setBits(cmd uintptr, bits ...uintptr) error {
	for _, bit := range bits {
		if err := ptr.ioctl(cmd, bit); err != nil {
			return fmt.Errorf("invalid file handle returned from ioctl: %w", err)
		}
	}
	return nil
}

// setup names the device and fills in its bus identity.
func (ptr *Pointer) setup(busid inputID) error {
	if ptr.name == "" {
		return errors.New("device name may not be empty")
	}
	if len(ptr.name) > uiMaxNameSize {
		return fmt.Errorf("device name %s is too long (maximum of %d characters allowed)", ptr.name, uiMaxNameSize)
	}
	setup := uinputSetup{id: busid}
	copy(setup.name[:], ptr.name)
	if err := ptr.ioctl(uiDevSetup, uintptr(unsafe.Pointer(&setup))); err != nil {
		return fmt.Errorf("failed to set up device: %w", err)
	}
	return nil
}

func (ptr *Pointer) registerAbs(code uint16, min, max int32) error {
	s := absSetup{
		code: code,
		absinfo: absInfo{
			minimum: min,
			maximum: max,
		},
	}
	return ptr.ioctl(uiAbsSetup, uintptr(unsafe.Pointer(&s)))
}

// create finalizes the device. The sleep gives udev time to set up the
// new node before the first write lands on it.
func (ptr *Pointer) create() error {
	err := ptr.ioctl(uiDevCreate, 0)
	time.Sleep(time.Millisecond * 200)
	return err
}

func (ptr *Pointer) emit(typ, code uint16, value int32) error {
	ev := inputEvent{
		Time:  syscall.Timeval{},
		Type:  typ,
		Code:  code,
		Value: value,
	}
	if _, err := ptr.file.Write(ev.buffer()); err != nil {
		return fmt.Errorf("writing event %v to the device file failed: %w", typ, err)
	}
	return nil
}

func (ptr *Pointer) sync() error {
	return ptr.emit(evSyn, synReport, 0)
}

// Move sets the pointer's absolute position. x and y are clamped to
// [0,AbsoluteRange) by the caller (pkg/project); values outside that range
// are passed through unchanged to the kernel, which clamps to the
// registered axis bounds.
func (ptr *Pointer) Move(x, y int32) error {
	if err := ptr.emit(evAbs, absX, x); err != nil {
		return fmt.Errorf("failed to set pointer x position: %w", err)
	}
	if err := ptr.emit(evAbs, absY, y); err != nil {
		return fmt.Errorf("failed to set pointer y position: %w", err)
	}
	return ptr.sync()
}

// Key sets the state of key.
func (ptr *Pointer) Key(key Key, press bool) error {
	var state int32
	if press {
		state = 1
	}
	if err := ptr.emit(evKey, uint16(key), state); err != nil {
		return err
	}
	return ptr.sync()
}

// Close destroys the virtual device and closes the uinput handle.
func (ptr *Pointer) Close() error {
	if err := ptr.ioctl(uiDevDestroy, 0); err != nil {
		return fmt.Errorf("failed to destroy device: %w", err)
	}
	return ptr.file.Close()
}
