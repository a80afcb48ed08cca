// Package wiimouse talks to the kernel's hid-wiimote driver: it locates a
// Remote's evdev nodes through udev, reads core buttons, accelerometer and
// IR camera samples from them, and watches the udev database for Remotes
// appearing and disappearing.
package wiimouse

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strings"
	"time"
	"unsafe"

	"github.com/friedelschoen/wiimouse/pkg/udev"
	"golang.org/x/sys/unix"
)

// Iface selects which of the Remote's kernel input devices to read.
// Values combine as a bitmask.
type Iface uint

const (
	IfaceCore Iface = 1 << iota
	IfaceAccel
	IfaceIR

	IfaceAll = IfaceCore | IfaceAccel | IfaceIR
)

// Name returns the kernel input-device name the hid-wiimote driver
// registers for this interface.
func (i Iface) Name() string {
	switch i {
	case IfaceCore:
		return "Nintendo Wii Remote"
	case IfaceAccel:
		return "Nintendo Wii Remote Accelerometer"
	case IfaceIR:
		return "Nintendo Wii Remote IR"
	}
	return "invalid interface"
}

var allIfaces = [...]Iface{IfaceCore, IfaceAccel, IfaceIR}

// inputEvent mirrors the kernel's struct input_event on 64-bit platforms.
type inputEvent struct {
	Sec   int64
	Usec  int64
	Type  uint16
	Code  uint16
	Value int32
}

const inputEventSize = int(unsafe.Sizeof(inputEvent{}))

type remoteIface struct {
	node string
	file *os.File
	dec  decoder
}

// Remote is one connected Wii Remote. Its evdev nodes are resolved from
// the hid device's syspath once at construction; interfaces are opened
// and closed individually and multiplexed through a single epoll
// descriptor, so FD always returns the same descriptor regardless of
// which interfaces are open.
type Remote struct {
	poller[Event]

	syspath string
	efd     int
	ifaces  map[Iface]*remoteIface
	byFD    map[int]*remoteIface

	queue []Event
	gone  bool

	// buf is typed as events rather than raw bytes so decoding reads
	// each record through an aligned pointer
	buf [24]inputEvent
}

// NewRemote resolves the evdev nodes below syspath, which must be the
// sysfs root of a hid-wiimote device, normally /sys/bus/hid/devices/[dev]
// as returned by a Monitor. No interfaces are opened yet.
func NewRemote(syspath string) (*Remote, error) {
	nodes, err := inputNodes(syspath)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, fmt.Errorf("wiimouse: no wiimote input devices below %s", syspath)
	}

	efd, err := unix.EpollCreate1(unix.EPOLL_CLOEXEC)
	if err != nil {
		return nil, err
	}

	r := &Remote{
		syspath: syspath,
		efd:     efd,
		ifaces:  make(map[Iface]*remoteIface, len(nodes)),
		byFD:    make(map[int]*remoteIface, len(nodes)),
	}
	r.poller = newPoller[Event](r)
	for iface, node := range nodes {
		r.ifaces[iface] = &remoteIface{node: node}
	}
	return r, nil
}

// inputNodes walks the udev database for eventN devices below syspath and
// assigns each to an interface by its parent input device's name.
func inputNodes(syspath string) (map[Iface]string, error) {
	enum := udev.NewEnumerate()
	defer enum.Free()
	if err := enum.AddMatchSubsystem("input"); err != nil {
		return nil, err
	}
	children, err := enum.Devices()
	if err != nil {
		return nil, err
	}

	nodes := make(map[Iface]string)
	prefix := strings.TrimSuffix(syspath, "/") + "/"
	for child := range children {
		if !strings.HasPrefix(child, prefix) || !strings.HasPrefix(path.Base(child), "event") {
			continue
		}
		dev := udev.NewDeviceFromSyspath(child)
		if dev == nil {
			continue
		}
		node := dev.Devnode()
		parent := dev.Parent()
		if node == "" || parent == nil {
			continue
		}
		name := parent.SysattrValue("name")
		for _, iface := range allIfaces {
			if name == iface.Name() {
				nodes[iface] = node
			}
		}
	}
	return nodes, nil
}

// Syspath returns the sysfs root this Remote was constructed from.
func (r *Remote) Syspath() string {
	return r.syspath
}

// FD returns the epoll descriptor multiplexing every open interface.
// Watch it for readability and call Poll whenever it is readable.
func (r *Remote) FD() int {
	return r.efd
}

// Open opens every interface in the which bitmask. Interfaces that are
// already open are left alone. If one interface fails, the others are
// still attempted and the first error is returned afterwards; use Opened
// to see which made it.
func (r *Remote) Open(which Iface) error {
	var firstErr error
	for _, iface := range allIfaces {
		if which&iface == 0 {
			continue
		}
		ri, ok := r.ifaces[iface]
		if !ok {
			if firstErr == nil {
				firstErr = fmt.Errorf("wiimouse: %s: no kernel device", iface.Name())
			}
			continue
		}
		if ri.file != nil {
			continue
		}
		if err := r.openIface(iface, ri); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (r *Remote) openIface(iface Iface, ri *remoteIface) error {
	f, err := os.OpenFile(ri.node, os.O_RDONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		return err
	}

	ep := unix.EpollEvent{Events: unix.EPOLLIN, Fd: int32(f.Fd())}
	if err := unix.EpollCtl(r.efd, unix.EPOLL_CTL_ADD, int(f.Fd()), &ep); err != nil {
		f.Close()
		return err
	}

	switch iface {
	case IfaceCore:
		ri.dec = &coreDecoder{}
	case IfaceAccel:
		ri.dec = &accelDecoder{}
	case IfaceIR:
		ri.dec = newIRDecoder()
	}
	ri.file = f
	r.byFD[int(f.Fd())] = ri
	return nil
}

// Close closes every open interface in the which bitmask.
func (r *Remote) Close(which Iface) {
	for _, iface := range allIfaces {
		if which&iface == 0 {
			continue
		}
		ri, ok := r.ifaces[iface]
		if !ok || ri.file == nil {
			continue
		}
		r.closeIface(ri)
	}
}

func (r *Remote) closeIface(ri *remoteIface) {
	fd := int(ri.file.Fd())
	unix.EpollCtl(r.efd, unix.EPOLL_CTL_DEL, fd, nil)
	delete(r.byFD, fd)
	ri.file.Close()
	ri.file = nil
	ri.dec = nil
}

// Opened returns a bitmask of currently open interfaces.
func (r *Remote) Opened() Iface {
	var out Iface
	for _, iface := range allIfaces {
		if ri, ok := r.ifaces[iface]; ok && ri.file != nil {
			out |= iface
		}
	}
	return out
}

// Free closes every interface and the epoll descriptor. The Remote must
// not be used afterwards.
func (r *Remote) Free() {
	if r.efd < 0 {
		return
	}
	r.Close(IfaceAll)
	unix.Close(r.efd)
	r.efd = -1
}

// Poll returns the next queued event. It never blocks: if nothing is
// buffered and no interface is readable it returns ErrPollAgain, in which
// case the caller should wait for FD to become readable. The returned
// continue-flag is true whenever an event was delivered, meaning Poll can
// be called again right away. After the kernel removes the device a
// single EventGone is delivered and every subsequent call fails.
func (r *Remote) Poll() (Event, bool, error) {
	for {
		if len(r.queue) > 0 {
			ev := r.queue[0]
			r.queue = r.queue[1:]
			return ev, true, nil
		}
		if r.gone {
			return nil, false, errors.New("wiimouse: remote is gone")
		}

		var ready [4]unix.EpollEvent
		n, err := unix.EpollWait(r.efd, ready[:], 0)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return nil, false, err
		}
		if n == 0 {
			return nil, false, ErrPollAgain
		}
		for _, ep := range ready[:n] {
			r.drainFD(int(ep.Fd))
		}
	}
}

// drainFD reads every buffered input_event from one interface and decodes
// them into the queue. A read error other than EAGAIN means the kernel
// pulled the device out from under us.
func (r *Remote) drainFD(fd int) {
	ri, ok := r.byFD[fd]
	if !ok || r.gone {
		return
	}
	raw := unsafe.Slice((*byte)(unsafe.Pointer(&r.buf[0])), len(r.buf)*inputEventSize)
	for {
		n, err := unix.Read(fd, raw)
		if err == unix.EAGAIN {
			return
		}
		if err != nil || n == 0 {
			r.closeIface(ri)
			r.queue = append(r.queue, &EventGone{timestamp: time.Now()})
			r.gone = true
			return
		}
		for i := 0; i < n/inputEventSize; i++ {
			ev := &r.buf[i]
			ts := time.Unix(ev.Sec, ev.Usec*1000)
			if out := ri.dec.decode(ts, ev.Type, ev.Code, ev.Value); out != nil {
				r.queue = append(r.queue, out)
			}
		}
	}
}
