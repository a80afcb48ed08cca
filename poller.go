package wiimouse

import (
	"errors"
	"time"

	"golang.org/x/sys/unix"
)

// ErrPollAgain is returned by a PollSource when nothing is buffered; the
// caller should wait for the source's descriptor to become readable and
// try again.
var ErrPollAgain = errors.New("wiimouse: nothing to poll, try again")

// PollSource is anything that can be drained for events without blocking.
// Remote implements it; the generic Poller turns one into a blocking or
// streaming consumer.
type PollSource[T any] interface {
	// FD returns a non-blocking descriptor that becomes readable when
	// Poll has data, or a negative value if none exists yet.
	FD() int

	// Poll returns one event. The bool reports whether another event may
	// be available immediately. ErrPollAgain means nothing was buffered.
	Poll() (T, bool, error)
}

// Poller drives a PollSource with poll(2) between drains.
type Poller[T any] struct {
	src PollSource[T]
	fd  int
	// wait is set once a drain came up empty, meaning the next call
	// should block on the descriptor before trying again
	wait bool
}

// NewPoller wraps src. The first Wait call polls the source directly,
// without blocking on its descriptor first.
func NewPoller[T any](src PollSource[T]) *Poller[T] {
	return &Poller[T]{src: src, fd: -1}
}

// Wait returns the next event or source error. ErrPollAgain from the
// source is absorbed by waiting on its descriptor for up to timeout (a
// negative timeout waits indefinitely) and polling again; an expired
// timeout only triggers another poll, so Wait does not return until the
// source yields an event or an error.
func (p *Poller[T]) Wait(timeout time.Duration) (T, error) {
	for {
		if p.wait {
			p.block(timeout)
		}
		ev, cont, err := p.src.Poll()
		if errors.Is(err, ErrPollAgain) {
			p.wait = true
			continue
		}
		p.wait = !cont || err != nil
		return ev, err
	}
}

func (p *Poller[T]) block(timeout time.Duration) {
	if p.fd == -1 {
		p.fd = p.src.FD()
	}
	if p.fd < 0 {
		// no descriptor to wait on; back off instead of spinning
		time.Sleep(10 * time.Millisecond)
		return
	}
	fds := [...]unix.PollFd{{Fd: int32(p.fd), Events: unix.POLLIN}}
	dur := -1
	if timeout >= 0 {
		dur = int(timeout.Milliseconds())
	}
	unix.Poll(fds[:], dur)
}

// Stream pumps events into ch from a background goroutine until the
// source fails.
func (p *Poller[T]) Stream(ch chan<- T) {
	go func() {
		for {
			ev, err := p.Wait(-1)
			if err != nil {
				return
			}
			ch <- ev
		}
	}()
}

// poller is the embeddable form of Poller used by self-polling types such
// as Remote, which implement PollSource against themselves.
type poller[T any] struct {
	*Poller[T]
}

func newPoller[T any](src PollSource[T]) poller[T] {
	return poller[T]{NewPoller(src)}
}
