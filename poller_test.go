package wiimouse

import (
	"errors"
	"testing"
	"time"
)

type pollStep[T any] struct {
	ev   T
	cont bool
	err  error
}

type fakeSource[T any] struct {
	fd        int
	fdCalls   int
	pollCalls int
	steps     []pollStep[T]
}

func (s *fakeSource[T]) FD() int {
	s.fdCalls++
	return s.fd
}

func (s *fakeSource[T]) Poll() (T, bool, error) {
	var zero T
	s.pollCalls++
	if len(s.steps) == 0 {
		return zero, false, errors.New("no more steps")
	}
	step := s.steps[0]
	s.steps = s.steps[1:]
	return step.ev, step.cont, step.err
}

func TestPollerWaitRetriesOnPollAgain(t *testing.T) {
	src := &fakeSource[int]{
		fd: -1, // no descriptor, so the retry backs off with a sleep
		steps: []pollStep[int]{
			{cont: false, err: ErrPollAgain},
			{ev: 42, cont: false},
		},
	}
	p := NewPoller[int](src)

	ev, err := p.Wait(0)
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if ev != 42 {
		t.Fatalf("expected ev=42, got %v", ev)
	}
	if src.pollCalls != 2 {
		t.Fatalf("expected 2 Poll calls, got %d", src.pollCalls)
	}
}

func TestPollerWaitSkipsBlockWhileDraining(t *testing.T) {
	src := &fakeSource[int]{
		fd: -1,
		steps: []pollStep[int]{
			{ev: 1, cont: true},
			{ev: 2, cont: false},
		},
	}
	p := NewPoller[int](src)

	ev, err := p.Wait(0)
	if err != nil || ev != 1 {
		t.Fatalf("first Wait: expected (1, nil), got (%v, %v)", ev, err)
	}
	// cont=true means more is buffered; the next Wait must drain it
	// without ever consulting the descriptor
	ev, err = p.Wait(0)
	if err != nil || ev != 2 {
		t.Fatalf("second Wait: expected (2, nil), got (%v, %v)", ev, err)
	}
	if src.fdCalls != 0 {
		t.Fatalf("expected FD() never called while draining, got %d calls", src.fdCalls)
	}
}

func TestPollerWaitBlocksAfterEmptyDrain(t *testing.T) {
	src := &fakeSource[int]{
		fd: -1,
		steps: []pollStep[int]{
			{ev: 7, cont: false},
		},
	}
	p := NewPoller[int](src)
	p.wait = true

	start := time.Now()
	ev, err := p.Wait(0)
	if err != nil || ev != 7 {
		t.Fatalf("expected (7, nil), got (%v, %v)", ev, err)
	}
	if src.fdCalls != 1 {
		t.Fatalf("expected FD() consulted exactly once, got %d", src.fdCalls)
	}
	// with no descriptor the block path backs off briefly instead of
	// spinning
	if time.Since(start) < 5*time.Millisecond {
		t.Fatalf("expected a backoff delay, returned after %v", time.Since(start))
	}
	if !p.wait {
		t.Fatalf("cont=false should leave the poller in waiting state")
	}
}
