package kterm

import "sync"

// ringCapacity bounds the action ring (ARD): producers that submit when the
// ring is full drop the action rather than block, matching the source's
// fixed-size, interrupt-context-safe ring buffer (kernel/char/term.c's
// ringbuf-backed term_action queue).
const ringCapacity = 32

// actionRing is a bounded, single-consumer, multi-producer queue of packed
// Actions. Any number of goroutines may submit concurrently; exactly one of
// them, elected by submit's wasEmpty return, drains the ring to empty before
// returning. This is the Go translation of the source's reentrancy
// discipline: "if the ring was empty when I enqueued, nobody else is
// draining it, so I am the producer that must drain it" — the same
// discipline that lets term_write safely enqueue from a nested IRQ context
// without recursing into the renderer.
//
// A sync.Mutex stands in for "disable interrupts": the source holds IRQs off
// only across the handful of instructions that update head/tail/count, and
// the mutex here is held no longer than that.
type actionRing struct {
	mu    sync.Mutex
	buf   [ringCapacity]Action
	head  int
	tail  int
	count int
}

// submit enqueues a onto the ring. written is false if the ring was full and
// the action was dropped. wasEmpty reports whether the ring was empty
// immediately before this call — the caller uses it to decide whether it
// must become the drain owner.
func (r *actionRing) submit(a Action) (written, wasEmpty bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	wasEmpty = r.count == 0
	if r.count == ringCapacity {
		return false, wasEmpty
	}

	r.buf[r.tail] = a
	r.tail = (r.tail + 1) % ringCapacity
	r.count++
	return true, wasEmpty
}

// pop dequeues the oldest action. ok is false if the ring was empty.
func (r *actionRing) pop() (Action, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.count == 0 {
		return 0, false
	}

	a := r.buf[r.head]
	r.head = (r.head + 1) % ringCapacity
	r.count--
	return a, true
}

// empty reports whether the ring currently holds no actions.
func (r *actionRing) empty() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count == 0
}
