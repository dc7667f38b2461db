package core

import "canduo/protocol"

// RxQueue decouples the CAN reception interrupt from the cooperative
// main loop: the interrupt handler enqueues at the head, the main loop
// dequeues at the tail. It is a fixed-capacity ring with an explicit
// count so a full queue and an empty queue can be told apart.
//
// Single producer, single consumer. Enqueue runs in interrupt context
// and is constant-time; Dequeue runs only in the main loop. The
// multi-field update is wrapped in the irq critical section so the
// consumer never observes a torn write.
type RxQueue struct {
	irq     irqLock
	frames  []protocol.Frame
	head    int
	tail    int
	count   int
	dropped uint32
}

// NewRxQueue allocates a queue with the given capacity. The backing
// array is allocated once here; Enqueue and Dequeue never allocate.
func NewRxQueue(capacity int) *RxQueue {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}
	return &RxQueue{frames: make([]protocol.Frame, capacity)}
}

// Enqueue copies f into the queue. When the queue is full the frame is
// dropped, the drop counter advances and Enqueue reports false without
// mutating the ring; under load the protocol degrades to at-most-once
// delivery rather than failing.
func (q *RxQueue) Enqueue(f protocol.Frame) bool {
	q.irq.lock()
	if q.count == len(q.frames) {
		q.dropped++
		q.irq.unlock()
		return false
	}
	q.frames[q.head] = f
	q.head = (q.head + 1) % len(q.frames)
	q.count++
	q.irq.unlock()
	return true
}

// Dequeue removes and returns the oldest frame. The second result is
// false when the queue is empty.
func (q *RxQueue) Dequeue() (protocol.Frame, bool) {
	q.irq.lock()
	if q.count == 0 {
		q.irq.unlock()
		return protocol.Frame{}, false
	}
	f := q.frames[q.tail]
	q.tail = (q.tail + 1) % len(q.frames)
	q.count--
	q.irq.unlock()
	return f, true
}

// Len returns the number of queued frames.
func (q *RxQueue) Len() int {
	q.irq.lock()
	n := q.count
	q.irq.unlock()
	return n
}

// Dropped returns how many frames were discarded because the queue was
// full. Purely diagnostic; nothing in the protocol reacts to it.
func (q *RxQueue) Dropped() uint32 {
	q.irq.lock()
	n := q.dropped
	q.irq.unlock()
	return n
}
