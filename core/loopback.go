package core

import (
	"sync"

	"canduo/protocol"
)

// LoopbackBus is an in-memory CAN bus for tests and hosted simulation.
// Every endpoint transmits through the CANDriver interface; the bus
// delivers each frame synchronously into the receive queue of every
// other endpoint, exactly as a reception interrupt would. A full queue
// drops the frame, matching the real producer behavior.
type LoopbackBus struct {
	mu        sync.Mutex
	endpoints []*LoopEndpoint
}

// NewLoopbackBus creates an empty bus.
func NewLoopbackBus() *LoopbackBus {
	return &LoopbackBus{}
}

// Open attaches a new endpoint whose incoming traffic lands in q.
func (b *LoopbackBus) Open(q *RxQueue) *LoopEndpoint {
	ep := &LoopEndpoint{bus: b, queue: q}
	b.mu.Lock()
	b.endpoints = append(b.endpoints, ep)
	b.mu.Unlock()
	return ep
}

// LoopEndpoint is one node's attachment to a LoopbackBus. It implements
// CANDriver.
type LoopEndpoint struct {
	bus   *LoopbackBus
	queue *RxQueue
}

// Transmit broadcasts the frame to all other endpoints on the bus.
func (e *LoopEndpoint) Transmit(f protocol.Frame) error {
	if err := f.Validate(); err != nil {
		return err
	}
	e.bus.mu.Lock()
	targets := make([]*LoopEndpoint, 0, len(e.bus.endpoints))
	for _, ep := range e.bus.endpoints {
		if ep != e {
			targets = append(targets, ep)
		}
	}
	e.bus.mu.Unlock()
	for _, t := range targets {
		if t.queue != nil {
			t.queue.Enqueue(f)
		}
	}
	return nil
}
