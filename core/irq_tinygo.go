//go:build tinygo

package core

import "runtime/interrupt"

// irqLock guards the queue's multi-field update. On a single-core
// microcontroller masking interrupts is sufficient: the producer runs
// in interrupt context and the consumer in the main loop, so the store
// of the frame, the head advance and the count increment appear atomic
// to both sides.
type irqLock struct {
	state interrupt.State
}

func (l *irqLock) lock()   { l.state = interrupt.Disable() }
func (l *irqLock) unlock() { interrupt.Restore(l.state) }
