// Package sampler implements the sampling node: a state machine that
// starts and stops periodic ADC telemetry in response to commands
// received over the CAN bus, acknowledging each one.
package sampler

import (
	"errors"

	"canduo/core"
	"canduo/protocol"
)

// State is the sampler's control state.
type State uint8

const (
	// StateIdle is the boot state: commands are accepted, no telemetry.
	StateIdle State = iota

	// StateSampling emits one telemetry frame per timer tick.
	StateSampling

	// StateError is latched by Fault and persists until Reset. Commands
	// with a valid tag are ignored in this state.
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSampling:
		return "sampling"
	case StateError:
		return "error"
	}
	return "unknown"
}

// Node owns the sampler's control state. All methods run in the main
// loop; the only interrupt-facing surface is the receive queue, which
// the CAN driver fills directly.
type Node struct {
	state   State
	samples uint32

	queue *core.RxQueue
	can   core.CANDriver
	adc   core.ADCDriver
	timer core.PeriodicTimer
}

// NewNode wires a sampler node. queue is shared with the CAN driver:
// the driver's reception path enqueues into it, Step drains it.
func NewNode(cfg core.Config, queue *core.RxQueue, can core.CANDriver, adc core.ADCDriver, timer core.PeriodicTimer) *Node {
	if queue == nil {
		queue = core.NewRxQueue(cfg.QueueCapacity)
	}
	return &Node{
		queue: queue,
		can:   can,
		adc:   adc,
		timer: timer,
	}
}

// Queue returns the node's receive queue.
func (n *Node) Queue() *core.RxQueue { return n.queue }

// State returns the current control state.
func (n *Node) State() State { return n.state }

// Samples returns how many telemetry frames have been sent since boot.
func (n *Node) Samples() uint32 { return n.samples }

// Step runs one main-loop iteration: drain queued commands, then emit a
// telemetry frame if the sample timer fired while sampling. The
// returned error reports transmit failures only; the control state is
// already updated when it is non-nil.
func (n *Node) Step() error {
	var firstErr error
	for {
		f, ok := n.queue.Dequeue()
		if !ok {
			break
		}
		if err := n.handleFrame(f); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if n.timer.Pending() && n.state == StateSampling {
		if err := n.sampleTick(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// handleFrame decodes and applies one queued frame. Frames that do not
// decode as commands are dropped silently; a command identifier with an
// unrecognized tag is answered with an Error acknowledge and changes
// nothing.
func (n *Node) handleFrame(f protocol.Frame) error {
	cmd, err := protocol.DecodeCommand(f)
	if err != nil {
		if errors.Is(err, protocol.ErrUnknownCommand) {
			return n.ack(protocol.AckError)
		}
		return nil
	}
	switch cmd {
	case protocol.CmdStart:
		return n.handleStart()
	case protocol.CmdStop:
		return n.handleStop()
	}
	return nil
}

func (n *Node) handleStart() error {
	// Already active (or faulted): ignore, no duplicate acknowledge.
	if n.state != StateIdle {
		return nil
	}
	n.state = StateSampling
	n.timer.Arm()
	return n.ack(protocol.AckStartOk)
}

func (n *Node) handleStop() error {
	switch n.state {
	case StateSampling:
		n.state = StateIdle
		n.timer.Disarm()
		return n.ack(protocol.AckStopOk)
	case StateIdle:
		// Idempotent stop: acknowledge success so the hub never has to
		// special-case a stop that already happened.
		return n.ack(protocol.AckStopOk)
	}
	return nil
}

// sampleTick reads the analog input and transmits one telemetry frame.
// A failed conversion skips the tick without counting it; sampling
// continues on the next tick.
func (n *Node) sampleTick() error {
	raw, err := n.adc.ReadRaw()
	if err != nil {
		return nil
	}
	f, err := protocol.EncodeTelemetry(raw)
	if err != nil {
		// Driver returned more than 12 bits; treat like a failed read.
		return nil
	}
	if err := n.can.Transmit(f); err != nil {
		return err
	}
	n.samples++
	return nil
}

func (n *Node) ack(a protocol.Ack) error {
	f, err := protocol.EncodeAck(a)
	if err != nil {
		return err
	}
	return n.can.Transmit(f)
}

// Fault latches the terminal error state, e.g. on a CAN controller
// fault detected by target code. Sampling stops immediately.
func (n *Node) Fault() {
	n.state = StateError
	n.timer.Disarm()
}

// Reset clears a latched fault and returns the node to idle. It is the
// external reset referenced by the state machine; nothing on the bus
// triggers it.
func (n *Node) Reset() {
	n.state = StateIdle
	n.timer.Disarm()
}
