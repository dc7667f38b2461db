package core

import (
	"errors"

	"canduo/protocol"
)

// ErrTimeout is returned by CANDriver.Transmit when the frame could not
// be handed to the bus within the driver's transmit window. The core
// never retries automatically; the main loop decides what to do.
var ErrTimeout = errors.New("core: transmit timed out")

// CANDriver is the abstract CAN interface node code transmits through.
// Implementations are target-specific (MCP2515 over SPI, SocketCAN,
// the in-memory loopback bus).
//
// Reception deliberately has no callback: drivers deliver incoming
// frames straight into the node's RxQueue from their interrupt handler
// or reader goroutine, and the main loop drains the queue. This keeps
// interrupt work O(1) and keeps all protocol state out of interrupt
// context.
type CANDriver interface {
	// Transmit hands a frame to the bus. Bounded time; returns
	// ErrTimeout if the window elapses.
	Transmit(f protocol.Frame) error
}
