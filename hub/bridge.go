package hub

import (
	"fmt"
	"io"
	"time"

	"canduo/protocol"
)

// Console lines are CRLF terminated for dumb UART terminals.
const (
	textStarted      = "sampling started\r\n"
	textStopped      = "sampling stopped\r\n"
	textSamplerError = "sampler error\r\n"
)

// Bridge consumes frames received from the sampler and forwards them as
// human-readable text. It also tracks the freshness of the last ADC
// value: "receiving data" is computed from the last stamp rather than
// stored, so staleness heals itself without a dedicated timer.
type Bridge struct {
	out    io.Writer
	window time.Duration
	now    func() time.Time

	value uint16
	valid bool
	stamp time.Time
}

// NewBridge writes console text to out and considers a sample current
// for window after reception.
func NewBridge(out io.Writer, window time.Duration) *Bridge {
	return &Bridge{out: out, window: window, now: time.Now}
}

// HandleFrame dispatches one received frame by identifier. Frames that
// decode as neither telemetry nor acknowledge are dropped silently, per
// the protocol's no-retry rule.
func (b *Bridge) HandleFrame(f protocol.Frame) {
	switch f.ID {
	case protocol.IDData:
		v, err := protocol.DecodeTelemetry(f)
		if err != nil {
			return
		}
		b.value = v
		b.valid = true
		b.stamp = b.now()
		fmt.Fprintf(b.out, "ADC: %4d\r\n", v)
	case protocol.IDStartAck, protocol.IDStopAck:
		a, err := protocol.DecodeAck(f)
		if err != nil {
			return
		}
		b.handleAck(a)
	}
}

func (b *Bridge) handleAck(a protocol.Ack) {
	switch a {
	case protocol.AckStartOk:
		io.WriteString(b.out, textStarted)
	case protocol.AckStopOk:
		// Sampling stopped: whatever we cached is no longer telemetry.
		b.valid = false
		io.WriteString(b.out, textStopped)
	case protocol.AckError:
		io.WriteString(b.out, textSamplerError)
	}
}

// Receiving reports whether a valid sample arrived within the freshness
// window.
func (b *Bridge) Receiving() bool {
	return b.valid && b.now().Sub(b.stamp) < b.window
}

// LastValue returns the cached ADC value and whether it is valid. The
// value may be stale; Receiving is the freshness check.
func (b *Bridge) LastValue() (uint16, bool) {
	return b.value, b.valid
}
