// Package protocol implements the canduo wire format: classic CAN
// frames with 11-bit identifiers carrying start/stop commands, command
// acknowledgements and ASCII-encoded ADC telemetry between the sampler
// node and the hub node.
package protocol

// Frame identifiers. The bus uses five fixed standard (11-bit)
// identifiers. Note that an Error acknowledge is transmitted with the
// stop-acknowledge identifier; the two are told apart only by the tag
// in payload byte 0. This mirrors the original wire layout and must be
// preserved for compatibility.
const (
	IDStartCmd uint16 = 0x100 // hub -> sampler: start sampling
	IDStopCmd  uint16 = 0x101 // hub -> sampler: stop sampling
	IDStartAck uint16 = 0x180 // sampler -> hub: start accepted
	IDStopAck  uint16 = 0x181 // sampler -> hub: stop accepted, also Error
	IDData     uint16 = 0x200 // sampler -> hub: ADC telemetry
)

// Payload tags carried in byte 0.
const (
	tagStart   byte = 0x01
	tagStop    byte = 0x02
	tagStartOk byte = 0x01
	tagStopOk  byte = 0x02
	tagError   byte = 0xFF
)

// TelemetryMax is the largest encodable ADC value (12-bit converter).
const TelemetryMax = 4095

// Command is a control request sent from the hub to the sampler.
type Command uint8

const (
	CmdStart Command = iota
	CmdStop
)

func (c Command) String() string {
	switch c {
	case CmdStart:
		return "start"
	case CmdStop:
		return "stop"
	}
	return "unknown"
}

// Ack is the sampler's answer to a command. AckError is a distinct
// variant even though it shares IDStopAck on the wire; application
// logic must never conflate the two.
type Ack uint8

const (
	AckStartOk Ack = iota
	AckStopOk
	AckError
)

func (a Ack) String() string {
	switch a {
	case AckStartOk:
		return "start-ok"
	case AckStopOk:
		return "stop-ok"
	case AckError:
		return "error"
	}
	return "unknown"
}

// IsCommandID reports whether id carries a command frame.
func IsCommandID(id uint16) bool {
	return id == IDStartCmd || id == IDStopCmd
}

// IsAckID reports whether id carries an acknowledge frame.
func IsAckID(id uint16) bool {
	return id == IDStartAck || id == IDStopAck
}
