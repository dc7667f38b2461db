package protocol

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when encoding a telemetry value that
	// does not fit the 12-bit converter range.
	ErrOutOfRange = errors.New("protocol: value out of range")

	// ErrUnknownCommand is returned by DecodeCommand when the frame
	// carries a command identifier but an unrecognized tag byte. It is
	// distinct from MalformedFrameError so the sampler can answer with
	// an Error acknowledge instead of silently dropping the frame.
	ErrUnknownCommand = errors.New("protocol: unknown command tag")
)

// MalformedFrameError reports a frame that cannot be decoded as the
// requested message kind. Consumers drop such frames without retry.
type MalformedFrameError struct {
	ID     uint16
	Reason string
}

func (e *MalformedFrameError) Error() string {
	return fmt.Sprintf("protocol: malformed frame id=0x%03X: %s", e.ID, e.Reason)
}

func malformed(id uint16, reason string) error {
	return &MalformedFrameError{ID: id, Reason: reason}
}
