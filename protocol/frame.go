package protocol

// Frame represents a classic CAN 2.0A frame as used on the canduo bus:
// standard 11-bit identifier, up to 8 data bytes. The protocol always
// declares a length of 8. A Frame is a plain value; it is copied into
// and out of receive queues and never shared by reference.
type Frame struct {
	ID   uint16
	Len  uint8
	Data [8]byte
}

const maxStdID = 0x7FF

// Validate returns an error if the frame cannot exist on a classic CAN
// bus with standard addressing.
func (f Frame) Validate() error {
	if f.ID > maxStdID {
		return &MalformedFrameError{ID: f.ID, Reason: "identifier exceeds 11 bits"}
	}
	if f.Len > 8 {
		return &MalformedFrameError{ID: f.ID, Reason: "length exceeds 8 bytes"}
	}
	return nil
}

// newFrame builds a full-length frame with the given identifier and
// payload byte 0; the remaining bytes stay zero.
func newFrame(id uint16, tag byte) Frame {
	f := Frame{ID: id, Len: 8}
	f.Data[0] = tag
	return f
}
