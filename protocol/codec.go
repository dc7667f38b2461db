package protocol

// EncodeCommand builds the wire frame for a command. Byte 0 carries the
// tag, bytes 1-7 are reserved and stay zero.
func EncodeCommand(c Command) (Frame, error) {
	switch c {
	case CmdStart:
		return newFrame(IDStartCmd, tagStart), nil
	case CmdStop:
		return newFrame(IDStopCmd, tagStop), nil
	}
	return Frame{}, ErrUnknownCommand
}

// DecodeCommand extracts a command from a frame. A frame whose
// identifier is not a command identifier fails with MalformedFrameError
// and is dropped by the consumer. A command identifier with an
// unrecognized tag byte fails with ErrUnknownCommand; the sampler
// answers those with an Error acknowledge.
func DecodeCommand(f Frame) (Command, error) {
	switch f.ID {
	case IDStartCmd:
		if f.Data[0] != tagStart {
			return 0, ErrUnknownCommand
		}
		return CmdStart, nil
	case IDStopCmd:
		if f.Data[0] != tagStop {
			return 0, ErrUnknownCommand
		}
		return CmdStop, nil
	}
	return 0, malformed(f.ID, "not a command identifier")
}

// EncodeAck builds the wire frame for an acknowledge. AckError reuses
// the stop-acknowledge identifier with its own tag.
func EncodeAck(a Ack) (Frame, error) {
	switch a {
	case AckStartOk:
		return newFrame(IDStartAck, tagStartOk), nil
	case AckStopOk:
		return newFrame(IDStopAck, tagStopOk), nil
	case AckError:
		return newFrame(IDStopAck, tagError), nil
	}
	return Frame{}, malformed(0, "unknown acknowledge variant")
}

// DecodeAck extracts an acknowledge from a frame.
func DecodeAck(f Frame) (Ack, error) {
	switch f.ID {
	case IDStartAck:
		if f.Data[0] != tagStartOk {
			return 0, malformed(f.ID, "unknown acknowledge tag")
		}
		return AckStartOk, nil
	case IDStopAck:
		switch f.Data[0] {
		case tagStopOk:
			return AckStopOk, nil
		case tagError:
			return AckError, nil
		}
		return 0, malformed(f.ID, "unknown acknowledge tag")
	}
	return 0, malformed(f.ID, "not an acknowledge identifier")
}

// EncodeTelemetry builds a data frame from a raw ADC value. The value
// is written as 8 ASCII decimal digits, most significant first, zero
// padded. Values above TelemetryMax are a caller bug and are rejected
// before anything reaches the bus.
func EncodeTelemetry(v uint16) (Frame, error) {
	if v > TelemetryMax {
		return Frame{}, ErrOutOfRange
	}
	f := Frame{ID: IDData, Len: 8}
	for i := len(f.Data) - 1; i >= 0; i-- {
		f.Data[i] = '0' + byte(v%10)
		v /= 10
	}
	return f, nil
}

// DecodeTelemetry extracts the ADC value from a data frame. Every
// payload byte must be an ASCII digit and the assembled value must not
// exceed TelemetryMax; either violation fails the whole decode without
// partial output.
func DecodeTelemetry(f Frame) (uint16, error) {
	if f.ID != IDData {
		return 0, malformed(f.ID, "not a data identifier")
	}
	var v uint32
	for _, b := range f.Data {
		if b < '0' || b > '9' {
			return 0, malformed(f.ID, "payload byte is not an ASCII digit")
		}
		v = v*10 + uint32(b-'0')
	}
	if v > TelemetryMax {
		return 0, malformed(f.ID, "value exceeds 12-bit range")
	}
	return uint16(v), nil
}
