package core

import "errors"

// ErrHardware is returned by ADCDriver.ReadRaw when the conversion
// failed. The sampler skips the tick and carries on; persistent failure
// is visible only as missing telemetry on the hub.
var ErrHardware = errors.New("core: analog read failed")

// ADCDriver is the abstract ADC interface the sampler reads through.
type ADCDriver interface {
	// ReadRaw performs a one-shot conversion of the sampled channel and
	// returns the raw 12-bit value (0-4095).
	ReadRaw() (uint16, error)
}
