// Package serial opens the hub's console UART for host-side tooling.
package serial

import (
	"io"
)

// Port is the serial connection to the hub's console.
// The indirection keeps a mock implementation possible in tests.
type Port interface {
	io.ReadWriteCloser
}

// Config holds serial port configuration.
type Config struct {
	// Device path (e.g. "/dev/ttyACM0", "COM3").
	Device string

	// Baud rate; ignored by USB CDC consoles.
	Baud int

	// ReadTimeout in milliseconds (0 = blocking).
	ReadTimeout int
}

// DefaultConfig returns the configuration matching the hub firmware's
// console settings.
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200,
		ReadTimeout: 100,
	}
}
