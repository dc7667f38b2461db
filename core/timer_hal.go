package core

// PeriodicTimer drives the sampler's telemetry cadence. The timer
// interrupt only raises a pending flag; the actual ADC read and frame
// transmission happen in the main loop when it collects the flag.
type PeriodicTimer interface {
	// Arm starts the periodic tick.
	Arm()

	// Disarm stops it. Any not-yet-collected tick is discarded.
	Disarm()

	// Pending reports whether a tick fired since the last call and
	// clears the flag. Multiple ticks between polls collapse into one.
	Pending() bool
}
