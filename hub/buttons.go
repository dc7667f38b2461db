// Package hub implements the operator node: two debounced buttons that
// issue start/stop commands to the sampler, and a telemetry bridge that
// relays acknowledgements and ADC data to a text console.
package hub

// Event is the outcome of one button poll.
type Event uint8

const (
	EventNone Event = iota
	EventPressed
	EventReleased
)

// Button filters one noisy digital input into stable press/release
// events with a decrementing stability counter. Each button is
// independent; the poll cadence comes from the main loop.
type Button struct {
	pressed bool   // last confirmed state
	lastRaw bool   // most recent raw sample
	counter uint32 // polls left until lastRaw counts as stable
	window  uint32
}

// NewButton returns a button in the released state. window is the
// number of consecutive unchanged polls required to confirm a level.
func NewButton(window uint32) *Button {
	if window == 0 {
		window = 1
	}
	return &Button{window: window}
}

// Update feeds one raw poll sample through the filter. It returns
// EventPressed or EventReleased exactly once per confirmed transition
// and EventNone otherwise.
func (b *Button) Update(raw bool) Event {
	if raw != b.lastRaw {
		// Level moved: restart the stabilization window.
		b.lastRaw = raw
		b.counter = b.window
		return EventNone
	}
	if b.counter == 0 {
		return EventNone
	}
	b.counter--
	if b.counter > 0 {
		return EventNone
	}
	// Level survived the whole window; confirm it.
	if b.lastRaw == b.pressed {
		return EventNone
	}
	b.pressed = b.lastRaw
	if b.pressed {
		return EventPressed
	}
	return EventReleased
}

// Pressed returns the last confirmed state.
func (b *Button) Pressed() bool { return b.pressed }
