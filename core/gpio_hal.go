package core

// InputPin is a single debounced-input source. Read returns the raw,
// unfiltered logical level: true while the button is physically pressed.
// Target code maps pull-up wiring to this convention.
type InputPin interface {
	Read() bool
}

// PinFunc adapts a plain function to the InputPin interface.
type PinFunc func() bool

func (f PinFunc) Read() bool { return f() }
