//go:build tinygo

// Package pico wires the canduo node core to a Raspberry Pi Pico with
// an MCP2515 CAN controller on SPI0. Both node firmwares share these
// shims; the role-specific main packages live next to this one.
package pico

import (
	"machine"
	"sync/atomic"
	"time"

	"tinygo.org/x/drivers/mcp2515"

	"canduo/core"
	"canduo/protocol"
)

// Board wiring.
const (
	PinCANCS    = machine.GP17
	PinADC      = machine.GP26
	PinBtnStart = machine.GP14
	PinBtnStop  = machine.GP15
)

// SetupCAN brings up SPI0 and the MCP2515 at 500 kbit/s. Received
// frames land in q via Poll.
func SetupCAN(q *core.RxQueue) (*CANBus, error) {
	err := machine.SPI0.Configure(machine.SPIConfig{
		Frequency: 8_000_000,
		SCK:       machine.GP18,
		SDO:       machine.GP19,
		SDI:       machine.GP16,
	})
	if err != nil {
		return nil, err
	}
	dev := mcp2515.New(machine.SPI0, PinCANCS)
	dev.Configure()
	if err := dev.Begin(mcp2515.CAN500kBps, mcp2515.Clock8MHz); err != nil {
		return nil, err
	}
	return &CANBus{dev: dev, queue: q}, nil
}

// CANBus adapts the MCP2515 driver to core.CANDriver and feeds the
// node's receive queue.
type CANBus struct {
	dev   *mcp2515.Device
	queue *core.RxQueue
}

// Transmit hands the frame to the controller. The controller's transmit
// buffers bound the wait; a rejected frame is reported as a timeout.
func (b *CANBus) Transmit(f protocol.Frame) error {
	if err := f.Validate(); err != nil {
		return err
	}
	if err := b.dev.Tx(uint32(f.ID), f.Len, f.Data[:f.Len]); err != nil {
		return core.ErrTimeout
	}
	return nil
}

// Poll drains the controller's receive buffers into the node queue.
// Called from the main loop; the MCP2515 holds at most two frames, so
// the loop pace sets the effective interrupt latency.
func (b *CANBus) Poll() {
	for b.dev.Received() {
		msg, err := b.dev.ReadMessage()
		if err != nil {
			return
		}
		var f protocol.Frame
		f.ID = uint16(msg.ID & 0x7FF)
		f.Len = msg.Dlc
		if f.Len > 8 {
			f.Len = 8
		}
		copy(f.Data[:f.Len], msg.Data)
		b.queue.Enqueue(f)
	}
}

// ADCIn adapts machine.ADC to core.ADCDriver.
type ADCIn struct {
	ch machine.ADC
}

// NewADC configures pin for analog input.
func NewADC(pin machine.Pin) *ADCIn {
	machine.InitADC()
	ch := machine.ADC{Pin: pin}
	ch.Configure(machine.ADCConfig{})
	return &ADCIn{ch: ch}
}

// ReadRaw returns the 12-bit conversion result. machine.ADC scales to
// 16 bits, so shift back down.
func (a *ADCIn) ReadRaw() (uint16, error) {
	return a.ch.Get() >> 4, nil
}

// ButtonPin adapts an active-low pulled-up input to core.InputPin.
type ButtonPin struct {
	pin machine.Pin
}

// NewButtonPin configures p with the internal pull-up.
func NewButtonPin(p machine.Pin) *ButtonPin {
	p.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return &ButtonPin{pin: p}
}

// Read returns true while the button is held (pin pulled low).
func (b *ButtonPin) Read() bool {
	return !b.pin.Get()
}

// TickTimer implements core.PeriodicTimer with a background goroutine
// raising an atomic flag. The flag is the only state shared with the
// main loop, matching the timer-interrupt model.
type TickTimer struct {
	period  time.Duration
	armed   uint32
	pending uint32
}

// NewTickTimer starts the tick source; it stays silent until Arm.
func NewTickTimer(period time.Duration) *TickTimer {
	t := &TickTimer{period: period}
	go t.run()
	return t
}

func (t *TickTimer) run() {
	for {
		time.Sleep(t.period)
		if atomic.LoadUint32(&t.armed) == 1 {
			atomic.StoreUint32(&t.pending, 1)
		}
	}
}

func (t *TickTimer) Arm() {
	atomic.StoreUint32(&t.armed, 1)
}

func (t *TickTimer) Disarm() {
	atomic.StoreUint32(&t.armed, 0)
	atomic.StoreUint32(&t.pending, 0)
}

func (t *TickTimer) Pending() bool {
	return atomic.SwapUint32(&t.pending, 0) == 1
}
