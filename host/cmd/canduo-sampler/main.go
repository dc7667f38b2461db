//go:build linux

// canduo-sampler runs the sampler node on a Linux host against a
// SocketCAN interface, with a synthetic triangle wave in place of the
// ADC. Useful for exercising the hub end to end on vcan without
// hardware.
package main

import (
	"flag"
	"log"
	"sync/atomic"
	"time"

	"canduo/core"
	"canduo/host/socketcan"
	"canduo/protocol"
	"canduo/sampler"
)

var iface = flag.String("iface", "vcan0", "SocketCAN interface name")

func main() {
	flag.Parse()

	cfg := core.DefaultConfig()
	queue := core.NewRxQueue(cfg.QueueCapacity)

	bus, err := socketcan.Open(*iface, queue)
	if err != nil {
		log.Fatalf("Failed to open %s: %v", *iface, err)
	}
	defer bus.Close()

	err = bus.SetFilter([]uint16{protocol.IDStartCmd, protocol.IDStopCmd})
	if err != nil {
		log.Printf("Warning: failed to set filters: %v", err)
	}

	timer := newTickTimer(cfg.SamplePeriod)
	node := sampler.NewNode(cfg, queue, bus, &triangleADC{}, timer)
	log.Printf("Sampler running on %s", *iface)

	last := node.State()
	for {
		if err := node.Step(); err != nil {
			log.Printf("Transmit failed: %v", err)
		}
		if s := node.State(); s != last {
			log.Printf("State: %v -> %v", last, s)
			last = s
		}
		time.Sleep(10 * time.Millisecond)
	}
}

// triangleADC sweeps the full 12-bit range up and down.
type triangleADC struct {
	v    uint16
	down bool
}

func (a *triangleADC) ReadRaw() (uint16, error) {
	if a.down {
		a.v -= 64
		if a.v == 0 {
			a.down = false
		}
	} else {
		a.v += 64
		if a.v >= protocol.TelemetryMax-63 {
			a.down = true
		}
	}
	return a.v, nil
}

// tickTimer is the hosted stand-in for the firmware's periodic timer
// interrupt: a goroutine raising an atomic pending flag.
type tickTimer struct {
	period  time.Duration
	armed   uint32
	pending uint32
}

func newTickTimer(period time.Duration) *tickTimer {
	t := &tickTimer{period: period}
	go t.run()
	return t
}

func (t *tickTimer) run() {
	for {
		time.Sleep(t.period)
		if atomic.LoadUint32(&t.armed) == 1 {
			atomic.StoreUint32(&t.pending, 1)
		}
	}
}

func (t *tickTimer) Arm()    { atomic.StoreUint32(&t.armed, 1) }
func (t *tickTimer) Disarm() { atomic.StoreUint32(&t.armed, 0); atomic.StoreUint32(&t.pending, 0) }
func (t *tickTimer) Pending() bool {
	return atomic.SwapUint32(&t.pending, 0) == 1
}
