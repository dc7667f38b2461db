//go:build tinygo

// Hub node firmware for the Raspberry Pi Pico: two buttons issue
// start/stop commands to the sampler, telemetry and acknowledgements
// are relayed to the USB serial console.
package main

import (
	"machine"
	"time"

	"canduo/core"
	"canduo/hub"
	"canduo/targets/pico"
)

// Poll cadence of the main loop; the debounce window is counted in
// these ticks (5 ticks x 5 ms = 25 ms stabilization).
const pollTick = 5 * time.Millisecond

func main() {
	cfg := core.DefaultConfig()
	queue := core.NewRxQueue(cfg.QueueCapacity)

	bus, err := pico.SetupCAN(queue)
	if err != nil {
		for {
			println("CAN init failed:", err.Error())
			time.Sleep(time.Second)
		}
	}

	startBtn := pico.NewButtonPin(pico.PinBtnStart)
	stopBtn := pico.NewButtonPin(pico.PinBtnStop)
	node := hub.NewNode(cfg, queue, bus, startBtn, stopBtn, machine.Serial)

	for {
		bus.Poll()
		if err := node.Step(); err != nil {
			println("transmit failed:", err.Error())
		}
		time.Sleep(pollTick)
	}
}
