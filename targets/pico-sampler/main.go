//go:build tinygo

// Sampler node firmware for the Raspberry Pi Pico: digitizes the
// analog input once per sample period while started and reports the
// value over CAN.
package main

import (
	"time"

	"canduo/core"
	"canduo/sampler"
	"canduo/targets/pico"
)

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

	adc := pico.NewADC(pico.PinADC)
	timer := pico.NewTickTimer(cfg.SamplePeriod)
	node := sampler.NewNode(cfg, queue, bus, adc, timer)

	for {
		bus.Poll()
		if err := node.Step(); err != nil {
			// Lost acknowledge or data frame; the hub observes the gap.
			println("transmit failed:", err.Error())
		}
		time.Sleep(time.Millisecond)
	}
}
