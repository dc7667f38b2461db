//go:build linux

// canduo-hub runs the hub's telemetry bridge on a Linux host against a
// SocketCAN interface (typically vcan0 with a simulated sampler, or a
// USB CAN adapter on the real bus). Typed "start" and "stop" lines
// stand in for the two buttons; host keyboards do not bounce, so the
// debounce filter is bypassed.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"canduo/core"
	"canduo/host/socketcan"
	"canduo/hub"
	"canduo/protocol"
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

	// Only sampler-to-hub traffic matters here.
	err = bus.SetFilter([]uint16{protocol.IDData, protocol.IDStartAck, protocol.IDStopAck})
	if err != nil {
		log.Printf("Warning: failed to set filters: %v", err)
	}

	bridge := hub.NewBridge(os.Stdout, cfg.FreshnessWindow)
	log.Printf("Hub bridge running on %s; type 'start' or 'stop'", *iface)

	commands := make(chan protocol.Command)
	go readCommands(commands)

	poll := time.NewTicker(10 * time.Millisecond)
	defer poll.Stop()

	receiving := false
	for {
		select {
		case cmd := <-commands:
			f, err := protocol.EncodeCommand(cmd)
			if err != nil {
				log.Printf("Encode %v: %v", cmd, err)
				continue
			}
			if err := bus.Transmit(f); err != nil {
				log.Printf("Transmit %v: %v", cmd, err)
			}
		case <-poll.C:
			for {
				f, ok := queue.Dequeue()
				if !ok {
					break
				}
				bridge.HandleFrame(f)
			}
			if now := bridge.Receiving(); now != receiving {
				receiving = now
				if !receiving {
					fmt.Println("telemetry stale")
				}
			}
		}
	}
}

func readCommands(out chan<- protocol.Command) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		switch strings.TrimSpace(scanner.Text()) {
		case "start":
			out <- protocol.CmdStart
		case "stop":
			out <- protocol.CmdStop
		case "":
		default:
			fmt.Println("commands: start, stop")
		}
	}
}
