// canduo-console attaches to the hub node's console UART and streams
// its text output to stdout.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"strings"

	"canduo/host/serial"
)

var (
	device = flag.String("device", "/dev/ttyACM0", "Serial device path")
	baud   = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
)

func main() {
	flag.Parse()

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud
	cfg.ReadTimeout = 0 // block until the hub talks

	port, err := serial.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to open %s: %v", *device, err)
	}
	defer port.Close()
	log.Printf("Connected to hub console on %s", *device)

	scanner := bufio.NewScanner(port)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		fmt.Println(line)
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("Read error: %v", err)
	}
}
