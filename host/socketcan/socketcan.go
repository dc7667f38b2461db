//go:build linux

// Package socketcan implements core.CANDriver over a Linux SocketCAN
// interface, so a canduo node can run on a host against a real adapter
// or a vcan device.
package socketcan

import (
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sys/unix"

	"canduo/core"
	"canduo/protocol"
)

const (
	canRawProtocol = 1   // CAN_RAW
	solCANRaw      = 101 // SOL_CAN_RAW
	canRawFilter   = 1   // CAN_RAW_FILTER

	// Linux struct can_frame is 16 bytes for classic CAN.
	frameSize = 16

	canEffFlag = 0x80000000
	canRtrFlag = 0x40000000
	canErrFlag = 0x20000000
	canStdMask = 0x7FF
)

// transmitTimeout bounds how long Transmit waits for the socket to
// accept a frame before reporting core.ErrTimeout.
const transmitTimeout = 100 * time.Millisecond

// Bus is one bound CAN_RAW socket. Received frames are enqueued into
// the node's receive queue by a reader goroutine, which stands in for
// the reception interrupt of the firmware targets.
type Bus struct {
	fd     int
	ifname string
	queue  *core.RxQueue

	mu     sync.Mutex
	closed bool
}

// Open binds a raw CAN socket to ifname and starts the reader. Frames
// land in queue; a full queue silently drops, like on the targets.
func Open(ifname string, queue *core.RxQueue) (*Bus, error) {
	fd, err := unix.Socket(unix.AF_CAN, unix.SOCK_RAW, canRawProtocol)
	if err != nil {
		return nil, fmt.Errorf("failed to create CAN socket: %w", err)
	}

	ifreq, err := unix.NewIfreq(ifname)
	if err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("failed to create ifreq: %w", err)
	}
	if err := unix.IoctlIfreq(fd, unix.SIOCGIFINDEX, ifreq); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("failed to get interface index for %s: %w", ifname, err)
	}

	addr := &unix.SockaddrCAN{Ifindex: int(ifreq.Uint32())}
	if err := unix.Bind(fd, addr); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("failed to bind socket to %s: %w", ifname, err)
	}

	b := &Bus{fd: fd, ifname: ifname, queue: queue}
	go b.readLoop()
	return b, nil
}

// Transmit writes one frame. It waits up to transmitTimeout for the
// socket to become writable and reports core.ErrTimeout otherwise; the
// caller decides whether the loss matters.
func (b *Bus) Transmit(f protocol.Frame) error {
	if err := f.Validate(); err != nil {
		return err
	}

	pfd := []unix.PollFd{{Fd: int32(b.fd), Events: unix.POLLOUT}}
	n, err := unix.Poll(pfd, int(transmitTimeout/time.Millisecond))
	if err != nil {
		return fmt.Errorf("poll on %s: %w", b.ifname, err)
	}
	if n == 0 {
		return core.ErrTimeout
	}

	buf := make([]byte, frameSize)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(f.ID))
	buf[4] = f.Len
	copy(buf[8:16], f.Data[:])
	if _, err := unix.Write(b.fd, buf); err != nil {
		return fmt.Errorf("write on %s: %w", b.ifname, err)
	}
	return nil
}

// readLoop feeds received classic data frames into the node queue.
// Extended, RTR and error frames are foreign to the protocol and are
// skipped before they reach the queue.
func (b *Bus) readLoop() {
	buf := make([]byte, frameSize)
	for {
		n, err := unix.Read(b.fd, buf)
		if err != nil {
			b.mu.Lock()
			closed := b.closed
			b.mu.Unlock()
			if closed {
				return
			}
			continue
		}
		if n < frameSize {
			continue
		}
		id := binary.LittleEndian.Uint32(buf[0:4])
		if id&(canEffFlag|canRtrFlag|canErrFlag) != 0 {
			continue
		}
		f := protocol.Frame{ID: uint16(id & canStdMask), Len: buf[4]}
		if f.Len > 8 {
			f.Len = 8
		}
		copy(f.Data[:], buf[8:16])
		b.queue.Enqueue(f)
	}
}

// SetFilter restricts reception to exact matches of the given
// identifiers. Useful on busy buses; the protocol identifiers are in
// canduo/protocol.
func (b *Bus) SetFilter(ids []uint16) error {
	if len(ids) == 0 {
		return nil
	}
	// struct can_filter is 8 bytes: 4 for id, 4 for mask.
	buf := make([]byte, len(ids)*8)
	for i, id := range ids {
		binary.LittleEndian.PutUint32(buf[i*8:], uint32(id))
		binary.LittleEndian.PutUint32(buf[i*8+4:], 0xFFFFFFFF)
	}
	if err := unix.SetsockoptString(b.fd, solCANRaw, canRawFilter, string(buf)); err != nil {
		return fmt.Errorf("failed to set filter: %w", err)
	}
	return nil
}

// Close shuts the socket down and stops the reader.
func (b *Bus) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	b.mu.Unlock()
	return unix.Close(b.fd)
}
