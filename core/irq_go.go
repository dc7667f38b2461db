//go:build !tinygo

package core

import "sync"

// irqLock guards the queue's multi-field update. On hosted builds the
// "interrupt context" is a goroutine (SocketCAN reader, loopback bus),
// so the critical section degrades to a mutex.
type irqLock struct {
	mu sync.Mutex
}

func (l *irqLock) lock()   { l.mu.Lock() }
func (l *irqLock) unlock() { l.mu.Unlock() }
