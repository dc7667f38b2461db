package core

import (
	"testing"

	"canduo/protocol"
)

func TestLoopbackDeliversToPeersOnly(t *testing.T) {
	bus := NewLoopbackBus()
	qa := NewRxQueue(8)
	qb := NewRxQueue(8)
	a := bus.Open(qa)
	bus.Open(qb)

	f, _ := protocol.EncodeCommand(protocol.CmdStart)
	if err := a.Transmit(f); err != nil {
		t.Fatalf("Transmit: %v", err)
	}
	if qa.Len() != 0 {
		t.Error("sender received its own frame")
	}
	got, ok := qb.Dequeue()
	if !ok {
		t.Fatal("peer queue empty after transmit")
	}
	if got != f {
		t.Errorf("delivered frame %+v, want %+v", got, f)
	}
}

func TestLoopbackRejectsInvalidFrame(t *testing.T) {
	bus := NewLoopbackBus()
	ep := bus.Open(NewRxQueue(8))
	if err := ep.Transmit(protocol.Frame{ID: 0x800, Len: 8}); err == nil {
		t.Error("frame with 12-bit identifier accepted")
	}
}

func TestLoopbackFullPeerQueueDrops(t *testing.T) {
	bus := NewLoopbackBus()
	q := NewRxQueue(2)
	a := bus.Open(NewRxQueue(8))
	bus.Open(q)

	f, _ := protocol.EncodeCommand(protocol.CmdStop)
	for i := 0; i < 3; i++ {
		if err := a.Transmit(f); err != nil {
			t.Fatalf("Transmit %d: %v", i, err)
		}
	}
	if q.Len() != 2 {
		t.Errorf("peer queue holds %d frames, want 2", q.Len())
	}
	if q.Dropped() != 1 {
		t.Errorf("peer queue dropped %d frames, want 1", q.Dropped())
	}
}
