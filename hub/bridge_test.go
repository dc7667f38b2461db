package hub

import (
	"strings"
	"testing"
	"time"

	"canduo/protocol"
)

// fakeClock lets tests move the bridge's notion of now.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestBridge() (*Bridge, *strings.Builder, *fakeClock) {
	var out strings.Builder
	clock := &fakeClock{t: time.Unix(1000, 0)}
	b := NewBridge(&out, 2*time.Second)
	b.now = clock.now
	return b, &out, clock
}

func dataFrame(t *testing.T, v uint16) protocol.Frame {
	t.Helper()
	f, err := protocol.EncodeTelemetry(v)
	if err != nil {
		t.Fatalf("EncodeTelemetry(%d): %v", v, err)
	}
	return f
}

func ackFrame(t *testing.T, a protocol.Ack) protocol.Frame {
	t.Helper()
	f, err := protocol.EncodeAck(a)
	if err != nil {
		t.Fatalf("EncodeAck(%v): %v", a, err)
	}
	return f
}

func TestDataFrameUpdatesCacheAndConsole(t *testing.T) {
	b, out, _ := newTestBridge()
	b.HandleFrame(dataFrame(t, 456))

	v, valid := b.LastValue()
	if !valid || v != 456 {
		t.Errorf("cache (%d, %v), want (456, true)", v, valid)
	}
	if !strings.Contains(out.String(), "456") {
		t.Errorf("console output %q does not report the value", out.String())
	}
	if !b.Receiving() {
		t.Error("Receiving false immediately after a data frame")
	}
}

func TestFreshnessWindow(t *testing.T) {
	b, _, clock := newTestBridge()
	b.HandleFrame(dataFrame(t, 100))

	clock.advance(1999 * time.Millisecond)
	if !b.Receiving() {
		t.Error("Receiving false at t=1999ms, want true")
	}
	clock.advance(1 * time.Millisecond)
	if b.Receiving() {
		t.Error("Receiving true at t=2000ms, want false")
	}
}

func TestStalenessSelfHeals(t *testing.T) {
	b, _, clock := newTestBridge()
	b.HandleFrame(dataFrame(t, 100))
	clock.advance(5 * time.Second)
	if b.Receiving() {
		t.Fatal("Receiving true after window elapsed")
	}
	b.HandleFrame(dataFrame(t, 200))
	if !b.Receiving() {
		t.Error("Receiving false after fresh frame")
	}
}

func TestStopAckInvalidatesCache(t *testing.T) {
	b, out, _ := newTestBridge()
	b.HandleFrame(dataFrame(t, 321))
	b.HandleFrame(ackFrame(t, protocol.AckStopOk))

	if b.Receiving() {
		t.Error("Receiving true right after stop-ok, want false")
	}
	if _, valid := b.LastValue(); valid {
		t.Error("cache still valid after stop-ok")
	}
	if !strings.Contains(out.String(), "sampling stopped") {
		t.Errorf("console output %q missing stop status", out.String())
	}
}

func TestStartAckReportsWithoutTouchingCache(t *testing.T) {
	b, out, _ := newTestBridge()
	b.HandleFrame(dataFrame(t, 42))
	b.HandleFrame(ackFrame(t, protocol.AckStartOk))

	if !b.Receiving() {
		t.Error("start-ok invalidated the cache")
	}
	if !strings.Contains(out.String(), "sampling started") {
		t.Errorf("console output %q missing start status", out.String())
	}
}

func TestErrorAckSurfacedAsFailureText(t *testing.T) {
	b, out, _ := newTestBridge()
	b.HandleFrame(ackFrame(t, protocol.AckError))
	if !strings.Contains(out.String(), "sampler error") {
		t.Errorf("console output %q missing error line", out.String())
	}
}

func TestMalformedFramesDroppedSilently(t *testing.T) {
	b, out, _ := newTestBridge()

	bad := protocol.Frame{ID: protocol.IDData, Len: 8}
	copy(bad.Data[:], "12ab5678")
	b.HandleFrame(bad)

	unknown := protocol.Frame{ID: 0x3F0, Len: 8}
	b.HandleFrame(unknown)

	if out.Len() != 0 {
		t.Errorf("dropped frames wrote %q to the console", out.String())
	}
	if _, valid := b.LastValue(); valid {
		t.Error("dropped frame mutated the cache")
	}
}
