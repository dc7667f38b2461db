package hub

import "testing"

// poll feeds the same raw level n times and returns the events seen.
func poll(b *Button, raw bool, n int) []Event {
	var events []Event
	for i := 0; i < n; i++ {
		if e := b.Update(raw); e != EventNone {
			events = append(events, e)
		}
	}
	return events
}

func TestPressRequiresFullWindow(t *testing.T) {
	const window = 5
	b := NewButton(window)

	// Transition sample starts the window, then too few stable polls.
	b.Update(true)
	if got := poll(b, true, window-1); len(got) != 0 {
		t.Errorf("press confirmed after %d stable polls, want none before %d", window-1, window)
	}

	// One more stable poll completes the window.
	if e := b.Update(true); e != EventPressed {
		t.Errorf("poll %d returned %v, want EventPressed", window, e)
	}

	// Holding further emits nothing.
	if got := poll(b, true, 20); len(got) != 0 {
		t.Errorf("held button emitted %d extra events", len(got))
	}
}

func TestExactlyOnePressEvent(t *testing.T) {
	const window = 3
	b := NewButton(window)
	b.Update(true)
	events := poll(b, true, window)
	if len(events) != 1 || events[0] != EventPressed {
		t.Fatalf("got events %v, want exactly one EventPressed", events)
	}
}

func TestGlitchProducesNoEvent(t *testing.T) {
	b := NewButton(5)
	// Single-tick spike that reverts before the counter reaches zero.
	b.Update(true)
	b.Update(true)
	b.Update(false)
	if got := poll(b, false, 20); len(got) != 0 {
		t.Errorf("glitch produced events %v", got)
	}
	if b.Pressed() {
		t.Error("glitch confirmed a press")
	}
}

func TestReleaseEvent(t *testing.T) {
	const window = 4
	b := NewButton(window)
	b.Update(true)
	poll(b, true, window)
	if !b.Pressed() {
		t.Fatal("press not confirmed in setup")
	}

	b.Update(false)
	events := poll(b, false, window)
	if len(events) != 1 || events[0] != EventReleased {
		t.Fatalf("got events %v, want exactly one EventReleased", events)
	}
	if b.Pressed() {
		t.Error("button still confirmed pressed after release")
	}
}

func TestButtonsAreIndependent(t *testing.T) {
	a := NewButton(3)
	b := NewButton(3)
	a.Update(true)
	poll(a, true, 3)
	if !a.Pressed() {
		t.Error("button a not confirmed")
	}
	if b.Pressed() {
		t.Error("button b changed state without input")
	}
}
