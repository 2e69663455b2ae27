// internal/clock/clock_test.go
package clock

import (
	"testing"
	"time"
)

func TestManual_SetAndAdvance(t *testing.T) {
	m := NewManual(100)
	if got := m.NowMs(); got != 100 {
		t.Fatalf("start: got=%d want=100", got)
	}

	if got := m.Advance(250 * time.Millisecond); got != 350 {
		t.Fatalf("advance: got=%d want=350", got)
	}

	m.Set(7)
	if got := m.NowMs(); got != 7 {
		t.Fatalf("set: got=%d want=7", got)
	}
}

func TestManual_Wraps(t *testing.T) {
	m := NewManual(^uint32(0))
	if got := m.Advance(2 * time.Millisecond); got != 1 {
		t.Fatalf("expected wrap to 1, got %d", got)
	}
}

func TestMonotonic_NonDecreasing(t *testing.T) {
	m := NewMonotonic()
	a := m.NowMs()
	time.Sleep(2 * time.Millisecond)
	b := m.NowMs()
	if b < a {
		t.Fatalf("clock went backwards: %d -> %d", a, b)
	}
}
