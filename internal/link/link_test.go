// internal/link/link_test.go
package link

import "testing"

func TestSwitch_SetToggle(t *testing.T) {
	s := NewSwitch(false)
	if s.Connected() {
		t.Fatalf("expected disconnected")
	}

	s.Set(true)
	if !s.Connected() {
		t.Fatalf("expected connected after Set(true)")
	}

	if got := s.Toggle(); got {
		t.Fatalf("toggle should return false, got true")
	}
	if s.Connected() {
		t.Fatalf("expected disconnected after toggle")
	}
}
