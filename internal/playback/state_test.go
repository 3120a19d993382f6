package playback

import "testing"

func TestPhase_String(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{Idle, "Idle"},
		{AwaitingBinding, "AwaitingBinding"},
		{Paused, "Paused"},
		{Playing, "Playing"},
		{Phase(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("Phase(%d).String() = %q, want %q", tt.phase, got, tt.want)
		}
	}
}

func TestPhase_IsBound(t *testing.T) {
	if Idle.IsBound() || AwaitingBinding.IsBound() {
		t.Error("unbound phases report IsBound")
	}
	if !Paused.IsBound() || !Playing.IsBound() {
		t.Error("bound phases should report IsBound")
	}
}
