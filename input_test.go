package pyramid

import "testing"

func TestInputStateSetKey(t *testing.T) {
	in := NewInputState()

	in.SetKey(KeyA, true)
	if !in.KeyDown(KeyA) {
		t.Error("expected A held")
	}
	in.SetKey(KeyA, false)
	if in.KeyDown(KeyA) {
		t.Error("expected A released")
	}

	// Out of range keys are ignored.
	in.SetKey(KeyCount, true)
	in.SetKey(-1, true)
	if in.KeyDown(KeyCount) || in.KeyDown(-1) {
		t.Error("out of range key reported held")
	}
}

func TestInputStateActive(t *testing.T) {
	tests := []struct {
		key    Key
		action Action
	}{
		{KeyA, ActionOrbitLeft},
		{KeyLeft, ActionOrbitLeft},
		{KeyD, ActionOrbitRight},
		{KeyRight, ActionOrbitRight},
		{KeyW, ActionZoomIn},
		{KeyUp, ActionZoomIn},
		{KeyS, ActionZoomOut},
		{KeyDown, ActionZoomOut},
		{KeyEscape, ActionQuit},
	}

	for _, tt := range tests {
		in := NewInputState()
		in.SetKey(tt.key, true)
		for a := Action(0); a < ActionCount; a++ {
			if got := in.Active(a); got != (a == tt.action) {
				t.Errorf("%s held: Active(%d) = %v", KeyName(tt.key), a, got)
			}
		}
	}
}

func TestInputStateReset(t *testing.T) {
	in := NewInputState()
	in.SetKey(KeyEscape, true)
	in.SetKey(KeyW, true)
	in.Reset()
	for k := Key(0); k < KeyCount; k++ {
		if in.KeyDown(k) {
			t.Errorf("%s still held after Reset", KeyName(k))
		}
	}
}

func TestKeyName(t *testing.T) {
	if KeyName(KeyEscape) != "Esc" {
		t.Errorf("KeyName(KeyEscape) = %q", KeyName(KeyEscape))
	}
	if KeyName(KeyCount) != "?" {
		t.Errorf("KeyName(KeyCount) = %q", KeyName(KeyCount))
	}
}
