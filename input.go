package pyramid

// Key represents a keyboard key the demo reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyEscape
	KeyA
	KeyD
	KeyS
	KeyW
	KeyCount
)

// Action is something the camera controls can do in response to held keys.
type Action int

const (
	ActionOrbitLeft Action = iota
	ActionOrbitRight
	ActionZoomIn
	ActionZoomOut
	ActionQuit
	ActionCount
)

// Bindings maps each action to the keys that trigger it.
// Any one bound key being held triggers the action once.
var Bindings = [ActionCount][]Key{
	ActionOrbitLeft:  {KeyA, KeyLeft},
	ActionOrbitRight: {KeyD, KeyRight},
	ActionZoomIn:     {KeyW, KeyUp},
	ActionZoomOut:    {KeyS, KeyDown},
	ActionQuit:       {KeyEscape},
}

// InputState holds the level-triggered key state sampled for the current frame.
// This is typically populated by the backend from GLFW.
type InputState struct {
	keyDown [KeyCount]bool
}

// NewInputState creates a new InputState with every key released.
func NewInputState() *InputState {
	return &InputState{}
}

// Reset releases every key.
func (s *InputState) Reset() {
	for i := range s.keyDown {
		s.keyDown[i] = false
	}
}

// SetKey sets key state.
func (s *InputState) SetKey(key Key, down bool) {
	if key < 0 || key >= KeyCount {
		return
	}
	s.keyDown[key] = down
}

// KeyDown returns true if a key is currently held.
func (s *InputState) KeyDown(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

// Active reports whether any key bound to the action is held.
func (s *InputState) Active(a Action) bool {
	if a < 0 || a >= ActionCount {
		return false
	}
	for _, k := range Bindings[a] {
		if s.keyDown[k] {
			return true
		}
	}
	return false
}

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	names := map[Key]string{
		KeyNone:   "--",
		KeyLeft:   "Left",
		KeyRight:  "Right",
		KeyUp:     "Up",
		KeyDown:   "Down",
		KeyEscape: "Esc",
		KeyA:      "A",
		KeyD:      "D",
		KeyS:      "S",
		KeyW:      "W",
	}
	if name, ok := names[k]; ok {
		return name
	}
	return "?"
}
