package core

// MixStep is how much one polled frame of Up/Down moves MixAmount.
const MixStep = 0.001

// Input is the part of a Window the per-frame input pass needs.
type Input interface {
	IsKeyPressed(key int) bool
	SetShouldClose(v bool)
}

// ProcessInput polls held keys once per frame: Escape closes the window,
// Up and Down fade the second texture in and out.
func ProcessInput(in Input, s *AppState) {
	if in.IsKeyPressed(KeyEscape) {
		in.SetShouldClose(true)
	}
	if in.IsKeyPressed(KeyUp) {
		s.AdjustMix(MixStep)
	}
	if in.IsKeyPressed(KeyDown) {
		s.AdjustMix(-MixStep)
	}
}

// HandleKeyPress applies one discrete key press to s.
func HandleKeyPress(s *AppState, key int) {
	switch key {
	case KeyRight, KeyN:
		s.NextScene()
	case KeyLeft, KeyP:
		s.PrevScene()
	case KeyF:
		s.Wireframe = !s.Wireframe
	}
}

// BindInput routes w's key presses into s.
func BindInput(w *Window, s *AppState) {
	w.OnKeyPress(func(key int) {
		HandleKeyPress(s, key)
	})
}
