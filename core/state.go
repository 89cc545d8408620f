package core

// AppState is everything the input handlers and scenes share. One instance
// lives for the whole run and is passed by pointer; window callbacks capture
// that pointer.
type AppState struct {
	// MixAmount blends the second texture over the first, in [0, 1].
	MixAmount float32
	Wireframe bool

	SceneIndex int
	SceneCount int

	// Framebuffer size in pixels.
	Width  int
	Height int

	// Time is seconds since start; Delta the duration of the last frame.
	Time  float64
	Delta float32
}

func NewAppState(width, height, sceneCount int) *AppState {
	return &AppState{
		MixAmount:  0.2,
		SceneCount: sceneCount,
		Width:      width,
		Height:     height,
	}
}

// AdjustMix adds d to MixAmount, clamped to [0, 1].
func (s *AppState) AdjustMix(d float32) {
	s.MixAmount += d
	if s.MixAmount < 0 {
		s.MixAmount = 0
	}
	if s.MixAmount > 1 {
		s.MixAmount = 1
	}
}

// NextScene and PrevScene cycle through the scenes, wrapping at both ends.
func (s *AppState) NextScene() {
	if s.SceneCount == 0 {
		return
	}
	s.SceneIndex = (s.SceneIndex + 1) % s.SceneCount
}

func (s *AppState) PrevScene() {
	if s.SceneCount == 0 {
		return
	}
	s.SceneIndex = (s.SceneIndex - 1 + s.SceneCount) % s.SceneCount
}

func (s *AppState) Resize(width, height int) {
	s.Width = width
	s.Height = height
}

// Aspect returns width/height, or 1 while the window is minimised.
func (s *AppState) Aspect() float32 {
	if s.Width <= 0 || s.Height <= 0 {
		return 1
	}
	return float32(s.Width) / float32(s.Height)
}

// Tick advances the clock to now (seconds).
func (s *AppState) Tick(now float64) {
	if s.Time > 0 {
		s.Delta = float32(now - s.Time)
	}
	s.Time = now
}
