package core

import "github.com/go-gl/mathgl/mgl32"

type Color struct {
	R, G, B, A float32
}

var (
	ColorWhite  = Color{1, 1, 1, 1}
	ColorBlack  = Color{0, 0, 0, 1}
	ColorOrange = Color{1, 0.5, 0.2, 1}
	ColorYellow = Color{1, 1, 0.1, 1}

	// ColorTeal is the tutorials' clear colour.
	ColorTeal = Color{0.2, 0.3, 0.3, 1}
)

func (c Color) Vec4() mgl32.Vec4 {
	return mgl32.Vec4{c.R, c.G, c.B, c.A}
}

// RGBA8 converts c to 8-bit channels the way a UNORM framebuffer stores it.
func (c Color) RGBA8() [4]uint8 {
	return [4]uint8{unorm8(c.R), unorm8(c.G), unorm8(c.B), unorm8(c.A)}
}

func unorm8(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}
