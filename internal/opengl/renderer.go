package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"learngl/core"
)

// DriverLoadError reports that the GL function pointers could not be loaded
// for the current context.
type DriverLoadError struct {
	Err error
}

func (e *DriverLoadError) Error() string {
	return fmt.Sprintf("failed to initialize OpenGL: %v", e.Err)
}

func (e *DriverLoadError) Unwrap() error { return e.Err }

// DriverInfo describes the context gl.Init bound to.
type DriverInfo struct {
	Vendor   string
	Renderer string
	Version  string
	GLSL     string
}

// Renderer owns the per-frame fixed state: viewport, clear, depth test and
// polygon mode.
type Renderer struct {
	Info DriverInfo

	viewportW int32
	viewportH int32
	depthTest bool
	wireframe bool
}

// NewRenderer loads the GL entry points and reports the driver in use.
// Must be called after the GLFW window context is made current.
func NewRenderer() (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, &DriverLoadError{Err: err}
	}

	r := &Renderer{
		Info: DriverInfo{
			Vendor:   gl.GoStr(gl.GetString(gl.VENDOR)),
			Renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
			Version:  gl.GoStr(gl.GetString(gl.VERSION)),
			GLSL:     gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
		},
	}
	return r, nil
}

// SetViewport resizes the OpenGL viewport.
func (r *Renderer) SetViewport(width, height int) {
	r.viewportW = int32(width)
	r.viewportH = int32(height)
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Viewport returns the size last passed to SetViewport.
func (r *Renderer) Viewport() (int, int) {
	return int(r.viewportW), int(r.viewportH)
}

// BeginFrame clears the colour buffer, and the depth buffer when depth
// testing is on.
func (r *Renderer) BeginFrame(clear core.Color) {
	gl.ClearColor(clear.R, clear.G, clear.B, clear.A)
	mask := uint32(gl.COLOR_BUFFER_BIT)
	if r.depthTest {
		mask |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(mask)
}

// EndFrame unbinds the vertex array and program so nothing leaks into the
// next scene.
func (r *Renderer) EndFrame() {
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// SetDepthTest toggles GL_DEPTH_TEST with GL_LESS.
func (r *Renderer) SetDepthTest(enabled bool) {
	r.depthTest = enabled
	if enabled {
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthFunc(gl.LESS)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
}

// SetWireframe toggles wireframe rendering mode.
func (r *Renderer) SetWireframe(enabled bool) {
	r.wireframe = enabled
	if enabled {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// IsWireframe returns whether wireframe mode is active.
func (r *Renderer) IsWireframe() bool {
	return r.wireframe
}

// ReadPixel returns the RGBA8 value of the back buffer at (x, y), origin
// bottom-left. Call it before SwapBuffers.
func (r *Renderer) ReadPixel(x, y int) [4]uint8 {
	var px [4]uint8
	gl.Finish()
	gl.ReadPixels(int32(x), int32(y), 1, 1, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&px[0]))
	return px
}
