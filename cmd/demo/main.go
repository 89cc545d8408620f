// Command demo opens a window and steps through the OpenGL tutorial scenes.
// Right/N and Left/P switch scenes, Up/Down blend the textures, F toggles
// wireframe and Escape quits.
package main

import (
	"errors"
	"log/slog"
	"os"

	"learngl/config"
	"learngl/core"
	"learngl/internal/opengl"
	"learngl/scene"
)

const (
	exitOK = 0
	// exitFailure covers a bad config file and having no usable scene.
	exitFailure = 1
	// exitInit is returned when the window or the GL driver cannot start.
	exitInit = -1
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "err", err)
		return exitFailure
	}
	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	windowConfig := core.DefaultWindowConfig()
	windowConfig.Width = cfg.Window.Width
	windowConfig.Height = cfg.Window.Height
	windowConfig.Title = cfg.Window.Title
	windowConfig.VSync = cfg.Window.VSync

	window, err := core.NewWindow(windowConfig)
	if err != nil {
		logger.Error("window", "err", err)
		return exitInit
	}
	defer window.Destroy()

	renderer, err := opengl.NewRenderer()
	if err != nil {
		var loadErr *opengl.DriverLoadError
		if errors.As(err, &loadErr) {
			logger.Error("OpenGL entry points unavailable", "err", loadErr.Err)
		} else {
			logger.Error("renderer", "err", err)
		}
		return exitInit
	}
	logger.Info("OpenGL ready",
		"vendor", renderer.Info.Vendor,
		"renderer", renderer.Info.Renderer,
		"version", renderer.Info.Version,
		"glsl", renderer.Info.GLSL,
	)

	ctx, err := scene.NewContext(opengl.Backend{}, cfg, logger)
	if err != nil {
		logger.Error("prepare scenes", "err", err)
		return exitFailure
	}
	scenes := setupScenes(ctx, scene.All(), logger)
	if len(scenes) == 0 {
		logger.Error("no scene could be set up")
		return exitFailure
	}
	defer func() {
		for _, sc := range scenes {
			sc.Destroy()
		}
	}()

	width, height := window.GetFramebufferSize()
	renderer.SetViewport(width, height)

	state := core.NewAppState(width, height, len(scenes))
	if i := scene.Index(scenes, cfg.Scene); i >= 0 {
		state.SceneIndex = i
	} else {
		logger.Warn("unknown start scene, showing the first", "scene", cfg.Scene, "first", scenes[0].Name())
	}

	core.BindInput(window, state)
	window.OnFramebufferResize(func(w, h int) {
		renderer.SetViewport(w, h)
		state.Resize(w, h)
	})

	loop(window, renderer, scenes, state, cfg.Window.Title, logger)
	logger.Info("exiting")
	return exitOK
}

// setupScenes prepares every scene, dropping the ones that fail.
func setupScenes(ctx *scene.Context, all []scene.Scene, logger *slog.Logger) []scene.Scene {
	ready := make([]scene.Scene, 0, len(all))
	for _, sc := range all {
		if err := sc.Setup(ctx); err != nil {
			logger.Error("scene setup failed, skipping", "scene", sc.Name(), "err", err)
			continue
		}
		logger.Debug("scene ready", "scene", sc.Name())
		ready = append(ready, sc)
	}
	return ready
}

func loop(window *core.Window, renderer *opengl.Renderer, scenes []scene.Scene, state *core.AppState, title string, logger *slog.Logger) {
	hud := newTitleHUD(title, window.Time())
	shown := -1

	for !window.ShouldClose() {
		state.Tick(window.Time())
		core.ProcessInput(window, state)

		current := scenes[state.SceneIndex]
		if state.SceneIndex != shown {
			shown = state.SceneIndex
			renderer.SetDepthTest(scene.UsesDepth(current))
			window.SetTitle(hud.Title(current.Name(), state.Wireframe))
			logger.Info("scene", "name", current.Name(), "index", shown)
		}
		if state.Wireframe != renderer.IsWireframe() {
			renderer.SetWireframe(state.Wireframe)
		}

		renderer.BeginFrame(core.ColorTeal)
		current.Update(state)
		current.Draw(state)
		renderer.EndFrame()

		window.SwapBuffers()
		window.PollEvents()

		if t, ok := hud.Frame(window.Time(), current.Name(), state.Wireframe); ok {
			window.SetTitle(t)
			logger.Debug("frame rate", "fps", hud.FPS())
		}
	}
}
