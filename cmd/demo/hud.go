package main

import (
	"fmt"
	"strings"
)

// titleHUD counts frames and rebuilds the window title once a second.
type titleHUD struct {
	base     string
	frames   int
	lastTime float64
	fps      int
}

func newTitleHUD(base string, now float64) *titleHUD {
	return &titleHUD{base: base, lastTime: now}
}

// Frame records one presented frame at now (seconds). It returns the new
// title and true when a second has passed since the last update.
func (h *titleHUD) Frame(now float64, sceneName string, wireframe bool) (string, bool) {
	h.frames++
	if now-h.lastTime < 1 {
		return "", false
	}
	h.fps = int(float64(h.frames)/(now-h.lastTime) + 0.5)
	h.frames = 0
	h.lastTime = now
	return h.Title(sceneName, wireframe), true
}

// FPS is the rate measured at the last update.
func (h *titleHUD) FPS() int { return h.fps }

func (h *titleHUD) Title(sceneName string, wireframe bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s | %s | FPS: %d", h.base, sceneName, h.fps)
	if wireframe {
		b.WriteString(" | wireframe")
	}
	return b.String()
}
