// Package viewer implements the main viewer loop.
package viewer

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/meshview/internal/assets"
	"github.com/Faultbox/meshview/internal/config"
	"github.com/Faultbox/meshview/internal/engine/debug"
	"github.com/Faultbox/meshview/internal/engine/input"
	"github.com/Faultbox/meshview/internal/engine/renderer"
	"github.com/Faultbox/meshview/internal/engine/scene"
	"github.com/Faultbox/meshview/internal/engine/window"
	"github.com/Faultbox/meshview/internal/logger"
	"github.com/Faultbox/meshview/pkg/math"
)

// Title is the base window title.
const Title = "MeshView"

// Viewer is the main viewer instance.
type Viewer struct {
	running    bool
	capture    bool
	highlight  math.Vec4
	base       math.Vec4
	screenshot *debug.ScreenshotCapture
	window     *window.Window
	renderer   *renderer.Renderer
	input      *input.Input
	scene      *scene.Scene
	prompt     *Prompt
}

// New creates the window, the renderer and the scene described by cfg.
func New(cfg *config.Config, mgr *assets.Manager) (*Viewer, error) {
	logger.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Int("models", len(cfg.Models)),
	)

	v := &Viewer{
		highlight:  math.Vec4(cfg.Selection.Color),
		base:       math.Vec4(cfg.Selection.DefaultColor),
		screenshot: debug.NewScreenshotCapture(cfg.Graphics.ScreenshotDir, "meshview"),
	}

	// Create window (this also creates OpenGL context)
	var err error
	v.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	width, height := v.window.GetSize()
	v.renderer, err = renderer.New(renderer.Config{
		Width:  width,
		Height: height,
		VSync:  cfg.Graphics.VSync,
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	// Models are loaded once before the loop starts
	v.scene, err = scene.Load(cfg, mgr, float32(width)/float32(height))
	if err != nil {
		v.Close()
		return nil, fmt.Errorf("failed to load scene: %w", err)
	}
	if !v.renderer.CanDraw() {
		v.scene.MarkAllFailed()
	}

	names := make([]string, 0, len(cfg.Models))
	for _, o := range v.scene.Objects() {
		names = append(names, o.Name)
	}
	v.prompt = NewPrompt(names)
	v.window.SetTitle(v.prompt.Title(Title))

	v.input = input.New()

	logger.Info("viewer initialized successfully")
	return v, nil
}

// Run starts the main loop: one scene update and one draw per tick.
func (v *Viewer) Run() error {
	v.running = true

	// Timing
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting viewer loop")

	for v.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Process input
		if v.input.Update() {
			v.running = false
			break
		}
		v.handleEvents()
		if !v.running {
			break
		}

		// 2. Advance camera, lights and transforms
		frame := v.scene.Update()

		// 3. Render
		v.renderer.Begin()
		v.renderer.Draw(frame)
		v.renderer.End()

		if v.capture {
			v.saveScreenshot()
			v.capture = false
		}

		// 4. Present (swap buffers)
		v.window.SwapBuffers()

		// FPS counter
		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.Uint64("frame", v.scene.FrameCount()),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (v *Viewer) handleEvents() {
	titleChanged := false

	for _, event := range v.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			v.renderer.Resize(event.Width, event.Height)
			v.scene.Camera.SetAspect(event.Width, event.Height)

		case input.EventMouseWheel:
			v.scene.Camera.HandleZoom(event.Wheel)

		case input.EventText:
			v.prompt.Type(event.Text)
			titleChanged = true

		case input.EventKeyDown:
			switch event.Key {
			case sdl.SCANCODE_ESCAPE:
				v.running = false
				return
			case sdl.SCANCODE_TAB:
				v.prompt.Next()
				titleChanged = true
			case sdl.SCANCODE_BACKSPACE:
				v.prompt.Backspace()
				titleChanged = true
			case sdl.SCANCODE_DELETE:
				v.clearSelection()
			case sdl.SCANCODE_F12:
				v.capture = true
			case sdl.SCANCODE_RETURN, sdl.SCANCODE_KP_ENTER:
				v.submit()
				titleChanged = true
			}
		}
	}

	if titleChanged {
		v.window.SetTitle(v.prompt.Title(Title))
	}
}

// submit applies the typed selection and reports the outcome in a message box.
func (v *Viewer) submit() {
	target, typed := v.prompt.Submit()
	msg, ok := applySelection(v.scene, target, typed, v.highlight)
	if ok {
		logger.Info(msg)
		v.window.ShowMessage(Title, msg, false)
	} else {
		v.window.ShowMessage(Title, msg, true)
	}
}

// clearSelection removes every painted star from the current target.
func (v *Viewer) clearSelection() {
	target := v.prompt.Target()
	if err := v.scene.ClearSelection(target, v.base); err != nil {
		logger.Warn("clear selection failed", zap.String("object", target), zap.Error(err))
	}
}

func (v *Viewer) saveScreenshot() {
	pixels, width, height := v.renderer.ReadPixels()
	path, err := v.screenshot.CaptureFromPixels(pixels, width, height)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close cleans up viewer resources.
func (v *Viewer) Close() {
	logger.Info("closing viewer")

	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
