// Package viewer shows one object in a GLFW window using OpenGL immediate
// mode. All functions must be called from the main thread, which the
// program locks to its OS thread.
package viewer

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/netisu/objview"
	"github.com/netisu/objview/session"
)

// Viewer implements session.Displayer.
type Viewer struct {
	Config objview.Config
	Log    *slog.Logger
}

func New(cfg objview.Config, log *slog.Logger) *Viewer {
	return &Viewer{Config: cfg, Log: log}
}

// Display opens a window showing r.Object and blocks until it is closed.
func (v *Viewer) Display(r session.Request) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("viewer: init glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	win, err := glfw.CreateWindow(v.Config.Window.Width, v.Config.Window.Height, v.Config.Window.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("viewer: create window: %w", err)
	}
	defer win.Destroy()

	win.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		return fmt.Errorf("viewer: init gl: %w", err)
	}
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
	})

	fr := newFrame(r, v.Config, v.Log)
	win.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyF12, glfw.KeyP:
			fr.screenshot(w.GetFramebufferSize())
		case glfw.KeyEscape:
			w.SetShouldClose(true)
		}
	})

	var watch *watcher
	if v.Config.Watch && r.Path != "" {
		watch, err = newWatcher(r.Path, v.Log)
		if err != nil {
			v.Log.Warn("file watching disabled", "file", r.Path, "err", err)
		} else {
			defer watch.Close()
		}
	}

	for !win.ShouldClose() {
		glfw.PollEvents()
		if watch != nil && watch.Changed() {
			fr.reload()
		}
		fr.render(win.GetFramebufferSize())
		win.SwapBuffers()
	}
	return nil
}
