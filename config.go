package objview

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pelletier/go-toml/v2"
)

// DefaultConfigPath is where the viewer looks for its settings.
const DefaultConfigPath = "~/.config/objview/config.toml"

// Config holds viewer settings loaded from a TOML file.
type Config struct {
	// Model is the file opened by the "display an existing object" action.
	Model string `toml:"model"`

	// Watch reloads the model while its window is open when the file changes.
	Watch bool `toml:"watch"`

	Window WindowConfig `toml:"window"`
	Camera CameraConfig `toml:"camera"`

	PointSize float64 `toml:"point_size"`

	// ScreenshotSize bounds the longest side of saved screenshots; 0 keeps
	// the framebuffer size.
	ScreenshotSize uint `toml:"screenshot_size"`
}

type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type CameraConfig struct {
	Eye    [3]float64 `toml:"eye"`
	Target [3]float64 `toml:"target"`
	Up     [3]float64 `toml:"up"`
	Fov    float64    `toml:"fov"`
	Near   float64    `toml:"near"`
	Far    float64    `toml:"far"`
}

// DefaultConfig returns the settings used when no file is present.
func DefaultConfig() Config {
	cam := DefaultCamera()
	return Config{
		Model: "objects.obj",
		Window: WindowConfig{
			Width:  640,
			Height: 640,
			Title:  "OBJ Viewer",
		},
		Camera: CameraConfig{
			Eye:    cam.Eye,
			Target: cam.Center,
			Up:     cam.Up,
			Fov:    cam.Fovy,
			Near:   cam.Near,
			Far:    cam.Far,
		},
		PointSize:      DefaultPointSize,
		ScreenshotSize: 512,
	}
}

// LoadConfig reads path over the defaults. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("objview: read config: %w", err)
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("objview: parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate reports settings the viewer cannot use.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("objview: window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case c.PointSize <= 0:
		return fmt.Errorf("objview: point_size %v must be positive", c.PointSize)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("objview: camera clip range %v..%v is invalid", c.Camera.Near, c.Camera.Far)
	case c.Camera.Fov <= 0 || c.Camera.Fov >= 180:
		return fmt.Errorf("objview: camera fov %v must be in (0, 180)", c.Camera.Fov)
	}
	return nil
}

// Cam returns the camera described by the config.
func (c Config) Cam() Camera {
	return Camera{
		Eye:    mgl64.Vec3(c.Camera.Eye),
		Center: mgl64.Vec3(c.Camera.Target),
		Up:     mgl64.Vec3(c.Camera.Up),
		Fovy:   c.Camera.Fov,
		Near:   c.Camera.Near,
		Far:    c.Camera.Far,
	}
}
