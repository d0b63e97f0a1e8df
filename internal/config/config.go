// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Config holds all viewer settings.
type Config struct {
	Graphics  GraphicsConfig  `yaml:"graphics"`
	Camera    CameraConfig    `yaml:"camera"`
	Lights    LightsConfig    `yaml:"lights"`
	Models    []ModelConfig   `yaml:"models"`
	Selection SelectionConfig `yaml:"selection"`
	Data      DataConfig      `yaml:"data"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`

	// ScreenshotDir receives F12 captures.
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// CameraConfig holds the orbiting camera. Angles are in radians; Speed is
// the orbit angle added per frame.
type CameraConfig struct {
	Eye        [3]float32 `yaml:"eye"`
	Target     [3]float32 `yaml:"target"`
	Up         [3]float32 `yaml:"up"`
	FovY       float32    `yaml:"fovy"`
	Near       float32    `yaml:"near"`
	Far        float32    `yaml:"far"`
	Radius     float32    `yaml:"radius"`
	Speed      float32    `yaml:"speed"`
	StartAngle float32    `yaml:"start_angle"`
}

// LightConfig describes one Phong light.
type LightConfig struct {
	Position  [3]float32 `yaml:"position"`
	Color     [4]float32 `yaml:"color"`
	Ambient   float32    `yaml:"ambient"`
	Diffuse   float32    `yaml:"diffuse"`
	Specular  float32    `yaml:"specular"`
	Shininess float32    `yaml:"shininess"`
}

// LightsConfig holds the camera-tracking light and the fixed light.
// The tracking light's position is replaced by the camera eye every frame.
type LightsConfig struct {
	Tracking LightConfig `yaml:"tracking"`
	Fixed    LightConfig `yaml:"fixed"`
}

// ModelConfig places one mesh in the scene. RotateY and RotateZ are the
// per-frame orbit rates in radians.
type ModelConfig struct {
	Name      string     `yaml:"name"`
	Path      string     `yaml:"path"`
	Translate [3]float32 `yaml:"translate"`
	Scale     [3]float32 `yaml:"scale"`
	RotateY   float32    `yaml:"rotate_y"`
	RotateZ   float32    `yaml:"rotate_z"`
	Fit       *FitConfig `yaml:"fit,omitempty"`
}

// FitConfig sizes a model relative to another one: the uniform scale becomes
// reference X extent * Ratio / NativeWidth, replacing Scale.
type FitConfig struct {
	Reference   string  `yaml:"reference"`
	Ratio       float32 `yaml:"ratio"`
	NativeWidth float32 `yaml:"native_width"`
}

// SelectionConfig holds vertex star highlighting settings.
type SelectionConfig struct {
	Color        [4]float32 `yaml:"color"`
	DefaultColor [4]float32 `yaml:"default_color"`
	// Strict rejects meshes with edges shared by more than two faces.
	Strict bool `yaml:"strict"`
}

// DataConfig holds model search roots.
type DataConfig struct {
	Roots []string `yaml:"roots"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the stock two-model scene.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:         1280,
			Height:        720,
			Fullscreen:    false,
			VSync:         true,
			ScreenshotDir: "screenshots",
		},
		Camera: CameraConfig{
			Eye:        [3]float32{0, 3, 5},
			Target:     [3]float32{0, 0, 0},
			Up:         [3]float32{0, 1, 0},
			FovY:       1.5707964,
			Near:       0.1,
			Far:        100,
			Radius:     5,
			Speed:      0.003,
			StartAngle: 0.1,
		},
		Lights: LightsConfig{
			Tracking: LightConfig{
				Position:  [3]float32{0, 3, 5},
				Color:     [4]float32{1, 1, 1, 1},
				Ambient:   0.2,
				Diffuse:   0.55,
				Specular:  0.25,
				Shininess: 100,
			},
			Fixed: LightConfig{
				Position:  [3]float32{0, 5, 0},
				Color:     [4]float32{1, 1, 0, 0.5},
				Ambient:   0.2,
				Diffuse:   0.55,
				Specular:  0.25,
				Shininess: 100,
			},
		},
		Models: []ModelConfig{
			{
				Name:      "armadillo",
				Path:      "obj/armadillo.obj",
				Translate: [3]float32{0, 0, 0},
				Scale:     [3]float32{1, 1, 1},
				RotateY:   0.007,
			},
			{
				Name:      "bunny",
				Path:      "obj/bunny.obj",
				Translate: [3]float32{-3.5, 0, 0},
				Scale:     [3]float32{1, 1, 1},
				RotateZ:   0.003,
				Fit: &FitConfig{
					Reference:   "armadillo",
					Ratio:       1.0 / 3.0,
					NativeWidth: 3.11398,
				},
			},
		},
		Selection: SelectionConfig{
			Color:        [4]float32{1, 0, 0, 1},
			DefaultColor: [4]float32{0.5, 0.2, 0.4, 1},
			Strict:       false,
		},
		Data: DataConfig{
			Roots: []string{"assets"},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks cross-field constraints that YAML decoding cannot.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Graphics.Width, c.Graphics.Height)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("%w: camera near/far %g/%g", ErrInvalidConfig, c.Camera.Near, c.Camera.Far)
	}
	if len(c.Models) == 0 {
		return fmt.Errorf("%w: no models", ErrInvalidConfig)
	}

	names := make(map[string]int, len(c.Models))
	for i, m := range c.Models {
		if m.Name == "" || m.Path == "" {
			return fmt.Errorf("%w: model %d needs a name and a path", ErrInvalidConfig, i)
		}
		if _, dup := names[m.Name]; dup {
			return fmt.Errorf("%w: duplicate model name %q", ErrInvalidConfig, m.Name)
		}
		names[m.Name] = i
	}

	// A fit reference must be loaded first so its extent is known.
	for i, m := range c.Models {
		if m.Fit == nil {
			continue
		}
		ref, ok := names[m.Fit.Reference]
		if !ok || ref >= i {
			return fmt.Errorf("%w: model %q fits to %q, which must be listed before it",
				ErrInvalidConfig, m.Name, m.Fit.Reference)
		}
		if m.Fit.NativeWidth <= 0 {
			return fmt.Errorf("%w: model %q fit native_width must be positive", ErrInvalidConfig, m.Name)
		}
	}
	return nil
}
