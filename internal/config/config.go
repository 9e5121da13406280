// Package config loads the scene settings from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Physics PhysicsConfig `yaml:"physics"`
	Assets  AssetsConfig  `yaml:"assets"`
	Debug   DebugConfig   `yaml:"debug"`
	Logging LoggingConfig `yaml:"logging"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

type CameraConfig struct {
	FOV    float32    `yaml:"fov"`
	Near   float32    `yaml:"near"`
	Far    float32    `yaml:"far"`
	Offset [3]float32 `yaml:"offset"`
	LookAt [3]float32 `yaml:"look_at"`
}

type PhysicsConfig struct {
	// TimeStep is the fixed simulation step in seconds
	TimeStep float32 `yaml:"time_step"`
	// Accumulate runs as many fixed steps as wall-clock time allows.
	// When false exactly one step runs per frame.
	Accumulate  bool       `yaml:"accumulate"`
	MaxSubsteps int        `yaml:"max_substeps"`
	Gravity     [3]float32 `yaml:"gravity"`
}

type AssetsConfig struct {
	Model string `yaml:"model"`
}

type DebugConfig struct {
	Collision bool `yaml:"collision"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1920,
			Height: 1080,
			Title:  "Spaceship",
			VSync:  true,
		},
		Camera: CameraConfig{
			FOV:    60,
			Near:   1,
			Far:    1000,
			Offset: [3]float32{0, 80, -100},
			LookAt: [3]float32{0, 10, 50},
		},
		Physics: PhysicsConfig{
			TimeStep:    1.0 / 60.0,
			Accumulate:  true,
			MaxSubsteps: 5,
			Gravity:     [3]float32{0, -90, 0},
		},
		Assets: AssetsConfig{
			Model: "assets/spaceship/Spaceship_RaeTheRedPanda.gltf",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the file at path over the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the scene cannot run with
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Physics.TimeStep <= 0 {
		return fmt.Errorf("physics time_step must be positive, got %v", c.Physics.TimeStep)
	}
	if c.Physics.MaxSubsteps <= 0 {
		return fmt.Errorf("physics max_substeps must be positive, got %d", c.Physics.MaxSubsteps)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("invalid camera clip planes near=%v far=%v", c.Camera.Near, c.Camera.Far)
	}
	return nil
}
