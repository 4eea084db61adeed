// Package config holds the tunables of the demo. Values start from Default
// and can be overridden by a YAML file and command line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Point is a 2D position in world units.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// WindowConfig describes the primary display surface.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// SpawnConfig drives the enemy spawner.
type SpawnConfig struct {
	Period time.Duration `yaml:"period"`
	Origin Point         `yaml:"origin"`
	Jitter float64       `yaml:"jitter"`
	// Seed 0 picks a random seed at startup.
	Seed uint64 `yaml:"seed"`
}

// EnemyConfig is the closed-form trajectory y = sin(x*WaveFrequency)*WaveAmplitude.
type EnemyConfig struct {
	Speed         float64 `yaml:"speed"`
	WaveAmplitude float64 `yaml:"wave_amplitude"`
	WaveFrequency float64 `yaml:"wave_frequency"`
	DespawnX      float64 `yaml:"despawn_x"`
}

// CameraConfig holds the starting camera and the controller steps.
type CameraConfig struct {
	Start           [3]float64 `yaml:"start"`
	Scale           float64    `yaml:"scale"`
	PanStep         float64    `yaml:"pan_step"`
	LineZoomFactor  float64    `yaml:"line_zoom_factor"`
	PixelZoomFactor float64    `yaml:"pixel_zoom_factor"`
}

// Config is the full configuration of a run.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Spawn  SpawnConfig  `yaml:"spawn"`
	Enemy  EnemyConfig  `yaml:"enemy"`
	Camera CameraConfig `yaml:"camera"`
	TowerZ float64      `yaml:"tower_z"`

	AssetDir string `yaml:"asset_dir"`
	DebugUI  bool   `yaml:"debug_ui"`
	Sound    bool   `yaml:"sound"`
}

// Default returns the configuration the demo ships with.
func Default() Config {
	return Config{
		Window: WindowConfig{Width: 1280, Height: 720, Title: "wavetd"},
		Spawn: SpawnConfig{
			Period: time.Second,
			Origin: Point{X: 500, Y: 200},
			Jitter: 10,
		},
		Enemy: EnemyConfig{
			Speed:         50,
			WaveAmplitude: 200,
			WaveFrequency: 0.01,
			DespawnX:      0,
		},
		Camera: CameraConfig{
			Start:           [3]float64{100, 100, 10},
			Scale:           1,
			PanStep:         10,
			LineZoomFactor:  0.0001,
			PixelZoomFactor: 0.001,
		},
		TowerZ:   10,
		AssetDir: "assets",
	}
}

// Load reads a YAML file on top of Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the values can drive a simulation.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size must be positive, got %dx%d",
			ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Spawn.Period <= 0 {
		return fmt.Errorf("%w: spawn period must be positive, got %s", ErrInvalid, c.Spawn.Period)
	}
	if c.Spawn.Jitter < 0 {
		return fmt.Errorf("%w: spawn jitter must not be negative, got %.2f", ErrInvalid, c.Spawn.Jitter)
	}
	if c.Camera.Scale <= 0 {
		return fmt.Errorf("%w: camera scale must be positive, got %.4f", ErrInvalid, c.Camera.Scale)
	}
	return nil
}
