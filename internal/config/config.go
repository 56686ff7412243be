// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Viewport Viewport `yaml:"viewport"`
	Camera   Camera   `yaml:"camera"`
	Rotation Rotation `yaml:"rotation"`
	Render   Render   `yaml:"render"`
	Model    Model    `yaml:"model"`
	Logging  Logging  `yaml:"logging"`
}

// Viewport holds display settings.
type Viewport struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	FocalLength float32 `yaml:"focal_length"`
	FPS         int     `yaml:"fps"`
}

// Camera holds the camera position.
type Camera struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

// Rotation holds the static model rotation in degrees.
type Rotation struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

// Render holds pipeline tuning knobs.
type Render struct {
	NearEpsilon      float32 `yaml:"near_epsilon"`
	DedupTolerancePx int     `yaml:"dedup_tolerance_px"`
	SpinStepDeg      float32 `yaml:"spin_step_deg"`
}

// Model holds model file settings.
type Model struct {
	Path string `yaml:"path"`
}

// Logging holds logging settings.
type Logging struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Viewport: Viewport{
			Width:       800,
			Height:      600,
			FocalLength: 50.0,
			FPS:         30,
		},
		Camera: Camera{
			X: 0,
			Y: 0,
			Z: -10,
		},
		Render: Render{
			NearEpsilon:      1e-4,
			DedupTolerancePx: 1,
			SpinStepDeg:      5.0,
		},
		Logging: Logging{
			Level:   "info",
			LogFile: "",
		},
	}
}
