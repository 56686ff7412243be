package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagModel    = flag.String("model", "", "Path to OBJ model file")
	flagWidth    = flag.Int("width", 0, "Viewport width")
	flagHeight   = flag.Int("height", 0, "Viewport height")
	flagFocal    = flag.Float64("focal", 0, "Focal length")
	flagFPS      = flag.Int("fps", 0, "Frames per second")
	flagSpinStep = flag.Float64("spin", 0, "Auto-rotation step per frame (degrees)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagModel != "" {
		cfg.Model.Path = *flagModel
	}
	if *flagWidth > 0 {
		cfg.Viewport.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Viewport.Height = *flagHeight
	}
	if *flagFocal > 0 {
		cfg.Viewport.FocalLength = float32(*flagFocal)
	}
	if *flagFPS > 0 {
		cfg.Viewport.FPS = *flagFPS
	}
	if *flagSpinStep != 0 {
		cfg.Render.SpinStepDeg = float32(*flagSpinStep)
	}
}
