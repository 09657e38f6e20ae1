// Package config loads the demo binary's configuration from a JSON file with
// viper, falling back to defaults when no file is present. The library itself
// is configured through sirpf.Config; this package only assembles it.
package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/cvtracking/sirpf-go/sirpf"
)

// Scene holds synthetic frame source settings.
type Scene struct {
	Frames     int
	BlockSize  int
	Speed      float64
	Seed       uint64
	Background sirpf.RGB
}

// Output holds renderer settings.
type Output struct {
	Dir   string
	Every int
}

// Load reads configuration from tracker.cfg.json in configDir and sets
// default values. A missing file is not an error; defaults apply.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")

	viper.SetDefault("tracker.particleCount", 5000)
	viper.SetDefault("tracker.frameWidth", 640)
	viper.SetDefault("tracker.frameHeight", 480)
	viper.SetDefault("tracker.velocityRange", 1.0)
	viper.SetDefault("tracker.positionNoise", 10.0)
	viper.SetDefault("tracker.velocityNoise", 0.5)
	viper.SetDefault("tracker.sharpenPower", 4.0)
	viper.SetDefault("tracker.seed", 42)
	viper.SetDefault("tracker.smoothing", false)

	viper.SetDefault("target.r", 255)
	viper.SetDefault("target.g", 0)
	viper.SetDefault("target.b", 0)

	viper.SetDefault("scene.frames", 300)
	viper.SetDefault("scene.blockSize", 24)
	viper.SetDefault("scene.speed", 3.0)
	viper.SetDefault("scene.seed", 1)
	viper.SetDefault("scene.background.r", 16)
	viper.SetDefault("scene.background.g", 16)
	viper.SetDefault("scene.background.b", 64)

	viper.SetDefault("output.dir", "./frames")
	viper.SetDefault("output.every", 10)

	viper.SetConfigName("tracker.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return errors.Wrap(err, "error reading config file")
	}
	return nil
}

// FilterConfig assembles the particle filter configuration.
func FilterConfig() sirpf.Config {
	return sirpf.Config{
		ParticleCount: viper.GetInt("tracker.particleCount"),
		FrameWidth:    viper.GetInt("tracker.frameWidth"),
		FrameHeight:   viper.GetInt("tracker.frameHeight"),
		VelocityRange: viper.GetFloat64("tracker.velocityRange"),
		PositionNoise: viper.GetFloat64("tracker.positionNoise"),
		VelocityNoise: viper.GetFloat64("tracker.velocityNoise"),
		TargetColor: sirpf.RGB{
			R: uint8(viper.GetInt("target.r")),
			G: uint8(viper.GetInt("target.g")),
			B: uint8(viper.GetInt("target.b")),
		},
		SharpenPower: viper.GetFloat64("tracker.sharpenPower"),
		Seed:         viper.GetUint64("tracker.seed"),
	}
}

// SceneConfig assembles the synthetic scene settings.
func SceneConfig() Scene {
	return Scene{
		Frames:    viper.GetInt("scene.frames"),
		BlockSize: viper.GetInt("scene.blockSize"),
		Speed:     viper.GetFloat64("scene.speed"),
		Seed:      viper.GetUint64("scene.seed"),
		Background: sirpf.RGB{
			R: uint8(viper.GetInt("scene.background.r")),
			G: uint8(viper.GetInt("scene.background.g")),
			B: uint8(viper.GetInt("scene.background.b")),
		},
	}
}

// OutputConfig assembles the renderer settings.
func OutputConfig() Output {
	return Output{
		Dir:   viper.GetString("output.dir"),
		Every: viper.GetInt("output.every"),
	}
}

// LogLevel returns the configured log level string.
func LogLevel() string {
	return viper.GetString("logLevel")
}

// Smoothing reports whether estimate smoothing is enabled.
func Smoothing() bool {
	return viper.GetBool("tracker.smoothing")
}
