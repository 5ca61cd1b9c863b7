// Package config handles wiredump configuration loading and management.
package config

import "time"

// Config holds all wiredump settings.
type Config struct {
	Scene   SceneConfig   `yaml:"scene"`
	Output  OutputConfig  `yaml:"output"`
	Debug   DebugConfig   `yaml:"debug"`
	Logging LoggingConfig `yaml:"logging"`
}

// SceneConfig selects the shapes to draw.
type SceneConfig struct {
	Path string `yaml:"path"` // YAML shape list
}

// OutputConfig controls how drawn lines are written.
type OutputConfig struct {
	Format string `yaml:"format"` // "text" or "obj"
	Path   string `yaml:"path"`   // empty writes to stdout
	// At exports the lines still alive this long after drawing. Zero
	// exports everything, including single-frame lines.
	At time.Duration `yaml:"at"`
}

// DebugConfig is the default style for lines that do not set their own.
type DebugConfig struct {
	Color     [4]float32    `yaml:"color"`
	Duration  time.Duration `yaml:"duration"`
	DepthTest bool          `yaml:"depth_test"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format: "text",
		},
		Debug: DebugConfig{
			Color:     [4]float32{1, 1, 1, 1},
			Duration:  0,
			DepthTest: true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
