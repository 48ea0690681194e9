// Package config loads and validates imgcombine settings.
package config

import (
	"image/png"
	"os"
	"strings"

	"github.com/nvr-ai/go-combiner/combine"
	"github.com/nvr-ai/go-combiner/images"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of an imgcombine run.
type Config struct {
	// Filter is the resampling filter name used to reconcile sizes.
	Filter string `json:"filter" yaml:"filter"`
	// JPEGQuality is the JPEG output quality (1-100).
	JPEGQuality int `json:"jpegQuality" yaml:"jpegQuality"`
	// PNGCompression is one of default, none, fast, best.
	PNGCompression string `json:"pngCompression" yaml:"pngCompression"`
	// WebPLossless selects lossless WebP output.
	WebPLossless bool `json:"webpLossless" yaml:"webpLossless"`
	// WebPQuality is the lossy WebP quality (0-100).
	WebPQuality float32 `json:"webpQuality" yaml:"webpQuality"`
	// Log configures the logger.
	Log LogConfig `json:"log" yaml:"log"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level" yaml:"level"`
	// Format is console or json.
	Format string `json:"format" yaml:"format"`
}

var pngCompressionLevels = map[string]png.CompressionLevel{
	"default": png.DefaultCompression,
	"none":    png.NoCompression,
	"fast":    png.BestSpeed,
	"best":    png.BestCompression,
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	enc := images.DefaultEncodeOptions()
	return &Config{
		Filter:         string(images.TriangleFilter),
		JPEGQuality:    enc.JPEGQuality,
		PNGCompression: "default",
		WebPLossless:   enc.WebPLossless,
		WebPQuality:    enc.WebPQuality,
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads a YAML configuration file. Keys absent from the file keep
// their Default values.
//
// Arguments:
//   - path: Path of the YAML file.
//
// Returns:
//   - *Config: The loaded and validated configuration.
//   - error: An error if the file cannot be read, parsed or validated.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config %s", path)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}

	return cfg, nil
}

// Validate checks every setting.
func (c *Config) Validate() error {
	if _, err := images.ParseFilter(c.Filter); err != nil {
		return err
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return errors.Errorf("jpegQuality must be between 1 and 100, got %d", c.JPEGQuality)
	}
	if _, ok := pngCompressionLevels[strings.ToLower(c.PNGCompression)]; !ok {
		return errors.Errorf("unknown pngCompression %q", c.PNGCompression)
	}
	if c.WebPQuality < 0 || c.WebPQuality > 100 {
		return errors.Errorf("webpQuality must be between 0 and 100, got %v", c.WebPQuality)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(err, "log level")
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return errors.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}

// EncodeOptions converts the encoder settings. It assumes Validate passed.
func (c *Config) EncodeOptions() images.EncodeOptions {
	return images.EncodeOptions{
		JPEGQuality:    c.JPEGQuality,
		PNGCompression: pngCompressionLevels[strings.ToLower(c.PNGCompression)],
		WebPLossless:   c.WebPLossless,
		WebPQuality:    c.WebPQuality,
	}
}

// CombineOptions builds the combiner options. The logger is left nil for
// the caller to set.
func (c *Config) CombineOptions() (combine.Options, error) {
	filter, err := images.ParseFilter(c.Filter)
	if err != nil {
		return combine.Options{}, err
	}
	return combine.Options{
		Filter: filter,
		Encode: c.EncodeOptions(),
	}, nil
}
