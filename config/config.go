// Package config holds the settings shared by geometry generation and the CLI.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config controls curve tessellation, boolean clearances and thread lead-in.
type Config struct {
	// Segments is an explicit curve segment count. Zero derives it from Angle.
	Segments int `yaml:"segments"`
	// Angle is the angular resolution of curves in degrees per segment.
	Angle float64 `yaml:"angle"`
	// Smidge is the clearance added to cutting tools at coplanar faces [mm].
	Smidge float64 `yaml:"smidge"`
	// HigbeeArc is the lead-in arc of external threads in degrees.
	HigbeeArc float64 `yaml:"higbee_arc"`
	LogLevel  string  `yaml:"log_level"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Angle:     6,
		Smidge:    0.01,
		HigbeeArc: 20,
		LogLevel:  "info",
	}
}

// CurveSegments returns the number of segments used to tessellate a curve.
// An angle outside (0, 360] falls back to the default angle.
func (c Config) CurveSegments() int {
	if c.Segments > 0 {
		return c.Segments
	}
	angle := c.Angle
	if !(angle > 0 && angle <= 360) {
		angle = Default().Angle
	}
	return int(math.Round(360 / angle))
}

// Validate checks the configuration for values no geometry can use.
func (c Config) Validate() error {
	var errs []error
	if c.Segments < 0 {
		errs = append(errs, fmt.Errorf("segments %d is negative", c.Segments))
	}
	if !(c.Angle > 0 && c.Angle <= 360) {
		errs = append(errs, fmt.Errorf("angle %g outside (0, 360]", c.Angle))
	}
	if c.Smidge < 0 {
		errs = append(errs, fmt.Errorf("smidge %g is negative", c.Smidge))
	}
	if c.HigbeeArc < 0 || c.HigbeeArc >= 360 {
		errs = append(errs, fmt.Errorf("higbee arc %g outside [0, 360)", c.HigbeeArc))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Level returns the zerolog level named by LogLevel. Empty means info.
func (c Config) Level() (zerolog.Level, error) {
	if c.LogLevel == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}

// Parse reads a YAML configuration. Fields absent from r keep their defaults.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads the configuration file at path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Save writes the configuration to path as YAML.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
