package breadth

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the file form of the store options.
//
//	capacity: 1024
//	workers: 8
//	parallel_threshold: 64
//	acceleration: false
//	log_level: info
type Config struct {
	LogLevel          string `yaml:"log_level"`
	Capacity          int    `yaml:"capacity"`
	Workers           int    `yaml:"workers"`
	ParallelThreshold int    `yaml:"parallel_threshold"`
	Acceleration      bool   `yaml:"acceleration"`
}

// ParseConfig decodes and validates a YAML document. Unknown keys are
// rejected. An empty document yields the zero Config.
func ParseConfig(data []byte) (Config, error) {
	var c Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadConfig reads and parses the YAML file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	c, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return c, nil
}

// Validate checks field ranges. Zero values mean "use the default".
func (c Config) Validate() error {
	if c.Capacity < 0 {
		return &ConfigError{Field: "capacity", Reason: "must not be negative"}
	}
	if c.Workers < 0 {
		return &ConfigError{Field: "workers", Reason: "must not be negative"}
	}
	if c.ParallelThreshold < 0 {
		return &ConfigError{Field: "parallel_threshold", Reason: "must not be negative"}
	}
	if _, err := c.level(); err != nil {
		return &ConfigError{Field: "log_level", Reason: err.Error()}
	}
	return nil
}

// Options converts the config into store options. A non-empty log level
// installs a text logger on stderr.
func (c Config) Options() []Option {
	opts := []Option{WithAcceleration(c.Acceleration)}
	if c.Workers > 0 {
		opts = append(opts, WithWorkers(c.Workers))
	}
	if c.ParallelThreshold > 0 {
		opts = append(opts, WithParallelThreshold(c.ParallelThreshold))
	}
	if level, err := c.level(); err == nil && c.LogLevel != "" {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
		opts = append(opts, WithLogger(slog.New(handler)))
	}
	return opts
}

func (c Config) level() (slog.Level, error) {
	var l slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	err := l.UnmarshalText([]byte(c.LogLevel))
	return l, err
}
