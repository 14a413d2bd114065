package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/orbiloops/enumerate"
	"github.com/katalvlaran/orbiloops/orbifold"
)

// Output formats.
const (
	formatText = "text"
	formatYAML = "yaml"
	formatJSON = "json"
)

// errConfig marks settings that fail validation.
var errConfig = errors.New("orbiloop: invalid configuration")

// Config holds every setting the commands read. Zero Count means no limit.
type Config struct {
	Type     orbifold.Type `yaml:"type"`
	MaxEdges int           `yaml:"max_edges"`
	Count    int           `yaml:"count"`
	Format   string        `yaml:"format"`
	LogLevel string        `yaml:"log_level"`
}

func defaultConfig() Config {
	return Config{
		Type:     orbifold.P3,
		MaxEdges: enumerate.DefaultOptions().MaxEdges,
		Count:    20,
		Format:   formatText,
		LogLevel: "warn",
	}
}

// loadConfig reads path over the defaults. Unknown keys are rejected; an
// empty path returns the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// validate checks ranges and enumerations.
func (c Config) validate() error {
	if !c.Type.Valid() {
		return fmt.Errorf("%w: type %d", errConfig, int(c.Type))
	}
	if c.MaxEdges < enumerate.MinEdges {
		return fmt.Errorf("%w: max_edges %d is below %d", errConfig, c.MaxEdges, enumerate.MinEdges)
	}
	if c.Count < 0 {
		return fmt.Errorf("%w: count %d is negative", errConfig, c.Count)
	}
	switch c.Format {
	case formatText, formatYAML, formatJSON:
	default:
		return fmt.Errorf("%w: format %q (want text, yaml or json)", errConfig, c.Format)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// parseLevel accepts the slog level names, case-insensitively.
func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", errConfig, s)
	}

	return l, nil
}
