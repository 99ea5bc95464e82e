// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/H0llyW00dzZ/valuelog/src/logger"
	"github.com/H0llyW00dzZ/valuelog/src/record"
	"github.com/H0llyW00dzZ/valuelog/src/sink"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

const (
	// EnvConfigFile names the configuration file when no path is given.
	EnvConfigFile = "VALUELOG_CONFIG_FILE"
	// EnvHistoryLimit overrides the history limit.
	EnvHistoryLimit = "VALUELOG_HISTORY_LIMIT"
	// EnvNoColor disables colors when set to any value.
	EnvNoColor = "NO_COLOR"
)

// ErrInvalidConfig is returned when a configuration file or environment
// override does not describe a valid configuration.
var ErrInvalidConfig = errors.New("invalid configuration")

//go:embed schema.json
var schema string

// format represents supported configuration file formats.
type format int

const (
	formatJSON format = iota
	formatYAML
)

// Config holds console settings.
type Config struct {
	// HistoryLimit: Number of records retained in memory
	HistoryLimit int `json:"historyLimit" yaml:"historyLimit"`
	// UseColors: Print styled lines
	UseColors bool `json:"useColors" yaml:"useColors"`
	// PrintMessage: Print records at all
	PrintMessage bool `json:"printMessage" yaml:"printMessage"`
	// ShowTimestamp: Prefix printed lines with the record time
	ShowTimestamp bool `json:"showTimestamp" yaml:"showTimestamp"`
	// ShowTimezone: Add the zone offset to the timestamp
	ShowTimezone bool `json:"showTimezone" yaml:"showTimezone"`
	// EmitRecord: Notify subscribers of new records
	EmitRecord bool `json:"emitRecord" yaml:"emitRecord"`
	// MaxDepth: Nesting levels expanded before values are abbreviated (0 = unbounded)
	MaxDepth int `json:"maxDepth" yaml:"maxDepth"`
	// ErrorCauses: Print wrapped error causes
	ErrorCauses bool `json:"errorCauses" yaml:"errorCauses"`

	// File: Optional rotating log file receiving plain messages
	File struct {
		Path       string `json:"path,omitempty" yaml:"path,omitempty"`
		MaxSizeMB  int    `json:"maxSizeMB,omitempty" yaml:"maxSizeMB,omitempty"`
		MaxBackups int    `json:"maxBackups,omitempty" yaml:"maxBackups,omitempty"`
		MaxAgeDays int    `json:"maxAgeDays,omitempty" yaml:"maxAgeDays,omitempty"`
		Compress   bool   `json:"compress,omitempty" yaml:"compress,omitempty"`
	} `json:"file" yaml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		HistoryLimit:  record.DefaultHistoryLimit,
		UseColors:     true,
		PrintMessage:  true,
		ShowTimestamp: true,
		EmitRecord:    true,
	}
}

// Load builds a Config from defaults, the file at path (or the file named by
// VALUELOG_CONFIG_FILE when path is empty) and environment overrides.
// The file format is detected from its extension: .yaml and .yml are YAML,
// everything else is JSON.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := cfg.decode(data, detectFormat(path)); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func detectFormat(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatJSON
	}
}

// decode validates data against the embedded schema and merges it into c.
func (c *Config) decode(data []byte, f format) error {
	var doc gojsonschema.JSONLoader
	switch f {
	case formatYAML:
		var raw any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
		if raw == nil {
			// Empty document.
			return nil
		}
		doc = gojsonschema.NewGoLoader(raw)
	default:
		doc = gojsonschema.NewBytesLoader(data)
	}

	if err := validate(doc); err != nil {
		return err
	}

	switch f {
	case formatYAML:
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, c); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

func validate(doc gojsonschema.JSONLoader) error {
	result, err := gojsonschema.Validate(gojsonschema.NewStringLoader(schema), doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		problems = append(problems, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvHistoryLimit); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n < 0 {
			return fmt.Errorf("%w: %s=%q is not a non-negative integer", ErrInvalidConfig, EnvHistoryLimit, v)
		}
		c.HistoryLimit = n
	}
	if _, ok := os.LookupEnv(EnvNoColor); ok {
		c.UseColors = false
	}
	return nil
}

// Options converts c into console options.
func (c *Config) Options() []logger.Option {
	return []logger.Option{
		logger.WithHistoryLimit(c.HistoryLimit),
		logger.WithUseColors(c.UseColors),
		logger.WithPrintMessage(c.PrintMessage),
		logger.WithShowTimestamp(c.ShowTimestamp),
		logger.WithShowTimezone(c.ShowTimezone),
		logger.WithEmitRecord(c.EmitRecord),
		logger.WithMaxDepth(c.MaxDepth),
		logger.WithErrorCauses(c.ErrorCauses),
	}
}

// FileSink returns a rotating file sink for the configured path, or nil
// when no file is configured. The caller must close it.
func (c *Config) FileSink() *sink.File {
	if c.File.Path == "" {
		return nil
	}
	return sink.NewFile(sink.FileConfig{
		Path:       c.File.Path,
		MaxSizeMB:  c.File.MaxSizeMB,
		MaxBackups: c.File.MaxBackups,
		MaxAgeDays: c.File.MaxAgeDays,
		Compress:   c.File.Compress,
	})
}
