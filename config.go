package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jcorbin/brackish/internal/logio"
)

// Config holds host settings, loaded from an optional YAML file and then
// overridden by any flags given on the command line.
type Config struct {
	LogLevel       string   `yaml:"log_level"`
	LogFormat      string   `yaml:"log_format"`
	Print          bool     `yaml:"print"`
	Prompt         string   `yaml:"prompt"`
	ContinuePrompt string   `yaml:"continue_prompt"`
	CallDepthLimit int      `yaml:"call_depth_limit"`
	Prelude        []string `yaml:"prelude"`
}

func defaultConfig() Config {
	return Config{
		LogLevel:       "error",
		LogFormat:      "auto",
		Print:          true,
		Prompt:         "> ",
		ContinuePrompt: ". ",
		CallDepthLimit: DefaultCallDepthLimit,
	}
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()
	if err := cfg.decode(f); err != nil {
		return cfg, fmt.Errorf("%v: %w", path, err)
	}
	return cfg, nil
}

func (cfg *Config) decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return cfg.validate()
}

func (cfg Config) validate() error {
	if _, ok := logio.ParseLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}
	if _, ok := logio.ParseFormat(cfg.LogFormat); !ok {
		return fmt.Errorf("invalid log format %q", cfg.LogFormat)
	}
	if cfg.CallDepthLimit < 1 {
		return fmt.Errorf("invalid call depth limit %v", cfg.CallDepthLimit)
	}
	return nil
}

func (cfg Config) level() logio.Level {
	level, _ := logio.ParseLevel(cfg.LogLevel)
	return level
}

func (cfg Config) format() logio.Format {
	format, _ := logio.ParseFormat(cfg.LogFormat)
	return format
}
