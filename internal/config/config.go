package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortviz/internal/generate"
)

const (
	DefaultAlgorithm = "bubble"
	DefaultKind      = "random"
	DefaultSize      = 30
	DefaultSpeed     = 5
	DefaultTheme     = "dark"
	DefaultAddr      = ":8080"
	MaxSize          = 200
	MaxValue         = 10000
)

type Config struct {
	Algorithm string         `yaml:"algorithm" toml:"algorithm"`
	Input     InputConfig    `yaml:"input" toml:"input"`
	Playback  PlaybackConfig `yaml:"playback" toml:"playback"`
	Server    ServerConfig   `yaml:"server" toml:"server"`
}

type InputConfig struct {
	Kind   string `yaml:"kind" toml:"kind"`
	Size   int    `yaml:"size" toml:"size"`
	Seed   int64  `yaml:"seed" toml:"seed"`
	Min    int    `yaml:"min" toml:"min"`
	Max    int    `yaml:"max" toml:"max"`
	Swaps  int    `yaml:"swaps" toml:"swaps"`
	Unique int    `yaml:"unique" toml:"unique"`
	Values []int  `yaml:"values,omitempty" toml:"values,omitempty"`
}

type PlaybackConfig struct {
	// Speed is 1..10; frames advance every 1000/(2*speed) ms.
	Speed int    `yaml:"speed" toml:"speed"`
	Theme string `yaml:"theme" toml:"theme"`
}

type ServerConfig struct {
	Addr        string `yaml:"addr" toml:"addr"`
	MaxSize     int    `yaml:"max_size" toml:"max_size"`
	MaxValue    int    `yaml:"max_value" toml:"max_value"`
	AllowOrigin string `yaml:"allow_origin" toml:"allow_origin"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: DefaultAlgorithm,
		Input: InputConfig{
			Kind:   DefaultKind,
			Size:   DefaultSize,
			Min:    generate.DefaultMin,
			Max:    generate.DefaultMax,
			Swaps:  generate.DefaultSwaps,
			Unique: generate.DefaultUnique,
		},
		Playback: PlaybackConfig{
			Speed: DefaultSpeed,
			Theme: DefaultTheme,
		},
		Server: ServerConfig{
			Addr:        DefaultAddr,
			MaxSize:     MaxSize,
			MaxValue:    MaxValue,
			AllowOrigin: "*",
		},
	}
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// Load reads a YAML file, or TOML when the extension is .toml. Missing
// fields keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if isTOML(path) {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	var data []byte
	if isTOML(path) {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return err
		}
		data = buf.Bytes()
	} else {
		var err error
		data, err = yaml.Marshal(cfg)
		if err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

// GetParams converts the input section into generator parameters.
func (c *Config) GetParams() generate.Params {
	return generate.Params{
		Min:    c.Input.Min,
		Max:    c.Input.Max,
		Swaps:  c.Input.Swaps,
		Unique: c.Input.Unique,
		Values: c.Input.Values,
	}
}

// Clamp bounds size and speed to what the front-ends can display.
func (c *Config) Clamp() {
	c.Input.Size = min(max(c.Input.Size, 0), MaxSize)
	c.Playback.Speed = min(max(c.Playback.Speed, 1), 10)
}

// ErrValueTooLarge reports an input value beyond the configured magnitude.
var ErrValueTooLarge = errors.New("config: value too large")

// CheckValues rejects values with magnitude above limit. Counting and radix
// size their tables and frame counts by the largest value.
func CheckValues(values []int, limit int) error {
	for _, v := range values {
		if v > limit || v < -limit {
			return fmt.Errorf("%w: %d, limit %d", ErrValueTooLarge, v, limit)
		}
	}
	return nil
}
