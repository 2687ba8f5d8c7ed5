// Package config holds the settings of the triemapd server.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/mengelbart/triemap"
	"gopkg.in/yaml.v3"
)

var (
	errNoAddr          = errors.New("listen address must not be empty")
	errInvalidPath     = errors.New("webtransport path must start with '/'")
	errInvalidInterval = errors.New("metrics interval must not be negative")
)

type Config struct {
	Addr             string            `yaml:"addr" toml:"addr"`
	CertFile         string            `yaml:"cert" toml:"cert"`
	KeyFile          string            `yaml:"key" toml:"key"`
	WebTransportPath string            `yaml:"webtransport_path" toml:"webtransport_path"`
	LogLevel         string            `yaml:"log_level" toml:"log_level"`
	MetricsInterval  time.Duration     `yaml:"metrics_interval" toml:"metrics_interval"`
	Seed             map[string]string `yaml:"seed" toml:"seed"`
}

func Default() Config {
	return Config{
		Addr:             "localhost:8080",
		WebTransportPath: "/triemap",
		LogLevel:         "info",
		MetricsInterval:  10 * time.Second,
	}
}

// Load reads the file at path over the defaults. Files ending in .toml are
// parsed as TOML, everything else as YAML.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ParseTOML(data)
	}
	return ParseYAML(data)
}

func ParseYAML(data []byte) (Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parsing yaml config: %w", err)
	}
	return c, c.Validate()
}

func ParseTOML(data []byte) (Config, error) {
	c := Default()
	if _, err := toml.Decode(string(data), &c); err != nil {
		return Config{}, fmt.Errorf("parsing toml config: %w", err)
	}
	return c, c.Validate()
}

func (c Config) Validate() error {
	if len(c.Addr) == 0 {
		return errNoAddr
	}
	if !strings.HasPrefix(c.WebTransportPath, "/") {
		return fmt.Errorf("%w: %q", errInvalidPath, c.WebTransportPath)
	}
	if c.MetricsInterval < 0 {
		return errInvalidInterval
	}
	_, err := c.Level()
	return err
}

// Level returns the slog level named by LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return l, nil
}

// SeedEntries returns the seed entries in key order.
func (c Config) SeedEntries() []triemap.KeyValue[string, []byte] {
	m := triemap.FromMap(c.Seed)
	res := make([]triemap.KeyValue[string, []byte], 0, m.Len())
	for k, v := range m.All() {
		res = append(res, triemap.KeyValue[string, []byte]{Key: k, Value: []byte(v)})
	}
	return res
}
