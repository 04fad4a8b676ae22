// Package config loads the stub server configuration: listen address,
// logging and the list of routes to serve.
package config

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/catatsuy/methodtree/internal/logging"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

var (
	ErrNoRoutes     = errors.New("config: no routes")
	ErrInvalidRoute = errors.New("config: invalid route")
)

// Config is the root of the configuration file.
type Config struct {
	Server ServerConfig   `mapstructure:"server"`
	Log    logging.Config `mapstructure:"log"`
	Routes []RouteConfig  `mapstructure:"routes"`
}

type ServerConfig struct {
	Addr        string `mapstructure:"addr"`
	MetricsPath string `mapstructure:"metrics_path"`
	Tracing     bool   `mapstructure:"tracing"`
}

// RouteConfig describes one stubbed route. Body is a template where {name}
// is replaced with the path parameter name.
type RouteConfig struct {
	Method  string            `mapstructure:"method"`
	Path    string            `mapstructure:"path"`
	Status  int               `mapstructure:"status"`
	Body    string            `mapstructure:"body"`
	Headers map[string]string `mapstructure:"headers"`
}

// Default returns a config with defaults filled in and no routes.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:        ":8080",
			MetricsPath: "/metrics",
			Tracing:     true,
		},
		Log: logging.Default(),
	}
}

// Load reads path, applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML data on top of Default, applies environment overrides
// and validates the result.
func Parse(data []byte) (*Config, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	cfg := Default()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.applyEnv()
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Server.Addr = GetEnvStr(EnvAddr, c.Server.Addr)
	c.Log.Level = GetEnvStr(EnvLogLevel, c.Log.Level)
	c.Log.Format = GetEnvStr(EnvLogFormat, c.Log.Format)
	c.Log.File = GetEnvStr(EnvLogFile, c.Log.File)
}

func (c *Config) normalize() error {
	if len(c.Routes) == 0 {
		return ErrNoRoutes
	}
	for i := range c.Routes {
		rt := &c.Routes[i]
		if rt.Path == "" {
			return fmt.Errorf("%w: routes[%d]: empty path", ErrInvalidRoute, i)
		}
		if rt.Method == "" {
			rt.Method = http.MethodGet
		}
		if rt.Status == 0 {
			rt.Status = http.StatusOK
		}
		if rt.Status < 100 || rt.Status > 599 {
			return fmt.Errorf("%w: routes[%d]: status %d out of range", ErrInvalidRoute, i, rt.Status)
		}
	}
	return nil
}
