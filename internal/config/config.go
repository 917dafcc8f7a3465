package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/hdlcbody/internal/logging"
)

const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config is the hdlcd runtime configuration. An empty LogLevel keeps the
// level chosen by the logging environment.
type Config struct {
	ID           string
	Addr         string
	LogLevel     string
	Output       string
	CorsOrigins  []string
	MaxBodyBytes int64
}

// hdlcd config.toml key mapping.
type fileConfig struct {
	ID           string   `toml:"id"`
	Addr         string   `toml:"addr"`
	LogLevel     string   `toml:"log_level"`
	Output       string   `toml:"output"`
	CorsOrigins  []string `toml:"cors_origins"`
	MaxBodyBytes int64    `toml:"max_body_bytes"`
}

func Default() Config {
	return Config{
		ID:           "hdlcd",
		Addr:         ":9200",
		Output:       OutputJSON,
		MaxBodyBytes: 64 * 1024,
	}
}

// Load overlays the keys defined in the TOML file at path onto Default.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config parse failed (%s): unknown key %q", path, undecoded[0].String())
	}

	if meta.IsDefined("id") {
		cfg.ID = strings.TrimSpace(raw.ID)
	}
	if meta.IsDefined("addr") {
		cfg.Addr = strings.TrimSpace(raw.Addr)
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("output") {
		cfg.Output = strings.ToLower(strings.TrimSpace(raw.Output))
	}
	if meta.IsDefined("cors_origins") {
		cfg.CorsOrigins = raw.CorsOrigins
	}
	if meta.IsDefined("max_body_bytes") {
		cfg.MaxBodyBytes = raw.MaxBodyBytes
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.ID) == "" {
		return fmt.Errorf("config missing id")
	}
	if strings.TrimSpace(cfg.Addr) == "" {
		return fmt.Errorf("config missing addr")
	}
	if strings.TrimSpace(cfg.LogLevel) != "" {
		if _, ok := logging.ParseLevel(cfg.LogLevel); !ok {
			return fmt.Errorf("config log_level unknown: %q", cfg.LogLevel)
		}
	}
	switch cfg.Output {
	case OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("config output must be %s or %s, got %q", OutputJSON, OutputYAML, cfg.Output)
	}
	if cfg.MaxBodyBytes <= 0 {
		return fmt.Errorf("config max_body_bytes must be positive")
	}
	for i, origin := range cfg.CorsOrigins {
		if strings.TrimSpace(origin) == "" {
			return fmt.Errorf("cors_origins[%d] is empty", i)
		}
	}
	return nil
}
