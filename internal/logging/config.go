package logging

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	EnvLogLevel     = "HDLC_LOG_LEVEL"
	EnvLogTimestamp = "HDLC_LOG_TIMESTAMP"
	EnvLogNoColor   = "HDLC_LOG_NOCOLOR"
)

type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

// Config is the resolved console logger setup.
type Config struct {
	Level     zerolog.Level
	Timestamp bool
	NoColor   bool
}

var configureOnce sync.Once

func ConfigureRuntime() {
	Configure(ProfileRuntime)
}

func ConfigureTests() {
	Configure(ProfileTest)
}

// Configure sets the global zerolog level and log.Logger once per process.
func Configure(profile Profile) {
	configureOnce.Do(func() {
		cfg := defaultConfig(profile)
		applyEnvOverrides(&cfg)
		zerolog.SetGlobalLevel(cfg.Level)
		log.Logger = newConsole(os.Stderr, cfg)
	})
}

// New returns a console logger tagged with app.
func New(app string) zerolog.Logger {
	return log.Logger.With().Str("app", app).Logger()
}

// ApplyConfigLevel sets the global level from a config file value. A
// parseable HDLC_LOG_LEVEL always wins, and an empty value leaves the level
// untouched. It reports whether the file value was applied.
func ApplyConfigLevel(raw string) (bool, error) {
	if _, ok := ParseLevel(os.Getenv(EnvLogLevel)); ok {
		return false, nil
	}
	if strings.TrimSpace(raw) == "" {
		return false, nil
	}
	lvl, ok := ParseLevel(raw)
	if !ok {
		return false, fmt.Errorf("logging: unknown level %q", raw)
	}
	zerolog.SetGlobalLevel(lvl)
	return true, nil
}

func newConsole(out io.Writer, cfg Config) zerolog.Logger {
	w := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    cfg.NoColor,
		TimeFormat: time.RFC3339,
	}
	ctx := zerolog.New(w).With()
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}
	return ctx.Logger()
}

func defaultConfig(profile Profile) Config {
	switch profile {
	case ProfileTest:
		return Config{Level: zerolog.TraceLevel, Timestamp: false}
	default:
		return Config{Level: zerolog.InfoLevel, Timestamp: true}
	}
}

func applyEnvOverrides(cfg *Config) {
	if lvl, ok := ParseLevel(os.Getenv(EnvLogLevel)); ok {
		cfg.Level = lvl
	}
	if v, ok := envBool(EnvLogTimestamp); ok {
		cfg.Timestamp = v
	}
	if v, ok := envBool(EnvLogNoColor); ok {
		cfg.NoColor = v
	}
}

var levelAliases = map[string]string{
	"diagnostics": "trace",
	"warning":     "warn",
	"disable":     "disabled",
	"off":         "disabled",
	"none":        "disabled",
	"inactive":    "disabled",
}

// ParseLevel accepts zerolog level names plus a few operator aliases.
func ParseLevel(raw string) (zerolog.Level, bool) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if alias, ok := levelAliases[name]; ok {
		name = alias
	}
	if name == "" {
		return zerolog.NoLevel, false
	}
	lvl, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.NoLevel, false
	}
	return lvl, true
}

// envBool reads key as a bool; unset or malformed values report false.
func envBool(key string) (bool, bool) {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	return v, err == nil
}
