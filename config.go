// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scriptum

import (
	"fmt"
	"os"
	"strconv"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// EnvCheck overrides Config.Check when set to a value strconv.ParseBool accepts.
const EnvCheck = "SCRIPTUM_CHECK"

// Config controls runtime validation and logging.
type Config struct {
	// Check enables deep validation: dictionary operations must take as many
	// parameters as their declared shape has arrows.
	Check bool `yaml:"check"`

	// LogLevel is the minimum level of the package logger ("debug", "info", ...).
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the configuration in effect at startup.
func DefaultConfig() Config {
	return Config{Check: true, LogLevel: "info"}
}

// LoadConfig reads a YAML configuration file. Fields missing from the file
// keep their defaults, and the environment override is applied last.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("scriptum: config %s: %w", path, err)
	}
	return cfg, applyEnv(&cfg)
}

func applyEnv(cfg *Config) error {
	v, ok := os.LookupEnv(EnvCheck)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("scriptum: %s=%q: %w", EnvCheck, v, err)
	}
	cfg.Check = b
	return nil
}

// Configure applies cfg to the package.
func Configure(cfg Config) error {
	lvl, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("scriptum: log level: %w", err)
	}
	checking.Store(cfg.Check)
	logLevel.SetLevel(lvl)
	return nil
}

// Checking reports whether deep validation is enabled.
func Checking() bool { return checking.Load() }

var checking = initialCheck()

func initialCheck() *atomic.Bool {
	cfg := DefaultConfig()
	var b atomic.Bool
	if err := applyEnv(&cfg); err != nil {
		// keep the default; the logger is not configured this early
		cfg = DefaultConfig()
	}
	b.Store(cfg.Check)
	return &b
}

var (
	logLevel  = zap.NewAtomicLevelAt(zap.InfoLevel)
	nopLogger = zap.NewNop()
	pkgLogger atomic.Pointer[zap.Logger]
)

// SetLogger installs the logger used for class and dictionary diagnostics.
// Entries below the configured LogLevel are dropped. A nil logger disables logging.
func SetLogger(l *zap.Logger) {
	if l == nil {
		pkgLogger.Store(nil)
		return
	}
	pkgLogger.Store(l.Named("scriptum").WithOptions(zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		return levelCore{Core: c, level: logLevel}
	})))
}

// levelCore drops entries below level on top of the filtering of the wrapped
// core. level is consulted on every entry, so Configure applies to loggers
// installed earlier, whatever the level of the wrapped core.
type levelCore struct {
	zapcore.Core
	level zapcore.LevelEnabler
}

func (c levelCore) Enabled(l zapcore.Level) bool {
	return c.level.Enabled(l) && c.Core.Enabled(l)
}

func (c levelCore) Level() zapcore.Level {
	return max(zapcore.LevelOf(c.level), zapcore.LevelOf(c.Core))
}

func (c levelCore) With(fields []zapcore.Field) zapcore.Core {
	return levelCore{Core: c.Core.With(fields), level: c.level}
}

func (c levelCore) Check(e zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !c.level.Enabled(e.Level) {
		return ce
	}
	return c.Core.Check(e, ce)
}

func logger() *zap.Logger {
	if l := pkgLogger.Load(); l != nil {
		return l
	}
	return nopLogger
}
