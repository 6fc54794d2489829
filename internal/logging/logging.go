// internal/logging/logging.go
// Package logging owns the process-wide zap logger used by every command.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects the level, encoding and optional file sink of the logger.
type Options struct {
	Level  string
	Format string
	File   string
}

var (
	mu     sync.Mutex
	logger = zap.NewNop()
)

// Init builds the global logger. Calling it again replaces the previous logger.
func Init(opts Options) error {
	mu.Lock()
	defer mu.Unlock()

	var cfg zap.Config
	if strings.EqualFold(opts.Format, "json") {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.DisableStacktrace = true

	levelText := strings.TrimSpace(opts.Level)
	if levelText == "" {
		levelText = "info"
	}
	level, err := zapcore.ParseLevel(levelText)
	if err != nil {
		return eris.Wrap(err, "logging: parse level")
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	cfg.OutputPaths = []string{"stderr"}
	if path := strings.TrimSpace(opts.File); path != "" {
		if dir := filepath.Dir(path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return eris.Wrapf(err, "logging: create log dir %s", dir)
			}
		}
		cfg.OutputPaths = append(cfg.OutputPaths, path)
	}

	built, err := cfg.Build()
	if err != nil {
		return eris.Wrap(err, "logging: build logger")
	}
	_ = logger.Sync()
	logger = built
	zap.ReplaceGlobals(built)
	return nil
}

// Close flushes buffered entries and falls back to a no-op logger.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	err := logger.Sync()
	logger = zap.NewNop()
	zap.ReplaceGlobals(logger)
	if err != nil && !isStdSyncError(err) {
		return err
	}
	return nil
}

// L returns the current logger.
func L() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// LogEvent writes a formatted informational message.
func LogEvent(format string, args ...any) {
	L().Info(fmt.Sprintf(format, args...))
}

// Syncing a terminal returns EINVAL/ENOTTY on most platforms.
func isStdSyncError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "/dev/stderr") || strings.Contains(msg, "/dev/stdout") ||
		strings.Contains(msg, "invalid argument") || strings.Contains(msg, "inappropriate ioctl")
}
