// Package logger provides leveled logging for the nginx-deploy CLI tool.
//
// The logger package outputs debug information to stderr, separate from
// the user-facing output that goes to stdout. This keeps `nginx-deploy print`
// pipeable while still allowing verbose diagnostics.
//
// # Log Levels
//
// Four log levels are supported, in order of severity:
//   - Debug: Detailed information for debugging
//   - Info: General operational information
//   - Warn: Warning conditions that don't prevent operation
//   - Error: Error conditions that affect operation
//
// # Initialization
//
// Initialize the logger based on the --verbose flag:
//
//	logger.Init(verbose)  // verbose=true enables Debug level
//
// By default (verbose=false), only Warn and Error messages are shown.
//
// # Usage
//
//	logger.Debug("Loading settings from %s", path)
//	logger.Warn("Settings file not found, using defaults")
//
//	logger.DebugFields("Template resolved", map[string]interface{}{
//	    "path":     path,
//	    "override": true,
//	})
//
// # Output Format
//
// Messages are encoded by zap's console encoder:
//
//	2026-02-03 10:30:45	[DEBUG]	Template resolved	{"override": true, "path": "..."}
//
// # Log File
//
// SetLogFile additionally writes every message, whatever the level, as JSON
// to a size-rotated file:
//
//	logger.SetLogFile("log/nginx-deploy.log")
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level represents a logging severity level.
type Level int

// Log levels from least to most severe.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelInfo:
		return zapcore.InfoLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}

// Logger wraps a zap sugared logger whose level can change at runtime.
type Logger struct {
	mu     sync.Mutex
	level  Level
	atom   zap.AtomicLevel
	output io.Writer
	file   *lumberjack.Logger
	sugar  *zap.SugaredLogger
}

// Global logger instance.
var std = newLogger(LevelWarn, os.Stderr)

func newLogger(level Level, w io.Writer) *Logger {
	l := &Logger{
		level:  level,
		atom:   zap.NewAtomicLevelAt(level.zapLevel()),
		output: w,
	}
	l.build()
	return l
}

// build must be called with mu held (or before the logger is shared).
func (l *Logger) build() {
	encCfg := zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeTime:       zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05"),
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: "\t",
		EncodeLevel: func(lvl zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString("[" + lvl.CapitalString() + "]")
		},
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(l.output)),
		l.atom,
	)

	if l.file != nil {
		fileCfg := zapcore.EncoderConfig{
			TimeKey:     "ts",
			LevelKey:    "level",
			MessageKey:  "msg",
			LineEnding:  zapcore.DefaultLineEnding,
			EncodeTime:  zapcore.ISO8601TimeEncoder,
			EncodeLevel: zapcore.LowercaseLevelEncoder,
		}
		fileCore := zapcore.NewCore(
			zapcore.NewJSONEncoder(fileCfg),
			zapcore.AddSync(l.file),
			zap.DebugLevel,
		)
		core = zapcore.NewTee(core, fileCore)
	}

	l.sugar = zap.New(core).Sugar()
}

// Init initializes the global logger with the specified verbosity.
// When verbose is true, Debug and Info levels are enabled.
// When verbose is false, only Warn and Error are shown.
func Init(verbose bool) {
	if verbose {
		SetLevel(LevelDebug)
	} else {
		SetLevel(LevelWarn)
	}
}

// SetLevel sets the minimum log level for the global logger.
func SetLevel(level Level) {
	std.mu.Lock()
	defer std.mu.Unlock()
	std.level = level
	std.atom.SetLevel(level.zapLevel())
}

// SetOutput sets the output destination for the global logger.
// Passing nil restores os.Stderr.
func SetOutput(w io.Writer) {
	std.mu.Lock()
	defer std.mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	std.output = w
	std.build()
}

// SetLogFile tees every message to a rotated JSON log at path. An empty path
// closes the current file and stops file logging.
func SetLogFile(path string) error {
	std.mu.Lock()
	defer std.mu.Unlock()

	if std.file != nil {
		_ = std.file.Close()
		std.file = nil
	}

	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		std.file = &lumberjack.Logger{
			Filename:   path,
			MaxSize:    10, // MB
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		}
	}

	std.build()
	return nil
}

// GetLevel returns the current log level.
func GetLevel() Level {
	std.mu.Lock()
	defer std.mu.Unlock()
	return std.level
}

func (l *Logger) log(level Level, format string, args ...interface{}) {
	l.mu.Lock()
	sugar := l.sugar
	l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	switch level {
	case LevelDebug:
		sugar.Debug(msg)
	case LevelInfo:
		sugar.Info(msg)
	case LevelWarn:
		sugar.Warn(msg)
	default:
		sugar.Error(msg)
	}
}

func (l *Logger) logFields(level Level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	sugar := l.sugar
	l.mu.Unlock()

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	kv := make([]interface{}, 0, len(keys)*2)
	for _, k := range keys {
		kv = append(kv, k, fields[k])
	}

	switch level {
	case LevelDebug:
		sugar.Debugw(msg, kv...)
	case LevelInfo:
		sugar.Infow(msg, kv...)
	case LevelWarn:
		sugar.Warnw(msg, kv...)
	default:
		sugar.Errorw(msg, kv...)
	}
}

// Debug logs a debug message.
// Only shown when verbose mode is enabled.
func Debug(format string, args ...interface{}) {
	std.log(LevelDebug, format, args...)
}

// Info logs an informational message.
// Only shown when verbose mode is enabled.
func Info(format string, args ...interface{}) {
	std.log(LevelInfo, format, args...)
}

// Warn logs a warning message.
func Warn(format string, args ...interface{}) {
	std.log(LevelWarn, format, args...)
}

// DebugFields logs a debug message with structured fields.
func DebugFields(msg string, fields map[string]interface{}) {
	std.logFields(LevelDebug, msg, fields)
}

// InfoFields logs an informational message with structured fields.
func InfoFields(msg string, fields map[string]interface{}) {
	std.logFields(LevelInfo, msg, fields)
}

// ErrorFields logs an error message with structured fields.
func ErrorFields(msg string, fields map[string]interface{}) {
	std.logFields(LevelError, msg, fields)
}
