package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Leveled logger shared by the verification services.
// - package-level helpers (Debugf/Infof/Warnf/Errorf/Fatalf) backed by zap
// - Init(level) adjusts the level at runtime; Zap() exposes the underlying logger
//   for gin request logging

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var (
	mu    sync.RWMutex
	atom  = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	level = LevelInfo
	base  = newLogger(os.Stdout)
)

func newLogger(w io.Writer) *zap.Logger {
	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "ts"
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	enc.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), atom)
	return zap.New(core)
}

// Init sets the global log level (case-insensitive: debug, info, warn, error, fatal).
// Call early during startup. Default level is Info.
func Init(l string) {
	mu.Lock()
	defer mu.Unlock()
	switch strings.ToLower(strings.TrimSpace(l)) {
	case "debug":
		level = LevelDebug
		atom.SetLevel(zapcore.DebugLevel)
	case "warn", "warning":
		level = LevelWarn
		atom.SetLevel(zapcore.WarnLevel)
	case "error":
		level = LevelError
		atom.SetLevel(zapcore.ErrorLevel)
	case "fatal":
		level = LevelFatal
		atom.SetLevel(zapcore.FatalLevel)
	default:
		level = LevelInfo
		atom.SetLevel(zapcore.InfoLevel)
	}
}

// Zap returns the underlying structured logger.
func Zap() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

func sugar() *zap.SugaredLogger {
	return Zap().Sugar()
}

func Debugf(format string, v ...interface{}) { sugar().Debugf(format, v...) }
func Infof(format string, v ...interface{})  { sugar().Infof(format, v...) }
func Warnf(format string, v ...interface{})  { sugar().Warnf(format, v...) }
func Errorf(format string, v ...interface{}) { sugar().Errorf(format, v...) }

// Fatalf logs regardless of level and exits the process.
func Fatalf(format string, v ...interface{}) {
	fatalLogger().Sugar().Errorf(format, v...)
	_ = Sync()
	os.Exit(1)
}

// fatalLogger writes through the same core with level filtering disabled.
func fatalLogger() *zap.Logger {
	return Zap().WithOptions(zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		return unfilteredCore{c}
	}))
}

type unfilteredCore struct{ zapcore.Core }

func (u unfilteredCore) Enabled(zapcore.Level) bool { return true }

func (u unfilteredCore) Check(e zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	return ce.AddCore(e, u)
}

func (u unfilteredCore) With(fields []zapcore.Field) zapcore.Core {
	return unfilteredCore{u.Core.With(fields)}
}

func Debug(v string) { Debugf("%s", v) }
func Info(v string)  { Infof("%s", v) }
func Warn(v string)  { Warnf("%s", v) }
func Error(v string) { Errorf("%s", v) }

// Sync flushes buffered entries.
func Sync() error {
	return Zap().Sync()
}

// LevelString returns the current level as text.
func LevelString() string {
	mu.RLock()
	defer mu.RUnlock()
	switch level {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	}
	return "info"
}
