package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLogFile = "reddit-cli.log"

var (
	mu           sync.Mutex
	logger       = zap.NewNop()
	traceEnabled bool
	logPath      string
	logFile      *os.File
)

// Configure points the shared logger at path. Empty values fall back to the
// default file. Directories are created automatically when missing.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	if strings.TrimSpace(path) == "" {
		path = defaultLogFile
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		path = defaultLogFile
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
		return
	}
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "time"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(f), zapcore.DebugLevel)
	swapLocked(zap.New(core), f)
	logPath = path
}

// swapLocked installs l and closes the file behind the previous logger.
// mu must be held.
func swapLocked(l *zap.Logger, f *os.File) {
	_ = logger.Sync()
	if logFile != nil && logFile != f {
		_ = logFile.Close()
	}
	logger = l
	logFile = f
}

// Path reports the active log file, or "" before Configure.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

// Logger exposes the underlying zap logger.
func Logger() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// SetLogger swaps the shared logger and closes any file opened by
// Configure. Tests use zaptest/observer cores here.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	mu.Lock()
	swapLocked(l, nil)
	logPath = ""
	mu.Unlock()
}

// Error records err at error level.
func Error(err error) {
	if err == nil {
		return
	}
	Logger().Error(err.Error(), zap.String("type", fmt.Sprintf("%T", err)))
}

// Warn records a recoverable diagnostic.
func Warn(msg string, fields ...zap.Field) {
	Logger().Warn(msg, fields...)
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// TraceEnabled reports whether Trace writes anything.
func TraceEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return traceEnabled
}

// Trace appends a structured entry when tracing is enabled.
func Trace(event string, payload interface{}) {
	if !TraceEnabled() {
		return
	}
	Logger().Debug(event, zap.String("event", event), zap.Any("payload", payload))
}

// Sync flushes buffered entries.
func Sync() {
	_ = Logger().Sync()
}
