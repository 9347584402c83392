package log

import (
	"fmt"
	"sync"
)

// callDepth is the stack distance from a handler's Log to the code that
// called Info/Infof or their Verbose forms: handler.Log, Handlers.Log, emit,
// the log func, the caller.
const callDepth = 5

// Config log config.
type Config struct {
	Stdout bool
	Debug  bool
	Log    string
	LogVL  int `toml:"log_vl"`
}

var (
	mu sync.RWMutex
	h  Handlers
)

// Init installs the handlers c asks for and sets the verbose level.
// It reports whether any handler is installed; without one every log call
// is dropped.
func Init(c *Config) bool {
	if c == nil {
		c = &Config{}
	}
	var hs Handlers
	if c.Debug || c.Stdout {
		hs = append(hs, NewStdHandler())
	}
	if c.Log != "" {
		hs = append(hs, NewFileHandler(c.Log))
	}
	if c.LogVL != 0 {
		SetVerbose(c.LogVL)
	}
	if len(hs) == 0 {
		return false
	}
	InitHandle(hs...)
	return true
}

// InitHandle replaces the installed handlers.
func InitHandle(hs ...Handler) {
	mu.Lock()
	h = Handlers(hs)
	mu.Unlock()
}

// Close closes and uninstalls the handlers.
func Close() error {
	mu.Lock()
	cur := h
	h = nil
	mu.Unlock()
	return cur.Close()
}

// emit must be called directly by the exported log funcs, see callDepth.
func emit(lv Level, msg string) {
	mu.RLock()
	cur := h
	mu.RUnlock()
	if len(cur) == 0 {
		return
	}
	cur.Log(lv, msg)
}

func sprintf(format string, args []interface{}) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

// Info logs args at LevelInfo.
func Info(args ...interface{}) { emit(LevelInfo, fmt.Sprint(args...)) }

// Warn logs args at LevelWarn.
func Warn(args ...interface{}) { emit(LevelWarn, fmt.Sprint(args...)) }

// Error logs args at LevelError.
func Error(args ...interface{}) { emit(LevelError, fmt.Sprint(args...)) }

// Infof logs a formatted message at LevelInfo.
func Infof(format string, args ...interface{}) { emit(LevelInfo, sprintf(format, args)) }

// Warnf logs a formatted message at LevelWarn.
func Warnf(format string, args ...interface{}) { emit(LevelWarn, sprintf(format, args)) }

// Errorf logs a formatted message at LevelError.
func Errorf(format string, args ...interface{}) { emit(LevelError, sprintf(format, args)) }
