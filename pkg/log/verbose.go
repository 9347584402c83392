package log

import (
	"fmt"
	"sync/atomic"
)

var verbose int32

// SetVerbose sets the level V compares against.
func SetVerbose(level int) {
	atomic.StoreInt32(&verbose, int32(level))
}

// VerboseLevel returns the current verbose level.
func VerboseLevel() int {
	return int(atomic.LoadInt32(&verbose))
}

// Verbose is true when its log calls pass the verbose level.
type Verbose bool

// V reports whether level is enabled, levels start at 1.
//
//	log.V(2).Infof("ring %d points", n)
func V(level int) Verbose {
	return Verbose(level <= VerboseLevel())
}

// Info logs args at LevelInfo when v is enabled.
func (v Verbose) Info(args ...interface{}) {
	if v {
		emit(LevelInfo, fmt.Sprint(args...))
	}
}

// Infof logs at LevelInfo when v is enabled.
func (v Verbose) Infof(format string, args ...interface{}) {
	if v {
		emit(LevelInfo, sprintf(format, args))
	}
}

// Warnf logs at LevelWarn when v is enabled.
func (v Verbose) Warnf(format string, args ...interface{}) {
	if v {
		emit(LevelWarn, sprintf(format, args))
	}
}

// Errorf logs at LevelError when v is enabled.
func (v Verbose) Errorf(format string, args ...interface{}) {
	if v {
		emit(LevelError, sprintf(format, args))
	}
}
