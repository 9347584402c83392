package log

import (
	"github.com/pkg/errors"
)

// Handler writes log events somewhere. Implementations must be safe for
// concurrent use and format their own line; they are called at callDepth.
type Handler interface {
	Log(lv Level, msg string)
	Close() error
}

// Handlers sends every event to each of its members in order.
type Handlers []Handler

// Log forwards to every member.
func (hs Handlers) Log(lv Level, msg string) {
	for _, h := range hs {
		h.Log(lv, msg)
	}
}

// Close closes every member and returns the first failure.
func (hs Handlers) Close() error {
	var first error
	for i, h := range hs {
		if err := h.Close(); err != nil && first == nil {
			first = errors.Wrapf(err, "close handler %d", i)
		}
	}
	return first
}
