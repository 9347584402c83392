package log

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
)

// writerHandler logs to an io.Writer.
type writerHandler struct {
	out *stdlog.Logger
}

// NewStdHandler create a stdout log handler
func NewStdHandler() Handler {
	return NewWriterHandler(os.Stdout)
}

// NewWriterHandler create a handler logging into w.
func NewWriterHandler(w io.Writer) Handler {
	return &writerHandler{out: stdlog.New(w, "", stdlog.LstdFlags|stdlog.Lshortfile)}
}

// Log writes one line at lv.
func (h *writerHandler) Log(lv Level, msg string) {
	_ = h.out.Output(callDepth, fmt.Sprintf("[%s] %s", lv, msg))
}

// Close is a no-op, the writer is owned by the caller.
func (h *writerHandler) Close() (err error) {
	return
}
