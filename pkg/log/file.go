// Copyright 2016 CodisLabs. All Rights Reserved.
// Licensed under the MIT (MIT-LICENSE.txt) license.

package log

import (
	"fmt"
	stdlog "log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pkg/errors"
)

const (
	dailyRolling = "2006-01-02"
)

// fileHandler writes into {basePath}.{date}, opening a new file each day.
type fileHandler struct {
	lock sync.Mutex
	l    *stdlog.Logger

	f        *os.File
	basePath string
	fileFrag string
}

// NewFileHandler new file handler, panics when basePath cannot be opened.
func NewFileHandler(basePath string) Handler {
	if _, file := filepath.Split(basePath); file == "" {
		panic("invalid base path")
	}
	f := &fileHandler{
		l:        stdlog.New(nil, "", stdlog.LstdFlags|stdlog.Lshortfile),
		basePath: basePath,
	}
	if err := f.roll(time.Now()); err != nil {
		panic(err)
	}
	return f
}

func (r *fileHandler) Log(lv Level, msg string) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if err := r.roll(time.Now()); err != nil {
		return
	}
	_ = r.l.Output(callDepth, fmt.Sprintf("[%s] %s", lv, msg))
}

func (r *fileHandler) Close() (err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.f != nil {
		err = r.f.Close()
		r.f = nil
	}
	return
}

func (r *fileHandler) roll(now time.Time) error {
	suffix := now.Format(dailyRolling)
	if r.f != nil {
		if suffix == r.fileFrag {
			return nil
		}
		r.f.Close()
		r.f = nil
	}
	if dir, _ := filepath.Split(r.basePath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "mkdir:%s", dir)
		}
	}
	path := fmt.Sprintf("%s.%s", r.basePath, suffix)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return errors.Wrapf(err, "open log file:%s", path)
	}
	r.fileFrag = suffix
	r.f = f
	r.l.SetOutput(f)
	return nil
}
