package log_test

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"oaat/pkg/log"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestLogLevels(t *testing.T) {
	buf := &bytes.Buffer{}
	log.InitHandle(log.NewWriterHandler(buf))
	defer log.Close()

	log.Info("test1", "test2")
	log.Warnf("1(%s)", "test1")
	log.Error("test1")
	log.Errorf("stack:%+v", errors.New("this is a error"))

	out := buf.String()
	assert.Contains(t, out, "[INFO] test1test2")
	assert.Contains(t, out, "[WARN] 1(test1)")
	assert.Contains(t, out, "[ERROR] test1")
	assert.Contains(t, out, "this is a error")
}

func TestVerbose(t *testing.T) {
	buf := &bytes.Buffer{}
	log.InitHandle(log.NewWriterHandler(buf))
	defer log.Close()

	vl := log.VerboseLevel()
	defer log.SetVerbose(vl)

	log.SetVerbose(3)
	log.V(5).Info("this cannot be print")
	log.V(5).Warnf("this cannot be print:%s", "yeah")
	log.V(3).Infof("this will be printing:%s", "yeah")
	log.V(2).Errorf("this will be printing too")

	out := buf.String()
	assert.NotContains(t, out, "cannot")
	assert.Contains(t, out, "this will be printing:yeah")
	assert.Contains(t, out, "this will be printing too")
}

func TestCallerFile(t *testing.T) {
	buf := &bytes.Buffer{}
	log.InitHandle(log.NewWriterHandler(buf))
	defer log.Close()

	vl := log.VerboseLevel()
	defer log.SetVerbose(vl)
	log.SetVerbose(1)

	log.Infof("direct")
	log.V(1).Infof("verbose")
	log.Warn("plain")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if assert.Len(t, lines, 3) {
		for _, l := range lines {
			assert.Contains(t, l, "log_test.go:", l)
		}
	}
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "INFO", log.LevelInfo.String())
	assert.Equal(t, "WARN", log.LevelWarn.String())
	assert.Equal(t, "ERROR", log.LevelError.String())
	assert.Equal(t, "UNKNOWN", log.Level(9).String())
}

func TestNoHandler(t *testing.T) {
	assert.False(t, log.Init(nil))
	// no handler, nothing to panic on
	log.Info("dropped")
	assert.NoError(t, log.Close())
}

func TestFileHandler(t *testing.T) {
	dir, err := ioutil.TempDir("", "oaat-log")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	ok := log.Init(&log.Config{Log: filepath.Join(dir, "sub", "oaat.log")})
	assert.True(t, ok)
	log.Infof("hash %d", 847757641)
	assert.NoError(t, log.Close())

	files, err := filepath.Glob(filepath.Join(dir, "sub", "oaat.log.*"))
	assert.NoError(t, err)
	if assert.Len(t, files, 1) {
		bs, err := ioutil.ReadFile(files[0])
		assert.NoError(t, err)
		assert.True(t, strings.Contains(string(bs), "[INFO] hash 847757641"))
	}
}
