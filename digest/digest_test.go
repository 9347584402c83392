package digest

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"oaat/pkg/hashkit"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestSum(t *testing.T) {
	v, err := Sum([]byte(DemoKey), len(DemoKey), "")
	assert.NoError(t, err)
	assert.Equal(t, uint32(847757641), v)

	v, err = Sum([]byte(CheckKey), -1, hashkit.HashMethodOneAtATime)
	assert.NoError(t, err)
	assert.Equal(t, uint32(CheckHash), v)

	v, err = Sum([]byte(CheckKey), 0, "")
	assert.NoError(t, err)
	assert.Equal(t, uint32(0), v)

	// explicit length stops at the prefix
	v, err = Sum([]byte(DemoKey+" and more"), len(DemoKey), "")
	assert.NoError(t, err)
	assert.Equal(t, uint32(847757641), v)
}

func TestSumErrors(t *testing.T) {
	_, err := Sum([]byte("abc"), 4, "")
	assert.Equal(t, ErrLength, errors.Cause(err))

	_, err = Sum([]byte("abc"), 1, "crc64")
	assert.Equal(t, hashkit.ErrUnknownMethod, errors.Cause(err))
}

func TestSumFile(t *testing.T) {
	f, err := ioutil.TempFile("", "oaat-sum")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(f.Name())
	_, err = f.WriteString(CheckKey)
	assert.NoError(t, err)
	assert.NoError(t, f.Close())

	v, err := SumFile(f.Name(), "")
	assert.NoError(t, err)
	assert.Equal(t, uint32(CheckHash), v)

	_, err = SumFile(filepath.Join(os.TempDir(), "oaat-not-exist"), "")
	assert.Error(t, err)
}

func TestSumReader(t *testing.T) {
	v, err := SumReader(strings.NewReader("abc\x00def"), -1, "")
	assert.NoError(t, err)
	assert.Equal(t, uint32(0x4e52b9a4), v)

	v, err = SumReader(strings.NewReader(DemoKey+"\n"), len(DemoKey), "")
	assert.NoError(t, err)
	assert.Equal(t, uint32(847757641), v)

	_, err = SumReader(strings.NewReader("abc"), 4, "")
	assert.Equal(t, ErrLength, errors.Cause(err))
}

func TestCheck(t *testing.T) {
	buf := &bytes.Buffer{}
	assert.NoError(t, Check(buf))
	assert.Equal(t, "Test Passed: Hash: 1369346549\n", buf.String())
}

func TestCheckMismatch(t *testing.T) {
	saved := Vectors
	defer func() { Vectors = saved }()
	Vectors = []Vector{{hashkit.HashMethodOneAtATime, CheckKey, 0x519e91f4}}

	buf := &bytes.Buffer{}
	err := Check(buf)
	assert.Equal(t, ErrMismatch, errors.Cause(err))
	assert.Empty(t, buf.String())
}

func TestCheckLateMismatch(t *testing.T) {
	saved := Vectors
	defer func() { Vectors = saved }()
	Vectors = []Vector{
		{hashkit.HashMethodOneAtATime, CheckKey, CheckHash},
		{hashkit.HashMethodXXHash, "0123456789", 1},
	}

	buf := &bytes.Buffer{}
	err := Check(buf)
	assert.Equal(t, ErrMismatch, errors.Cause(err))
	assert.NotContains(t, buf.String(), "Test Passed")
}

func TestCheckCoversMethods(t *testing.T) {
	covered := make(map[string]bool)
	for _, v := range Vectors {
		covered[v.Method] = true
	}
	for _, name := range hashkit.Methods() {
		if name == hashkit.HashMethodJenkins {
			continue
		}
		assert.True(t, covered[name], name)
	}
}

func TestBench(t *testing.T) {
	m, err := Bench(1000, hashkit.HashMethodOneAtATime)
	assert.NoError(t, err)
	assert.Equal(t, 1000, m.Count)

	_, err = Bench(0, "")
	assert.Equal(t, ErrConfBench, errors.Cause(err))
	_, err = Bench(10, "nope")
	assert.Equal(t, hashkit.ErrUnknownMethod, errors.Cause(err))
}

func TestRing(t *testing.T) {
	c := DefaultConfig()
	c.Ring.Nodes = []string{"a.server", "b.server"}
	c.Ring.Spots = []int{1, 1}
	ring, err := Ring(c)
	assert.NoError(t, err)
	node, ok := ring.GetNode([]byte(DemoKey))
	assert.True(t, ok)
	assert.Contains(t, c.Ring.Nodes, node)

	c.Method = "nope"
	_, err = Ring(c)
	assert.Error(t, err)
}
