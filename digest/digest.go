// Package digest runs the oaat hash over command input:
// byte strings, files, known-answer checks, rings and benchmarks.
package digest

import (
	"fmt"
	"io"
	"io/ioutil"
	"strconv"
	"time"

	"oaat/pkg/hashkit"
	"oaat/pkg/log"

	"github.com/Pallinder/go-randomdata"
	"github.com/jamiealquiza/tachymeter"
	"github.com/pkg/errors"
)

// errors
var (
	ErrLength   = errors.New("length out of range")
	ErrMismatch = errors.New("hash mismatch")
)

// Demo key and canonical check vector.
const (
	DemoKey = "Hello, World!"

	CheckKey  = "The quick brown fox jumps over the lazy dog"
	CheckHash = 0x519e91f5
)

// Vector is a known answer.
type Vector struct {
	Method string
	Key    string
	Hash   uint32
}

// Vectors are run by Check, the first one is the canonical vector.
var Vectors = []Vector{
	{hashkit.HashMethodOneAtATime, CheckKey, CheckHash},
	{hashkit.HashMethodOneAtATime, DemoKey, 847757641},
	{hashkit.HashMethodOneAtATime, "", 0},
	{hashkit.HashMethodOneAtATime, "0123456789", 2451084222},
	{hashkit.HashMethodMD5, "0123456789", 610147960},
	{hashkit.HashMethodFnv1a64, "0123456789", 2336436402},
	{hashkit.HashMethodFnv164, "0123456789", 1576209164},
	{hashkit.HashMethodFnv1a32, "0123456789", 4185952242},
	{hashkit.HashMethodFnv132, "0123456789", 1737638188},
	{hashkit.HashMethodHsieh, "0123456789", 2264676836},
	{hashkit.HashMethodMurmur, "0123456789", 1957635836},
	{hashkit.HashMethodXXHash, "0123456789", 2820171751},
}

// Sum hashes the first n bytes of key with method.
// A negative n hashes the whole key.
func Sum(key []byte, n int, method string) (uint32, error) {
	hash, err := hashkit.Lookup(method)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		n = len(key)
	}
	if n > len(key) {
		return 0, errors.Wrapf(ErrLength, "length:%d size:%d", n, len(key))
	}
	return hash(key[:n]), nil
}

// SumFile hashes the whole content of path with method.
func SumFile(path, method string) (uint32, error) {
	bs, err := ioutil.ReadFile(path)
	if err != nil {
		return 0, errors.Wrapf(err, "read file:%s", path)
	}
	return Sum(bs, -1, method)
}

// SumReader reads r to the end and hashes its first n bytes with method,
// see Sum for n.
func SumReader(r io.Reader, n int, method string) (uint32, error) {
	bs, err := ioutil.ReadAll(r)
	if err != nil {
		return 0, errors.Wrap(err, "read input")
	}
	return Sum(bs, n, method)
}

// Check runs every known answer vector. Only when all of them pass is the
// confirmation line of the canonical one written to w. The first mismatch is
// returned as ErrMismatch.
func Check(w io.Writer) error {
	var canonical uint32
	for i, v := range Vectors {
		got, err := Sum([]byte(v.Key), -1, v.Method)
		if err != nil {
			return err
		}
		if got != v.Hash {
			log.Errorf("check %s(%q) got %#x want %#x", v.Method, v.Key, got, v.Hash)
			return errors.Wrapf(ErrMismatch, "%s(%q) got %#x want %#x", v.Method, v.Key, got, v.Hash)
		}
		log.V(1).Infof("check %s(%q) = %d ok", v.Method, v.Key, got)
		if i == 0 {
			canonical = got
		}
	}
	fmt.Fprintf(w, "Test Passed: Hash: %d\n", canonical)
	return nil
}

// Bench hashes n generated keys with method and returns their latency.
func Bench(n int, method string) (*tachymeter.Metrics, error) {
	if n <= 0 {
		return nil, errors.WithStack(ErrConfBench)
	}
	hash, err := hashkit.Lookup(method)
	if err != nil {
		return nil, err
	}
	keys := make([][]byte, n)
	for i := range keys {
		keys[i] = []byte(randomdata.SillyName() + strconv.Itoa(i))
	}

	t := tachymeter.New(&tachymeter.Config{Size: n})
	var start time.Time
	for _, key := range keys {
		start = time.Now()
		_ = hash(key)
		t.AddTime(time.Since(start))
	}
	m := t.Calc()
	log.Infof("bench %s keys:%d cumulative:%s min:%s max:%s", method, n, m.Time.Cumulative, m.Time.Min, m.Time.Max)
	return m, nil
}

// Ring builds the ketama ring described by c.
func Ring(c *Config) (*hashkit.HashRing, error) {
	ring, err := hashkit.NewRing(c.Method)
	if err != nil {
		return nil, err
	}
	if err = ring.Init(c.Ring.Nodes, c.Ring.Spots); err != nil {
		return nil, err
	}
	return ring, nil
}
