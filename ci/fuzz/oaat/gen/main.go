package main

import (
	"bytes"

	"github.com/dvyukov/go-fuzz/gen"
)

var zdata = [][]byte{
	[]byte("The quick brown fox jumps over the lazy dog"),
	[]byte("Hello, World!"),
	[]byte("abc\x00def"),
	bytes.Repeat([]byte{0xff}, 1000),
	{},
}

func main() {
	for _, data := range zdata {
		gen.Emit(data, nil, true)
	}
}
