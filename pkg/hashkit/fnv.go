package hashkit

import "github.com/jamiealquiza/fnv"

func hashFnv1a32(key []byte) uint32 {
	return fnv.Hash32a(string(key))
}

func hashFnv132(key []byte) uint32 {
	return fnv.Hash32(string(key))
}

// 64 bit variants keep the low word, as twemproxy does.
func hashFnv1a64(key []byte) uint32 {
	return uint32(fnv.Hash64a(string(key)))
}

func hashFnv164(key []byte) uint32 {
	return uint32(fnv.Hash64(string(key)))
}
