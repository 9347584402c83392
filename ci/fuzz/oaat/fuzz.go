package oaat

import (
	"oaat/pkg/hashkit"
)

// reference computes in 64 bits, masking every step to 32.
func reference(key []byte) uint32 {
	const mask = 0xffffffff
	var hash uint64
	for _, c := range key {
		hash = (hash + uint64(c)) & mask
		hash = (hash + (hash << 10)) & mask
		hash ^= hash >> 6
	}
	hash = (hash + (hash << 3)) & mask
	hash ^= hash >> 11
	hash = (hash + (hash << 15)) & mask
	return uint32(hash)
}

func Fuzz(data []byte) int {
	got := hashkit.OneAtATime(data)
	if got != reference(data) {
		panic("one at a time differs from masked reference")
	}
	if n := len(data) / 2; hashkit.OneAtATimeN(data, n) != reference(data[:n]) {
		panic("explicit length read past its prefix")
	}
	if len(data) == 0 {
		return 0
	}
	return 1
}
