package hashkit

import (
	"crypto/md5"

	"github.com/cespare/xxhash/v2"
)

func hashMD5(key []byte) uint32 {
	results := md5.Sum(key)
	return (uint32(results[3]) << 24) |
		(uint32(results[2]) << 16) |
		(uint32(results[1]) << 8) |
		uint32(results[0])
}

func hashXXHash(key []byte) uint32 {
	return uint32(xxhash.Sum64(key))
}
