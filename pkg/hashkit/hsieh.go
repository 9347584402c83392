package hashkit

import "encoding/binary"

// hashHsieh is Paul Hsieh's SuperFastHash with a zero initial value.
func hashHsieh(key []byte) uint32 {
	if len(key) == 0 {
		return 0
	}
	le16 := func(b []byte) uint32 { return uint32(binary.LittleEndian.Uint16(b)) }

	var hash uint32
	for ; len(key) >= 4; key = key[4:] {
		hash += le16(key)
		hash = (hash << 16) ^ (le16(key[2:]) << 11) ^ hash
		hash += hash >> 11
	}

	switch len(key) {
	case 3:
		hash += le16(key)
		hash ^= hash << 16
		hash ^= uint32(key[2]) << 18
		hash += hash >> 11
	case 2:
		hash += le16(key)
		hash ^= hash << 11
		hash += hash >> 17
	case 1:
		hash += uint32(key[0])
		hash ^= hash << 10
		hash += hash >> 1
	}

	// avalanche the last 127 bits
	hash ^= hash << 3
	hash += hash >> 5
	hash ^= hash << 4
	hash += hash >> 17
	hash ^= hash << 25
	hash += hash >> 6
	return hash
}
