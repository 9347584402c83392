package hashkit

// OneAtATime returns the Jenkins one-at-a-time hash of key.
func OneAtATime(key []byte) uint32 {
	var hash uint32
	for _, c := range key {
		hash += uint32(c)
		hash += hash << 10
		hash ^= hash >> 6
	}

	hash += hash << 3
	hash ^= hash >> 11
	hash += hash << 15
	return hash
}

// OneAtATimeN hashes the first n bytes of key. Bytes past n are never read.
// n must be within [0, len(key)], the slice bounds check is the only guard.
func OneAtATimeN(key []byte, n int) uint32 {
	return OneAtATime(key[:n])
}
