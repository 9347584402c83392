package hashkit

import (
	"sort"

	"github.com/pkg/errors"
)

// constants defines
const (
	HashMethodOneAtATime = "one_at_a_time"
	HashMethodJenkins    = "jenkins"

	HashMethodFnv1a64 = "fnv1a_64"
	HashMethodFnv1a32 = "fnv1a_32"
	HashMethodFnv164  = "fnv1_64"
	HashMethodFnv132  = "fnv1_32"

	HashMethodMD5    = "md5"
	HashMethodHsieh  = "hsieh"
	HashMethodMurmur = "murmur"
	HashMethodXXHash = "xxhash"
)

// DefaultMethod is used when no method is named.
const DefaultMethod = HashMethodOneAtATime

// ErrUnknownMethod is returned by Lookup for names not in the table.
var ErrUnknownMethod = errors.New("unknown hash method")

// Func is a 32 bit hash over a whole key.
type Func func(key []byte) uint32

var methods = map[string]Func{
	HashMethodOneAtATime: OneAtATime,
	HashMethodJenkins:    OneAtATime,

	HashMethodFnv1a64: hashFnv1a64, // fnv family
	HashMethodFnv164:  hashFnv164,
	HashMethodFnv1a32: hashFnv1a32,
	HashMethodFnv132:  hashFnv132,

	HashMethodMD5:    hashMD5, // others
	HashMethodHsieh:  hashHsieh,
	HashMethodMurmur: hashMurmur,
	HashMethodXXHash: hashXXHash,
}

// Lookup returns the hash func registered under name.
// An empty name selects DefaultMethod.
func Lookup(name string) (Func, error) {
	if name == "" {
		name = DefaultMethod
	}
	hash, ok := methods[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownMethod, "method:%s", name)
	}
	return hash, nil
}

// Methods returns all method names, sorted.
func Methods() []string {
	names := make([]string, 0, len(methods))
	for name := range methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
