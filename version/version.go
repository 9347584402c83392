package version

import (
	"fmt"
)

// Define oaat version consts
const (
	OaatMajor = 1
	OaatMinor = 0
	OaatPatch = 0
)

var vstr = fmt.Sprintf("%d.%d.%d", OaatMajor, OaatMinor, OaatPatch)

// String returns the version as major.minor.patch.
func String() string {
	return vstr
}
