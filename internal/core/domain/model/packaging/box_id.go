package packaging

import (
	"slices"
	"strconv"
)

// Prefixes of package IDs generated on the client side.
const (
	CustomPackagePrefix     = "client_custom_"
	IndividualPackagePrefix = "client_individual_"
)

// GenerateUniqueBoxID returns prefix followed by the smallest non-negative
// integer such that the result is not in existing.
//
// Only the suffixes 0..len(existing) are tried: among len(existing)+1
// candidates at most len(existing) can collide, so one is always free.
//
// Example:
//
//	packaging.GenerateUniqueBoxID("client_custom_", nil)                          // "client_custom_0"
//	packaging.GenerateUniqueBoxID("client_custom_", []string{"client_custom_0"}) // "client_custom_1"
func GenerateUniqueBoxID(prefix string, existing []string) string {
	for i := 0; i <= len(existing); i++ {
		candidate := prefix + strconv.Itoa(i)
		if !slices.Contains(existing, candidate) {
			return candidate
		}
	}
	// unreachable, see above
	return prefix + strconv.Itoa(len(existing))
}
