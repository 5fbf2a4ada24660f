//go:build !amd64

package pegx

// newCharMembership falls back to the portable sorted-slice binary
// search on non-amd64 targets, where charset_amd64.go's bitmap trick
// isn't wired up.
func newCharMembership(chars string) charMembership {
	return newSortedCharSet(chars)
}
