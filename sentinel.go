package pegx

// Sentinel runes are private-use code points spliced into the input
// buffer by the recovering runner. They never occur in user text, and
// the matcher engine itself never special-cases them -- only the
// recovery handler (handler.go) interprets them.
//
// There are seven reserved markers in total (EOI plus six edit/resync
// markers); see DESIGN.md's "sentinel count" entry for why all seven
// stay distinct rather than collapsing some together.
const (
	// EOI is returned by InputBuffer.CharAt for any out-of-range index.
	// It is never actually stored in the buffer.
	EOI rune = '' + iota

	// DelError marks a position where the repair loop is trying (or has
	// committed) deleting the character immediately following the marker.
	DelError

	// InsError marks a position where the repair loop is trying (or has
	// committed) a synthetic character standing in for a missing one.
	InsError

	// Resync marks the first encounter of a gobble region, before the
	// follow set has been computed.
	Resync

	// ResyncStart replaces Resync once the follow set has been located,
	// so that later passes over the same buffer recognize the region.
	ResyncStart

	// ResyncEnd closes a gobble region opened by ResyncStart.
	ResyncEnd

	// ResyncEOI marks a gobble region that runs to end of input.
	ResyncEOI
)

// IsSentinel reports whether r is one of the reserved marker runes.
func IsSentinel(r rune) bool {
	switch r {
	case EOI, DelError, InsError, Resync, ResyncStart, ResyncEnd, ResyncEOI:
		return true
	default:
		return false
	}
}
