package pegx

import "github.com/coregx/ahocorasick"

// FollowSet is the compiled form of FollowMatchers(ctx): a set of
// single-character starter tests plus, for any multi-rune literal
// follow matchers, one Aho-Corasick automaton over all of them. A resync
// scan ("advance until a character that could start some follow
// matcher") still probes position by position; at each position the
// automaton tests every literal at once against the text starting
// there.
type FollowSet struct {
	singles   []Pattern // IsSingleCharMatcher matchers, tested rune-by-rune
	automaton *ahocorasick.Automaton
}

// BuildFollowSet compiles the matchers FollowMatchers(ctx) returned.
func BuildFollowSet(matchers []Pattern) *FollowSet {
	fs := &FollowSet{}
	var literals [][]byte
	for _, m := range matchers {
		lit, ok := followLiteral(m)
		switch {
		case ok && len([]rune(lit)) > 1:
			literals = append(literals, []byte(lit))
		case IsSingleCharMatcher(m):
			fs.singles = append(fs.singles, m)
		default:
			fs.singles = append(fs.singles, m)
		}
	}
	if len(literals) > 0 {
		builder := ahocorasick.NewBuilder()
		for _, lit := range literals {
			builder.AddPattern(lit)
		}
		if auto, err := builder.Build(); err == nil {
			fs.automaton = auto
		}
	}
	return fs
}

func followLiteral(m Pattern) (string, bool) {
	switch p := m.(type) {
	case *literalPattern:
		return string(p.runes), true
	case *namedPattern:
		return followLiteral(p.Pattern)
	default:
		return "", false
	}
}

// MatchesAt reports whether the buffer at logical index i could begin
// one of the follow set's matchers.
func (fs *FollowSet) MatchesAt(buf *InputBuffer, i int) bool {
	r := buf.CharAt(i)
	if r == EOI {
		return false
	}
	for _, m := range fs.singles {
		if IsStarterChar(m, r) {
			return true
		}
	}
	if fs.automaton == nil {
		return false
	}
	window := []byte(buf.Extract(i, i+maxLiteralRunahead))
	if len(window) == 0 {
		return false
	}
	return fs.automaton.IsMatch(window) && matchesAtOffsetZero(fs.automaton, window)
}

// maxLiteralRunahead bounds how much text MatchesAt extracts per probe;
// it only needs to cover the longest literal follow matcher.
const maxLiteralRunahead = 64

func matchesAtOffsetZero(auto *ahocorasick.Automaton, window []byte) bool {
	m := auto.Find(window, 0)
	return m != nil && m.Start == 0
}

// ScanForward advances from `from` through buf, returning the first
// logical index at or after `from` that is EOI or satisfies fs -- the
// scan a resync repair performs to find where to resume matching.
func (fs *FollowSet) ScanForward(buf *InputBuffer, from int) int {
	i := from
	for {
		if buf.CharAt(i) == EOI {
			return i
		}
		if fs.MatchesAt(buf, i) {
			return i
		}
		i++
	}
}
