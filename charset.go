package pegx

import (
	"fmt"
	"sort"
	"strings"
)

// charMembership abstracts "is r in this set", letting charset.go stay
// agnostic to which of charset_amd64.go / charset_fallback.go built it.
// The recovery visitors keep the set of matcher kinds closed; this
// keeps the set representation open instead.
type charMembership interface {
	has(r rune) bool
}

// anyCharPattern matches any single rune, a Dot-equivalent matcher.
type anyCharPattern struct{}

// Any matches any single rune, including none left only at EOI.
func Any() Pattern { return anyCharPattern{} }

func (anyCharPattern) match(e *Engine, ctx *MatcherContext) bool {
	if e.Buffer.CharAt(ctx.Current) == EOI {
		return false
	}
	ctx.Current++
	return true
}

func (anyCharPattern) String() string { return "." }

// charSetPattern matches (or, negated, excludes) a rune belonging to an
// explicit set, built via newCharMembership (charset_amd64.go /
// charset_fallback.go).
type charSetPattern struct {
	not     bool
	literal string
	set     charMembership
}

// AnyOf matches a rune in the given set.
func AnyOf(chars string) Pattern {
	return &charSetPattern{literal: chars, set: newCharMembership(chars)}
}

// NoneOf matches a rune not in the given set (and not EOI).
func NoneOf(chars string) Pattern {
	return &charSetPattern{not: true, literal: chars, set: newCharMembership(chars)}
}

func (pat *charSetPattern) match(e *Engine, ctx *MatcherContext) bool {
	r := e.Buffer.CharAt(ctx.Current)
	if r == EOI {
		return false
	}
	if pat.set.has(r) != pat.not {
		ctx.Current++
		return true
	}
	return false
}

func (pat *charSetPattern) String() string {
	if pat.not {
		return fmt.Sprintf("[^%s]", pat.literal)
	}
	return fmt.Sprintf("[%s]", pat.literal)
}

func (pat *charSetPattern) isSingleChar() bool {
	return !pat.not
}

func (pat *charSetPattern) starterChar() (rune, bool) {
	rs := []rune(pat.literal)
	if pat.not || len(rs) != 1 {
		return 0, false
	}
	return rs[0], true
}

// charRangePattern matches a rune within one of a list of [low, high]
// inclusive ranges, the rune.go patternRuneRange analogue.
type charRangePattern struct {
	not    bool
	ranges []charRange
}

type charRange struct{ low, high rune }

// Range matches a rune in [low, high] (inclusive), or within any of the
// extra (low, high) pairs passed in rest.
func Range(low, high rune, rest ...rune) Pattern {
	return &charRangePattern{ranges: buildRanges(low, high, rest)}
}

// NoneInRange matches a rune outside every given [low, high] range.
func NoneInRange(low, high rune, rest ...rune) Pattern {
	return &charRangePattern{not: true, ranges: buildRanges(low, high, rest)}
}

func buildRanges(low, high rune, rest []rune) []charRange {
	ranges := make([]charRange, 1+len(rest)/2)
	ranges[0] = charRange{low, high}
	for i := 1; i < len(ranges); i++ {
		ranges[i] = charRange{rest[(i-1)*2], rest[(i-1)*2+1]}
	}
	return ranges
}

func (pat *charRangePattern) match(e *Engine, ctx *MatcherContext) bool {
	r := e.Buffer.CharAt(ctx.Current)
	if r == EOI {
		return false
	}
	if pat.has(r) {
		ctx.Current++
		return true
	}
	return false
}

func (pat *charRangePattern) has(r rune) bool {
	ok := false
	for _, rg := range pat.ranges {
		if r >= rg.low && r <= rg.high {
			ok = true
			break
		}
	}
	if pat.not {
		ok = !ok
	}
	return ok
}

func (pat *charRangePattern) String() string {
	strs := make([]string, len(pat.ranges))
	for i, rg := range pat.ranges {
		strs[i] = fmt.Sprintf("%q-%q", rg.low, rg.high)
	}
	if pat.not {
		return fmt.Sprintf("[^%s]", strings.Join(strs, ""))
	}
	return fmt.Sprintf("[%s]", strings.Join(strs, ""))
}

// sortedCharSet is the shared fallback representation: a deduplicated,
// sorted rune slice searched with sort.Search.
type sortedCharSet struct {
	runes []rune
}

func newSortedCharSet(chars string) *sortedCharSet {
	rs := []rune(chars)
	sort.Slice(rs, func(i, j int) bool { return rs[i] < rs[j] })
	out := rs[:0]
	var last rune = -1
	first := true
	for _, r := range rs {
		if first || r != last {
			out = append(out, r)
			last = r
			first = false
		}
	}
	return &sortedCharSet{runes: out}
}

func (s *sortedCharSet) has(r rune) bool {
	i := sort.Search(len(s.runes), func(i int) bool { return s.runes[i] >= r })
	return i < len(s.runes) && s.runes[i] == r
}
