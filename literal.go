package pegx

import "fmt"

// literalPattern matches a fixed rune sequence literally, working over
// the recovering engine's rune-indexed InputBuffer instead of a byte
// string.
type literalPattern struct {
	runes []rune
}

// Lit matches text literally, rune by rune.
func Lit(text string) Pattern {
	rs := []rune(text)
	if len(rs) == 0 {
		return Empty()
	}
	return &literalPattern{runes: rs}
}

func (pat *literalPattern) match(e *Engine, ctx *MatcherContext) bool {
	for i, want := range pat.runes {
		if e.Buffer.CharAt(ctx.Current+i) != want {
			return false
		}
	}
	ctx.Current += len(pat.runes)
	return true
}

func (pat *literalPattern) String() string {
	return fmt.Sprintf("%q", string(pat.runes))
}

// IsSingleCharMatcher reports true for literals of length one, the
// entry point for the GetStarterChar visitor.
func (pat *literalPattern) isSingleChar() bool {
	return len(pat.runes) == 1
}

func (pat *literalPattern) starterChar() (rune, bool) {
	if len(pat.runes) != 1 {
		return 0, false
	}
	return pat.runes[0], true
}
