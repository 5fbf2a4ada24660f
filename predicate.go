package pegx

import "fmt"

// booleanPattern always returns a fixed verdict, consuming no text
// (predicating.go's patternBoolean).
type booleanPattern struct{ ok bool }

// Empty always matches, consuming no text.
func Empty() Pattern { return &booleanPattern{ok: true} }

// Nothing never matches.
func Nothing() Pattern { return &booleanPattern{ok: false} }

func (pat *booleanPattern) match(e *Engine, ctx *MatcherContext) bool { return pat.ok }

func (pat *booleanPattern) String() string {
	if pat.ok {
		return "true"
	}
	return "false"
}

// eofPattern predicates end of input, consuming no text.
type eofPattern struct{}

// EndOfInput matches at end of input only, consuming nothing.
func EndOfInput() Pattern { return eofPattern{} }

func (eofPattern) match(e *Engine, ctx *MatcherContext) bool {
	return e.Buffer.CharAt(ctx.Current) == EOI
}

func (eofPattern) String() string { return "eof?" }

// lookaheadPattern predicates whether child matches, consuming no text
// either way (predicating.go's patternPredicate: Test/Not).
type lookaheadPattern struct {
	not   bool
	child Pattern
}

// Test succeeds iff child matches, without consuming any input.
func Test(child Pattern) Pattern { return &lookaheadPattern{child: child} }

// TestNot succeeds iff child fails to match, without consuming input.
func TestNot(child Pattern) Pattern { return &lookaheadPattern{not: true, child: child} }

func (pat *lookaheadPattern) match(e *Engine, ctx *MatcherContext) bool {
	childCtx := ctx.Child(pat.child)
	childCtx.InRecovery = false // lookahead never participates in repair
	ok := e.runPattern(pat.child, childCtx)
	if pat.not {
		ok = !ok
	}
	return ok
}

func (pat *lookaheadPattern) String() string {
	if pat.not {
		return fmt.Sprintf("!%s", pat.child)
	}
	return fmt.Sprintf("&%s", pat.child)
}
