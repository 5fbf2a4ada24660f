package pegx

import (
	"fmt"
	"strings"
)

// SequencePattern matches its children in order, failing as soon as one
// child fails. It is exported so the recovery handler can recognize
// "am I inside a Sequence" to decide whether a failure qualifies for
// repair at all -- only Sequence failures are eligible.
type SequencePattern struct {
	children []Pattern
}

// Seq matches every pattern in order.
func Seq(children ...Pattern) Pattern {
	if len(children) == 0 {
		return Empty()
	}
	return &SequencePattern{children: children}
}

// Children returns the sequence's own child patterns, in order.
func (pat *SequencePattern) Children() []Pattern { return pat.children }

func (pat *SequencePattern) match(e *Engine, ctx *MatcherContext) bool {
	for i, child := range pat.children {
		childCtx := ctx.Child(child)
		childCtx.Tag = i
		if !e.Invoke(child, childCtx) {
			ctx.failIndex = i
			return false
		}
		ctx.Current = childCtx.Current
	}
	return true
}

func (pat *SequencePattern) String() string {
	strs := make([]string, len(pat.children))
	for i, c := range pat.children {
		strs[i] = fmt.Sprint(c)
	}
	return fmt.Sprintf("(%s)", strings.Join(strs, " "))
}

// firstOfPattern tries each choice in order, matching on the first
// success (combining.go's patternAlternative).
type firstOfPattern struct {
	choices []Pattern
}

// FirstOf matches whichever choice succeeds first, tried in order.
func FirstOf(choices ...Pattern) Pattern {
	if len(choices) == 0 {
		return Nothing()
	}
	return &firstOfPattern{choices: choices}
}

func (pat *firstOfPattern) match(e *Engine, ctx *MatcherContext) bool {
	for i, choice := range pat.choices {
		childCtx := ctx.Child(choice)
		childCtx.Tag = i
		if e.Invoke(choice, childCtx) {
			ctx.Current = childCtx.Current
			return true
		}
	}
	return false
}

func (pat *firstOfPattern) String() string {
	strs := make([]string, len(pat.choices))
	for i, c := range pat.choices {
		strs[i] = fmt.Sprint(c)
	}
	return fmt.Sprintf("(%s)", strings.Join(strs, " / "))
}

// repeatPattern matches its child at least min times, and at most max
// times if max >= 0 (max < 0 means unbounded), greedily (combining.go's
// patternQualifierAtLeast / patternQualifierRange unified).
type repeatPattern struct {
	min, max int
	child    Pattern
}

// ZeroOrMore matches child repeated zero or more times, greedily.
func ZeroOrMore(child Pattern) Pattern { return &repeatPattern{min: 0, max: -1, child: child} }

// OneOrMore matches child repeated one or more times, greedily.
func OneOrMore(child Pattern) Pattern { return &repeatPattern{min: 1, max: -1, child: child} }

// Repeat matches child repeated between min and max times inclusive.
// A negative max means unbounded.
func Repeat(min, max int, child Pattern) Pattern {
	return &repeatPattern{min: min, max: max, child: child}
}

func (pat *repeatPattern) match(e *Engine, ctx *MatcherContext) bool {
	count := 0
	for pat.max < 0 || count < pat.max {
		childCtx := ctx.Child(pat.child)
		childCtx.Tag = count
		before := ctx.Current
		if !e.Invoke(pat.child, childCtx) {
			break
		}
		if childCtx.Current == before {
			// matched without consuming: stop to avoid looping forever.
			count++
			break
		}
		ctx.Current = childCtx.Current
		count++
	}
	return count >= pat.min
}

func (pat *repeatPattern) String() string {
	switch {
	case pat.min == 0 && pat.max < 0:
		return fmt.Sprintf("%s*", pat.child)
	case pat.min == 1 && pat.max < 0:
		return fmt.Sprintf("%s+", pat.child)
	case pat.min == pat.max:
		return fmt.Sprintf("%s{%d}", pat.child, pat.min)
	case pat.max < 0:
		return fmt.Sprintf("%s{%d,}", pat.child, pat.min)
	default:
		return fmt.Sprintf("%s{%d,%d}", pat.child, pat.min, pat.max)
	}
}

// optionalPattern matches child zero or one times, always succeeding.
type optionalPattern struct {
	child Pattern
}

// Optional matches child if possible, and succeeds either way.
func Optional(child Pattern) Pattern { return &optionalPattern{child: child} }

func (pat *optionalPattern) match(e *Engine, ctx *MatcherContext) bool {
	childCtx := ctx.Child(pat.child)
	if e.Invoke(pat.child, childCtx) {
		ctx.Current = childCtx.Current
	}
	return true
}

func (pat *optionalPattern) String() string {
	return fmt.Sprintf("%s?", pat.child)
}
