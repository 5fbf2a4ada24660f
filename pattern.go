package pegx

import "fmt"

// Pattern is the matcher interface every grammar node implements,
// expressed as a direct recursive descent rather than a CPS trampoline.
//
// match advances ctx.Current on success. On failure callers ignore
// ctx.Current; a failing Sequence leaves it at the start of the child
// that failed, which the recovery handler reads. match never itself
// interprets sentinel runes -- that is strictly the Engine's
// MatchHandler's job.
type Pattern interface {
	match(e *Engine, ctx *MatcherContext) bool
	fmt.Stringer
}

// namedPattern lets a grammar author attach a display name to any
// pattern, so grammar dumps and error paths read naturally.
type namedPattern struct {
	Pattern
	name string
}

// Named wraps p so it prints as name in error paths and grammar dumps,
// without changing its matching behavior.
func Named(name string, p Pattern) Pattern {
	return &namedPattern{Pattern: p, name: name}
}

func (n *namedPattern) String() string { return n.name }

func (n *namedPattern) match(e *Engine, ctx *MatcherContext) bool {
	return n.Pattern.match(e, ctx)
}

// lazyPattern defers to whatever Pattern its target points to at match
// time, the indirection a recursive grammar rule needs since Go has no
// forward declarations.
type lazyPattern struct {
	target *Pattern
}

// Lazy returns a placeholder that defers to *target on every match,
// letting a grammar rule refer to itself or a rule defined after it.
// Callers must assign *target before the first Runner.Run call.
func Lazy(target *Pattern) Pattern {
	return &lazyPattern{target: target}
}

func (p *lazyPattern) match(e *Engine, ctx *MatcherContext) bool {
	return e.Invoke(*p.target, ctx)
}

func (p *lazyPattern) String() string {
	if *p.target == nil {
		return "<lazy>"
	}
	return (*p.target).String()
}
