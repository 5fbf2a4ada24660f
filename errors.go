package pegx

import (
	"fmt"
)

// pegError is a plain, named, fatal programmer error that never
// participates in recovery.
type pegError struct {
	value string
}

func errorf(format string, v ...interface{}) error {
	return &pegError{fmt.Sprintf(format, v...)}
}

func (err *pegError) Error() string {
	return "pegx: " + err.value
}

var (
	errorNilMainPattern      = errorf("the main pattern is nil")
	errorExecuteWhenConsumed = errorf("unable to descend into a matcher once text is already consumed")
	errorUndefinedStarter    = func(pat fmt.Stringer) error {
		return errorf("GetStarterChar has no singleton starter for %s", pat)
	}
)

// MatcherPath is the ordered chain of (matcher, enterIndex) pairs from
// the root down to a leaf, identifying which grammar position failed.
type MatcherPath []PathEntry

// PathEntry is one link of a MatcherPath.
type PathEntry struct {
	Matcher    Pattern
	EnterIndex int
}

func (p MatcherPath) String() string {
	s := ""
	for i, e := range p {
		if i > 0 {
			s += " > "
		}
		s += fmt.Sprintf("%s@%d", e.Matcher, e.EnterIndex)
	}
	return s
}

// InvalidInputError is a parse-level error at a specific, possibly
// repaired, position. It is always non-fatal under the recovering
// Runner -- every InvalidInputError the runner produces has already been
// overcome by the time it reaches the caller.
type InvalidInputError struct {
	StartIndex     int
	EndIndex       int
	FailedMatchers []MatcherPath
	Buffer         *InputBuffer

	delta int // internal bookkeeping, see shiftIndexDeltaBy
}

func (e *InvalidInputError) Error() string {
	if e.StartIndex == e.EndIndex {
		return fmt.Sprintf("pegx: invalid input at %d", e.StartIndex)
	}
	return fmt.Sprintf("pegx: invalid input in [%d, %d]", e.StartIndex, e.EndIndex)
}

// shiftIndexDeltaBy accumulates the post-edit index shift from a
// deletion or insertion, and applies it to the error's recorded indices
// so they stay in logical-index agreement across repair passes.
func (e *InvalidInputError) shiftIndexDeltaBy(n int) {
	e.delta += n
	e.StartIndex += n
	if e.EndIndex >= e.StartIndex-n {
		e.EndIndex += n
	}
}

// TimeoutError is fatal: it terminates the parse, carrying the root
// matcher and the buffer as last seen. Last holds the runner's result at
// the moment of the timeout; a timeout always fires before the final
// result is built, so Last is nil.
type TimeoutError struct {
	Root   Pattern
	Buffer *InputBuffer
	Last   *ParseResult
}

func (e *TimeoutError) Error() string {
	return "pegx: recovery timed out before all errors were overcome"
}

// InvariantViolation signals an engine or buffer invariant broken --
// always a bug in this core or its caller, never in the grammar or the
// input.
type InvariantViolation struct {
	Reason string
}

func (e *InvariantViolation) Error() string {
	return "pegx: invariant violation: " + e.Reason
}

// InvalidGrammarError surfaces a grammar construction defect discovered
// during matcher visitation, e.g. GetStarterChar called on a matcher
// with no singleton starter.
type InvalidGrammarError struct {
	Reason string
}

func (e *InvalidGrammarError) Error() string {
	return "pegx: invalid grammar: " + e.Reason
}

// ListenerError wraps a panic recovered from a Listener callback. It is
// captured at the point of the callback and returned by the Runner at
// the pre-parse or post-parse boundary; one captured during matching
// (PreMatch/MatchSuccess/MatchFailure) does not stop the parse and is
// returned at post-parse.
type ListenerError struct {
	Phase string
	Cause error
}

func (e *ListenerError) Error() string {
	return fmt.Sprintf("pegx: listener failed during %s: %v", e.Phase, e.Cause)
}

func (e *ListenerError) Unwrap() error { return e.Cause }
