package pegx

import "github.com/google/uuid"

// ParseResult is the outcome of a Runner.Run call. Matched is always
// true for a completed recovering run -- every InvalidInputError it
// carries has already been overcome by a repair, never a reason the
// caller needs to reject the input.
type ParseResult struct {
	RunID   uuid.UUID
	Matched bool
	Length  int

	RootContext *MatcherContext
	Stack       *ValueStack
	Errors      []*InvalidInputError

	Buffer *InputBuffer
}

// Value returns the top of the final value stack, if any, the
// convenience accessor most grammars that push exactly one result use.
func (r *ParseResult) Value() (interface{}, bool) {
	if r.Stack == nil {
		return nil, false
	}
	values := r.Stack.Values()
	if len(values) == 0 {
		return nil, false
	}
	return values[len(values)-1], true
}
