package pegx

import "fmt"

// ActionFunc runs once child has matched, given the matched text and a
// snapshot of everything pushed onto the stack while child ran. Its
// result, if any, is pushed back onto the stack -- an accumulate-then-
// reduce shape, minus any separate non-terminal/terminal capture trees.
type ActionFunc func(text string, popped []interface{}) (interface{}, error)

// actionPattern captures the matched span of child and runs fn over it,
// pushing the outcome back onto the shared value stack: a trigger and a
// grouping combined into one value-producing step.
type actionPattern struct {
	child Pattern
	fn    ActionFunc
}

// Action runs fn with the text matched by child and whatever values fn's
// siblings pushed while child ran, pushing fn's result onto the stack.
func Action(child Pattern, fn ActionFunc) Pattern {
	return &actionPattern{child: child, fn: fn}
}

func (pat *actionPattern) match(e *Engine, ctx *MatcherContext) bool {
	mark := ctx.Stack.Len()
	childCtx := ctx.Child(pat.child)
	if !e.Invoke(pat.child, childCtx) {
		return false
	}
	ctx.Current = childCtx.Current

	popped := make([]interface{}, 0, ctx.Stack.Len()-mark)
	for ctx.Stack.Len() > mark {
		v, _ := ctx.Stack.Pop()
		popped = append(popped, v)
	}
	// restore original (bottom-to-top) order
	for i, j := 0, len(popped)-1; i < j; i, j = i+1, j-1 {
		popped[i], popped[j] = popped[j], popped[i]
	}

	text := e.Buffer.Extract(ctx.Start, ctx.Current)
	v, err := pat.fn(text, popped)
	if err != nil {
		panic(&InvariantViolation{Reason: fmt.Sprintf("action failed: %v", err)})
	}
	if v != nil {
		ctx.Stack.Push(v)
	}
	return true
}

func (pat *actionPattern) String() string {
	return fmt.Sprintf("%s{action}", pat.child)
}

// Push unconditionally pushes v, consuming no input -- useful for
// seeding literal values ahead of a following Action.
func Push(v interface{}) Pattern {
	return &pushPattern{v: v}
}

type pushPattern struct{ v interface{} }

func (pat *pushPattern) match(e *Engine, ctx *MatcherContext) bool {
	ctx.Stack.Push(pat.v)
	return true
}

func (pat *pushPattern) String() string { return "push" }
