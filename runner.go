package pegx

import (
	"time"

	"github.com/google/uuid"
)

// Runner drives the error-recovering parse over a fixed grammar:
// repeated locating/reporting/repair passes until every input error has
// been overcome, followed by a final run that produces the
// user-visible ParseResult.
type Runner struct {
	Root   Pattern
	Config RunnerConfig

	listeners []Listener
}

// NewRunner builds a Runner for root, applying any RunnerOptions.
func NewRunner(root Pattern, opts ...RunnerOption) *Runner {
	if root == nil {
		panic(errorNilMainPattern)
	}
	return &Runner{Root: root, Config: newRunnerConfig(opts)}
}

// RegisterListener subscribes l to every run this Runner performs.
func (r *Runner) RegisterListener(l Listener) {
	r.listeners = append(r.listeners, l)
}

// Run parses text, applying recovery as needed, and returns the result.
func (r *Runner) Run(text string) (*ParseResult, error) {
	return r.RunBuffer(NewInputBuffer(text))
}

// RunBuffer parses an already-built InputBuffer. Accepting the buffer
// directly lets a caller inspect the final, possibly-repaired text.
func (r *Runner) RunBuffer(buf *InputBuffer) (result *ParseResult, err error) {
	e := &Engine{Buffer: buf, Config: r.Config.Engine, listeners: r.listeners}

	defer func() {
		if rec := recover(); rec != nil {
			if te, ok := rec.(*TimeoutError); ok {
				te.Root = r.Root
				te.Last = result
				err = te
				result = nil
				return
			}
			panic(rec)
		}
	}()

	e.Handler = basicHandler{}
	e.notifyPreParse()
	if lerr := e.takeListenerError(); lerr != nil {
		return nil, lerr
	}

	deadline, hasDeadline := r.deadline()

	if ok, ctx := e.Match(r.Root); ok {
		result = r.buildResult(e, ctx, nil)
		e.notifyPostParse(result)
		if lerr := e.takeListenerError(); lerr != nil {
			return nil, lerr
		}
		return result, nil
	}

	var errs []*InvalidInputError
	errorIndex := r.locate(e, deadline, hasDeadline)
	maxErrors := r.Config.Engine.MaxErrors
	for errorIndex >= 0 {
		if len(errs)+1 > maxErrors {
			panic(&TimeoutError{Root: r.Root, Buffer: buf})
		}

		cur := &InvalidInputError{
			StartIndex:     errorIndex,
			EndIndex:       errorIndex,
			FailedMatchers: r.report(e, errorIndex, deadline, hasDeadline),
			Buffer:         buf,
		}
		errs = append(errs, cur)

		errorIndex = r.fix(e, cur, errorIndex, deadline, hasDeadline)
	}

	e.Handler = newFinalHandler(deadline, hasDeadline)
	ok, ctx := e.Match(r.Root)
	if !ok {
		panic(&InvariantViolation{Reason: "final run did not match after repairs"})
	}

	result = r.buildResult(e, ctx, errs)
	e.notifyPostParse(result)
	if lerr := e.takeListenerError(); lerr != nil {
		return nil, lerr
	}
	return result, nil
}

func (r *Runner) buildResult(e *Engine, ctx *MatcherContext, errs []*InvalidInputError) *ParseResult {
	return &ParseResult{
		RunID:       uuid.New(),
		Matched:     true,
		Length:      ctx.Current,
		RootContext: ctx,
		Stack:       ctx.Stack,
		Errors:      errs,
		Buffer:      e.Buffer,
	}
}

func (r *Runner) deadline() (time.Time, bool) {
	if r.Config.Timeout <= 0 {
		return time.Time{}, false
	}
	return time.Now().Add(r.Config.Timeout), true
}

// locate runs a locating pass and returns the rightmost failed
// start_index, or -1 if the grammar now matches cleanly.
func (r *Runner) locate(e *Engine, deadline time.Time, hasDeadline bool) int {
	h := newLocatingHandler(deadline, hasDeadline)
	e.Handler = h
	ok, _ := e.Match(r.Root)
	if ok {
		return -1
	}
	return h.errorIndex
}

// report runs a reporting pass at the known error index and returns
// every matcher path that failed there.
func (r *Runner) report(e *Engine, errorIndex int, deadline time.Time, hasDeadline bool) []MatcherPath {
	h := newReportingHandler(errorIndex, deadline, hasDeadline)
	e.Handler = h
	e.Match(r.Root)
	return h.failedMatchers
}

// fix implements a single fix(error_index) iteration: try deletion,
// then best insertion, then best replacement, commit whichever pushes
// the error furthest right, or fall back to resynchronisation. It
// returns the error_index to continue the loop with, or -1 once the
// grammar is fully error-free.
func (r *Runner) fix(e *Engine, cur *InvalidInputError, errorIndex int, deadline time.Time, hasDeadline bool) int {
	buf := e.Buffer

	// 1. single-character deletion
	buf.Insert(errorIndex, DelError)
	if idx := r.locate(e, deadline, hasDeadline); idx == -1 {
		cur.shiftIndexDeltaBy(1)
		return -1
	} else {
		buf.UndoInsert(errorIndex)
		nextAfterDel := idx

		// 2. best single-character insertion
		candidates := starterCandidates(cur.FailedMatchers)
		nextAfterIns, bestIns, insOK := r.bestSingleCharEdit(e, candidates, deadline, hasDeadline,
			func(c rune) { insertInsertion(buf, errorIndex, c) },
			func() { buf.UndoInsert(errorIndex); buf.UndoInsert(errorIndex) },
		)
		if insOK && nextAfterIns == -1 {
			insertInsertion(buf, errorIndex, bestIns)
			cur.shiftIndexDeltaBy(2)
			return -1
		}

		// 3. best single-character replacement
		buf.Insert(errorIndex, DelError)
		nextAfterRep, bestRep, repOK := r.bestSingleCharEdit(e, candidates, deadline, hasDeadline,
			func(c rune) { insertInsertion(buf, errorIndex+2, c) },
			func() { buf.UndoInsert(errorIndex + 2); buf.UndoInsert(errorIndex + 2) },
		)
		if repOK && nextAfterRep == -1 {
			insertInsertion(buf, errorIndex+2, bestRep)
			cur.shiftIndexDeltaBy(1)
			return -1
		}
		buf.UndoInsert(errorIndex) // undo the trial DEL_ERROR from replacement probing

		// 4. choose the best single-character fix
		best, kind := chooseBest(errorIndex, nextAfterDel, nextAfterIns, insOK, nextAfterRep, repOK)
		if best > errorIndex {
			switch kind {
			case fixDeletion:
				buf.Insert(errorIndex, DelError)
				cur.shiftIndexDeltaBy(1)
			case fixInsertion:
				insertInsertion(buf, errorIndex, bestIns)
				cur.shiftIndexDeltaBy(2)
			case fixReplacement:
				buf.Insert(errorIndex, DelError)
				insertInsertion(buf, errorIndex+2, bestRep)
				cur.shiftIndexDeltaBy(1)
			}
			return best
		}

		// fallback: resynchronisation
		if buf.CharAt(errorIndex) == EOI {
			buf.Insert(errorIndex, ResyncEOI)
			cur.shiftIndexDeltaBy(1)
			return -1
		}
		buf.Insert(errorIndex, Resync)
		cur.shiftIndexDeltaBy(1)
		return r.locate(e, deadline, hasDeadline)
	}
}

type fixKind int

const (
	fixDeletion fixKind = iota
	fixInsertion
	fixReplacement
)

func chooseBest(errorIndex, nextAfterDel, nextAfterIns int, insOK bool, nextAfterRep int, repOK bool) (int, fixKind) {
	best := nextAfterDel
	kind := fixDeletion
	if insOK && nextAfterIns > best {
		best = nextAfterIns
		kind = fixInsertion
	}
	if repOK && nextAfterRep > best {
		best = nextAfterRep
		kind = fixReplacement
	}
	return best, kind
}

// bestSingleCharEdit probes each candidate character by applying apply,
// running a locating pass, then undoing it, and keeps whichever
// candidate pushed the error index furthest right (early-exiting on the
// first candidate that resolves every error).
func (r *Runner) bestSingleCharEdit(
	e *Engine, candidates []rune, deadline time.Time, hasDeadline bool,
	apply func(c rune), undo func(),
) (best int, bestChar rune, ok bool) {
	best = -2
	for _, c := range candidates {
		apply(c)
		idx := r.locate(e, deadline, hasDeadline)
		undo()

		if idx == -1 {
			return -1, c, true
		}
		if idx > best {
			best = idx
			bestChar = c
			ok = true
		}
	}
	return best, bestChar, ok
}

// insertInsertion splices [INS_ERROR, c] at i, inserting right to left
// so the buffer ends up holding them in that visual order.
func insertInsertion(buf *InputBuffer, i int, c rune) {
	buf.Insert(i, c)
	buf.Insert(i, InsError)
}

// starterCandidates derives the distinct single-character starters of
// every failed matcher path's leaf, skipping non-singleton leaves: a
// candidate must yield a single character, and EOI is never a valid
// candidate.
func starterCandidates(paths []MatcherPath) []rune {
	seen := make(map[rune]bool)
	var out []rune
	for _, path := range paths {
		if len(path) == 0 {
			continue
		}
		leaf := path[len(path)-1].Matcher
		if !IsSingleCharMatcher(leaf) {
			continue
		}
		c, err := GetStarterChar(leaf)
		if err != nil || c == EOI || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
