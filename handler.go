package pegx

import "time"

// runMode selects which of the three recovery-pass flavors a
// recoveryHandler is driving (a plain, non-recovering run uses
// basicHandler instead and has no runMode at all).
type runMode int

const (
	modeLocating runMode = iota
	modeReporting
	modeFinal
)

// recoveryHandler is the MatchHandler that drives error recovery: it
// intercepts every matcher invocation, interprets sentinel runes at
// single-character matchers, and drives resynchronisation at failing
// Sequences. One is built fresh per run by runner.go.
type recoveryHandler struct {
	mode runMode

	// locating-mode state
	fringeIndex   int
	lastMatchPath MatcherPath
	errorIndex    int

	// reporting-mode state
	reportAt       int
	failedMatchers []MatcherPath

	hasDeadline bool
	deadline    time.Time
}

func newLocatingHandler(deadline time.Time, hasDeadline bool) *recoveryHandler {
	return &recoveryHandler{mode: modeLocating, errorIndex: -1, hasDeadline: hasDeadline, deadline: deadline}
}

func newReportingHandler(reportAt int, deadline time.Time, hasDeadline bool) *recoveryHandler {
	return &recoveryHandler{mode: modeReporting, errorIndex: -1, reportAt: reportAt, hasDeadline: hasDeadline, deadline: deadline}
}

func newFinalHandler(deadline time.Time, hasDeadline bool) *recoveryHandler {
	return &recoveryHandler{mode: modeFinal, errorIndex: -1, hasDeadline: hasDeadline, deadline: deadline}
}

func (h *recoveryHandler) Invoke(e *Engine, m Pattern, ctx *MatcherContext) bool {
	var ok bool
	if IsSingleCharMatcher(m) {
		ok = h.invokeSingleChar(e, m, ctx)
	} else {
		ok = h.invokeCompound(e, m, ctx)
	}
	if !ok {
		h.recordFailure(ctx)
	}
	return ok
}

// invokeSingleChar handles a single-character matcher: sentinel
// interception for DEL_ERROR/INS_ERROR, rejection of RESYNC* markers,
// and fringe tracking on ordinary successful matches. DEL_ERROR recurses
// back into this method rather than running m directly, since a
// replacement splices INS_ERROR immediately after the deleted character;
// only sentinel-aware dispatch can walk that chain to the real rune.
func (h *recoveryHandler) invokeSingleChar(e *Engine, m Pattern, ctx *MatcherContext) bool {
	c := e.Buffer.CharAt(ctx.Current)
	switch c {
	case DelError:
		save := ctx.Current
		ctx.Current += 2
		if h.invokeSingleChar(e, m, ctx) {
			ctx.Error = true
			return true
		}
		ctx.Current = save
		return false

	case InsError:
		save := ctx.Current
		ctx.Current++
		if e.runPattern(m, ctx) {
			ctx.Error = true
			return true
		}
		ctx.Current = save
		return false

	case Resync, ResyncStart, ResyncEnd, ResyncEOI:
		return false

	default:
		ok := e.runPattern(m, ctx)
		if ok && ctx.Current > h.fringeIndex {
			h.fringeIndex = ctx.Current
			h.lastMatchPath = append(MatcherPath(nil), ctx.Path()...)
		}
		return ok
	}
}

// invokeCompound handles any non-single-character matcher: a plain
// invocation, escalating to resynchronisation when a failing Sequence
// sits on a RESYNC* marker and qualifies, or to a TimeoutError panic
// when the deadline has passed.
func (h *recoveryHandler) invokeCompound(e *Engine, m Pattern, ctx *MatcherContext) bool {
	ok := e.runPattern(m, ctx)
	if ok {
		return true
	}

	seq, isSeq := m.(*SequencePattern)
	if !isSeq {
		return false
	}

	c := e.Buffer.CharAt(ctx.Current)
	if c == Resync || c == ResyncStart || c == ResyncEOI {
		if h.qualifiesForResync(ctx) {
			return h.resync(e, seq, ctx, c)
		}
	}

	if h.hasDeadline && time.Now().After(h.deadline) {
		panic(&TimeoutError{Root: seq, Buffer: e.Buffer})
	}
	return false
}

// qualifiesForResync decides whether resync happens here: it does, at
// the outermost failing sequence that owns the failure site.
func (h *recoveryHandler) qualifiesForResync(ctx *MatcherContext) bool {
	matchedSome := ctx.Current > ctx.Start
	if matchedSome && isPathPrefix(ctx.Path(), h.lastMatchPath) {
		return true
	}
	return !ctx.HasSequenceAncestor()
}

func isPathPrefix(prefix, path MatcherPath) bool {
	if len(prefix) > len(path) {
		return false
	}
	for i := range prefix {
		if prefix[i].Matcher != path[i].Matcher || prefix[i].EnterIndex != path[i].EnterIndex {
			return false
		}
	}
	return true
}

// resync replays for side effects, then gobbles the illegal region
// according to which marker was encountered.
func (h *recoveryHandler) resync(e *Engine, seq *SequencePattern, ctx *MatcherContext, marker rune) bool {
	ctx.Error = true
	// FollowMatchers reads ctx.Tag as ctx's position in its parent, so the
	// followers are taken before replay sets the tag.
	followers := FollowMatchers(ctx)
	h.replayForSideEffects(e, seq, ctx)

	switch marker {
	case Resync:
		markerPos := ctx.Current
		ctx.Current++
		follow := BuildFollowSet(followers)
		endIndex := follow.ScanForward(e.Buffer, ctx.Current)
		e.Buffer.ReplaceInserted(markerPos, ResyncStart)
		e.Buffer.Insert(endIndex, ResyncEnd)
		ctx.Current = endIndex + 1

	case ResyncStart:
		i := ctx.Current + 1
		for {
			c := e.Buffer.CharAt(i)
			if c == EOI {
				panic(&InvariantViolation{Reason: "resync: RESYNC_END not found before EOI"})
			}
			if c == ResyncEnd {
				break
			}
			i++
		}
		ctx.Current = i + 1

	case ResyncEOI:
		ctx.Current++
	}
	return true
}

// replayForSideEffects rewinds to start_index, re-runs children before
// the failure point normally, replaces the failing child with Empty,
// and replays the minimal actions of every child after it so the value
// stack stays consistent.
func (h *recoveryHandler) replayForSideEffects(e *Engine, seq *SequencePattern, ctx *MatcherContext) {
	saved := ctx.Current
	ctx.Current = ctx.Start

	for i, child := range seq.children {
		switch {
		case i < ctx.failIndex:
			childCtx := ctx.Child(child)
			childCtx.Tag = i
			if !e.Invoke(child, childCtx) {
				panic(&InvariantViolation{Reason: "resync replay: child before failure point no longer matches"})
			}
			ctx.Current = childCtx.Current

		case i == ctx.failIndex:
			ctx.Tag = 1

		default:
			acts, ok := CollectResyncActions(child)
			if !ok || acts == nil {
				continue
			}
			for _, act := range acts {
				childCtx := ctx.Child(act)
				childCtx.InRecovery = true
				e.runPattern(act, childCtx)
			}
		}
	}

	ctx.Current = saved
}

// recordFailure implements locating mode's "rightmost failed
// start_index" bookkeeping and reporting mode's failed-matcher-path
// collection at the known error_index.
func (h *recoveryHandler) recordFailure(ctx *MatcherContext) {
	switch h.mode {
	case modeLocating:
		if ctx.Start > h.errorIndex {
			h.errorIndex = ctx.Start
		}
	case modeReporting:
		if ctx.Start == h.reportAt {
			h.failedMatchers = append(h.failedMatchers, append(MatcherPath(nil), ctx.Path()...))
		}
	}
}
