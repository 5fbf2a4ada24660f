package pegx

// Listener receives synchronous tracing callbacks from a running parse.
// All five callbacks run on the parsing goroutine, in-line with
// matching itself.
type Listener interface {
	PreParse(e *Engine)
	PreMatch(ctx *MatcherContext)
	MatchSuccess(ctx *MatcherContext)
	MatchFailure(ctx *MatcherContext)
	PostParse(e *Engine, result *ParseResult)
}

// BaseListener gives every callback a no-op default so a Listener
// implementation only has to override what it cares about.
type BaseListener struct{}

func (BaseListener) PreParse(e *Engine)                        {}
func (BaseListener) PreMatch(ctx *MatcherContext)               {}
func (BaseListener) MatchSuccess(ctx *MatcherContext)           {}
func (BaseListener) MatchFailure(ctx *MatcherContext)           {}
func (BaseListener) PostParse(e *Engine, result *ParseResult)   {}

// RegisterListener subscribes l to every event the engine emits.
func (e *Engine) RegisterListener(l Listener) {
	e.listeners = append(e.listeners, l)
}

// notifyPreParse, notifyPreMatch, etc. dispatch synchronously and
// capture a panicking listener as a ListenerError rather than letting
// it unwind into grammar code; the error is rethrown at the next
// synchronous boundary via takeListenerError.
func (e *Engine) notifyPreParse() {
	e.dispatch("pre-parse", func(l Listener) { l.PreParse(e) })
}

func (e *Engine) notifyPreMatch(ctx *MatcherContext) {
	e.dispatch("pre-match", func(l Listener) { l.PreMatch(ctx) })
}

func (e *Engine) notifyMatchSuccess(ctx *MatcherContext) {
	e.dispatch("post-match", func(l Listener) { l.MatchSuccess(ctx) })
}

func (e *Engine) notifyMatchFailure(ctx *MatcherContext) {
	e.dispatch("post-match", func(l Listener) { l.MatchFailure(ctx) })
}

func (e *Engine) notifyPostParse(result *ParseResult) {
	e.dispatch("post-parse", func(l Listener) { l.PostParse(e, result) })
}

func (e *Engine) dispatch(phase string, call func(Listener)) {
	if e.listenerErr != nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			cause, ok := r.(error)
			if !ok {
				cause = errorf("%v", r)
			}
			e.listenerErr = &ListenerError{Phase: phase, Cause: cause}
		}
	}()
	for _, l := range e.listeners {
		call(l)
	}
}

// takeListenerError returns and clears any captured ListenerError. The
// runner calls this after pre-parse and after post-parse, so a listener
// panic surfaces as a regular fatal error instead of silently vanishing;
// a panic during matching is held (with no further dispatch) until the
// post-parse call.
func (e *Engine) takeListenerError() error {
	err := e.listenerErr
	e.listenerErr = nil
	if err == nil {
		return nil
	}
	return err
}
