package pegx

// Engine drives a grammar over an InputBuffer, recursing directly
// through Go's own call stack: every Pattern.match call is a normal
// function call, and the handler plugged in via the Handler field gets to
// intercept each one. Direct recursion is what lets the recovery
// handler splice a different matcher into the middle of a Sequence
// without any trampoline frame bookkeeping having to know about it.
type Engine struct {
	Buffer  *InputBuffer
	Config  Config
	Handler MatchHandler

	depth       int
	listeners   []Listener
	listenerErr error
}

// Config bounds recursion depth and recovery effort instead of the
// CallstackLimit/LoopLimit pair a trampolined engine would need --
// those are meaningless once recursion is native Go.
type Config struct {
	// MaxRecursionDepth bounds Engine.Invoke nesting; zero means
	// DefaultMaxRecursionDepth.
	MaxRecursionDepth int

	// MaxErrors bounds how many distinct input errors a single
	// recovering run will attempt to overcome before giving up with a
	// TimeoutError; zero means DefaultMaxErrors.
	MaxErrors int

	// DisableLineColumnCounting is carried in the configuration only; no
	// matcher, runner or position computation consults it.
	DisableLineColumnCounting bool
}

// Default limits.
const (
	DefaultMaxRecursionDepth = 500
	DefaultMaxErrors         = 200
)

func (c Config) withDefaults() Config {
	if c.MaxRecursionDepth <= 0 {
		c.MaxRecursionDepth = DefaultMaxRecursionDepth
	}
	if c.MaxErrors <= 0 {
		c.MaxErrors = DefaultMaxErrors
	}
	return c
}

// MatchHandler is the pluggable hook every matcher invocation passes
// through, giving a recovery strategy the chance to intercept failures
// and splice repairs into the buffer before the engine backtracks past
// them.
type MatchHandler interface {
	// Invoke runs m in ctx and returns whether it matched. Implementations
	// that want the underlying match behavior call engine.Invoke(m, ctx)
	// with the basic handler, or e.runPattern(m, ctx) to bypass the
	// handler chain entirely (used by the recovery handler itself to
	// avoid infinitely re-intercepting its own repair attempts).
	Invoke(e *Engine, m Pattern, ctx *MatcherContext) bool
}

// basicHandler runs matchers with no interception at all -- the
// engine's behavior with no recovery strategy installed.
type basicHandler struct{}

func (basicHandler) Invoke(e *Engine, m Pattern, ctx *MatcherContext) bool {
	return e.runPattern(m, ctx)
}

// NewEngine builds an engine over buf using the basic (non-recovering)
// handler. Use a Runner for error-recovering runs.
func NewEngine(buf *InputBuffer, config Config) *Engine {
	return &Engine{Buffer: buf, Config: config.withDefaults(), Handler: basicHandler{}}
}

// Invoke is the entry point every Pattern implementation calls on its
// children: it defers to e.Handler, which may intercept, then runs the
// matcher itself. A failed attempt is transactional: any values an
// Action pushed while m (or its descendants) were trying to match are
// discarded, so a FirstOf alternative or a Sequence member that backs
// out never leaves stray pushes behind for the next attempt to trip
// over.
func (e *Engine) Invoke(m Pattern, ctx *MatcherContext) bool {
	e.depth++
	if e.depth > e.Config.MaxRecursionDepth {
		e.depth--
		panic(&InvariantViolation{Reason: "recursion depth exceeded MaxRecursionDepth"})
	}
	mark := ctx.Stack.Len()
	e.notifyPreMatch(ctx)
	ok := e.Handler.Invoke(e, m, ctx)
	if ok {
		e.notifyMatchSuccess(ctx)
	} else {
		ctx.Stack.truncate(mark)
		e.notifyMatchFailure(ctx)
	}
	e.depth--
	return ok
}

// runPattern calls m's own match method with no handler interception.
// It is the only place Pattern.match is ever called from outside a
// Pattern's own implementation.
func (e *Engine) runPattern(m Pattern, ctx *MatcherContext) bool {
	return m.match(e, ctx)
}

// Match runs root once, starting at offset 0 with a fresh value stack,
// using whatever handler is installed on e. It is the primitive every
// run mode in runner.go is built from.
func (e *Engine) Match(root Pattern) (ok bool, ctx *MatcherContext) {
	stack := NewValueStack()
	ctx = newRootContext(root, 0, stack)
	ok = e.Invoke(root, ctx)
	return ok, ctx
}
