package pegx

import "testing"

type countingListener struct {
	BaseListener
	preParse, preMatch, success, failure, postParse int
}

func (l *countingListener) PreParse(e *Engine)              { l.preParse++ }
func (l *countingListener) PreMatch(ctx *MatcherContext)     { l.preMatch++ }
func (l *countingListener) MatchSuccess(ctx *MatcherContext) { l.success++ }
func (l *countingListener) MatchFailure(ctx *MatcherContext) { l.failure++ }
func (l *countingListener) PostParse(e *Engine, r *ParseResult) {
	l.postParse++
}

func TestListenerFiresOnCleanRun(t *testing.T) {
	l := &countingListener{}
	runner := NewRunner(Lit("abc"))
	runner.RegisterListener(l)

	result, err := runner.Run("abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Matched {
		t.Fatal("expected a match")
	}
	if l.preParse != 1 || l.postParse != 1 {
		t.Fatalf("preParse=%d postParse=%d, want 1 and 1", l.preParse, l.postParse)
	}
	if l.preMatch == 0 || l.success == 0 {
		t.Fatal("expected PreMatch/MatchSuccess to fire during matching")
	}
}

type panickingListener struct {
	BaseListener
}

func (panickingListener) PreParse(e *Engine) {
	panic("boom")
}

func TestListenerPanicBecomesListenerError(t *testing.T) {
	runner := NewRunner(Lit("abc"))
	runner.RegisterListener(panickingListener{})

	_, err := runner.Run("abc")
	if err == nil {
		t.Fatal("expected an error from the panicking listener")
	}
	lerr, ok := err.(*ListenerError)
	if !ok {
		t.Fatalf("error => %T, want *ListenerError", err)
	}
	if lerr.Phase != "pre-parse" {
		t.Fatalf("Phase => %q, want %q", lerr.Phase, "pre-parse")
	}
}
