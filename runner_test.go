package pegx

import "testing"

// grammar S := 'a' 'b' 'c'
func abcGrammar() Pattern {
	return Seq(Lit("a"), Lit("b"), Lit("c"))
}

func TestRunnerCleanInputNoErrors(t *testing.T) {
	// Idempotence on clean input: no repairs needed, no errors reported.
	runner := NewRunner(abcGrammar())
	result, err := runner.Run("abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Matched {
		t.Fatal("expected matched=true")
	}
	if len(result.Errors) != 0 {
		t.Fatalf("expected zero errors, got %d", len(result.Errors))
	}
	if result.Length != 3 {
		t.Fatalf("Length => %d, want 3", result.Length)
	}
}

// assertRecovers runs grammar over text and checks totality (matched is
// always true) plus preservation of the original text (every reported
// error's original character, recovered through OriginalIndex, is part
// of the unmodified source text, never a sentinel).
func assertRecovers(t *testing.T, grammar Pattern, text string) *ParseResult {
	t.Helper()
	runner := NewRunner(grammar)
	result, err := runner.Run(text)
	if err != nil {
		t.Fatalf("unexpected error for %q: %v", text, err)
	}
	if !result.Matched {
		t.Fatalf("expected matched=true for %q", text)
	}
	for _, ierr := range result.Errors {
		orig := result.Buffer.OriginalIndex(ierr.StartIndex)
		if orig < 0 || orig > len(text) {
			t.Fatalf("OriginalIndex(%d) => %d, out of [0,%d]", ierr.StartIndex, orig, len(text))
		}
		if orig < len(text) && IsSentinel(rune(text[orig])) {
			t.Fatalf("original text contained a sentinel at %d", orig)
		}
	}
	return result
}

func TestRunnerRepairsReplacementCase(t *testing.T) {
	// "abd" against S := 'a' 'b' 'c' needs at least one repair.
	result := assertRecovers(t, abcGrammar(), "abd")
	if len(result.Errors) == 0 {
		t.Fatal("expected at least one recorded error")
	}
}

func TestRunnerRepairsReplacementCaseWithEOI(t *testing.T) {
	// Without an EndOfInput anchor, "abd" against S := 'a' 'b' 'c' can be
	// fixed by inserting 'c' and leaving the 'd' unconsumed, which masks
	// whether replacement itself works. Anchoring to EndOfInput forces a
	// real replacement: deletion alone can't produce a trailing 'c', and
	// insertion alone leaves 'd' stranded before the anchor.
	grammar := Seq(abcGrammar(), EndOfInput())
	result := assertRecovers(t, grammar, "abd")
	if len(result.Errors) != 1 {
		t.Fatalf("expected exactly one repair (a single replacement), got %d", len(result.Errors))
	}
}

func TestRunnerRepairsInsertionCase(t *testing.T) {
	// "ac" against S := 'a' 'b' 'c' needs at least one repair.
	result := assertRecovers(t, abcGrammar(), "ac")
	if len(result.Errors) == 0 {
		t.Fatal("expected at least one recorded error")
	}
}

func TestRunnerRepairsDeletionCase(t *testing.T) {
	// "axbc" against S := 'a' 'b' 'c' needs at least one repair.
	result := assertRecovers(t, abcGrammar(), "axbc")
	if len(result.Errors) == 0 {
		t.Fatal("expected at least one recorded error")
	}
}

func TestRunnerRepairsInsideRepeat(t *testing.T) {
	// grammar S := 'a'+ ';', input "aa?a;".
	grammar := Seq(OneOrMore(Lit("a")), Lit(";"))
	result := assertRecovers(t, grammar, "aa?a;")
	if len(result.Errors) == 0 {
		t.Fatal("expected at least one recorded error")
	}
}

func TestRunnerResyncOnExtraCharacter(t *testing.T) {
	// grammar S := ('a' / 'b')+ ';', input "aab;;" -> the second ';'
	// triggers resync; the run still ends up matched. EndOfInput anchors
	// the grammar to the whole input so the trailing ';' isn't simply
	// left unconsumed.
	grammar := Seq(OneOrMore(FirstOf(Lit("a"), Lit("b"))), Lit(";"), EndOfInput())
	result := assertRecovers(t, grammar, "aab;;")
	if len(result.Errors) == 0 {
		t.Fatal("expected at least one recorded error")
	}
}

func TestRunnerProgressAcrossMultipleErrors(t *testing.T) {
	// With several independent mistakes, the runner still terminates
	// with a single matched result.
	multi := Seq(abcGrammar(), Lit(" "), abcGrammar(), Lit(" "), abcGrammar())
	result := assertRecovers(t, multi, "abX abc aXc")
	if len(result.Errors) < 2 {
		t.Fatalf("expected at least two recorded errors, got %d", len(result.Errors))
	}
}

func TestRunnerNilRootPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected NewRunner(nil) to panic")
		}
	}()
	NewRunner(nil)
}

func TestRunnerMaxErrorsTimeout(t *testing.T) {
	runner := NewRunner(abcGrammar(), WithMaxErrors(0))
	_, err := runner.Run("zzz")
	if err == nil {
		t.Fatal("expected a TimeoutError when MaxErrors is exhausted")
	}
	if _, ok := err.(*TimeoutError); !ok {
		t.Fatalf("error => %T, want *TimeoutError", err)
	}
}
