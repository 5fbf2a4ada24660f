package pegx

import "testing"

func TestIsSingleCharMatcher(t *testing.T) {
	data := []struct {
		pat  Pattern
		want bool
	}{
		{Lit("a"), true},
		{Lit("ab"), false},
		{Any(), true},
		{AnyOf("abc"), true},
		{NoneOf("abc"), false},
		{Range('a', 'z'), true},
		{Range('a', 'z', '0', '9'), true},
		{Seq(Lit("a"), Lit("b")), false},
		{Test(Lit("a")), true},
	}
	for _, d := range data {
		if got := IsSingleCharMatcher(d.pat); got != d.want {
			t.Errorf("IsSingleCharMatcher(%s) => %v != %v", d.pat, got, d.want)
		}
	}
}

func TestGetStarterChar(t *testing.T) {
	data := []struct {
		pat     Pattern
		want    rune
		wantErr bool
	}{
		{Lit("a"), 'a', false},
		{AnyOf("x"), 'x', false},
		{Range('a', 'a'), 'a', false},
		{Any(), 0, true},
		{Lit("ab"), 0, true},
		{AnyOf("abc"), 0, true},
	}
	for _, d := range data {
		c, err := GetStarterChar(d.pat)
		if (err != nil) != d.wantErr {
			t.Errorf("GetStarterChar(%s) error => %v, wantErr %v", d.pat, err, d.wantErr)
			continue
		}
		if err == nil && c != d.want {
			t.Errorf("GetStarterChar(%s) => %q != %q", d.pat, c, d.want)
		}
	}
}

func TestIsStarterChar(t *testing.T) {
	choice := FirstOf(Lit("cat"), Lit("dog"))
	if !IsStarterChar(choice, 'c') {
		t.Error("choice should start with 'c'")
	}
	if !IsStarterChar(choice, 'd') {
		t.Error("choice should start with 'd'")
	}
	if IsStarterChar(choice, 'x') {
		t.Error("choice should not start with 'x'")
	}

	seq := Seq(Lit("foo"), Lit("bar"))
	if !IsStarterChar(seq, 'f') {
		t.Error("sequence should start like its first child")
	}
	if IsStarterChar(seq, 'b') {
		t.Error("sequence should not start like its second child")
	}
}

func TestFollowMatchersAcrossSequence(t *testing.T) {
	b := Lit("b")
	c := Lit("c")
	seq := Seq(Lit("a"), b, c).(*SequencePattern)

	buf := NewInputBuffer("abc")
	e := NewEngine(buf, Config{})
	root := newRootContext(seq, 0, NewValueStack())
	bCtx := root.Child(b)
	bCtx.Tag = 1 // b is seq.children[1]
	_ = e

	follow := FollowMatchers(bCtx)
	if len(follow) != 1 || follow[0] != c {
		t.Fatalf("FollowMatchers => %v, want [c]", follow)
	}
}

func TestCollectResyncActionsFindsAction(t *testing.T) {
	act := Action(Lit("x"), func(string, []interface{}) (interface{}, error) { return 1, nil })
	seq := Seq(Lit("a"), act, Lit("b"))

	acts, ok := CollectResyncActions(seq)
	if !ok {
		t.Fatal("CollectResyncActions should report ok on a non-cyclic sequence")
	}
	if len(acts) != 1 || acts[0] != act {
		t.Fatalf("CollectResyncActions => %v, want [act]", acts)
	}
}

func TestCollectResyncActionsDetectsCycle(t *testing.T) {
	var self Pattern
	lazy := Lazy(&self)
	seq := Seq(Lit("a"), lazy)
	self = seq

	_, ok := CollectResyncActions(seq)
	if ok {
		t.Fatal("CollectResyncActions should report !ok on a self-referential sequence")
	}
}
