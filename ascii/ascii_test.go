package ascii

import (
	"testing"

	"github.com/gopeg/pegx"
)

func match(pat pegx.Pattern, text string) (ok bool, n int) {
	buf := pegx.NewInputBuffer(text)
	e := pegx.NewEngine(buf, pegx.Config{})
	ok, ctx := e.Match(pat)
	return ok, ctx.Current
}

func TestDigits(t *testing.T) {
	data := []struct {
		pat  pegx.Pattern
		text string
		ok   bool
	}{
		{OctDigit, "7", true},
		{OctDigit, "8", false},
		{DecDigit, "9", true},
		{DecDigit, "a", false},
		{HexDigit, "f", true},
		{HexDigit, "F", true},
		{HexDigit, "g", false},
	}
	for _, d := range data {
		ok, _ := match(d.pat, d.text)
		if ok != d.ok {
			t.Errorf("match(%s, %q) => %v != %v", d.pat, d.text, ok, d.ok)
		}
	}
}

func TestIdentifier(t *testing.T) {
	data := []struct {
		text string
		ok   bool
		n    int
	}{
		{"foo_bar1", true, 8},
		{"_private", true, 8},
		{"1abc", false, 0},
		{"", false, 0},
	}
	for _, d := range data {
		ok, n := match(Identifier, d.text)
		if ok != d.ok || (ok && n != d.n) {
			t.Errorf("Identifier(%q) => (%v, %d) != (%v, %d)", d.text, ok, n, d.ok, d.n)
		}
	}
}

func TestInteger(t *testing.T) {
	data := []struct {
		text string
		ok   bool
		n    int
	}{
		{"0", true, 1},
		{"42", true, 2},
		{"-7", true, 2},
		{"+7", true, 2},
		{"007", true, 1}, // DecZero matches the leading 0; DecUint requires 1-9 first
	}
	for _, d := range data {
		ok, n := match(Integer, d.text)
		if ok != d.ok || (ok && n != d.n) {
			t.Errorf("Integer(%q) => (%v, %d) != (%v, %d)", d.text, ok, n, d.ok, d.n)
		}
	}
}

func TestSpacing(t *testing.T) {
	ok, n := match(Spacing, "   x")
	if !ok || n != 3 {
		t.Fatalf("Spacing(%q) => (%v, %d) != (true, 3)", "   x", ok, n)
	}
	ok, n = match(MandatorySpacing, "x")
	if ok {
		t.Fatalf("MandatorySpacing(%q) should fail with no leading space", "x")
	}
}
