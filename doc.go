// Package pegx implements Parsing Expression Grammars with automatic
// syntax error recovery, inspired by the error-recovering parsers used
// in some hand-rolled compiler front ends. The PEG text matching is
// greedy: a qualified pattern tries to match as much input as it can,
// and choices (FirstOf) take the first alternative that matches rather
// than the longest.
//
// Overlook of patterns
//
// Terminals match a single rune or a literal run of text:
//     Lit(text), Any(), AnyOf(chars), NoneOf(chars), Range(low, high, ...)
// Patterns combine by sequence or ordered choice:
//     Seq(pat, ...), FirstOf(pat, ...)
// Qualifiers repeat a pattern:
//     ZeroOrMore(pat), OneOrMore(pat), Optional(pat), Repeat(m, n, pat)
// Predicates test without consuming input:
//     Empty(), Nothing(), EndOfInput(), Test(pat), TestNot(pat)
// Action attaches a side effect that runs once its child has matched,
// reading the matched text and whatever values the child pushed:
//     Action(pat, fn), Push(v)
//
// Error recovery
//
// A Runner built over a root Pattern never rejects an input outright.
// Given a Sequence that fails partway through, the Runner deletes,
// inserts, or replaces a single character, or resynchronises by
// skipping input up to the grammar's own follow set, and keeps doing so
// until the whole grammar matches. The repaired text, including the
// sentinel markers the Runner spliced in, is visible through the
// InputBuffer attached to the ParseResult; each InvalidInputError it
// collects records where and how repair happened.
//
// Common mistakes
//
// Left recursion never terminates: PEG parsers are top-down, so a rule
// that calls itself before consuming any input will recurse until
// MaxRecursionDepth panics.
//
// A ZeroOrMore or OneOrMore wrapped directly around a pattern that can
// match the empty string loops until the qualifier gives up on a
// same-position iteration; repeatPattern.match guards against this by
// stopping as soon as an iteration doesn't advance the cursor, but a
// grammar relying on that guard instead of writing a non-empty body is
// a sign something is misdesigned upstream.
package pegx // import "github.com/gopeg/pegx"
