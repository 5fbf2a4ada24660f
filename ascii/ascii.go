// Package ascii collects small reusable grammar fragments over the
// ASCII subset of Unicode, trimmed to what a recovering grammar
// actually reaches for: digits, identifiers, and whitespace.
package ascii

import "github.com/gopeg/pegx"

// Digits.
var (
	OctDigit = pegx.Range('0', '7')
	DecDigit = pegx.Range('0', '9')
	HexDigit = pegx.Range('0', '9', 'a', 'f', 'A', 'F')
)

// Letters and identifiers.
var (
	Lower        = pegx.Range('a', 'z')
	Upper        = pegx.Range('A', 'Z')
	Letter       = pegx.Range('a', 'z', 'A', 'Z')
	LetterDigit  = pegx.Range('a', 'z', 'A', 'Z', '0', '9')
	IdentStart   = pegx.FirstOf(Letter, pegx.AnyOf("_"))
	IdentPart    = pegx.FirstOf(LetterDigit, pegx.AnyOf("_"))
	Identifier   = pegx.Seq(IdentStart, pegx.ZeroOrMore(IdentPart))
	Whitespace   = pegx.AnyOf(" \t\n\r\v\f")
	Spacing      = pegx.ZeroOrMore(Whitespace)
	MandatorySpacing = pegx.OneOrMore(Whitespace)
)

// Integer literals.
var (
	DecUint = pegx.Seq(pegx.Range('1', '9'), pegx.ZeroOrMore(DecDigit))
	DecZero = pegx.Lit("0")
	DecNat  = pegx.FirstOf(DecZero, DecUint)
	Sign    = pegx.AnyOf("+-")
	Integer = pegx.Seq(pegx.Optional(Sign), DecNat)
)

// Newline.
var (
	Newline    = pegx.AnyOf("\n\r")
	NotNewline = pegx.NoneOf("\n\r")
)
