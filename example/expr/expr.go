// Package expr is a worked grammar for a small arithmetic calculator,
// demonstrating pegx's error recovery end to end: a handful of rules
// wired through Action to fold digits into a tree as they parse, fed
// through a Runner so malformed input still produces a result.
package expr

import (
	"strconv"

	"github.com/gopeg/pegx"
	"github.com/gopeg/pegx/ascii"
)

// Node is the parse tree expr builds on the value stack: a leaf integer
// or a binary operation over two already-reduced Nodes.
type Node struct {
	Op       byte // 0 for a literal leaf
	Value    int
	Lhs, Rhs *Node
}

// Eval recursively evaluates the tree.
func (n *Node) Eval() int {
	if n.Op == 0 {
		return n.Value
	}
	l, r := n.Lhs.Eval(), n.Rhs.Eval()
	switch n.Op {
	case '+':
		return l + r
	case '-':
		return l - r
	case '*':
		return l * r
	case '/':
		return l / r
	default:
		return 0
	}
}

func leaf(v int) *Node { return &Node{Value: v} }

func binary(op byte, lhs, rhs *Node) *Node { return &Node{Op: op, Lhs: lhs, Rhs: rhs} }

// fold reduces a Seq(first, ZeroOrMore(Seq(op, term))) capture into a
// left-associative Node chain: the Action sees first pushed, then one
// (op-byte, Node) pair per repetition, in order.
func fold(popped []interface{}) *Node {
	n := popped[0].(*Node)
	for i := 1; i < len(popped); i += 2 {
		op := popped[i].(byte)
		rhs := popped[i+1].(*Node)
		n = binary(op, n, rhs)
	}
	return n
}

var (
	number = pegx.Action(ascii.Integer, func(text string, _ []interface{}) (interface{}, error) {
		v, err := strconv.Atoi(text)
		if err != nil {
			return nil, err
		}
		return leaf(v), nil
	})

	addOp = pegx.Action(pegx.AnyOf("+-"), func(text string, _ []interface{}) (interface{}, error) {
		return text[0], nil
	})

	mulOp = pegx.Action(pegx.AnyOf("*/"), func(text string, _ []interface{}) (interface{}, error) {
		return text[0], nil
	})

	expression pegx.Pattern

	factor = pegx.FirstOf(
		number,
		pegx.Action(
			pegx.Seq(pegx.Lit("("), ascii.Spacing, pegx.Lazy(&expression), ascii.Spacing, pegx.Lit(")")),
			func(_ string, popped []interface{}) (interface{}, error) { return fold(popped), nil },
		),
	)

	term = pegx.Action(
		pegx.Seq(factor, ascii.Spacing, pegx.ZeroOrMore(pegx.Seq(mulOp, ascii.Spacing, factor, ascii.Spacing))),
		func(_ string, popped []interface{}) (interface{}, error) { return fold(popped), nil },
	)

	// Grammar is a single statement ending in ';', the statement a sum
	// of terms -- Grammar used for the end-to-end scenarios:
	//     Expr := Term ((+|-) Term)* ';'
	Grammar = pegx.Action(
		pegx.Seq(term, ascii.Spacing, pegx.ZeroOrMore(pegx.Seq(addOp, ascii.Spacing, term, ascii.Spacing)), pegx.Lit(";")),
		func(_ string, popped []interface{}) (interface{}, error) { return fold(popped), nil },
	)
)

func init() {
	expression = pegx.Seq(term, ascii.Spacing, pegx.ZeroOrMore(pegx.Seq(addOp, ascii.Spacing, term, ascii.Spacing)))
}

// Parse runs Grammar over text through a recovering Runner and returns
// the evaluated result, repairing malformed statements (a missing
// operand, a stray character, an unbalanced expression) rather than
// rejecting the input outright.
func Parse(text string) (int, *pegx.ParseResult, error) {
	runner := pegx.NewRunner(Grammar)
	result, err := runner.Run(text)
	if err != nil {
		return 0, nil, err
	}
	v, ok := result.Value()
	if !ok {
		return 0, result, nil
	}
	return v.(*Node).Eval(), result, nil
}
