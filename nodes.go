package infix

import (
	"sort"
	"strings"
)

// Expression is a node in the abstract syntax tree of an expression. The only
// implementations are *Identifier, *UnaryOperator, and *BinaryOperator.
// Expressions are immutable once created.
type Expression interface {
	// String returns the fully parenthesized canonical form of the
	// expression.
	String() string

	expression()
}

// Identifier is a numeric literal or a variable name.
type Identifier struct {
	name string
}

// UnaryOperator is an operator applied to a single operand.
type UnaryOperator struct {
	op      string
	operand Expression
}

// BinaryOperator is an operator joining a left and a right operand.
type BinaryOperator struct {
	left  Expression
	op    string
	right Expression
}

// NewIdentifier creates an identifier node.
func NewIdentifier(name string) *Identifier {
	return &Identifier{name: name}
}

// NewUnary creates a unary operator node.
func NewUnary(op string, operand Expression) *UnaryOperator {
	return &UnaryOperator{op: op, operand: operand}
}

// NewBinary creates a binary operator node.
func NewBinary(left Expression, op string, right Expression) *BinaryOperator {
	return &BinaryOperator{left: left, op: op, right: right}
}

func (*Identifier) expression()     {}
func (*UnaryOperator) expression()  {}
func (*BinaryOperator) expression() {}

// Name returns the text of the identifier.
func (n *Identifier) Name() string {
	return n.name
}

// IsNumber reports whether the identifier is a numeric literal rather than a
// variable name.
func (n *Identifier) IsNumber() bool {
	return isNumber(n.name)
}

// Operator returns the operator symbol.
func (n *UnaryOperator) Operator() string {
	return n.op
}

// Operand returns the operand.
func (n *UnaryOperator) Operand() Expression {
	return n.operand
}

// Left returns the left operand.
func (n *BinaryOperator) Left() Expression {
	return n.left
}

// Operator returns the operator symbol.
func (n *BinaryOperator) Operator() string {
	return n.op
}

// Right returns the right operand.
func (n *BinaryOperator) Right() Expression {
	return n.right
}

func (n *Identifier) String() string {
	return n.name
}

func (n *UnaryOperator) String() string {
	var b strings.Builder
	format(&b, n)
	return b.String()
}

func (n *BinaryOperator) String() string {
	var b strings.Builder
	format(&b, n)
	return b.String()
}

func format(b *strings.Builder, e Expression) {
	switch n := e.(type) {
	case *Identifier:
		b.WriteString(n.name)
	case *UnaryOperator:
		b.WriteByte('(')
		b.WriteString(n.op)
		b.WriteByte(' ')
		format(b, n.operand)
		b.WriteByte(')')
	case *BinaryOperator:
		b.WriteByte('(')
		format(b, n.left)
		b.WriteByte(' ')
		b.WriteString(n.op)
		b.WriteByte(' ')
		format(b, n.right)
		b.WriteByte(')')
	default:
		panic("infix: invalid expression " + b.String())
	}
}

// Walk traverses e in pre-order, calling fn for each node. If fn returns
// false, the children of that node are skipped.
func Walk(e Expression, fn func(Expression) bool) {
	if !fn(e) {
		return
	}
	switch n := e.(type) {
	case *Identifier:
	case *UnaryOperator:
		Walk(n.operand, fn)
	case *BinaryOperator:
		Walk(n.left, fn)
		Walk(n.right, fn)
	default:
		panic("infix: invalid expression")
	}
}

// Depth returns the number of nodes on the longest path from e to a leaf.
func Depth(e Expression) int {
	switch n := e.(type) {
	case *Identifier:
		return 1
	case *UnaryOperator:
		return 1 + Depth(n.operand)
	case *BinaryOperator:
		l, r := Depth(n.left), Depth(n.right)
		if l > r {
			return 1 + l
		}
		return 1 + r
	default:
		panic("infix: invalid expression")
	}
}

// Size returns the number of nodes in e.
func Size(e Expression) int {
	k := 0
	Walk(e, func(Expression) bool {
		k++
		return true
	})
	return k
}

// Vars returns the sorted variable names used in e. Numeric literals are not
// included.
func Vars(e Expression) []string {
	seen := make(map[string]bool)
	var names []string
	Walk(e, func(e Expression) bool {
		if id, ok := e.(*Identifier); ok && !id.IsNumber() && !seen[id.name] {
			seen[id.name] = true
			names = append(names, id.name)
		}
		return true
	})
	sort.Strings(names)
	return names
}
