package infix

import (
	"errors"
	"strconv"
)

// ErrInvalidExpression is the kind of every error returned by Parse. Use
// errors.Is to check for it.
var ErrInvalidExpression = errors.New("invalid expression")

// Reason is the condition that made an expression invalid.
type Reason int8

const (
	// ReasonEnd means the input ended where an operand was expected.
	ReasonEnd Reason = iota + 1
	// ReasonParen means a parenthesized group was not closed.
	ReasonParen
	// ReasonLeftover means tokens remained after a complete expression.
	ReasonLeftover
	// ReasonAdjacent means two identifiers were adjacent with no operator
	// between them and no implicit multiplication applies.
	ReasonAdjacent
	// ReasonOperator means an operator appeared where an operand was
	// expected.
	ReasonOperator
	// ReasonDepth means the expression is nested more than MaxDepth levels.
	ReasonDepth
)

func (r Reason) String() string {
	switch r {
	case ReasonEnd:
		return "End"
	case ReasonParen:
		return "Paren"
	case ReasonLeftover:
		return "Leftover"
	case ReasonAdjacent:
		return "Adjacent"
	case ReasonOperator:
		return "Operator"
	case ReasonDepth:
		return "Depth"
	default:
		return "Reason(" + strconv.Itoa(int(r)) + ")"
	}
}

// SyntaxError is an error indicating that the input is not a valid
// expression. Every SyntaxError is an ErrInvalidExpression.
type SyntaxError struct {
	// Reason is the condition that was violated.
	Reason Reason
	// Token is the token that caused the error. It is empty when the input
	// ended early.
	Token string
	// Prev is the identifier preceding Token for ReasonAdjacent.
	Prev string
}

func (err *SyntaxError) Error() string {
	var msg string
	switch err.Reason {
	case ReasonEnd:
		msg = "expression ended unexpectedly"
	case ReasonParen:
		if err.Token == "" {
			msg = ") is missing at end"
		} else {
			msg = ") is missing before " + strconv.Quote(err.Token)
		}
	case ReasonLeftover:
		msg = "missing operator before " + strconv.Quote(err.Token)
	case ReasonAdjacent:
		msg = "missing operator between " + err.Prev + " and " + err.Token
	case ReasonOperator:
		msg = "unexpected operator " + strconv.Quote(err.Token)
	case ReasonDepth:
		msg = "expression nested more than " + strconv.Itoa(MaxDepth) + " levels"
	default:
		msg = "unknown error " + err.Reason.String()
	}
	return ErrInvalidExpression.Error() + ": " + msg
}

// Is reports whether target is ErrInvalidExpression.
func (err *SyntaxError) Is(target error) bool {
	return target == ErrInvalidExpression
}

var _ error = (*SyntaxError)(nil)
