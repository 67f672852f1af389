// Package infix parses arithmetic expressions into immutable syntax trees.
//
// Expressions contain numbers, variable names, unary minus, the binary
// operators + - * /, and parentheses. Multiplication may be implicit when a
// number is followed by a name or any identifier is followed by a group, so
// "2VAR", "4 VAR", and "2(VAR+1)" are all products. "VAR VAR2" and "2 4" are
// rejected.
//
// The String method of an Expression gives its canonical form, which groups
// every operation in parentheses: "-VAR+2*VAR-50" becomes
// "(((- VAR) + (2 * VAR)) - 50)".
package infix
