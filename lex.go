package infix

import "strings"

// Operators contains the single-character tokens which are operators or
// parentheses.
const Operators = "()+-/*"

// lexer scans tokens from an input string one at a time. A lexer cannot be
// restarted; once next reports false, it always reports false.
type lexer struct {
	src string
	pos int
	eof bool
}

func lex(text string) *lexer {
	return &lexer{src: text}
}

// next scans the next token. Whitespace runs are returned as tokens. The
// result is false at the end of the input or at the first character which
// cannot start a token; the remainder of the input is dropped in the latter
// case.
func (l *lexer) next() (string, bool) {
	if l.eof || l.pos >= len(l.src) {
		l.eof = true
		return "", false
	}
	start := l.pos
	c := l.src[l.pos]
	switch {
	case isDigit(c):
		l.scanNum()
	case isIdentStart(c):
		l.pos++
		for l.pos < len(l.src) && isIdentPart(l.src[l.pos]) {
			l.pos++
		}
	case isSpace(c):
		l.pos++
		for l.pos < len(l.src) && isSpace(l.src[l.pos]) {
			l.pos++
		}
	case isOperator(c):
		l.pos++
	default:
		l.eof = true
		return "", false
	}
	return l.src[start:l.pos], true
}

// scanNum scans a real number if one is present, otherwise an integer. A dot
// not followed by a digit is not part of the number.
func (l *lexer) scanNum() {
	l.skipDigits()
	if l.pos+1 < len(l.src) && l.src[l.pos] == '.' && isDigit(l.src[l.pos+1]) {
		l.pos++
		l.skipDigits()
	}
}

func (l *lexer) skipDigits() {
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.pos++
	}
}

// Tokens lexes text and returns every token in order, including whitespace
// runs. Lexing stops silently at the first character which cannot start a
// token.
func Tokens(text string) []string {
	var toks []string
	l := lex(text)
	for tok, ok := l.next(); ok; tok, ok = l.next() {
		toks = append(toks, tok)
	}
	return toks
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isIdentStart(c byte) bool {
	return c == '_' || isLetter(c)
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

// isSpace matches the ASCII whitespace characters.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isOperator(c byte) bool {
	return strings.IndexByte(Operators, c) >= 0
}

// isWhitespace reports whether tok is a whitespace run.
func isWhitespace(tok string) bool {
	return tok != "" && isSpace(tok[0])
}
