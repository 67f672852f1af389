package infix

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []string
	}{
		// spaces
		{"", nil},
		{" \t \r\n ", []string{" \t \r\n "}},
		// numbers
		{"0", []string{"0"}},
		{"9876543210", []string{"9876543210"}},
		{"1 0", []string{"1", " ", "0"}},
		{"4.4", []string{"4.4"}},
		{"4.4VAR1A", []string{"4.4", "VAR1A"}},
		{"12VAR", []string{"12", "VAR"}},
		{"4.", []string{"4"}},
		{"4.x", []string{"4"}},
		{"1.2.3", []string{"1.2"}},
		{".5", nil},
		// identifiers
		{"VAR", []string{"VAR"}},
		{"VAR_2", []string{"VAR_2"}},
		{"_1234_", []string{"_1234_"}},
		{"V1(", []string{"V1", "("}},
		// operators
		{"()+-/*", []string{"(", ")", "+", "-", "/", "*"}},
		{"a--b", []string{"a", "-", "-", "b"}},
		{"-VAR + 2", []string{"-", "VAR", " ", "+", " ", "2"}},
		// unmatched characters end the input
		{"@", nil},
		{"a@b", []string{"a"}},
		{"2 + @ 3", []string{"2", " ", "+", " "}},
		{"π", nil},
		{"x^2", []string{"x"}},
	}
	for _, c := range cases {
		got := Tokens(c.src)
		if diff := cmp.Diff(c.tokens, got); diff != "" {
			t.Errorf("scanning %q: tokens differ (-want +got):\n%s", c.src, diff)
		}
	}
}

func TestLexNotRestartable(t *testing.T) {
	scan := lex("a @ b")
	for _, want := range []string{"a", " "} {
		got, ok := scan.next()
		if !ok || got != want {
			t.Fatalf("want %q, got %q, %v", want, got, ok)
		}
	}
	for i := 0; i < 3; i++ {
		if got, ok := scan.next(); ok {
			t.Errorf("scan %d after end: got %q", i, got)
		}
	}
}
