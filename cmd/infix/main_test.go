package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := newApp(strings.NewReader(stdin), &stdout, &stderr)
	err := app.Run(append([]string{"infix"}, args...))
	return stdout.String(), stderr.String(), err
}

func TestDemo(t *testing.T) {
	out, _, err := runApp(t, "")
	require.NoError(t, err)
	assert.Equal(t, "(((3 / 2) + 2) + ((5 * (8 - 9)) * (- 6)))\n", out)
}

func TestArgs(t *testing.T) {
	out, _, err := runApp(t, "", "a+b*c", "-4.4VAR1A")
	require.NoError(t, err)
	assert.Equal(t, "(a + (b * c))\n(- (4.4 * VAR1A))\n", out)
}

func TestFlags(t *testing.T) {
	out, _, err := runApp(t, "", "--tokens", "--vars", "--check", "2x - y")
	require.NoError(t, err)
	want := `tokens: ["2" "x" " " "-" " " "y"]` + "\n" +
		"((2 * x) - y)\n" +
		"vars: x y\n"
	assert.Equal(t, want, out)
}

func TestStdin(t *testing.T) {
	out, _, err := runApp(t, "12VAR+VAR\n\n  \n2(VAR+1)\n", "--in", "-", "x")
	require.NoError(t, err)
	assert.Equal(t, "((12 * VAR) + VAR)\n(2 * (VAR + 1))\nx\n", out)
}

func TestFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "exprs.txt")
	require.NoError(t, os.WriteFile(name, []byte("a-b-c\n(a-b)*c\n"), 0o644))
	out, _, err := runApp(t, "", "--in", name)
	require.NoError(t, err)
	assert.Equal(t, "((a - b) - c)\n((a - b) * c)\n", out)
}

func TestMissingFile(t *testing.T) {
	_, _, err := runApp(t, "", "--in", filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening input")
}

func TestInvalid(t *testing.T) {
	out, errs, err := runApp(t, "", "VAR VAR2", "x", "2*")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 3")
	assert.Equal(t, "x\n", out)
	assert.Contains(t, errs, "input 1: invalid expression")
	assert.Contains(t, errs, "input 3: invalid expression")
}

func TestCheck(t *testing.T) {
	require.NoError(t, check("((- VAR) + 2)"))
	assert.Error(t, check("-VAR+2"))
	assert.Error(t, check("(2"))
}
