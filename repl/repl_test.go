package repl

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runScript(t *testing.T, in string) (string, string) {
	var stdout, stderr bytes.Buffer

	err := Run(Config{
		Stdin:  strings.NewReader(in),
		Stdout: &stdout,
		Stderr: &stderr,
	})
	require.NoError(t, err)

	return stdout.String(), stderr.String()
}

func TestRunScenarios(t *testing.T) {
	testCases := []struct {
		In     string
		Stdout string
		Stderr string
	}{
		{
			In:     "(+ 1 2 3)\n",
			Stdout: "> 6\n> ",
		},
		{
			In:     "(- 10 1 2 3)\n",
			Stdout: "> 4\n> ",
		},
		{
			In:     "(define x (+ 2 3))\nx\n",
			Stdout: "> x\n> 5\n> ",
		},
		{
			In:     "(car (cdr (1 2 3)))\n",
			Stdout: "> 2\n> ",
		},
		{
			In:     "(print (+ 1 1))\n",
			Stdout: "> 2\n2\n> ",
		},
		{
			In:     "(+ 1 y)\n",
			Stdout: "> > ",
			Stderr: "Error: undefined symbol: y\n",
		},
	}

	for _, tc := range testCases {
		stdout, stderr := runScript(t, tc.In)
		assert.Equal(t, tc.Stdout, stdout, "input: %q", tc.In)
		assert.Equal(t, tc.Stderr, stderr, "input: %q", tc.In)
	}
}

func TestRunKeepsEnvironmentAcrossErrors(t *testing.T) {
	stdout, stderr := runScript(t, strings.Join([]string{
		"(define x 1)",
		"(car x)",
		"",
		"(+ x 1",
		")",
		"(+ x 1)",
	}, "\n")+"\n")

	assert.Equal(t, "> x\n> > > > > 2\n> ", stdout)
	assert.Equal(t, strings.Join([]string{
		"Error: invalid argument type for car: expected non-empty list, got number 1",
		"Error: unexpected end of input",
		"Error: unexpected end of input",
		"Error: unexpected close paren",
	}, "\n")+"\n", stderr)
}

func TestRunLastLineWithoutNewline(t *testing.T) {
	stdout, stderr := runScript(t, "(define y 2)\n(+ y y)")
	assert.Equal(t, "> y\n> 4\n> ", stdout)
	assert.Empty(t, stderr)
}

func TestRunEmptyInput(t *testing.T) {
	stdout, stderr := runScript(t, "")
	assert.Equal(t, "> ", stdout)
	assert.Empty(t, stderr)
}

func TestRunIgnoresTrailingTokens(t *testing.T) {
	stdout, stderr := runScript(t, "1 2 3\n(+ 1 1) )\n")
	assert.Equal(t, "> 1\n> 2\n> ", stdout)
	assert.Empty(t, stderr)
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errWrite
}

func TestRunReportsOutputErrors(t *testing.T) {
	err := Run(Config{
		Stdin:  strings.NewReader("1\n"),
		Stdout: failingWriter{},
		Stderr: &bytes.Buffer{},
	})
	assert.ErrorIs(t, err, errWrite)
}

func TestCompleteWord(t *testing.T) {
	names := []string{"+", "-", "car", "cdr", "define", "print", "x", "xs"}

	testCases := []struct {
		Line        string
		Pos         int
		Head        string
		Completions []string
		Tail        string
	}{
		{"(ca", 3, "(", []string{"car"}, ""},
		{"(c", 2, "(", []string{"car", "cdr"}, ""},
		{"(car (cd", 8, "(car (", []string{"cdr"}, ""},
		{"(+ x", 4, "(+ ", []string{"x", "xs"}, ""},
		{"(de x)", 3, "(", []string{"define"}, " x)"},
		{"", 0, "", names, ""},
		{"(zz", 3, "(", []string{}, ""},
		{"(p", 10, "(", []string{"print"}, ""},
	}

	for _, tc := range testCases {
		head, completions, tail := completeWord(names, tc.Line, tc.Pos)
		assert.Equal(t, tc.Head, head, "line: %q", tc.Line)
		assert.Equal(t, tc.Completions, completions, "line: %q", tc.Line)
		assert.Equal(t, tc.Tail, tail, "line: %q", tc.Line)
	}
}
