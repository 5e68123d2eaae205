package parser

import (
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiam/lispy/ast"
	"github.com/xiam/lispy/lexer"
)

func TestParserBuildTree(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{
			In:  `1`,
			Out: `1`,
		},
		{
			In:  `3.4`,
			Out: `3.4`,
		},
		{
			In:  `2.0`,
			Out: `2`,
		},
		{
			In:  `foo`,
			Out: `foo`,
		},
		{
			In:  `()`,
			Out: `()`,
		},
		{
			In:  `(1 2 3)`,
			Out: `(1 2 3)`,
		},
		{
			In:  "(1\n\t 2\n\n3\n)",
			Out: "(1 2 3)",
		},
		{
			In:  `(1.2 2.4 3.44 5.678 (1 1.2 1.3 (2) 1.4) 4 5 (6 (7) 8) (9 10) () 11 12 13)`,
			Out: `(1.2 2.4 3.44 5.678 (1 1.2 1.3 (2) 1.4) 4 5 (6 (7) 8) (9 10) () 11 12 13)`,
		},
		{
			In:  `(1 2 () (3(4(5))) 6 (7))`,
			Out: `(1 2 () (3 (4 (5))) 6 (7))`,
		},
		{
			In: "(a		b c def GHIJ 1 1.23)",
			Out: "(a b c def GHIJ 1 1.23)",
		},
		{
			In:  `(+ 1 2 3 4)`,
			Out: `(+ 1 2 3 4)`,
		},
		{
			In:  `(+ -1 55 +6.3 +2 -3.23 4.01)`,
			Out: `(+ -1 55 6.3 2 -3.23 4.01)`,
		},
		{
			In:  `(define x (+ 2 3))`,
			Out: `(define x (+ 2 3))`,
		},
	}

	for i := range testCases {
		root, rest, err := ParseString(testCases[i].In)
		require.NoError(t, err, "input: %q", testCases[i].In)
		require.NotNil(t, root)

		assert.Empty(t, rest)
		assert.Equal(t, testCases[i].Out, ast.Encode(root), spew.Sdump(root))
	}
}

func TestParseAtoms(t *testing.T) {
	testCases := []struct {
		In   string
		Type ast.NodeType
	}{
		{`1`, ast.NodeTypeNumber},
		{`-1`, ast.NodeTypeNumber},
		{`+1.5`, ast.NodeTypeNumber},
		{`1e3`, ast.NodeTypeNumber},
		{`.5`, ast.NodeTypeNumber},
		{`1e999`, ast.NodeTypeNumber},
		{`inf`, ast.NodeTypeNumber},
		{`NaN`, ast.NodeTypeNumber},
		{`+`, ast.NodeTypeSymbol},
		{`-`, ast.NodeTypeSymbol},
		{`car`, ast.NodeTypeSymbol},
		{`1.2.3`, ast.NodeTypeSymbol},
		{`12abc`, ast.NodeTypeSymbol},
		{`x1`, ast.NodeTypeSymbol},
	}

	for i := range testCases {
		node, _, err := ParseString(testCases[i].In)
		require.NoError(t, err)
		assert.Equal(t, testCases[i].Type, node.Type(), "input: %q", testCases[i].In)
	}

	node, _, err := ParseString(`1e999`)
	require.NoError(t, err)
	assert.True(t, math.IsInf(node.Number(), 1))

	node, _, err = ParseString(`12abc`)
	require.NoError(t, err)
	assert.Equal(t, "12abc", node.Symbol())
}

func TestParserTail(t *testing.T) {
	testCases := []struct {
		In   string
		Out  string
		Rest []string
	}{
		{`1 2 3`, `1`, []string{"2", "3"}},
		{`(a) (b)`, `(a)`, []string{"(", "b", ")"}},
		{`(a))`, `(a)`, []string{")"}},
		{`x (`, `x`, []string{"("}},
	}

	for i := range testCases {
		node, rest, err := ParseString(testCases[i].In)
		require.NoError(t, err)
		assert.Equal(t, testCases[i].Out, ast.Encode(node))
		assert.Equal(t, testCases[i].Rest, rest)
	}
}

func TestParserErrors(t *testing.T) {
	testCases := []struct {
		In  string
		Err error
	}{
		{``, ErrUnexpectedEOF},
		{"  \n\t", ErrUnexpectedEOF},
		{`(`, ErrUnexpectedEOF},
		{`(1`, ErrUnexpectedEOF},
		{`(((1 1 1`, ErrUnexpectedEOF},
		{`(1 2 3 4 (5 6 7 8 (4 6) 7`, ErrUnexpectedEOF},
		{`)`, ErrUnexpectedCloseParen},
		{`) 1`, ErrUnexpectedCloseParen},
	}

	for i := range testCases {
		root, rest, err := ParseString(testCases[i].In)
		assert.Nil(t, root)
		assert.Nil(t, rest)
		assert.ErrorIs(t, err, testCases[i].Err, "input: %q", testCases[i].In)
	}

	_, _, err := ParseString(`(`)
	assert.EqualError(t, err, "unexpected end of input")

	_, _, err = ParseString(`)`)
	assert.EqualError(t, err, "unexpected close paren")
}

func TestParseAll(t *testing.T) {
	nodes, err := ParseAll(lexer.Tokenize(`(define x 1) x (+ x 2) ()`))
	require.NoError(t, err)
	require.Len(t, nodes, 4)

	out := []string{}
	for _, node := range nodes {
		out = append(out, ast.Encode(node))
	}
	assert.Equal(t, []string{"(define x 1)", "x", "(+ x 2)", "()"}, out)

	nodes, err = ParseAll(lexer.Tokenize(``))
	require.NoError(t, err)
	assert.Empty(t, nodes)

	_, err = ParseAll(lexer.Tokenize(`(a) (b`))
	assert.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestParsePrintRoundTrip(t *testing.T) {
	testCases := []*ast.Node{
		ast.NewNumber(0),
		ast.NewNumber(-12.75),
		ast.NewNumber(1e21),
		ast.NewNumber(1.0 / 3.0),
		ast.NewNumber(math.Inf(-1)),
		ast.NewNumber(math.NaN()),
		ast.NewSymbol("foo-bar"),
		ast.NewList(),
		ast.NewList(
			ast.NewSymbol("car"),
			ast.NewList(ast.NewSymbol("cdr"), ast.NewList(ast.NewNumber(1), ast.NewNumber(2), ast.NewNumber(3))),
		),
		ast.NewList(ast.NewList(ast.NewList()), ast.NewNumber(0.000001)),
	}

	for _, expr := range testCases {
		node, rest, err := Parse(lexer.Tokenize(ast.Encode(expr)))
		require.NoError(t, err)
		assert.Empty(t, rest)
		assert.True(t, ast.Equal(expr, node), "want %s\ngot %s", spew.Sdump(expr), spew.Sdump(node))
	}
}

func TestDeepNesting(t *testing.T) {
	const depth = 10000

	tokens := make([]string, 0, depth*2+1)
	for i := 0; i < depth; i++ {
		tokens = append(tokens, "(")
	}
	tokens = append(tokens, "1")
	for i := 0; i < depth; i++ {
		tokens = append(tokens, ")")
	}

	node, rest, err := Parse(tokens)
	require.NoError(t, err)
	assert.Empty(t, rest)

	for i := 0; i < depth; i++ {
		require.Equal(t, 1, node.Len())
		node = node.At(0)
	}
	assert.Equal(t, 1.0, node.Number())
}
