package parser

import (
	"strconv"

	"github.com/xiam/lispy/ast"
	"github.com/xiam/lispy/lexer"
)

const (
	openList  = "("
	closeList = ")"
)

// Parser builds expressions out of a sequence of tokens using recursive
// descent:
//
//	expr := '(' expr* ')' | atom
//	atom := number | symbol
type Parser struct {
	tokens []string
	offset int
}

// New creates a parser that reads from the given tokens.
func New(tokens []string) *Parser {
	return &Parser{tokens: tokens}
}

// More returns true if there are unconsumed tokens.
func (p *Parser) More() bool {
	return p.offset < len(p.tokens)
}

// Rest returns the tokens that were not consumed yet.
func (p *Parser) Rest() []string {
	return p.tokens[p.offset:]
}

// Parse consumes exactly one expression.
func (p *Parser) Parse() (*ast.Node, error) {
	return p.parseExpr()
}

func (p *Parser) peek() (string, bool) {
	if !p.More() {
		return "", false
	}
	return p.tokens[p.offset], true
}

func (p *Parser) next() (string, bool) {
	tok, ok := p.peek()
	if ok {
		p.offset++
	}
	return tok, ok
}

func (p *Parser) parseExpr() (*ast.Node, error) {
	tok, ok := p.next()
	if !ok {
		return nil, ErrUnexpectedEOF
	}

	switch tok {
	case openList:
		return p.parseList()
	case closeList:
		return nil, ErrUnexpectedCloseParen
	}

	return parseAtom(tok), nil
}

func (p *Parser) parseList() (*ast.Node, error) {
	nodes := []*ast.Node{}

	for {
		tok, ok := p.peek()
		if !ok {
			return nil, ErrUnexpectedEOF
		}
		if tok == closeList {
			p.offset++
			return ast.NewList(nodes...), nil
		}

		node, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
}

func parseAtom(tok string) *ast.Node {
	f64, err := strconv.ParseFloat(tok, 64)
	if err == nil || isRangeError(err) {
		return ast.NewNumber(f64)
	}
	return ast.NewSymbol(tok)
}

func isRangeError(err error) bool {
	numErr, ok := err.(*strconv.NumError)
	return ok && numErr.Err == strconv.ErrRange
}

// Parse reads one expression from tokens and returns it together with the
// tokens that follow it.
func Parse(tokens []string) (*ast.Node, []string, error) {
	p := New(tokens)

	node, err := p.Parse()
	if err != nil {
		return nil, nil, err
	}

	return node, p.Rest(), nil
}

// ParseString tokenizes the given source and reads one expression from it.
func ParseString(in string) (*ast.Node, []string, error) {
	return Parse(lexer.Tokenize(in))
}

// ParseAll reads consecutive expressions until tokens are exhausted.
func ParseAll(tokens []string) ([]*ast.Node, error) {
	p := New(tokens)

	nodes := []*ast.Node{}
	for p.More() {
		node, err := p.Parse()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}

	return nodes, nil
}
