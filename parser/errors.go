package parser

import (
	"errors"
)

var (
	ErrUnexpectedEOF        = errors.New("unexpected end of input")
	ErrUnexpectedCloseParen = errors.New("unexpected close paren")
)
