package lispy

import (
	"errors"
	"fmt"

	"github.com/xiam/lispy/ast"
)

var (
	ErrUndefinedSymbol   = errors.New("undefined symbol")
	ErrUndefinedFunction = errors.New("undefined function")
	ErrArity             = errors.New("wrong number of arguments")
	ErrInvalidArgument   = errors.New("invalid argument type")
	ErrEmptyList         = errors.New("cannot evaluate an empty list")
)

func arityError(name string, expected string, got int) error {
	return fmt.Errorf("%w for %s: expected %s, got %d", ErrArity, name, expected, got)
}

func argumentError(name string, expected string, got *ast.Node) error {
	return fmt.Errorf("%w for %s: expected %s, got %s %v", ErrInvalidArgument, name, expected, got.Type(), got)
}
