package lispy

import (
	"github.com/xiam/lispy/ast"
)

var defaultBuiltins = map[string]Builtin{
	"+":   add,
	"-":   subtract,
	"car": car,
	"cdr": cdr,
}

func expectNumber(name string, arg *ast.Node) (float64, error) {
	if !arg.Is(ast.NodeTypeNumber) {
		return 0, argumentError(name, "number", arg)
	}
	return arg.Number(), nil
}

func add(env *Environment, args []*ast.Node) (*ast.Node, error) {
	sum := 0.0
	for _, arg := range args {
		f, err := expectNumber("+", arg)
		if err != nil {
			return nil, err
		}
		sum += f
	}
	return ast.NewNumber(sum), nil
}

func subtract(env *Environment, args []*ast.Node) (*ast.Node, error) {
	if len(args) < 1 {
		return nil, arityError("-", "at least 1", len(args))
	}

	difference, err := expectNumber("-", args[0])
	if err != nil {
		return nil, err
	}
	for _, arg := range args[1:] {
		f, err := expectNumber("-", arg)
		if err != nil {
			return nil, err
		}
		difference -= f
	}
	return ast.NewNumber(difference), nil
}

func car(env *Environment, args []*ast.Node) (*ast.Node, error) {
	if len(args) != 1 {
		return nil, arityError("car", "1", len(args))
	}

	list := args[0]
	if !list.Is(ast.NodeTypeList) || list.Len() == 0 {
		return nil, argumentError("car", "non-empty list", list)
	}
	return list.At(0), nil
}

// cdr of the empty list is the empty list.
func cdr(env *Environment, args []*ast.Node) (*ast.Node, error) {
	if len(args) != 1 {
		return nil, arityError("cdr", "1", len(args))
	}

	list := args[0]
	if !list.Is(ast.NodeTypeList) {
		return nil, argumentError("cdr", "list", list)
	}
	return list.Tail(), nil
}
