package lispy

import (
	"fmt"

	"github.com/xiam/lispy/ast"
)

const (
	formDefine = "define"
	formPrint  = "print"
)

// Names handled by the evaluator before the builtin table is consulted.
var specialForms = []string{formDefine, formPrint}

// Eval evaluates node against env. Numbers evaluate to themselves, symbols to
// their bound value. A list whose head is a symbol is a special form or a
// builtin call with arguments evaluated left to right; any other non-empty
// list evaluates to the list of its evaluated elements.
func Eval(node *ast.Node, env *Environment) (*ast.Node, error) {
	env.log.Printf("eval: %v", node)

	switch node.Type() {
	case ast.NodeTypeNumber:
		return node, nil

	case ast.NodeTypeSymbol:
		name := node.Symbol()
		value, ok := env.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUndefinedSymbol, name)
		}
		return value, nil

	case ast.NodeTypeList:
		return evalList(node, env)
	}

	panic("unreachable")
}

func evalList(node *ast.Node, env *Environment) (*ast.Node, error) {
	if node.Len() == 0 {
		return nil, ErrEmptyList
	}

	head := node.At(0)
	if !head.Is(ast.NodeTypeSymbol) {
		values, err := evalEach(node.List(), env)
		if err != nil {
			return nil, err
		}
		return ast.NewList(values...), nil
	}

	name := head.Symbol()
	args := node.Tail().List()

	switch name {
	case formDefine:
		return evalDefine(args, env)
	case formPrint:
		return evalPrint(args, env)
	}

	fn, ok := env.Builtin(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUndefinedFunction, name)
	}

	values, err := evalEach(args, env)
	if err != nil {
		return nil, err
	}

	env.log.Printf("apply: %s %v", name, ast.NewList(values...))
	return fn(env, values)
}

func evalEach(nodes []*ast.Node, env *Environment) ([]*ast.Node, error) {
	values := make([]*ast.Node, 0, len(nodes))
	for _, node := range nodes {
		value, err := Eval(node, env)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}

// (define name expr) binds name to the value of expr and returns the symbol
// name.
func evalDefine(args []*ast.Node, env *Environment) (*ast.Node, error) {
	if len(args) != 2 {
		return nil, arityError(formDefine, "2", len(args))
	}

	target := args[0]
	if !target.Is(ast.NodeTypeSymbol) {
		return nil, argumentError(formDefine, "symbol", target)
	}

	value, err := Eval(args[1], env)
	if err != nil {
		return nil, err
	}

	env.Define(target.Symbol(), value)
	return target, nil
}

// (print expr) writes the value of expr followed by a newline and returns it.
func evalPrint(args []*ast.Node, env *Environment) (*ast.Node, error) {
	if len(args) != 1 {
		return nil, arityError(formPrint, "1", len(args))
	}

	value, err := Eval(args[0], env)
	if err != nil {
		return nil, err
	}

	if _, err := fmt.Fprintln(env.out, ast.Encode(value)); err != nil {
		return nil, err
	}
	return value, nil
}
