package main

import (
	"log"

	"github.com/xiam/lispy/ast"
	"github.com/xiam/lispy/lexer"
	"github.com/xiam/lispy/parser"
)

func main() {
	input := `(define x (+ 2 3)) (print (car (cdr (1 x 3.27))))`

	nodes, err := parser.ParseAll(lexer.Tokenize(input))
	if err != nil {
		log.Fatal("parser.ParseAll:", err)
	}

	for _, node := range nodes {
		ast.Print(node)
	}
}
