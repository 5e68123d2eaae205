package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/lispy/ast"
	"github.com/xiam/lispy/parser"
)

func printTree(node *ast.Node) {
	printIndentedTree(node, 0)
}

func printIndentedTree(node *ast.Node, indentationLevel int) {
	indent := strings.Repeat("  ", indentationLevel)
	if node.IsVector() {
		fmt.Printf("%s<%s>\n", indent, node.Type())
		for _, child := range node.List() {
			printIndentedTree(child, indentationLevel+1)
		}
		fmt.Printf("%s</%s>\n", indent, node.Type())
		return
	}
	fmt.Printf("%s<%s>%v</%s>\n", indent, node.Type(), node, node.Type())
}

func main() {
	input := `(define x (+ 2 3 (- 10 1 2 3) (car (cdr (1 2 3)))))`

	root, _, err := parser.ParseString(input)
	if err != nil {
		log.Fatal("parser.ParseString:", err)
	}

	printTree(root)
}
