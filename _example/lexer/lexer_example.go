package main

import (
	"fmt"

	"github.com/xiam/lispy/lexer"
)

func main() {
	input := `
		(define x
			(+ 2 3))
		(car (cdr (1 2 x)))
	`

	for i, tok := range lexer.Scan(input) {
		line, col := tok.Pos()
		lexeme := tok.Text()
		tt := tok.Type().String()

		fmt.Printf("token[%d] (type: %v, line: %d, col: %d)\n\t-> %q\n\n", i, tt, line, col, lexeme)
	}
}
