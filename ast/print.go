package ast

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Print displays a human-readable tree representation of a node
func Print(n *Node) {
	Fprint(os.Stdout, n)
}

// Fprint writes a human-readable tree representation of a node to w
func Fprint(w io.Writer, n *Node) {
	printLevel(w, n, 0)
}

func printLevel(w io.Writer, n *Node, level int) {
	if n == nil {
		fmt.Fprintf(w, ":nil\n")
		return
	}
	indent := strings.Repeat("    ", level)
	fmt.Fprintf(w, "%s(%s): ", indent, n.Type())
	switch n.Type() {

	case NodeTypeList:
		fmt.Fprintf(w, "[%d]\n", n.Len())
		for _, child := range n.elements() {
			printLevel(w, child, level+1)
		}

	case NodeTypeSymbol, NodeTypeNumber:
		fmt.Fprintf(w, "%s\n", Encode(n))

	default:
		panic("unknown node type")
	}
}

// Encode transforms a node into its printable text representation
func Encode(n *Node) string {
	var b strings.Builder
	encodeNode(&b, n)
	return b.String()
}

func encodeNode(b *strings.Builder, n *Node) {
	if n == nil {
		b.WriteString(":nil")
		return
	}
	switch n.Type() {
	case NodeTypeList:
		b.WriteByte('(')
		for i, child := range n.elements() {
			if i > 0 {
				b.WriteByte(' ')
			}
			encodeNode(b, child)
		}
		b.WriteByte(')')

	case NodeTypeSymbol:
		b.WriteString(n.Symbol())

	case NodeTypeNumber:
		b.WriteString(FormatNumber(n.Number()))

	default:
		panic("unknown node type")
	}
}

// FormatNumber returns the shortest decimal representation of f that parses
// back to the same value. Integral values have no fractional part.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
