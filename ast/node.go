package ast

import (
	"fmt"
	"math"
)

// Node represents an expression: a symbol, a number or a list of nodes.
// Nodes are immutable once created, so lists may share their elements.
type Node struct {
	nt NodeType
	v  interface{}
}

func newNode(nt NodeType, v interface{}) *Node {
	return &Node{
		nt: nt,
		v:  v,
	}
}

// NewSymbol creates and returns a node of type "symbol"
func NewSymbol(name string) *Node {
	return newNode(NodeTypeSymbol, name)
}

// NewNumber creates and returns a node of type "number"
func NewNumber(f float64) *Node {
	return newNode(NodeTypeNumber, f)
}

// NewList creates and returns a node of type "list" holding a copy of the
// given elements.
func NewList(nodes ...*Node) *Node {
	list := make([]*Node, len(nodes))
	copy(list, nodes)
	return newNode(NodeTypeList, list)
}

// Type returns the type of the node
func (n *Node) Type() NodeType {
	return n.nt
}

// Is returns true if the node is of the given type
func (n *Node) Is(nt NodeType) bool {
	return n != nil && n.nt == nt
}

// IsValue returns true if the node is an atom (symbol or number)
func (n *Node) IsValue() bool {
	return n.nt&nodeTypeValue > 0
}

// IsVector returns true if the node is a list
func (n *Node) IsVector() bool {
	return n.nt&nodeTypeVector > 0
}

// Symbol returns the name of a symbol node
func (n *Node) Symbol() string {
	return n.v.(string)
}

// Number returns the value of a number node
func (n *Node) Number() float64 {
	return n.v.(float64)
}

// List returns a copy of the elements of a list node
func (n *Node) List() []*Node {
	list := n.elements()
	ret := make([]*Node, len(list))
	copy(ret, list)
	return ret
}

// Len returns the number of elements of a list node
func (n *Node) Len() int {
	return len(n.elements())
}

// At returns the i-th element of a list node
func (n *Node) At(i int) *Node {
	return n.elements()[i]
}

// Tail returns a list node with all but the first element of n. The tail of
// an empty list is an empty list.
func (n *Node) Tail() *Node {
	list := n.elements()
	if len(list) == 0 {
		return newNode(NodeTypeList, []*Node{})
	}
	return newNode(NodeTypeList, list[1:])
}

func (n *Node) elements() []*Node {
	return n.v.([]*Node)
}

// Value returns the raw payload of the node
func (n *Node) Value() interface{} {
	if n.IsVector() {
		return n.List()
	}
	return n.v
}

func (n *Node) String() string {
	return Encode(n)
}

// Equal reports whether a and b are structurally equal. Numbers compare by
// value, with NaN equal to NaN.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.nt != b.nt {
		return false
	}
	switch a.nt {
	case NodeTypeSymbol:
		return a.Symbol() == b.Symbol()
	case NodeTypeNumber:
		x, y := a.Number(), b.Number()
		if math.IsNaN(x) && math.IsNaN(y) {
			return true
		}
		return x == y && math.Signbit(x) == math.Signbit(y)
	case NodeTypeList:
		xs, ys := a.elements(), b.elements()
		if len(xs) != len(ys) {
			return false
		}
		for i := range xs {
			if !Equal(xs[i], ys[i]) {
				return false
			}
		}
		return true
	}
	panic(fmt.Sprintf("unknown node type %d", a.nt))
}
