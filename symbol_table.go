package lispy

import (
	"github.com/xiam/lispy/ast"
)

type symbolChange struct {
	name    string
	prev    *ast.Node
	existed bool
}

// symbolTable maps names to values. While a transaction is open every Set is
// journaled so it can be undone.
type symbolTable struct {
	n map[string]*ast.Node

	journal []symbolChange
	inTx    bool
}

func newSymbolTable() *symbolTable {
	return &symbolTable{
		n: make(map[string]*ast.Node),
	}
}

func (st *symbolTable) Set(name string, value *ast.Node) {
	if st.inTx {
		prev, existed := st.n[name]
		st.journal = append(st.journal, symbolChange{name: name, prev: prev, existed: existed})
	}
	st.n[name] = value
}

func (st *symbolTable) Get(name string) (*ast.Node, bool) {
	value, ok := st.n[name]
	return value, ok
}

func (st *symbolTable) Names() []string {
	names := make([]string, 0, len(st.n))
	for name := range st.n {
		names = append(names, name)
	}
	return names
}

func (st *symbolTable) Len() int {
	return len(st.n)
}

func (st *symbolTable) begin() {
	st.journal = st.journal[:0]
	st.inTx = true
}

func (st *symbolTable) commit() {
	st.journal = st.journal[:0]
	st.inTx = false
}

func (st *symbolTable) rollback() {
	for i := len(st.journal) - 1; i >= 0; i-- {
		change := st.journal[i]
		if change.existed {
			st.n[change.name] = change.prev
		} else {
			delete(st.n, change.name)
		}
	}
	st.commit()
}
