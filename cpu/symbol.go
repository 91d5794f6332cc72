package cpu

import (
	"iter"
)

// SymbolTable maps names to memory addresses, in definition order.
type SymbolTable struct {
	Base  int // Address handed out by the first Allocate.
	Limit int // Maximum number of entries, or 0 for no limit.

	names []string
	addr  map[string]int
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable(base, limit int) *SymbolTable {
	return &SymbolTable{
		Base:  base,
		Limit: limit,
		addr:  make(map[string]int),
	}
}

// Len returns the number of symbols.
func (st *SymbolTable) Len() int {
	return len(st.names)
}

// Has returns true if the name is defined.
func (st *SymbolTable) Has(name string) (ok bool) {
	_, ok = st.addr[name]
	return
}

// Lookup returns the address of a name.
func (st *SymbolTable) Lookup(name string) (addr int, ok bool) {
	addr, ok = st.addr[name]
	return
}

// Define binds a name to an explicit address, replacing any prior binding.
func (st *SymbolTable) Define(name string, addr int) (err error) {
	_, ok := st.addr[name]
	if !ok {
		if st.Limit > 0 && len(st.names) >= st.Limit {
			err = ErrVariableOverflow
			return
		}
		if st.addr == nil {
			st.addr = make(map[string]int)
		}
		st.names = append(st.names, name)
	}
	st.addr[name] = addr

	return
}

// Allocate returns the address of a name, binding it to the next
// sequential address if it is not yet defined.
func (st *SymbolTable) Allocate(name string) (addr int, err error) {
	addr, ok := st.addr[name]
	if ok {
		return
	}

	addr = st.Base + len(st.names)
	err = st.Define(name, addr)

	return
}

// All returns an iterator over the names and addresses in definition order.
func (st *SymbolTable) All() iter.Seq2[string, int] {
	return func(yield func(name string, addr int) bool) {
		for _, name := range st.names {
			if !yield(name, st.addr[name]) {
				return
			}
		}
	}
}
