package cpu

import (
	"fmt"
	"iter"
	"strings"
)

// Statement is an assembled instruction with its source location.
type Statement struct {
	LineNo  int
	Address int
	Words   []string
	Word    Word
}

// Program is an assembled memory image and its listing.
type Program struct {
	Memory     Memory
	Statements []Statement
}

// Debug returns the statement assembled at an address, or nil.
func (prog *Program) Debug(addr int) (stmt *Statement) {
	for n, st := range prog.Statements {
		if st.Address == addr {
			stmt = &prog.Statements[n]
			break
		}
	}

	return
}

// LineNo returns the source line of the statement at an address, or 0.
func (prog *Program) LineNo(addr int) int {
	stmt := prog.Debug(addr)
	if stmt == nil {
		return 0
	}

	return stmt.LineNo
}

// Codes returns an iterator over the addresses and words of the
// assembled instructions.
func (prog *Program) Codes() iter.Seq2[int, Word] {
	return func(yield func(addr int, word Word) bool) {
		for _, st := range prog.Statements {
			if !yield(st.Address, st.Word) {
				return
			}
		}
	}
}

// String renders the memory image as a 10x10 grid.
func (prog *Program) String() string {
	return prog.Memory.String()
}

// String renders memory as a 10x10 grid of three digit cells.
func (mem *Memory) String() string {
	var sb strings.Builder

	for row := range 10 {
		for col := range 10 {
			if col != 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%03d", int(mem[row*10+col]))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
