package cpu

import (
	"fmt"
	"strings"
)

const (
	MEMORY_SIZE   = 100 // Number of memory cells.
	ADDR_ONE      = 0   // Cell seeded with the constant 1 at reset.
	ADDR_RETURN   = 99  // Cell written with the return word by JUMP.
	ORIGIN        = 10  // Address of the first assembled instruction.
	VARIABLE_BASE = 1   // Address of the first allocated variable.

	VARIABLE_LIMIT = ORIGIN - VARIABLE_BASE // Variables that fit below ORIGIN.
)

// Word is the content of a single memory cell.
type Word int16

// Memory is the complete memory image of the machine.
type Memory [MEMORY_SIZE]Word

// Opcode is the operation selector of an instruction word.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_IN    = Opcode(0) // IN
	OP_LOAD  = Opcode(1) // LOAD
	OP_ADD   = Opcode(2) // ADD
	OP_TEST  = Opcode(3) // TEST
	OP_SHIFT = Opcode(4) // SHIFT
	OP_OUT   = Opcode(5) // OUT
	OP_STORE = Opcode(6) // STORE
	OP_SUB   = Opcode(7) // SUB
	OP_JUMP  = Opcode(8) // JUMP
	OP_HALT  = Opcode(9) // HALT
)

// mnemonicMap maps upper case mnemonics to opcodes.
var mnemonicMap = map[string]Opcode{}

func init() {
	for op := OP_IN; op <= OP_HALT; op++ {
		mnemonicMap[op.String()] = op
	}
}

// LookupMnemonic returns the opcode for a mnemonic, ignoring case.
func LookupMnemonic(mnemonic string) (op Opcode, ok bool) {
	op, ok = mnemonicMap[strings.ToUpper(mnemonic)]
	return
}

// Valid returns true if the opcode is one of the ten machine operations.
func (op Opcode) Valid() bool {
	return op >= OP_IN && op <= OP_HALT
}

// Operands returns the number of operand tokens the mnemonic takes.
func (op Opcode) Operands() int {
	if op == OP_HALT {
		return 0
	}
	return 1
}

// MakeWord packs an opcode and an address into an instruction word.
func MakeWord(op Opcode, addr int) Word {
	return Word(int(op)*100 + addr)
}

// Decode splits a word into its opcode and address.
// Negative words decode with truncated division, as the machine does.
func (word Word) Decode() (op Opcode, addr int) {
	op = Opcode(int(word) / 100)
	addr = int(word) % 100
	return
}

// String returns the assembly language representation of the word.
func (word Word) String() string {
	op, addr := word.Decode()
	switch {
	case !op.Valid() || addr < 0:
		return fmt.Sprintf("%d", int(word))
	case op == OP_HALT && addr == 0:
		return op.String()
	default:
		return fmt.Sprintf("%v %02d", op, addr)
	}
}
