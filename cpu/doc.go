// Package cpu implements the processor and assembler for the cardiac
// decimal computer.
//
// The machine has 100 memory cells of one signed word each, an
// accumulator and a program counter. Every instruction occupies exactly
// one cell, packed as opcode*100 + address. Cell 0 always holds the
// constant 1 when a run starts, and cell 99 receives the return word of
// the most recent JUMP.
//
// The assembler translates mnemonic source text into a memory image in
// two passes, so that labels may be referenced before they are defined.
package cpu
