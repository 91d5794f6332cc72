// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/cardiac/io"
)

// Channel is an I/O channel interface.
type Channel io.Channel

// CodeChannel is an IO channel index type.
type CodeChannel int

const (
	CHANNEL_ID_DECK = CodeChannel(0) // Input consumed by IN.
	CHANNEL_ID_TAPE = CodeChannel(1) // Output produced by OUT.
)

// HaltCause records why the CPU stopped running.
type HaltCause int

//go:generate go tool stringer -linecomment -type=HaltCause
const (
	HALT_NONE          = HaltCause(0) // running
	HALT_INSTRUCTION   = HaltCause(1) // halt
	HALT_UNKNOWN       = HaltCause(2) // unknown opcode
	HALT_END_OF_MEMORY = HaltCause(3) // end of memory
	HALT_FAULT         = HaltCause(4) // fault
)

// Cpu is the simulation context for the cardiac processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Memory      Memory    // Memory cells.
	Pc          int       // Program counter.
	Ir          Opcode    // Last decoded opcode.
	Accumulator Word      // Accumulator register.
	Running     bool      // Cleared when the CPU halts.
	Halt        HaltCause // Reason for the most recent halt.

	Ticks int // CPU ticks counter.

	channel [2]Channel // IO channels.
}

// NewCpu creates a new, halted CPU.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, int] {
	return maps.All(sysDefine)
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{"pc", "ir", "acc", "halt", "ret"}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%02d", cpu.Pc)
		case "ir":
			strval = cpu.Ir.String()
		case "acc":
			strval = fmt.Sprintf("%d", int(cpu.Accumulator))
		case "halt":
			strval = cpu.Halt.String()
		case "ret":
			strval = fmt.Sprintf("%03d", int(cpu.Memory[ADDR_RETURN]))
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// SetChannel sets a channel index to a channel simulation model.
func (cpu *Cpu) SetChannel(index CodeChannel, channel Channel) {
	cpu.channel[int(index)] = channel
}

// GetChannel gets the channel simulation model by index.
func (cpu *Cpu) GetChannel(ch CodeChannel) (channel Channel, err error) {
	index := int(ch)
	if index < 0 || index >= len(cpu.channel) || cpu.channel[index] == nil {
		err = ErrChannelInvalid
		return
	}

	channel = cpu.channel[index]
	return
}

// Reset the CPU state.
// - Loads the memory image.
// - Seeds cell 0 with the constant 1.
// - Clears the accumulator and statistics counters.
// - Rewinds all IO channels.
// - Starts execution at the entry address.
func (cpu *Cpu) Reset(image Memory, entry int) (err error) {
	if entry < 0 || entry >= MEMORY_SIZE {
		err = ErrAddressInvalid(entry)
		return
	}

	if cpu.Verbose {
		log.Printf("cpu: reset, entry %02d", entry)
	}

	cpu.Memory = image
	cpu.Memory[ADDR_ONE] = 1
	cpu.Pc = entry
	cpu.Ir = OP_IN
	cpu.Accumulator = 0
	cpu.Running = true
	cpu.Halt = HALT_NONE
	cpu.Ticks = 0

	for _, channel := range cpu.channel {
		if channel == nil {
			continue
		}
		channel.Rewind()
	}

	return
}

// stop halts the CPU, keeping the first recorded cause.
func (cpu *Cpu) stop(cause HaltCause) {
	cpu.Running = false
	if cpu.Halt == HALT_NONE {
		cpu.Halt = cause
	}
}

// Tick executes a single fetch-decode-execute cycle.
func (cpu *Cpu) Tick() (err error) {
	if !cpu.Running {
		err = ErrHalted
		return
	}

	word := cpu.Memory[cpu.Pc]
	op, addr := word.Decode()
	cpu.Ir = op

	if cpu.Verbose {
		log.Printf("%02d: %03d %v (acc %d)", cpu.Pc, int(word), word, int(cpu.Accumulator))
	}

	next_pc, err := cpu.Execute(op, addr)
	if err != nil {
		cpu.stop(HALT_FAULT)
		return
	}

	cpu.Pc = next_pc
	cpu.Ticks += 1

	if cpu.Pc >= MEMORY_SIZE {
		cpu.stop(HALT_END_OF_MEMORY)
	}

	if cpu.Verbose && !cpu.Running {
		log.Printf("cpu: %v", cpu.Halt)
	}

	return
}

// cell returns a reference to a memory cell.
func (cpu *Cpu) cell(addr int) (cell *Word, err error) {
	if addr < 0 || addr >= MEMORY_SIZE {
		err = ErrAddressInvalid(addr)
		return
	}

	cell = &cpu.Memory[addr]
	return
}

// Execute executes a single decoded instruction, and returns the address
// of the next instruction.
func (cpu *Cpu) Execute(op Opcode, addr int) (next_pc int, err error) {
	next_pc = cpu.Pc + 1

	var cell *Word
	switch op {
	case OP_TEST, OP_JUMP, OP_HALT:
		// No memory operand.
	default:
		if !op.Valid() {
			break
		}
		cell, err = cpu.cell(addr)
		if err != nil {
			return
		}
	}

	switch op {
	case OP_IN:
		var deck Channel
		deck, err = cpu.GetChannel(CHANNEL_ID_DECK)
		if err != nil {
			return
		}
		var value int16
		value, err = deck.Receive()
		if err != nil {
			return
		}
		*cell = Word(value)
	case OP_LOAD:
		cpu.Accumulator = *cell
	case OP_ADD:
		cpu.Accumulator += *cell
	case OP_TEST:
		if cpu.Accumulator < 0 {
			next_pc = addr
		}
	case OP_SHIFT:
		cpu.Accumulator = doShift(cpu.Accumulator, *cell)
	case OP_OUT:
		var tape Channel
		tape, err = cpu.GetChannel(CHANNEL_ID_TAPE)
		if err != nil {
			return
		}
		err = tape.Send(int16(*cell))
		if err != nil {
			return
		}
	case OP_STORE:
		*cell = cpu.Accumulator
	case OP_SUB:
		cpu.Accumulator -= *cell
	case OP_JUMP:
		cpu.Memory[ADDR_RETURN] = MakeWord(OP_JUMP, next_pc)
		next_pc = addr
	case OP_HALT:
		cpu.stop(HALT_INSTRUCTION)
	default:
		// Unknown opcodes halt the machine, they are not an error.
		cpu.stop(HALT_UNKNOWN)
	}

	return
}

// doShift shifts the accumulator left by the tens digit of code, then
// right by the units digit of code, in decimal.
func doShift(acc Word, code Word) (output Word) {
	digits := int(code)
	if digits < 0 {
		digits = -digits
	}
	left := (digits / 10) % 10
	right := digits % 10

	output = acc
	for range left {
		output *= 10
	}
	for range right {
		output /= 10
	}

	return
}
