// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"iter"
	"log"

	"github.com/ezrec/cardiac/config"
	"github.com/ezrec/cardiac/cpu"
	"github.com/ezrec/cardiac/internal"
	"github.com/ezrec/cardiac/io"
)

// Emulator state. CPU + IO channels + program.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	Deck io.Deck // Input deck IO channel.
	Tape io.Tape // Output tape IO channel.

	Entry    int // Address of the first executed instruction.
	MaxTicks int // Tick limit for Run, or 0 for none.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
		Entry:   cpu.ORIGIN,
	}

	emu.Deck.Capacity = io.DECK_SIZE

	emu.Cpu.SetChannel(cpu.CHANNEL_ID_DECK, &emu.Deck)
	emu.Cpu.SetChannel(cpu.CHANNEL_ID_TAPE, &emu.Tape)

	return
}

// Configure applies the deck and machine options.
func (emu *Emulator) Configure(cfg config.Config) {
	emu.Deck.Capacity = cfg.Deck.Capacity
	emu.Deck.Exhausted = cfg.Deck.Exhausted
	emu.Entry = cfg.Machine.Entry
	emu.MaxTicks = cfg.Machine.MaxTicks
	emu.Verbose = cfg.Machine.Verbose
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, int] {
	return internal.IterSeq2Concat(
		emu.Cpu.Defines(),
		emu.Deck.Defines(),
	)
}

// Reset the machine to the start of the program.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	err = emu.Cpu.Reset(emu.Program.Memory, emu.Entry)
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Printf("emulator: %d cards, entry %02d", len(emu.Deck.Cards), emu.Entry)
	}

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// LineNo returns the current line number for the executing instruction.
func (emu *Emulator) LineNo() int {
	return emu.Program.LineNo(emu.Cpu.Pc)
}

// Tick performs a single tick of the emulator.
// done is set once the machine has halted.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	if !emu.Cpu.Running {
		done = true
		return
	}

	pc := emu.Cpu.Pc
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Address: pc, Err: err}
		}
	}()

	if emu.MaxTicks > 0 && emu.Cpu.Ticks >= emu.MaxTicks {
		err = ErrTickLimit
		return
	}

	err = emu.Cpu.Tick()
	if err != nil {
		return
	}

	done = !emu.Cpu.Running

	return
}

// Run ticks the emulator until it halts.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
