package emulator

import (
	"bytes"
	"errors"
	"maps"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/cardiac/config"
	"github.com/ezrec/cardiac/cpu"
	"github.com/ezrec/cardiac/io"
)

// newTestEmulator assembles a program, and loads a deck of cards.
func newTestEmulator(t *testing.T, source string, cards string) (emu *Emulator, tape_output *bytes.Buffer) {
	emu = NewEmulator()

	asm := &cpu.Assembler{}
	for key, value := range emu.Defines() {
		asm.Predefine(key, value)
	}
	prog, err := asm.Parse(strings.NewReader(source))
	if err != nil {
		t.Fatal(err)
	}
	emu.Program = prog

	err = emu.Deck.Load(strings.NewReader(cards))
	if err != nil {
		t.Fatal(err)
	}

	tape_output = &bytes.Buffer{}
	emu.Tape.Output = tape_output

	return
}

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	assert.Equal(cpu.ORIGIN, emu.Entry)
	assert.Equal(0, emu.MaxTicks)
	assert.Equal(io.DECK_SIZE, emu.Deck.Capacity)

	deck, err := emu.GetChannel(cpu.CHANNEL_ID_DECK)
	assert.NoError(err)
	assert.Equal(&emu.Deck, deck)

	tape, err := emu.GetChannel(cpu.CHANNEL_ID_TAPE)
	assert.NoError(err)
	assert.Equal(&emu.Tape, tape)

	// Nothing to run before a reset.
	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)
}

func TestEmulatorDefines(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Deck.Capacity = 20
	defines := maps.Collect(emu.Defines())

	assert.Equal(20, defines["DECK_SIZE"])
	assert.Equal(cpu.ADDR_RETURN, defines["RETURN"])
	assert.Equal(cpu.ADDR_ONE, defines["ONE"])
	assert.Equal(cpu.ORIGIN, defines["ORIGIN"])
}

func TestEmulatorConfigure(t *testing.T) {
	assert := assert.New(t)

	cfg := config.Default()
	cfg.Deck.Capacity = 5
	cfg.Deck.Exhausted = io.DECK_REPEAT
	cfg.Machine.Entry = 0
	cfg.Machine.MaxTicks = 1000
	cfg.Machine.Verbose = true

	emu := NewEmulator()
	emu.Configure(cfg)

	assert.Equal(5, emu.Deck.Capacity)
	assert.Equal(io.DECK_REPEAT, emu.Deck.Exhausted)
	assert.Equal(0, emu.Entry)
	assert.Equal(1000, emu.MaxTicks)
	assert.True(emu.Verbose)
}

func TestEmulatorEcho(t *testing.T) {
	assert := assert.New(t)

	emu, tape_output := newTestEmulator(t, "IN V\nOUT V\nHALT\n", "42")

	assert.NoError(emu.Reset())
	assert.NoError(emu.Run())

	assert.Equal("42\n", tape_output.String())
	assert.Equal(cpu.HALT_INSTRUCTION, emu.Halt)
	assert.Equal(3, emu.Ticks())
	assert.Equal(1, emu.Tape.Lines)

	// A reset replays the same deck.
	tape_output.Reset()
	assert.NoError(emu.Reset())
	assert.NoError(emu.Run())
	assert.Equal("42\n", tape_output.String())
}

func TestEmulatorHalt(t *testing.T) {
	assert := assert.New(t)

	emu, tape_output := newTestEmulator(t, "HALT\n", "")

	assert.NoError(emu.Reset())
	assert.Equal(1, emu.LineNo())

	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.Equal(1, emu.Ticks())
	assert.Equal(cpu.HALT_INSTRUCTION, emu.Halt)
	assert.Equal("", tape_output.String())

	done, err = emu.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.Equal(1, emu.Ticks())
}

func TestEmulatorCountdown(t *testing.T) {
	assert := assert.New(t)

	source := `
# Print N, N-1, ... 1
      IN N
LOOP: LOAD N
      SUB $(ONE)
      TEST DONE
      OUT N
      STORE N
      JUMP LOOP
DONE: HALT
`
	emu, tape_output := newTestEmulator(t, source, "3\n")

	assert.NoError(emu.Reset())
	assert.NoError(emu.Run())

	assert.Equal("3\n2\n1\n", tape_output.String())
	assert.Equal(cpu.HALT_INSTRUCTION, emu.Halt)
	assert.Equal(cpu.Word(0), emu.Memory[1])
}

func TestEmulatorTickLimit(t *testing.T) {
	assert := assert.New(t)

	emu, _ := newTestEmulator(t, "L: JUMP L\n", "")
	emu.MaxTicks = 5

	assert.NoError(emu.Reset())
	err := emu.Run()
	assert.ErrorIs(err, ErrTickLimit)
	assert.Equal(5, emu.Ticks())
	assert.True(emu.Running)

	var runtime *ErrRuntime
	if assert.True(errors.As(err, &runtime)) {
		assert.Equal(1, runtime.LineNo)
		assert.Equal(cpu.ORIGIN, runtime.Address)
	}
}

func TestEmulatorRuntimeError(t *testing.T) {
	assert := assert.New(t)

	emu, _ := newTestEmulator(t, "LOAD 0\nIN X\nHALT\n", "")
	emu.Deck.Exhausted = io.DECK_ERROR

	assert.NoError(emu.Reset())
	err := emu.Run()
	assert.ErrorIs(err, io.ErrDeckEmpty)
	assert.Equal(cpu.HALT_FAULT, emu.Halt)
	assert.False(emu.Running)

	var runtime *ErrRuntime
	if assert.True(errors.As(err, &runtime)) {
		assert.Equal(2, runtime.LineNo)
		assert.Equal(cpu.ORIGIN+1, runtime.Address)
		assert.Contains(runtime.Error(), "line 2")
	}

	emu.Entry = cpu.MEMORY_SIZE
	assert.Equal(cpu.ErrAddressInvalid(cpu.MEMORY_SIZE), emu.Reset())
}

func TestEmulatorBootstrap(t *testing.T) {
	assert := assert.New(t)

	// Cell 0 holds 001, which reads the first card into cell 1.
	emu, tape_output := newTestEmulator(t, "OUT $(ONE)\nHALT\n", "810")
	emu.Entry = 0

	assert.NoError(emu.Reset())
	assert.NoError(emu.Run())

	assert.Equal(cpu.Word(810), emu.Memory[1])
	assert.Equal(cpu.Word(802), emu.Memory[cpu.ADDR_RETURN])
	assert.Equal("1\n", tape_output.String())
	assert.Equal(4, emu.Ticks())
}
