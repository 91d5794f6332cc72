package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpcodeString(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		op   Opcode
		name string
	}){
		{OP_IN, "IN"},
		{OP_LOAD, "LOAD"},
		{OP_ADD, "ADD"},
		{OP_TEST, "TEST"},
		{OP_SHIFT, "SHIFT"},
		{OP_OUT, "OUT"},
		{OP_STORE, "STORE"},
		{OP_SUB, "SUB"},
		{OP_JUMP, "JUMP"},
		{OP_HALT, "HALT"},
		{Opcode(-1), "Opcode(-1)"},
		{Opcode(10), "Opcode(10)"},
	}

	for _, entry := range table {
		assert.Equal(entry.name, entry.op.String())
		op, ok := LookupMnemonic(entry.name)
		assert.Equal(entry.op.Valid(), ok, entry.name)
		if ok {
			assert.Equal(entry.op, op)
		}
	}

	op, ok := LookupMnemonic("store")
	assert.True(ok)
	assert.Equal(OP_STORE, op)

	_, ok = LookupMnemonic("FOO")
	assert.False(ok)
}

func TestWord(t *testing.T) {
	assert := assert.New(t)

	for op := OP_IN; op <= OP_HALT; op++ {
		for addr := range MEMORY_SIZE {
			word := MakeWord(op, addr)
			assert.Equal(int(op)*100+addr, int(word))
			dec_op, dec_addr := word.Decode()
			assert.Equal(op, dec_op)
			assert.Equal(addr, dec_addr)
		}
	}

	assert.Equal("HALT", MakeWord(OP_HALT, 0).String())
	assert.Equal("JUMP 05", MakeWord(OP_JUMP, 5).String())
	assert.Equal("IN 01", Word(1).String())
	assert.Equal("-5", Word(-5).String())
	assert.Equal("1234", Word(1234).String())

	op, addr := Word(-5).Decode()
	assert.Equal(OP_IN, op)
	assert.Equal(-5, addr)

	op, addr = Word(-150).Decode()
	assert.Equal(Opcode(-1), op)
	assert.Equal(-50, addr)
}

func FuzzWord(f *testing.F) {
	f.Add(int16(0))
	f.Add(int16(900))
	f.Add(int16(-1))
	f.Add(int16(32767))

	f.Fuzz(func(t *testing.T, value int16) {
		word := Word(value)
		op, addr := word.Decode()
		assert.Equal(t, word, MakeWord(op, addr))
		assert.True(t, addr > -100 && addr < 100)
	})
}
