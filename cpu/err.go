package cpu

import (
	"errors"

	"github.com/ezrec/cardiac/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalted         = errors.New(f("cpu halted"))
	ErrChannelInvalid = errors.New(f("channel invalid"))

	// Assembler errors
	ErrLabelDuplicate    = errors.New(f("label duplicated"))
	ErrSymbolCollision   = errors.New(f("name used as both label and variable"))
	ErrVariableOverflow  = errors.New(f("too many variables"))
	ErrVariableLimit     = errors.New(f("variable limit invalid"))
	ErrProgramTooLarge   = errors.New(f("program does not fit in memory"))
	ErrOperandMissing    = errors.New(f("operand missing"))
	ErrOperandExtra      = errors.New(f("excessive operands"))
	ErrDeclarationSyntax = errors.New(f("VAR syntax"))
)

// ErrInstructionInvalid is an unknown mnemonic.
type ErrInstructionInvalid string

func (err ErrInstructionInvalid) Error() string {
	return f("unknown instruction '%v'", string(err))
}

// ErrSymbolInvalid is a malformed label or variable name.
type ErrSymbolInvalid string

func (err ErrSymbolInvalid) Error() string {
	return f("'%v' is not a valid name", string(err))
}

// ErrAddressRange is an assembled operand outside of memory.
type ErrAddressRange int

func (err ErrAddressRange) Error() string {
	return f("address %d out of range", int(err))
}

// ErrAddressInvalid is a runtime memory access outside of memory.
type ErrAddressInvalid int

func (err ErrAddressInvalid) Error() string {
	return f("address %d invalid", int(err))
}

// ErrValueRange is an initializer that does not fit in a word.
type ErrValueRange int

func (err ErrValueRange) Error() string {
	return f("value %d does not fit in a word", int(err))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
