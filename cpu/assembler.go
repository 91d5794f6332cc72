// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"io"
	"log"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// KEYWORD_VAR introduces a variable declaration.
const KEYWORD_VAR = "VAR"

// Predefined system names, visible inside $(...) expressions.
var sysDefine = map[string]int{
	"ONE":         ADDR_ONE,
	"RETURN":      ADDR_RETURN,
	"ORIGIN":      ORIGIN,
	"MEMORY_SIZE": MEMORY_SIZE,
}

var (
	wordRe   = regexp.MustCompile(`\$\([^\$]*\)|\S+`)
	symbolRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// Assembler is a two pass assembler for the cardiac machine.
//
// The first pass records the address of every label and the declared
// variables. The second pass encodes instructions and stores variable
// initializers. The symbol tables are rebuilt by every call to Parse.
type Assembler struct {
	Verbose      bool // If set, verbosely logs the assembler actions.
	MaxVariables int  // Variable table capacity; 0 selects VARIABLE_LIMIT.

	Label    *SymbolTable // Map of labels to instruction addresses.
	Variable *SymbolTable // Map of variables to data addresses.

	predefine map[string]int
	ip        int
	lineno    int
}

// Predefine defines a new name or redefines an existing one for use in
// $(...) expressions.
func (asm *Assembler) Predefine(name string, value int) {
	if asm.predefine == nil {
		asm.predefine = map[string]int{name: value}
	} else {
		asm.predefine[name] = value
	}
}

// splitLine splits a source line into its labels and remaining words.
func splitLine(text string) (labels []string, words []string) {
	line, _, _ := strings.Cut(text, "#")

	words = wordRe.FindAllString(line, -1)
	for len(words) > 0 && strings.HasSuffix(words[0], ":") {
		labels = append(labels, strings.TrimSuffix(words[0], ":"))
		words = words[1:]
	}

	return
}

// isDeclaration returns true if the words declare a variable.
func isDeclaration(words []string) bool {
	return len(words) > 0 && strings.EqualFold(words[0], KEYWORD_VAR)
}

// parseDeclaration splits 'VAR name [= value]' into its name and
// initializer text.
func parseDeclaration(words []string) (name string, init string, err error) {
	rest := strings.Join(words[1:], " ")
	name, init, has_init := strings.Cut(rest, "=")
	name = strings.TrimSpace(name)
	init = strings.TrimSpace(init)

	if len(name) == 0 || (has_init && len(init) == 0) {
		err = ErrDeclarationSyntax
		return
	}

	if !symbolRe.MatchString(name) {
		err = ErrSymbolInvalid(name)
		return
	}

	return
}

// checkOperands verifies the operand count of an instruction.
func checkOperands(op Opcode, words []string) (err error) {
	need := op.Operands()
	switch {
	case len(words)-1 < need:
		err = ErrOperandMissing
	case len(words)-1 > need:
		err = ErrOperandExtra
	}

	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int, err error) {
	thread := starlark.Thread{Name: "asm"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, val := range asm.predefine {
		pred[key] = starlark.MakeInt(val)
	}
	for key, val := range asm.Variable.All() {
		pred[key] = starlark.MakeInt(val)
	}
	for key, val := range asm.Label.All() {
		pred[key] = starlark.MakeInt(val)
	}
	pred["HERE"] = starlark.MakeInt(asm.ip)
	pred["LINENO"] = starlark.MakeInt(asm.lineno)

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = int(st_int64)

	return
}

// valueOf returns the value of a numeric literal or $(...) expression.
func (asm *Assembler) valueOf(word string) (value int, err error) {
	if strings.HasPrefix(word, "$(") && strings.HasSuffix(word, ")") {
		return asm.parenEval(word[2 : len(word)-1])
	}

	v64, err := strconv.ParseInt(word, 10, 64)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}
	value = int(v64)

	return
}

// wordOf returns the value of an initializer, which must fit in a word.
func (asm *Assembler) wordOf(text string) (word Word, err error) {
	value, err := asm.valueOf(text)
	if err != nil {
		return
	}

	if value < -32768 || value > 32767 {
		err = ErrValueRange(value)
		return
	}

	word = Word(value)
	return
}

// addressOf resolves an operand to a memory address.
// Literals start with a digit or a minus sign. Names are looked up as
// labels first, then as variables, and are otherwise allocated as new
// variables.
func (asm *Assembler) addressOf(word string) (addr int, err error) {
	switch {
	case word[0] == '-' || (word[0] >= '0' && word[0] <= '9') || strings.HasPrefix(word, "$("):
		addr, err = asm.valueOf(word)
		if err != nil {
			return
		}
		if addr < 0 || addr >= MEMORY_SIZE {
			err = ErrAddressRange(addr)
			return
		}
	case !symbolRe.MatchString(word):
		err = ErrSymbolInvalid(word)
	default:
		var ok bool
		addr, ok = asm.Label.Lookup(word)
		if ok {
			return
		}
		addr, err = asm.Variable.Allocate(word)
	}

	return
}

// Parse parses an input stream into a Program.
// On any error no Program is returned.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	var lines []string

	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	limit := asm.MaxVariables
	if limit == 0 {
		limit = VARIABLE_LIMIT
	}
	if limit < 0 || limit > VARIABLE_LIMIT {
		err = ErrVariableLimit
		return
	}

	asm.Label = NewSymbolTable(ORIGIN, 0)
	asm.Variable = NewSymbolTable(VARIABLE_BASE, limit)
	if asm.predefine == nil {
		asm.predefine = make(map[string]int)
	}
	for key, val := range sysDefine {
		if _, ok := asm.predefine[key]; !ok {
			asm.predefine[key] = val
		}
	}

	err = asm.firstPass(lines)
	if err != nil {
		return
	}

	prog = &Program{}
	err = asm.secondPass(lines, prog)
	if err != nil {
		prog = nil
		return
	}

	return
}

// firstPass records labels and declared variables.
func (asm *Assembler) firstPass(lines []string) (err error) {
	var line string

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: asm.lineno, Line: line, Err: err}
		}
	}()

	asm.ip = ORIGIN
	for n, text := range lines {
		asm.lineno = n + 1
		line = strings.TrimSpace(text)

		if asm.Verbose {
			log.Printf("%v: %v\n", asm.lineno, text)
		}

		labels, words := splitLine(line)

		for _, label := range labels {
			if !symbolRe.MatchString(label) {
				err = ErrSymbolInvalid(label)
				return
			}
			if asm.Label.Has(label) {
				err = ErrLabelDuplicate
				return
			}
			if asm.Variable.Has(label) {
				err = ErrSymbolCollision
				return
			}
			err = asm.Label.Define(label, asm.ip)
			if err != nil {
				return
			}
		}

		if len(words) == 0 {
			continue
		}

		if isDeclaration(words) {
			var name string
			name, _, err = parseDeclaration(words)
			if err != nil {
				return
			}
			if asm.Label.Has(name) {
				err = ErrSymbolCollision
				return
			}
			_, err = asm.Variable.Allocate(name)
			if err != nil {
				return
			}
			continue
		}

		op, ok := LookupMnemonic(words[0])
		if !ok {
			err = ErrInstructionInvalid(words[0])
			return
		}
		err = checkOperands(op, words)
		if err != nil {
			return
		}

		if asm.ip >= ADDR_RETURN {
			err = ErrProgramTooLarge
			return
		}
		asm.ip++
	}

	return
}

// secondPass encodes instructions and stores variable initializers.
func (asm *Assembler) secondPass(lines []string, prog *Program) (err error) {
	var line string

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: asm.lineno, Line: line, Err: err}
		}
	}()

	asm.ip = ORIGIN
	for n, text := range lines {
		asm.lineno = n + 1
		line = strings.TrimSpace(text)

		_, words := splitLine(line)
		if len(words) == 0 {
			continue
		}

		if isDeclaration(words) {
			var name, init string
			name, init, err = parseDeclaration(words)
			if err != nil {
				return
			}
			var addr int
			addr, err = asm.Variable.Allocate(name)
			if err != nil {
				return
			}
			if len(init) == 0 {
				continue
			}
			var value Word
			value, err = asm.wordOf(init)
			if err != nil {
				return
			}
			prog.Memory[addr] = value
			if asm.Verbose {
				log.Printf("asm: %02d = %d (%v)", addr, value, name)
			}
			continue
		}

		// Mnemonic and operand count were checked by the first pass.
		op, _ := LookupMnemonic(words[0])

		var addr int
		if op.Operands() > 0 {
			addr, err = asm.addressOf(words[1])
			if err != nil {
				return
			}
		}

		word := MakeWord(op, addr)
		prog.Memory[asm.ip] = word
		prog.Statements = append(prog.Statements, Statement{
			LineNo:  asm.lineno,
			Address: asm.ip,
			Words:   words,
			Word:    word,
		})

		if asm.Verbose {
			log.Printf("asm: %02d %03d %v", asm.ip, word, word)
		}

		asm.ip++
	}

	return
}
