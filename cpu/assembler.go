// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Macro represents a macro definition in the assembly language.
type Macro struct {
	LineNo int      // Line number of the macro definition.
	Args   []string // Arguments for the macro.
	Lines  []string // Lines of macro text to expand.
}

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

// Assembler is a single pass macro assembler for the LS-8.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.

	predefine map[string]string   // Predefines
	Label     map[string]int      // Map of labels to addresses.
	Equate    map[string]string   // Map of equates.
	Macro     map[string](*Macro) // Map of macros.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// regMap is a map of register names to register indexes.
var regMap = map[string]uint8{
	"r0": 0,
	"r1": 1,
	"r2": 2,
	"r3": 3,
	"r4": 4,
	"r5": 5,
	"r6": 6,
	"r7": 7,
	"sp": SP,
}

// opMap is a map of mnemonics to opcodes.
var opMap = func() map[string]CodeOp {
	ops := make(map[string]CodeOp, len(Opcodes))
	for _, op := range Opcodes {
		ops[op.String()] = op
	}
	return ops
}()

// parseInt parses a number, with an optional '~' complement prefix.
func parseInt(word string) (value int64, err error) {
	invert := false
	if len(word) > 0 && word[0] == '~' {
		invert = true
		word = word[1:]
	}
	value, err = strconv.ParseInt(word, 0, 32)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	if invert {
		value = ^value
	}

	return
}

// valueOf returns the byte value of a simple word.
// Negative numbers down to -128 are stored in two's complement.
func (asm *Assembler) valueOf(word string) (value uint8, err error) {
	v64, err := parseInt(word)
	if err != nil {
		return
	}

	if v64 < -128 || v64 > 0xff {
		err = ErrValueRange
		return
	}

	value = uint8(v64)
	return
}

// register returns the register index named by word.
func (asm *Assembler) register(word string) (reg uint8, err error) {
	reg, ok := regMap[strings.ToLower(word)]
	if !ok {
		err = ErrRegisterInvalid
	}
	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var v64 int64
		v64, err = parseInt(str)
		if err != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			err = nil
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	for key, addr := range asm.Label {
		if _, ok := pred[key]; !ok {
			pred[key] = starlark.MakeInt(addr)
		}
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// parseLine parses a single line into words, handling expressions,
// equates, labels and macro expansion.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do 'x' evaluations
	re := regexp.MustCompile(`'\\?[^']'`)
	line = re.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			str = str[1:]
			switch str {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "r":
				str = "\r"
			case "e":
				str = "\033"
			default:
				return word
			}
		} else if len(str) != 1 {
			return word
		}
		return fmt.Sprintf("%v", str[0])
	})

	// Do $() evaluations
	re = regexp.MustCompile(`\$\([^\$]*\)`)
	line = re.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%d", value)
	})
	if err != nil {
		return
	}

	words = slices.DeleteFunc(strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	}), func(a string) bool { return len(a) == 0 })

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	for strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}

		if asm.Label == nil {
			asm.Label = make(map[string]int, 16)
		}
		asm.Label[label] = asm.currentAddress()
		words = words[1:]
		if len(words) == 0 {
			return
		}
	}

	// .macro processing
	macro, ok := asm.Macro[words[0]]
	if ok {
		name := words[0]

		args := words[1:]
		if len(args) != len(macro.Args) {
			err = ErrMacroSyntax
			return
		}
		// Turn args into equs
		old_equate := maps.Clone(asm.Equate)
		for n, arg := range macro.Args {
			asm.Equate[arg] = words[1+n]
		}
		defer func() { asm.Equate = old_equate }()

		for n, line := range macro.Lines {
			lineno := macro.LineNo + n

			line = strings.ReplaceAll(line, "@", fmt.Sprintf("%v_%v_", name, lineno))
			words, err = asm.parseLine(line, lineno)
			if err != nil {
				err = &ErrMacro{Macro: name, Line: lineno, Err: err}
				return
			}

			err = asm.parseWords(words, lineno)
			if err != nil {
				err = &ErrMacro{Macro: name, Line: lineno, Err: err}
				return
			}
		}

		words = nil
		return
	}

	return
}

// currentAddress gets the address of the next generated byte.
func (asm *Assembler) currentAddress() int {
	if len(asm.Opcode) == 0 {
		return 0
	}

	last := asm.Opcode[len(asm.Opcode)-1]

	return last.Address + len(last.Codes)
}

// Parse parses an input stream into a Program containing opcodes.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {

	scanner := bufio.NewScanner(input)

	var line string
	var lineno int
	var macro *Macro

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	clear(asm.Label)
	asm.Opcode = asm.Opcode[:0]
	if asm.Macro == nil {
		asm.Macro = make(map[string](*Macro))
	}
	clear(asm.Macro)
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])
		words := strings.Fields(line)

		// .macro NAME arg...
		if len(words) > 0 && words[0] == ".macro" {
			if macro != nil {
				err = ErrMacroNesting
				return
			}
			if len(words) < 2 {
				err = ErrMacroSyntax
				return
			}
			_, ok := asm.Macro[words[1]]
			if ok {
				err = ErrMacroDuplicate
				return
			}
			macro = &Macro{
				LineNo: lineno + 1,
			}
			if len(words) > 2 {
				macro.Args = words[2:]
			}
			asm.Macro[words[1]] = macro
			continue
		}

		if len(words) > 0 && words[0] == ".endm" {
			if macro == nil {
				err = ErrMacroLonelyEndm
				return
			}
			macro = nil
			continue
		}

		if macro != nil {
			macro.Lines = append(macro.Lines, line)
			continue
		}

		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if macro != nil {
		err = ErrMacroLonely
		return
	}

	if asm.currentAddress() > MEMORY_SIZE {
		err = ErrImageSize
		return
	}

	// Final linking of labels.
	for n := range asm.Opcode {
		op := &asm.Opcode[n]

		if len(op.LinkLabel) == 0 {
			continue
		}
		label := op.LinkLabel
		address, ok := asm.Label[label]
		if !ok {
			lineno = op.LineNo
			line = strings.Join(op.Words, " ")
			err = ErrLabelMissing(label)
			return
		}
		if len(op.Codes) < 1 {
			log.Fatalf("Unable to link label '%s' to line %d: %v", label, op.LineNo, op.Words)
		}
		op.Codes[len(op.Codes)-1] = uint8(address)
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
	}

	return
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	var codes []uint8
	var label string

	// no-op
	if len(words) == 0 {
		return
	}

	initial_words := words

	defer func() {
		if len(codes) == 0 {
			return
		}
		opcode := Opcode{LineNo: lineno, Address: asm.currentAddress(), Words: initial_words, Codes: codes, LinkLabel: label}
		asm.Opcode = append(asm.Opcode, opcode)
	}()

	// .db VALUE... emits raw bytes.
	if words[0] == ".db" {
		if len(words) < 2 {
			err = ErrOpcodeMissing
			return
		}
		for _, word := range words[1:] {
			var value uint8
			value, err = asm.valueOf(word)
			if err != nil {
				codes = nil
				return
			}
			codes = append(codes, value)
		}
		return
	}

	op, ok := opMap[strings.ToLower(words[0])]
	if !ok {
		err = ErrInstructionInvalid
		return
	}

	args := words[1:]
	need := op.OperandNeed()
	if len(args) < need {
		err = ErrOpcodeMissing
		return
	}
	if len(args) > need {
		err = ErrOpcodeExtraArgs
		return
	}

	code := Code{Op: op}

	switch op {
	case OP_LDI:
		var reg, value uint8
		reg, err = asm.register(args[0])
		if err != nil {
			return
		}
		value, err = asm.valueOf(args[1])
		if err != nil {
			if _, is_reg := regMap[strings.ToLower(args[1])]; is_reg || !isLabel(args[1]) {
				return
			}
			// Resolved when linking.
			err = nil
			label = args[1]
		}
		code.Operands = []uint8{reg, value}
	default:
		for _, arg := range args {
			var reg uint8
			reg, err = asm.register(arg)
			if err != nil {
				return
			}
			code.Operands = append(code.Operands, reg)
		}
	}

	codes = code.Bytes()

	return
}

var labelRegexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// isLabel returns true if word could be a label name.
func isLabel(word string) bool {
	return labelRegexp.MatchString(word)
}
