package cpu

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrInvalidOpcode        = errors.New(f("invalid opcode"))
	ErrUnsupportedOperation = errors.New(f("unsupported alu operation"))
	ErrOutOfRange           = errors.New(f("out of range access"))
	ErrHalted               = errors.New(f("halted"))
	ErrStackEmpty           = errors.New(f("stack empty"))
	ErrStackFull            = errors.New(f("stack full"))
	ErrImageSize            = errors.New(f("image larger than memory"))
	ErrChannelInvalid       = errors.New(f("channel invalid"))

	// Instruction decode errors
	ErrOpcodeOperand = errors.New(f("operand"))

	// Loader and assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrMacroSyntax        = errors.New(f(".macro syntax"))
	ErrMacroNesting       = errors.New(f(".macro in .macro prohibited"))
	ErrMacroDuplicate     = errors.New(f(".macro duplicated"))
	ErrMacroLonely        = errors.New(f(".macro without .endm"))
	ErrMacroLonelyEndm    = errors.New(f(".endm without .macro"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeMissing      = errors.New(f("operand missing"))
	ErrRegisterInvalid    = errors.New(f("register invalid"))
	ErrValueRange         = errors.New(f("value out of byte range"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
)

// ErrOpcode is a fetched byte with no instruction handler.
type ErrOpcode struct {
	Address int
	Op      CodeOp
}

func (eo ErrOpcode) Error() string {
	return f("invalid opcode 0x%02x at address 0x%02x", uint8(eo.Op), eo.Address)
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	if err == ErrInvalidOpcode {
		return true
	}
	_, ok = err.(ErrOpcode)
	return
}

// ErrAluOp is an ALU operation the ALU does not implement.
type ErrAluOp CodeAluOp

func (ea ErrAluOp) Error() string {
	return f("unsupported alu operation %v", CodeAluOp(ea).String())
}

func (ea ErrAluOp) Is(err error) bool {
	return err == ErrUnsupportedOperation
}

// ErrRange is an access outside of memory or the register file.
type ErrRange struct {
	Space string // "memory" or "register"
	Index int
}

func (er ErrRange) Error() string {
	return f("%v index %d out of range", er.Space, er.Index)
}

func (er ErrRange) Is(err error) (ok bool) {
	if err == ErrOutOfRange {
		return true
	}
	_, ok = err.(ErrRange)
	return
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
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

type ErrMacro struct {
	Macro string
	Line  int
	Err   error
}

func (err ErrMacro) Error() string {
	return f("macro %v line %v %v", err.Macro, err.Line, err.Err.Error())
}

func (err ErrMacro) Unwrap() error {
	return err.Err
}

// ErrInstruction is a failure while executing the instruction at Address.
type ErrInstruction struct {
	Address int
	Code    Code
	Err     error
}

func (err *ErrInstruction) Error() string {
	return f("0x%02x '%v' %v", err.Address, err.Code, err.Err)
}

func (err *ErrInstruction) Unwrap() error {
	return err.Err
}
