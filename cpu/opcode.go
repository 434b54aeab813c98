package cpu

import (
	"fmt"
	"strings"
)

// CodeOp is an instruction opcode byte.
// The upper two bits of the opcode are the operand count.
type CodeOp uint8

//go:generate go tool stringer -linecomment -type=CodeOp
const (
	OP_HLT  = CodeOp(0b0000_0001) // hlt
	OP_RET  = CodeOp(0b0001_0001) // ret
	OP_PUSH = CodeOp(0b0100_0101) // push
	OP_POP  = CodeOp(0b0100_0110) // pop
	OP_PRN  = CodeOp(0b0100_0111) // prn
	OP_CALL = CodeOp(0b0101_0000) // call
	OP_JMP  = CodeOp(0b0101_0100) // jmp
	OP_JEQ  = CodeOp(0b0101_0101) // jeq
	OP_JNE  = CodeOp(0b0101_0110) // jne
	OP_LDI  = CodeOp(0b1000_0010) // ldi
	OP_ADD  = CodeOp(0b1010_0000) // add
	OP_MUL  = CodeOp(0b1010_0010) // mul
	OP_CMP  = CodeOp(0b1010_0111) // cmp
)

// Opcodes lists every opcode the CPU executes.
var Opcodes = []CodeOp{
	OP_HLT, OP_RET,
	OP_PUSH, OP_POP, OP_PRN,
	OP_CALL, OP_JMP, OP_JEQ, OP_JNE,
	OP_LDI, OP_ADD, OP_MUL, OP_CMP,
}

// Valid returns true if the opcode is part of the instruction set.
func (op CodeOp) Valid() bool {
	switch op {
	case OP_HLT, OP_RET,
		OP_PUSH, OP_POP, OP_PRN,
		OP_CALL, OP_JMP, OP_JEQ, OP_JNE,
		OP_LDI, OP_ADD, OP_MUL, OP_CMP:
		return true
	}

	return false
}

// OperandNeed returns the number of operand bytes that follow the opcode.
func (op CodeOp) OperandNeed() int {
	return int(op >> 6)
}

// CodeAluOp is an ALU operation type.
type CodeAluOp int

//go:generate go tool stringer -linecomment -type=CodeAluOp
const (
	ALU_OP_ADD = CodeAluOp(0) // add
	ALU_OP_MUL = CodeAluOp(1) // mul
	ALU_OP_CMP = CodeAluOp(2) // cmp
)

// CodeStep tells the dispatcher what to do with the program counter
// once a handler returns.
type CodeStep int

//go:generate go tool stringer -linecomment -type=CodeStep
const (
	STEP_NEXT = CodeStep(0) // next
	STEP_JUMP = CodeStep(1) // jump
)

// CodeChannel is an IO channel index type.
type CodeChannel int

//go:generate go tool stringer -linecomment -type=CodeChannel
const (
	CHANNEL_ID_ROM  = CodeChannel(0) // rom
	CHANNEL_ID_TAPE = CodeChannel(1) // tape
)

// CodeFlag is the flags register, set by CMP.
type CodeFlag uint8

const (
	FLAG_E = CodeFlag(0b001) // Equal
	FLAG_G = CodeFlag(0b010) // Greater than
	FLAG_L = CodeFlag(0b100) // Less than
)

// String returns the flags as 'LGE', with '-' for clear bits.
func (fl CodeFlag) String() string {
	out := []byte("---")
	if fl&FLAG_L != 0 {
		out[0] = 'L'
	}
	if fl&FLAG_G != 0 {
		out[1] = 'G'
	}
	if fl&FLAG_E != 0 {
		out[2] = 'E'
	}
	return string(out)
}

// Code is a single decoded instruction with its operand bytes.
type Code struct {
	Op       CodeOp
	Operands []uint8
}

// MakeCode creates an instruction.
func MakeCode(op CodeOp, operands ...uint8) Code {
	return Code{Op: op, Operands: operands}
}

// Len returns the length of the instruction in bytes.
func (code Code) Len() int {
	return 1 + code.Op.OperandNeed()
}

// Bytes returns the memory encoding of the instruction.
func (code Code) Bytes() (out []uint8) {
	out = append(out, uint8(code.Op))
	out = append(out, code.Operands...)
	return
}

// operand returns the n'th operand, or 0 if missing.
func (code Code) operand(n int) uint8 {
	if n < len(code.Operands) {
		return code.Operands[n]
	}
	return 0
}

// String returns the assembly language representation of this instruction.
func (code Code) String() string {
	words := []string{code.Op.String()}

	for n, operand := range code.Operands {
		if code.Op == OP_LDI && n == 1 {
			words = append(words, fmt.Sprintf("0x%02x", operand))
		} else {
			words = append(words, fmt.Sprintf("r%d", operand))
		}
	}

	return strings.Join(words, " ")
}
