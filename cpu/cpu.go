// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"
	"strings"

	"github.com/ezrec/ls8/io"
)

// Channel is an I/O channel interface.
type Channel io.Channel

const (
	MEMORY_SIZE    = 256  // Bytes of memory.
	REGISTER_COUNT = 8    // Number of registers, including the stack pointer.
	SP             = 7    // Register index of the stack pointer.
	STACK_TOP      = 0xf4 // Reset value of the stack pointer.
)

var _cpu_defines = map[string]string{
	"MEMORY_SIZE": fmt.Sprintf("%d", MEMORY_SIZE),
	"STACK_TOP":   fmt.Sprintf("0x%02x", STACK_TOP),
	"FLAG_E":      fmt.Sprintf("0b%03b", FLAG_E),
	"FLAG_G":      fmt.Sprintf("0b%03b", FLAG_G),
	"FLAG_L":      fmt.Sprintf("0b%03b", FLAG_L),
	"SP":          fmt.Sprintf("r%d", SP),
}

// Cpu is the simulation context for the LS-8 processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Memory   [MEMORY_SIZE]uint8    // Main memory.
	Register [REGISTER_COUNT]uint8 // Register bank, R7 is the stack pointer.
	Pc       int                   // Address of the next instruction.
	Flags    CodeFlag              // Result of the last CMP.
	Halted   bool                  // Set by HLT.

	Ticks int // Instructions executed since reset.

	channel [2]Channel // IO channels.
}

// NewCpu creates a new CPU, with the stack pointer at the top of the stack.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}
	cpu.Register[SP] = STACK_TOP

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// ReadMemory returns the byte at address.
func (cpu *Cpu) ReadMemory(address int) (value uint8, err error) {
	if address < 0 || address >= len(cpu.Memory) {
		err = ErrRange{Space: "memory", Index: address}
		return
	}

	value = cpu.Memory[address]
	return
}

// WriteMemory sets the byte at address.
func (cpu *Cpu) WriteMemory(address int, value uint8) (err error) {
	if address < 0 || address >= len(cpu.Memory) {
		err = ErrRange{Space: "memory", Index: address}
		return
	}

	cpu.Memory[address] = value
	return
}

// ReadRegister returns the value of register index.
func (cpu *Cpu) ReadRegister(index uint8) (value uint8, err error) {
	if int(index) >= len(cpu.Register) {
		err = ErrRange{Space: "register", Index: int(index)}
		return
	}

	value = cpu.Register[index]
	return
}

// WriteRegister sets the value of register index.
func (cpu *Cpu) WriteRegister(index uint8, value uint8) (err error) {
	if int(index) >= len(cpu.Register) {
		err = ErrRange{Space: "register", Index: int(index)}
		return
	}

	cpu.Register[index] = value
	return
}

// peek reads memory for diagnostics, returning 0 when out of range.
func (cpu *Cpu) peek(address int) uint8 {
	value, _ := cpu.ReadMemory(address)
	return value
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{
		"pc",
		"fl",
		"r0", "r1", "r2", "r3", "r4", "r5", "r6",
		"sp",
		"halt",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%02X", cpu.Pc)
		case "fl":
			strval = cpu.Flags.String()
		case "r0", "r1", "r2", "r3", "r4", "r5", "r6":
			strval = fmt.Sprintf("%02X", cpu.Register[reg[1]-'0'])
		case "sp":
			strval = fmt.Sprintf("%02X", cpu.Register[SP])
		case "halt":
			strval = "false"
			if cpu.Halted {
				strval = "true"
			}
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// Trace returns a single line summary of the CPU state:
// the program counter, the next three bytes of memory, and all registers.
func (cpu *Cpu) Trace() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "TRACE: %02X | %02X %02X %02X |",
		cpu.Pc,
		cpu.peek(cpu.Pc),
		cpu.peek(cpu.Pc+1),
		cpu.peek(cpu.Pc+2),
	)

	for _, reg := range cpu.Register {
		fmt.Fprintf(&sb, " %02X", reg)
	}

	return sb.String()
}

// Reset the CPU state.
// - Clears memory, registers and flags.
// - Sets the stack pointer to STACK_TOP and the program counter to 0.
// - Rewinds all IO channels.
// - Copies the boot channel into memory, starting at address 0.
func (cpu *Cpu) Reset(boot CodeChannel) (err error) {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Memory[:])
	clear(cpu.Register[:])
	cpu.Register[SP] = STACK_TOP
	cpu.Pc = 0
	cpu.Flags = 0
	cpu.Halted = false
	cpu.Ticks = 0

	for _, channel := range cpu.channel {
		if channel == nil {
			continue
		}
		channel.Rewind()
	}

	in, err := cpu.GetChannel(boot)
	if err != nil {
		return
	}

	address := 0
	for value := range in.Receive() {
		if address >= len(cpu.Memory) {
			err = ErrImageSize
			return
		}
		err = cpu.WriteMemory(address, value)
		if err != nil {
			return
		}
		address++
	}

	if cpu.Verbose {
		log.Printf("cpu: boot %d bytes from channel %v", address, boot)
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

// FetchCode decodes the instruction at the program counter.
func (cpu *Cpu) FetchCode() (code Code, err error) {
	if cpu.Halted {
		err = ErrHalted
		return
	}

	value, err := cpu.ReadMemory(cpu.Pc)
	if err != nil {
		return
	}

	op := CodeOp(value)
	if !op.Valid() {
		err = ErrOpcode{Address: cpu.Pc, Op: op}
		return
	}

	code.Op = op
	for n := range op.OperandNeed() {
		var operand uint8
		operand, err = cpu.ReadMemory(cpu.Pc + 1 + n)
		if err != nil {
			err = errors.Join(ErrOpcodeOperand, err)
			return
		}
		code.Operands = append(code.Operands, operand)
	}

	return
}

// Tick executes a single CPU instruction cycle.
func (cpu *Cpu) Tick() (err error) {
	code, err := cpu.FetchCode()
	if err != nil {
		return
	}

	if cpu.Verbose {
		log.Print(cpu.Trace())
	}

	err = cpu.Execute(code)

	return
}

// Execute executes a single decoded instruction located at the program counter.
func (cpu *Cpu) Execute(code Code) (err error) {
	address := cpu.Pc
	defer func() {
		if err != nil {
			err = &ErrInstruction{Address: address, Code: code, Err: err}
		}
	}()
	if cpu.Verbose {
		log.Printf("%02x: %v", address, code)
	}

	if len(code.Operands) != code.Op.OperandNeed() {
		err = ErrOpcodeOperand
		return
	}

	var step CodeStep

	switch code.Op {
	case OP_HLT:
		step, err = cpu.opHlt(code)
	case OP_RET:
		step, err = cpu.opRet(code)
	case OP_PUSH:
		step, err = cpu.opPush(code)
	case OP_POP:
		step, err = cpu.opPop(code)
	case OP_PRN:
		step, err = cpu.opPrn(code)
	case OP_CALL:
		step, err = cpu.opCall(code)
	case OP_JMP:
		step, err = cpu.opJmp(code)
	case OP_JEQ:
		step, err = cpu.opJeq(code)
	case OP_JNE:
		step, err = cpu.opJne(code)
	case OP_LDI:
		step, err = cpu.opLdi(code)
	case OP_ADD:
		step, err = cpu.opAdd(code)
	case OP_MUL:
		step, err = cpu.opMul(code)
	case OP_CMP:
		step, err = cpu.opCmp(code)
	default:
		err = ErrOpcode{Address: address, Op: code.Op}
		return
	}
	if err != nil {
		return
	}

	switch step {
	case STEP_NEXT:
		cpu.Pc += code.Len()
	case STEP_JUMP:
		// Handler has set the program counter.
	}

	cpu.Ticks += 1

	return
}
