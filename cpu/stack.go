package cpu

import (
	"errors"
)

// The stack lives in main memory and grows downward from STACK_TOP.
// The stack pointer, R7, holds the address of the top entry.

// Push decrements the stack pointer, then stores value at the new top.
func (cpu *Cpu) Push(value uint8) (err error) {
	sp := int(cpu.Register[SP])
	if sp == 0 {
		err = errors.Join(ErrStackFull, ErrRange{Space: "memory", Index: sp - 1})
		return
	}

	sp--
	err = cpu.WriteMemory(sp, value)
	if err != nil {
		return
	}

	cpu.Register[SP] = uint8(sp)
	return
}

// Pop loads the value at the top of the stack, then increments the
// stack pointer.
func (cpu *Cpu) Pop() (value uint8, err error) {
	value, err = cpu.Peek()
	if err != nil {
		return
	}

	sp := int(cpu.Register[SP])
	if sp+1 >= MEMORY_SIZE {
		err = errors.Join(ErrStackEmpty, ErrRange{Space: "memory", Index: sp + 1})
		return
	}

	cpu.Register[SP] = uint8(sp + 1)
	return
}

// Peek returns the value at the top of the stack.
func (cpu *Cpu) Peek() (value uint8, err error) {
	return cpu.ReadMemory(int(cpu.Register[SP]))
}
