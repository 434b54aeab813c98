// Package cpu implements the processor, image loader and assembler for the
// LS-8 system.
//
// The CPU has 256 bytes of memory, eight 8-bit registers (r0-r7, with r7
// the stack pointer), a program counter, and a flags register set by CMP.
// The stack grows downward from STACK_TOP. Opcodes carry their operand
// count in the upper two bits, and each instruction handler declares
// whether the dispatcher advances the program counter or the handler has
// already set it.
//
// The assembler provides a small assembly language for the LS-8
// instruction set, supporting macros, labels, equates, and compile-time
// expression evaluation.
package cpu
