package cpu

// Instruction handlers.
//
// Each handler gets its decoded operands in code.Operands, and returns
// STEP_NEXT when the dispatcher should advance past the instruction, or
// STEP_JUMP when the handler has set the program counter itself.
// Handlers only modify the program counter on success.

// opHlt stops the CPU.
func (cpu *Cpu) opHlt(code Code) (step CodeStep, err error) {
	cpu.Halted = true
	return STEP_NEXT, nil
}

// opLdi loads an immediate into a register.
func (cpu *Cpu) opLdi(code Code) (step CodeStep, err error) {
	err = cpu.WriteRegister(code.operand(0), code.operand(1))
	return STEP_NEXT, err
}

// opPrn sends a register to the tape.
func (cpu *Cpu) opPrn(code Code) (step CodeStep, err error) {
	value, err := cpu.ReadRegister(code.operand(0))
	if err != nil {
		return
	}

	tape, err := cpu.GetChannel(CHANNEL_ID_TAPE)
	if err != nil {
		return
	}

	err = tape.Send(value)
	return STEP_NEXT, err
}

func (cpu *Cpu) opAdd(code Code) (step CodeStep, err error) {
	err = cpu.Alu(ALU_OP_ADD, code.operand(0), code.operand(1))
	return STEP_NEXT, err
}

func (cpu *Cpu) opMul(code Code) (step CodeStep, err error) {
	err = cpu.Alu(ALU_OP_MUL, code.operand(0), code.operand(1))
	return STEP_NEXT, err
}

func (cpu *Cpu) opCmp(code Code) (step CodeStep, err error) {
	err = cpu.Alu(ALU_OP_CMP, code.operand(0), code.operand(1))
	return STEP_NEXT, err
}

// opPush pushes a register. PUSH SP stores the stack pointer value from
// before the push.
func (cpu *Cpu) opPush(code Code) (step CodeStep, err error) {
	value, err := cpu.ReadRegister(code.operand(0))
	if err != nil {
		return
	}

	err = cpu.Push(value)
	return STEP_NEXT, err
}

// opPop pops into a register.
func (cpu *Cpu) opPop(code Code) (step CodeStep, err error) {
	reg := code.operand(0)
	if _, err = cpu.ReadRegister(reg); err != nil {
		return
	}

	value, err := cpu.Pop()
	if err != nil {
		return
	}

	err = cpu.WriteRegister(reg, value)
	return STEP_NEXT, err
}

// opCall pushes the address after the instruction, then jumps.
func (cpu *Cpu) opCall(code Code) (step CodeStep, err error) {
	target, err := cpu.ReadRegister(code.operand(0))
	if err != nil {
		return
	}

	next := cpu.Pc + code.Len()
	if next >= MEMORY_SIZE {
		err = ErrRange{Space: "memory", Index: next}
		return
	}

	err = cpu.Push(uint8(next))
	if err != nil {
		return
	}

	cpu.Pc = int(target)
	return STEP_JUMP, nil
}

// opRet pops the return address into the program counter.
func (cpu *Cpu) opRet(code Code) (step CodeStep, err error) {
	target, err := cpu.Pop()
	if err != nil {
		return
	}

	cpu.Pc = int(target)
	return STEP_JUMP, nil
}

func (cpu *Cpu) opJmp(code Code) (step CodeStep, err error) {
	return cpu.jumpIf(code, true)
}

func (cpu *Cpu) opJeq(code Code) (step CodeStep, err error) {
	return cpu.jumpIf(code, cpu.Flags&FLAG_E != 0)
}

func (cpu *Cpu) opJne(code Code) (step CodeStep, err error) {
	return cpu.jumpIf(code, cpu.Flags&FLAG_E == 0)
}

// jumpIf sets the program counter to the register operand if taken,
// or to the following instruction if not.
func (cpu *Cpu) jumpIf(code Code, taken bool) (step CodeStep, err error) {
	target, err := cpu.ReadRegister(code.operand(0))
	if err != nil {
		return
	}

	if taken {
		cpu.Pc = int(target)
	} else {
		cpu.Pc += code.Len()
	}

	return STEP_JUMP, nil
}
