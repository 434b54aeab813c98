package cpu

// Alu performs the requested ALU action on registers a and b.
// ADD and MUL store the result, modulo 256, in register a.
// CMP sets exactly one of the L, G, or E flags.
func (cpu *Cpu) Alu(op CodeAluOp, a, b uint8) (err error) {
	va, err := cpu.ReadRegister(a)
	if err != nil {
		return
	}
	vb, err := cpu.ReadRegister(b)
	if err != nil {
		return
	}

	switch op {
	case ALU_OP_ADD: // add
		err = cpu.WriteRegister(a, va+vb)
	case ALU_OP_MUL: // mul
		err = cpu.WriteRegister(a, va*vb)
	case ALU_OP_CMP: // cmp
		cpu.Flags = compare(va, vb)
	default:
		err = ErrAluOp(op)
	}

	return
}

// compare returns the flags for a compared to b.
func compare(a, b uint8) CodeFlag {
	switch {
	case a < b:
		return FLAG_L
	case a > b:
		return FLAG_G
	default:
		return FLAG_E
	}
}
