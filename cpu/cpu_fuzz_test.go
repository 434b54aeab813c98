package cpu

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ls8/io"
)

// fuzzCpu creates a CPU with memory, registers and flags filled from seed.
func fuzzCpu(seed int64, output *bytes.Buffer) (cpu *Cpu) {
	rng := rand.New(rand.NewSource(seed))

	cpu = NewCpu()
	cpu.SetChannel(CHANNEL_ID_TAPE, &io.Tape{Output: output})

	for n := range cpu.Memory {
		cpu.Memory[n] = uint8(rng.Intn(256))
	}
	for n := range cpu.Register {
		cpu.Register[n] = uint8(rng.Intn(256))
	}
	cpu.Flags = CodeFlag(1 << rng.Intn(3))
	cpu.Pc = rng.Intn(MEMORY_SIZE)

	return
}

func FuzzCpu(f *testing.F) {
	for _, op := range Opcodes {
		f.Add(uint8(op), uint8(0), uint8(1), int64(op))
		f.Add(uint8(op), uint8(SP), uint8(8), int64(op)+1)
	}
	f.Add(uint8(0x00), uint8(0), uint8(0), int64(0))
	f.Add(uint8(0xff), uint8(0), uint8(0), int64(0))

	f.Fuzz(func(t *testing.T, op uint8, a uint8, b uint8, seed int64) {
		assert := assert.New(t)

		var output bytes.Buffer
		cpu := fuzzCpu(seed, &output)
		before := *cpu

		code := MakeCode(CodeOp(op), a, b, a)
		code.Operands = code.Operands[:code.Op.OperandNeed()]

		err := cpu.Execute(code)

		if !code.Op.Valid() {
			assert.ErrorIs(err, ErrInvalidOpcode)
			assert.Equal(before.Pc, cpu.Pc)
			assert.Equal(before.Register, cpu.Register)
			assert.Equal(0, cpu.Ticks)
			return
		}

		if err != nil {
			// Every failure of a valid instruction is a bad register
			// index, or a stack or call outside of memory.
			assert.ErrorIs(err, ErrOutOfRange, code.String())
			assert.Equal(before.Pc, cpu.Pc)
			assert.Equal(before.Register[SP], cpu.Register[SP])
			assert.Equal(0, cpu.Ticks)
			assert.Empty(output.String())
			return
		}

		assert.Equal(1, cpu.Ticks)

		next := before.Pc + code.Len()
		switch code.Op {
		case OP_JMP, OP_CALL:
			assert.Equal(int(before.Register[a]), cpu.Pc)
		case OP_RET:
			assert.Equal(int(before.Memory[before.Register[SP]]), cpu.Pc)
		case OP_JEQ:
			if before.Flags&FLAG_E != 0 {
				assert.Equal(int(before.Register[a]), cpu.Pc)
			} else {
				assert.Equal(next, cpu.Pc)
			}
		case OP_JNE:
			if before.Flags&FLAG_E == 0 {
				assert.Equal(int(before.Register[a]), cpu.Pc)
			} else {
				assert.Equal(next, cpu.Pc)
			}
		default:
			assert.Equal(next, cpu.Pc)
		}

		switch code.Op {
		case OP_CMP:
			flags := cpu.Flags
			assert.True(flags == FLAG_L || flags == FLAG_G || flags == FLAG_E, flags.String())
		case OP_PRN:
			assert.Equal(1, strings.Count(output.String(), "\n"))
		default:
			assert.Equal(before.Flags, cpu.Flags)
			assert.Empty(output.String())
		}

		assert.Equal(code.Op == OP_HLT, cpu.Halted)
	})
}

func FuzzCpuRun(f *testing.F) {
	f.Add([]byte{0x82, 0x00, 0x08, 0x82, 0x01, 0x09, 0xa2, 0x00, 0x01, 0x47, 0x00, 0x01})
	f.Add([]byte{0xff})
	f.Add([]byte{0x54, 0x00})
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, image []byte) {
		assert := assert.New(t)

		if len(image) > MEMORY_SIZE {
			image = image[:MEMORY_SIZE]
		}

		var output bytes.Buffer
		cpu := NewCpu()
		cpu.SetChannel(CHANNEL_ID_ROM, &io.Rom{Data: image})
		cpu.SetChannel(CHANNEL_ID_TAPE, &io.Tape{Output: &output})

		err := cpu.Reset(CHANNEL_ID_ROM)
		assert.NoError(err)

		for range 64 {
			err = cpu.Tick()
			if err != nil {
				break
			}
		}

		if err != nil && !errors.Is(err, ErrHalted) {
			assert.True(errors.Is(err, ErrInvalidOpcode) || errors.Is(err, ErrOutOfRange), err.Error())
		}
		assert.True(cpu.Pc >= 0)
		assert.LessOrEqual(cpu.Ticks, 64)
	})
}
