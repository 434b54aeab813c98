// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/internal"
	"github.com/ezrec/ls8/io"
)

const (
	ENTRY = 0x00 // Load address of the program image.
)

var _emulator_defines = map[string]string{
	"ENTRY": fmt.Sprintf("0x%02x", ENTRY),
}

// Emulator state. CPU + IO channels.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	Rom  io.Rom  // ROM IO channel, holds the boot image.
	Tape io.Tape // Tape IO channel, receives PRN output.

	MaxTicks int // If non-zero, the limit on instructions executed since reset.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	emu.Cpu.SetChannel(cpu.CHANNEL_ID_ROM, &emu.Rom)
	emu.Cpu.SetChannel(cpu.CHANNEL_ID_TAPE, &emu.Tape)

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// Assembler returns an assembler with the emulator defines predefined.
func (emu *Emulator) Assembler() (asm *cpu.Assembler) {
	asm = &cpu.Assembler{Verbose: emu.Verbose}
	for key, value := range emu.Defines() {
		asm.Predefine(key, value)
	}

	return
}

// Reset loads the program into the ROM, and boots the CPU from it.
func (emu *Emulator) Reset() (err error) {
	binary := emu.Program.Binary()
	if ENTRY+len(binary) > cpu.MEMORY_SIZE {
		err = cpu.ErrImageSize
		return
	}

	emu.Rom.Data = binary

	emu.Cpu.Verbose = emu.Verbose

	err = emu.Cpu.Reset(cpu.CHANNEL_ID_ROM)

	return
}

// Address returns the current program counter.
func (emu *Emulator) Address() int {
	return emu.Cpu.Pc
}

// Code returns the current instruction code.
func (emu *Emulator) Code() cpu.Code {
	code, _ := emu.Cpu.FetchCode()
	return code
}

// LineNo returns the current line number for the executing opcode.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Cpu.Pc)
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single tick of the emulator.
// done is set once the CPU has halted.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	if emu.Cpu.Halted {
		done = true
		return
	}

	lineno := emu.LineNo()
	address := emu.Address()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Address: address, Err: err}
		}
	}()

	if emu.MaxTicks > 0 && emu.Cpu.Ticks >= emu.MaxTicks {
		err = ErrTickLimit
		return
	}

	err = emu.Cpu.Tick()
	if err != nil {
		return
	}

	done = emu.Cpu.Halted

	return
}

// Run ticks the emulator until the CPU halts or fails.
func (emu *Emulator) Run() (err error) {
	for {
		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			break
		}
	}

	if emu.Verbose {
		log.Printf("emulator: %d ticks, %d lines printed", emu.Cpu.Ticks, emu.Tape.Lines)
	}

	return
}
