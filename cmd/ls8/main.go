// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/emulator"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: ls8 [flags] program\n")
	flag.PrintDefaults()
}

func main() {
	var assemble bool
	var save string
	var output string
	var verbose bool
	var maxTicks int

	flag.BoolVar(&assemble, "a", false, "Program is assembly source (default for .asm files)")
	flag.StringVar(&save, "s", "", ".ls8 file to save the image to, do not execute")
	flag.StringVar(&output, "o", "-", "Tape output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.IntVar(&maxTicks, "max", 0, "Instruction limit, 0 for none")
	flag.Usage = usage

	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(1)
	}

	program := flag.Arg(0)
	if filepath.Ext(program) == ".asm" {
		assemble = true
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.MaxTicks = maxTicks

	inf, err := os.Open(program)
	if err != nil {
		log.Fatalf("%v: %v", program, err)
	}
	defer inf.Close()

	if assemble {
		asm := emu.Assembler()
		emu.Program, err = asm.Parse(inf)
	} else {
		ld := &cpu.Loader{Verbose: verbose}
		emu.Program, err = ld.Parse(inf)
	}
	if err != nil {
		log.Fatalf("%v: %v", program, err)
	}

	if len(save) != 0 {
		ouf, err := os.Create(save)
		if err != nil {
			log.Fatalf("%v: %v", save, err)
		}
		defer ouf.Close()

		err = emu.Program.WriteImage(ouf)
		if err != nil {
			log.Fatalf("%v: %v", save, err)
		}
		return
	}

	if output == "-" {
		emu.Tape.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		emu.Tape.Output = ouf
	}

	err = emu.Reset()
	if err != nil {
		log.Fatalf("%v: %v", program, err)
	}

	err = emu.Run()
	if err != nil {
		if verbose {
			log.Print(emu.Cpu.String())
		}
		log.Fatalf("%v: %v", program, err)
	}
}
