package cpu

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"
)

// Opcode represents a line of source with its location and generated bytes.
type Opcode struct {
	LineNo    int
	Address   int
	Words     []string
	Codes     []uint8
	LinkLabel string
}

// Program is a memory image, annotated with its source lines.
type Program struct {
	Opcodes []Opcode
}

type Debug struct {
	*Opcode
	Index int
}

// Debug finds the source line that produced the byte at address.
func (prog *Program) Debug(address int) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if address >= op.Address && address < op.Address+len(op.Codes) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  address - op.Address,
			}
			break
		}
	}

	return
}

// Binary returns the flat memory image, starting at address 0.
func (prog *Program) Binary() (bins []uint8) {
	for address, code := range prog.Codes() {
		for len(bins) < address {
			bins = append(bins, 0)
		}
		bins = append(bins, code)
	}

	return
}

// Codes iterates over each address and byte of the image.
func (prog *Program) Codes() iter.Seq2[int, uint8] {
	return func(yield func(address int, code uint8) bool) {
		for _, op := range prog.Opcodes {
			for n, code := range op.Codes {
				if !yield(op.Address+n, code) {
					return
				}
			}
		}
	}
}

// WriteImage writes the program in the .ls8 text format: one byte per
// line in binary, with the source words as a comment on the first byte
// of each line.
func (prog *Program) WriteImage(w io.Writer) (err error) {
	out := bufio.NewWriter(w)

	address := 0
	for _, op := range prog.Opcodes {
		for address < op.Address {
			_, err = fmt.Fprintf(out, "%08b\n", 0)
			if err != nil {
				return
			}
			address++
		}
		for n, code := range op.Codes {
			if n == 0 && len(op.Words) > 0 {
				_, err = fmt.Fprintf(out, "%08b # %v\n", code, strings.Join(op.Words, " "))
			} else {
				_, err = fmt.Fprintf(out, "%08b\n", code)
			}
			if err != nil {
				return
			}
			address++
		}
	}

	err = out.Flush()

	return
}
