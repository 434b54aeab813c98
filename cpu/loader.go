package cpu

import (
	"bufio"
	"io"
	"log"
	"strconv"
	"strings"
)

// Loader parses .ls8 memory images.
//
// Each line holds one byte written in binary. Text after '#' is a
// comment, and blank lines are skipped.
type Loader struct {
	Verbose bool // If set, logs each loaded byte.
}

// Parse reads an image into a Program, one Opcode per loaded byte.
func (ld *Loader) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	prog = &Program{}
	address := 0

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		text_comment := strings.SplitN(text, "#", 2)
		line = strings.TrimSpace(text_comment[0])
		if len(line) == 0 {
			continue
		}

		var value uint64
		value, err = strconv.ParseUint(line, 2, 8)
		if err != nil {
			err = ErrParseNumber(line)
			return
		}

		if address >= MEMORY_SIZE {
			err = ErrImageSize
			return
		}

		if ld.Verbose {
			log.Printf("%02x: %08b", address, value)
		}

		var words []string
		if len(text_comment) > 1 {
			words = strings.Fields(text_comment[1])
		}

		prog.Opcodes = append(prog.Opcodes, Opcode{
			LineNo:  lineno,
			Address: address,
			Words:   words,
			Codes:   []uint8{uint8(value)},
		})
		address++
	}

	err = scanner.Err()

	return
}
