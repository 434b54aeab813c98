package io

import (
	"fmt"
	"io"
	"iter"
)

// Tape provides sequential I/O for the PRN instruction.
// Output is line oriented: each sent byte is written as a bare decimal
// integer followed by a newline. Input is read as raw bytes.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	Lines int // Number of lines written since the last rewind.
}

var _ Channel = (*Tape)(nil)

// Rewind clears the line counter. The underlying streams cannot be rewound.
func (tc *Tape) Rewind() {
	tc.Lines = 0
}

// Receive returns an iterator that yields bytes from the input stream
// until it is exhausted or fails.
func (tc *Tape) Receive() iter.Seq[uint8] {
	return func(yield func(value uint8) bool) {
		if tc.Input == nil {
			return
		}
		for {
			var one [1]byte
			_, err := io.ReadFull(tc.Input, one[:])
			if err != nil {
				return
			}
			if !yield(one[0]) {
				return
			}
		}
	}
}

// Send writes a byte to the output stream as a decimal line.
func (tc *Tape) Send(value uint8) (err error) {
	if tc.Output == nil {
		err = ErrChannelClosed
		return
	}

	_, err = fmt.Fprintf(tc.Output, "%d\n", value)
	if err != nil {
		return
	}

	tc.Lines++

	return
}
