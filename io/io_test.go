package io

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRom_Receive(t *testing.T) {
	assert := assert.New(t)

	rom := &Rom{
		Data: []uint8{0x82, 0x00, 0x08, 0x01},
	}

	var got []uint8
	for value := range rom.Receive() {
		got = append(got, value)
	}
	assert.Equal(rom.Data, got)

	// A second pass sees the same image.
	rom.Rewind()
	got = got[:0]
	for value := range rom.Receive() {
		got = append(got, value)
	}
	assert.Equal(rom.Data, got)
}

func TestRom_Receive_Empty(t *testing.T) {
	assert := assert.New(t)

	rom := &Rom{}

	count := 0
	for range rom.Receive() {
		count++
	}

	assert.Equal(0, count)
}

func TestRom_Receive_EarlyStop(t *testing.T) {
	assert := assert.New(t)

	rom := &Rom{Data: make([]uint8, 32)}

	count := 0
	for range rom.Receive() {
		count++
		if count == 10 {
			break
		}
	}

	assert.Equal(10, count)
}

func TestRom_Send(t *testing.T) {
	assert := assert.New(t)

	rom := &Rom{}

	err := rom.Send(1)
	assert.ErrorIs(err, ErrChannelFull)
	assert.Empty(rom.Data)
}

func TestTape_Send(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	tape := &Tape{Output: output}

	assert.NoError(tape.Send(72))
	assert.NoError(tape.Send(0))
	assert.NoError(tape.Send(255))

	assert.Equal("72\n0\n255\n", output.String())
	assert.Equal(3, tape.Lines)

	tape.Rewind()
	assert.Equal(0, tape.Lines)
}

func TestTape_Send_NoOutput(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{}

	err := tape.Send(1)
	assert.ErrorIs(err, ErrChannelClosed)
	assert.Equal(0, tape.Lines)
}

type failWriter struct{}

var errFailWriter = errors.New("write failed")

func (failWriter) Write(p []byte) (int, error) {
	return 0, errFailWriter
}

func TestTape_Send_WriteError(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Output: failWriter{}}

	err := tape.Send(1)
	assert.ErrorIs(err, errFailWriter)
	assert.Equal(0, tape.Lines)
}

func TestTape_Receive(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: bytes.NewReader([]byte{1, 2, 3})}

	var got []uint8
	for value := range tape.Receive() {
		got = append(got, value)
	}

	assert.Equal([]uint8{1, 2, 3}, got)
}

func TestTape_Receive_NoInput(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{}

	count := 0
	for range tape.Receive() {
		count++
	}

	assert.Equal(0, count)
}
