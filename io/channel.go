// Package io provides I/O channel implementations for the LS-8 emulator.
// It includes a read-only program image (Rom) and a line oriented
// decimal output device (Tape).
package io

import (
	"iter"
)

// Channel defines the interface for all I/O channels attached to the CPU.
// Channels operate at the byte level.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Receive returns an iterator that yields bytes from the channel.
	Receive() iter.Seq[uint8]
	// Send writes a single byte to the channel.
	Send(value uint8) error
}
