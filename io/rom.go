package io

import (
	"iter"
	"slices"
)

// Rom holds a program image. It can be read any number of times, and
// never written.
type Rom struct {
	Data []uint8
}

var _ Channel = (*Rom)(nil)

// Rewind is a no-op; every Receive starts at the first byte.
func (rc *Rom) Rewind() {
}

func (rc *Rom) Receive() iter.Seq[uint8] {
	return slices.Values(rc.Data)
}

func (rc *Rom) Send(value uint8) error {
	return ErrChannelFull
}
