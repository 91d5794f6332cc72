package io

import (
	"io"
	"strconv"
)

// Tape is the output of the machine. Every word sent to the tape is
// written as one decimal line, and flushed if the writer buffers.
type Tape struct {
	Output io.Writer

	Lines int // Lines written since the last rewind.
}

var _ Channel = (*Tape)(nil)

// Rewind is not possible on a tape; only the line counter is reset.
func (tc *Tape) Rewind() {
	tc.Lines = 0
}

// Receive is not possible on a tape.
func (tc *Tape) Receive() (value int16, err error) {
	err = ErrChannelWriteOnly
	return
}

// Send writes a word as a decimal line.
func (tc *Tape) Send(value int16) (err error) {
	tc.Lines++

	if tc.Output == nil {
		return
	}

	line := strconv.AppendInt(nil, int64(value), 10)
	line = append(line, '\n')
	_, err = tc.Output.Write(line)
	if err != nil {
		return
	}

	if flusher, ok := tc.Output.(interface{ Flush() error }); ok {
		err = flusher.Flush()
	}

	return
}
