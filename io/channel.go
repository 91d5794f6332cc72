// Package io provides the I/O channels of the cardiac emulator: the
// input deck consumed by IN, and the output tape written by OUT.
package io

// Channel defines the interface for all I/O channels of the machine.
// Channels transfer one word at a time, in order.
type Channel interface {
	// Rewind resets the channel to its initial position.
	Rewind()
	// Receive returns the next word from the channel.
	Receive() (value int16, err error)
	// Send writes a single word to the channel.
	Send(value int16) error
}
