package io

import (
	"errors"

	"github.com/ezrec/cardiac/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrChannelReadOnly  = errors.New(f("channel is read only"))
	ErrChannelWriteOnly = errors.New(f("channel is write only"))
	ErrDeckEmpty        = errors.New(f("deck exhausted"))
)

// ErrDeckPolicy is an unknown deck exhaustion policy name.
type ErrDeckPolicy string

func (err ErrDeckPolicy) Error() string {
	return f("'%v' is not a deck policy", string(err))
}
