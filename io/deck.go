package io

import (
	"bufio"
	"io"
	"iter"
	"maps"
	"strconv"
)

// DECK_SIZE is the default capacity of a deck.
const DECK_SIZE = 100

// DeckPolicy selects what Receive returns once the deck is exhausted.
type DeckPolicy int

//go:generate go tool stringer -linecomment -type=DeckPolicy
const (
	DECK_ZERO   = DeckPolicy(0) // zero
	DECK_REPEAT = DeckPolicy(1) // repeat
	DECK_ERROR  = DeckPolicy(2) // error
)

// UnmarshalText decodes a policy by name.
func (dp *DeckPolicy) UnmarshalText(text []byte) (err error) {
	for policy := DECK_ZERO; policy <= DECK_ERROR; policy++ {
		if policy.String() == string(text) {
			*dp = policy
			return
		}
	}

	err = ErrDeckPolicy(text)
	return
}

// MarshalText encodes a policy by name.
func (dp DeckPolicy) MarshalText() (text []byte, err error) {
	text = []byte(dp.String())
	return
}

// Deck is the input tape of the machine: an ordered list of cards, each
// holding one signed word, and a read cursor.
type Deck struct {
	Capacity  int        // Maximum number of cards; 0 selects DECK_SIZE.
	Exhausted DeckPolicy // Behaviour of Receive past the last card.

	Cards  []int16
	Cursor int
}

var _ Channel = (*Deck)(nil)

// Defines returns an iter of defines for the channel.
func (deck *Deck) Defines() iter.Seq2[string, int] {
	return maps.All(map[string]int{"DECK_SIZE": deck.capacity()})
}

func (deck *Deck) capacity() int {
	if deck.Capacity <= 0 {
		return DECK_SIZE
	}
	return deck.Capacity
}

// Load replaces the cards with whitespace separated integers read from
// input. Reading stops silently at capacity, at the first malformed
// value, or at the end of input.
func (deck *Deck) Load(input io.Reader) (err error) {
	deck.Cards = deck.Cards[:0]
	deck.Cursor = 0

	if input == nil {
		return
	}

	scanner := bufio.NewScanner(input)
	scanner.Split(bufio.ScanWords)
	for len(deck.Cards) < deck.capacity() && scanner.Scan() {
		value, perr := strconv.ParseInt(scanner.Text(), 10, 16)
		if perr != nil {
			return
		}
		deck.Cards = append(deck.Cards, int16(value))
	}

	err = scanner.Err()

	return
}

// Remaining returns the number of unread cards.
func (deck *Deck) Remaining() int {
	return max(len(deck.Cards)-deck.Cursor, 0)
}

// Rewind moves the cursor back to the first card.
func (deck *Deck) Rewind() {
	deck.Cursor = 0
}

// Receive returns the card at the cursor, and advances the cursor.
func (deck *Deck) Receive() (value int16, err error) {
	if deck.Cursor < len(deck.Cards) {
		value = deck.Cards[deck.Cursor]
		deck.Cursor++
		return
	}

	switch deck.Exhausted {
	case DECK_REPEAT:
		if len(deck.Cards) > 0 {
			value = deck.Cards[len(deck.Cards)-1]
		}
	case DECK_ERROR:
		err = ErrDeckEmpty
		return
	}

	deck.Cursor++

	return
}

// Send is not possible on a deck.
func (deck *Deck) Send(value int16) error {
	return ErrChannelReadOnly
}
