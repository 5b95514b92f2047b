package game

import (
	"fmt"
	"strconv"
)

// Suit of a card. The order is the canonical deck order.
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// NumSuits in a standard deck.
const NumSuits = 4

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	}
	return fmt.Sprintf("Suit(%d)", int(s))
}

// Color of a suit.
type Color int

const (
	Black Color = iota
	Red
)

// Color returns Red for Diamonds and Hearts, Black otherwise.
func (s Suit) Color() Color {
	if s == Diamonds || s == Hearts {
		return Red
	}
	return Black
}

// Rank of a card, from Ace (1) to King (13).
type Rank int

const (
	Ace   Rank = 1
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

// NumRanks per suit.
const NumRanks = 13

func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	return strconv.Itoa(int(r))
}

// Card is a playing card. Suit and Rank never change after creation,
// only the face orientation does.
type Card struct {
	Suit   Suit
	Rank   Rank
	FaceUp bool
}

// NewCard creates a face-down card.
func NewCard(suit Suit, rank Rank) *Card {
	return &Card{Suit: suit, Rank: rank}
}

// ID is a dense index in 0..51 that identifies the card within a deck.
func (c *Card) ID() int {
	return int(c.Suit)*NumRanks + int(c.Rank) - 1
}

// Flip toggles the face orientation.
func (c *Card) Flip() {
	c.FaceUp = !c.FaceUp
}

// SetFaceUp sets the face orientation.
func (c *Card) SetFaceUp(faceUp bool) {
	c.FaceUp = faceUp
}

func (c *Card) IsAce() bool  { return c.Rank == Ace }
func (c *Card) IsKing() bool { return c.Rank == King }

// Color of the card's suit.
func (c *Card) Color() Color {
	return c.Suit.Color()
}

// IsSameColorAs reports whether both cards are red or both are black.
func (c *Card) IsSameColorAs(other *Card) bool {
	return c.Color() == other.Color()
}

// String returns the rank followed by the suit symbol, e.g. "10♥".
// It ignores the face orientation.
func (c *Card) String() string {
	return c.Rank.String() + c.Suit.String()
}
