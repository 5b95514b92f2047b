package game

import "math/rand/v2"

// DeckSize is the number of cards in a standard deck.
const DeckSize = NumSuits * NumRanks

// Deck is an ordered set of cards. A deck built by NewDeck is always a
// permutation of the 52 distinct (suit, rank) pairs.
type Deck []*Card

// NewDeck creates the 52 cards face-down, in canonical order:
// suits Clubs, Diamonds, Hearts, Spades, each from Ace to King.
func NewDeck() Deck {
	deck := make(Deck, 0, DeckSize)
	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Ace; rank <= King; rank++ {
			deck = append(deck, NewCard(suit, rank))
		}
	}
	return deck
}

// Shuffle permutes the deck in place with a Fisher-Yates shuffle, so every
// permutation is equally likely given a uniform random source.
func (d Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d), func(i, j int) {
		d[i], d[j] = d[j], d[i]
	})
}
