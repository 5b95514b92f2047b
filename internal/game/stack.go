package game

import (
	"fmt"
	"slices"
)

// Kind of a stack on the table. The kind alone decides which cards a stack accepts.
type Kind int

const (
	Tableau Kind = iota
	Foundation
	Waste
	Deal
)

func (k Kind) String() string {
	switch k {
	case Tableau:
		return "Tableau"
	case Foundation:
		return "Foundation"
	case Waste:
		return "Waste"
	case Deal:
		return "Deal"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Stack is an ordered pile of cards, the last one being the top.
//
// Mutating methods don't check CanAccept: acceptance is a query for the
// caller, so the orchestrator can move whole runs it has already validated.
// Each mutating method calls the OnChanged handler once when it is done.
type Stack struct {
	kind  Kind
	index int
	cards []*Card

	onChanged func()
}

// NewStack creates an empty stack. The index is the position among the
// stacks of the same kind on the table.
func NewStack(kind Kind, index int) *Stack {
	return &Stack{kind: kind, index: index}
}

func (s *Stack) Kind() Kind    { return s.kind }
func (s *Stack) Index() int    { return s.index }
func (s *Stack) Ref() StackRef { return StackRef{Kind: s.kind, Index: s.index} }

func (s *Stack) String() string {
	return fmt.Sprintf("%s%v", s.Ref(), s.cards)
}

// OnChanged sets the handler called after every mutation. A nil handler
// unsubscribes. Handlers must not mutate the stack.
func (s *Stack) OnChanged(handler func()) {
	s.onChanged = handler
}

func (s *Stack) notify() {
	if s.onChanged != nil {
		s.onChanged()
	}
}

// Len returns the number of cards.
func (s *Stack) Len() int { return len(s.cards) }

// IsEmpty reports whether the stack holds no cards.
func (s *Stack) IsEmpty() bool { return len(s.cards) == 0 }

// Cards returns a copy of the card sequence, bottom first.
func (s *Stack) Cards() []*Card {
	return slices.Clone(s.cards)
}

// TopCard returns the last card, or nil if the stack is empty.
func (s *Stack) TopCard() *Card {
	if len(s.cards) == 0 {
		return nil
	}
	return s.cards[len(s.cards)-1]
}

// FaceUpCards returns the face-up cards in stack order.
func (s *Stack) FaceUpCards() []*Card {
	faceUp := make([]*Card, 0, len(s.cards))
	for _, card := range s.cards {
		if card.FaceUp {
			faceUp = append(faceUp, card)
		}
	}
	return faceUp
}

// Append puts the card on top.
func (s *Stack) Append(card *Card) {
	s.cards = append(s.cards, card)
	s.notify()
}

// RemoveTop removes the n top cards and returns them in stack order.
// If revealNext is set, the card left on top is turned face-up.
//
// It panics if n is negative or larger than Len: that is a bug in the caller.
func (s *Stack) RemoveTop(n int, revealNext bool) []*Card {
	if n < 0 || n > len(s.cards) {
		panic(fmt.Sprintf("game: RemoveTop(%d) on %s stack %d holding %d cards", n, s.kind, s.index, len(s.cards)))
	}
	cut := len(s.cards) - n
	removed := slices.Clone(s.cards[cut:])
	clear(s.cards[cut:])
	s.cards = s.cards[:cut]
	if revealNext {
		if top := s.TopCard(); top != nil {
			top.SetFaceUp(true)
		}
	}
	s.notify()
	return removed
}

// RemoveAll empties the stack.
func (s *Stack) RemoveAll() {
	clear(s.cards)
	s.cards = s.cards[:0]
	s.notify()
}

// CanAccept reports whether the card may be dropped on this stack:
//
//   - Tableau: a King when empty, otherwise a card of the other color and
//     one rank lower than a face-up top card.
//   - Foundation: an Ace when empty, otherwise the next rank of the same suit.
//   - Waste and Deal: never, cards only leave them.
func (s *Stack) CanAccept(card *Card) bool {
	top := s.TopCard()
	switch s.kind {
	case Tableau:
		if top == nil {
			return card.IsKing()
		}
		return top.FaceUp && !top.IsSameColorAs(card) && card.Rank == top.Rank-1
	case Foundation:
		if top == nil {
			return card.IsAce()
		}
		return card.Suit == top.Suit && card.Rank == top.Rank+1
	case Waste, Deal:
		return false
	}
	panic(fmt.Sprintf("game: unknown stack kind %d", int(s.kind)))
}
