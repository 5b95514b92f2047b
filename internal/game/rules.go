package game

import (
	"github.com/google/uuid"
	"k8s.io/klog/v2"
)

// NewDeal shuffles a fresh deck and deals it on the table.
//
// Tableau i (0-based) gets i+1 cards, only the last one face-up, taken in
// deck order; the remaining 24 cards go face-down to the Deal stack.
// Foundations and Waste are left empty.
func (t *Table) NewDeal() {
	deck := NewDeck()
	deck.Shuffle(t.rng)

	for _, s := range t.Stacks() {
		s.RemoveAll()
	}
	t.ID = uuid.NewString()

	next := 0
	for i, tableau := range t.Tableaus {
		for j := 0; j <= i; j++ {
			card := deck[next]
			next++
			card.SetFaceUp(j == i)
			tableau.Append(card)
		}
	}
	for _, card := range deck[next:] {
		card.SetFaceUp(false)
		t.Deal.Append(card)
	}
	klog.V(1).Infof("NewDeal: table %s dealt (seed=%d, %d cards in deal)", t.ID, t.seed, t.Deal.Len())
}

// DrawFromDeal turns the top card of the Deal stack face-up onto the Waste
// and returns true.
//
// When the Deal stack is empty, every Waste card goes back to it face-down,
// so that the first card drawn becomes the top again, and it returns false.
// Cards are never lost: Deal+Waste only changes through other moves.
func (t *Table) DrawFromDeal() bool {
	if !t.Deal.IsEmpty() {
		MoveTopCard(t.Deal, t.Waste, true, false)
		return true
	}
	for !t.Waste.IsEmpty() {
		MoveTopCard(t.Waste, t.Deal, false, false)
	}
	t.Waste.RemoveAll()
	klog.V(2).Infof("DrawFromDeal: table %s recycled %d cards from waste", t.ID, t.Deal.Len())
	return false
}

// MoveTopCard moves the top card of from onto to, with the given face
// orientation. If revealNext is set, the card left on top of from is turned
// face-up. It does nothing if from is empty.
//
// It doesn't check to.CanAccept: that is up to the caller.
func MoveTopCard(from, to *Stack, faceUp, revealNext bool) {
	card := from.TopCard()
	if card == nil {
		return
	}
	from.RemoveTop(1, revealNext)
	card.SetFaceUp(faceUp)
	to.Append(card)
}

// MoveRun moves part of a tableau run onto the first candidate that accepts it.
//
// The run holds the face-up cards at the top of from, bottom first. Starting
// from run[0], the longest possible run, it looks for the first candidate
// (other than from) that accepts run[i]; the first match receives run[i:] in
// order and from reveals its new top card. It returns whether anything moved
// and how many cards. Either the whole suffix moves or nothing does.
func MoveRun(from *Stack, run []*Card, candidates []*Stack) (moved bool, n int) {
	for i, head := range run {
		for _, to := range candidates {
			if to == from || !to.CanAccept(head) {
				continue
			}
			n = len(run) - i
			from.RemoveTop(n, true)
			for _, card := range run[i:] {
				to.Append(card)
			}
			klog.V(2).Infof("MoveRun: moved %d cards from %s to %s", n, from.Ref(), to.Ref())
			return true, n
		}
	}
	return false, 0
}
