package game

import "k8s.io/klog/v2"

// Tap handles a tap on the top card of s and reports whether the table changed.
//
// Tapping the Deal stack draws a card, or recycles the Waste when the Deal
// is empty. Tapping a face-up top card of the Waste or a Tableau moves it to
// the first Foundation that accepts it, or else to the first other Tableau
// that does. Foundation cards never move.
func (t *Table) Tap(s *Stack) bool {
	switch s.Kind() {
	case Deal:
		if s.IsEmpty() && t.Waste.IsEmpty() {
			return false
		}
		t.DrawFromDeal()
		return true
	case Foundation:
		return false
	}

	card := s.TopCard()
	if card == nil || !card.FaceUp {
		return false
	}
	for _, candidates := range [][]*Stack{t.Foundations[:], t.Tableaus[:]} {
		for _, to := range candidates {
			if to == s || !to.CanAccept(card) {
				continue
			}
			MoveTopCard(s, to, true, true)
			klog.V(2).Infof("Tap: moved %s from %s to %s", card, s.Ref(), to.Ref())
			return true
		}
	}
	return false
}

// Drag handles the cards of from starting at position index being dropped
// on to, and reports whether they moved.
//
// The card at index must be face-up and is the one that has to fit on to.
// Foundation and Deal cards can't be dragged, and runs of more than one
// card only move from a Tableau to another Tableau.
func (t *Table) Drag(from *Stack, index int, to *Stack) bool {
	if from == to || index < 0 || index >= from.Len() {
		return false
	}
	if from.Kind() == Foundation || from.Kind() == Deal {
		return false
	}
	cards := from.Cards()
	head := cards[index]
	if !head.FaceUp || !to.CanAccept(head) {
		return false
	}
	if index == len(cards)-1 {
		MoveTopCard(from, to, true, true)
		klog.V(2).Infof("Drag: moved %s from %s to %s", head, from.Ref(), to.Ref())
		return true
	}
	if from.Kind() != Tableau || to.Kind() != Tableau {
		return false
	}
	// Face-up cards are contiguous at the top of a tableau, so the whole
	// dragged run is face-up once its head is.
	moved, _ := MoveRun(from, cards[index:], []*Stack{to})
	return moved
}
