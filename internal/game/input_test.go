package game

import (
	"fmt"
	"testing"
)

func TestTapDeal(t *testing.T) {
	table := NewTable(1)
	if table.Tap(table.Deal) {
		t.Errorf("Tapping an empty Deal with an empty Waste should do nothing")
	}

	table.NewDeal()
	if !table.Tap(table.Deal) || table.Waste.Len() != 1 || table.Deal.Len() != 23 {
		t.Fatalf("Tap on Deal should draw: Deal=%d Waste=%d", table.Deal.Len(), table.Waste.Len())
	}
	for table.Deal.Len() > 0 {
		table.Tap(table.Deal)
	}
	if !table.Tap(table.Deal) || table.Deal.Len() != 24 || !table.Waste.IsEmpty() {
		t.Errorf("Tap on an empty Deal should recycle the Waste: Deal=%d Waste=%d", table.Deal.Len(), table.Waste.Len())
	}
}

func TestTapPrefersFoundation(t *testing.T) {
	table := NewTable(1)
	table.Foundations[1].Append(up(Clubs, Ace))
	table.Foundations[1].Append(up(Clubs, 2))
	table.Tableaus[4].Append(up(Hearts, 4))
	card := up(Clubs, 3)
	table.Waste.Append(down(Spades, 5))
	table.Waste.Append(card)

	if !table.Tap(table.Waste) {
		t.Fatalf("Tap on 3♣ should move it")
	}
	if table.Foundations[1].TopCard() != card {
		t.Errorf("3♣ should go to the foundation, got %s", table.Foundations[1])
	}
	if table.Tableaus[4].Len() != 1 {
		t.Errorf("Tableau should be untouched, got %s", table.Tableaus[4])
	}
	if !table.Waste.TopCard().FaceUp {
		t.Errorf("Next waste card should be revealed")
	}
}

func TestTapToTableau(t *testing.T) {
	table := NewTable(1)
	table.Tableaus[0].Append(up(Hearts, 4))
	table.Tableaus[2].Append(up(Diamonds, 4))
	hidden := down(Spades, 10)
	table.Tableaus[5].Append(hidden)
	table.Tableaus[5].Append(up(Clubs, 3))

	if !table.Tap(table.Tableaus[5]) {
		t.Fatalf("Tap on 3♣ should move it")
	}
	if got := fmt.Sprint(table.Tableaus[0].Cards()); got != "[4♥ 3♣]" {
		t.Errorf("3♣ should go to the first accepting tableau, got %s", got)
	}
	if table.Tableaus[2].Len() != 1 {
		t.Errorf("Second accepting tableau should be untouched, got %s", table.Tableaus[2])
	}
	if !hidden.FaceUp {
		t.Errorf("Tap should reveal the next tableau card")
	}
}

func TestTapNoMove(t *testing.T) {
	table := NewTable(1)
	table.Tableaus[3].Append(up(Hearts, 9))
	table.Foundations[0].Append(up(Spades, Ace))
	table.Waste.Append(up(Diamonds, Ace))
	table.Waste.Append(up(Hearts, Queen))

	for _, s := range []*Stack{table.Tableaus[3], table.Foundations[0], table.Waste, table.Tableaus[6]} {
		if table.Tap(s) {
			t.Errorf("Tap on %s should not move anything", s.Ref())
		}
	}
	if table.Waste.Len() != 2 || table.Foundations[0].Len() != 1 || table.Tableaus[3].Len() != 1 {
		t.Errorf("Table changed: %v", table.Stacks())
	}

	// A King moves to an empty tableau, but never back to the one it is on.
	table.Tableaus[0].Append(up(Spades, King))
	if !table.Tap(table.Tableaus[0]) || table.Tableaus[1].Len() != 1 {
		t.Errorf("K♠ should move to the first other empty tableau")
	}
}

func TestDragRun(t *testing.T) {
	newTable := func() *Table {
		table := NewTable(1)
		for _, c := range []*Card{down(Clubs, 2), up(Hearts, 8), up(Spades, 7), up(Diamonds, 6)} {
			table.Tableaus[0].Append(c)
		}
		table.Tableaus[1].Append(up(Clubs, 9))
		table.Tableaus[2].Append(up(Hearts, 7))
		table.Foundations[0].Append(up(Diamonds, Ace))
		return table
	}

	t.Run("WholeRun", func(t *testing.T) {
		table := newTable()
		if !table.Drag(table.Tableaus[0], 1, table.Tableaus[1]) {
			t.Fatalf("Dragging 8♥ 7♠ 6♦ onto 9♣ should succeed")
		}
		if got := fmt.Sprint(table.Tableaus[1].Cards()); got != "[9♣ 8♥ 7♠ 6♦]" {
			t.Errorf("Destination = %s", got)
		}
		if top := table.Tableaus[0].TopCard(); table.Tableaus[0].Len() != 1 || !top.FaceUp {
			t.Errorf("Source = %s", table.Tableaus[0])
		}
	})

	t.Run("HeadMustFit", func(t *testing.T) {
		// 6♦ would fit on 7♣ but the player dragged from 8♥.
		table := newTable()
		table.Tableaus[3].Append(up(Clubs, 7))
		if table.Drag(table.Tableaus[0], 1, table.Tableaus[3]) {
			t.Errorf("Only the dragged card may head the move")
		}
		if table.Tableaus[0].Len() != 4 || table.Tableaus[3].Len() != 1 {
			t.Errorf("Table changed after a failed drag")
		}
	})

	t.Run("MiddleOfRun", func(t *testing.T) {
		table := newTable()
		table.Tableaus[3].Append(up(Diamonds, 8))
		if !table.Drag(table.Tableaus[0], 2, table.Tableaus[3]) {
			t.Fatalf("Dragging 7♠ 6♦ onto 8♦ should succeed")
		}
		if got := fmt.Sprint(table.Tableaus[0].Cards()); got != "[2♣ 8♥]" {
			t.Errorf("Source = %s", got)
		}
	})

	t.Run("FaceDown", func(t *testing.T) {
		table := newTable()
		table.Tableaus[4].Append(up(Hearts, 3))
		if table.Drag(table.Tableaus[0], 0, table.Tableaus[4]) {
			t.Errorf("Face-down cards can't be dragged")
		}
	})

	t.Run("RunToFoundation", func(t *testing.T) {
		table := newTable()
		table.Tableaus[5].Append(up(Diamonds, 2))
		table.Tableaus[5].Append(up(Clubs, Ace))
		if table.Drag(table.Tableaus[5], 0, table.Foundations[0]) {
			t.Errorf("Runs can't be dropped on a foundation")
		}
		if !table.Drag(table.Tableaus[5], 1, table.Foundations[1]) {
			t.Errorf("A♣ should go to an empty foundation")
		}
		if !table.Drag(table.Tableaus[5], 0, table.Foundations[0]) {
			t.Errorf("2♦ should go on A♦")
		}
	})

	t.Run("Rejected", func(t *testing.T) {
		table := newTable()
		for _, tc := range []struct {
			from  *Stack
			index int
			to    *Stack
		}{
			{table.Tableaus[0], 3, table.Tableaus[2]},    // 6♦ on 7♥: same color
			{table.Tableaus[0], 3, table.Waste},          // waste never accepts
			{table.Tableaus[0], 3, table.Deal},           // deal never accepts
			{table.Tableaus[0], 3, table.Tableaus[0]},    // same stack
			{table.Tableaus[0], 4, table.Tableaus[1]},    // out of range
			{table.Tableaus[0], -1, table.Tableaus[1]},   // out of range
			{table.Foundations[0], 0, table.Tableaus[6]}, // foundations keep their cards
		} {
			if table.Drag(tc.from, tc.index, tc.to) {
				t.Errorf("Drag(%s, %d, %s) should be rejected", tc.from.Ref(), tc.index, tc.to.Ref())
			}
		}
		checkUnchanged := fmt.Sprint(table.Stacks())
		if checkUnchanged != fmt.Sprint(newTable().Stacks()) {
			t.Errorf("Rejected drags changed the table: %s", checkUnchanged)
		}
	})

	t.Run("FromWaste", func(t *testing.T) {
		table := newTable()
		table.Waste.Append(up(Hearts, 8))
		if !table.Drag(table.Waste, 0, table.Tableaus[1]) {
			t.Errorf("8♥ from waste should go on 9♣")
		}
	})
}

func TestWon(t *testing.T) {
	table := NewTable(1)
	table.NewDeal()
	if table.Won() {
		t.Fatalf("A fresh deal is not won")
	}

	table = NewTable(1)
	deck := NewDeck()
	for i, f := range table.Foundations {
		for _, c := range deck[i*NumRanks : (i+1)*NumRanks] {
			c.SetFaceUp(true)
			f.Append(c)
		}
	}
	if !table.Won() {
		t.Errorf("All cards on foundations should be a win")
	}
}
