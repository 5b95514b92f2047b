package game

import (
	"errors"
	"testing"
)

func TestNewTable(t *testing.T) {
	table := NewTable(5)
	stacks := table.Stacks()
	if len(stacks) != 13 {
		t.Fatalf("Expected 13 stacks, got %d", len(stacks))
	}
	want := []string{"f1", "f2", "f3", "f4", "w", "d", "t1", "t2", "t3", "t4", "t5", "t6", "t7"}
	for i, s := range stacks {
		if !s.IsEmpty() {
			t.Errorf("Stack %s should start empty", s.Ref())
		}
		if s.Ref().String() != want[i] {
			t.Errorf("Stack %d is %s, want %s", i, s.Ref(), want[i])
		}
	}
	if table.Seed() != 5 {
		t.Errorf("Seed() = %d, want 5", table.Seed())
	}
}

func TestStackRefRoundTrip(t *testing.T) {
	table := NewTable(0)
	for _, s := range table.Stacks() {
		ref, err := ParseStackRef(s.Ref().String())
		if err != nil {
			t.Fatalf("ParseStackRef(%q) failed: %v", s.Ref(), err)
		}
		if ref != s.Ref() {
			t.Errorf("ParseStackRef(%q) = %+v, want %+v", s.Ref(), ref, s.Ref())
		}
		if table.Stack(ref) != s {
			t.Errorf("Stack(%s) returned the wrong stack", ref)
		}
	}

	ref, err := ParseStackRef("  T7 ")
	if err != nil || ref != (StackRef{Kind: Tableau, Index: 6}) {
		t.Errorf("ParseStackRef(\"  T7 \") = %+v, %v", ref, err)
	}
}

func TestParseStackRefErrors(t *testing.T) {
	for _, s := range []string{"", "x", "t", "t0", "t8", "f5", "f-1", "tt", "w1", "deal"} {
		t.Run(s, func(t *testing.T) {
			_, err := ParseStackRef(s)
			if !errors.Is(err, ErrUnknownStack) {
				t.Errorf("ParseStackRef(%q) error = %v, want ErrUnknownStack", s, err)
			}
		})
	}
}

func TestTableStackOutOfRange(t *testing.T) {
	table := NewTable(0)
	for _, ref := range []StackRef{
		{Kind: Tableau, Index: 7},
		{Kind: Foundation, Index: -1},
		{Kind: Waste, Index: 1},
		{Kind: Kind(9)},
	} {
		if s := table.Stack(ref); s != nil {
			t.Errorf("Stack(%+v) = %s, want nil", ref, s)
		}
	}
}
