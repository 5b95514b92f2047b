package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

const (
	NumTableaus    = 7
	NumFoundations = 4
)

// ErrUnknownStack is returned when parsing a stack reference that doesn't
// name one of the thirteen stacks of a table.
var ErrUnknownStack = errors.New("unknown stack")

// StackRef addresses a stack on a table: its kind and its index among the
// stacks of that kind (0-based).
type StackRef struct {
	Kind  Kind
	Index int
}

// String returns the short form used by the terminal UI and in logs:
// "t1".."t7", "f1".."f4", "w" and "d". Indices are 1-based in this form.
func (r StackRef) String() string {
	switch r.Kind {
	case Tableau:
		return fmt.Sprintf("t%d", r.Index+1)
	case Foundation:
		return fmt.Sprintf("f%d", r.Index+1)
	case Waste:
		return "w"
	case Deal:
		return "d"
	}
	return fmt.Sprintf("%s#%d", r.Kind, r.Index)
}

// ParseStackRef parses the short form returned by StackRef.String.
// It is case-insensitive and ignores surrounding spaces.
func ParseStackRef(s string) (StackRef, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "w":
		return StackRef{Kind: Waste}, nil
	case "d":
		return StackRef{Kind: Deal}, nil
	case "":
		return StackRef{}, fmt.Errorf("empty stack reference: %w", ErrUnknownStack)
	}

	var kind Kind
	var count int
	switch s[0] {
	case 't':
		kind, count = Tableau, NumTableaus
	case 'f':
		kind, count = Foundation, NumFoundations
	default:
		return StackRef{}, fmt.Errorf("stack reference %q: %w", s, ErrUnknownStack)
	}
	n, err := strconv.Atoi(s[1:])
	if err != nil || n < 1 || n > count {
		return StackRef{}, fmt.Errorf("stack reference %q: %w", s, ErrUnknownStack)
	}
	return StackRef{Kind: kind, Index: n - 1}, nil
}

// Table is one game session: the thirteen stacks and the random source
// used to shuffle them. Stacks are created once with the table and live as
// long as it does; NewDeal only replaces their contents.
type Table struct {
	// ID of the current deal, regenerated by NewDeal.
	ID string

	Foundations [NumFoundations]*Stack
	Waste       *Stack
	Deal        *Stack
	Tableaus    [NumTableaus]*Stack

	seed uint64
	rng  *rand.Rand
}

// NewTable creates a table with empty stacks. Deals on the table are a
// deterministic function of the seed. Call NewDeal to start playing.
func NewTable(seed uint64) *Table {
	t := &Table{
		Waste: NewStack(Waste, 0),
		Deal:  NewStack(Deal, 0),
		seed:  seed,
		rng:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
	for i := range t.Foundations {
		t.Foundations[i] = NewStack(Foundation, i)
	}
	for i := range t.Tableaus {
		t.Tableaus[i] = NewStack(Tableau, i)
	}
	return t
}

// Seed the table was created with.
func (t *Table) Seed() uint64 { return t.seed }

// Stacks returns the thirteen stacks in canonical order:
// Foundations, Waste, Deal, then Tableaus.
func (t *Table) Stacks() []*Stack {
	stacks := make([]*Stack, 0, NumFoundations+2+NumTableaus)
	stacks = append(stacks, t.Foundations[:]...)
	stacks = append(stacks, t.Waste, t.Deal)
	stacks = append(stacks, t.Tableaus[:]...)
	return stacks
}

// Stack returns the stack addressed by ref, or nil if there is none.
func (t *Table) Stack(ref StackRef) *Stack {
	switch ref.Kind {
	case Tableau:
		if ref.Index >= 0 && ref.Index < NumTableaus {
			return t.Tableaus[ref.Index]
		}
	case Foundation:
		if ref.Index >= 0 && ref.Index < NumFoundations {
			return t.Foundations[ref.Index]
		}
	case Waste:
		if ref.Index == 0 {
			return t.Waste
		}
	case Deal:
		if ref.Index == 0 {
			return t.Deal
		}
	}
	return nil
}

// NumCards returns the total number of cards on the table.
func (t *Table) NumCards() int {
	total := 0
	for _, s := range t.Stacks() {
		total += s.Len()
	}
	return total
}

// Won reports whether every card has reached the foundations.
func (t *Table) Won() bool {
	for _, f := range t.Foundations {
		if f.Len() != NumRanks {
			return false
		}
	}
	return true
}
