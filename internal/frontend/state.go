package frontend

import (
	"time"

	"github.com/janpfeifer/GoKlondike/internal/game"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"
)

// GlobalClientState holds the game played in the browser.
//
// The whole game runs client-side: components call the engine directly and
// re-render when one of the table's stacks reports a change.
type GlobalClientState struct {
	Table *game.Table

	// Selection is the card picked up for a move, if any.
	Selection *Selection

	// Changes counts stack notifications since the state was created.
	Changes int

	// Listeners for state updates
	Listeners map[string]func()
}

// Selection is a card picked up by the player, together with the cards on
// top of it if it's in the middle of a tableau.
type Selection struct {
	Ref   game.StackRef
	Index int
}

var State *GlobalClientState

// InitState creates the global state and deals a first game.
// A zero seed picks one based on the current time.
func InitState(seed uint64) {
	if State == nil {
		klog.V(1).Infof("InitState: creating new state (was nil)")
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		State = &GlobalClientState{
			Table:     game.NewTable(seed),
			Listeners: make(map[string]func()),
		}
		for _, s := range State.Table.Stacks() {
			s.OnChanged(State.onStackChanged)
		}
		State.Table.NewDeal()
	} else {
		klog.V(1).Infof("InitState: state already exists")
	}
}

// RegisterRoutes registers the go-app routes, both for the server
// (prerendering) and for the browser.
func RegisterRoutes() {
	app.Route("/", func() app.Composer { return &Board{} })
}

func (s *GlobalClientState) onStackChanged() {
	s.Changes++
	s.Notify()
}

// Notify calls every listener.
func (s *GlobalClientState) Notify() {
	for _, l := range s.Listeners {
		if l != nil {
			l()
		}
	}
}

// NewDeal drops any selection and deals a new game on the same table.
func (s *GlobalClientState) NewDeal() {
	s.Selection = nil
	s.Table.NewDeal()
	klog.Infof("NewDeal: dealt table %s", s.Table.ID)
}

// Select picks up the card at index of the stack, or drops the current
// selection onto that stack if there is one. A click on the Deal drops the
// selection and draws. It reports whether cards moved.
func (s *GlobalClientState) Select(ref game.StackRef, index int) bool {
	if sel := s.Selection; sel != nil {
		s.Selection = nil
		if ref.Kind == game.Deal {
			// Nothing drops on the Deal: a click there still draws.
			if !s.Table.Tap(s.Table.Deal) {
				s.Notify()
				return false
			}
			return true
		}
		from, to := s.Table.Stack(sel.Ref), s.Table.Stack(ref)
		if sel.Ref == ref || from == nil || to == nil || !s.Table.Drag(from, sel.Index, to) {
			s.Notify()
			return false
		}
		return true
	}

	stack := s.Table.Stack(ref)
	if stack == nil {
		return false
	}
	if ref.Kind == game.Deal {
		return s.Table.Tap(stack)
	}
	if index < 0 || index >= stack.Len() || !stack.Cards()[index].FaceUp || ref.Kind == game.Foundation {
		return false
	}
	// A tap on a top card moves it where it fits; when it fits nowhere, or
	// for cards deeper in a tableau, the card is picked up instead.
	if index == stack.Len()-1 && s.Table.Tap(stack) {
		return true
	}
	s.Selection = &Selection{Ref: ref, Index: index}
	s.Notify()
	return false
}

// IsSelected reports whether the card at index of the stack is part of the selection.
func (s *GlobalClientState) IsSelected(ref game.StackRef, index int) bool {
	return s.Selection != nil && s.Selection.Ref == ref && index >= s.Selection.Index
}
