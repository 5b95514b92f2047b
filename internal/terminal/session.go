package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/janpfeifer/GoKlondike/internal/game"
	"k8s.io/klog/v2"
)

// ErrUnknownCommand is returned by Execute for commands it doesn't know.
var ErrUnknownCommand = errors.New("unknown command")

// HelpText lists the commands understood by a Session.
const HelpText = `Commands:
  new                 shuffle and deal a new game
  draw                draw a card from the deal (or recycle the waste)
  tap <stack>         move the top card of a stack where it fits
  move <from> <to>    move the top card of <from> onto <to>
  move <from> <n> <to>
                      move the cards of <from> from row <n> up onto <to>
  run <stack>         move the longest run of a tableau that fits elsewhere
  show                print the table
  help                print this help
  quit                leave
Stacks: t1..t7 (tableaus), f1..f4 (foundations), w (waste), d (deal).
`

// Session plays commands read from a terminal against a table, and prints
// the table again whenever a command changed it.
type Session struct {
	table *game.Table
	out   io.Writer
	dirty bool
}

// NewSession creates a session and subscribes to changes of every stack of the table.
func NewSession(table *game.Table, out io.Writer) *Session {
	s := &Session{table: table, out: out}
	for _, stack := range table.Stacks() {
		stack.OnChanged(s.markDirty)
	}
	return s
}

func (s *Session) markDirty() {
	s.dirty = true
}

// Close unsubscribes the session from the table.
func (s *Session) Close() {
	for _, stack := range s.table.Stacks() {
		stack.OnChanged(nil)
	}
}

// Run prints the table and executes one command per line of in, until in
// is exhausted, a "quit" command or the context is cancelled.
// Invalid commands are reported to the output and don't stop the session.
//
// Lines are read in a separate goroutine, so cancelling the context stops a
// session blocked waiting for input. That goroutine lives until the next
// read of in returns.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	Render(s.out, s.table)
	s.dirty = false

	lines := make(chan string)
	var readErr error
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr = scanner.Err()
	}()

	for {
		fmt.Fprint(s.out, "> ")
		var line string
		var ok bool
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok = <-lines:
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !ok {
			// readErr is set before lines is closed.
			if readErr != nil {
				return fmt.Errorf("failed to read commands: %w", readErr)
			}
			return nil
		}
		quit, err := s.Execute(line)
		if err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
		if quit {
			return nil
		}
		s.refresh()
	}
}

// refresh prints the table if it changed since it was last printed.
func (s *Session) refresh() {
	if !s.dirty {
		return
	}
	s.dirty = false
	Render(s.out, s.table)
	if s.table.Won() {
		fmt.Fprintln(s.out, "You won!")
	}
}

// Execute runs one command line. Moves that the rules don't allow are not
// errors: they are reported to the output and leave the table untouched.
func (s *Session) Execute(line string) (quit bool, err error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return false, nil
	}
	cmd, args := fields[0], fields[1:]
	klog.V(1).Infof("Session: command %q %v", cmd, args)

	switch cmd {
	case "quit", "exit", "q":
		return true, nil

	case "help", "?":
		fmt.Fprint(s.out, HelpText)

	case "show":
		s.dirty = true

	case "new":
		s.table.NewDeal()

	case "draw":
		if !s.table.Tap(s.table.Deal) {
			fmt.Fprintln(s.out, "Nothing left to draw.")
		}

	case "tap":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: tap <stack>")
		}
		stack, err := s.stack(args[0])
		if err != nil {
			return false, err
		}
		s.report(s.table.Tap(stack))

	case "move":
		return false, s.move(args)

	case "run":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: run <stack>")
		}
		stack, err := s.stack(args[0])
		if err != nil {
			return false, err
		}
		if stack.Kind() != game.Tableau {
			return false, fmt.Errorf("run: %s is not a tableau", stack.Ref())
		}
		moved, _ := game.MoveRun(stack, stack.FaceUpCards(), s.table.Tableaus[:])
		s.report(moved)

	default:
		return false, fmt.Errorf("%q: %w, type \"help\" for the list", cmd, ErrUnknownCommand)
	}
	return false, nil
}

func (s *Session) move(args []string) error {
	if len(args) != 2 && len(args) != 3 {
		return fmt.Errorf("usage: move <from> [<row>] <to>")
	}
	from, err := s.stack(args[0])
	if err != nil {
		return err
	}
	to, err := s.stack(args[len(args)-1])
	if err != nil {
		return err
	}
	index := from.Len() - 1
	if len(args) == 3 {
		row, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid row %q: %w", args[1], err)
		}
		index = row - 1
	}
	s.report(s.table.Drag(from, index, to))
	return nil
}

func (s *Session) stack(name string) (*game.Stack, error) {
	ref, err := game.ParseStackRef(name)
	if err != nil {
		return nil, err
	}
	return s.table.Stack(ref), nil
}

func (s *Session) report(moved bool) {
	if !moved {
		fmt.Fprintln(s.out, "Can't move there.")
	}
}
