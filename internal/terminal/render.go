// Package terminal implements a text UI for the game: it renders the table
// with go-pretty and plays typed commands against it.
package terminal

import (
	"fmt"
	"io"
	"strconv"

	"github.com/janpfeifer/GoKlondike/internal/game"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const (
	// FaceDownLabel is shown in place of a face-down card.
	FaceDownLabel = "▒▒"

	// EmptyLabel is shown for an empty pile.
	EmptyLabel = "--"
)

// Label returns the text shown for a card, hiding face-down cards.
func Label(c *game.Card) string {
	if c == nil {
		return EmptyLabel
	}
	if !c.FaceUp {
		return FaceDownLabel
	}
	return c.String()
}

// pileLabel shows the top card of a pile and how many cards it holds.
func pileLabel(s *game.Stack) string {
	if s.IsEmpty() {
		return EmptyLabel
	}
	return fmt.Sprintf("%s (%d)", Label(s.TopCard()), s.Len())
}

func newWriter(w io.Writer) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	// Keep headers as typed in commands ("t1", not "T1").
	tw.Style().Format.Header = text.FormatDefault
	return tw
}

// Render writes the piles (deal, waste and foundations) and then the
// tableau columns, one row per card position, numbered from 1.
func Render(w io.Writer, t *game.Table) {
	piles := newWriter(w)
	header := table.Row{t.Deal.Ref().String(), t.Waste.Ref().String()}
	row := table.Row{pileLabel(t.Deal), pileLabel(t.Waste)}
	for _, f := range t.Foundations {
		header = append(header, f.Ref().String())
		row = append(row, Label(f.TopCard()))
	}
	piles.AppendHeader(header)
	piles.AppendRow(row)
	piles.Render()

	columns := make([][]*game.Card, game.NumTableaus)
	height := 0
	tableaus := newWriter(w)
	header = table.Row{"#"}
	for i, s := range t.Tableaus {
		header = append(header, s.Ref().String())
		columns[i] = s.Cards()
		height = max(height, len(columns[i]))
	}
	tableaus.AppendHeader(header)
	for pos := range height {
		row := table.Row{strconv.Itoa(pos + 1)}
		for _, cards := range columns {
			cell := ""
			if pos < len(cards) {
				cell = Label(cards[pos])
			}
			row = append(row, cell)
		}
		tableaus.AppendRow(row)
	}
	if height == 0 {
		row := table.Row{""}
		for range columns {
			row = append(row, EmptyLabel)
		}
		tableaus.AppendRow(row)
	}
	tableaus.Render()
}
