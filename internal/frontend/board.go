package frontend

import (
	"fmt"

	"github.com/janpfeifer/GoKlondike/internal/game"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"
)

// Board renders the table and turns clicks into moves.
type Board struct {
	app.Compo

	onUpdate func()
}

func (b *Board) OnAppUpdate(ctx app.Context) {
	klog.Infof("Board component: App update available, not reloading not to interrupt the game...")
}

func (b *Board) OnMount(ctx app.Context) {
	if app.IsServer {
		return
	}
	klog.V(1).Infof("Board component: OnMount called")
	b.onUpdate = func() {
		ctx.Dispatch(func(ctx app.Context) {})
	}
	State.Listeners["board"] = b.onUpdate
}

func (b *Board) OnDismount() {
	if app.IsServer {
		return
	}
	klog.V(1).Infof("Board component: OnDismount called")
	delete(State.Listeners, "board")
}

func (b *Board) onCardClick(ref game.StackRef, index int) app.EventHandler {
	return func(ctx app.Context, e app.Event) {
		e.PreventDefault()
		e.StopImmediatePropagation()
		State.Select(ref, index)
	}
}

func cardClasses(c *game.Card) []string {
	if !c.FaceUp {
		return []string{"card", "face-down"}
	}
	if c.Color() == game.Red {
		return []string{"card", "red"}
	}
	return []string{"card", "black"}
}

func (b *Board) renderCard(ref game.StackRef, index int, c *game.Card, offset int) app.UI {
	classes := cardClasses(c)
	if State.IsSelected(ref, index) {
		classes = append(classes, "selected")
	}
	label := ""
	if c.FaceUp {
		label = c.String()
	}
	return app.Div().
		Class(classes...).
		Style("top", fmt.Sprintf("%.1frem", float64(offset)*1.6)).
		Text(label).
		OnClick(b.onCardClick(ref, index))
}

// renderPile shows only the top card of a stack.
func (b *Board) renderPile(s *game.Stack) app.UI {
	ref := s.Ref()
	slot := app.Div().Class("slot").OnClick(b.onCardClick(ref, -1))
	if s.IsEmpty() {
		return slot.Body(app.Span().Class("slot-label").Text(ref.String()))
	}
	return slot.Body(b.renderCard(ref, s.Len()-1, s.TopCard(), 0))
}

// renderColumn fans out every card of a tableau.
func (b *Board) renderColumn(s *game.Stack) app.UI {
	ref := s.Ref()
	cards := s.Cards()
	body := make([]app.UI, 0, len(cards))
	for i, c := range cards {
		body = append(body, b.renderCard(ref, i, c, i))
	}
	return app.Div().
		Class("slot", "column").
		Style("height", fmt.Sprintf("%.1frem", 6+float64(len(cards))*1.6)).
		OnClick(b.onCardClick(ref, -1)).
		Body(body...)
}

func (b *Board) Render() app.UI {
	if State == nil || State.Table == nil {
		return app.Main().Class("container").Body(
			app.Div().Aria("busy", "true").Text("Dealing..."),
		)
	}
	t := State.Table

	piles := []app.UI{b.renderPile(t.Deal), b.renderPile(t.Waste), app.Div().Class("spacer")}
	for _, f := range t.Foundations {
		piles = append(piles, b.renderPile(f))
	}
	columns := make([]app.UI, 0, game.NumTableaus)
	for _, s := range t.Tableaus {
		columns = append(columns, b.renderColumn(s))
	}

	var banner app.UI = app.Text("")
	if t.Won() {
		banner = app.Article().Class("won").Body(
			app.H2().Text("You won!"),
		)
	}

	return app.Main().Class("container").Body(
		&TopBar{},
		banner,
		app.Div().Class("board").Body(
			app.Div().Class("row", "piles").Body(piles...),
			app.Div().Class("row", "tableaus").Body(columns...),
		),
	)
}
