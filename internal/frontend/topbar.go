package frontend

import (
	"fmt"

	"github.com/janpfeifer/GoKlondike/internal/game"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

type TopBar struct {
	app.Compo
}

func (t *TopBar) onNewDeal(ctx app.Context, e app.Event) {
	e.PreventDefault()
	State.NewDeal()
}

func (t *TopBar) onBannerClick(ctx app.Context, e app.Event) {
	ctx.Navigate("/")
}

func (t *TopBar) Render() app.UI {
	table := State.Table
	status := fmt.Sprintf("Deal %d · Waste %d", table.Deal.Len(), table.Waste.Len())

	return app.Nav().Body(
		app.Ul().Body(
			app.Li().Body(
				app.Strong().
					Text("GoKlondike").
					Style("cursor", "pointer").
					OnClick(t.onBannerClick),
			),
			app.Li().Body(
				app.Small().Text(game.Version),
			),
		),
		app.Ul().Body(
			app.Li().Body(app.Span().Class("status").Text(status)),
			app.Li().Body(
				app.A().Href("#").OnClick(t.onNewDeal).Text("New Deal"),
			),
		),
	)
}
