// Command wasm is the browser side of GoKlondike: the whole game runs here.
package main

import (
	"flag"
	"os"

	"github.com/janpfeifer/GoKlondike/internal/frontend"
	"github.com/janpfeifer/GoKlondike/internal/game"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"
)

func main() {
	// The browser console is stderr.
	fs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fs)
	_ = fs.Set("logtostderr", "true")
	_ = fs.Set("v", "1")
	klog.SetOutput(os.Stderr)

	frontend.RegisterRoutes()
	frontend.InitState(0)
	klog.Infof("GoKlondike %s: dealt table %s (seed %d)", game.Version, frontend.State.Table.ID, frontend.State.Table.Seed())
	app.RunWhenOnBrowser()
}
