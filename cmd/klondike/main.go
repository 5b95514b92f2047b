package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/janpfeifer/GoKlondike/internal/game"
	"github.com/janpfeifer/GoKlondike/internal/terminal"
	"k8s.io/klog/v2"
)

var (
	flagSeed = flag.Uint64("seed", 0, "Seed for the shuffles (default: based on the current time)")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	seed := *flagSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	table := game.NewTable(seed)
	table.NewDeal()
	fmt.Printf("GoKlondike %s, seed %d. Type \"help\" for the commands.\n", game.Version, seed)

	session := terminal.NewSession(table, os.Stdout)
	defer session.Close()
	if err := session.Run(ctx, os.Stdin); err != nil {
		klog.Fatalf("Session ended with error: %v", err)
	}
}
