package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/janpfeifer/GoKlondike/internal/server"
	"k8s.io/klog/v2"
)

var (
	flagAddr = flag.String("addr", "", "Address to listen on (default: auto-port on localhost)")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	started := make(chan *server.ServerState, 1)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		state := <-started
		fmt.Printf("GoKlondike server listening on http://%s\n", state.Address)
	}()

	if err := server.Run(ctx, *flagAddr, started); err != nil {
		klog.Fatal(err)
	}
}
