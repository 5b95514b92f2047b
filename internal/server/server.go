package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/janpfeifer/GoKlondike/internal/frontend"
	"github.com/janpfeifer/GoKlondike/internal/game"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"
)

// ServerState is reported once the server is listening.
type ServerState struct {
	// Address the server is listening on, e.g. "127.0.0.1:34567".
	Address string
}

// Styles are the stylesheets linked by the game page, served from web/.
var Styles = []string{"/web/css/main.css"}

// Handler returns the HTTP handler serving the game page and the static
// files (including the compiled WASM) from the web/ directory.
func Handler() http.Handler {
	// Initialize global client state for server-side prerendering without panic
	frontend.InitState(0)

	// Register go-app routes so the server knows how to prerender them
	frontend.RegisterRoutes()

	// The web assets and the compiled webassembly
	// are served natively by the go-app framework
	h := &app.Handler{
		Name:        "GoKlondike",
		Title:       "GoKlondike",
		Description: "Klondike solitaire",
		Version:     game.Version,
		Styles:      Styles,
	}

	mux := http.NewServeMux()
	mux.Handle("/web/", http.StripPrefix("/web/", http.FileServer(http.Dir("web/"))))
	mux.Handle("/", h)
	return mux
}

// Run starts the server and blocks until the context is canceled.
//
// An empty addr listens on an automatically chosen port on localhost.
// If started is not nil, the server state is sent to it once listening.
func Run(ctx context.Context, addr string, started chan<- *ServerState) error {
	if addr == "" {
		addr = "localhost:0"
	}
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %q: %w", addr, err)
	}

	srv := &http.Server{
		Handler: Handler(),
	}
	state := &ServerState{Address: listener.Addr().String()}

	serveErr := make(chan error, 1)
	go func() {
		klog.Infof("Server started on %s", state.Address)
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			klog.Errorf("Server error: %v", err)
			serveErr <- err
		}
		close(serveErr)
	}()
	if started != nil {
		started <- state
	}

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server on %s failed: %w", state.Address, err)
		}
		return nil
	}

	// Graceful shutdown with 5 second timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	klog.Infof("Shutting down server...")
	return srv.Shutdown(shutdownCtx)
}
