package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"yelpcamp/app/routes"
	"yelpcamp/app/views"
	"yelpcamp/config"
	"yelpcamp/logging"
)

// RunAppServer serves the application until SIGINT or SIGTERM.
func RunAppServer(args []string) int {
	fs := newFlagSet("serve")
	addr := fs.String("addr", "", "listen address, overrides server.addr")
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(output, "Error: %v\n", err)
		return 1
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runServer(ctx, cfg); err != nil {
		logging.Err(err).Msg("Server stopped with error")
		return 1
	}
	return 0
}

// runServer opens the store, builds the handler and serves until ctx is done.
func runServer(ctx context.Context, cfg *config.Config) error {
	st, err := openStore(ctx, cfg.Store)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer st.close()

	renderer, err := views.New(cfg.Server.ViewsDir)
	if err != nil {
		return fmt.Errorf("failed to load views: %w", err)
	}

	handler := routes.NewHandler(routes.Dependencies{
		Campgrounds: st.campgrounds,
		Reviews:     st.reviews,
		Views:       renderer,
	})

	ln, err := net.Listen("tcp", cfg.Server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Server.Addr, err)
	}
	logging.Info().Str("addr", ln.Addr().String()).Msg("Serving on port")

	return serveHTTP(ctx, ln, handler, cfg.Server.ShutdownTimeout)
}

// serveHTTP serves on ln and shuts down gracefully once ctx is done, giving
// in-flight requests up to timeout to finish.
func serveHTTP(ctx context.Context, ln net.Listener, handler http.Handler, timeout time.Duration) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logging.Info().Dur("timeout", timeout).Msg("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	logging.Info().Msg("Server stopped")
	return nil
}
