package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/talx-hub/rez-booking/internal/model"
)

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// serve runs h on addr until ctx is done, then drains in-flight requests for at most
// shutdownTimeout.
func serve(ctx context.Context, addr string, h http.Handler, shutdownTimeout time.Duration,
	log *slog.Logger,
) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return serveListener(ctx, ln, h, shutdownTimeout, log)
}

func serveListener(ctx context.Context, ln net.Listener, h http.Handler,
	shutdownTimeout time.Duration, log *slog.Logger,
) error {
	if shutdownTimeout <= 0 {
		shutdownTimeout = model.DefaultShutdownTimeout
	}

	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: model.DefaultTimeout,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
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
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
	}

	log.LogAttrs(context.Background(),
		slog.LevelInfo,
		"shutting down",
		slog.Duration("timeout", shutdownTimeout),
	)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}
