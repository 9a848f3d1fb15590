package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/talx-hub/rez-booking/internal/client"
	"github.com/talx-hub/rez-booking/internal/config"
	"github.com/talx-hub/rez-booking/internal/model"
	"github.com/talx-hub/rez-booking/internal/utils/logger"
	"github.com/talx-hub/rez-booking/internal/web"
)

const generatedSecretSize = 32

func initWeb(cfg *config.WebConfig, log *slog.Logger) (http.Handler, error) {
	api, err := client.New(cfg.APIBaseURL, cfg.APITimeout, cfg.MaxInFlight)
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}

	secret, err := sessionSecret(cfg.SessionSecret, log)
	if err != nil {
		return nil, err
	}

	h, err := web.NewHandler(api, log, secret, cfg.DemoUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to create web handler: %w", err)
	}

	wr := web.NewRouter(secret, log)
	wr.SetMiddlewares()
	wr.SetRouter(h)
	return wr.GetRouter(), nil
}

// sessionSecret falls back to a random per-process key, which invalidates confirmation
// cookies on restart.
func sessionSecret(configured string, log *slog.Logger) ([]byte, error) {
	if configured != "" {
		return []byte(configured), nil
	}

	secret := make([]byte, generatedSecretSize)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("failed to generate session secret: %w", err)
	}
	log.LogAttrs(context.Background(),
		slog.LevelWarn,
		"SESSION_SECRET is not set, using a random key",
	)
	return secret, nil
}

// RunWebServer starts the presentation client and blocks until it is stopped by a signal.
func RunWebServer() {
	bootLog := slog.Default()
	cfg := config.NewWebBuilder(bootLog).
		FromDotenv().
		FromEnv().
		FromFlags(os.Args[0], os.Args[1:]).
		GetConfig()

	log := logger.New(logger.ParseLevel(cfg.LogLevel))

	ctx, stop := signalContext()
	defer stop()

	mux, err := initWeb(cfg, log)
	if err != nil {
		log.LogAttrs(ctx,
			slog.LevelError,
			"failed to init web client",
			slog.Any(model.KeyLoggerError, err),
		)
		return
	}

	log.LogAttrs(ctx,
		slog.LevelInfo,
		"web client is listening",
		slog.String("address", cfg.RunAddr),
		slog.String("api", cfg.APIBaseURL),
	)
	if err = serve(ctx, cfg.RunAddr, mux, model.DefaultShutdownTimeout, log); err != nil {
		log.LogAttrs(context.Background(),
			slog.LevelError,
			"listen and serve error",
			slog.Any(model.KeyLoggerError, err),
		)
	}
}
