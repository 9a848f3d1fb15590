package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/talx-hub/rez-booking/internal/api/handlers"
	"github.com/talx-hub/rez-booking/internal/config"
	"github.com/talx-hub/rez-booking/internal/metrics"
	"github.com/talx-hub/rez-booking/internal/model"
	"github.com/talx-hub/rez-booking/internal/model/merchant"
	"github.com/talx-hub/rez-booking/internal/repo"
	"github.com/talx-hub/rez-booking/internal/router"
	"github.com/talx-hub/rez-booking/internal/service/bookings"
	"github.com/talx-hub/rez-booking/internal/service/wallets"
	"github.com/talx-hub/rez-booking/internal/utils/logger"
)

func initService(ctx context.Context, cfg *config.Config, reg *prometheus.Registry, log *slog.Logger,
) (http.Handler, error) {
	db := repo.New(merchant.Catalog(), log)
	m := metrics.New(reg)

	walletService := wallets.New(repo.NewWalletRepository(db), m, log)
	err := walletService.SeedOpeningBalance(ctx,
		cfg.DemoUserID, model.NewCoins(cfg.DemoOpeningBalance))
	if err != nil {
		return nil, fmt.Errorf("failed to seed demo wallet: %w", err)
	}

	bookingService := bookings.New(repo.NewBookingRepository(db), m, log,
		bookings.Settings{
			DemoUserID:    cfg.DemoUserID,
			StrictOptions: cfg.StrictBookingOptions,
		})

	rr := router.New(cfg, log)
	rr.SetMiddlewares(m)
	rr.SetRouter(&handlers.Handler{
		MerchantHandler: handlers.NewMerchantHandler(repo.NewMerchantRepository(db), log),
		BookingHandler:  handlers.NewBookingHandler(bookingService, log),
		WalletHandler:   handlers.NewWalletHandler(walletService, log),
		HealthHandler:   handlers.NewHealthHandler(),
	})
	rr.SetMetrics(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	return rr.GetRouter(), nil
}

// RunServer starts the booking API and blocks until it is stopped by a signal.
func RunServer() {
	bootLog := slog.Default()
	cfg := config.NewBuilder(bootLog).
		FromDotenv().
		FromEnv().
		FromFlags(os.Args[0], os.Args[1:]).
		GetConfig()

	log := logger.New(logger.ParseLevel(cfg.LogLevel))

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	ctx, stop := signalContext()
	defer stop()

	mux, err := initService(ctx, cfg, reg, log)
	if err != nil {
		log.LogAttrs(ctx,
			slog.LevelError,
			"failed to init service",
			slog.Any(model.KeyLoggerError, err),
		)
		return
	}

	log.LogAttrs(ctx,
		slog.LevelInfo,
		"booking API is listening",
		slog.String("address", cfg.RunAddr),
		slog.Int64("demo_user_id", cfg.DemoUserID),
		slog.Bool("strict_booking_options", cfg.StrictBookingOptions),
	)
	if err = serve(ctx, cfg.RunAddr, mux, cfg.ShutdownTimeout, log); err != nil {
		log.LogAttrs(context.Background(),
			slog.LevelError,
			"listen and serve error",
			slog.Any(model.KeyLoggerError, err),
		)
	}
}
