package config

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"github.com/talx-hub/rez-booking/internal/model"
)

// Config configures the catalog and booking API.
type Config struct {
	RunAddr              string        `env:"RUN_ADDRESS"            envDefault:"localhost:3001"`
	LogLevel             string        `env:"LOG_LEVEL"              envDefault:"info"`
	DemoUserID           int64         `env:"DEMO_USER_ID"           envDefault:"1"`
	DemoOpeningBalance   int64         `env:"DEMO_OPENING_BALANCE"   envDefault:"250"`
	ShutdownTimeout      time.Duration `env:"SHUTDOWN_TIMEOUT"       envDefault:"5s"`
	StrictBookingOptions bool          `env:"STRICT_BOOKING_OPTIONS" envDefault:"false"`
}

// WebConfig configures the presentation client.
type WebConfig struct {
	RunAddr       string        `env:"WEB_ADDRESS"    envDefault:"localhost:5173"`
	APIBaseURL    string        `env:"API_BASE_URL"   envDefault:"http://localhost:3001/api"`
	SessionSecret string        `env:"SESSION_SECRET" envDefault:""`
	LogLevel      string        `env:"LOG_LEVEL"      envDefault:"info"`
	DemoUserID    int64         `env:"DEMO_USER_ID"   envDefault:"1"`
	APITimeout    time.Duration `env:"API_TIMEOUT"    envDefault:"3s"`
	MaxInFlight   uint64        `env:"API_MAX_IN_FLIGHT" envDefault:"16"`
}

type Builder[T any] struct {
	cfg  *T
	log  *slog.Logger
	bind func(fs *flag.FlagSet, cfg *T)
}

func NewBuilder(log *slog.Logger) *Builder[Config] {
	return &Builder[Config]{
		cfg: &Config{
			RunAddr:              "",
			LogLevel:             "",
			DemoUserID:           0,
			DemoOpeningBalance:   0,
			ShutdownTimeout:      model.DefaultShutdownTimeout,
			StrictBookingOptions: false,
		},
		log:  log,
		bind: bindServiceFlags,
	}
}

func NewWebBuilder(log *slog.Logger) *Builder[WebConfig] {
	return &Builder[WebConfig]{
		cfg: &WebConfig{
			RunAddr:       "",
			APIBaseURL:    "",
			SessionSecret: "",
			LogLevel:      "",
			DemoUserID:    0,
			APITimeout:    model.DefaultTimeout,
			MaxInFlight:   model.DefaultMaxInFlight,
		},
		log:  log,
		bind: bindWebFlags,
	}
}

// FromDotenv loads variables from dotenv files into the process environment.
// Variables already set are kept. Missing files are skipped.
func (b *Builder[T]) FromDotenv(files ...string) *Builder[T] {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		b.log.LogAttrs(context.Background(),
			slog.LevelError, "Failed to load dotenv file", slog.Any(model.KeyLoggerError, err))
	}
	return b
}

func (b *Builder[T]) FromEnv() *Builder[T] {
	if err := env.Parse(b.cfg); err != nil {
		b.log.LogAttrs(context.Background(),
			slog.LevelError, "Failed to parse config", slog.Any(model.KeyLoggerError, err))
	}
	return b
}

func (b *Builder[T]) FromFlags(name string, args []string) *Builder[T] {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	b.bind(fs, b.cfg)

	if err := fs.Parse(args); err != nil {
		b.log.LogAttrs(context.Background(),
			slog.LevelError, "Failed to parse flags", slog.Any(model.KeyLoggerError, err))
	}
	return b
}

func (b *Builder[T]) GetConfig() *T {
	return b.cfg
}

func bindServiceFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.RunAddr, "a", cfg.RunAddr, "Run address")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "Log level")
	fs.Int64Var(&cfg.DemoUserID, "u", cfg.DemoUserID, "Demo user ID")
	fs.Int64Var(&cfg.DemoOpeningBalance, "b", cfg.DemoOpeningBalance, "Demo user opening balance")
	fs.DurationVar(&cfg.ShutdownTimeout, "t", cfg.ShutdownTimeout, "Shutdown timeout")
	fs.BoolVar(&cfg.StrictBookingOptions, "s", cfg.StrictBookingOptions, "Validate booking options")
}

func bindWebFlags(fs *flag.FlagSet, cfg *WebConfig) {
	fs.StringVar(&cfg.RunAddr, "a", cfg.RunAddr, "Run address")
	fs.StringVar(&cfg.APIBaseURL, "r", cfg.APIBaseURL, "Booking API base URL")
	fs.StringVar(&cfg.SessionSecret, "k", cfg.SessionSecret, "Session secret key")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "Log level")
	fs.Int64Var(&cfg.DemoUserID, "u", cfg.DemoUserID, "Demo user ID")
	fs.DurationVar(&cfg.APITimeout, "t", cfg.APITimeout, "API request timeout")
	fs.Uint64Var(&cfg.MaxInFlight, "m", cfg.MaxInFlight, "Max concurrent API requests")
}
