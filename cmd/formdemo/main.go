// Command formdemo serves a booking form with live, dependency-aware validation.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/formcascade/pkg/cascade"
	"github.com/dmitrymomot/formcascade/pkg/config"
	"github.com/dmitrymomot/formcascade/pkg/livefield"
	"github.com/dmitrymomot/formcascade/pkg/logger"
)

// Config is the process configuration, read from the environment and an
// optional .env file.
type Config struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"debug"`
	// Manifest is an optional path to a form manifest overriding the embedded one.
	Manifest string `env:"FORM_MANIFEST"`

	HTTP    HTTPConfig
	Cascade cascade.Config
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return err
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log := logger.New(
		logger.WithEnvironment(cfg.Env, "formdemo"),
		logger.WithLevel(level),
		logger.WithContextExtractors(requestIDExtractor()),
	)
	logger.SetAsDefault(log)

	form, err := newForm(cfg, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return serve(ctx, cfg.HTTP, newRouter(form, log), log)
}

func newForm(cfg Config, log *slog.Logger) (*livefield.Form[Booking], error) {
	manifest, err := loadManifest(cfg.Manifest)
	if err != nil {
		return nil, err
	}

	rules := bookingRules()
	coordinator, err := cascade.NewFromConfig[Booking](rules, rules, cfg.Cascade, cascade.WithLogger(log))
	if err != nil {
		return nil, err
	}
	return livefield.NewForm(manifest, coordinator, livefield.WithFormLogger[Booking](log)), nil
}
