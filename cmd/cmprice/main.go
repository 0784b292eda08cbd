// Command cmprice prints European call prices computed with the Carr-Madan
// FFT method.
//
// Usage:
//
//	cmprice [flags]
//
// Each maturity is priced on its own goroutine with a shared pricer. For
// models with a closed form (bs, merton) the table also shows the
// reference price and the absolute difference.
//
// Examples:
//
//	cmprice --model bs --spot 50 --sigma 0.3 --maturity 1
//	cmprice --model merton --maturity 0.5,1,2 --min-strike 40 --max-strike 60
//	cmprice --model vg --spot 100 --strikes 90,100,110
//	cmprice --config pricing.yaml
//	cmprice --list-models
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/cwbudde/algo-carrmadan/pricing/carrmadan"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(args, stderr)
	if err != nil {
		return err
	}
	logger := newLogger(stderr, cfg.LogLevel)

	if cfg.ListModels {
		return printModels(stdout)
	}

	m, ok := lookupModel(cfg.Model)
	if !ok {
		return fmt.Errorf("cmprice: unknown model %q (use --list-models to see available)", cfg.Model)
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	pricer, err := carrmadan.NewPricer(cfg.N, cfg.Eta, cfg.Alpha)
	if err != nil {
		return err
	}
	logger.Debug().
		Str("model", m.name).
		Int("n", cfg.N).
		Float64("eta", cfg.Eta).
		Float64("alpha", cfg.Alpha).
		Int("maturities", len(cfg.Maturities)).
		Msg("pricer ready")

	tables, err := priceMaturities(ctx, pricer, m, cfg, logger)
	if err != nil {
		return err
	}
	return writeTables(stdout, tables, m.reference != nil)
}

func newLogger(w io.Writer, level string) zerolog.Logger {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).With().Timestamp().Logger()

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		logger.Warn().Str("level", level).Msg("unknown log level, using info")
		lvl = zerolog.InfoLevel
	}
	return logger.Level(lvl)
}
