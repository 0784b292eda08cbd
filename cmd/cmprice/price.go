package main

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-carrmadan/pricing/carrmadan"
)

type row struct {
	strike    float64
	price     float64
	reference float64
}

type table struct {
	maturity float64
	rows     []row
}

// priceMaturities prices every configured maturity concurrently and returns
// the tables in the configured order.
func priceMaturities(ctx context.Context, pricer *carrmadan.Pricer, m model, cfg config, logger zerolog.Logger) ([]table, error) {
	tables := make([]table, len(cfg.Maturities))
	g, ctx := errgroup.WithContext(ctx)

	for i, t := range cfg.Maturities {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			start := time.Now()
			quotes, err := pricer.CallPrices(cfg.Spot, math.Exp(-cfg.Rate*t), m.cf(cfg, t))
			if err != nil {
				return fmt.Errorf("cmprice: maturity %v: %w", t, err)
			}

			rows, err := selectRows(quotes, m, cfg, t)
			if err != nil {
				return fmt.Errorf("cmprice: maturity %v: %w", t, err)
			}
			tables[i] = table{maturity: t, rows: rows}

			logger.Debug().
				Float64("maturity", t).
				Int("rows", len(rows)).
				Dur("elapsed", time.Since(start)).
				Msg("priced maturity")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tables, nil
}

// selectRows picks the requested strikes: interpolated prices when explicit
// strikes are configured, otherwise the grid nodes inside the strike range.
func selectRows(quotes []carrmadan.Quote, m model, cfg config, t float64) ([]row, error) {
	var rows []row
	if len(cfg.Strikes) > 0 {
		prices, err := carrmadan.Interpolate(quotes, cfg.Strikes)
		if err != nil {
			return nil, err
		}
		for i, k := range cfg.Strikes {
			rows = append(rows, row{strike: k, price: prices[i]})
		}
	} else {
		for _, q := range quotes {
			if q.Strike < cfg.MinStrike || q.Strike > cfg.MaxStrike {
				continue
			}
			rows = append(rows, row{strike: q.Strike, price: q.Price})
		}
	}

	if m.reference != nil {
		for i := range rows {
			rows[i].reference = m.reference(cfg, rows[i].strike, t)
		}
	}
	return rows, nil
}
