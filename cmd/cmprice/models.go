package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/cwbudde/algo-carrmadan/pricing/bsm"
	"github.com/cwbudde/algo-carrmadan/pricing/carrmadan"
	"github.com/cwbudde/algo-carrmadan/pricing/charfn"
)

type model struct {
	name        string
	description string
	cf          func(cfg config, t float64) carrmadan.CharacteristicFunction
	// reference returns a closed-form call price; nil when none exists.
	reference func(cfg config, k, t float64) float64
}

var registry = []model{
	{
		name:        "bs",
		description: "Black-Scholes lognormal diffusion (sigma)",
		cf: func(cfg config, t float64) carrmadan.CharacteristicFunction {
			return charfn.BlackScholes(cfg.Rate, cfg.Sigma, t)
		},
		reference: func(cfg config, k, t float64) float64 {
			return bsm.Call(cfg.Spot, k, cfg.Rate, t, cfg.Sigma)
		},
	},
	{
		name:        "merton",
		description: "Merton jump-diffusion (sigma, jump-intensity, jump-mean, jump-vol)",
		cf: func(cfg config, t float64) carrmadan.CharacteristicFunction {
			return charfn.Merton(cfg.Rate, cfg.Sigma, cfg.JumpIntensity, cfg.JumpMean, cfg.JumpVol, t)
		},
		reference: func(cfg config, k, t float64) float64 {
			return bsm.MertonCall(cfg.Spot, k, cfg.Rate, t, cfg.Sigma, cfg.JumpIntensity, cfg.JumpMean, cfg.JumpVol)
		},
	},
	{
		name:        "vg",
		description: "Variance Gamma (sigma, vg-nu, vg-theta)",
		cf: func(cfg config, t float64) carrmadan.CharacteristicFunction {
			return charfn.VG(cfg.Rate, cfg.Sigma, cfg.VGNu, cfg.VGTheta, t)
		},
	},
	{
		name:        "cgmy",
		description: "CGMY tempered stable (cgmy-c, cgmy-g, cgmy-m, cgmy-y)",
		cf: func(cfg config, t float64) carrmadan.CharacteristicFunction {
			return charfn.TemperedStable(cfg.Rate, cfg.CGMYC, cfg.CGMYG, cfg.CGMYM, cfg.CGMYY, t)
		},
	},
}

func lookupModel(name string) (model, bool) {
	for _, m := range registry {
		if m.name == name {
			return m, true
		}
	}
	return model{}, false
}

func printModels(w io.Writer) error {
	models := append([]model(nil), registry...)
	sort.Slice(models, func(i, j int) bool { return models[i].name < models[j].name })
	for _, m := range models {
		if _, err := fmt.Fprintf(w, "%-8s %s\n", m.name, m.description); err != nil {
			return err
		}
	}
	return nil
}
