package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "CMPRICE"

type config struct {
	Model      string
	ListModels bool
	LogLevel   string

	Spot       float64
	Rate       float64
	Sigma      float64
	Maturities []float64

	JumpIntensity float64
	JumpMean      float64
	JumpVol       float64
	VGTheta       float64
	VGNu          float64
	CGMYC         float64
	CGMYG         float64
	CGMYM         float64
	CGMYY         float64

	N         int
	Eta       float64
	Alpha     float64
	MinStrike float64
	MaxStrike float64
	Strikes   []float64
}

func newFlagSet(stderr io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("cmprice", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.String("config", "", "optional config file (yaml, json or toml)")
	fs.String("model", "bs", "price dynamics: bs, merton, vg or cgmy")
	fs.Bool("list-models", false, "list available models")
	fs.String("log-level", "info", "log level: debug, info, warn or error")

	fs.Float64("spot", 50, "spot price S0")
	fs.Float64("rate", 0.05, "continuously compounded risk-free rate")
	fs.Float64("sigma", 0.3, "diffusion volatility (bs, merton) or VG volatility")
	fs.String("maturity", "1", "maturity in years, or a comma-separated list")

	fs.Float64("jump-intensity", 0.5, "merton: jump intensity per year")
	fs.Float64("jump-mean", -0.1, "merton: mean log-jump size")
	fs.Float64("jump-vol", 0.15, "merton: log-jump size volatility")
	fs.Float64("vg-theta", -0.14, "vg: drift of the subordinated Brownian motion")
	fs.Float64("vg-nu", 0.2, "vg: variance rate of the gamma time change")
	fs.Float64("cgmy-c", 1, "cgmy: activity C")
	fs.Float64("cgmy-g", 5, "cgmy: left tail decay G")
	fs.Float64("cgmy-m", 5, "cgmy: right tail decay M")
	fs.Float64("cgmy-y", 0.5, "cgmy: fine structure Y (< 2, not 0 or 1)")

	fs.Int("n", 1024, "grid size, a power of two")
	fs.Float64("eta", 0.25, "frequency step")
	fs.Float64("alpha", 1.5, "damping coefficient")
	fs.Float64("min-strike", 0, "smallest strike printed (default spot/2)")
	fs.Float64("max-strike", 0, "largest strike printed (default 2*spot)")
	fs.String("strikes", "", "comma-separated strikes to interpolate instead of printing the grid")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "Usage: cmprice [flags]\n\n")
		_, _ = fmt.Fprintf(stderr, "Prints European call prices on a Carr-Madan FFT strike grid.\n")
		_, _ = fmt.Fprintf(stderr, "Every flag can also be set in the config file or as %s_<FLAG> in the environment.\n\n", envPrefix)
		_, _ = fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(stderr, "\nExamples:\n")
		_, _ = fmt.Fprintf(stderr, "  cmprice --model bs --spot 50 --sigma 0.3 --maturity 1\n")
		_, _ = fmt.Fprintf(stderr, "  cmprice --model merton --maturity 0.5,1,2 --min-strike 40 --max-strike 60\n")
		_, _ = fmt.Fprintf(stderr, "  cmprice --model vg --spot 100 --strikes 90,100,110\n")
		_, _ = fmt.Fprintf(stderr, "  cmprice --list-models\n")
	}
	return fs
}

// loadConfig resolves settings with precedence flag > environment > config
// file > default.
func loadConfig(args []string, stderr io.Writer) (config, error) {
	fs := newFlagSet(stderr)
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return config{}, fmt.Errorf("cmprice: bind flags: %w", err)
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return config{}, fmt.Errorf("cmprice: read config %s: %w", path, err)
		}
	}

	maturities, err := parseFloats(v.GetString("maturity"))
	if err != nil {
		return config{}, fmt.Errorf("cmprice: --maturity: %w", err)
	}
	strikes, err := parseFloats(v.GetString("strikes"))
	if err != nil {
		return config{}, fmt.Errorf("cmprice: --strikes: %w", err)
	}

	cfg := config{
		Model:      strings.ToLower(strings.TrimSpace(v.GetString("model"))),
		ListModels: v.GetBool("list-models"),
		LogLevel:   v.GetString("log-level"),

		Spot:       v.GetFloat64("spot"),
		Rate:       v.GetFloat64("rate"),
		Sigma:      v.GetFloat64("sigma"),
		Maturities: maturities,

		JumpIntensity: v.GetFloat64("jump-intensity"),
		JumpMean:      v.GetFloat64("jump-mean"),
		JumpVol:       v.GetFloat64("jump-vol"),
		VGTheta:       v.GetFloat64("vg-theta"),
		VGNu:          v.GetFloat64("vg-nu"),
		CGMYC:         v.GetFloat64("cgmy-c"),
		CGMYG:         v.GetFloat64("cgmy-g"),
		CGMYM:         v.GetFloat64("cgmy-m"),
		CGMYY:         v.GetFloat64("cgmy-y"),

		N:         v.GetInt("n"),
		Eta:       v.GetFloat64("eta"),
		Alpha:     v.GetFloat64("alpha"),
		MinStrike: v.GetFloat64("min-strike"),
		MaxStrike: v.GetFloat64("max-strike"),
		Strikes:   strikes,
	}

	if cfg.MinStrike <= 0 {
		cfg.MinStrike = cfg.Spot / 2
	}
	if cfg.MaxStrike <= 0 {
		cfg.MaxStrike = 2 * cfg.Spot
	}

	return cfg, nil
}

var errNotPositive = errors.New("must be > 0")

func (c config) validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"--spot", c.Spot},
		{"--eta", c.Eta},
		{"--alpha", c.Alpha},
		{"--n", float64(c.N)},
	}
	for _, chk := range checks {
		if !(chk.value > 0) {
			return fmt.Errorf("cmprice: %s %w: %v", chk.name, errNotPositive, chk.value)
		}
	}
	if c.N&(c.N-1) != 0 {
		return fmt.Errorf("cmprice: --n must be a power of two: %d", c.N)
	}
	if len(c.Maturities) == 0 {
		return fmt.Errorf("cmprice: --maturity is required")
	}
	for _, t := range c.Maturities {
		if !(t > 0) {
			return fmt.Errorf("cmprice: --maturity %w: %v", errNotPositive, t)
		}
	}
	for _, k := range c.Strikes {
		if !(k > 0) {
			return fmt.Errorf("cmprice: --strikes %w: %v", errNotPositive, k)
		}
	}
	if c.MinStrike > c.MaxStrike {
		return fmt.Errorf("cmprice: --min-strike %v above --max-strike %v", c.MinStrike, c.MaxStrike)
	}
	return nil
}

func parseFloats(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", p, err)
		}
		out = append(out, f)
	}
	return out, nil
}
