package charfn

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-carrmadan/internal/testutil"
	"github.com/cwbudde/algo-carrmadan/pricing/bsm"
	"github.com/cwbudde/algo-carrmadan/pricing/carrmadan"
)

const (
	gridN   = 1024
	gridEta = 0.25
)

func TestRiskNeutralMartingale(t *testing.T) {
	const r, maturity = 0.04, 1.5
	models := map[string]func(complex128) complex128{
		"black-scholes": BlackScholes(r, 0.3, maturity),
		"merton":        Merton(r, 0.2, 0.5, -0.1, 0.15, maturity),
		"vg":            VG(r, 0.12, 0.2, -0.14, maturity),
		"cgmy":          TemperedStable(r, 1, 5, 5, 0.5, maturity),
	}

	for name, cf := range models {
		if got := cf(0); cmplx.Abs(got-1) > 1e-14 {
			t.Errorf("%s: cf(0) = %v, want 1", name, got)
		}
		// E[S_T/S_0] = exp(r·T).
		if got, want := cf(1), math.Exp(r*maturity); cmplx.Abs(got-complex(want, 0)) > 1e-12 {
			t.Errorf("%s: cf(1) = %v, want %v", name, got, want)
		}
	}
}

func TestBlackScholesClosedForm(t *testing.T) {
	s := testutil.Scenario{S0: 50, R: 0.05, Sigma: 0.3, T: 1}
	got := BlackScholes(s.R, s.Sigma, s.T)
	want := s.CF()

	for _, v := range []complex128{0.5i, 2.5 + 3i, 2.5 + 40i, -1 + 1i} {
		if cmplx.Abs(got(v)-want(v)) > 1e-12*(1+cmplx.Abs(want(v))) {
			t.Fatalf("v=%v: got %v, want %v", v, got(v), want(v))
		}
	}
}

func TestMertonWithoutJumpsIsBlackScholes(t *testing.T) {
	bs := BlackScholes(0.03, 0.25, 2)
	merton := Merton(0.03, 0.25, 0, -0.2, 0.1, 2)

	for _, v := range []complex128{1i, 2.5 + 7i, 0.3} {
		if cmplx.Abs(bs(v)-merton(v)) > 1e-14*(1+cmplx.Abs(bs(v))) {
			t.Fatalf("v=%v: Merton %v, Black-Scholes %v", v, merton(v), bs(v))
		}
	}
}

func TestMertonPricesMatchSeries(t *testing.T) {
	tests := []struct {
		s0, r, t, sigma, lambda, mu, delta float64
	}{
		{100, 0.05, 1, 0.2, 0.5, -0.1, 0.15},
		{100, 0.03, 0.5, 0.15, 1, -0.05, 0.1},
	}

	for _, tc := range tests {
		cf := Merton(tc.r, tc.sigma, tc.lambda, tc.mu, tc.delta, tc.t)
		quotes, err := carrmadan.CallPrices(gridN, gridEta, 1.5, tc.s0, math.Exp(-tc.r*tc.t), cf)
		if err != nil {
			t.Fatalf("CallPrices error: %v", err)
		}

		for i := gridN / 4; i < gridN-gridN/4; i++ {
			q := quotes[i]
			want := bsm.MertonCall(tc.s0, q.Strike, tc.r, tc.t, tc.sigma, tc.lambda, tc.mu, tc.delta)
			if math.Abs(q.Price-want) > 2e-3 {
				t.Fatalf("%+v strike %v: FFT %v, series %v", tc, q.Strike, q.Price, want)
			}
		}
	}
}

func TestPureJumpModelsNearTheMoney(t *testing.T) {
	const s0, r, maturity = 100.0, 0.05, 1.0
	discount := math.Exp(-r * maturity)
	models := map[string]func(complex128) complex128{
		"vg":   VG(r, 0.12, 0.2, -0.14, maturity),
		"cgmy": TemperedStable(r, 1, 5, 5, 0.5, maturity),
	}

	for name, cf := range models {
		var byAlpha [][]carrmadan.Quote
		for _, alpha := range []float64{1.0, 1.5} {
			quotes, err := carrmadan.CallPrices(gridN, gridEta, alpha, s0, discount, cf)
			if err != nil {
				t.Fatalf("%s: CallPrices error: %v", name, err)
			}
			byAlpha = append(byAlpha, quotes)
		}

		prev := math.Inf(1)
		for i, q := range byAlpha[1] {
			if q.Strike < 50 || q.Strike > 150 {
				continue
			}
			lower := math.Max(s0-q.Strike*discount, 0)
			if q.Price < lower-1e-6 || q.Price > s0 {
				t.Fatalf("%s strike %v: price %v outside [%v, %v]", name, q.Strike, q.Price, lower, s0)
			}
			if !(q.Price < prev) {
				t.Fatalf("%s strike %v: price %v not decreasing (prev %v)", name, q.Strike, q.Price, prev)
			}
			prev = q.Price

			if d := math.Abs(q.Price - byAlpha[0][i].Price); d > 1e-3 {
				t.Fatalf("%s strike %v: damping changes price by %v", name, q.Strike, d)
			}
		}
	}
}

func TestInvalidParametersPropagateNaN(t *testing.T) {
	// ν = 0 divides by zero inside the exponent.
	cf := VG(0.05, 0.2, 0, -0.1, 1)
	if got := cf(2.5 + 1i); !cmplx.IsNaN(got) && !cmplx.IsInf(got) {
		t.Fatalf("nu=0: got %v, want non-finite", got)
	}
}
