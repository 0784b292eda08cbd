package carrmadan

import (
	"math"
	"math/cmplx"
	"sync"
	"sync/atomic"
	"testing"
)

func TestAugmentFormula(t *testing.T) {
	cf := func(v complex128) complex128 {
		return cmplx.Exp(0.1*v + 0.02*v*v)
	}

	for _, alpha := range []float64{0.75, 1.0, 1.5, 2.0} {
		g := Augment(cf, alpha)
		for _, v := range []complex128{0, 0.25i, 1i, 3.5i, 1 + 2i} {
			a := complex(alpha, 0)
			want := cf(v+a+1) / (a*a + a + v*v + (2*a+1)*v)
			got := g(v)
			if cmplx.Abs(got-want) > 1e-14*cmplx.Abs(want) {
				t.Fatalf("alpha=%v v=%v: got %v, want %v", alpha, v, got, want)
			}
		}
	}
}

func TestAugmentShiftsContour(t *testing.T) {
	var seen complex128
	cf := func(v complex128) complex128 {
		seen = v
		return 1
	}

	g := Augment(cf, 1.5)
	g(2i)
	if seen != 2.5+2i {
		t.Fatalf("cf called at %v, want 2.5+2i", seen)
	}
}

func TestAugmentAtOrigin(t *testing.T) {
	// g(0) = cf(α+1) / (α² + α).
	g := Augment(func(complex128) complex128 { return 6 }, 2)
	if got := g(0); got != 1 {
		t.Fatalf("g(0) = %v, want 1", got)
	}
}

func TestAugmentPropagatesNonFinite(t *testing.T) {
	nan := Augment(func(complex128) complex128 { return cmplx.NaN() }, 1.5)
	if got := nan(1i); !cmplx.IsNaN(got) {
		t.Fatalf("NaN cf: got %v, want NaN", got)
	}

	inf := Augment(func(complex128) complex128 { return complex(math.Inf(1), 0) }, 1.5)
	if got := inf(1i); !cmplx.IsInf(got) {
		t.Fatalf("Inf cf: got %v, want Inf", got)
	}
}

func TestAugmentConcurrentEvaluation(t *testing.T) {
	var calls atomic.Int64
	cf := func(v complex128) complex128 {
		calls.Add(1)
		return cmplx.Exp(-v * v)
	}
	g := Augment(cf, 1.5)

	const n = 256
	want := make([]complex128, n)
	for i := range want {
		want[i] = g(complex(0, float64(i)*0.1))
	}

	got := make([]complex128, n)
	var wg sync.WaitGroup
	for i := range got {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = g(complex(0, float64(i)*0.1))
		}()
	}
	wg.Wait()

	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: concurrent %v != serial %v", i, got[i], want[i])
		}
	}
	if calls.Load() != 2*n {
		t.Fatalf("cf calls = %d, want %d", calls.Load(), 2*n)
	}
}
