package carrmadan

// CharacteristicFunction evaluates a model's characteristic function of the
// log-return in moment-generating form, E[exp(v·ln(S_T/S_0))] with v = i·u.
//
// Implementations must be pure: the engine calls them once per grid node,
// possibly from several goroutines at once.
type CharacteristicFunction func(v complex128) complex128

// Augment returns the damped call integrand
//
//	g(v) = cf(v + α + 1) / (α² + α + v² + (2α+1)·v)
//
// which is the Carr-Madan transform ψ(u) = φ(u - (α+1)i) / (α² + α - u² + i(2α+1)u)
// written for v = i·u. g calls cf exactly once per evaluation and keeps no
// state. Non-finite values from cf pass through unchanged.
func Augment(cf CharacteristicFunction, alpha float64) CharacteristicFunction {
	shift := complex(alpha+1, 0)
	c0 := complex(alpha*alpha+alpha, 0)
	c1 := complex(2*alpha+1, 0)

	return func(v complex128) complex128 {
		return cf(v+shift) / (c0 + v*v + c1*v)
	}
}
