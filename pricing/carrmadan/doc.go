// Package carrmadan prices European calls on a log-spaced strike grid with
// the Carr-Madan damped Fourier transform.
//
// A single forward FFT of length N turns N samples of the damped call
// transform into N discounted call prices. The pipeline has four stages:
//
//   - Strike grid: [NewGrid] derives the log-price domain half-width
//     b = π/η and step λ = 2b/N shared by every later stage.
//   - Integrand augmentation: [Augment] shifts the characteristic function
//     contour by α+1 and divides by the quadratic damping term.
//   - Transform: [Samples] builds the Simpson-weighted input and
//     [Transform] runs the FFT through algo-fft.
//   - Reconstruction: [Reconstruct] rescales each bin by exp(-α·x)·η/(3π)
//     and pairs it with its strike.
//
// [CallPrices] runs the whole pipeline once. [Pricer] keeps the FFT plan
// for repeated pricing at a fixed grid.
//
// Characteristic functions are called in moment-generating form: the
// argument is v = i·u, so the lognormal model reads
//
//	exp((r - σ²/2)·t·v + σ²·t·v²/2)
//
// Invalid inputs are not rejected. Non-finite values from the
// characteristic function, η <= 0 or N = 0 produce NaN, Inf or empty output
// instead of errors. The only reported failure is a grid size the FFT
// backend cannot plan.
package carrmadan
