// Package charfn provides characteristic functions of common exponential
// Lévy models for use with the carrmadan pricer.
//
// Every function is returned in moment-generating form, v ↦ E[exp(v·X_t)]
// with X_t = ln(S_t/S_0) and v = i·u. Models are built from a Lévy
// exponent ([Exponent]) and [RiskNeutral], which adds the drift that makes
// the discounted spot a martingale.
//
// Invalid parameters are not rejected; they produce NaN or Inf values that
// propagate into the prices.
package charfn
