// Package analysis computes the windowed one-sided magnitude spectrum of a
// real sample block.
//
// An Analyzer multiplies the input by a Hamming window (configurable),
// transforms it with a real-input FFT, takes bin magnitudes, truncates them
// toward zero and drops the final (Nyquist) bin. For N samples the spectrum
// has N/2 bins using integer division, so odd lengths are floored unless
// the analyzer is built WithRejectOddLength.
//
// Analyzers are safe for concurrent use.
package analysis
