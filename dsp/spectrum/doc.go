// Package spectrum turns real-valued sample blocks into one-sided magnitude
// spectra.
//
// The FFT itself is delegated to a [Transformer] backend. Three backends are
// available: algo-fft (the default), gonum's fourier package and go-dsp. All
// of them return the N/2+1 non-negative-frequency bins of a real input of
// length N (integer division, so odd lengths yield (N+1)/2 bins).
package spectrum
