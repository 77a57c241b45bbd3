// Package sweep runs a dimming sweep over a normalized sample block.
//
// Dimming zeroes a leading prefix of the block to simulate missing data.
// For a block of N samples the sweep visits every count 0, step, 2*step,
// ... below N (step defaults to 4), dims a fresh copy of the block,
// analyzes it and hands the resulting Frame to a Sink. Frames always reach
// the sink in increasing count order, also when analysis is fanned out to
// several workers.
//
// # Usage
//
//	s := &sweep.Sweep{Analyzer: analysis.New()}
//	sum, err := s.Run(ctx, raw, adc.Normalize(raw), sink)
//
// By default the first failing step aborts the sweep. With Isolate set,
// every step runs and failures are collected in the Summary.
package sweep
