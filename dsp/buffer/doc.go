// Package buffer provides a float64 sample buffer with prefix-zeroing and
// integer truncation helpers. All DSP functions accept raw []float64 slices;
// Buffer is a convenience for building modified copies of an input block.
package buffer
