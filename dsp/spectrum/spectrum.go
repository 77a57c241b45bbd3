package spectrum

import (
	"math"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// OneSidedLen returns the number of non-negative-frequency bins of a real
// DFT of length n.
func OneSidedLen(n int) int {
	if n <= 0 {
		return 0
	}
	return n/2 + 1
}

// Magnitude returns |X[k]| for each complex spectrum bin.
//
// Scratch buffers are pooled internally, so in steady state this allocates
// only the output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// Truncate converts magnitudes to integers by truncation toward zero.
// Values are never rounded: 2.999 becomes 2.
func Truncate(mags []float64) []int64 {
	if mags == nil {
		return nil
	}
	out := make([]int64, len(mags))
	for i, m := range mags {
		out[i] = int64(math.Trunc(m))
	}
	return out
}

// DropLast returns bins without its final element. It is used to discard the
// Nyquist bin of a one-sided spectrum.
func DropLast[T any](bins []T) []T {
	if len(bins) == 0 {
		return bins
	}
	return bins[:len(bins)-1]
}
