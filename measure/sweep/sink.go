package sweep

// Frame is everything one dimming step produces.
type Frame struct {
	// Index is the position of the step in the schedule.
	Index int
	// Count is the number of leading samples zeroed.
	Count int
	// Percent is Count relative to the block length, in percent.
	Percent float64

	Raw        []int32
	Normalized []float64
	Dimmed     []float64
	Windowed   []float64
	// Magnitudes are the untruncated bin magnitudes behind Spectrum.
	Magnitudes []float64
	Spectrum   []int64
}

// Len returns the block length.
func (f Frame) Len() int { return len(f.Normalized) }

// Sink consumes sweep frames. Emit is called from a single goroutine in
// increasing Count order. Frames share Raw and Normalized across steps;
// sinks must not modify them.
type Sink interface {
	Emit(f Frame) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(f Frame) error

// Emit calls fn(f).
func (fn SinkFunc) Emit(f Frame) error { return fn(f) }

// Discard drops every frame.
var Discard Sink = SinkFunc(func(Frame) error { return nil })

type multiSink []Sink

// Multi returns a Sink that forwards each frame to every sink in order and
// stops at the first error.
func Multi(sinks ...Sink) Sink {
	flat := make(multiSink, 0, len(sinks))
	for _, s := range sinks {
		switch s := s.(type) {
		case nil:
		case multiSink:
			flat = append(flat, s...)
		default:
			flat = append(flat, s)
		}
	}

	return flat
}

func (m multiSink) Emit(f Frame) error {
	for _, s := range m {
		if err := s.Emit(f); err != nil {
			return err
		}
	}

	return nil
}

// Collector is a Sink that keeps every frame in memory.
type Collector struct {
	Frames []Frame
}

// Emit appends f.
func (c *Collector) Emit(f Frame) error {
	c.Frames = append(c.Frames, f)
	return nil
}
