// Package progress shows a terminal progress bar while a sweep runs.
package progress

import (
	"io"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/cwbudde/adc-dimming/measure/sweep"
)

// Sink wraps another sweep.Sink and advances a bar per emitted frame.
type Sink struct {
	next sweep.Sink
	p    *mpb.Progress
	bar  *mpb.Bar
}

// Wrap returns a Sink forwarding to next with a bar of total steps written
// to out. Call Done when the sweep has finished.
func Wrap(next sweep.Sink, total int, out io.Writer) *Sink {
	p := mpb.New(mpb.WithWidth(64), mpb.WithOutput(out))
	bar := p.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name("Dimming: "),
			decor.CountersNoUnit("%d / %d"),
		),
		mpb.AppendDecorators(
			decor.Percentage(),
			decor.Name(" "),
			decor.Elapsed(decor.ET_STYLE_GO),
		),
	)

	return &Sink{next: next, p: p, bar: bar}
}

// Emit forwards f and advances the bar, also when next fails, so the bar
// reflects attempted steps.
func (s *Sink) Emit(f sweep.Frame) error {
	var err error
	if s.next != nil {
		err = s.next.Emit(f)
	}
	s.bar.Increment()

	return err
}

// Skip advances the bar for a step that produced no frame.
func (s *Sink) Skip() {
	s.bar.Increment()
}

// Current returns the number of steps seen.
func (s *Sink) Current() int64 {
	return s.bar.Current()
}

// Done stops the bar and waits for the final render. An unfinished bar is
// aborted but left on screen.
func (s *Sink) Done() {
	if !s.bar.Completed() {
		s.bar.Abort(false)
	}
	s.p.Wait()
}
