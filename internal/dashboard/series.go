// Package dashboard implements the sampling and state-retention core behind
// the vitals TUI: bounded per-stream history, the disk gauge snapshot, the
// ranked process table, the per-frame sampling engine, and the controller
// that turns all of it into an immutable view for rendering.
package dashboard

import "errors"

// ErrOutOfOrderSample is returned when a sample's sequence number is not
// strictly greater than the last stored one. The engine is the only writer
// and always ticks with increasing frames, so hitting this in production
// means a caller bug, not bad data.
var ErrOutOfOrderSample = errors.New("out-of-order sample")

// Sample is a single observation: the frame counter at capture time and the
// metric reading.
type Sample struct {
	Seq   uint64
	Value float64
}

// TimeSeries is an append-only ordered sequence of samples with strictly
// increasing sequence numbers. A positive max length gives ring semantics:
// the oldest sample is evicted on overflow. Zero means unbounded.
type TimeSeries struct {
	samples []Sample
	maxLen  int
}

// NewTimeSeries creates an empty series. maxLen <= 0 means unbounded.
func NewTimeSeries(maxLen int) *TimeSeries {
	if maxLen < 0 {
		maxLen = 0
	}
	return &TimeSeries{maxLen: maxLen}
}

// Append records a new sample. It fails with ErrOutOfOrderSample, leaving
// the series unchanged, when seq is not strictly greater than the last
// stored sequence. The first sample accepts any sequence, including zero.
func (s *TimeSeries) Append(seq uint64, value float64) error {
	if n := len(s.samples); n > 0 && seq <= s.samples[n-1].Seq {
		return ErrOutOfOrderSample
	}

	s.samples = append(s.samples, Sample{Seq: seq, Value: value})
	if s.maxLen > 0 && len(s.samples) > s.maxLen {
		// Shift instead of re-slicing so the backing array cannot grow
		// without bound over a long session.
		copy(s.samples, s.samples[1:])
		s.samples = s.samples[:s.maxLen]
	}
	return nil
}

// Len returns the number of stored samples.
func (s *TimeSeries) Len() int {
	return len(s.samples)
}

// Samples returns a copy of all stored samples in chronological order.
func (s *TimeSeries) Samples() []Sample {
	if len(s.samples) == 0 {
		return nil
	}
	out := make([]Sample, len(s.samples))
	copy(out, s.samples)
	return out
}

// Values returns a copy of the sample values in chronological order,
// convenient for plotting.
func (s *TimeSeries) Values() []float64 {
	if len(s.samples) == 0 {
		return nil
	}
	out := make([]float64, len(s.samples))
	for i, smp := range s.samples {
		out[i] = smp.Value
	}
	return out
}

// Last returns the most recent sample, or false if the series is empty.
func (s *TimeSeries) Last() (Sample, bool) {
	if len(s.samples) == 0 {
		return Sample{}, false
	}
	return s.samples[len(s.samples)-1], true
}
