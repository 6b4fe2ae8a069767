package seqfiles

import (
	"io"
	"math"

	"github.com/pkg/errors"
)

// fitBatch is the mini-batch size used internally while accumulating
// normalization statistics.
const fitBatch = 32

// Standardizer normalizes sequence values to zero mean and unit variance.
// Fit it on the train partition only, then apply it to every partition, so
// the test data never leaks into the statistics.
type Standardizer struct {
	Mean float64
	Std  float64

	fitted bool
}

// Fit accumulates mean and standard deviation over every value served by the
// reader, using Welford's running update so large-magnitude data does not
// cancel the variance away. The reader is rewound before and after, so a
// subsequent training pass sees the partition from the start.
func (s *Standardizer) Fit(r *Reader) error {
	r.Reset()
	defer r.Reset()
	var mean, m2 float64
	var n int
	for {
		b, err := r.Next(fitBatch)
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		for _, seq := range b.Sequences {
			for _, v := range seq {
				n++
				d := v - mean
				mean += d / float64(n)
				m2 += d * (v - mean)
			}
		}
	}
	if n == 0 {
		return errors.New("standardizer: no values to fit")
	}
	s.Mean = mean
	s.Std = math.Sqrt(m2 / float64(n))
	if s.Std == 0 || math.IsNaN(s.Std) {
		// constant data, avoid dividing by zero
		s.Std = 1
	}
	s.fitted = true
	return nil
}

// Fitted reports whether statistics have been accumulated.
func (s *Standardizer) Fitted() bool {
	return s.fitted
}

// TransformSeq standardizes one sequence in place.
func (s *Standardizer) TransformSeq(seq []float64) {
	for i, v := range seq {
		seq[i] = (v - s.Mean) / s.Std
	}
}

// Transform standardizes every sequence of a batch in place.
func (s *Standardizer) Transform(b Batch) {
	for _, seq := range b.Sequences {
		s.TransformSeq(seq)
	}
}
