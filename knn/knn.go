// Package knn implements a nearest-neighbour sequence classifier over the
// Dynamic Time Warping distance. It is the reference trainer.Model for the
// synthetic control dataset: the whole normalized train partition is the
// model, and a query is assigned the label of its closest training sequence.
package knn

import (
	"io"
	"math"

	"github.com/katalvlaran/lvlath/dtw"
	"github.com/pkg/errors"

	"github.com/Lycaon-Pictus/synthetic-control/seqfiles"
	"github.com/Lycaon-Pictus/synthetic-control/trainer"
)

const loadBatch = 32

type sample struct {
	seq   []float64
	label int
}

// Classifier is a 1-nearest-neighbour model under DTW distance.
type Classifier struct {
	// Window constrains the warping path to a Sakoe-Chiba band of the given
	// half-width. Zero means unconstrained.
	Window int

	// NumClasses sizes the evaluation confusion matrix.
	NumClasses int

	// Norm, when set, standardizes every sequence on the way in, both at fit
	// and at evaluation time.
	Norm *seqfiles.Standardizer

	train []sample
}

var _ trainer.Model = (*Classifier)(nil)

// New makes an unfitted classifier.
func New(numClasses, window int) *Classifier {
	return &Classifier{NumClasses: numClasses, Window: window}
}

// Fit loads the whole partition into the model, replacing any previous fit.
func (c *Classifier) Fit(r *seqfiles.Reader) error {
	c.train = nil
	r.Reset()
	for {
		b, err := r.Next(loadBatch)
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		for i, seq := range b.Sequences {
			if c.Norm != nil {
				c.Norm.TransformSeq(seq)
			}
			c.train = append(c.train, sample{seq: seq, label: b.Labels[i]})
		}
	}
	return nil
}

// Reset discards the fitted training sequences.
func (c *Classifier) Reset() {
	c.train = nil
}

// Predict returns the label of the training sequence closest to seq. The
// sequence must already be normalized the same way the fit data was.
func (c *Classifier) Predict(seq []float64) (int, error) {
	if len(c.train) == 0 {
		return 0, errors.New("knn: classifier is not fitted")
	}
	opts := &dtw.DTWOptions{
		Window:     c.Window,
		MemoryMode: dtw.RollingArray,
	}
	best := math.Inf(1)
	bestLabel := 0
	for _, s := range c.train {
		d, _, err := dtw.DTW(seq, s.seq, opts)
		if err != nil {
			return 0, errors.Wrap(err, "knn: dtw distance")
		}
		if d < best {
			best = d
			bestLabel = s.label
		}
	}
	return bestLabel, nil
}

// Evaluate classifies every example behind the reader and tallies the result.
func (c *Classifier) Evaluate(r *seqfiles.Reader) (*trainer.Evaluation, error) {
	eval := trainer.NewEvaluation(c.NumClasses)
	r.Reset()
	for {
		b, err := r.Next(loadBatch)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		for i, seq := range b.Sequences {
			if c.Norm != nil {
				c.Norm.TransformSeq(seq)
			}
			predicted, err := c.Predict(seq)
			if err != nil {
				return nil, err
			}
			eval.Record(b.Labels[i], predicted)
		}
	}
	return eval, nil
}
