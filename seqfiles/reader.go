// Package seqfiles loads the numbered sequence file pairs produced by the
// dataset materializer: a directory of <index>.csv feature files, one value
// per line, and a parallel directory of <index>.csv label files. It serves
// them back as mini-batches with rewind support, which is the shape a
// training loop iterates over epoch after epoch.
package seqfiles

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Batch is one mini-batch of sequences with their class labels.
// Sequences[i] and Labels[i] belong together.
type Batch struct {
	Sequences [][]float64
	Labels    []int
}

// Len is the number of examples in the batch.
func (b Batch) Len() int {
	return len(b.Sequences)
}

// Reader iterates over a partition's numbered feature/label file pairs in
// index order. It is not safe for concurrent use.
type Reader struct {
	featuresDir string
	labelsDir   string
	count       int
	pos         int
}

// NewReader opens a partition. It counts the contiguous run of 0.csv, 1.csv,
// ... feature files and requires a matching label file for every one of them.
// An empty partition is an error.
func NewReader(featuresDir, labelsDir string) (*Reader, error) {
	var count int
	for {
		_, err := os.Stat(filepath.Join(featuresDir, fmt.Sprintf("%d.csv", count)))
		if os.IsNotExist(err) {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "stat features %d in %s", count, featuresDir)
		}
		if _, err := os.Stat(filepath.Join(labelsDir, fmt.Sprintf("%d.csv", count))); err != nil {
			return nil, errors.Wrapf(err, "features %d has no label in %s", count, labelsDir)
		}
		count++
	}
	if count == 0 {
		return nil, errors.Errorf("no sequence files in %s", featuresDir)
	}
	return &Reader{featuresDir: featuresDir, labelsDir: labelsDir, count: count}, nil
}

// Len is the number of examples in the partition.
func (r *Reader) Len() int {
	return r.count
}

// Reset rewinds the reader to the first example, for the next epoch.
func (r *Reader) Reset() {
	r.pos = 0
}

// Next returns the next mini-batch of up to batchSize examples, or io.EOF
// once the partition is exhausted.
func (r *Reader) Next(batchSize int) (Batch, error) {
	if batchSize <= 0 {
		return Batch{}, errors.Errorf("batch size must be positive, got %d", batchSize)
	}
	if r.pos >= r.count {
		return Batch{}, io.EOF
	}
	var b Batch
	for r.pos < r.count && b.Len() < batchSize {
		seq, label, err := r.read(r.pos)
		if err != nil {
			return Batch{}, err
		}
		b.Sequences = append(b.Sequences, seq)
		b.Labels = append(b.Labels, label)
		r.pos++
	}
	return b, nil
}

func (r *Reader) read(index int) ([]float64, int, error) {
	fpath := filepath.Join(r.featuresDir, fmt.Sprintf("%d.csv", index))
	buf, err := os.ReadFile(fpath)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "read %s", fpath)
	}
	var seq []float64
	for i, line := range strings.Split(string(buf), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, 0, errors.Wrapf(err, "%s line %d", fpath, i+1)
		}
		seq = append(seq, v)
	}

	lpath := filepath.Join(r.labelsDir, fmt.Sprintf("%d.csv", index))
	buf, err = os.ReadFile(lpath)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "read %s", lpath)
	}
	label, err := strconv.Atoi(strings.TrimSpace(string(buf)))
	if err != nil {
		return nil, 0, errors.Wrapf(err, "parse label %s", lpath)
	}
	return seq, label, nil
}
