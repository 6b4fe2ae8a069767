package syntheticcontrol

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Lycaon-Pictus/synthetic-control/datasets"
	"github.com/Lycaon-Pictus/synthetic-control/parallel"
)

// LabeledSequence is one transposed source line together with its class label.
type LabeledSequence struct {
	// Sequence holds the line's tokens, one per row, newline terminated.
	Sequence string

	// Label is the zero-based class of the originating line.
	Label int
}

// Transpose reshapes one whitespace-separated line into column form: the same
// tokens in the same order, one per output row. Runs of whitespace collapse to
// a single delimiter. Tokens are not validated; malformed input passes through.
func Transpose(line string) string {
	return strings.Join(strings.Fields(line), "\n") + "\n"
}

// Label assigns the class of the source line at the given zero-based ordinal.
// Consecutive blocks of blockSize lines share one label, so labels are
// non-decreasing in ordinal.
func Label(ordinal, blockSize int) int {
	return ordinal / blockSize
}

// Prepare runs the whole pipeline: fetch, transpose and label every line,
// shuffle deterministically, split into train/test, and materialize numbered
// feature/label file pairs under cfg.RootDir. When cfg.RootDir already exists
// the call is a no-op: no network access and no writes happen.
func Prepare(cfg Config, log *zap.SugaredLogger) error {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if _, err := os.Stat(cfg.RootDir); err == nil {
		log.Infow("dataset already materialized, skipping", "root", cfg.RootDir)
		return nil
	} else if !os.IsNotExist(err) {
		return errors.Wrapf(err, "stat %s", cfg.RootDir)
	}

	lines, err := Fetch(cfg.URL)
	if err != nil {
		return err
	}
	log.Infow("fetched dataset", "url", cfg.URL, "lines", len(lines))

	records := make([]LabeledSequence, len(lines))
	for i, line := range lines {
		records[i] = LabeledSequence{
			Sequence: Transpose(line),
			Label:    Label(i, cfg.BlockSize),
		}
	}

	perm := datasets.Permutation(cfg.Seed, len(records))
	trainOrder, testOrder := datasets.Split(perm, cfg.TrainCount)

	lay := NewLayout(cfg.RootDir)
	if err := lay.Ensure(); err != nil {
		return err
	}
	if err := materialize(lay, Train, trainOrder, records, cfg.Workers); err != nil {
		return err
	}
	if err := materialize(lay, Test, testOrder, records, cfg.Workers); err != nil {
		return err
	}
	log.Infow("materialized dataset",
		"root", cfg.RootDir, "train", len(trainOrder), "test", len(testOrder))
	return nil
}

// materialize writes one features file and one labels file per record, indexed
// densely from 0 in permuted order. Distinct indices never share a file, so
// the writes fan out safely when workers > 1. The first failed write aborts
// the rest.
func materialize(lay Layout, p Partition, order []int, records []LabeledSequence, workers int) error {
	return parallel.ForEachErr(len(order), workers, func(i int) error {
		rec := records[order[i]]
		if err := os.WriteFile(lay.FeaturesPath(p, i), []byte(rec.Sequence), 0o644); err != nil {
			return errors.Wrapf(err, "write %s features %d", p, i)
		}
		if err := os.WriteFile(lay.LabelsPath(p, i), []byte(strconv.Itoa(rec.Label)), 0o644); err != nil {
			return errors.Wrapf(err, "write %s labels %d", p, i)
		}
		return nil
	})
}
