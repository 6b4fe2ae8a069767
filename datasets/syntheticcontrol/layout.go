package syntheticcontrol

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Partition selects the train or test subset of the materialized dataset.
type Partition int

const (
	Train Partition = iota
	Test
)

func (p Partition) String() string {
	if p == Train {
		return "train"
	}
	return "test"
}

// Layout names the four output directories under one root. It is computed
// purely from the root path; directory creation is a separate step.
type Layout struct {
	TrainFeatures string
	TrainLabels   string
	TestFeatures  string
	TestLabels    string
}

// NewLayout derives the on-disk layout for a dataset root.
func NewLayout(root string) Layout {
	return Layout{
		TrainFeatures: filepath.Join(root, "train", "features"),
		TrainLabels:   filepath.Join(root, "train", "labels"),
		TestFeatures:  filepath.Join(root, "test", "features"),
		TestLabels:    filepath.Join(root, "test", "labels"),
	}
}

// Dirs lists every directory of the layout.
func (l Layout) Dirs() [4]string {
	return [4]string{l.TrainFeatures, l.TrainLabels, l.TestFeatures, l.TestLabels}
}

// Ensure creates every layout directory. It is idempotent and must run
// before any materialized write.
func (l Layout) Ensure() error {
	for _, dir := range l.Dirs() {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "create %s", dir)
		}
	}
	return nil
}

func (l Layout) featuresDir(p Partition) string {
	if p == Train {
		return l.TrainFeatures
	}
	return l.TestFeatures
}

func (l Layout) labelsDir(p Partition) string {
	if p == Train {
		return l.TrainLabels
	}
	return l.TestLabels
}

// FeaturesPath is the file holding sequence index within partition p.
func (l Layout) FeaturesPath(p Partition, index int) string {
	return filepath.Join(l.featuresDir(p), fmt.Sprintf("%d.csv", index))
}

// LabelsPath is the file holding the label of sequence index within p.
func (l Layout) LabelsPath(p Partition, index int) string {
	return filepath.Join(l.labelsDir(p), fmt.Sprintf("%d.csv", index))
}
