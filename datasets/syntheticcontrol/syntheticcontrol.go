// Package syntheticcontrol prepares the UCI Synthetic Control Chart time series
// dataset for sequence classification. It downloads the raw data, reshapes each
// space-separated line into a one-value-per-row sequence file, assigns a class
// label to each line by its position, and splits the result into reproducible
// train and test partitions on disk.
package syntheticcontrol

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultURL points at the canonical UCI download location.
	DefaultURL = "https://archive.ics.uci.edu/ml/machine-learning-databases/synthetic_control-mld/synthetic_control.data"

	// DefaultRoot is the output directory for the materialized dataset.
	DefaultRoot = "uci"

	// DefaultSeed drives the shuffle. The same seed always yields the same
	// train/test partitions, so normalization statistics fit on the train
	// partition are stable across runs.
	DefaultSeed = 12345

	// DefaultTrainCount of the 600 source lines go to the train partition.
	DefaultTrainCount = 450

	// DefaultBlockSize is the number of consecutive source lines per class.
	DefaultBlockSize = 100

	// NumClasses in the canonical 600-line dataset.
	NumClasses = 6

	// SeriesLen is the number of values on each source line.
	SeriesLen = 60
)

// ClassNames indexes the canonical class labels 0..5.
var ClassNames = [NumClasses]string{
	"normal",
	"cyclic",
	"increasing trend",
	"decreasing trend",
	"upward shift",
	"downward shift",
}

// Config carries every knob of the preparation pipeline. There is no
// package-level mutable state; all paths and parameters flow through here.
type Config struct {
	// RootDir is the output root. Its existence is the idempotence signal:
	// when present, the whole fetch-and-materialize step is skipped.
	RootDir string `yaml:"root_dir"`

	// URL of the raw dataset, one whitespace-separated series per line.
	URL string `yaml:"url"`

	// TrainCount permuted records go to the train partition, the rest to test.
	TrainCount int `yaml:"train_count"`

	// BlockSize consecutive source lines share one label.
	BlockSize int `yaml:"block_size"`

	// Seed for the deterministic shuffle.
	Seed int64 `yaml:"seed"`

	// Workers bounds concurrent file writes during materialization.
	// Zero or one keeps the canonical sequential write loop.
	Workers int `yaml:"workers"`
}

// DefaultConfig returns the canonical UCI dataset configuration.
func DefaultConfig() Config {
	return Config{
		RootDir:    DefaultRoot,
		URL:        DefaultURL,
		TrainCount: DefaultTrainCount,
		BlockSize:  DefaultBlockSize,
		Seed:       DefaultSeed,
		Workers:    1,
	}
}

// LoadConfig reads a YAML config file over the defaults, so a partial file
// only overrides the keys it names.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	buf, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}
