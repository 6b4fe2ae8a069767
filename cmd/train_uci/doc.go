// Package main provides a demo program for training a time series classifier
// on the UCI Synthetic Control Chart dataset. It prepares the dataset on disk
// if needed, fits normalization statistics on the train partition, fits a
// nearest-neighbour DTW model, and prints the evaluation on the test
// partition.
package main
