// Package main provides a demo program that downloads the UCI Synthetic
// Control Chart dataset and materializes it as numbered per-sequence feature
// and label files under train/ and test/ directories. Running it a second
// time with the output root present is a no-op.
package main
