// Package trainer defines the training collaborator consumed by the sequence
// classification commands. A Model is anything that can fit itself to a train
// partition served through a seqfiles.Reader and score itself on another
// partition; the gradient or distance machinery behind it is the model's own
// business.
package trainer

import "github.com/Lycaon-Pictus/synthetic-control/seqfiles"

// Model is the capability surface of a sequence classifier.
type Model interface {
	// Fit trains the model on the partition behind the reader.
	Fit(r *seqfiles.Reader) error

	// Reset discards the fitted state so the model can be trained again.
	Reset()

	// Evaluate scores the model on the partition behind the reader.
	Evaluate(r *seqfiles.Reader) (*Evaluation, error)
}
