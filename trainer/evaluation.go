package trainer

import (
	"fmt"
	"strings"
)

// Evaluation accumulates classification outcomes into a confusion matrix.
type Evaluation struct {
	// Confusion counts [actual][predicted] pairs.
	Confusion [][]int

	Total   int
	Correct int
}

// NewEvaluation makes an empty evaluation for numClasses classes.
func NewEvaluation(numClasses int) *Evaluation {
	m := make([][]int, numClasses)
	for i := range m {
		m[i] = make([]int, numClasses)
	}
	return &Evaluation{Confusion: m}
}

// Record tallies one classified example.
func (e *Evaluation) Record(actual, predicted int) {
	e.Total++
	if actual == predicted {
		e.Correct++
	}
	if actual >= 0 && actual < len(e.Confusion) && predicted >= 0 && predicted < len(e.Confusion) {
		e.Confusion[actual][predicted]++
	}
}

// Accuracy is the fraction of correctly classified examples, 0 when empty.
func (e *Evaluation) Accuracy() float64 {
	if e.Total == 0 {
		return 0
	}
	return float64(e.Correct) / float64(e.Total)
}

// Stats renders a human-readable summary with the confusion matrix, rows are
// actual classes and columns are predictions.
func (e *Evaluation) Stats() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "examples: %d correct: %d accuracy: %.4f\n", e.Total, e.Correct, e.Accuracy())
	sb.WriteString("confusion matrix (rows actual, columns predicted):\n")
	for actual, row := range e.Confusion {
		fmt.Fprintf(&sb, "%3d:", actual)
		for _, n := range row {
			fmt.Fprintf(&sb, " %4d", n)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
