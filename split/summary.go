package split

import (
	"fmt"
	"io"
)

// Summary holds the group sizes reported after a split.
type Summary struct {
	Train      int
	Validation int
	Test       int
	// Moved is the number of files actually relocated.
	Moved int
}

// NewSummary derives the reported counts from an assignment. Train is
// computed as total-test-validation and goes negative when the ratios add
// up to more than one.
func NewSummary(a *Assignment) Summary {
	return Summary{
		Train:      len(a.Indices) - a.TestSize - a.ValSize,
		Validation: a.ValSize,
		Test:       a.TestSize,
	}
}

func (s Summary) Write(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"Dataset split complete:\nTraining set: %d files\nValidation set: %d files\nTest set: %d files\n",
		s.Train, s.Validation, s.Test)
	return err
}
