package split

import (
	"gitlab.com/tozd/go/errors"
)

const (
	DefaultValRatio  = 0.1
	DefaultTestRatio = 0.1
	DefaultSeed      = 42
)

// Config describes one split run.
type Config struct {
	// PartitionsPath holds every partition before the run and the training
	// partitions after it.
	PartitionsPath string
	ValidationPath string
	TestPath       string

	ValRatio  float64
	TestRatio float64
	Seed      int64

	// ManifestPath, when set, is where the tsv record of the assignment is written.
	ManifestPath string

	// StrictRatios rejects ratios outside [0,1] or summing above 1. Without
	// it such ratios are applied as given and the summary can report a
	// negative training count.
	StrictRatios bool
}

func (c Config) validatePaths() errors.E {
	for name, path := range map[string]string{
		"partitions": c.PartitionsPath,
		"validation": c.ValidationPath,
		"test":       c.TestPath,
	} {
		if path == "" {
			errE := errors.New("directory path is empty")
			errors.Details(errE)["directory"] = name
			return errE
		}
	}
	return nil
}

// Validate checks that all directories are set and that the ratios describe
// a valid split.
func (c Config) Validate() errors.E {
	errE := c.validatePaths()
	if errE != nil {
		return errE
	}
	if c.ValRatio < 0 || c.ValRatio > 1 {
		return errors.Errorf("validation ratio %v is outside [0,1]", c.ValRatio)
	}
	if c.TestRatio < 0 || c.TestRatio > 1 {
		return errors.Errorf("test ratio %v is outside [0,1]", c.TestRatio)
	}
	if c.ValRatio+c.TestRatio > 1 {
		return errors.Errorf("validation ratio %v and test ratio %v add up to more than 1", c.ValRatio, c.TestRatio)
	}
	return nil
}
