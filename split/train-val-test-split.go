package split

import (
	"io"
	"log"

	"gitlab.com/tozd/go/errors"
)

// Split moves the partition files of cfg.PartitionsPath into training,
// validation and test subsets and writes the summary to out.
func Split(cfg Config, out io.Writer) (Summary, errors.E) {
	var errE errors.E
	if cfg.StrictRatios {
		errE = cfg.Validate()
	} else {
		errE = cfg.validatePaths()
	}
	if errE != nil {
		return Summary{}, errE
	}

	errE = EnsureDirectories(cfg.ValidationPath, cfg.TestPath)
	if errE != nil {
		return Summary{}, errE
	}

	indices, errE := FileIndices(cfg.PartitionsPath)
	if errE != nil {
		return Summary{}, errE
	}
	log.Println("Found", len(indices), "partition files in", cfg.PartitionsPath)

	assignment := Assign(indices, cfg.ValRatio, cfg.TestRatio, cfg.Seed)

	summary := NewSummary(assignment)
	summary.Moved, errE = Relocate(cfg, assignment)
	if errE != nil {
		return summary, errE
	}
	log.Println("Moved", summary.Moved, "partition files")

	if cfg.ManifestPath != "" {
		errE = WriteManifest(cfg.ManifestPath, assignment)
		if errE != nil {
			return summary, errE
		}
		log.Println("Manifest written to", cfg.ManifestPath)
	}

	err := summary.Write(out)
	if err != nil {
		return summary, errors.WithStack(err)
	}
	return summary, nil
}
