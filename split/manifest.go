package split

import (
	"os"
	"path/filepath"

	"github.com/grailbio/base/tsv"
	"gitlab.com/tozd/go/errors"
)

// WriteManifest writes a tsv file recording which group every partition was
// assigned to. Rows are ordered by index and preceded by a header row.
func WriteManifest(path string, a *Assignment) (errE errors.E) {
	defer func() {
		if errE != nil {
			errors.Details(errE)["path"] = path
		}
	}()

	err := os.MkdirAll(filepath.Dir(path), os.ModePerm)
	if err != nil {
		return errors.WithMessage(err, "creating manifest directory")
	}

	manifestFile, err := os.Create(path)
	if err != nil {
		return errors.WithMessage(err, "creating manifest")
	}
	defer func() {
		if err := manifestFile.Close(); err != nil && errE == nil {
			errE = errors.WithStack(err)
		}
	}()

	tsvWriter := tsv.NewWriter(manifestFile)
	tsvWriter.WriteString("index")
	tsvWriter.WriteString("filename")
	tsvWriter.WriteString("group")
	if err := tsvWriter.EndLine(); err != nil {
		return errors.WithStack(err)
	}

	for _, index := range a.Indices {
		group, _ := a.GroupOf(index)
		tsvWriter.WriteInt64(int64(index))
		tsvWriter.WriteString(PartitionFileName(index))
		tsvWriter.WriteString(group.String())
		if err := tsvWriter.EndLine(); err != nil {
			return errors.WithStack(err)
		}
	}

	return errors.WithStack(tsvWriter.Flush())
}
