package split

import (
	"os"
	"slices"
	"strconv"
	"strings"

	"gitlab.com/tozd/go/errors"
)

const (
	partitionPrefix = "graph_partitions_"
	partitionSuffix = ".bin"
)

// PartitionFileName returns the file name of the partition with the given index
func PartitionFileName(index int) string {
	return partitionPrefix + strconv.Itoa(index) + partitionSuffix
}

// ParseIndex extracts the partition index from a file name of the form
// graph_partitions_<N>.bin. Only canonical base-10 non-negative indices are
// accepted, so that PartitionFileName(index) names the same file again.
func ParseIndex(name string) (int, bool) {
	if len(name) < len(partitionPrefix)+len(partitionSuffix) {
		return 0, false
	}
	if !strings.HasPrefix(name, partitionPrefix) || !strings.HasSuffix(name, partitionSuffix) {
		return 0, false
	}
	middle := name[len(partitionPrefix) : len(name)-len(partitionSuffix)]
	index, err := strconv.Atoi(middle)
	if err != nil || index < 0 || strconv.Itoa(index) != middle {
		return 0, false
	}
	return index, true
}

// FileIndices lists the partition indices found in dir, sorted ascending.
// Entries that do not look like partition files are ignored.
func FileIndices(dir string) ([]int, errors.E) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		errE := errors.WithMessage(err, "reading partitions directory")
		errors.Details(errE)["path"] = dir
		return nil, errE
	}

	indices := make([]int, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if index, ok := ParseIndex(entry.Name()); ok {
			indices = append(indices, index)
		}
	}

	// the shuffle is only reproducible if its input order is fixed
	slices.Sort(indices)
	return indices, nil
}

// EnsureDirectories creates the validation and test directories, including
// missing parents. Existing directories are left alone.
func EnsureDirectories(validationPath, testPath string) errors.E {
	for _, dir := range []string{validationPath, testPath} {
		err := os.MkdirAll(dir, os.ModePerm)
		if err != nil {
			errE := errors.WithMessage(err, "creating directory")
			errors.Details(errE)["path"] = dir
			return errE
		}
	}
	return nil
}
