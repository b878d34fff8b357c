package split

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifests", "split.tsv")
	a := Assign([]int{4, 0, 2, 10}, 0.25, 0.25, 42)

	require.NoError(t, WriteManifest(path, a))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "index\tfilename\tgroup", lines[0])

	groups := map[string]int{}
	for i, index := range []int{0, 2, 4, 10} {
		fields := strings.Split(lines[i+1], "\t")
		require.Len(t, fields, 3)
		group, ok := a.GroupOf(index)
		require.True(t, ok)
		assert.Equal(t, []string{strconv.Itoa(index), PartitionFileName(index), group.String()}, fields)
		groups[fields[2]]++
	}
	assert.Equal(t, map[string]int{"test": 1, "validation": 1, "train": 2}, groups)
}

func TestWriteManifestUnwritable(t *testing.T) {
	root := t.TempDir()
	blocker := filepath.Join(root, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	errE := WriteManifest(filepath.Join(blocker, "split.tsv"), Assign([]int{1}, 0, 0, 1))
	assert.Error(t, errE)
}
