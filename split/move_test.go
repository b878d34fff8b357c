package split

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelocate(t *testing.T) {
	cfg := newConfig(t.TempDir())
	writePartitions(t, cfg.PartitionsPath, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	require.NoError(t, EnsureDirectories(cfg.ValidationPath, cfg.TestPath))

	a := Assign(rangeIndices(10), 0.2, 0.3, 11)
	moved, errE := Relocate(cfg, a)
	require.NoError(t, errE)
	assert.Equal(t, 5, moved)

	for _, index := range a.Test {
		assert.FileExists(t, filepath.Join(cfg.TestPath, PartitionFileName(index)))
		assert.NoFileExists(t, filepath.Join(cfg.PartitionsPath, PartitionFileName(index)))
	}
	for _, index := range a.Validation {
		assert.FileExists(t, filepath.Join(cfg.ValidationPath, PartitionFileName(index)))
	}
	for _, index := range a.Train {
		assert.FileExists(t, filepath.Join(cfg.PartitionsPath, PartitionFileName(index)))
	}
}

func TestRelocateVanishedFile(t *testing.T) {
	cfg := newConfig(t.TempDir())
	writePartitions(t, cfg.PartitionsPath, 0, 1, 2, 3)
	require.NoError(t, EnsureDirectories(cfg.ValidationPath, cfg.TestPath))

	a := Assign(rangeIndices(4), 0.5, 0.5, 5)
	// the second file to be moved disappears before the move
	require.NoError(t, os.Remove(filepath.Join(cfg.PartitionsPath, PartitionFileName(1))))

	moved, errE := Relocate(cfg, a)
	require.Error(t, errE)
	assert.ErrorIs(t, errE, os.ErrNotExist)
	assert.Equal(t, 1, moved)

	// the file moved before the failure stays moved
	group, _ := a.GroupOf(0)
	dest := cfg.ValidationPath
	if group == Test {
		dest = cfg.TestPath
	}
	assert.FileExists(t, filepath.Join(dest, PartitionFileName(0)))
}

func TestCopyAndRemove(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "src.bin")
	dst := filepath.Join(root, "dst.bin")
	require.NoError(t, os.WriteFile(src, []byte("partition payload"), 0o640))

	require.NoError(t, copyAndRemove(src, dst))

	assert.NoFileExists(t, src)
	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "partition payload", string(content))

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
}

func TestCopyAndRemoveMissingSource(t *testing.T) {
	root := t.TempDir()
	errE := copyAndRemove(filepath.Join(root, "missing.bin"), filepath.Join(root, "dst.bin"))
	require.Error(t, errE)
	assert.ErrorIs(t, errE, os.ErrNotExist)
	assert.NoFileExists(t, filepath.Join(root, "dst.bin"))
}
