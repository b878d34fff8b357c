package split

import (
	"io"
	"os"
	"path/filepath"
	"syscall"

	"gitlab.com/tozd/go/errors"
)

// Relocate moves every test and validation partition out of the partitions
// directory into its destination directory. Training partitions stay where
// they are. It stops at the first failed move; files moved before that are
// not put back. It returns how many files were moved.
func Relocate(cfg Config, a *Assignment) (int, errors.E) {
	moved := 0
	for _, index := range a.Indices {
		group, _ := a.GroupOf(index)

		var destDir string
		switch group {
		case Test:
			destDir = cfg.TestPath
		case Validation:
			destDir = cfg.ValidationPath
		default:
			continue
		}

		filename := PartitionFileName(index)
		src := filepath.Join(cfg.PartitionsPath, filename)
		dst := filepath.Join(destDir, filename)
		errE := moveFile(src, dst)
		if errE != nil {
			errors.Details(errE)["group"] = group.String()
			errors.Details(errE)["moved"] = moved
			return moved, errE
		}
		moved++
	}
	return moved, nil
}

// moveFile renames src to dst, falling back to copy and delete when the two
// are on different filesystems.
func moveFile(src, dst string) errors.E {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !errors.Is(err, syscall.EXDEV) {
		errE := errors.WithMessage(err, "moving partition file")
		errors.Details(errE)["src"] = src
		errors.Details(errE)["dst"] = dst
		return errE
	}
	return copyAndRemove(src, dst)
}

func copyAndRemove(src, dst string) (errE errors.E) {
	defer func() {
		if errE != nil {
			errors.Details(errE)["src"] = src
			errors.Details(errE)["dst"] = dst
		}
	}()

	in, err := os.Open(src)
	if err != nil {
		return errors.WithMessage(err, "opening partition file")
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return errors.WithStack(err)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return errors.WithMessage(err, "creating destination file")
	}

	_, err = io.Copy(out, in)
	if err == nil {
		err = out.Sync()
	}
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		// do not leave a partial copy next to the intact source
		_ = os.Remove(dst)
		return errors.WithMessage(err, "copying partition file")
	}

	err = os.Remove(src)
	if err != nil {
		return errors.WithMessage(err, "removing source after copy")
	}
	return nil
}
