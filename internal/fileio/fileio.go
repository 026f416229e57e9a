// package fileio provides output file helpers for the keynet tools
package fileio

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dchest/safefile"
)

// WithAtomicFile passes a temporary file in the same directory as the
// output file to f, and renames it over the output file only if f
// succeeds. On any failure the output file is left as it was. The file
// gets the given mode regardless of the permissions of any file it
// replaces.
//
// Symlinks are followed, so the link target is replaced and the link
// kept. Targets that are not regular files (devices, fifos, dangling
// links) are instead opened and truncated in place, without atomicity.
func WithAtomicFile(fileName string, mode os.FileMode, f func(io.Writer) error) error {
	target, err := filepath.EvalSymlinks(fileName)
	switch {
	case err == nil:
		fileName = target
	case errors.Is(err, fs.ErrNotExist):
		if info, lerr := os.Lstat(fileName); lerr == nil && info.Mode()&fs.ModeSymlink != 0 {
			return withTruncatedFile(fileName, mode, f)
		}
	default:
		return err
	}
	if info, err := os.Stat(fileName); err == nil && !info.Mode().IsRegular() {
		return withTruncatedFile(fileName, mode, f)
	}

	file, err := safefile.Create(fileName, mode)
	if err != nil {
		return err
	}
	// No-op after a successful Commit, otherwise removes the temporary file.
	defer file.Close()

	if err := f(file); err != nil {
		return err
	}
	return file.Commit()
}

func withTruncatedFile(fileName string, mode os.FileMode, f func(io.Writer) error) error {
	file, err := os.OpenFile(fileName,
		os.O_CREATE|os.O_TRUNC|os.O_WRONLY, mode)
	if err != nil {
		return err
	}
	if err := f(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
