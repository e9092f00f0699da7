// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrNotDirectory = errors.New("not a directory")
	ErrSameDir      = errors.New("source and destination are the same directory")
)

// Permissions used for generated output.
const (
	DirPerm  = 0o755
	FilePerm = 0o644
)

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "default" -> false (name)
//   - "./site.yaml" -> true (relative path)
//   - "/absolute/site.yaml" -> true (absolute)
//   - "C:\sites\blog.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// WriteFile writes content to path, creating parent directories as needed.
func WriteFile(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	if err := os.WriteFile(path, content, FilePerm); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}
	return nil
}

// ResetDir removes dir and everything below it, then recreates it empty.
func ResetDir(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("removing %s: %w", dir, err)
	}
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	return nil
}

// CopyDir recursively copies the contents of src into dst and returns the
// number of files copied. dst is created if needed; existing files are
// overwritten. Symlinks are skipped.
func CopyDir(src, dst string) (int, error) {
	info, err := os.Stat(src)
	if err != nil {
		return 0, err
	}
	if !info.IsDir() {
		return 0, fmt.Errorf("%w: %s", ErrNotDirectory, src)
	}

	absSrc, srcErr := filepath.Abs(src)
	absDst, dstErr := filepath.Abs(dst)
	if srcErr == nil && dstErr == nil && absSrc == absDst {
		return 0, fmt.Errorf("%w: %s", ErrSameDir, src)
	}

	copied := 0
	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		switch {
		case d.IsDir():
			return os.MkdirAll(target, DirPerm)
		case d.Type()&fs.ModeSymlink != 0:
			return nil
		}

		if err := copyFile(path, target); err != nil {
			return err
		}
		copied++
		return nil
	})
	return copied, err
}

// copyFile copies a single regular file.
func copyFile(src, dst string) (err error) {
	in, err := os.Open(src) // #nosec G304 -- path comes from walking a user directory
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, FilePerm) // #nosec G304
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := out.Close(); err == nil {
			err = closeErr
		}
	}()

	_, err = io.Copy(out, in)
	return err
}
