package datadir

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Dir is a read-only view of a directory.
// All operations are confined to the base directory.
type Dir struct {
	base string // Absolute path
}

// Entry describes one file or subdirectory.
type Entry struct {
	Name  string
	Path  string // Relative to the base directory
	IsDir bool
	Size  int64
}

// New resolves base to an absolute path. The directory does not have to
// exist yet; operations on a missing directory fail when they are attempted.
func New(base string) (*Dir, error) {
	if base == "" {
		return nil, ErrInvalidConfig
	}
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToGetAbsolutePath, err)
	}
	return &Dir{base: abs}, nil
}

// Base returns the absolute base directory.
func (d *Dir) Base() string { return d.base }

// Path resolves name inside the base directory.
func (d *Dir) Path(name string) (string, error) {
	return d.resolvePath(name)
}

// Open opens a regular file for reading.
func (d *Dir) Open(name string) (*os.File, error) {
	abs, err := d.resolvePath(name)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, name)
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToStatPath, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, name)
	}

	f, err := os.Open(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToOpenFile, err)
	}
	return f, nil
}

// Exists reports whether name exists inside the base directory.
func (d *Dir) Exists(name string) bool {
	abs, err := d.resolvePath(name)
	if err != nil {
		return false
	}
	_, err = os.Stat(abs)
	return err == nil
}

// List returns the entries of dir, sorted by name. With extensions set, only
// directories and files with one of those extensions (".csv") are kept.
func (d *Dir) List(ctx context.Context, dir string, extensions ...string) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	abs, err := d.resolvePath(dir)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToStatPath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	dirEntries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToReadDirectory, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		// Allow cancellation during large directory listings
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if !de.IsDir() && len(extensions) > 0 && !slices.Contains(extensions, filepath.Ext(de.Name())) {
			continue
		}

		info, err := de.Info()
		if err != nil {
			continue // Skip entries we can't read
		}

		rel, err := filepath.Rel(d.base, filepath.Join(abs, de.Name()))
		if err != nil {
			rel = filepath.Join(dir, de.Name())
		}

		entry := Entry{Name: de.Name(), Path: rel, IsDir: de.IsDir()}
		if !de.IsDir() {
			entry.Size = info.Size()
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// resolvePath validates and resolves a path within the base directory.
func (d *Dir) resolvePath(name string) (string, error) {
	var abs string
	if filepath.IsAbs(name) {
		abs = filepath.Clean(name)
	} else {
		abs = filepath.Join(d.base, filepath.Clean(name))
	}

	// Ensure path stays within base (prevents ../ attacks)
	if !strings.HasPrefix(abs, d.base+string(filepath.Separator)) && abs != d.base {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, name)
	}
	return abs, nil
}
