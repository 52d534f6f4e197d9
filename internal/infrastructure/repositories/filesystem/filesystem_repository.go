package filesystem

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/rios0rios0/pkgcompare/internal/domain/repositories"
)

const reportFileMode = 0o644

// Repository reads package listings and writes reports through an afero
// filesystem, so tests can swap the OS for an in-memory one.
type Repository struct {
	fs afero.Fs
}

var (
	_ repositories.ListingRepository = (*Repository)(nil)
	_ repositories.ReportWriter      = (*Repository)(nil)
)

// NewRepository creates a Repository on top of fs.
func NewRepository(fs afero.Fs) *Repository {
	return &Repository{fs: fs}
}

// NewOsRepository creates a Repository on the real filesystem.
func NewOsRepository() *Repository {
	return NewRepository(afero.NewOsFs())
}

// Exists reports whether path points to an existing file or directory.
func (it *Repository) Exists(path string) bool {
	if path == "" {
		return false
	}
	exists, err := afero.Exists(it.fs, expand(path))
	if err != nil {
		logger.Debugf("Failed to stat %q: %v", path, err)
		return false
	}
	return exists
}

// ReadLines returns the file content split after every newline. The last
// element has no terminator when the file does not end with one.
func (it *Repository) ReadLines(path string) ([]string, error) {
	data, err := afero.ReadFile(it.fs, expand(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	if len(data) == 0 {
		return []string{}, nil
	}

	lines := strings.SplitAfter(string(data), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

// Create opens path for writing, truncating an existing file.
func (it *Repository) Create(path string) (io.WriteCloser, error) {
	file, err := it.fs.OpenFile(expand(path), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, reportFileMode)
	if err != nil {
		return nil, err
	}
	return file, nil
}

// expand resolves a leading "~" to the user's home directory.
func expand(path string) string {
	expanded, err := homedir.Expand(path)
	if err != nil {
		logger.Debugf("Unable to expand path %q: %v", path, err)
		return path
	}
	return expanded
}
