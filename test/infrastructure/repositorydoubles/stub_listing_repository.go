//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"

	"github.com/rios0rios0/pkgcompare/internal/domain/repositories"
)

// StubListingRepository implements repositories.ListingRepository from an
// in-memory path -> lines table.
type StubListingRepository struct {
	Listings map[string][]string
	ReadErr  error
	// spy: paths that were read
	ReadPaths []string
}

var _ repositories.ListingRepository = (*StubListingRepository)(nil)

func (s *StubListingRepository) Exists(path string) bool {
	_, ok := s.Listings[path]
	return ok
}

func (s *StubListingRepository) ReadLines(path string) ([]string, error) {
	s.ReadPaths = append(s.ReadPaths, path)
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	lines, ok := s.Listings[path]
	if !ok {
		return nil, fmt.Errorf("listing not found: %s", path)
	}
	return lines, nil
}
