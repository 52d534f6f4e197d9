//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"
	"sort"

	"github.com/rios0rios0/pkgcompare/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// PackageMapBuilder helps create test package maps with a fluent interface.
type PackageMapBuilder struct {
	*testkit.BaseBuilder
	versions map[string]string
}

// NewPackageMapBuilder creates a new builder with an empty package set.
func NewPackageMapBuilder() *PackageMapBuilder {
	return &PackageMapBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		versions:    make(map[string]string),
	}
}

// WithPackage adds (or replaces) a package version.
func (b *PackageMapBuilder) WithPackage(name, version string) *PackageMapBuilder {
	b.versions[name] = version
	return b
}

// Build creates the package map (satisfies testkit.Builder interface).
func (b *PackageMapBuilder) Build() interface{} {
	return b.BuildPackageMap()
}

// BuildPackageMap creates the package map with a concrete return type.
func (b *PackageMapBuilder) BuildPackageMap() entities.PackageMap {
	return entities.NewPackageMap(b.versions)
}

// BuildListing renders the packages as `rpm -qa` lines, newline-terminated.
func (b *PackageMapBuilder) BuildListing() []string {
	names := make([]string, 0, len(b.versions))
	for name := range b.versions {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("%s-%s\n", name, b.versions[name]))
	}
	return lines
}

// Reset clears the builder state, allowing it to be reused.
func (b *PackageMapBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.versions = make(map[string]string)
	return b
}

// Clone creates a deep copy of the PackageMapBuilder.
func (b *PackageMapBuilder) Clone() testkit.Builder {
	versions := make(map[string]string, len(b.versions))
	for name, version := range b.versions {
		versions[name] = version
	}
	return &PackageMapBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		versions:    versions,
	}
}
