package entities

import (
	"regexp"
	"sort"
)

// packageLinePattern recognizes "<name>-<version><whitespace>" entries as
// printed by `rpm -qa`. The name group is greedy, so the split lands on the
// last hyphen followed by a digit.
var packageLinePattern = regexp.MustCompile(`^(\S+)-(\d+\S*)\s`)

// PackageMap maps a package name to its installed version for one node.
// It is built once by ExtractPackages and never mutated afterwards.
type PackageMap struct {
	versions map[string]string
}

// NewPackageMap copies the given name->version pairs into a PackageMap.
func NewPackageMap(versions map[string]string) PackageMap {
	copied := make(map[string]string, len(versions))
	for name, version := range versions {
		copied[name] = version
	}
	return PackageMap{versions: copied}
}

// ExtractPackages builds a PackageMap from raw listing lines.
//
// Lines must keep their terminator: a package entry is only recognized when
// whitespace follows the version. Lines that do not match are skipped, and a
// package seen more than once keeps the version of its last occurrence.
func ExtractPackages(lines []string) PackageMap {
	versions := make(map[string]string)
	for _, line := range lines {
		match := packageLinePattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		versions[match[1]] = match[2]
	}
	return PackageMap{versions: versions}
}

// Version returns the version recorded for name and whether it is present.
func (m PackageMap) Version(name string) (string, bool) {
	version, ok := m.versions[name]
	return version, ok
}

// Names returns every package name in ascending order.
func (m PackageMap) Names() []string {
	names := make([]string, 0, len(m.versions))
	for name := range m.versions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of packages.
func (m PackageMap) Len() int {
	return len(m.versions)
}
