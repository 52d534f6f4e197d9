package entities

import (
	"cmp"
	"slices"

	"github.com/scylladb/go-set/strset"
)

// AbsentVersion is the sentinel placed in a row when a node lacks the package.
const AbsentVersion = "Absent"

// Status classifies a package across the two compared nodes.
type Status string

const (
	StatusAbsent    Status = "Absent"
	StatusDifferent Status = "Different"
	StatusSame      Status = "Same"
)

// Statuses lists every status in report order.
func Statuses() []Status {
	return []Status{StatusAbsent, StatusDifferent, StatusSame}
}

// rank orders Absent before Different before Same.
func (s Status) rank() int {
	switch s {
	case StatusAbsent:
		return 0
	case StatusDifferent:
		return 1
	default:
		return 2 //nolint:mnd // Same sorts last
	}
}

// ComparisonRow holds the outcome for a single package.
type ComparisonRow struct {
	Package  string `json:"package"`
	VersionA string `json:"versionA"`
	VersionB string `json:"versionB"`
	Status   Status `json:"status"`
}

// ComparisonResult is the ordered list of rows produced by ComparePackages.
type ComparisonResult []ComparisonRow

// Summary counts rows per status.
type Summary struct {
	Total     int `json:"total"`
	Absent    int `json:"absent"`
	Different int `json:"different"`
	Same      int `json:"same"`
}

// ClassifyVersions derives the status of a package from its two versions.
func ClassifyVersions(versionA, versionB string) Status {
	switch {
	case versionA == AbsentVersion || versionB == AbsentVersion:
		return StatusAbsent
	case versionA != versionB:
		return StatusDifferent
	default:
		return StatusSame
	}
}

// ComparePackages classifies every package found on either node.
// Rows are ordered Absent, Different, Same and by package name inside each group.
func ComparePackages(first, second PackageMap) ComparisonResult {
	names := strset.New(first.Names()...)
	names.Add(second.Names()...)

	result := make(ComparisonResult, 0, names.Size())
	names.Each(func(name string) bool {
		versionA := versionOrAbsent(first, name)
		versionB := versionOrAbsent(second, name)
		result = append(result, ComparisonRow{
			Package:  name,
			VersionA: versionA,
			VersionB: versionB,
			Status:   ClassifyVersions(versionA, versionB),
		})
		return true
	})

	slices.SortStableFunc(result, func(one, two ComparisonRow) int {
		if byStatus := cmp.Compare(one.Status.rank(), two.Status.rank()); byStatus != 0 {
			return byStatus
		}
		return cmp.Compare(one.Package, two.Package)
	})
	return result
}

func versionOrAbsent(packages PackageMap, name string) string {
	if version, ok := packages.Version(name); ok {
		return version
	}
	return AbsentVersion
}

// Summary counts the rows of the result per status.
func (r ComparisonResult) Summary() Summary {
	summary := Summary{Total: len(r)}
	for _, row := range r {
		switch row.Status {
		case StatusAbsent:
			summary.Absent++
		case StatusDifferent:
			summary.Different++
		case StatusSame:
			summary.Same++
		}
	}
	return summary
}
