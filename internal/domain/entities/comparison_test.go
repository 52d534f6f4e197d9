//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/pkgcompare/internal/domain/entities"
	"github.com/rios0rios0/pkgcompare/test/domain/entitybuilders"
)

func TestClassifyVersions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		versionA string
		versionB string
		expected entities.Status
	}{
		{"missing on the second node", "5.1", entities.AbsentVersion, entities.StatusAbsent},
		{"missing on the first node", entities.AbsentVersion, "5.1", entities.StatusAbsent},
		{"different strings", "1.0", "1.0.0", entities.StatusDifferent},
		{"identical strings", "7.80", "7.80", entities.StatusSame},
	}

	for _, tt := range tests {
		t.Run("should classify "+tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			status := entities.ClassifyVersions(tt.versionA, tt.versionB)

			// then
			assert.Equal(t, tt.expected, status)
		})
	}
}

func TestComparePackages(t *testing.T) {
	t.Parallel()

	t.Run("should order absent rows before same rows", func(t *testing.T) {
		t.Parallel()

		// given
		first := entitybuilders.NewPackageMapBuilder().
			WithPackage("bash", "5.1").
			WithPackage("curl", "7.80").
			BuildPackageMap()
		second := entitybuilders.NewPackageMapBuilder().
			WithPackage("bash", "5.1").
			WithPackage("wget", "1.21").
			BuildPackageMap()

		// when
		result := entities.ComparePackages(first, second)

		// then
		expected := entities.ComparisonResult{
			{Package: "curl", VersionA: "7.80", VersionB: "Absent", Status: entities.StatusAbsent},
			{Package: "wget", VersionA: "Absent", VersionB: "1.21", Status: entities.StatusAbsent},
			{Package: "bash", VersionA: "5.1", VersionB: "5.1", Status: entities.StatusSame},
		}
		assert.Equal(t, expected, result)
	})

	t.Run("should group rows by status and sort by name inside each group", func(t *testing.T) {
		t.Parallel()

		// given
		first := entitybuilders.NewPackageMapBuilder().
			WithPackage("zsh", "5.8").
			WithPackage("vim", "8.2").
			WithPackage("Vim", "8.2").
			WithPackage("openssl", "1.1.1k").
			WithPackage("acl", "2.2").
			WithPackage("git", "2.39").
			BuildPackageMap()
		second := entitybuilders.NewPackageMapBuilder().
			WithPackage("zsh", "5.9").
			WithPackage("vim", "8.2").
			WithPackage("Vim", "8.2").
			WithPackage("openssl", "3.0.7").
			WithPackage("bc", "1.07").
			WithPackage("git", "2.39").
			BuildPackageMap()

		// when
		result := entities.ComparePackages(first, second)

		// then
		names := make([]string, 0, len(result))
		for _, row := range result {
			names = append(names, row.Package)
		}
		assert.Equal(t, []string{"acl", "bc", "openssl", "zsh", "Vim", "git", "vim"}, names)
		assertOrdered(t, result)
	})

	t.Run("should cover the union of both key sets exactly once", func(t *testing.T) {
		t.Parallel()

		// given
		first := entitybuilders.NewPackageMapBuilder().
			WithPackage("a", "1").
			WithPackage("b", "2").
			WithPackage("c", "3").
			BuildPackageMap()
		second := entitybuilders.NewPackageMapBuilder().
			WithPackage("b", "2").
			WithPackage("c", "4").
			WithPackage("d", "5").
			BuildPackageMap()

		// when
		result := entities.ComparePackages(first, second)

		// then
		require.Len(t, result, 4)
		seen := make(map[string]entities.Status)
		for _, row := range result {
			_, duplicated := seen[row.Package]
			assert.False(t, duplicated, "package %q listed twice", row.Package)
			seen[row.Package] = row.Status
		}
		assert.Equal(t, map[string]entities.Status{
			"a": entities.StatusAbsent,
			"b": entities.StatusSame,
			"c": entities.StatusDifferent,
			"d": entities.StatusAbsent,
		}, seen)
	})

	t.Run("should mark every package as same when comparing a map with itself", func(t *testing.T) {
		t.Parallel()

		// given
		packages := entitybuilders.NewPackageMapBuilder().
			WithPackage("bash", "5.1").
			WithPackage("curl", "7.80").
			WithPackage("wget", "1.21").
			BuildPackageMap()

		// when
		result := entities.ComparePackages(packages, packages)

		// then
		require.Len(t, result, packages.Len())
		for _, row := range result {
			assert.Equal(t, entities.StatusSame, row.Status)
		}
	})

	t.Run("should return an empty result for two empty maps", func(t *testing.T) {
		t.Parallel()

		// given
		empty := entitybuilders.NewPackageMapBuilder().BuildPackageMap()

		// when
		result := entities.ComparePackages(empty, empty)

		// then
		assert.Empty(t, result)
		assert.Equal(t, entities.Summary{}, result.Summary())
	})

	t.Run("should compare listings extracted from raw lines", func(t *testing.T) {
		t.Parallel()

		// given
		first := entities.ExtractPackages(entitybuilders.NewPackageMapBuilder().
			WithPackage("bash", "5.1.8-6.el9").
			WithPackage("curl", "7.76.1-19.el9").
			BuildListing())
		second := entities.ExtractPackages(entitybuilders.NewPackageMapBuilder().
			WithPackage("bash", "5.1.8-6.el9").
			WithPackage("curl", "7.76.1-23.el9").
			BuildListing())

		// when
		result := entities.ComparePackages(first, second)

		// then
		require.Len(t, result, 2)
		assert.Equal(t, entities.ComparisonRow{
			Package:  "curl-7.76.1",
			VersionA: "19.el9",
			VersionB: "23.el9",
			Status:   entities.StatusDifferent,
		}, result[0])
		assert.Equal(t, entities.StatusSame, result[1].Status)
	})
}

func TestComparisonResult_Summary(t *testing.T) {
	t.Parallel()

	t.Run("should count rows per status", func(t *testing.T) {
		t.Parallel()

		// given
		result := entities.ComparisonResult{
			{Package: "a", Status: entities.StatusAbsent},
			{Package: "b", Status: entities.StatusAbsent},
			{Package: "c", Status: entities.StatusDifferent},
			{Package: "d", Status: entities.StatusSame},
		}

		// when
		summary := result.Summary()

		// then
		assert.Equal(t, entities.Summary{Total: 4, Absent: 2, Different: 1, Same: 1}, summary)
	})
}

func assertOrdered(t *testing.T, result entities.ComparisonResult) {
	t.Helper()

	rank := map[entities.Status]int{}
	for i, status := range entities.Statuses() {
		rank[status] = i
	}
	for i := 1; i < len(result); i++ {
		previous, current := result[i-1], result[i]
		require.LessOrEqual(t, rank[previous.Status], rank[current.Status])
		if previous.Status == current.Status {
			assert.Less(t, previous.Package, current.Package)
		}
	}
}
