package repositories

import (
	"sort"

	domainRepos "github.com/rios0rios0/pkgcompare/internal/domain/repositories"
)

// ReportRegistry manages all registered report renderers.
type ReportRegistry struct {
	reports map[string]domainRepos.ReportRepository
}

// NewReportRegistry creates an empty report registry.
func NewReportRegistry() *ReportRegistry {
	return &ReportRegistry{
		reports: make(map[string]domainRepos.ReportRepository),
	}
}

// Register adds a renderer under its name.
func (r *ReportRegistry) Register(report domainRepos.ReportRepository) {
	r.reports[report.Name()] = report
}

// Get returns the renderer with the given name, or nil if not registered.
func (r *ReportRegistry) Get(name string) domainRepos.ReportRepository {
	return r.reports[name]
}

// All returns every registered renderer.
func (r *ReportRegistry) All() []domainRepos.ReportRepository {
	result := make([]domainRepos.ReportRepository, 0, len(r.reports))
	for _, report := range r.reports {
		result = append(result, report)
	}
	return result
}

// Names returns the sorted list of registered format names.
func (r *ReportRegistry) Names() []string {
	names := make([]string, 0, len(r.reports))
	for name := range r.reports {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
