package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/pkgcompare/internal/domain/repositories"
	fsRepo "github.com/rios0rios0/pkgcompare/internal/infrastructure/repositories/filesystem"
	htmlRepo "github.com/rios0rios0/pkgcompare/internal/infrastructure/repositories/html"
	jsonRepo "github.com/rios0rios0/pkgcompare/internal/infrastructure/repositories/json"
	tableRepo "github.com/rios0rios0/pkgcompare/internal/infrastructure/repositories/table"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(fsRepo.NewOsRepository); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *fsRepo.Repository) domainRepos.ListingRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *fsRepo.Repository) domainRepos.ReportWriter {
		return impl
	}); err != nil {
		return err
	}

	// Register report registry with all output formats
	if err := container.Provide(func() *ReportRegistry {
		reg := NewReportRegistry()
		reg.Register(htmlRepo.NewReportRepository())
		reg.Register(tableRepo.NewReportRepository())
		reg.Register(jsonRepo.NewReportRepository())
		return reg
	}); err != nil {
		return err
	}

	return nil
}
