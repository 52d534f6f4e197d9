//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"io"

	"github.com/rios0rios0/pkgcompare/internal/domain/entities"
	"github.com/rios0rios0/pkgcompare/internal/domain/repositories"
)

// SpyReportRepository implements repositories.ReportRepository as a configurable spy.
type SpyReportRepository struct {
	// --- identity ---
	FormatName string

	// --- Render ---
	Content   string
	RenderErr error
	Reports   []entities.Report
}

var _ repositories.ReportRepository = (*SpyReportRepository)(nil)

func (s *SpyReportRepository) Name() string { return s.FormatName }

func (s *SpyReportRepository) Render(output io.Writer, report entities.Report) error {
	s.Reports = append(s.Reports, report)
	if s.RenderErr != nil {
		return s.RenderErr
	}
	_, err := io.WriteString(output, s.Content)
	return err
}

// DummyReportRepository is a no-op implementation of repositories.ReportRepository.
type DummyReportRepository struct{}

var _ repositories.ReportRepository = (*DummyReportRepository)(nil)

func (d *DummyReportRepository) Name() string { return "dummy" }

func (d *DummyReportRepository) Render(_ io.Writer, _ entities.Report) error {
	return nil
}
