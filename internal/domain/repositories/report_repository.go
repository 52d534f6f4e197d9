package repositories

import (
	"io"

	"github.com/rios0rios0/pkgcompare/internal/domain/entities"
)

// ReportRepository renders a comparison report in one output format.
type ReportRepository interface {
	// Name returns the format identifier (e.g. "html", "table").
	Name() string

	// Render writes the report to output.
	Render(output io.Writer, report entities.Report) error
}

// ReportWriter persists a rendered report.
type ReportWriter interface {
	// Create opens path for writing, truncating any previous report.
	Create(path string) (io.WriteCloser, error)
}
