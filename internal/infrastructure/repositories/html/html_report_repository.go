package html

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"

	"github.com/Masterminds/sprig/v3"

	"github.com/rios0rios0/pkgcompare/internal/domain/entities"
	"github.com/rios0rios0/pkgcompare/internal/domain/repositories"
)

const formatName = "html"

//go:embed report.html.tmpl
var reportTemplate string

// ReportRepository renders the static HTML report with one colored table
// row per package.
type ReportRepository struct {
	tmpl *template.Template
}

var _ repositories.ReportRepository = (*ReportRepository)(nil)

// NewReportRepository parses the embedded report template.
func NewReportRepository() *ReportRepository {
	return &ReportRepository{
		tmpl: template.Must(template.New(formatName).Funcs(sprig.FuncMap()).Parse(reportTemplate)),
	}
}

func (it *ReportRepository) Name() string { return formatName }

// Render executes the template against the report.
func (it *ReportRepository) Render(output io.Writer, report entities.Report) error {
	if err := it.tmpl.Execute(output, report); err != nil {
		return fmt.Errorf("unable to execute report template: %w", err)
	}
	return nil
}
