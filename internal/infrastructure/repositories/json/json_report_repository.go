package json

import (
	"encoding/json"
	"io"

	"github.com/rios0rios0/pkgcompare/internal/domain/entities"
	"github.com/rios0rios0/pkgcompare/internal/domain/repositories"
)

const formatName = "json"

// document is the serialized shape of a report.
type document struct {
	Nodes   entities.NodeLabels      `json:"nodes"`
	Summary entities.Summary         `json:"summary"`
	Rows    []entities.ComparisonRow `json:"rows"`
}

// ReportRepository renders the comparison as an indented JSON document.
type ReportRepository struct{}

var _ repositories.ReportRepository = (*ReportRepository)(nil)

// NewReportRepository creates a new JSON renderer.
func NewReportRepository() *ReportRepository {
	return &ReportRepository{}
}

func (it *ReportRepository) Name() string { return formatName }

// Render encodes the report as JSON.
func (it *ReportRepository) Render(output io.Writer, report entities.Report) error {
	rows := report.Rows
	if rows == nil {
		rows = entities.ComparisonResult{}
	}

	enc := json.NewEncoder(output)
	// prevent > and < from being escaped in the payload
	enc.SetEscapeHTML(false)
	enc.SetIndent("", " ")
	return enc.Encode(document{
		Nodes:   report.Labels,
		Summary: report.Summary,
		Rows:    rows,
	})
}
