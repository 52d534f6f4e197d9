package table

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/rios0rios0/pkgcompare/internal/domain/entities"
	"github.com/rios0rios0/pkgcompare/internal/domain/repositories"
)

const formatName = "table"

// ReportRepository renders the comparison as a plain-text table.
type ReportRepository struct{}

var _ repositories.ReportRepository = (*ReportRepository)(nil)

// NewReportRepository is a *ReportRepository constructor.
func NewReportRepository() *ReportRepository {
	return &ReportRepository{}
}

func (it *ReportRepository) Name() string { return formatName }

// Render writes one table line per package followed by the status totals.
func (it *ReportRepository) Render(output io.Writer, report entities.Report) error {
	if len(report.Rows) == 0 {
		_, err := io.WriteString(output, "No packages found\n")
		return err
	}

	table := tablewriter.NewWriter(output)
	table.SetHeader([]string{
		"Package",
		report.Labels.First + " Version",
		report.Labels.Second + " Version",
		"Result",
	})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for _, row := range report.Rows {
		table.Append([]string{row.Package, row.VersionA, row.VersionB, string(row.Status)})
	}
	table.Render()

	_, err := fmt.Fprintf(
		output, "\n%d packages: %d absent, %d different, %d same\n",
		report.Summary.Total, report.Summary.Absent, report.Summary.Different, report.Summary.Same,
	)
	return err
}
