package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/pkgcompare/internal/domain/entities"
	"github.com/rios0rios0/pkgcompare/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/pkgcompare/internal/infrastructure/repositories"
)

// ErrListingNotFound is returned when one of the listing files is missing.
var ErrListingNotFound = errors.New("one or both files do not exist")

// Compare is the interface for the compare command.
type Compare interface {
	Execute(ctx context.Context, opts CompareOptions) (*CompareOutput, error)
}

// CompareOptions holds runtime options for a single comparison.
type CompareOptions struct {
	FirstPath  string
	SecondPath string
	OutputPath string
	Format     string
	Labels     entities.NodeLabels
	Verbose    bool
}

// CompareOutput describes the report produced by a comparison.
type CompareOutput struct {
	OutputPath string
	Format     string
	Summary    entities.Summary
}

// CompareCommand reads two package listings, compares them and writes the
// report in the requested format.
type CompareCommand struct {
	listings       repositories.ListingRepository
	writer         repositories.ReportWriter
	reportRegistry *infraRepos.ReportRegistry
}

// NewCompareCommand creates a new CompareCommand.
func NewCompareCommand(
	listings repositories.ListingRepository,
	writer repositories.ReportWriter,
	reportRegistry *infraRepos.ReportRegistry,
) *CompareCommand {
	return &CompareCommand{
		listings:       listings,
		writer:         writer,
		reportRegistry: reportRegistry,
	}
}

// Execute runs the comparison. Nothing is written when a listing is missing
// or the format is unknown.
func (it *CompareCommand) Execute(_ context.Context, opts CompareOptions) (*CompareOutput, error) {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	if !it.listings.Exists(opts.FirstPath) || !it.listings.Exists(opts.SecondPath) {
		return nil, ErrListingNotFound
	}

	format := strings.ToLower(opts.Format)
	renderer := it.reportRegistry.Get(format)
	if renderer == nil {
		return nil, fmt.Errorf(
			"unsupported report format %q (available: %s)",
			opts.Format, strings.Join(it.reportRegistry.Names(), ", "),
		)
	}

	first, err := it.extract(opts.FirstPath)
	if err != nil {
		return nil, err
	}
	second, err := it.extract(opts.SecondPath)
	if err != nil {
		return nil, err
	}

	rows := entities.ComparePackages(first, second)
	report := entities.NewReport(opts.Labels, rows)
	logger.Infof(
		"Compared %d packages: %d absent, %d different, %d same",
		report.Summary.Total, report.Summary.Absent, report.Summary.Different, report.Summary.Same,
	)

	if writeErr := it.write(opts.OutputPath, renderer, report); writeErr != nil {
		return nil, writeErr
	}

	return &CompareOutput{
		OutputPath: opts.OutputPath,
		Format:     renderer.Name(),
		Summary:    report.Summary,
	}, nil
}

func (it *CompareCommand) extract(path string) (entities.PackageMap, error) {
	lines, err := it.listings.ReadLines(path)
	if err != nil {
		return entities.PackageMap{}, fmt.Errorf("failed to read package listing %q: %w", path, err)
	}
	packages := entities.ExtractPackages(lines)
	logger.Debugf("Extracted %d packages from %d lines of %q", packages.Len(), len(lines), path)
	return packages, nil
}

func (it *CompareCommand) write(
	path string,
	renderer repositories.ReportRepository,
	report entities.Report,
) (err error) {
	output, err := it.writer.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file %q: %w", path, err)
	}
	defer func() {
		if closeErr := output.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close report file %q: %w", path, closeErr)
		}
	}()

	if renderErr := renderer.Render(output, report); renderErr != nil {
		return fmt.Errorf("failed to render %s report: %w", renderer.Name(), renderErr)
	}
	return nil
}
