package controllers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/pkgcompare/internal/domain/commands"
	"github.com/rios0rios0/pkgcompare/internal/domain/entities"
)

const (
	firstPathQuestion  = "Enter the path to the first node's package file: "
	secondPathQuestion = "Enter the path to the second node's package file: "
	notFoundMessage    = "Error: One or both files do not exist."
)

// CompareController handles the "compare" subcommand and the bare root command.
type CompareController struct {
	command commands.Compare
}

// NewCompareController creates a new CompareController.
func NewCompareController(command commands.Compare) *CompareController {
	return &CompareController{command: command}
}

// GetBind returns the Cobra command metadata for the compare controller.
func (it *CompareController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "compare [node1-file] [node2-file]",
		Short: "Compare the package listings of two nodes",
		Long: `Compare two package listings (e.g. the output of "rpm -qa" on each node)
and write a report classifying every package as Absent, Different or Same.

Missing paths are prompted for on standard input.`,
	}
}

// AddFlags adds the compare-specific flags to the given Cobra command.
func (it *CompareController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "",
		fmt.Sprintf("Report file to write (default %q)", entities.DefaultReportOutput))
	cmd.Flags().StringP("format", "f", "",
		fmt.Sprintf("Report format: html, table or json (default %q)", entities.DefaultReportFormat))
	cmd.Flags().String("node1-label", "", "Display name of the first node")
	cmd.Flags().String("node2-label", "", "Display name of the second node")
}

// Execute runs a comparison and prints the name of the generated report.
func (it *CompareController) Execute(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, settings)

	firstPath, secondPath, err := resolvePaths(cmd, args)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	output, err := it.command.Execute(ctx, commands.CompareOptions{
		FirstPath:  firstPath,
		SecondPath: secondPath,
		OutputPath: settings.Report.Output,
		Format:     settings.Report.Format,
		Labels: entities.NodeLabels{
			First:  settings.Nodes.First,
			Second: settings.Nodes.Second,
		},
		Verbose: verbose,
	})
	if err != nil {
		if errors.Is(err, commands.ErrListingNotFound) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), notFoundMessage)
		}
		return err
	}

	_, _ = fmt.Fprintf(
		cmd.OutOrStdout(), "%s report generated: %s\n",
		strings.ToUpper(output.Format), output.OutputPath,
	)
	return nil
}

// loadSettings reads the config file given by --config, falls back to the
// standard locations and finally to defaults.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		found, findErr := entities.FindConfigFile()
		if findErr != nil {
			logger.Debugf("Using default settings: %v", findErr)
			return entities.NewDefaultSettings(), nil
		}
		configPath = found
	}

	logger.Infof("Using config file: %s", configPath)
	settings, err := entities.NewSettings(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return settings, nil
}

func applyFlagOverrides(cmd *cobra.Command, settings *entities.Settings) {
	if output, _ := cmd.Flags().GetString("output"); output != "" {
		settings.Report.Output = output
	}
	if format, _ := cmd.Flags().GetString("format"); format != "" {
		settings.Report.Format = format
	}
	if label, _ := cmd.Flags().GetString("node1-label"); label != "" {
		settings.Nodes.First = label
	}
	if label, _ := cmd.Flags().GetString("node2-label"); label != "" {
		settings.Nodes.Second = label
	}
}

// resolvePaths takes the listing paths from the arguments and prompts for
// the missing ones.
func resolvePaths(cmd *cobra.Command, args []string) (string, string, error) {
	paths := make([]string, 2) //nolint:mnd // exactly two nodes
	copy(paths, args)

	questions := []string{firstPathQuestion, secondPathQuestion}
	prompter := NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
	for i := range paths {
		if paths[i] != "" {
			continue
		}
		answer, err := prompter.Ask(questions[i])
		if err != nil {
			return "", "", err
		}
		paths[i] = answer
	}
	return paths[0], paths[1], nil
}
