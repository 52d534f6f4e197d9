package main

import (
	"errors"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/pkgcompare/internal"
	"github.com/rios0rios0/pkgcompare/internal/domain/commands"
	"github.com/rios0rios0/pkgcompare/internal/domain/entities"
)

func buildRootCommand(defaultController entities.Controller) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "pkgcompare [node1-file] [node2-file]",
		Short: "Compare installed packages between two machines",
		Long: `Compare the installed package lists of two machines and render a
difference report.

Each input is a package listing such as the output of "rpm -qa". Every
package is reported as Absent (installed on one node only), Different
(installed on both with different versions) or Same.

Usage modes:
  pkgcompare                          Prompt for both listing paths
  pkgcompare node1.txt node2.txt      Compare the given listings
  pkgcompare compare node1.txt node2.txt -f table -o report.txt`,
		Args:          cobra.MaximumNArgs(2), //nolint:mnd // two listings
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          defaultController.Execute,
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	defaultController.AddFlags(cmd)
	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  cobra.MaximumNArgs(2), //nolint:mnd // two listings
			RunE:  controller.Execute,
		}
		controller.AddFlags(subCmd)
		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Inject controllers via DIG
	appContext := injectAppContext()
	cobraRoot := buildRootCommand(appContext.GetDefaultController())
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		if errors.Is(err, commands.ErrListingNotFound) {
			os.Exit(1)
		}
		logger.Fatalf("Error executing 'pkgcompare': %s", err)
	}
}
