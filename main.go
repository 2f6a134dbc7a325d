package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	flagProfile        string
	flagCompartmentID  string
	flagOutputFile     string
	flagFormat         string
	flagLogLevel       string
	flagTimeout        int
	flagProgress       bool
	flagGenerateConfig string
)

var rootCmd = &cobra.Command{
	Use:   "oci-pdb-mapping",
	Short: "Map OCI pluggable databases to their container databases and DB homes",
	Long: `oci-pdb-mapping queries the OCI control plane through the installed
oci CLI and joins pluggable databases to their container databases, DB
homes, and owning compartment, writing the result as a flat report
(pdb_cdb_mapping.csv by default).

Credential resolution is entirely the oci CLI's: the named profile is
passed through on every invocation.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&flagProfile, "profile", "", "OCI CLI profile to use (required)")
	rootCmd.Flags().StringVar(&flagCompartmentID, "compartment-id", "", "OCID of the compartment to query (required)")
	rootCmd.Flags().StringVarP(&flagOutputFile, "output", "o", "", "Output file path (\"-\" for stdout)")
	rootCmd.Flags().StringVarP(&flagFormat, "format", "f", "", "Output format: csv, tsv, or json")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level: silent, normal, verbose, or debug")
	rootCmd.Flags().IntVar(&flagTimeout, "timeout", 0, "Whole-run timeout in seconds")
	rootCmd.Flags().BoolVar(&flagProgress, "progress", true, "Show a progress bar on stderr")
	rootCmd.Flags().StringVar(&flagGenerateConfig, "generate-config", "", "Write a default configuration file to the given path and exit")

	rootCmd.MarkFlagRequired("profile")
	rootCmd.MarkFlagRequired("compartment-id")
}

func run(cmd *cobra.Command, args []string) error {
	if flagGenerateConfig != "" {
		if err := GenerateDefaultConfigFile(flagGenerateConfig); err != nil {
			return err
		}
		fmt.Printf("Configuration file generated: %s\n", flagGenerateConfig)
		return nil
	}

	config, err := LoadConfig()
	if err != nil {
		return err
	}

	var progressFlag *bool
	if cmd.Flags().Changed("progress") {
		progressFlag = &flagProgress
	}
	MergeWithCLIArgs(config, &flagTimeout, &flagLogLevel, &flagFormat, &flagOutputFile, progressFlag)

	// Re-validate: CLI overrides can introduce values the file never had.
	if err := validateConfig(config); err != nil {
		return err
	}

	level, err := ParseLogLevel(config.General.LogLevel)
	if err != nil {
		return err
	}
	logger = NewLogger(level)

	if !isValidCompartmentOCID(flagCompartmentID) {
		return fmt.Errorf("invalid compartment OCID format: %s", flagCompartmentID)
	}

	filters, err := CompileFilters(config.Filters)
	if err != nil {
		return err
	}

	verifyProfile(flagProfile)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(config.General.Timeout)*time.Second)
	defer cancel()

	client := NewCLIClient(config.CLI.Binary, flagProfile, nil)

	return extract(ctx, client, filters, config, flagCompartmentID)
}

// extract runs the fixed fetch/join/write sequence. Only an empty PDB set
// stops the run early; every later step runs unconditionally and degrades
// to placeholders when its own fetch yielded nothing.
func extract(ctx context.Context, client ControlPlaneClient, filters *CompiledFilters, config *AppConfig, compartmentID string) error {
	logger.Info("Starting extraction for compartment %s", formatShortOCID(compartmentID))

	progress := newStepProgress(config.General.Progress && config.Output.File != "-", 6)

	progress.Step("pluggable databases")
	pdbs := fetchPluggableDatabases(ctx, client, compartmentID, config.Limits.PluggableDatabases)
	pdbs = ApplyPDBFilters(pdbs, filters)
	if len(pdbs) == 0 {
		progress.Done()
		logger.Info("No pluggable databases found in compartment %s; nothing to report", formatShortOCID(compartmentID))
		return nil
	}

	progress.Step("container databases")
	cdbs := fetchCDBMapping(ctx, client, compartmentID, config.Limits.Databases)

	progress.Step("DB homes")
	homes := fetchDBHomeMapping(ctx, client, compartmentID, config.Limits.DBHomes)

	progress.Step("compartment")
	compartment := fetchCompartment(ctx, client, compartmentID)

	progress.Step("join")
	rows := BuildMappingRows(pdbs, cdbs, homes, compartment)

	progress.Step("write")
	if err := WriteMappingReport(rows, config.Output.Format, config.Output.File); err != nil {
		progress.Done()
		return fmt.Errorf("failed to write report: %w", err)
	}
	progress.Done()

	if config.Output.File != "-" {
		logger.Info("Report generated: %s (%d rows)", config.Output.File, len(rows))
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
