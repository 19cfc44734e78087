package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/revguard/internal/exitcode"
	"github.com/gyeh/revguard/internal/ingest"
	"github.com/gyeh/revguard/internal/logging"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the dataset directory shape without loading it",
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	if err := loadConfigFile(); err != nil {
		return err
	}
	log := logging.Setup(cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	report, err := ingest.ValidateDirectory(cfg.DataDir)
	if err != nil {
		log.Error().Err(err).Msg("validation failed")
		os.Exit(exitcode.ValidationError)
	}

	fmt.Println("=== revguard validate ===")
	fmt.Printf("Directory: %s\n", cfg.DataDir)
	fmt.Printf("Found:     %v\n", report.Found)
	if len(report.Missing) > 0 {
		fmt.Printf("Missing:   %v\n", report.Missing)
	}
	for _, e := range report.ColumnErrors {
		fmt.Printf("Error:     %s\n", e)
	}
	for _, w := range report.DateWarnings {
		fmt.Printf("Warning:   %s\n", w)
	}

	if !report.OK() {
		fmt.Println("Dataset validation: FAILED")
		os.Exit(exitcode.ValidationError)
	}
	fmt.Println("Dataset validation: OK")
	return nil
}
