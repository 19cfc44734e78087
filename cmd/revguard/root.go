package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/revguard/internal/config"
	"github.com/gyeh/revguard/internal/exitcode"
)

var (
	cfg     config.Config
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "revguard",
	Short: "Hospital revenue & payment risk analytics",
	Long:  "Computes delinquency risk scores, fraud alerts, department anomalies, revenue forecasts, and payment-plan recommendations over an in-memory patient-account dataset.",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.DataDir, "data-dir", os.Getenv("REVGUARD_DATA_DIR"), "Directory holding the CSV dataset (or set REVGUARD_DATA_DIR)")
	pf.StringVar(&cfg.LogFormat, "log-format", "", "Log format: text or json")
	pf.StringVar(&cfgFile, "config", "", "Optional YAML config file")
}

// loadConfigFile merges the optional YAML file under flag values.
func loadConfigFile() error {
	if cfgFile == "" {
		return nil
	}
	return cfg.LoadFromFile(cfgFile)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitcode.UsageError)
	}
}
