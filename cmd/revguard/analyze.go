package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/revguard/internal/anomaly"
	"github.com/gyeh/revguard/internal/dataset"
	"github.com/gyeh/revguard/internal/exitcode"
	"github.com/gyeh/revguard/internal/forecast"
	"github.com/gyeh/revguard/internal/fraud"
	"github.com/gyeh/revguard/internal/logging"
	"github.com/gyeh/revguard/internal/model"
	"github.com/gyeh/revguard/internal/risk"
)

var analyzeTop int

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "One-shot batch report over the dataset (no server)",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().IntVar(&analyzeTop, "top", 5, "Number of top-risk accounts to print")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if err := loadConfigFile(); err != nil {
		return err
	}
	log := logging.Setup(cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	snap, err := dataset.LoadDirectory(cfg.DataDir)
	if err != nil {
		log.Error().Err(err).Msg("dataset load failed")
		os.Exit(exitcode.LoadError)
	}

	scores := risk.ScoreAll(snap.Accounts)
	alerts := fraud.Detect(snap.Payments, snap.Refunds, snap.Chargebacks)
	anomalies := anomaly.Detect(snap.Accounts, snap.Refunds, snap.Chargebacks)
	fc := forecast.Forecast(snap.Accounts)

	var high, medium, low int
	for _, s := range scores {
		switch s.RiskCategory {
		case model.RiskCategoryHigh:
			high++
		case model.RiskCategoryMedium:
			medium++
		default:
			low++
		}
	}

	fmt.Println("=== revguard analyze ===")
	fmt.Printf("Dataset:     %s\n", cfg.DataDir)
	fmt.Printf("Accounts:    %d (high=%d medium=%d low=%d)\n", len(scores), high, medium, low)
	fmt.Printf("Fraud:       %d alerts\n", len(alerts))
	fmt.Printf("Departments: %d, anomaly alerts %d\n", len(anomalies.Heatmap), len(anomalies.Alerts))
	fmt.Println()

	if analyzeTop > 0 && len(scores) > 0 {
		fmt.Println("Top risk accounts:")
		for i, s := range scores {
			if i >= analyzeTop {
				break
			}
			fmt.Printf("  %-12s %6.1f  %-6s  balance $%.2f\n",
				s.AccountID, s.RiskScore, s.RiskCategory, s.PatientBalance)
		}
		fmt.Println()
	}

	if len(anomalies.SeverityRanking) > 0 {
		fmt.Println("Department severity:")
		for _, r := range anomalies.SeverityRanking {
			fmt.Printf("  %-20s %6.1f  %s\n", r.Department, r.RiskScore, r.Severity)
		}
		fmt.Println()
	}

	fmt.Println("Revenue forecast:")
	fmt.Printf("  Outstanding:        $%.2f\n", fc.TotalOutstanding)
	fmt.Printf("  Delinquency (30d):  $%.2f\n", fc.ProjectedDelinquency30D)
	fmt.Printf("  Estimated bad debt: $%.2f\n", fc.EstimatedBadDebt)
	fmt.Printf("  Revenue at risk:    $%.2f\n", fc.RevenueAtRisk)
	fmt.Printf("  Collection rate:    %.1f%%\n", fc.ExpectedCollectionRate)
	return nil
}
