// mkfixture generates a small synthetic dataset for demos and manual testing.
// The data deliberately includes duplicate refunds, repeated chargebacks, a
// refund outlier, and a noisy audit user so every detector has something to
// find.
// Usage: go run ./cmd/mkfixture --out testdata/sample --accounts 40
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gyeh/revguard/internal/dataset"
	"github.com/gyeh/revguard/internal/model"
)

var departments = []string{"Cardiology", "Oncology", "Radiology", "Emergency", "Orthopedics"}
var payerTypes = []string{"commercial", "medicare", "medicaid", "self_pay"}
var methods = []string{"card", "check", "ach", "cash"}

func main() {
	out := flag.String("out", "testdata/sample", "output directory")
	numAccounts := flag.Int("accounts", 40, "number of accounts")
	seed := flag.Int64("seed", 1, "random seed")
	writeParquet := flag.Bool("parquet", false, "also write accounts.parquet")
	flag.Parse()

	if err := os.MkdirAll(*out, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "create output dir: %v\n", err)
		os.Exit(1)
	}
	rng := rand.New(rand.NewSource(*seed))

	accounts := make([]model.Account, *numAccounts)
	for i := range accounts {
		charges := 500 + rng.Float64()*20000
		balance := charges * rng.Float64()
		accounts[i] = model.Account{
			AccountID:           fmt.Sprintf("ACC-%04d", i+1),
			PatientBalance:      round2(balance),
			TotalCharges:        round2(charges),
			InsurancePaid:       round2((charges - balance) * rng.Float64()),
			LatePayments12M:     rng.Intn(7),
			DaysPastDue:         rng.Intn(150),
			ServiceCategory:     departments[rng.Intn(len(departments))],
			PayerType:           payerTypes[rng.Intn(len(payerTypes))],
			DeductibleRemaining: round2(rng.Float64() * 800),
		}
	}

	writeCSV(*out, dataset.FileAccounts, dataset.Schemas[dataset.FileAccounts], accountRows(accounts))
	writeCSV(*out, dataset.FilePayments, dataset.Schemas[dataset.FilePayments], paymentRows(rng, accounts))
	writeCSV(*out, dataset.FileRefunds, dataset.Schemas[dataset.FileRefunds], refundRows(rng, accounts))
	writeCSV(*out, dataset.FileChargebacks, dataset.Schemas[dataset.FileChargebacks], chargebackRows(rng, accounts))
	writeCSV(*out, dataset.FileClaims, dataset.Schemas[dataset.FileClaims], claimRows(rng, accounts))
	writeCSV(*out, dataset.FileAuditLog, dataset.Schemas[dataset.FileAuditLog], auditRows(rng))

	if *writeParquet {
		path := filepath.Join(*out, dataset.AccountsParquet)
		if err := dataset.WriteAccountsParquet(path, accounts); err != nil {
			fmt.Fprintf(os.Stderr, "write parquet: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", path)
	}
	fmt.Printf("Wrote %d accounts to %s\n", len(accounts), *out)
}

func accountRows(accounts []model.Account) [][]string {
	rows := make([][]string, len(accounts))
	for i, a := range accounts {
		rows[i] = []string{
			a.AccountID,
			money(a.PatientBalance),
			money(a.TotalCharges),
			money(a.InsurancePaid),
			strconv.Itoa(a.LatePayments12M),
			strconv.Itoa(a.DaysPastDue),
			a.ServiceCategory,
			a.PayerType,
		}
	}
	return rows
}

func paymentRows(rng *rand.Rand, accounts []model.Account) [][]string {
	var rows [][]string
	txn := 0
	for _, a := range accounts {
		n := rng.Intn(3) + 1
		for i := 0; i < n; i++ {
			txn++
			rows = append(rows, []string{
				fmt.Sprintf("PAY-%05d", txn),
				a.AccountID,
				money(10 + rng.Float64()*500),
				date(rng),
				methods[rng.Intn(len(methods))],
			})
		}
	}
	return rows
}

func refundRows(rng *rand.Rand, accounts []model.Account) [][]string {
	var rows [][]string
	for i := 0; i < 6; i++ {
		a := accounts[rng.Intn(len(accounts))]
		rows = append(rows, []string{
			fmt.Sprintf("REF-%05d", i+1),
			a.AccountID,
			money(20 + rng.Float64()*150),
			date(rng),
			"billing correction",
		})
	}
	// Duplicate refunds on one account, plus one outlier amount.
	dup := accounts[0].AccountID
	rows = append(rows,
		[]string{"REF-09001", dup, "125.00", date(rng), "overpayment"},
		[]string{"REF-09002", dup, "125.00", date(rng), "overpayment"},
		[]string{"REF-09100", accounts[1].AccountID, "4800.00", date(rng), "charge reversal"},
	)
	return rows
}

func chargebackRows(rng *rand.Rand, accounts []model.Account) [][]string {
	var rows [][]string
	cb := accounts[2].AccountID
	for i := 0; i < 3; i++ {
		rows = append(rows, []string{
			fmt.Sprintf("CB-%05d", i+1),
			cb,
			money(100 + rng.Float64()*400),
			date(rng),
			"disputed charge",
		})
	}
	rows = append(rows, []string{
		"CB-09001",
		accounts[3].AccountID,
		money(100 + rng.Float64()*400),
		date(rng),
		"duplicate billing",
	})
	return rows
}

func claimRows(rng *rand.Rand, accounts []model.Account) [][]string {
	statuses := []string{"submitted", "paid", "denied", "pending"}
	var rows [][]string
	for i, a := range accounts {
		if i%3 != 0 {
			continue
		}
		rows = append(rows, []string{
			fmt.Sprintf("CLM-%05d", i+1),
			a.AccountID,
			money(200 + rng.Float64()*5000),
			statuses[rng.Intn(len(statuses))],
			date(rng),
		})
	}
	return rows
}

func auditRows(rng *rand.Rand) [][]string {
	var rows [][]string
	logID := 0
	add := func(user, action, resource string) {
		logID++
		rows = append(rows, []string{
			fmt.Sprintf("LOG-%05d", logID),
			user,
			action,
			resource,
			fmt.Sprintf("2025-06-%02dT%02d:%02d:00", rng.Intn(28)+1, rng.Intn(24), rng.Intn(60)),
		})
	}
	add("analyst1", "view", "risk_scores")
	add("analyst1", "view", "fraud_alerts")
	add("analyst2", "view", "heatmap")
	// analyst3 trips both the frequency and export heuristics.
	for i := 0; i < 5; i++ {
		add("analyst3", "view", "accounts")
	}
	add("analyst3", "export", "accounts.csv")
	add("analyst3", "export", "payments.csv")
	return rows
}

func writeCSV(dir, name string, header []string, rows [][]string) {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		fmt.Fprintf(os.Stderr, "create %s: %v\n", name, err)
		os.Exit(1)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err == nil {
		err = w.WriteAll(rows)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		fmt.Fprintf(os.Stderr, "write %s: %v\n", name, err)
		os.Exit(1)
	}
}

func money(v float64) string {
	return strconv.FormatFloat(round2(v), 'f', 2, 64)
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}

func date(rng *rand.Rand) string {
	return fmt.Sprintf("2025-%02d-%02d", rng.Intn(6)+1, rng.Intn(28)+1)
}
