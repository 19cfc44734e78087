package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gyeh/revguard/internal/model"
	"github.com/gyeh/revguard/internal/normalize"
)

// LoadDirectory builds a Snapshot from the CSV files in dir. Absent tables
// load as empty; a malformed present file is an error. Accounts prefer the
// columnar accounts.parquet over accounts.csv when both exist.
func LoadDirectory(dir string) (*Snapshot, error) {
	s := &Snapshot{ID: uuid.New(), LoadedAt: time.Now()}

	pq := filepath.Join(dir, AccountsParquet)
	if _, err := os.Stat(pq); err == nil {
		accounts, err := ReadAccountsParquet(pq)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", AccountsParquet, err)
		}
		s.Accounts = accounts
	} else if rows, err := readTable(dir, FileAccounts); err != nil {
		return nil, err
	} else {
		for _, r := range rows {
			s.Accounts = append(s.Accounts, accountFromRow(r))
		}
	}

	rows, err := readTable(dir, FilePayments)
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		s.Payments = append(s.Payments, model.Payment{
			TransactionID: r.get("transaction_id"),
			AccountID:     r.get("account_id"),
			Amount:        normalize.ParseMoney(r.get("amount")),
			PaymentDate:   r.get("payment_date"),
			Method:        r.get("payment_method"),
		})
	}

	rows, err = readTable(dir, FileRefunds)
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		s.Refunds = append(s.Refunds, model.Refund{
			TransactionID: r.get("transaction_id"),
			AccountID:     r.get("account_id"),
			Amount:        normalize.ParseMoney(r.get("refund_amount")),
			RefundDate:    r.get("refund_date"),
			Reason:        r.get("reason"),
		})
	}

	rows, err = readTable(dir, FileChargebacks)
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		s.Chargebacks = append(s.Chargebacks, model.Chargeback{
			TransactionID:  r.get("transaction_id"),
			AccountID:      r.get("account_id"),
			Amount:         normalize.ParseMoney(r.get("amount")),
			ChargebackDate: r.get("chargeback_date"),
			Reason:         r.get("reason"),
		})
	}

	rows, err = readTable(dir, FileClaims)
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		s.Claims = append(s.Claims, model.Claim{
			ClaimID:       r.get("claim_id"),
			AccountID:     r.get("account_id"),
			ClaimAmount:   normalize.ParseMoney(r.get("claim_amount")),
			Status:        r.get("status"),
			SubmittedDate: r.get("submitted_date"),
		})
	}

	rows, err = readTable(dir, FileAuditLog)
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		s.AuditLog = append(s.AuditLog, model.AuditEntry{
			LogID:     r.get("log_id"),
			UserID:    r.get("user_id"),
			Action:    r.get("action"),
			Resource:  r.get("resource"),
			Timestamp: r.get("timestamp"),
		})
	}

	return s, nil
}

func accountFromRow(r row) model.Account {
	return model.Account{
		AccountID:           r.get("account_id"),
		PatientBalance:      normalize.ParseMoney(r.get("patient_balance")),
		TotalCharges:        normalize.ParseMoney(r.get("total_charges")),
		InsurancePaid:       normalize.ParseMoney(r.get("insurance_paid")),
		LatePayments12M:     normalize.ParseInt(r.get("historical_late_payments_12m")),
		DaysPastDue:         normalize.ParseInt(r.get("days_past_due")),
		ServiceCategory:     normalize.Department(r.get("service_category")),
		PayerType:           r.get("payer_type"),
		DeductibleRemaining: normalize.ParseMoney(r.get("deductible_remaining_est")),
	}
}

// row is one CSV record with lookup by header name.
// Missing columns read as "" so optional fields default rather than fail.
type row struct {
	idx map[string]int
	rec []string
}

func (r row) get(col string) string {
	i, ok := r.idx[col]
	if !ok || i >= len(r.rec) {
		return ""
	}
	return r.rec[i]
}

// readTable reads dir/name into header-indexed rows.
// A missing file is not an error; it yields zero rows.
func readTable(dir, name string) ([]row, error) {
	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	rd := csv.NewReader(f)
	rd.FieldsPerRecord = -1
	recs, err := rd.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if len(recs) == 0 {
		return nil, nil
	}

	idx := make(map[string]int, len(recs[0]))
	for i, col := range recs[0] {
		idx[strings.ToLower(strings.TrimSpace(col))] = i
	}

	rows := make([]row, 0, len(recs)-1)
	for _, rec := range recs[1:] {
		rows = append(rows, row{idx: idx, rec: rec})
	}
	return rows, nil
}
