package dataset

import (
	"time"

	"github.com/google/uuid"

	"github.com/gyeh/revguard/internal/model"
)

// Snapshot is one immutable load of the full dataset. Engines read whole
// snapshots; a reload produces a new Snapshot and swaps the pointer, so a
// request never observes a partially-replaced dataset.
type Snapshot struct {
	ID           uuid.UUID
	SourceSHA256 string // digest of the uploaded archive, "" for directory loads
	LoadedAt     time.Time

	Accounts    []model.Account
	Payments    []model.Payment
	Refunds     []model.Refund
	Chargebacks []model.Chargeback
	Claims      []model.Claim
	AuditLog    []model.AuditEntry
}

// Empty returns a snapshot with all tables empty. Analytic engines produce
// degenerate (not erroring) output over it.
func Empty() *Snapshot {
	return &Snapshot{ID: uuid.New(), LoadedAt: time.Now()}
}

// AccountByID finds an account row by its key.
func (s *Snapshot) AccountByID(id string) (model.Account, bool) {
	for _, a := range s.Accounts {
		if a.AccountID == id {
			return a, true
		}
	}
	return model.Account{}, false
}

// PaymentsByAccount returns all payments referencing the account, in load order.
func (s *Snapshot) PaymentsByAccount(id string) []model.Payment {
	var out []model.Payment
	for _, p := range s.Payments {
		if p.AccountID == id {
			out = append(out, p)
		}
	}
	return out
}

// FileInfo describes one loaded table for the file listing endpoint.
type FileInfo struct {
	Name    string `json:"name"`
	Rows    int    `json:"rows"`
	Columns int    `json:"columns"`
}

// Files lists the non-empty tables with their row and column counts.
func (s *Snapshot) Files() []FileInfo {
	var out []FileInfo
	for _, name := range TableNames {
		if n := s.tableLen(name); n > 0 {
			out = append(out, FileInfo{Name: name, Rows: n, Columns: len(Schemas[name])})
		}
	}
	return out
}

func (s *Snapshot) tableLen(name string) int {
	switch name {
	case FileAccounts:
		return len(s.Accounts)
	case FilePayments:
		return len(s.Payments)
	case FileRefunds:
		return len(s.Refunds)
	case FileChargebacks:
		return len(s.Chargebacks)
	case FileClaims:
		return len(s.Claims)
	case FileAuditLog:
		return len(s.AuditLog)
	}
	return 0
}

// Table returns the rows of a named table as a JSON-marshalable slice,
// or ok=false when the name is unknown or the table is empty.
func (s *Snapshot) Table(name string) (rows any, n int, ok bool) {
	n = s.tableLen(name)
	if n == 0 {
		return nil, 0, false
	}
	switch name {
	case FileAccounts:
		rows = s.Accounts
	case FilePayments:
		rows = s.Payments
	case FileRefunds:
		rows = s.Refunds
	case FileChargebacks:
		rows = s.Chargebacks
	case FileClaims:
		rows = s.Claims
	case FileAuditLog:
		rows = s.AuditLog
	}
	return rows, n, true
}
