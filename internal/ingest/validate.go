package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gyeh/revguard/internal/dataset"
	"github.com/gyeh/revguard/internal/normalize"
)

// Date-bearing columns checked during validation, per file.
var dateColumns = map[string][]string{
	dataset.FilePayments:    {"payment_date"},
	dataset.FileRefunds:     {"refund_date"},
	dataset.FileChargebacks: {"chargeback_date"},
	dataset.FileClaims:      {"submitted_date"},
}

// MissingFilesError reports an upload lacking required dataset files.
type MissingFilesError struct {
	Missing []string
	Found   []string
}

func (e *MissingFilesError) Error() string {
	return fmt.Sprintf("missing required files: %s", strings.Join(e.Missing, ", "))
}

// Report summarizes dataset directory validation.
type Report struct {
	Found        []string // dataset files present, sorted
	Missing      []string // required files absent, sorted
	ColumnErrors []string // per-file missing expected columns
	DateWarnings []string // per-file unparseable date counts (non-fatal)
}

// OK reports whether the directory can be loaded.
func (r *Report) OK() bool {
	return len(r.Missing) == 0 && len(r.ColumnErrors) == 0
}

// ValidateDirectory checks the required-file set and each present file's
// header against its expected schema. Date cells that fail to parse are
// collected as warnings, not errors.
func ValidateDirectory(dir string) (*Report, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dataset dir: %w", err)
	}

	present := make(map[string]bool)
	var found []string
	for _, e := range entries {
		name := strings.ToLower(e.Name())
		if !e.IsDir() && strings.HasSuffix(name, ".csv") {
			present[name] = true
			found = append(found, name)
		}
	}
	sort.Strings(found)

	r := &Report{Found: found}
	for _, req := range dataset.RequiredFiles {
		if !present[req] {
			r.Missing = append(r.Missing, req)
		}
	}
	sort.Strings(r.Missing)

	for _, name := range found {
		expected, ok := dataset.Schemas[name]
		if !ok {
			continue
		}
		if err := checkFile(dir, name, expected, r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// checkFile verifies the header contains every expected column and counts
// unparseable date cells.
func checkFile(dir, name string, expected []string, r *Report) error {
	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	rd := csv.NewReader(f)
	rd.FieldsPerRecord = -1
	recs, err := rd.ReadAll()
	if err != nil {
		r.ColumnErrors = append(r.ColumnErrors, fmt.Sprintf("%s: malformed CSV: %v", name, err))
		return nil
	}
	if len(recs) == 0 {
		r.ColumnErrors = append(r.ColumnErrors, fmt.Sprintf("%s: empty file, no header", name))
		return nil
	}

	idx := make(map[string]int, len(recs[0]))
	for i, col := range recs[0] {
		idx[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, col := range expected {
		if _, ok := idx[col]; !ok {
			r.ColumnErrors = append(r.ColumnErrors, fmt.Sprintf("%s: missing column %q", name, col))
		}
	}

	for _, col := range dateColumns[name] {
		i, ok := idx[col]
		if !ok {
			continue
		}
		bad := 0
		for _, rec := range recs[1:] {
			if i >= len(rec) {
				continue
			}
			if cell := strings.TrimSpace(rec[i]); cell != "" && normalize.ParseDate(cell) == nil {
				bad++
			}
		}
		if bad > 0 {
			r.DateWarnings = append(r.DateWarnings,
				fmt.Sprintf("%s: %d unparseable values in %q", name, bad, col))
		}
	}
	return nil
}
