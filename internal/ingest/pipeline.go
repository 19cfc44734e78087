// Package ingest replaces the live dataset from an upload: save, extract,
// validate, load, swap. The swap is atomic; a failed phase leaves the
// current snapshot untouched.
package ingest

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/gyeh/revguard/internal/dataset"
	"github.com/gyeh/revguard/internal/normalize"
)

// File is one uploaded file, already read into memory.
type File struct {
	Name string
	Data []byte
}

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Result captures metrics from a single upload run.
type Result struct {
	SourceSHA256  string
	FilesFound    []string
	DateWarnings  []string
	AlreadyLoaded bool
	Accounts      int
	Transactions  int
	Duration      time.Duration
}

// Run executes the upload pipeline against the store. Re-submitting an
// upload whose digest matches the current snapshot is skipped unless force
// is set.
func Run(log zerolog.Logger, store *dataset.Store, files []File, force bool) (*Result, error) {
	start := time.Now()

	tmpDir, err := os.MkdirTemp("", "revguard-upload-*")
	if err != nil {
		return nil, &PipelineError{Phase: "save", Err: err}
	}
	defer os.RemoveAll(tmpDir)

	sha, err := saveAndExtract(tmpDir, files)
	if err != nil {
		return nil, err
	}

	if cur := store.Current(); !force && cur.SourceSHA256 != "" && cur.SourceSHA256 == sha {
		log.Info().Str("sha256", sha).Msg("upload already loaded, skipping (use force to re-load)")
		return &Result{
			SourceSHA256:  sha,
			AlreadyLoaded: true,
			Accounts:      len(cur.Accounts),
			Duration:      time.Since(start),
		}, nil
	}

	csvDir := FindCSVDir(tmpDir)
	report, err := ValidateDirectory(csvDir)
	if err != nil {
		return nil, &PipelineError{Phase: "validate", Err: err}
	}
	if len(report.Missing) > 0 {
		return nil, &PipelineError{Phase: "validate", Err: &MissingFilesError{
			Missing: report.Missing,
			Found:   report.Found,
		}}
	}
	if len(report.ColumnErrors) > 0 {
		return nil, &PipelineError{Phase: "validate", Err: fmt.Errorf(
			"schema errors: %s", strings.Join(report.ColumnErrors, "; "))}
	}
	for _, w := range report.DateWarnings {
		log.Warn().Str("warning", w).Msg("date validation")
	}

	snap, err := dataset.LoadDirectory(csvDir)
	if err != nil {
		return nil, &PipelineError{Phase: "load", Err: err}
	}
	snap.SourceSHA256 = sha
	store.Swap(snap)

	res := &Result{
		SourceSHA256: sha,
		FilesFound:   report.Found,
		DateWarnings: report.DateWarnings,
		Accounts:     len(snap.Accounts),
		Transactions: len(snap.Payments) + len(snap.Refunds) + len(snap.Chargebacks),
		Duration:     time.Since(start),
	}
	log.Info().
		Str("sha256", sha).
		Str("snapshot_id", snap.ID.String()).
		Int("accounts", res.Accounts).
		Int("transactions", res.Transactions).
		Dur("duration", res.Duration).
		Msg("dataset reloaded from upload")
	return res, nil
}

// saveAndExtract writes uploads into dir, unpacks any zip archives, and
// returns the combined digest of the raw uploads.
func saveAndExtract(dir string, files []File) (string, error) {
	hashes := make([]string, 0, len(files))
	for _, f := range files {
		base := filepath.Base(f.Name)
		if base == "." || base == "" {
			continue
		}
		saved := filepath.Join(dir, base)
		if err := os.WriteFile(saved, f.Data, 0o644); err != nil {
			return "", &PipelineError{Phase: "save", Err: fmt.Errorf("write %s: %w", base, err)}
		}

		sha, err := normalize.FileHash(saved)
		if err != nil {
			return "", &PipelineError{Phase: "save", Err: err}
		}
		hashes = append(hashes, base+":"+sha)

		if strings.HasSuffix(strings.ToLower(base), ".zip") {
			if err := ExtractZip(saved, dir); err != nil {
				return "", &PipelineError{Phase: "extract", Err: err}
			}
			if err := os.Remove(saved); err != nil {
				return "", &PipelineError{Phase: "extract", Err: err}
			}
		}
	}

	// Digest is order-independent: same files, same upload.
	sort.Strings(hashes)
	h := sha256.New()
	for _, v := range hashes {
		h.Write([]byte(v))
		h.Write([]byte{0})
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}
