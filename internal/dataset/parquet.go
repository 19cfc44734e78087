package dataset

import (
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/revguard/internal/model"
	"github.com/gyeh/revguard/internal/normalize"
)

// AccountsParquet is the columnar alternative to accounts.csv.
const AccountsParquet = "accounts.parquet"

const readBatchSize = 256

// ReadAccountsParquet streams account rows from a Parquet file.
func ReadAccountsParquet(path string) ([]model.Account, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open parquet file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat parquet file: %w", err)
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("open parquet: %w", err)
	}

	reader := parquet.NewGenericReader[model.Account](pf)
	defer reader.Close()

	accounts := make([]model.Account, 0, reader.NumRows())
	buf := make([]model.Account, readBatchSize)
	for {
		n, readErr := reader.Read(buf)
		for i := 0; i < n; i++ {
			a := buf[i]
			a.ServiceCategory = normalize.Department(a.ServiceCategory)
			accounts = append(accounts, a)
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("read parquet rows: %w", readErr)
		}
	}
	return accounts, nil
}

// WriteAccountsParquet writes account rows to a Parquet file.
// Used by the fixture generator and tests.
func WriteAccountsParquet(path string, accounts []model.Account) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create parquet file: %w", err)
	}

	w := parquet.NewGenericWriter[model.Account](f)
	if _, err := w.Write(accounts); err != nil {
		f.Close()
		return fmt.Errorf("write parquet rows: %w", err)
	}
	if err := w.Close(); err != nil {
		f.Close()
		return fmt.Errorf("close parquet writer: %w", err)
	}
	return f.Close()
}
