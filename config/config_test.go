package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "books.csv", cfg.Data.BooksFile)
	assert.Equal(t, "transactions.csv", cfg.Data.TransactionsFile)
	assert.Equal(t, 14, cfg.Circulation.LoanPeriodDays)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.yaml")
	content := "data:\n" +
		"  books_file: /var/lib/library/books.csv\n" +
		"log:\n" +
		"  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/library/books.csv", cfg.Data.BooksFile)
	assert.Equal(t, "debug", cfg.Log.Level)
	// Untouched fields keep defaults.
	assert.Equal(t, "transactions.csv", cfg.Data.TransactionsFile)
	assert.Equal(t, 14, cfg.Circulation.LoanPeriodDays)
}

func TestLoadInvalidLoanPeriodFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.yaml")
	require.NoError(t, os.WriteFile(path, []byte("circulation:\n  loan_period_days: -3\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 14, cfg.Circulation.LoanPeriodDays)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n\t- not yaml"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
