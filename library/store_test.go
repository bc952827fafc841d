package library

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempPaths(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	return filepath.Join(dir, "books.csv"), filepath.Join(dir, "transactions.csv")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	booksPath, transPath := tempPaths(t)

	c := NewCatalog()
	b1, err := c.AddBook("Clean Code", "Robert C. Martin", "9780132350884", 2)
	require.NoError(t, err)
	b2, err := c.AddBook("Design Patterns", "Gamma et al.", "9780201633610", 1)
	require.NoError(t, err)

	tx1, err := c.CheckoutBook(7, b1, "2024-01-01", "2024-01-15")
	require.NoError(t, err)
	tx2, err := c.CheckoutBook(8, b2, "2024-01-02", "2024-01-16")
	require.NoError(t, err)
	_, err = c.ProcessReturn(tx1, "2024-01-20")
	require.NoError(t, err)

	require.NoError(t, c.SaveCSV(booksPath, transPath))

	loaded := NewCatalog()
	require.NoError(t, loaded.LoadCSV(booksPath, transPath))

	assert.Equal(t, c.Books(), loaded.Books())
	assert.Equal(t, c.Transactions(), loaded.Transactions())

	// Counters advanced past the max ids seen.
	id, err := loaded.AddBook("New Book", "Someone", "", 1)
	require.NoError(t, err)
	assert.Equal(t, 3, id)
	txID, err := loaded.CheckoutBook(9, b1, "2024-02-01", "2024-02-15")
	require.NoError(t, err)
	assert.Equal(t, tx2+1, txID)
}

func TestActiveTransactionPersistsEmptyReturnDate(t *testing.T) {
	booksPath, transPath := tempPaths(t)

	c := NewCatalog()
	b1, _ := c.AddBook("Clean Code", "Robert C. Martin", "", 1)
	c.CheckoutBook(7, b1, "2024-01-01", "2024-01-15")
	require.NoError(t, c.SaveCSV(booksPath, transPath))

	data, err := os.ReadFile(transPath)
	require.NoError(t, err)
	assert.Equal(t, "1,7,1,2024-01-01,2024-01-15,,Active\n", string(data))

	loaded := NewCatalog()
	require.NoError(t, loaded.LoadCSV(booksPath, transPath))
	tx, found := loaded.FindTransactionByID(1)
	require.True(t, found)
	assert.True(t, tx.IsActive())
	assert.Empty(t, tx.ReturnDate)
}

func TestBookCSVLayout(t *testing.T) {
	booksPath, transPath := tempPaths(t)

	c := NewCatalog()
	c.AddBook("Clean Code", "Robert C. Martin", "9780132350884", 2)
	require.NoError(t, c.SaveCSV(booksPath, transPath))

	data, err := os.ReadFile(booksPath)
	require.NoError(t, err)
	assert.Equal(t, "1,Clean Code,Robert C. Martin,9780132350884,2,2\n", string(data))
}

func TestLoadMissingFilesIsSilent(t *testing.T) {
	booksPath, transPath := tempPaths(t)

	c := NewCatalog()
	require.NoError(t, c.LoadCSV(booksPath, transPath))
	assert.Empty(t, c.Books())
	assert.Empty(t, c.Transactions())

	// Only the transactions file missing: books still load.
	require.NoError(t, os.WriteFile(booksPath, []byte("5,Title,Author,isbn,3,2\n"), 0o644))
	require.NoError(t, c.LoadCSV(booksPath, transPath))
	require.Len(t, c.Books(), 1)
	assert.Equal(t, 5, c.Books()[0].ID)
}

func TestLoadSkipsMalformedRows(t *testing.T) {
	booksPath, transPath := tempPaths(t)

	books := "1,Good Book,Author,isbn,2,2\n" +
		"not-a-number,Bad Book,Author,isbn,2,2\n" +
		"too,few\n" +
		"\n" +
		"3,Another Good,Author,isbn,1,1\n"
	require.NoError(t, os.WriteFile(booksPath, []byte(books), 0o644))

	trans := "1,7,1,2024-01-01,2024-01-15,,Active\n" +
		"bad,7,1,2024-01-01,2024-01-15,,Active\n" +
		"2,0,1,2024-01-01,2024-01-15,,Active\n" + // invalid user id
		"3,8,3,2024-01-02,2024-01-16,2024-01-20,Returned-Late\n"
	require.NoError(t, os.WriteFile(transPath, []byte(trans), 0o644))

	c := NewCatalog()
	require.NoError(t, c.LoadCSV(booksPath, transPath))
	assert.Len(t, c.Books(), 2)
	assert.Len(t, c.Transactions(), 2)
}

func TestLoadNormalizesUnknownStatus(t *testing.T) {
	booksPath, transPath := tempPaths(t)
	require.NoError(t, os.WriteFile(transPath, []byte("1,7,1,2024-01-01,2024-01-15,,Pending\n"), 0o644))

	c := NewCatalog()
	require.NoError(t, c.LoadCSV(booksPath, transPath))
	tx, found := c.FindTransactionByID(1)
	require.True(t, found)
	assert.Equal(t, StatusActive, tx.Status)
}

func TestLoadDoesNotDeduplicate(t *testing.T) {
	booksPath, transPath := tempPaths(t)
	rows := "7,Dup,Author,isbn,1,1\n7,Dup,Author,isbn,1,1\n"
	require.NoError(t, os.WriteFile(booksPath, []byte(rows), 0o644))

	c := NewCatalog()
	require.NoError(t, c.LoadCSV(booksPath, transPath))
	assert.Len(t, c.Books(), 2)

	// Counter still lands past the max id.
	id, err := c.AddBook("Next", "Author", "", 1)
	require.NoError(t, err)
	assert.Equal(t, 8, id)
}

func TestSaveOverwritesPriorContent(t *testing.T) {
	booksPath, transPath := tempPaths(t)

	c := NewCatalog()
	b1, _ := c.AddBook("Clean Code", "Robert C. Martin", "", 2)
	c.AddBook("Design Patterns", "Gamma et al.", "", 1)
	require.NoError(t, c.SaveCSV(booksPath, transPath))

	require.True(t, c.RemoveBook(b1))
	require.NoError(t, c.SaveCSV(booksPath, transPath))

	loaded := NewCatalog()
	require.NoError(t, loaded.LoadCSV(booksPath, transPath))
	require.Len(t, loaded.Books(), 1)
	assert.Equal(t, "Design Patterns", loaded.Books()[0].Title)
}

func TestFileStore(t *testing.T) {
	booksPath, transPath := tempPaths(t)
	store := NewFileStore(booksPath, transPath)

	c := NewCatalog()
	c.AddBook("Clean Code", "Robert C. Martin", "", 2)
	require.NoError(t, store.Save(c))

	loaded := NewCatalog()
	require.NoError(t, store.Load(loaded))
	assert.Equal(t, c.Books(), loaded.Books())
}
