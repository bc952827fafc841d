package library

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Flat-file layouts, matching the files the system has always produced:
// one record per line, comma-delimited, newline-terminated, no header row,
// no quoting. A field containing a comma corrupts its row; known limitation.
//
//	books:        id,title,author,isbn,totalCopies,availableCopies
//	transactions: id,userId,bookId,checkoutDate,dueDate,returnDate,status
//
// returnDate is an empty field while the transaction is Active.

func bookCSV(b *Book) string {
	return fmt.Sprintf("%d,%s,%s,%s,%d,%d",
		b.ID, b.Title, b.Author, b.ISBN, b.TotalCopies, b.AvailableCopies)
}

func transactionCSV(t *Transaction) string {
	return fmt.Sprintf("%d,%d,%d,%s,%s,%s,%s",
		t.ID, t.UserID, t.BookID, t.CheckoutDate, t.DueDate, t.ReturnDate, t.Status)
}

// LoadCSV populates the catalog from the two data files and advances the id
// counters past the largest id seen. A missing file skips that collection
// silently; a malformed or invalid row is skipped with a warning. Rows are
// appended to whatever the catalog already holds, without deduplication.
func (c *Catalog) LoadCSV(booksPath, transPath string) error {
	if err := c.loadBooks(booksPath); err != nil {
		return err
	}
	return c.loadTransactions(transPath)
}

func (c *Catalog) loadBooks(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(err, "open books file")
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) < 6 {
			slog.Warn("skipping malformed book row", "line", line)
			continue
		}
		id, idErr := strconv.Atoi(parts[0])
		total, totalErr := strconv.Atoi(parts[4])
		avail, availErr := strconv.Atoi(parts[5])
		if idErr != nil || totalErr != nil || availErr != nil {
			slog.Warn("skipping malformed book row", "line", line)
			continue
		}
		b, err := NewBook(id, parts[1], parts[2], parts[3], total, avail)
		if err != nil {
			slog.Warn("skipping invalid book row", "line", line, "error", err)
			continue
		}
		c.books = append(c.books, b)
		if id >= c.nextBookID {
			c.nextBookID = id + 1
		}
	}
	return errors.Wrap(sc.Err(), "read books file")
}

func (c *Catalog) loadTransactions(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(err, "open transactions file")
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) < 7 {
			slog.Warn("skipping malformed transaction row", "line", line)
			continue
		}
		id, idErr := strconv.Atoi(parts[0])
		userID, userErr := strconv.Atoi(parts[1])
		bookID, bookErr := strconv.Atoi(parts[2])
		if idErr != nil || userErr != nil || bookErr != nil {
			slog.Warn("skipping malformed transaction row", "line", line)
			continue
		}
		t, err := RestoreTransaction(id, userID, bookID, parts[3], parts[4], parts[5], parts[6])
		if err != nil {
			slog.Warn("skipping invalid transaction row", "line", line, "error", err)
			continue
		}
		c.transactions = append(c.transactions, t)
		if id >= c.nextTransactionID {
			c.nextTransactionID = id + 1
		}
	}
	return errors.Wrap(sc.Err(), "read transactions file")
}

// SaveCSV overwrites both data files with the catalog's current contents.
func (c *Catalog) SaveCSV(booksPath, transPath string) error {
	var sb strings.Builder
	for i := range c.books {
		sb.WriteString(bookCSV(&c.books[i]))
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(booksPath, []byte(sb.String()), 0o644); err != nil {
		return errors.Wrap(err, "write books file")
	}

	sb.Reset()
	for i := range c.transactions {
		sb.WriteString(transactionCSV(&c.transactions[i]))
		sb.WriteByte('\n')
	}
	return errors.Wrap(os.WriteFile(transPath, []byte(sb.String()), 0o644), "write transactions file")
}

// FileStore owns the data file locations and logs load/save outcomes,
// keeping path handling out of the menus and subcommands.
type FileStore struct {
	BooksPath        string
	TransactionsPath string
}

func NewFileStore(booksPath, transPath string) *FileStore {
	return &FileStore{BooksPath: booksPath, TransactionsPath: transPath}
}

func (s *FileStore) Load(c *Catalog) error {
	if err := c.LoadCSV(s.BooksPath, s.TransactionsPath); err != nil {
		return err
	}
	slog.Info("catalog loaded", "books", len(c.books), "transactions", len(c.transactions))
	return nil
}

func (s *FileStore) Save(c *Catalog) error {
	if err := c.SaveCSV(s.BooksPath, s.TransactionsPath); err != nil {
		return err
	}
	slog.Info("catalog saved", "books", len(c.books), "transactions", len(c.transactions))
	return nil
}
