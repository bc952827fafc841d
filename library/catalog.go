package library

import "strings"

// DefaultLoanPeriod is the loan length in days that checkout collaborators
// use when computing due dates. The catalog never enforces it; the due date
// is always supplied by the caller.
const DefaultLoanPeriod = 14

// Catalog owns the book collection, the transaction log, and the fine
// ledger, and hands out ids. It is the single source of truth: books are
// stored by value, accessors return copies, and every mutation routes
// through a checked catalog operation so the inventory invariant cannot be
// bypassed. Construct one per process (or per test) and pass it to whatever
// needs it. Operations are synchronous and all-or-nothing: a failure leaves
// the catalog exactly as it was.
type Catalog struct {
	books        []Book
	transactions []Transaction
	fines        []Fine

	nextBookID        int
	nextTransactionID int
}

func NewCatalog() *Catalog {
	return &Catalog{nextBookID: 1, nextTransactionID: 1}
}

// findBook returns a pointer into owned storage for internal mutation.
func (c *Catalog) findBook(id int) *Book {
	for i := range c.books {
		if c.books[i].ID == id {
			return &c.books[i]
		}
	}
	return nil
}

func (c *Catalog) findTransaction(id int) *Transaction {
	for i := range c.transactions {
		if c.transactions[i].ID == id {
			return &c.transactions[i]
		}
	}
	return nil
}

// FindBookByID returns a copy of the matching book; the second result is
// false when no book has that id.
func (c *Catalog) FindBookByID(id int) (Book, bool) {
	if b := c.findBook(id); b != nil {
		return *b, true
	}
	return Book{}, false
}

// FindTransactionByID returns a copy of the matching transaction.
func (c *Catalog) FindTransactionByID(id int) (Transaction, bool) {
	if t := c.findTransaction(id); t != nil {
		return *t, true
	}
	return Transaction{}, false
}

// AddBook registers a new title and returns the assigned id. Total and
// available copies both start at copies.
func (c *Catalog) AddBook(title, author, isbn string, copies int) (int, error) {
	if copies < 0 {
		return 0, validationErrorf("copies cannot be negative, got %d", copies)
	}
	b, err := NewBook(c.nextBookID, title, author, isbn, copies, copies)
	if err != nil {
		return 0, err
	}
	c.nextBookID++
	c.books = append(c.books, b)
	return b.ID, nil
}

// RemoveBook deletes the matching book and reports whether a removal
// happened. Transactions referencing the id are left in place; their book id
// simply dangles.
func (c *Catalog) RemoveBook(id int) bool {
	for i := range c.books {
		if c.books[i].ID == id {
			c.books = append(c.books[:i], c.books[i+1:]...)
			return true
		}
	}
	return false
}

// SetBookTotalCopies adjusts a book's owned copy count through the book's
// own validation.
func (c *Catalog) SetBookTotalCopies(bookID, total int) error {
	b := c.findBook(bookID)
	if b == nil {
		return &NotFoundError{Kind: "book", ID: bookID}
	}
	return b.SetTotalCopies(total)
}

// SetBookAvailableCopies adjusts a book's on-shelf count through the book's
// own validation.
func (c *Catalog) SetBookAvailableCopies(bookID, available int) error {
	b := c.findBook(bookID)
	if b == nil {
		return &NotFoundError{Kind: "book", ID: bookID}
	}
	return b.SetAvailableCopies(available)
}

// CheckoutBook takes one copy of the book off the shelf and records an
// Active transaction for it, returning the new transaction id.
func (c *Catalog) CheckoutBook(userID, bookID int, checkoutDate, dueDate string) (int, error) {
	b := c.findBook(bookID)
	if b == nil {
		return 0, &NotFoundError{Kind: "book", ID: bookID}
	}
	// Validate the transaction fields before touching inventory so a bad
	// date cannot leave a decremented book behind.
	tx, err := NewTransaction(c.nextTransactionID, userID, bookID, checkoutDate, dueDate)
	if err != nil {
		return 0, err
	}
	if err := b.Checkout(); err != nil {
		return 0, err
	}
	c.nextTransactionID++
	c.transactions = append(c.transactions, tx)
	return tx.ID, nil
}

// ProcessReturn completes the transaction, restores the book's copy (skipped
// silently if the book was removed in the meantime), and appends the fine to
// the ledger. A zero fine is still recorded.
func (c *Catalog) ProcessReturn(transactionID int, returnDate string) (Fine, error) {
	tx := c.findTransaction(transactionID)
	if tx == nil {
		return Fine{}, &NotFoundError{Kind: "transaction", ID: transactionID}
	}
	if !tx.IsActive() {
		return Fine{}, stateErrorf("transaction %d already completed", transactionID)
	}
	b := c.findBook(tx.BookID)
	// A book already at full availability cannot absorb another return;
	// refuse before mutating anything so the transaction stays Active.
	if b != nil && b.AvailableCopies == b.TotalCopies {
		return Fine{}, stateErrorf("all copies of book %d are already on the shelf", tx.BookID)
	}
	if err := tx.CompleteReturn(returnDate); err != nil {
		return Fine{}, err
	}
	if b != nil {
		_ = b.ReturnCopy() // pre-checked above, cannot fail
	}
	fine := NewFine(float64(tx.DaysLate()) * FinePerDay)
	c.fines = append(c.fines, fine)
	return fine, nil
}

// BookQuery filters SearchBooks. Keyword matches a substring of title,
// author, or ISBN; the per-field filters narrow further. Empty criteria
// match everything.
type BookQuery struct {
	Keyword string
	Title   string
	Author  string
	ISBN    string
}

func (q BookQuery) matches(b *Book) bool {
	if q.Keyword != "" &&
		!strings.Contains(b.Title, q.Keyword) &&
		!strings.Contains(b.Author, q.Keyword) &&
		!strings.Contains(b.ISBN, q.Keyword) {
		return false
	}
	if q.Title != "" && !strings.Contains(b.Title, q.Title) {
		return false
	}
	if q.Author != "" && !strings.Contains(b.Author, q.Author) {
		return false
	}
	if q.ISBN != "" && !strings.Contains(b.ISBN, q.ISBN) {
		return false
	}
	return true
}

// SearchBooks returns copies of every book matching the query, in catalog
// storage order (insertion order; removals shift but never reorder).
func (c *Catalog) SearchBooks(q BookQuery) []Book {
	var results []Book
	for i := range c.books {
		if q.matches(&c.books[i]) {
			results = append(results, c.books[i])
		}
	}
	return results
}

// Books returns a copy of the book collection in storage order.
func (c *Catalog) Books() []Book {
	out := make([]Book, len(c.books))
	copy(out, c.books)
	return out
}

// Transactions returns a copy of the transaction log.
func (c *Catalog) Transactions() []Transaction {
	out := make([]Transaction, len(c.transactions))
	copy(out, c.transactions)
	return out
}

// Fines returns a copy of the fine ledger.
func (c *Catalog) Fines() []Fine {
	out := make([]Fine, len(c.fines))
	copy(out, c.fines)
	return out
}

// TotalFines sums the ledger.
func (c *Catalog) TotalFines() Fine {
	var total Fine
	for _, f := range c.fines {
		total = total.Add(f)
	}
	return total
}

// Summary aggregates catalog state for the librarian's report.
type Summary struct {
	TotalBooks       int
	TotalCopies      int
	AvailableCopies  int
	CheckedOutCopies int

	TotalTransactions int
	ActiveCount       int
	ReturnedCount     int
	LateCount         int
	OverdueActive     int

	TotalFines Fine
}

// Report aggregates over the book, transaction, and fine collections. asOf
// is the date used to count overdue active rentals; menus pass Today().
func (c *Catalog) Report(asOf string) Summary {
	var s Summary
	s.TotalBooks = len(c.books)
	for i := range c.books {
		s.TotalCopies += c.books[i].TotalCopies
		s.AvailableCopies += c.books[i].AvailableCopies
	}
	s.CheckedOutCopies = s.TotalCopies - s.AvailableCopies

	s.TotalTransactions = len(c.transactions)
	for i := range c.transactions {
		switch c.transactions[i].Status {
		case StatusActive:
			s.ActiveCount++
			if DaysBetween(c.transactions[i].DueDate, asOf) > 0 {
				s.OverdueActive++
			}
		case StatusReturned:
			s.ReturnedCount++
		case StatusReturnedLate:
			s.LateCount++
		}
	}
	s.TotalFines = c.TotalFines()
	return s
}
