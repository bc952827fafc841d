package library

import "log/slog"

// NewTransaction creates an Active checkout record. The due date is supplied
// by the caller; the catalog does not enforce a loan period.
func NewTransaction(id, userID, bookID int, checkoutDate, dueDate string) (Transaction, error) {
	if id <= 0 {
		return Transaction{}, validationErrorf("transaction id must be positive, got %d", id)
	}
	if userID <= 0 {
		return Transaction{}, validationErrorf("user id must be positive, got %d", userID)
	}
	if bookID <= 0 {
		return Transaction{}, validationErrorf("book id must be positive, got %d", bookID)
	}
	if checkoutDate == "" {
		return Transaction{}, validationErrorf("checkout date cannot be empty")
	}
	if dueDate == "" {
		return Transaction{}, validationErrorf("due date cannot be empty")
	}
	return Transaction{
		ID:           id,
		UserID:       userID,
		BookID:       bookID,
		CheckoutDate: checkoutDate,
		DueDate:      dueDate,
		Status:       StatusActive,
	}, nil
}

// RestoreTransaction rebuilds a transaction from persisted fields, including
// completed ones. An unrecognized status string normalizes to Active.
func RestoreTransaction(id, userID, bookID int, checkoutDate, dueDate, returnDate, status string) (Transaction, error) {
	if id <= 0 {
		return Transaction{}, validationErrorf("transaction id must be positive, got %d", id)
	}
	if userID <= 0 {
		return Transaction{}, validationErrorf("user id must be positive, got %d", userID)
	}
	if bookID <= 0 {
		return Transaction{}, validationErrorf("book id must be positive, got %d", bookID)
	}
	switch status {
	case StatusActive, StatusReturned, StatusReturnedLate:
	default:
		status = StatusActive
	}
	return Transaction{
		ID:           id,
		UserID:       userID,
		BookID:       bookID,
		CheckoutDate: checkoutDate,
		DueDate:      dueDate,
		ReturnDate:   returnDate,
		Status:       status,
	}, nil
}

// IsActive reports whether the book is still out.
func (t *Transaction) IsActive() bool { return t.Status == StatusActive }

// IsLate reports whether the book came back after its due date.
func (t *Transaction) IsLate() bool { return t.Status == StatusReturnedLate }

// DaysLate returns how many days overdue the return was. It is 0 while the
// transaction is still active, 0 for on-time or early returns, and 0 when
// either date fails to parse (logged as a warning, never fatal).
func (t *Transaction) DaysLate() int {
	if t.ReturnDate == "" {
		return 0
	}
	dueY, dueM, dueD, dueOK := parseDate(t.DueDate)
	retY, retM, retD, retOK := parseDate(t.ReturnDate)
	if !dueOK || !retOK {
		slog.Warn("could not parse transaction dates",
			"transaction", t.ID, "due", t.DueDate, "return", t.ReturnDate)
		return 0
	}
	late := dateOrdinal(retY, retM, retD) - dateOrdinal(dueY, dueM, dueD)
	if late <= 0 {
		return 0
	}
	return late
}

// CompleteReturn marks the book as returned and derives the terminal status.
// Completing an already-completed transaction fails and changes nothing.
func (t *Transaction) CompleteReturn(returnDate string) error {
	if returnDate == "" {
		return validationErrorf("return date cannot be empty")
	}
	if t.Status != StatusActive {
		return stateErrorf("transaction %d already completed", t.ID)
	}
	t.ReturnDate = returnDate
	if t.DaysLate() > 0 {
		t.Status = StatusReturnedLate
	} else {
		t.Status = StatusReturned
	}
	return nil
}
