package library

// NewBook builds a validated Book. Used both for new titles (where the
// catalog assigns the id) and for rows reconstructed from the books file.
func NewBook(id int, title, author, isbn string, total, available int) (Book, error) {
	if id <= 0 {
		return Book{}, validationErrorf("book id must be positive, got %d", id)
	}
	if total < 0 {
		return Book{}, validationErrorf("total copies cannot be negative, got %d", total)
	}
	if available < 0 {
		return Book{}, validationErrorf("available copies cannot be negative, got %d", available)
	}
	if available > total {
		return Book{}, validationErrorf("available copies (%d) cannot exceed total copies (%d)", available, total)
	}
	return Book{
		ID:              id,
		Title:           title,
		Author:          author,
		ISBN:            isbn,
		TotalCopies:     total,
		AvailableCopies: available,
	}, nil
}

// SetTotalCopies adjusts the owned copy count. Lowering it below the number
// of available copies would orphan checked-out copies, so that is rejected.
func (b *Book) SetTotalCopies(n int) error {
	if n < 0 {
		return validationErrorf("total copies cannot be negative, got %d", n)
	}
	if n < b.AvailableCopies {
		return validationErrorf("total copies (%d) cannot drop below available copies (%d)", n, b.AvailableCopies)
	}
	b.TotalCopies = n
	return nil
}

// SetAvailableCopies adjusts the on-shelf count within [0, TotalCopies].
func (b *Book) SetAvailableCopies(n int) error {
	if n < 0 {
		return validationErrorf("available copies cannot be negative, got %d", n)
	}
	if n > b.TotalCopies {
		return validationErrorf("available copies (%d) cannot exceed total copies (%d)", n, b.TotalCopies)
	}
	b.AvailableCopies = n
	return nil
}

// Checkout takes one copy off the shelf.
func (b *Book) Checkout() error {
	if b.AvailableCopies == 0 {
		return stateErrorf("no copies of %q available", b.Title)
	}
	b.AvailableCopies--
	return nil
}

// ReturnCopy puts one copy back on the shelf. Returning a copy when every
// copy is already shelved indicates corrupted data, so it is refused.
func (b *Book) ReturnCopy() error {
	if b.AvailableCopies == b.TotalCopies {
		return stateErrorf("all %d copies of %q are already on the shelf", b.TotalCopies, b.Title)
	}
	b.AvailableCopies++
	return nil
}

// IsAvailable reports whether at least one copy is on the shelf.
func (b *Book) IsAvailable() bool { return b.AvailableCopies > 0 }
