package library

// Transaction lifecycle states. Status is derived from the return event,
// never set independently; unrecognized persisted values normalize to Active.
const (
	StatusActive       = "Active"
	StatusReturned     = "Returned"
	StatusReturnedLate = "Returned-Late"
)

// Role tags the kind of user calling into the catalog. Role-specific behavior
// lives in the menus, not in the catalog itself.
type Role string

const (
	RoleAdmin     Role = "Admin"
	RoleLibrarian Role = "Librarian"
	RoleMember    Role = "Member"
	RoleNonMember Role = "NonMember"
)

// Book represents a title in the library's inventory. AvailableCopies is
// always between 0 and TotalCopies; mutate it only through the checked
// operations on Book or Catalog.
type Book struct {
	ID              int    `json:"id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	ISBN            string `json:"isbn"`
	TotalCopies     int    `json:"total_copies"`
	AvailableCopies int    `json:"available_copies"`
}

// Transaction is a rental record: who checked out which book and when.
// ReturnDate stays empty while the transaction is Active.
type Transaction struct {
	ID           int    `json:"id"`
	UserID       int    `json:"user_id"`
	BookID       int    `json:"book_id"`
	CheckoutDate string `json:"checkout_date"`
	DueDate      string `json:"due_date"`
	ReturnDate   string `json:"return_date,omitempty"`
	Status       string `json:"status"`
}

// User is a library identity. It carries no invariants of its own; only the
// role tag matters to the rest of the system.
type User struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           Role   `json:"role"`
	MembershipDate string `json:"membership_date"`
}
