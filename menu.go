package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"library-management/library"
)

// runInteractive drives the role-based menu loops. Data is loaded once at
// startup and saved when the user exits (or when stdin closes).
func runInteractive() error {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	// Demonstration identities, one per role. Identity management carries no
	// invariants; only the role tag matters.
	admin := library.User{ID: 1, Name: "Alice Admin", Email: "alice@lib.org", Role: library.RoleAdmin, MembershipDate: "2023-01-01"}
	librarian := library.User{ID: 2, Name: "Bob Librarian", Email: "bob@lib.org", Role: library.RoleLibrarian, MembershipDate: "2023-02-01"}
	member := library.User{ID: 3, Name: "Carol Member", Email: "carol@lib.org", Role: library.RoleMember, MembershipDate: "2023-03-01"}
	guest := library.User{ID: 4, Name: "Dave Guest", Email: "dave@guest.org", Role: library.RoleNonMember, MembershipDate: "2023-04-01"}

	if len(catalog.Books()) == 0 {
		seedDemoBooks(catalog)
	}

	sc := bufio.NewScanner(os.Stdin)
	fmt.Println("Welcome to the Library Management System!")
	for {
		fmt.Println("\n=== Library System ===")
		fmt.Println("1) Admin")
		fmt.Println("2) Librarian")
		fmt.Println("3) Member")
		fmt.Println("4) NonMember")
		fmt.Println("5) Exit")
		choice, ok := promptInt(sc, "Choose: ")
		if !ok {
			// stdin closed; persist what we have.
			return store.Save(catalog)
		}
		switch choice {
		case 1:
			adminMenu(sc, catalog, admin)
		case 2:
			librarianMenu(sc, catalog, librarian)
		case 3:
			memberMenu(sc, catalog, member)
		case 4:
			nonMemberMenu(sc, catalog, guest)
		case 5:
			if err := store.Save(catalog); err != nil {
				return err
			}
			fmt.Println("Goodbye")
			return nil
		default:
			fmt.Println("Invalid option")
		}
	}
}

func seedDemoBooks(catalog *library.Catalog) {
	seeds := []struct {
		title, author, isbn string
		copies              int
	}{
		{"The C++ Programming Language", "Bjarne Stroustrup", "9780321563842", 3},
		{"Clean Code", "Robert C. Martin", "9780132350884", 2},
		{"Design Patterns", "Gamma et al.", "9780201633610", 1},
	}
	for _, s := range seeds {
		if _, err := catalog.AddBook(s.title, s.author, s.isbn, s.copies); err != nil {
			fmt.Printf("Error seeding %q: %v\n", s.title, err)
		}
	}
	fmt.Println("Seeded demo catalog.")
}

// ------------------ Admin ------------------

func adminMenu(sc *bufio.Scanner, catalog *library.Catalog, user library.User) {
	for {
		fmt.Printf("\n=== Admin Menu (%s) ===\n", user.Name)
		fmt.Println("1) Add Book")
		fmt.Println("2) Remove Book")
		fmt.Println("3) Manage Inventory")
		fmt.Println("4) Exit")
		choice, ok := promptInt(sc, "Choose: ")
		if !ok {
			return
		}
		switch choice {
		case 1:
			title := promptLine(sc, "Title: ")
			author := promptLine(sc, "Author: ")
			isbn := promptLine(sc, "ISBN: ")
			copies, ok := promptInt(sc, "Copies: ")
			if !ok {
				return
			}
			id, err := catalog.AddBook(title, author, isbn, copies)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			fmt.Printf("Added book %d: %s\n", id, title)
		case 2:
			id, ok := promptInt(sc, "Book ID: ")
			if !ok {
				return
			}
			if catalog.RemoveBook(id) {
				fmt.Printf("Removed book %d\n", id)
			} else {
				fmt.Printf("Book %d not found\n", id)
			}
		case 3:
			manageInventory(sc, catalog)
		case 4:
			return
		default:
			fmt.Println("Invalid option")
		}
	}
}

func manageInventory(sc *bufio.Scanner, catalog *library.Catalog) {
	id, ok := promptInt(sc, "Book ID: ")
	if !ok {
		return
	}
	b, found := catalog.FindBookByID(id)
	if !found {
		fmt.Printf("Book %d not found\n", id)
		return
	}
	fmt.Printf("%s: total %d, available %d\n", b.Title, b.TotalCopies, b.AvailableCopies)
	total, ok := promptInt(sc, "New total copies: ")
	if !ok {
		return
	}
	if err := catalog.SetBookTotalCopies(id, total); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	available, ok := promptInt(sc, "New available copies: ")
	if !ok {
		return
	}
	if err := catalog.SetBookAvailableCopies(id, available); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println("Inventory updated.")
}

// ------------------ Librarian ------------------

func librarianMenu(sc *bufio.Scanner, catalog *library.Catalog, user library.User) {
	for {
		fmt.Printf("\n=== Librarian Menu (%s) ===\n", user.Name)
		fmt.Println("1) Process Checkout")
		fmt.Println("2) Process Return")
		fmt.Println("3) View All Transactions")
		fmt.Println("4) Generate Report")
		fmt.Println("5) Exit")
		choice, ok := promptInt(sc, "Choose: ")
		if !ok {
			return
		}
		switch choice {
		case 1:
			userID, ok := promptInt(sc, "User ID: ")
			if !ok {
				return
			}
			bookID, ok := promptInt(sc, "Book ID: ")
			if !ok {
				return
			}
			today := library.Today()
			due, err := library.AddDays(today, cfg.Circulation.LoanPeriodDays)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			txID, err := catalog.CheckoutBook(userID, bookID, today, due)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			fmt.Printf("Transaction %d created, due %s\n", txID, due)
		case 2:
			txID, ok := promptInt(sc, "Transaction ID: ")
			if !ok {
				return
			}
			fine, err := catalog.ProcessReturn(txID, library.Today())
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			tx, _ := catalog.FindTransactionByID(txID)
			fmt.Printf("Days Late: %d\n", tx.DaysLate())
			fmt.Printf("Late Fee: $%s\n", fine)
			fmt.Printf("Status: %s\n", tx.Status)
		case 3:
			printTransactions(catalog.Transactions())
		case 4:
			printReport(catalog.Report(library.Today()))
		case 5:
			return
		default:
			fmt.Println("Invalid option")
		}
	}
}

// ------------------ Member / NonMember ------------------

func memberMenu(sc *bufio.Scanner, catalog *library.Catalog, user library.User) {
	for {
		fmt.Printf("\n=== Member Menu (%s) ===\n", user.Name)
		fmt.Println("1) Search Books")
		fmt.Println("2) View Inventory")
		fmt.Println("3) Exit")
		choice, ok := promptInt(sc, "Choose: ")
		if !ok {
			return
		}
		switch choice {
		case 1:
			searchBooks(sc, catalog)
		case 2:
			printBooks(catalog.Books())
		case 3:
			return
		default:
			fmt.Println("Invalid option")
		}
	}
}

func nonMemberMenu(sc *bufio.Scanner, catalog *library.Catalog, user library.User) {
	for {
		fmt.Printf("\n=== NonMember Menu ($3 per rental, %s) ===\n", user.Name)
		fmt.Println("1) Search Books")
		fmt.Println("2) View Inventory")
		fmt.Println("3) Rent a Book (charge $3)")
		fmt.Println("4) Exit")
		choice, ok := promptInt(sc, "Choose: ")
		if !ok {
			return
		}
		switch choice {
		case 1:
			searchBooks(sc, catalog)
		case 2:
			printBooks(catalog.Books())
		case 3:
			bookID, ok := promptInt(sc, "Book ID: ")
			if !ok {
				return
			}
			checkout := promptLine(sc, "Checkout date (YYYY-MM-DD): ")
			due := promptLine(sc, "Due date (YYYY-MM-DD): ")
			// Non-member surcharge is a menu-level concern, not a catalog one.
			fmt.Println("Charging $3.00 (simulated)")
			txID, err := catalog.CheckoutBook(user.ID, bookID, checkout, due)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			fmt.Printf("Transaction created: %d\n", txID)
		case 4:
			return
		default:
			fmt.Println("Invalid option")
		}
	}
}

func searchBooks(sc *bufio.Scanner, catalog *library.Catalog) {
	keyword := promptLine(sc, "Enter keyword (title/author/ISBN): ")
	results := catalog.SearchBooks(library.BookQuery{Keyword: keyword})
	if len(results) == 0 {
		fmt.Println("No matches found.")
		return
	}
	for _, b := range results {
		fmt.Printf("%d: %s | %s | avail: %d\n", b.ID, b.Title, b.Author, b.AvailableCopies)
	}
}

// ------------------ Input helpers ------------------

func promptLine(sc *bufio.Scanner, prompt string) string {
	fmt.Print(prompt)
	if !sc.Scan() {
		return ""
	}
	return strings.TrimSpace(sc.Text())
}

// promptInt re-prompts on non-numeric input; ok is false when stdin closes.
func promptInt(sc *bufio.Scanner, prompt string) (int, bool) {
	for {
		fmt.Print(prompt)
		if !sc.Scan() {
			return 0, false
		}
		n, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
		if err != nil {
			fmt.Println("Please enter a number.")
			continue
		}
		return n, true
	}
}
