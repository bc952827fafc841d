package main

import (
	"fmt"
	"os"
	"strconv"

	"library-management/config"
	"library-management/library"
	"library-management/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfgPath string
	cfg     *config.Config
	store   *library.FileStore
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "library",
		Short: "Console library management system",
		Long: "Manages a library's books, checkouts, returns, and late fines,\n" +
			"persisted to flat CSV files. Run without a subcommand for the\n" +
			"interactive role-based menus.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// .env is optional; real settings live in the YAML config.
			_ = godotenv.Load()
			if cfgPath == "" {
				cfgPath = os.Getenv("LIBRARY_CONFIG")
			}
			if cfgPath == "" {
				cfgPath = "library.yaml"
			}
			var err error
			cfg, err = config.Load(cfgPath)
			if err != nil {
				return err
			}
			logger.Initialize(cfg.Log.Level, cfg.Log.Format)
			store = library.NewFileStore(cfg.Data.BooksFile, cfg.Data.TransactionsFile)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive()
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default library.yaml)")

	root.AddCommand(addBookCmd(), removeBookCmd(), checkoutCmd(), returnCmd(),
		searchCmd(), listCmd(), transactionsCmd(), reportCmd())
	return root
}

// loadCatalog builds a fresh catalog from the data files.
func loadCatalog() (*library.Catalog, error) {
	catalog := library.NewCatalog()
	if err := store.Load(catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}

func addBookCmd() *cobra.Command {
	var title, author, isbn string
	var copies int
	cmd := &cobra.Command{
		Use:   "add-book",
		Short: "Add a book to the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog()
			if err != nil {
				return err
			}
			id, err := catalog.AddBook(title, author, isbn, copies)
			if err != nil {
				return err
			}
			if err := store.Save(catalog); err != nil {
				return err
			}
			fmt.Printf("Added book %d: %s\n", id, title)
			return nil
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "book title")
	cmd.Flags().StringVarP(&author, "author", "a", "", "book author")
	cmd.Flags().StringVarP(&isbn, "isbn", "i", "", "ISBN")
	cmd.Flags().IntVarP(&copies, "copies", "c", 1, "number of copies")
	cmd.MarkFlagRequired("title")
	return cmd
}

func removeBookCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-book <book-id>",
		Short: "Remove a book from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid book id %q", args[0])
			}
			catalog, err := loadCatalog()
			if err != nil {
				return err
			}
			if !catalog.RemoveBook(id) {
				return fmt.Errorf("book %d not found", id)
			}
			if err := store.Save(catalog); err != nil {
				return err
			}
			fmt.Printf("Removed book %d\n", id)
			return nil
		},
	}
}

func checkoutCmd() *cobra.Command {
	var userID, bookID int
	var date string
	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Check out a book to a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = library.Today()
			}
			due, err := library.AddDays(date, cfg.Circulation.LoanPeriodDays)
			if err != nil {
				return err
			}
			catalog, err := loadCatalog()
			if err != nil {
				return err
			}
			txID, err := catalog.CheckoutBook(userID, bookID, date, due)
			if err != nil {
				return err
			}
			if err := store.Save(catalog); err != nil {
				return err
			}
			fmt.Printf("Transaction %d: book %d checked out to user %d, due %s\n", txID, bookID, userID, due)
			return nil
		},
	}
	cmd.Flags().IntVarP(&userID, "user", "u", 0, "user id")
	cmd.Flags().IntVarP(&bookID, "book", "b", 0, "book id")
	cmd.Flags().StringVarP(&date, "date", "d", "", "checkout date (YYYY-MM-DD, default today)")
	cmd.MarkFlagRequired("user")
	cmd.MarkFlagRequired("book")
	return cmd
}

func returnCmd() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "return <transaction-id>",
		Short: "Process a book return and compute any late fine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid transaction id %q", args[0])
			}
			if date == "" {
				date = library.Today()
			}
			catalog, err := loadCatalog()
			if err != nil {
				return err
			}
			fine, err := catalog.ProcessReturn(id, date)
			if err != nil {
				return err
			}
			if err := store.Save(catalog); err != nil {
				return err
			}
			tx, _ := catalog.FindTransactionByID(id)
			fmt.Printf("Transaction %d returned (%s), days late: %d, fine: $%s\n",
				id, tx.Status, tx.DaysLate(), fine)
			return nil
		},
	}
	cmd.Flags().StringVarP(&date, "date", "d", "", "return date (YYYY-MM-DD, default today)")
	return cmd
}

func searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <keyword>",
		Short: "Search books by title, author, or ISBN",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog()
			if err != nil {
				return err
			}
			results := catalog.SearchBooks(library.BookQuery{Keyword: args[0]})
			if len(results) == 0 {
				fmt.Println("No matches found.")
				return nil
			}
			printBooks(results)
			return nil
		},
	}
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every book in the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog()
			if err != nil {
				return err
			}
			printBooks(catalog.Books())
			return nil
		},
	}
}

func transactionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transactions",
		Short: "List every transaction",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog()
			if err != nil {
				return err
			}
			printTransactions(catalog.Transactions())
			return nil
		},
	}
}

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print a summary report of library activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog()
			if err != nil {
				return err
			}
			printReport(catalog.Report(library.Today()))
			return nil
		},
	}
}

func printBooks(books []library.Book) {
	if len(books) == 0 {
		fmt.Println("No books in the catalog.")
		return
	}
	fmt.Printf("%-5s %-40s %-25s %-15s %-6s %-9s\n", "ID", "Title", "Author", "ISBN", "Total", "Available")
	for _, b := range books {
		fmt.Printf("%-5d %-40s %-25s %-15s %-6d %-9d\n",
			b.ID, b.Title, b.Author, b.ISBN, b.TotalCopies, b.AvailableCopies)
	}
}

func printTransactions(txs []library.Transaction) {
	if len(txs) == 0 {
		fmt.Println("No transactions recorded.")
		return
	}
	fmt.Printf("%-5s %-7s %-7s %-12s %-12s %-12s %-13s\n",
		"ID", "User", "Book", "Checkout", "Due", "Returned", "Status")
	var active, returned, late int
	for _, t := range txs {
		returnDate := t.ReturnDate
		if returnDate == "" {
			returnDate = "-"
		}
		fmt.Printf("%-5d %-7d %-7d %-12s %-12s %-12s %-13s\n",
			t.ID, t.UserID, t.BookID, t.CheckoutDate, t.DueDate, returnDate, t.Status)
		switch t.Status {
		case library.StatusActive:
			active++
		case library.StatusReturned:
			returned++
		case library.StatusReturnedLate:
			late++
		}
	}
	fmt.Printf("Total: %d | Active: %d | Returned: %d | Late: %d\n", len(txs), active, returned, late)
}

func printReport(s library.Summary) {
	fmt.Println("============================================")
	fmt.Println("              LIBRARY REPORT")
	fmt.Println("============================================")
	fmt.Println("INVENTORY")
	fmt.Printf("  Titles:        %d\n", s.TotalBooks)
	fmt.Printf("  Total copies:  %d\n", s.TotalCopies)
	fmt.Printf("  Available:     %d\n", s.AvailableCopies)
	fmt.Printf("  Checked out:   %d\n", s.CheckedOutCopies)
	fmt.Println("TRANSACTIONS")
	fmt.Printf("  Total:         %d\n", s.TotalTransactions)
	fmt.Printf("  Active:        %d\n", s.ActiveCount)
	fmt.Printf("  Returned:      %d\n", s.ReturnedCount)
	fmt.Printf("  Returned late: %d\n", s.LateCount)
	fmt.Printf("  Overdue now:   %d\n", s.OverdueActive)
	fmt.Println("FINES")
	fmt.Printf("  Total issued:  $%s\n", s.TotalFines)
	fmt.Println("============================================")
}
