package main

import (
	"fmt"
	"os"

	"library-management/config"
	"library-management/library"
)

// Seeds a fresh demo catalog, replacing any existing data files. Paths come
// from the same config file the main binary reads.
func main() {
	cfgPath := os.Getenv("LIBRARY_CONFIG")
	if cfgPath == "" {
		cfgPath = "library.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Cleaning up existing data files...")
	for _, file := range []string{cfg.Data.BooksFile, cfg.Data.TransactionsFile} {
		if err := os.Remove(file); err != nil && !os.IsNotExist(err) {
			fmt.Printf("Warning: could not remove %s: %v\n", file, err)
		}
	}

	catalog := library.NewCatalog()

	books := []struct {
		title, author, isbn string
		copies              int
	}{
		{"The C++ Programming Language", "Bjarne Stroustrup", "9780321563842", 3},
		{"Clean Code", "Robert C. Martin", "9780132350884", 2},
		{"Design Patterns", "Gamma et al.", "9780201633610", 1},
		{"The Pragmatic Programmer", "Hunt & Thomas", "9780201616224", 2},
		{"Structure and Interpretation of Computer Programs", "Abelson & Sussman", "9780262510875", 1},
	}

	for _, b := range books {
		id, err := catalog.AddBook(b.title, b.author, b.isbn, b.copies)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error adding %q: %v\n", b.title, err)
			os.Exit(1)
		}
		fmt.Printf("Added book %d: %s (%d copies)\n", id, b.title, b.copies)
	}

	if err := catalog.SaveCSV(cfg.Data.BooksFile, cfg.Data.TransactionsFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving catalog: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Seed complete: %d books written to %s\n", len(books), cfg.Data.BooksFile)
}
