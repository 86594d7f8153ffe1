package catalog

import (
	"fmt"

	"github.com/ValentinKolb/dShelf/lib/shelf"
)

// Report is the result of a read-only integrity scan over a flattened catalog.
type Report struct {
	TotalBooks           int            `json:"total_books"`
	BooksWithoutCategory []shelf.Book   `json:"books_without_category"`
	BooksWithoutLibrary  []shelf.Book   `json:"books_without_library"`
	CategoryCounts       map[string]int `json:"category_counts"`
	LibraryCounts        map[string]int `json:"library_counts"`
	Errors               []string       `json:"errors"`
}

// Ok reports whether the scan found no missing fields
func (r Report) Ok() bool {
	return len(r.Errors) == 0
}

// Verify counts books per category and library and lists every book missing
// one of the two, with one human-readable error per missing field.
func Verify(books []shelf.Book) Report {
	report := Report{
		TotalBooks:           len(books),
		BooksWithoutCategory: []shelf.Book{},
		BooksWithoutLibrary:  []shelf.Book{},
		CategoryCounts:       make(map[string]int),
		LibraryCounts:        make(map[string]int),
		Errors:               []string{},
	}

	for _, b := range books {
		if b.Category != "" {
			report.CategoryCounts[b.Category]++
		} else {
			report.BooksWithoutCategory = append(report.BooksWithoutCategory, b)
			report.Errors = append(report.Errors, fmt.Sprintf("Book %s is missing category", b))
		}

		if b.Library != "" {
			report.LibraryCounts[b.Library]++
		} else {
			report.BooksWithoutLibrary = append(report.BooksWithoutLibrary, b)
			report.Errors = append(report.Errors, fmt.Sprintf("Book %s is missing library assignment", b))
		}
	}

	return report
}
