package catalog

import (
	"github.com/ValentinKolb/dShelf/lib/shelf"
)

// --------------------------------------------------------------------------
// Interface Definition
// --------------------------------------------------------------------------

// ICatalog is the read-only view of a catalog index.
// Implementations are built once and are safe for concurrent use without locking.
type ICatalog interface {
	// BooksForTab returns the collection shown on a tab. The books are a copy.
	// Unknown tabs yield an empty collection with a generic label and a
	// generator that emits FormNumberBase followed by the index; this never fails.
	BooksForTab(tab string) Collection
	// AllBooks returns a copy of every book in "All" order with its library resolved.
	AllBooks() []shelf.Book
	// Tabs returns the tab identifiers in display order:
	// "All", each category, "Currently Reading", "Queue".
	Tabs() []string
	// Verify scans the flattened catalog and reports missing fields. It has no side effects.
	Verify() Report
	// Libraries returns a copy of the reference set used for assignment.
	Libraries() []shelf.Library
	// Owner returns the name of the person the shelf belongs to.
	Owner() string
	// Size returns the number of precomputed tab collections.
	Size() int
}

// --------------------------------------------------------------------------
// Collections
// --------------------------------------------------------------------------

// FormNumberFunc maps the position of a book within a tab to its form number.
type FormNumberFunc func(index int) string

// Collection is the content of one tab.
type Collection struct {
	Tab        string
	Books      []shelf.Book
	FormNumber FormNumberFunc
	AriaLabel  string
}

// TabView is the serializable form of a Collection: the generator is
// evaluated for every book so it can cross process boundaries.
type TabView struct {
	Tab       string     `json:"tab"`
	AriaLabel string     `json:"aria_label"`
	Entries   []TabEntry `json:"entries"`
}

// TabEntry is a book together with its form number on a given tab.
type TabEntry struct {
	FormNumber string     `json:"form_number"`
	Book       shelf.Book `json:"book"`
}

// View evaluates the form number generator for every book of the collection.
func (c Collection) View() TabView {
	entries := make([]TabEntry, len(c.Books))
	for i, b := range c.Books {
		entries[i] = TabEntry{FormNumber: c.FormNumber(i), Book: b}
	}
	return TabView{
		Tab:       c.Tab,
		AriaLabel: c.AriaLabel,
		Entries:   entries,
	}
}
