package shelf

import "fmt"

// --------------------------------------------------------------------------
// Reference Data
// --------------------------------------------------------------------------

// Library is a fixed reference institution a book is associated with for display purposes.
type Library struct {
	// Name is the full name of the library
	Name string `json:"name" yaml:"name"`
	// Address is the postal address printed at the bottom of a card
	Address string `json:"address" yaml:"address"`
	// ShortName is the short code stored on a book (e.g. "LOC")
	ShortName string `json:"short_name" yaml:"short_name"`
}

// DefaultLibrary is printed on a card whose library code cannot be resolved.
var DefaultLibrary = Library{
	Name:      "Library of Congress",
	Address:   "101 Independence Ave SE, Washington, DC 20540",
	ShortName: "LOC",
}

// FindLibrary returns the library with the given short name.
func FindLibrary(libraries []Library, shortName string) (Library, bool) {
	for _, lib := range libraries {
		if lib.ShortName == shortName {
			return lib, true
		}
	}
	return Library{}, false
}

// --------------------------------------------------------------------------
// Books
// --------------------------------------------------------------------------

// StampColor is the ink colour of a checkout stamp.
type StampColor string

const (
	StampRed   StampColor = "red"
	StampBlue  StampColor = "blue"
	StampBrown StampColor = "brown"
	StampGreen StampColor = "green"
)

// Valid reports whether the colour is part of the fixed palette.
// The zero value is valid and means "no colour".
func (c StampColor) Valid() bool {
	switch c {
	case "", StampRed, StampBlue, StampBrown, StampGreen:
		return true
	default:
		return false
	}
}

// CheckoutRecord is a simulated historical borrowing entry shown on a card.
type CheckoutRecord struct {
	// Date is a free-form label, not necessarily a parseable date ("Ancient Era" is fine)
	Date     string     `json:"date" yaml:"date"`
	Borrower string     `json:"borrower,omitempty" yaml:"borrower,omitempty"`
	Color    StampColor `json:"color,omitempty" yaml:"color,omitempty"`
}

// Book is a single catalog entry. The title is the key used for library assignment.
type Book struct {
	Title       string           `json:"title" yaml:"title"`
	Author      string           `json:"author" yaml:"author"`
	Category    string           `json:"category" yaml:"category"`
	DeweyNumber string           `json:"dewey_number,omitempty" yaml:"dewey_number,omitempty"`
	Quote       string           `json:"quote,omitempty" yaml:"quote,omitempty"`
	URL         string           `json:"url,omitempty" yaml:"url,omitempty"`
	Library     string           `json:"library,omitempty" yaml:"library,omitempty"`
	Checkouts   []CheckoutRecord `json:"checkouts" yaml:"checkouts"`
}

// String returns "Title" by Author, the form used in diagnostics
func (b Book) String() string {
	return fmt.Sprintf("%q by %s", b.Title, b.Author)
}

// Clone returns a copy of the book that does not share its checkout slice.
func (b Book) Clone() Book {
	if b.Checkouts != nil {
		checkouts := make([]CheckoutRecord, len(b.Checkouts))
		copy(checkouts, b.Checkouts)
		b.Checkouts = checkouts
	}
	return b
}

// Category is a named, ordered group of books as declared in the catalog source.
type Category struct {
	Name  string `json:"name" yaml:"name"`
	Books []Book `json:"books" yaml:"books"`
}

// --------------------------------------------------------------------------
// Tabs
// --------------------------------------------------------------------------

// Tab names that are not backed by a declared category.
const (
	TabAll              = "All"
	TabCurrentlyReading = "Currently Reading"
	TabQueue            = "Queue"
)

// IsReservedTab reports whether name is one of the synthetic tabs.
func IsReservedTab(name string) bool {
	return name == TabAll || name == TabCurrentlyReading || name == TabQueue
}
