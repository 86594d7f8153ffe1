package client

import (
	"github.com/ValentinKolb/dShelf/lib/analysis"
	"github.com/ValentinKolb/dShelf/lib/assign"
	"github.com/ValentinKolb/dShelf/lib/card"
	"github.com/ValentinKolb/dShelf/lib/catalog"
	"github.com/ValentinKolb/dShelf/lib/shelf"
)

// IShelf is the remote view of one shelf served by a dShelf server.
// Every method is a single round trip; errors are transport failures or
// *shelf.Error values raised by the server.
type IShelf interface {
	// BooksForTab returns the books of a tab together with their form numbers
	BooksForTab(tab string) (catalog.TabView, error)
	// AllBooks returns the flattened catalog in "All" order
	AllBooks() ([]shelf.Book, error)
	// Tabs returns the tab identifiers in display order
	Tabs() ([]string, error)
	// Verify runs the integrity scan on the server
	Verify() (catalog.Report, error)
	// FormNumber returns the form number of a position on a tab
	FormNumber(tab string, index int) (string, error)
	// AssignLibrary assigns a library from the shelf's reference set to a title
	AssignLibrary(title string) (shelf.Library, error)
	// Stamp returns the placement of a stamp for a date label and the CSS class of its colour
	Stamp(date string, color shelf.StampColor) (assign.Stamp, string, error)
	// Card projects the book at a position of a tab onto a library card.
	// ok is false if there is no book at that position.
	Card(tab string, index int) (c card.Card, ok bool, err error)
	// Analysis returns the literary profile of the shelf
	Analysis() (analysis.Report, error)
	// Close releases the transport
	Close() error
}
