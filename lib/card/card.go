package card

import (
	"fmt"
	"strconv"

	"github.com/ValentinKolb/dShelf/lib/assign"
	"github.com/ValentinKolb/dShelf/lib/catalog"
	"github.com/ValentinKolb/dShelf/lib/shelf"
)

const (
	// MaxCheckoutRows is the number of rows printed on a card, filled or not
	MaxCheckoutRows = 8
	// FallbackCategory is printed when neither the book nor the tab carries a category
	FallbackCategory = "B"
	// FallbackDeweyNumber is printed for books without a Dewey decimal number
	FallbackDeweyNumber = "780"
	// Heading is the fixed title printed on every card
	Heading = "Library Book Card"
)

// DefaultFormNumber is used when a card is projected without a form number
var DefaultFormNumber = strconv.Itoa(catalog.DefaultFormNumberBase)

// StampRow is one filled checkout row of a card.
type StampRow struct {
	assign.Stamp
	Borrower   string `json:"borrower"`
	ColorClass string `json:"color_class"`
}

// Card is the printable projection of a book. All fields are derived
// deterministically from the book, so two projections of the same book are equal.
type Card struct {
	FormNumber  string        `json:"form_number"`
	Category    string        `json:"category"`
	DeweyNumber string        `json:"dewey_number"`
	Title       string        `json:"title"`
	Author      string        `json:"author"`
	URL         string        `json:"url,omitempty"`
	AriaLabel   string        `json:"aria_label"`
	Rows        []StampRow    `json:"rows"`
	EmptyRows   int           `json:"empty_rows"`
	Quote       string        `json:"quote,omitempty"`
	Library     shelf.Library `json:"library"`
}

// New projects a book onto a card.
//
// tabCategory is used when the book has no category of its own. The library
// code of the book is looked up in libraries; a book without a code gets the
// first library of the set and an unknown code falls back to shelf.DefaultLibrary.
func New(b shelf.Book, formNumber, tabCategory string, libraries []shelf.Library) Card {
	if formNumber == "" {
		formNumber = DefaultFormNumber
	}

	category := b.Category
	if category == "" {
		category = tabCategory
	}
	if category == "" {
		category = FallbackCategory
	}

	dewey := b.DeweyNumber
	if dewey == "" {
		dewey = FallbackDeweyNumber
	}

	rows := make([]StampRow, len(b.Checkouts))
	for i, rec := range b.Checkouts {
		rows[i] = StampRow{
			Stamp:      assign.NewStamp(rec.Date),
			Borrower:   rec.Borrower,
			ColorClass: assign.ColorClass(rec.Color),
		}
	}

	return Card{
		FormNumber:  formNumber,
		Category:    category,
		DeweyNumber: dewey,
		Title:       b.Title,
		Author:      b.Author,
		URL:         b.URL,
		AriaLabel:   fmt.Sprintf("Open details for %s by %s", b.Title, b.Author),
		Rows:        rows,
		EmptyRows:   max(0, MaxCheckoutRows-len(b.Checkouts)),
		Quote:       b.Quote,
		Library:     resolveLibrary(b.Library, libraries),
	}
}

func resolveLibrary(code string, libraries []shelf.Library) shelf.Library {
	if code == "" {
		if len(libraries) > 0 {
			return libraries[0]
		}
		return shelf.DefaultLibrary
	}
	if lib, ok := shelf.FindLibrary(libraries, code); ok {
		return lib
	}
	return shelf.DefaultLibrary
}

// ForTab projects every book of a collection, using the collection's form
// number generator and tab as category fallback.
func ForTab(c catalog.Collection, libraries []shelf.Library) []Card {
	cards := make([]Card, len(c.Books))
	for i, b := range c.Books {
		cards[i] = New(b, c.FormNumber(i), c.Tab, libraries)
	}
	return cards
}
