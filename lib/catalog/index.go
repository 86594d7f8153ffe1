package catalog

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/ValentinKolb/dShelf/lib/assign"
	"github.com/ValentinKolb/dShelf/lib/shelf"
	"github.com/lni/dragonboat/v4/logger"
)

var Logger = logger.GetLogger("catalog")

const fallbackAriaLabel = "Books carousel"

type indexImpl struct {
	owner       string
	base        int
	libraries   []shelf.Library
	allBooks    []shelf.Book
	tabs        []string
	collections map[string]Collection
}

// NewIndex flattens a catalog source, resolves the library of every book and
// precomputes the collection of every tab.
//
// An explicit library code on a book wins; otherwise the library is assigned
// from the title. The index fails to build if a category name is empty,
// duplicated or reserved, if a book is tagged with another group than the one
// it is declared in, if library assignment fails, or if any book ends up
// without a category or library.
func NewIndex(src *Source) (ICatalog, error) {
	if src == nil {
		return nil, shelf.NewError(shelf.RetCInvalidInput, "catalog source is nil")
	}

	base := src.FormNumberBase
	if base == 0 {
		base = DefaultFormNumberBase
	}

	// validate category names, they double as tab identifiers
	seen := make(map[string]struct{}, len(src.Categories))
	for i, c := range src.Categories {
		if strings.TrimSpace(c.Name) == "" {
			return nil, shelf.NewError(shelf.RetCInvalidInput, fmt.Sprintf("category %d has no name", i))
		}
		if shelf.IsReservedTab(c.Name) {
			return nil, shelf.NewError(shelf.RetCInvalidInput, fmt.Sprintf("category name %q is reserved", c.Name))
		}
		if _, ok := seen[c.Name]; ok {
			return nil, shelf.NewError(shelf.RetCInvalidInput, fmt.Sprintf("duplicate category %q", c.Name))
		}
		seen[c.Name] = struct{}{}
	}

	idx := &indexImpl{
		owner:       src.Owner,
		base:        base,
		libraries:   append([]shelf.Library(nil), src.Libraries...),
		collections: make(map[string]Collection, len(src.Categories)+3),
	}

	// every book must carry the tag of the group it is declared in,
	// tabs filter by tag while "All" form numbers follow the declared groups
	for _, c := range src.Categories {
		if err := checkGroup(c.Name, c.Books); err != nil {
			return nil, err
		}
	}
	if err := checkGroup(shelf.TabCurrentlyReading, src.CurrentlyReading); err != nil {
		return nil, err
	}
	if err := checkGroup(shelf.TabQueue, src.Queue); err != nil {
		return nil, err
	}

	// flatten in "All" order
	allBooks := make([]shelf.Book, 0, src.BookCount())
	for _, b := range src.books() {
		resolved, err := idx.resolveLibrary(b)
		if err != nil {
			return nil, err
		}
		allBooks = append(allBooks, resolved)
	}
	idx.allBooks = allBooks

	// refuse to serve a catalog that breaks the integrity invariants
	if report := Verify(allBooks); len(report.Errors) > 0 {
		return nil, shelf.NewError(shelf.RetCIncompleteCatalog, strings.Join(report.Errors, "; "))
	}

	idx.initCollections(src)

	Logger.Infof("catalog for %q built: %d books, %d tabs", src.Owner, len(allBooks), len(idx.tabs))
	return idx, nil
}

// checkGroup rejects books whose category tag names another group.
// An empty tag is left to the integrity scan.
func checkGroup(group string, books []shelf.Book) error {
	for _, b := range books {
		if b.Category != "" && b.Category != group {
			return shelf.NewError(shelf.RetCInvalidInput, fmt.Sprintf("book %s is declared under %q but tagged %q", b, group, b.Category))
		}
	}
	return nil
}

// cloneBooks deep-copies a book slice so callers cannot reach the index
func cloneBooks(books []shelf.Book) []shelf.Book {
	out := make([]shelf.Book, len(books))
	for i, b := range books {
		out[i] = b.Clone()
	}
	return out
}

// resolveLibrary returns a copy of the book with its library code filled in
func (idx *indexImpl) resolveLibrary(b shelf.Book) (shelf.Book, error) {
	b = b.Clone()
	if b.Library != "" {
		return b, nil
	}
	lib, err := assign.Library(b.Title, idx.libraries)
	if err != nil {
		return shelf.Book{}, fmt.Errorf("failed to assign library to book %s: %w", b, err)
	}
	b.Library = lib.ShortName
	return b, nil
}

// initCollections precomputes the collections for all tabs
func (idx *indexImpl) initCollections(src *Source) {
	// All
	idx.tabs = append(idx.tabs, shelf.TabAll)
	idx.collections[shelf.TabAll] = Collection{
		Tab:        shelf.TabAll,
		Books:      idx.allBooks,
		FormNumber: idx.allFormNumbers(src),
		AriaLabel:  ariaLabel(shelf.TabAll),
	}

	// declared categories
	for i, c := range src.Categories {
		idx.tabs = append(idx.tabs, c.Name)
		idx.collections[c.Name] = Collection{
			Tab:        c.Name,
			Books:      idx.booksByCategory(c.Name),
			FormNumber: categoryFormNumber(idx.base, i),
			AriaLabel:  ariaLabel(c.Name),
		}
	}

	// synthetic groups
	idx.tabs = append(idx.tabs, shelf.TabCurrentlyReading, shelf.TabQueue)
	idx.collections[shelf.TabCurrentlyReading] = Collection{
		Tab:        shelf.TabCurrentlyReading,
		Books:      idx.booksByCategory(shelf.TabCurrentlyReading),
		FormNumber: prefixFormNumber("CR"),
		AriaLabel:  ariaLabel(shelf.TabCurrentlyReading),
	}
	idx.collections[shelf.TabQueue] = Collection{
		Tab:        shelf.TabQueue,
		Books:      idx.booksByCategory(shelf.TabQueue),
		FormNumber: prefixFormNumber("Q"),
		AriaLabel:  ariaLabel(shelf.TabQueue),
	}
}

// booksByCategory filters the flattened catalog by the category tag of each book
func (idx *indexImpl) booksByCategory(category string) []shelf.Book {
	books := make([]shelf.Book, 0)
	for _, b := range idx.allBooks {
		if b.Category == category {
			books = append(books, b)
		}
	}
	return books
}

// allFormNumbers builds the generator for the "All" tab. A global index is
// routed to the rule of the segment (category, currently reading, queue) it falls in.
func (idx *indexImpl) allFormNumbers(src *Source) FormNumberFunc {
	offsets := make([]int, len(src.Categories))
	offset := 0
	for i, c := range src.Categories {
		offsets[i] = offset
		offset += len(c.Books)
	}
	currentlyReadingOffset := offset
	queueOffset := currentlyReadingOffset + len(src.CurrentlyReading)
	base := idx.base

	return func(index int) string {
		for i, start := range offsets {
			end := currentlyReadingOffset
			if i+1 < len(offsets) {
				end = offsets[i+1]
			}
			if index >= start && index < end {
				return strconv.Itoa(base+i) + strconv.Itoa(index-start)
			}
		}
		if index >= currentlyReadingOffset && index < queueOffset {
			return "CR" + strconv.Itoa(index-currentlyReadingOffset+1)
		}
		if index >= queueOffset {
			return "Q" + strconv.Itoa(index-queueOffset+1)
		}
		return strconv.Itoa(base) + strconv.Itoa(index)
	}
}

// categoryFormNumber concatenates base+categoryIndex with the in-tab index
func categoryFormNumber(base, categoryIndex int) FormNumberFunc {
	prefix := strconv.Itoa(base + categoryIndex)
	return func(index int) string {
		return prefix + strconv.Itoa(index)
	}
}

// prefixFormNumber numbers books from 1 after a letter prefix (CR1, Q1, ...)
func prefixFormNumber(prefix string) FormNumberFunc {
	return func(index int) string {
		return prefix + strconv.Itoa(index+1)
	}
}

func ariaLabel(tab string) string {
	return tab + " books carousel"
}

// --------------------------------------------------------------------------
// Interface Methods (docu see catalog/interface.go)
// --------------------------------------------------------------------------

func (idx *indexImpl) BooksForTab(tab string) Collection {
	if c, ok := idx.collections[tab]; ok {
		c.Books = cloneBooks(c.Books)
		return c
	}
	base := strconv.Itoa(idx.base)
	return Collection{
		Tab:        tab,
		Books:      []shelf.Book{},
		FormNumber: func(index int) string { return base + strconv.Itoa(index) },
		AriaLabel:  fallbackAriaLabel,
	}
}

func (idx *indexImpl) AllBooks() []shelf.Book {
	return cloneBooks(idx.allBooks)
}

func (idx *indexImpl) Tabs() []string {
	return append([]string(nil), idx.tabs...)
}

func (idx *indexImpl) Verify() Report {
	return Verify(idx.allBooks)
}

func (idx *indexImpl) Libraries() []shelf.Library {
	return slices.Clone(idx.libraries)
}

func (idx *indexImpl) Owner() string {
	return idx.owner
}

func (idx *indexImpl) Size() int {
	return len(idx.collections)
}
