package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/ValentinKolb/dShelf/lib/shelf"
	"github.com/google/go-cmp/cmp"
)

var testLibraries = []shelf.Library{
	{Name: "Library of Congress", Address: "101 Independence Ave SE, Washington, DC 20540", ShortName: "LOC"},
	{Name: "Boston Public Library", Address: "700 Boylston St, Boston, MA 02116", ShortName: "BPL"},
}

func book(title, category string) shelf.Book {
	return shelf.Book{Title: title, Author: "Author, " + title, Category: category}
}

// smallSource is the example catalog: one category with two books and one book being read
func smallSource() *Source {
	return &Source{
		Owner:          "Tester",
		FormNumberBase: 70,
		Libraries:      testLibraries,
		Categories: []shelf.Category{
			{Name: "Fiction", Books: []shelf.Book{book("A", "Fiction"), book("B", "Fiction")}},
		},
		CurrentlyReading: []shelf.Book{book("C", shelf.TabCurrentlyReading)},
	}
}

func mustIndex(t *testing.T, src *Source) ICatalog {
	t.Helper()
	idx, err := NewIndex(src)
	if err != nil {
		t.Fatalf("NewIndex() returned error: %v", err)
	}
	return idx
}

func formNumbers(c Collection) []string {
	out := make([]string, len(c.Books))
	for i := range c.Books {
		out[i] = c.FormNumber(i)
	}
	return out
}

// TestSmallCatalog tests the flattening and form numbers of the example catalog
func TestSmallCatalog(t *testing.T) {
	idx := mustIndex(t, smallSource())

	if got := len(idx.AllBooks()); got != 3 {
		t.Fatalf("len(AllBooks()) = %d, want 3", got)
	}

	all := idx.BooksForTab(shelf.TabAll)
	if diff := cmp.Diff([]string{"700", "701", "CR1"}, formNumbers(all)); diff != "" {
		t.Errorf("All form numbers mismatch (-want +got):\n%s", diff)
	}

	fiction := idx.BooksForTab("Fiction")
	if got := fiction.FormNumber(0); got != "700" {
		t.Errorf("Fiction FormNumber(0) = %s, want 700", got)
	}
	if got := fiction.FormNumber(1); got != "701" {
		t.Errorf("Fiction FormNumber(1) = %s, want 701", got)
	}

	if got := idx.BooksForTab(shelf.TabQueue); len(got.Books) != 0 {
		t.Errorf("Queue should be empty, got %d books", len(got.Books))
	}
	if got := idx.BooksForTab(shelf.TabCurrentlyReading).FormNumber(0); got != "CR1" {
		t.Errorf("Currently Reading FormNumber(0) = %s, want CR1", got)
	}
}

// TestAllFormNumberRouting tests the segment routing with several and empty categories
func TestAllFormNumberRouting(t *testing.T) {
	src := &Source{
		FormNumberBase: 76,
		Libraries:      testLibraries,
		Categories: []shelf.Category{
			{Name: "Fiction", Books: []shelf.Book{book("F1", "Fiction"), book("F2", "Fiction")}},
			{Name: "Poetry", Books: nil},
			{Name: "Essays", Books: []shelf.Book{book("E1", "Essays")}},
		},
		CurrentlyReading: []shelf.Book{book("R1", shelf.TabCurrentlyReading), book("R2", shelf.TabCurrentlyReading)},
		Queue:            []shelf.Book{book("Q1", shelf.TabQueue)},
	}
	idx := mustIndex(t, src)

	want := []string{"760", "761", "780", "CR1", "CR2", "Q1"}
	if diff := cmp.Diff(want, formNumbers(idx.BooksForTab(shelf.TabAll))); diff != "" {
		t.Errorf("All form numbers mismatch (-want +got):\n%s", diff)
	}

	// the category tab uses its declaration index, even after an empty category
	if got := idx.BooksForTab("Essays").FormNumber(0); got != "780" {
		t.Errorf("Essays FormNumber(0) = %s, want 780", got)
	}

	// out of range indices follow the rules of the surrounding segment
	gen := idx.BooksForTab(shelf.TabAll).FormNumber
	if got := gen(10); got != "Q6" {
		t.Errorf("All FormNumber(10) = %s, want Q6", got)
	}
	if got := gen(-1); got != "76-1" {
		t.Errorf("All FormNumber(-1) = %s, want 76-1", got)
	}
}

// TestUnknownTab tests the graceful fallback
func TestUnknownTab(t *testing.T) {
	idx := mustIndex(t, smallSource())

	c := idx.BooksForTab("Poetry")
	if c.Books == nil || len(c.Books) != 0 {
		t.Errorf("expected empty non-nil book list, got %v", c.Books)
	}
	if c.AriaLabel == "" {
		t.Error("expected a non-empty aria label")
	}
	if got := c.FormNumber(0); got != "700" {
		t.Errorf("FormNumber(0) = %s, want 700", got)
	}
	if got := c.FormNumber(12); got != "7012" {
		t.Errorf("FormNumber(12) = %s, want 7012", got)
	}
}

// TestTabs tests the tab order and the number of precomputed collections
func TestTabs(t *testing.T) {
	idx := mustIndex(t, smallSource())

	want := []string{shelf.TabAll, "Fiction", shelf.TabCurrentlyReading, shelf.TabQueue}
	if diff := cmp.Diff(want, idx.Tabs()); diff != "" {
		t.Errorf("Tabs() mismatch (-want +got):\n%s", diff)
	}
	if idx.Size() != len(want) {
		t.Errorf("Size() = %d, want %d", idx.Size(), len(want))
	}
	for _, tab := range want {
		if got := idx.BooksForTab(tab).AriaLabel; got != tab+" books carousel" {
			t.Errorf("AriaLabel for %s = %q", tab, got)
		}
	}
}

// TestExplicitLibraryWins tests that a declared library code is kept
func TestExplicitLibraryWins(t *testing.T) {
	src := smallSource()
	src.Categories[0].Books[0].Library = "XYZ"
	idx := mustIndex(t, src)

	if got := idx.AllBooks()[0].Library; got != "XYZ" {
		t.Errorf("Library = %s, want XYZ", got)
	}
	for _, b := range idx.AllBooks()[1:] {
		if b.Library == "" {
			t.Errorf("book %s has no library", b)
		}
	}
}

// TestIndexDoesNotAliasSource tests that the source stays untouched
func TestIndexDoesNotAliasSource(t *testing.T) {
	src := smallSource()
	src.Categories[0].Books[0].Checkouts = []shelf.CheckoutRecord{{Date: "JAN 01 2000"}}
	idx := mustIndex(t, src)

	if src.Categories[0].Books[0].Library != "" {
		t.Error("NewIndex wrote the library into the source")
	}
	src.Categories[0].Books[0].Checkouts[0].Date = "changed"
	if got := idx.AllBooks()[0].Checkouts[0].Date; got != "JAN 01 2000" {
		t.Errorf("index shares checkouts with the source, got %q", got)
	}
}

// TestReturnedSlicesAreCopies tests that writes through returned slices do not reach the index
func TestReturnedSlicesAreCopies(t *testing.T) {
	src := smallSource()
	src.Categories[0].Books[0].Checkouts = []shelf.CheckoutRecord{{Date: "JAN 01 2000"}}
	idx := mustIndex(t, src)

	all := idx.AllBooks()
	all[0].Title = "changed"
	all[0].Checkouts[0].Date = "changed"

	tab := idx.BooksForTab(shelf.TabAll)
	tab.Books[1].Title = "changed"

	fiction := idx.BooksForTab("Fiction")
	fiction.Books[0].Author = "changed"

	libs := idx.Libraries()
	libs[0].ShortName = "changed"

	want := []string{"A", "B", "C"}
	for _, books := range [][]shelf.Book{idx.AllBooks(), idx.BooksForTab(shelf.TabAll).Books} {
		got := make([]string, len(books))
		for i, b := range books {
			got[i] = b.Title
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("titles changed (-want +got):\n%s", diff)
		}
	}
	if got := idx.AllBooks()[0].Checkouts[0].Date; got != "JAN 01 2000" {
		t.Errorf("checkout date = %q, want JAN 01 2000", got)
	}
	if got := idx.BooksForTab("Fiction").Books[0].Author; got != "Author, A" {
		t.Errorf("author = %q, want %q", got, "Author, A")
	}
	if got := idx.Libraries()[0].ShortName; got != "LOC" {
		t.Errorf("library = %q, want LOC", got)
	}
}

// TestNewIndexErrors tests that broken catalogs fail loudly
func TestNewIndexErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Source)
		want   error
	}{
		{
			name:   "empty title",
			mutate: func(s *Source) { s.Categories[0].Books[0].Title = " " },
			want:   shelf.ErrInvalidInput,
		},
		{
			name:   "no libraries",
			mutate: func(s *Source) { s.Libraries = nil },
			want:   shelf.ErrNoLibrariesAvailable,
		},
		{
			name:   "missing category",
			mutate: func(s *Source) { s.Categories[0].Books[1].Category = "" },
			want:   shelf.ErrIncompleteCatalog,
		},
		{
			name:   "tag of another category",
			mutate: func(s *Source) { s.Categories[0].Books[1].Category = "Poetry" },
			want:   shelf.ErrInvalidInput,
		},
		{
			name:   "queue tag in currently reading",
			mutate: func(s *Source) { s.CurrentlyReading[0].Category = shelf.TabQueue },
			want:   shelf.ErrInvalidInput,
		},
		{
			name:   "reserved category name",
			mutate: func(s *Source) { s.Categories[0].Name = shelf.TabQueue },
			want:   shelf.ErrInvalidInput,
		},
		{
			name: "duplicate category name",
			mutate: func(s *Source) {
				s.Categories = append(s.Categories, shelf.Category{Name: "Fiction"})
			},
			want: shelf.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := smallSource()
			tt.mutate(src)
			_, err := NewIndex(src)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewIndex() error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := NewIndex(nil); !errors.Is(err, shelf.ErrInvalidInput) {
		t.Errorf("NewIndex(nil) error = %v, want %v", err, shelf.ErrInvalidInput)
	}
}

// TestCollectionView tests that the view carries the evaluated form numbers
func TestCollectionView(t *testing.T) {
	idx := mustIndex(t, smallSource())
	view := idx.BooksForTab(shelf.TabAll).View()

	if view.Tab != shelf.TabAll || view.AriaLabel != "All books carousel" {
		t.Errorf("unexpected view header: %+v", view)
	}
	if len(view.Entries) != 3 {
		t.Fatalf("len(Entries) = %d, want 3", len(view.Entries))
	}
	if view.Entries[2].FormNumber != "CR1" || view.Entries[2].Book.Title != "C" {
		t.Errorf("unexpected last entry: %+v", view.Entries[2])
	}
}

// TestVerify tests the diagnostic on a hand-made list with missing fields
func TestVerify(t *testing.T) {
	books := []shelf.Book{
		{Title: "Complete", Author: "A", Category: "Fiction", Library: "LOC"},
		{Title: "No Category", Author: "B", Library: "LOC"},
		{Title: "Nothing", Author: "C"},
	}

	report := Verify(books)

	if report.TotalBooks != 3 {
		t.Errorf("TotalBooks = %d, want 3", report.TotalBooks)
	}
	if len(report.BooksWithoutCategory) != 2 {
		t.Errorf("len(BooksWithoutCategory) = %d, want 2", len(report.BooksWithoutCategory))
	}
	if len(report.BooksWithoutLibrary) != 1 {
		t.Errorf("len(BooksWithoutLibrary) = %d, want 1", len(report.BooksWithoutLibrary))
	}
	if diff := cmp.Diff(map[string]int{"Fiction": 1}, report.CategoryCounts); diff != "" {
		t.Errorf("CategoryCounts mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]int{"LOC": 2}, report.LibraryCounts); diff != "" {
		t.Errorf("LibraryCounts mismatch (-want +got):\n%s", diff)
	}

	wantErrors := []string{
		`Book "No Category" by B is missing category`,
		`Book "Nothing" by C is missing category`,
		`Book "Nothing" by C is missing library assignment`,
	}
	if diff := cmp.Diff(wantErrors, report.Errors); diff != "" {
		t.Errorf("Errors mismatch (-want +got):\n%s", diff)
	}
	if report.Ok() {
		t.Error("Ok() should be false")
	}
}

// TestVerifyEmpty tests that an empty catalog is well formed
func TestVerifyEmpty(t *testing.T) {
	idx := mustIndex(t, &Source{Libraries: testLibraries})

	report := idx.Verify()
	if !report.Ok() || report.TotalBooks != 0 {
		t.Errorf("unexpected report for empty catalog: %+v", report)
	}
	if got := idx.BooksForTab("Fiction").FormNumber(3); !strings.HasPrefix(got, "76") {
		t.Errorf("empty catalog should fall back to the default base, got %s", got)
	}
}
