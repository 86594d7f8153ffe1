package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/ValentinKolb/dShelf/lib/shelf"
	"gopkg.in/yaml.v3"
)

// DefaultFormNumberBase is used when a source does not declare form_number_base
const DefaultFormNumberBase = 76

// SourceBuiltin is the shelf source name that refers to the embedded catalog
const SourceBuiltin = "builtin"

//go:embed data/shelf.yaml
var builtinYAML []byte

// Source is the declared content of a catalog, as read from YAML.
// It is the input to NewIndex and is never modified by it.
type Source struct {
	// Owner is the person whose shelf this is
	Owner string `yaml:"owner"`
	// FormNumberBase is added to the category index to build form numbers
	FormNumberBase int `yaml:"form_number_base"`
	// Libraries is the reference set used for library assignment
	Libraries []shelf.Library `yaml:"libraries"`
	// Categories are the read books, in declaration order
	Categories       []shelf.Category `yaml:"categories"`
	CurrentlyReading []shelf.Book     `yaml:"currently_reading"`
	Queue            []shelf.Book     `yaml:"queue"`
}

// BookCount returns the number of declared books over all groups.
func (s *Source) BookCount() int {
	n := len(s.CurrentlyReading) + len(s.Queue)
	for _, c := range s.Categories {
		n += len(c.Books)
	}
	return n
}

// --------------------------------------------------------------------------
// Loading
// --------------------------------------------------------------------------

// LoadSource decodes a catalog source from YAML. Unknown fields are rejected
// so typos in hand-written catalogs do not silently drop data.
func LoadSource(r io.Reader) (*Source, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	src := &Source{}
	if err := dec.Decode(src); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("catalog source is empty")
		}
		return nil, fmt.Errorf("failed to decode catalog source: %w", err)
	}

	if src.FormNumberBase == 0 {
		src.FormNumberBase = DefaultFormNumberBase
	}

	for _, b := range src.books() {
		for _, rec := range b.Checkouts {
			if !rec.Color.Valid() {
				return nil, fmt.Errorf("book %s: invalid stamp color %q", b, rec.Color)
			}
		}
	}

	return src, nil
}

// books returns all declared books in "All" order: categories, currently reading, queue
func (s *Source) books() []shelf.Book {
	books := make([]shelf.Book, 0, s.BookCount())
	for _, c := range s.Categories {
		books = append(books, c.Books...)
	}
	books = append(books, s.CurrentlyReading...)
	return append(books, s.Queue...)
}

// LoadFile reads a catalog source from a YAML file
func LoadFile(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog %s: %w", path, err)
	}
	defer f.Close()

	return LoadSource(f)
}

// builtinSource parses the embedded catalog exactly once per process
var builtinSource = sync.OnceValues(func() (*Source, error) {
	return LoadSource(bytes.NewReader(builtinYAML))
})

// Builtin returns the embedded catalog source. The returned value is shared,
// callers must not modify it.
func Builtin() (*Source, error) {
	return builtinSource()
}

// Open resolves a shelf source name: SourceBuiltin or a path to a YAML file.
func Open(name string) (*Source, error) {
	if name == SourceBuiltin {
		return Builtin()
	}
	return LoadFile(name)
}
