// Package catalog builds the read-only book catalog index that backs every
// tab of the shelf.
//
// A catalog starts as a Source: the declared categories, the books currently
// being read and the reading queue, plus the reference libraries and the
// form number base. Sources are read from YAML (LoadSource, LoadFile) or taken
// from the embedded builtin catalog (Builtin). Open resolves a shelf source
// name to one of the two.
//
// NewIndex turns a Source into an ICatalog:
//
//   - All books are flattened in "All" order: each category in declaration
//     order, then "Currently Reading", then "Queue".
//   - Every book without an explicit library code gets one assigned from its
//     title (see package assign). The source itself is never modified.
//   - The collection of every tab is precomputed, including its form number
//     generator and accessibility label.
//   - The index refuses to build if any book ends up without a category or a
//     library, so a served catalog always passes Verify.
//
// Form numbers:
//
//   - Category tab with declaration index i: FormNumberBase+i followed by the
//     position within the tab ("760", "761", ... for the first category).
//   - "Currently Reading": "CR1", "CR2", ...
//   - "Queue": "Q1", "Q2", ...
//   - "All": the global position is routed to the segment it falls in and
//     numbered by that segment's rule.
//   - Unknown tabs: FormNumberBase followed by the position.
//
// The index is immutable after construction and safe for concurrent use.
//
// Usage:
//
//	src, err := catalog.Open(catalog.SourceBuiltin)
//	if err != nil {
//		// handle error
//	}
//	idx, err := catalog.NewIndex(src)
//	if err != nil {
//		// handle error
//	}
//	fiction := idx.BooksForTab("Fiction")
//	for i, b := range fiction.Books {
//		fmt.Println(fiction.FormNumber(i), b)
//	}
package catalog
