// Package analysis serves the canned "literary psychology" report shown next
// to a shelf. The report text is embedded, parsed once into an intro and
// headed sections, and completed with the owner and book statistics of the
// catalog it is generated for. Nothing is computed from the books themselves.
package analysis
