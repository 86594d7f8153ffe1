// Package shelf defines the data model shared by every other package of dShelf:
// books, their checkout records, the reference libraries and the tab names.
//
// The package focuses on:
//   - Plain data types that serialize to JSON, YAML and GOB without adapters
//   - A unified error type (Error) with return codes, matching the two failure
//     kinds of library assignment plus the catalog integrity failure
//
// Key Components:
//
//   - Book / CheckoutRecord / Category: The catalog records as declared in a
//     catalog source. Book.Library holds the short code of the assigned library
//     and is filled in by the catalog index when the source leaves it empty.
//
//   - Library: A fixed reference institution. DefaultLibrary is the fallback
//     printed on a card whose library code is unknown.
//
//   - Error / RetCode: Structured errors. Use errors.Is with the Err* sentinels
//     to test for a specific code.
//
// All types are values without behaviour beyond small helpers and are safe to
// share between goroutines as long as nobody mutates them, which the catalog
// index guarantees after construction.
package shelf
