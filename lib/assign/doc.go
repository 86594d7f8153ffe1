// Package assign implements the deterministic display assignments of dShelf.
// Every function is a pure function of its string input built on
// util.HashString32, so results are identical across calls, processes and
// machines.
//
// Key Components:
//
//   - Library: picks a reference library for a book title. This is the only
//     function with failure modes (empty title, empty library set).
//
//   - PixelOffset / RotationAngle: place a checkout stamp. Both return values
//     in [-8, 8]; the axis (or the "rotation" suffix) is appended to the date
//     label before hashing so the values diverge.
//
//   - DisplayFont: picks one of the Fonts() stacks for a date label.
//
//   - ColorClass: maps the stamp colour palette to CSS classes.
//
// Usage Example:
//
//	lib, err := assign.Library("Circe", libraries)
//	if errors.Is(err, shelf.ErrInvalidInput) {
//	  // render an empty state
//	}
//	stamp := assign.NewStamp("JAN 15 2019")
package assign
