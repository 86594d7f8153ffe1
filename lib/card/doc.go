// Package card projects catalog books onto library checkout cards.
//
// A Card holds everything a front end needs to draw the card of one book:
// the form number, the category and Dewey number printed in the header, a
// stamp row per checkout record (placement from package assign), the number of
// blank rows padding the card to MaxCheckoutRows, the optional quote and the
// lending library. Missing fields fall back to fixed values (FallbackCategory,
// FallbackDeweyNumber, shelf.DefaultLibrary), so projecting never fails.
//
// Render draws a card for a terminal with lipgloss.
package card
