// Package sanitizer cleans HTML that ends up in table cells.
//
// Column HTML closures, markdown columns and result lines are produced by
// application code from row data, so they may carry user input. [SanitizeCell]
// keeps inline formatting, links and icon markup; [StripHTML] keeps text only.
package sanitizer
