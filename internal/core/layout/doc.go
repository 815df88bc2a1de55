// Package layout turns report content into positioned drawing calls.
//
// Each report block is a Section: it can estimate its own height from
// text metrics alone and render itself at a cursor, returning the cursor
// it leaves behind. Sections never decide page breaks. Compose walks an
// ordered list of sections, moves any section that would not fit to a
// new page and stamps the header and footer chrome on each page.
//
// The package draws only through driven.Canvas, so the same sections
// produce a PDF or a recorded list of drawing operations for tests.
package layout
