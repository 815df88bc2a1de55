// Package pdf implements driven.Canvas on go-pdf/fpdf and reads finished
// reports back with pdfcpu.
//
// Documents are reproducible: creation and modification dates come from
// the canvas options and resource catalogs are written in sorted order,
// so identical drawing calls give identical bytes.
package pdf
