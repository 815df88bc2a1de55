package driven

import (
	"io"
	"time"

	"github.com/custodia-labs/podreport/internal/core/domain"
)

// RGB is a colour with 0-255 components.
type RGB struct {
	R, G, B int
}

// FontStyle selects a face of the report font.
type FontStyle string

// Font styles.
const (
	FontRegular    FontStyle = ""
	FontBold       FontStyle = "B"
	FontItalic     FontStyle = "I"
	FontBoldItalic FontStyle = "BI"
)

// Align positions text within its box.
type Align string

// Alignments. AlignJustify stretches a single line to the box width.
const (
	AlignLeft    Align = "L"
	AlignCenter  Align = "C"
	AlignRight   Align = "R"
	AlignJustify Align = "J"
)

// DrawStyle selects outline, fill or both for shapes.
type DrawStyle string

// Draw styles.
const (
	DrawOutline     DrawStyle = "D"
	DrawFill        DrawStyle = "F"
	DrawFillOutline DrawStyle = "FD"
)

// Measurer reports text metrics without drawing. Section height
// estimates depend only on this.
type Measurer interface {
	// StringWidth returns the width of text set in the given style and size (points).
	StringWidth(text string, style FontStyle, size float64) float64
}

// Canvas is a fixed-size page surface. All coordinates are millimetres
// from the top-left corner of the current page.
type Canvas interface {
	Measurer

	// PageSize returns the page width and height.
	PageSize() (width, height float64)

	// AddPage starts a new page and makes it current.
	AddPage()

	// PageNo returns the 1-based number of the current page.
	PageNo() int

	// TotalPagesAlias returns a token replaced by the final page count on output.
	TotalPagesAlias() string

	SetFont(style FontStyle, size float64)
	SetTextColor(c RGB)
	SetFillColor(c RGB)
	SetDrawColor(c RGB)
	SetLineWidth(width float64)

	// Text draws a single line of text in the box (x, y, w, h), vertically centred.
	Text(x, y, w, h float64, text string, align Align)

	Rect(x, y, w, h float64, style DrawStyle)
	Circle(x, y, r float64, style DrawStyle)
	Line(x1, y1, x2, y2 float64)

	// Image draws a decoded raster image scaled into the box (x, y, w, h).
	Image(name string, img *domain.SignatureImage, x, y, w, h float64) error

	// Output writes the finished document.
	Output(w io.Writer) error
}

// CanvasOptions configures a new canvas.
type CanvasOptions struct {
	PageSize domain.PageSize
	Title    string
	Author   string
	Subject  string

	// CreatedAt is embedded as the document creation and modification date.
	CreatedAt time.Time
}

// CanvasFactory creates a fresh canvas for each document.
type CanvasFactory interface {
	NewCanvas(opts CanvasOptions) (Canvas, error)
}
