package layout

import "github.com/custodia-labs/podreport/internal/core/ports/driven"

// Page frame in millimetres.
const (
	MarginLeft   = 12.0
	MarginRight  = 12.0
	MarginTop    = 10.0
	MarginBottom = 10.0

	// SectionGap separates consecutive sections on a page.
	SectionGap = 3.0
)

// Font sizes in points.
const (
	sizeBrand   = 14.0
	sizeTitle   = 11.0
	sizeHeading = 10.0
	sizeBody    = 8.5
	sizeSmall   = 7.0
)

const ptToMM = 25.4 / 72

// Palette.
var (
	colorInk        = driven.RGB{R: 33, G: 33, B: 33}
	colorMuted      = driven.RGB{R: 110, G: 110, B: 110}
	colorRule       = driven.RGB{R: 190, G: 190, B: 190}
	colorRowShade   = driven.RGB{R: 243, G: 245, B: 247}
	colorAccent     = driven.RGB{R: 20, G: 66, B: 114}
	colorWhite      = driven.RGB{R: 255, G: 255, B: 255}
	colorAlert      = driven.RGB{R: 176, G: 32, B: 32}
	colorAlertShade = driven.RGB{R: 253, G: 236, B: 236}
	colorOK         = driven.RGB{R: 24, G: 110, B: 60}
	colorOKShade    = driven.RGB{R: 232, G: 245, B: 236}
)

// lineHeight is the leading for a font size.
func lineHeight(size float64) float64 {
	return size * ptToMM * 1.4
}

// titleHeight is the space taken by a section title and its rule.
const titleHeight = 7.0

// sectionTitle draws a bold heading with a rule beneath and returns the
// cursor below it.
func sectionTitle(c driven.Canvas, x, y, width float64, title string) float64 {
	c.SetFont(driven.FontBold, sizeHeading)
	c.SetTextColor(colorAccent)
	c.Text(x, y, width, titleHeight-1.5, title, driven.AlignLeft)
	c.SetDrawColor(colorAccent)
	c.SetLineWidth(0.3)
	c.Line(x, y+titleHeight-1.2, x+width, y+titleHeight-1.2)
	c.SetTextColor(colorInk)
	return y + titleHeight
}
