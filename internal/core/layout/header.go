package layout

import (
	"fmt"

	"github.com/custodia-labs/podreport/internal/core/ports/driven"
)

// HeaderData is the branding and identification stamped on every page.
type HeaderData struct {
	Company      string
	Title        string
	JobNumber    string
	Registration string
	Reference    string
	GeneratedAt  string
}

// Header is the page chrome at the top of every page.
type Header struct {
	Data HeaderData
}

const headerHeight = 21.0

// Name identifies the section.
func (h *Header) Name() string { return "header" }

// EstimateHeight returns the fixed header height.
func (h *Header) EstimateHeight(driven.Measurer, float64) float64 { return headerHeight }

// Render draws the accent bar, brand line, job line and reference line.
func (h *Header) Render(c driven.Canvas, x, y, width float64) float64 {
	d := h.Data

	c.SetFillColor(colorAccent)
	c.Rect(x, y, width, 1.2, driven.DrawFill)

	half := width / 2
	row := y + 2.5
	c.SetTextColor(colorAccent)
	c.SetFont(driven.FontBold, sizeBrand)
	c.Text(x, row, half, 7, fitText(c, d.Company, half, driven.FontBold, sizeBrand), driven.AlignLeft)
	c.SetFont(driven.FontBold, sizeTitle)
	c.Text(x+half, row, half, 7, fitText(c, d.Title, half, driven.FontBold, sizeTitle), driven.AlignRight)

	row += 7.5
	c.SetTextColor(colorInk)
	c.SetFont(driven.FontBold, sizeBody)
	c.Text(x, row, half, 4.5, fmt.Sprintf("Job %s  |  Reg %s", d.JobNumber, d.Registration), driven.AlignLeft)
	c.SetFont(driven.FontRegular, sizeBody)
	c.Text(x+half, row, half, 4.5, "Generated "+d.GeneratedAt, driven.AlignRight)

	row += 4.5
	c.SetTextColor(colorMuted)
	c.SetFont(driven.FontRegular, sizeSmall)
	c.Text(x, row, half, 4, "Report ref "+d.Reference, driven.AlignLeft)
	c.Text(x+half, row, half, 4, fmt.Sprintf("Page %d of %s", c.PageNo(), c.TotalPagesAlias()), driven.AlignRight)

	c.SetDrawColor(colorRule)
	c.SetLineWidth(0.2)
	c.Line(x, y+headerHeight-0.5, x+width, y+headerHeight-0.5)
	c.SetTextColor(colorInk)
	return y + headerHeight
}
