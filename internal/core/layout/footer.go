package layout

import (
	"strings"

	"github.com/custodia-labs/podreport/internal/core/ports/driven"
)

// Footer is the page chrome at the bottom of every page. It carries no
// page-specific content, so every page prints it identically.
type Footer struct {
	RegistrationLine string
	Contact          []string
}

const footerHeight = 9.0

// Name identifies the section.
func (f *Footer) Name() string { return "footer" }

// EstimateHeight returns the fixed footer height.
func (f *Footer) EstimateHeight(driven.Measurer, float64) float64 { return footerHeight }

// Render draws a rule, the registration line and the contact line.
func (f *Footer) Render(c driven.Canvas, x, y, width float64) float64 {
	c.SetDrawColor(colorRule)
	c.SetLineWidth(0.2)
	c.Line(x, y+0.5, x+width, y+0.5)

	c.SetTextColor(colorMuted)
	c.SetFont(driven.FontRegular, sizeSmall)
	c.Text(x, y+1.5, width, 3.5, fitText(c, f.RegistrationLine, width, driven.FontRegular, sizeSmall), driven.AlignCenter)

	var parts []string
	for _, p := range f.Contact {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) > 0 {
		line := strings.Join(parts, "  |  ")
		c.Text(x, y+5, width, 3.5, fitText(c, line, width, driven.FontRegular, sizeSmall), driven.AlignCenter)
	}
	c.SetTextColor(colorInk)
	return y + footerHeight
}
