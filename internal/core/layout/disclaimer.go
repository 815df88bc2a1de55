package layout

import "github.com/custodia-labs/podreport/internal/core/ports/driven"

// Disclaimer prints fixed legal text, justified.
type Disclaimer struct {
	Title string
	Text  string
}

// Name identifies the section.
func (d *Disclaimer) Name() string { return "disclaimer" }

func (d *Disclaimer) lines(m driven.Measurer, width float64) []string {
	return wrapText(m, d.Text, width, driven.FontRegular, sizeSmall)
}

// EstimateHeight returns the title plus the wrapped text.
func (d *Disclaimer) EstimateHeight(m driven.Measurer, width float64) float64 {
	return titleHeight + float64(len(d.lines(m, width)))*lineHeight(sizeSmall) + 1
}

// Render draws the title and the justified body.
func (d *Disclaimer) Render(c driven.Canvas, x, y, width float64) float64 {
	y = sectionTitle(c, x, y, width, d.Title)
	c.SetFont(driven.FontRegular, sizeSmall)
	c.SetTextColor(colorMuted)
	y = paragraph(c, d.lines(c, width), x, y, width, lineHeight(sizeSmall), true)
	c.SetTextColor(colorInk)
	return y + 1
}
