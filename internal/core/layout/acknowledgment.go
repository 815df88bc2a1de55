package layout

import (
	"fmt"

	"github.com/custodia-labs/podreport/internal/core/ports/driven"
)

// Acknowledgment records the handover: keys at each stage and the
// customer's confirmation at delivery. Inspectors' notes follow as Note
// sections.
type Acknowledgment struct {
	KeysCollected string
	KeysDelivered string

	Statement string
	Confirmed bool
}

const (
	ackRowH   = 6.0
	ackLabelW = 30.0
)

// Name identifies the section.
func (a *Acknowledgment) Name() string { return "acknowledgment" }

func (a *Acknowledgment) statementLines(m driven.Measurer, width float64) []string {
	return wrapText(m, a.Statement, width-MarkSize-4, driven.FontRegular, sizeBody)
}

// EstimateHeight sums the title, key row and statement box.
func (a *Acknowledgment) EstimateHeight(m driven.Measurer, width float64) float64 {
	lh := lineHeight(sizeBody)
	h := titleHeight + ackRowH
	h += max(float64(len(a.statementLines(m, width)))*lh, MarkSize) + 3
	return h
}

// Render draws the acknowledgment block.
func (a *Acknowledgment) Render(c driven.Canvas, x, y, width float64) float64 {
	lh := lineHeight(sizeBody)
	y = sectionTitle(c, x, y, width, "Handover")

	c.SetFont(driven.FontBold, sizeBody)
	c.Text(x+1, y, ackLabelW-1, ackRowH, "Keys", driven.AlignLeft)
	c.SetFont(driven.FontRegular, sizeBody)
	c.Text(x+ackLabelW, y, width-ackLabelW, ackRowH,
		fmt.Sprintf("Collection: %s    Delivery: %s", a.KeysCollected, a.KeysDelivered), driven.AlignLeft)
	y += ackRowH

	lines := a.statementLines(c, width)
	boxH := max(float64(len(lines))*lh, MarkSize) + 2
	fill, ink := colorAlertShade, colorAlert
	if a.Confirmed {
		fill, ink = colorOKShade, colorOK
	}
	c.SetFillColor(fill)
	c.Rect(x, y, width, boxH, driven.DrawFill)
	Checkbox(c, x+1.5, y+1, a.Confirmed)
	c.SetTextColor(ink)
	c.SetFont(driven.FontRegular, sizeBody)
	paragraph(c, lines, x+MarkSize+4, y+1, width-MarkSize-4, lh, false)
	c.SetTextColor(colorInk)
	return y + boxH + 1
}
