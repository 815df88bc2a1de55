package layout

import "github.com/custodia-labs/podreport/internal/core/ports/driven"

// RadioGroup prints N mutually exclusive options side by side, with the
// selected option filled. Selected is -1 when nothing was recorded.
type RadioGroup struct {
	Label    string
	Options  []string
	Selected int
}

const (
	radioLabelW = 42.0
	radioRowH   = 6.5
)

// Name identifies the section.
func (g *RadioGroup) Name() string { return "radio:" + g.Label }

// EstimateHeight returns the fixed row height.
func (g *RadioGroup) EstimateHeight(driven.Measurer, float64) float64 { return radioRowH }

// Render draws the label and one radio button per option.
func (g *RadioGroup) Render(c driven.Canvas, x, y, width float64) float64 {
	c.SetTextColor(colorInk)
	c.SetFont(driven.FontBold, sizeBody)
	c.Text(x+1, y, radioLabelW-1, radioRowH, fitText(c, g.Label, radioLabelW-2, driven.FontBold, sizeBody), driven.AlignLeft)

	if len(g.Options) == 0 {
		return y + radioRowH
	}
	slot := (width - radioLabelW) / float64(len(g.Options))
	markY := y + (radioRowH-MarkSize)/2
	c.SetFont(driven.FontRegular, sizeBody)
	for i, opt := range g.Options {
		ox := x + radioLabelW + float64(i)*slot
		RadioButton(c, ox, markY, i == g.Selected)
		textW := slot - MarkSize - 1.5
		c.Text(ox+MarkSize+1, y, textW, radioRowH, fitText(c, opt, textW, driven.FontRegular, sizeBody), driven.AlignLeft)
	}
	return y + radioRowH
}

// ReadingsTable prints numeric readings at both stages and their difference.
type ReadingsTable struct {
	Rows []ReadingRow
}

// ReadingRow is one reading, already formatted for print.
type ReadingRow struct {
	Label      string
	Collection string
	Delivery   string
	Difference string
}

const readingsRowH = 5.5

// Name identifies the section.
func (t *ReadingsTable) Name() string { return "readings" }

// EstimateHeight returns the heading plus one fixed row per reading.
func (t *ReadingsTable) EstimateHeight(driven.Measurer, float64) float64 {
	return readingsRowH*float64(len(t.Rows)+1) + 1.5
}

// Render draws the readings grid.
func (t *ReadingsTable) Render(c driven.Canvas, x, y, width float64) float64 {
	colW := (width - radioLabelW) / 3
	heads := []string{"Collection", "Delivery", "Difference"}

	c.SetFont(driven.FontBold, sizeBody)
	c.SetTextColor(colorMuted)
	for i, h := range heads {
		c.Text(x+radioLabelW+float64(i)*colW, y, colW, readingsRowH, h, driven.AlignCenter)
	}
	y += readingsRowH

	for i, r := range t.Rows {
		if i%2 == 0 {
			c.SetFillColor(colorRowShade)
			c.Rect(x, y, width, readingsRowH, driven.DrawFill)
		}
		c.SetTextColor(colorInk)
		c.SetFont(driven.FontBold, sizeBody)
		c.Text(x+1, y, radioLabelW-1, readingsRowH, r.Label, driven.AlignLeft)
		c.SetFont(driven.FontRegular, sizeBody)
		for j, v := range []string{r.Collection, r.Delivery, r.Difference} {
			c.Text(x+radioLabelW+float64(j)*colW, y, colW, readingsRowH, v, driven.AlignCenter)
		}
		y += readingsRowH
	}
	return y + 1.5
}
