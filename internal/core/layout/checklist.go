package layout

import "github.com/custodia-labs/podreport/internal/core/ports/driven"

// ChecklistRow is one item checked at both stages.
type ChecklistRow struct {
	Label      string
	Collection bool
	Delivery   bool
	Note       string
}

// Checklist is a table with two boolean columns per row, one per stage,
// drawn with alternating row shading.
type Checklist struct {
	Title string

	// ItemHeading names the first column, e.g. "Document".
	ItemHeading string

	Rows []ChecklistRow
}

const (
	checklistItemW  = 52.0
	checklistStageW = 24.0
	checklistHeadH  = 6.0

	// checklistNoteLines caps a row's note; longer notes end in "...".
	checklistNoteLines = 4
)

// Name identifies the section.
func (t *Checklist) Name() string { return "checklist:" + t.ItemHeading }

func (t *Checklist) noteWidth(width float64) float64 {
	return width - checklistItemW - 2*checklistStageW - 2
}

func (t *Checklist) rowHeight(m driven.Measurer, width float64, r ChecklistRow) (float64, []string) {
	nw := t.noteWidth(width)
	lines := wrapText(m, r.Note, nw, driven.FontRegular, sizeSmall)
	lines = clampLines(m, lines, checklistNoteLines, nw, driven.FontRegular, sizeSmall)
	h := max(float64(len(lines))*lineHeight(sizeSmall)+2, MarkSize+2.6)
	return h, lines
}

// EstimateHeight sums the title, the column headings and every row.
func (t *Checklist) EstimateHeight(m driven.Measurer, width float64) float64 {
	h := titleHeight + checklistHeadH
	for _, r := range t.Rows {
		rh, _ := t.rowHeight(m, width, r)
		h += rh
	}
	return h
}

// Render draws the heading row and the checklist rows.
func (t *Checklist) Render(c driven.Canvas, x, y, width float64) float64 {
	y = sectionTitle(c, x, y, width, t.Title)

	c.SetFillColor(colorAccent)
	c.Rect(x, y, width, checklistHeadH, driven.DrawFill)
	c.SetTextColor(colorWhite)
	c.SetFont(driven.FontBold, sizeBody)
	c.Text(x+1.5, y, checklistItemW-1.5, checklistHeadH, t.ItemHeading, driven.AlignLeft)
	c.Text(x+checklistItemW, y, checklistStageW, checklistHeadH, "Collection", driven.AlignCenter)
	c.Text(x+checklistItemW+checklistStageW, y, checklistStageW, checklistHeadH, "Delivery", driven.AlignCenter)
	c.Text(x+checklistItemW+2*checklistStageW+1, y, t.noteWidth(width), checklistHeadH, "Notes", driven.AlignLeft)
	y += checklistHeadH

	c.SetTextColor(colorInk)
	for i, r := range t.Rows {
		h, lines := t.rowHeight(c, width, r)
		if i%2 == 1 {
			c.SetFillColor(colorRowShade)
			c.Rect(x, y, width, h, driven.DrawFill)
		}
		c.SetFont(driven.FontRegular, sizeBody)
		c.Text(x+1.5, y+1, checklistItemW-1.5, MarkSize+0.6,
			fitText(c, r.Label, checklistItemW-2, driven.FontRegular, sizeBody), driven.AlignLeft)

		markY := y + 1.3
		Checkbox(c, x+checklistItemW+(checklistStageW-MarkSize)/2, markY, r.Collection)
		Checkbox(c, x+checklistItemW+checklistStageW+(checklistStageW-MarkSize)/2, markY, r.Delivery)

		c.SetFont(driven.FontRegular, sizeSmall)
		c.SetTextColor(colorMuted)
		paragraph(c, lines, x+checklistItemW+2*checklistStageW+1, y+1, t.noteWidth(width), lineHeight(sizeSmall), false)
		c.SetTextColor(colorInk)
		y += h
	}

	c.SetDrawColor(colorRule)
	c.SetLineWidth(0.2)
	c.Line(x, y, x+width, y)
	return y
}

// ChangeList prints one line per changed item, e.g. document status
// changes between collection and delivery.
type ChangeList struct {
	Title string
	Lines []string
}

// Name identifies the section.
func (l *ChangeList) Name() string { return "changes" }

// EstimateHeight sums the title and wrapped lines.
func (l *ChangeList) EstimateHeight(m driven.Measurer, width float64) float64 {
	n := 0
	for _, line := range l.Lines {
		n += max(1, len(wrapText(m, line, width-6, driven.FontRegular, sizeBody)))
	}
	return titleHeight + float64(n)*lineHeight(sizeBody) + 1
}

// Render draws each change prefixed with a marker bar.
func (l *ChangeList) Render(c driven.Canvas, x, y, width float64) float64 {
	y = sectionTitle(c, x, y, width, l.Title)
	lh := lineHeight(sizeBody)
	c.SetFont(driven.FontRegular, sizeBody)
	for _, line := range l.Lines {
		lines := wrapText(c, line, width-6, driven.FontRegular, sizeBody)
		if len(lines) == 0 {
			lines = []string{""}
		}
		c.SetFillColor(colorAlert)
		c.Rect(x+1, y+0.8, 1.2, float64(len(lines))*lh-1.6, driven.DrawFill)
		y = paragraph(c, lines, x+6, y, width-6, lh, false)
	}
	return y + 1
}
