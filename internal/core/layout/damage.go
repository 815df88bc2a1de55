package layout

import (
	"fmt"
	"strconv"

	"github.com/custodia-labs/podreport/internal/core/ports/driven"
)

// DamageItem is one damage marker, already formatted for print.
type DamageItem struct {
	Number   int
	Location string
	Kind     string
	Size     string
	Note     string
	Photos   int

	// New marks damage first recorded at delivery.
	New bool
}

// DamageHeading introduces a group of damage entries.
type DamageHeading struct {
	Text string
	New  bool
}

const damageHeadingH = 7.0

// Name identifies the section.
func (h *DamageHeading) Name() string { return "damage-heading" }

// EstimateHeight returns the fixed heading height.
func (h *DamageHeading) EstimateHeight(driven.Measurer, float64) float64 { return damageHeadingH }

// Render draws the group heading with a coloured tab.
func (h *DamageHeading) Render(c driven.Canvas, x, y, width float64) float64 {
	ink := colorMuted
	if h.New {
		ink = colorAlert
	}
	c.SetFillColor(ink)
	c.Rect(x, y+1, 2, damageHeadingH-2, driven.DrawFill)
	c.SetTextColor(ink)
	c.SetFont(driven.FontBold, sizeHeading)
	c.Text(x+4, y+0.5, width-4, damageHeadingH-1, fitText(c, h.Text, width-4, driven.FontBold, sizeHeading), driven.AlignLeft)
	c.SetTextColor(colorInk)
	return y + damageHeadingH
}

// DamageEntry is a single damage row. Each entry is its own section so
// a long list breaks between rows, never through one. An entry whose
// note is longer than a page is cut into continued parts by Split.
type DamageEntry struct {
	Item DamageItem

	lines []string
	part  int
}

const (
	damageBadgeW = 10.0
	damageLineH  = 4.5
	damagePad    = 1.2
)

// Name identifies the section.
func (e *DamageEntry) Name() string {
	name := "damage:" + strconv.Itoa(e.Item.Number)
	if e.part > 1 {
		name += "#" + strconv.Itoa(e.part)
	}
	return name
}

func (e *DamageEntry) noteLines(m driven.Measurer, width float64) []string {
	if e.lines != nil {
		return e.lines
	}
	return wrapText(m, e.Item.Note, width-damageBadgeW-2, driven.FontItalic, sizeBody)
}

// EstimateHeight returns the summary line plus the wrapped note.
func (e *DamageEntry) EstimateHeight(m driven.Measurer, width float64) float64 {
	return damageLineH + float64(len(e.noteLines(m, width)))*lineHeight(sizeBody) + 2*damagePad
}

// Render draws the numbered badge, the details line and the note. New
// damage gets a red tab, tint and "NEW" tag; carried damage is plain.
func (e *DamageEntry) Render(c driven.Canvas, x, y, width float64) float64 {
	it := e.Item
	lines := e.noteLines(c, width)
	h := e.EstimateHeight(c, width)

	tab := colorMuted
	if it.New {
		tab = colorAlert
		c.SetFillColor(colorAlertShade)
		c.Rect(x, y, width, h, driven.DrawFill)
	}
	c.SetFillColor(tab)
	c.Rect(x, y, 1.2, h, driven.DrawFill)

	cx := x + damageBadgeW/2 + 1
	cy := y + damagePad + damageLineH/2
	if it.New {
		c.SetFillColor(colorAlert)
		c.Circle(cx, cy, 2.3, driven.DrawFill)
		c.SetTextColor(colorWhite)
	} else {
		c.SetDrawColor(colorInk)
		c.SetLineWidth(0.25)
		c.Circle(cx, cy, 2.3, driven.DrawOutline)
		c.SetTextColor(colorInk)
	}
	c.SetFont(driven.FontBold, sizeSmall)
	c.Text(cx-2.3, cy-2.3, 4.6, 4.6, strconv.Itoa(it.Number), driven.AlignCenter)

	tx := x + damageBadgeW + 2
	tw := width - damageBadgeW - 2
	ty := y + damagePad

	tagW := 0.0
	if it.New {
		tagW = 11
		c.SetFillColor(colorAlert)
		c.Rect(x+width-tagW, ty+0.4, tagW-1, damageLineH-0.8, driven.DrawFill)
		c.SetTextColor(colorWhite)
		c.SetFont(driven.FontBold, sizeSmall)
		c.Text(x+width-tagW, ty, tagW-1, damageLineH, "NEW", driven.AlignCenter)
	}

	detail := fmt.Sprintf("%s  -  %s, %s  -  %s", it.Location, it.Kind, it.Size, photoCount(it.Photos))
	if e.part > 1 {
		detail = "(continued)"
	}
	c.SetTextColor(colorInk)
	c.SetFont(driven.FontBold, sizeBody)
	c.Text(tx, ty, tw-tagW, damageLineH, fitText(c, detail, tw-tagW, driven.FontBold, sizeBody), driven.AlignLeft)

	c.SetFont(driven.FontItalic, sizeBody)
	paragraph(c, lines, tx, ty+damageLineH, tw, lineHeight(sizeBody), false)
	c.SetTextColor(colorInk)
	return y + h
}

// Split cuts the note between lines into parts no taller than
// maxHeight. Every part repeats the badge; later parts are marked as
// continued.
func (e *DamageEntry) Split(m driven.Measurer, width, maxHeight float64) []Section {
	lines := e.noteLines(m, width)
	per := max(int((maxHeight-damageLineH-2*damagePad-estimateSlack)/lineHeight(sizeBody)), 1)
	if len(lines) <= per {
		return []Section{e}
	}
	var parts []Section
	for i := 0; i < len(lines); i += per {
		parts = append(parts, &DamageEntry{
			Item:  e.Item,
			lines: lines[i:min(i+per, len(lines))],
			part:  len(parts) + 1,
		})
	}
	return parts
}

func photoCount(n int) string {
	if n == 1 {
		return "1 photo"
	}
	return fmt.Sprintf("%d photos", n)
}

// DamageBanner affirms that no damage was recorded, so an empty group is
// never left blank.
type DamageBanner struct {
	Text string
}

const damageBannerH = 9.0

// Name identifies the section.
func (b *DamageBanner) Name() string { return "damage-banner" }

// EstimateHeight returns the fixed banner height.
func (b *DamageBanner) EstimateHeight(driven.Measurer, float64) float64 { return damageBannerH }

// Render draws a tinted box with a ticked checkbox and the affirmation.
func (b *DamageBanner) Render(c driven.Canvas, x, y, width float64) float64 {
	c.SetFillColor(colorOKShade)
	c.SetDrawColor(colorOK)
	c.SetLineWidth(0.3)
	c.Rect(x, y+0.5, width, damageBannerH-1, driven.DrawFillOutline)
	Checkbox(c, x+3, y+(damageBannerH-MarkSize)/2, true)
	c.SetTextColor(colorOK)
	c.SetFont(driven.FontBold, sizeHeading)
	c.Text(x+3+MarkSize+3, y+0.5, width-MarkSize-8, damageBannerH-1,
		fitText(c, b.Text, width-MarkSize-8, driven.FontBold, sizeHeading), driven.AlignLeft)
	c.SetTextColor(colorInk)
	return y + damageBannerH
}

// TextLine is a single line of body text.
type TextLine struct {
	Text string
	Bold bool
}

const textLineH = 5.0

// Name identifies the section.
func (t *TextLine) Name() string { return "text" }

// EstimateHeight returns the fixed line height.
func (t *TextLine) EstimateHeight(driven.Measurer, float64) float64 { return textLineH }

// Render draws the line, shortened to fit.
func (t *TextLine) Render(c driven.Canvas, x, y, width float64) float64 {
	style := driven.FontRegular
	if t.Bold {
		style = driven.FontBold
	}
	c.SetFont(style, sizeBody)
	c.SetTextColor(colorInk)
	c.Text(x+1, y, width-1, textLineH, fitText(c, t.Text, width-1, style, sizeBody), driven.AlignLeft)
	return y + textLineH
}
