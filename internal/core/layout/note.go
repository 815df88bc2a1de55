package layout

import (
	"strconv"
	"strings"

	"github.com/custodia-labs/podreport/internal/core/ports/driven"
)

// Note is a labelled block of free text such as an inspector's notes.
// The label sits in a narrow left column and the text wraps beside it.
type Note struct {
	Key   string
	Label string
	Text  string

	// Empty is printed when Text is blank.
	Empty string

	lines []string
	part  int
}

const (
	noteLabelW = 30.0
	notePad    = 1.0
)

// Name identifies the section, numbering continuation parts.
func (n *Note) Name() string {
	if n.part > 1 {
		return n.Key + "#" + strconv.Itoa(n.part)
	}
	return n.Key
}

func (n *Note) wrapped(m driven.Measurer, width float64) []string {
	if n.lines != nil {
		return n.lines
	}
	text := n.Text
	if strings.TrimSpace(text) == "" {
		text = n.Empty
	}
	return wrapText(m, text, width-noteLabelW, driven.FontRegular, sizeBody)
}

func (n *Note) labelRows() int {
	if n.part > 1 {
		return 2
	}
	return 1
}

// EstimateHeight returns one line per wrapped line of text.
func (n *Note) EstimateHeight(m driven.Measurer, width float64) float64 {
	rows := max(len(n.wrapped(m, width)), n.labelRows())
	return float64(rows)*lineHeight(sizeBody) + notePad
}

// Render draws the label and the text.
func (n *Note) Render(c driven.Canvas, x, y, width float64) float64 {
	lh := lineHeight(sizeBody)
	c.SetFont(driven.FontBold, sizeBody)
	c.SetTextColor(colorMuted)
	c.Text(x+1, y, noteLabelW-1, lh, fitText(c, n.Label, noteLabelW-2, driven.FontBold, sizeBody), driven.AlignLeft)
	if n.part > 1 {
		c.SetFont(driven.FontItalic, sizeSmall)
		c.Text(x+1, y+lh, noteLabelW-1, lh, "(continued)", driven.AlignLeft)
	}
	c.SetFont(driven.FontRegular, sizeBody)
	c.SetTextColor(colorInk)
	paragraph(c, n.wrapped(c, width), x+noteLabelW, y, width-noteLabelW, lh, false)
	return y + n.EstimateHeight(c, width)
}

// Split cuts the text between lines into parts no taller than
// maxHeight. Later parts repeat the label marked as continued.
func (n *Note) Split(m driven.Measurer, width, maxHeight float64) []Section {
	lines := n.wrapped(m, width)
	per := max(int((maxHeight-notePad-estimateSlack)/lineHeight(sizeBody)), 2)
	if len(lines) <= per {
		return []Section{n}
	}
	var parts []Section
	for i := 0; i < len(lines); i += per {
		parts = append(parts, &Note{
			Key:   n.Key,
			Label: n.Label,
			lines: lines[i:min(i+per, len(lines))],
			part:  len(parts) + 1,
		})
	}
	return parts
}
