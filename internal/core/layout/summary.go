package layout

import "github.com/custodia-labs/podreport/internal/core/ports/driven"

// Field is one label/value pair in a two-column block.
type Field struct {
	Label string
	Value string
}

// Summary prints job and vehicle details in two columns. Values wrap
// within their column; each row is as tall as its taller side.
type Summary struct {
	Title string
	Left  []Field
	Right []Field
}

const (
	summaryColumnGap = 6.0
	summaryLabelW    = 30.0
	summaryPad       = 1.0

	// summaryValueLines caps a value; longer values end in "...".
	summaryValueLines = 3
)

// Name identifies the section.
func (s *Summary) Name() string { return "summary" }

func (s *Summary) valueWidth(width float64) float64 {
	return (width-summaryColumnGap)/2 - summaryLabelW
}

func (s *Summary) rowLines(m driven.Measurer, width float64, i int) (left, right []string) {
	vw := s.valueWidth(width)
	wrap := func(v string) []string {
		lines := wrapText(m, v, vw, driven.FontRegular, sizeBody)
		return clampLines(m, lines, summaryValueLines, vw, driven.FontRegular, sizeBody)
	}
	if i < len(s.Left) {
		left = wrap(s.Left[i].Value)
	}
	if i < len(s.Right) {
		right = wrap(s.Right[i].Value)
	}
	return left, right
}

func (s *Summary) rows() int {
	return max(len(s.Left), len(s.Right))
}

func rowHeight(lines ...[]string) float64 {
	n := 1
	for _, l := range lines {
		n = max(n, len(l))
	}
	return float64(n)*lineHeight(sizeBody) + 2*summaryPad
}

// EstimateHeight sums the title and every row.
func (s *Summary) EstimateHeight(m driven.Measurer, width float64) float64 {
	h := titleHeight
	for i := 0; i < s.rows(); i++ {
		l, r := s.rowLines(m, width, i)
		h += rowHeight(l, r)
	}
	return h
}

// Render draws the rows with alternating shading.
func (s *Summary) Render(c driven.Canvas, x, y, width float64) float64 {
	y = sectionTitle(c, x, y, width, s.Title)
	colW := (width - summaryColumnGap) / 2
	lh := lineHeight(sizeBody)

	for i := 0; i < s.rows(); i++ {
		left, right := s.rowLines(c, width, i)
		h := rowHeight(left, right)
		if i%2 == 1 {
			c.SetFillColor(colorRowShade)
			c.Rect(x, y, width, h, driven.DrawFill)
		}
		for col, fields := range [][]Field{s.Left, s.Right} {
			if i >= len(fields) {
				continue
			}
			lines := left
			if col == 1 {
				lines = right
			}
			cx := x + float64(col)*(colW+summaryColumnGap)
			c.SetTextColor(colorMuted)
			c.SetFont(driven.FontBold, sizeBody)
			c.Text(cx+summaryPad, y+summaryPad, summaryLabelW-summaryPad, lh,
				fitText(c, fields[i].Label, summaryLabelW-summaryPad, driven.FontBold, sizeBody), driven.AlignLeft)
			c.SetTextColor(colorInk)
			c.SetFont(driven.FontRegular, sizeBody)
			paragraph(c, lines, cx+summaryLabelW, y+summaryPad, s.valueWidth(width), lh, false)
		}
		y += h
	}
	return y
}
