package layout

import (
	"slices"

	"github.com/custodia-labs/podreport/internal/core/ports/driven"
)

// Section is one block of the report bound to the data it draws.
//
// EstimateHeight must never be less than the height Render consumes;
// the composer relies on it to keep every section on a single page.
// Render draws at the given cursor and returns the cursor it leaves
// behind. Sections never add pages.
type Section interface {
	Name() string
	EstimateHeight(m driven.Measurer, width float64) float64
	Render(c driven.Canvas, x, y, width float64) float64
}

// Splitter is a section made of lines that can be cut apart when it is
// taller than a whole page. Split returns parts in reading order, each
// no taller than maxHeight. The composer only splits sections that
// cannot fit on an empty page.
type Splitter interface {
	Section
	Split(m driven.Measurer, width, maxHeight float64) []Section
}

// Panel stacks child sections under an optional title so they are kept
// on the same page.
type Panel struct {
	Title    string
	Children []Section
	label    string
}

// NewPanel creates a titled panel. The name is used in layout logs.
func NewPanel(name, title string, children ...Section) *Panel {
	return &Panel{Title: title, Children: children, label: name}
}

// Name identifies the panel.
func (p *Panel) Name() string {
	if p.label != "" {
		return p.label
	}
	return "panel"
}

// EstimateHeight sums the title and the children.
func (p *Panel) EstimateHeight(m driven.Measurer, width float64) float64 {
	h := 0.0
	if p.Title != "" {
		h += titleHeight
	}
	for _, ch := range p.Children {
		h += ch.EstimateHeight(m, width)
	}
	return h
}

// Render draws the title then each child in turn.
func (p *Panel) Render(c driven.Canvas, x, y, width float64) float64 {
	if p.Title != "" {
		y = sectionTitle(c, x, y, width, p.Title)
	}
	for _, ch := range p.Children {
		y = ch.Render(c, x, y, width)
	}
	return y
}

// Split cuts the panel inside its last child when that child is a
// Splitter. The first part stays in the panel under its title.
func (p *Panel) Split(m driven.Measurer, width, maxHeight float64) []Section {
	if len(p.Children) == 0 {
		return []Section{p}
	}
	last, ok := p.Children[len(p.Children)-1].(Splitter)
	if !ok {
		return []Section{p}
	}
	head := p.EstimateHeight(m, width) - last.EstimateHeight(m, width)
	parts := last.Split(m, width, maxHeight-head)
	if len(parts) == 0 {
		return []Section{p}
	}
	children := append(slices.Clone(p.Children[:len(p.Children)-1]), parts[0])
	first := &Panel{Title: p.Title, Children: children, label: p.label}
	return append([]Section{first}, parts[1:]...)
}

// Spacer reserves vertical space.
type Spacer float64

// Name identifies the spacer.
func (Spacer) Name() string { return "spacer" }

// EstimateHeight returns the reserved height.
func (s Spacer) EstimateHeight(driven.Measurer, float64) float64 { return float64(s) }

// Render advances the cursor.
func (s Spacer) Render(_ driven.Canvas, _, y, _ float64) float64 { return y + float64(s) }
