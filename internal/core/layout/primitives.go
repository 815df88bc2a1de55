package layout

import "github.com/custodia-labs/podreport/internal/core/ports/driven"

// MarkSize is the edge of a checkbox and the diameter of a radio button.
const MarkSize = 3.2

// markInset is the gap between an outline and its filled interior.
const markInset = 0.75

// Checkbox draws a square outline with its top-left corner at (x, y).
// The interior is filled only when checked.
func Checkbox(c driven.Canvas, x, y float64, checked bool) {
	c.SetDrawColor(colorInk)
	c.SetLineWidth(0.25)
	c.Rect(x, y, MarkSize, MarkSize, driven.DrawOutline)
	if checked {
		c.SetFillColor(colorInk)
		c.Rect(x+markInset, y+markInset, MarkSize-2*markInset, MarkSize-2*markInset, driven.DrawFill)
	}
}

// RadioButton draws a circle outline inside the square at (x, y).
// The interior is filled only when selected.
func RadioButton(c driven.Canvas, x, y float64, selected bool) {
	r := MarkSize / 2
	c.SetDrawColor(colorInk)
	c.SetLineWidth(0.25)
	c.Circle(x+r, y+r, r, driven.DrawOutline)
	if selected {
		c.SetFillColor(colorInk)
		c.Circle(x+r, y+r, r-markInset, driven.DrawFill)
	}
}
