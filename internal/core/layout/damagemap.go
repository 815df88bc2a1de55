package layout

import (
	"strconv"

	"github.com/custodia-labs/podreport/internal/core/ports/driven"
)

// MapMarker is a numbered damage point on one view of the vehicle.
// X and Y are percentages of the view's bounding box.
type MapMarker struct {
	Number int
	X, Y   float64
	New    bool
}

// MapView is one outline with the markers recorded against it.
type MapView struct {
	Label   string
	Markers []MapMarker
}

// DamageMap draws the vehicle views side by side and places each marker
// by its percentage position, so the drawing is independent of the
// resolution the marker was captured at.
type DamageMap struct {
	Views []MapView
}

const (
	mapGap     = 3.0
	mapBoxH    = 28.0
	mapLabelH  = 4.5
	mapLegendH = 5.0
	mapMarkerR = 1.9
)

// Name identifies the section.
func (d *DamageMap) Name() string { return "damage-map" }

// EstimateHeight returns the fixed map height.
func (d *DamageMap) EstimateHeight(driven.Measurer, float64) float64 {
	return mapBoxH + mapLabelH + mapLegendH
}

// Render draws each view box, its markers, its label and the legend.
func (d *DamageMap) Render(c driven.Canvas, x, y, width float64) float64 {
	n := len(d.Views)
	if n > 0 {
		boxW := (width - mapGap*float64(n-1)) / float64(n)
		for i, v := range d.Views {
			bx := x + float64(i)*(boxW+mapGap)
			d.drawView(c, v, bx, y, boxW)
		}
	}
	y += mapBoxH + mapLabelH

	lx := x
	c.SetFont(driven.FontRegular, sizeSmall)
	c.SetTextColor(colorMuted)
	c.SetFillColor(colorAlert)
	c.Circle(lx+mapMarkerR, y+mapLegendH/2, mapMarkerR-0.4, driven.DrawFill)
	c.Text(lx+2*mapMarkerR+1.5, y, 30, mapLegendH, "New at delivery", driven.AlignLeft)
	lx += 40
	c.SetDrawColor(colorInk)
	c.SetLineWidth(0.25)
	c.Circle(lx+mapMarkerR, y+mapLegendH/2, mapMarkerR-0.4, driven.DrawOutline)
	c.Text(lx+2*mapMarkerR+1.5, y, 40, mapLegendH, "Recorded at collection", driven.AlignLeft)
	c.SetTextColor(colorInk)
	return y + mapLegendH
}

func (d *DamageMap) drawView(c driven.Canvas, v MapView, bx, by, bw float64) {
	c.SetDrawColor(colorRule)
	c.SetLineWidth(0.2)
	c.Rect(bx, by, bw, mapBoxH, driven.DrawOutline)

	// Body outline, inset from the box.
	c.SetFillColor(colorRowShade)
	c.Rect(bx+bw*0.12, by+mapBoxH*0.2, bw*0.76, mapBoxH*0.6, driven.DrawFillOutline)

	// Keep markers fully inside the box at 0% and 100%.
	ix, iw := bx+mapMarkerR+0.3, bw-2*(mapMarkerR+0.3)
	iy, ih := by+mapMarkerR+0.3, mapBoxH-2*(mapMarkerR+0.3)
	for _, m := range v.Markers {
		mx := ix + clampPct(m.X)/100*iw
		my := iy + clampPct(m.Y)/100*ih
		c.SetFont(driven.FontBold, 5.5)
		if m.New {
			c.SetFillColor(colorAlert)
			c.Circle(mx, my, mapMarkerR, driven.DrawFill)
			c.SetTextColor(colorWhite)
		} else {
			c.SetFillColor(colorWhite)
			c.SetDrawColor(colorInk)
			c.SetLineWidth(0.25)
			c.Circle(mx, my, mapMarkerR, driven.DrawFillOutline)
			c.SetTextColor(colorInk)
		}
		c.Text(mx-mapMarkerR, my-mapMarkerR, 2*mapMarkerR, 2*mapMarkerR, strconv.Itoa(m.Number), driven.AlignCenter)
	}

	c.SetTextColor(colorMuted)
	c.SetFont(driven.FontRegular, sizeSmall)
	c.Text(bx, by+mapBoxH, bw, mapLabelH, fitText(c, v.Label, bw, driven.FontRegular, sizeSmall), driven.AlignCenter)
	c.SetTextColor(colorInk)
}

func clampPct(v float64) float64 {
	return min(max(v, 0), 100)
}
