package layout

import (
	"strings"

	"github.com/custodia-labs/podreport/internal/core/domain"
	"github.com/custodia-labs/podreport/internal/core/ports/driven"
)

// SignatureParty is one signatory. Image is nil when no signature was
// captured.
type SignatureParty struct {
	Role  string
	Name  string
	Date  string
	Image *domain.SignatureImage
}

// SignatureBlock prints two signatories side by side, the customer on
// the left and the company representative on the right.
type SignatureBlock struct {
	Title string
	Left  SignatureParty
	Right SignatureParty
}

const (
	sigGap    = 8.0
	sigRoleH  = 5.0
	sigBoxH   = 22.0
	sigLineH  = 4.5
	sigStampW = 26.0
	sigStampH = 4.5
)

// Name identifies the section.
func (s *SignatureBlock) Name() string { return "signatures:" + s.Title }

// EstimateHeight returns the fixed block height.
func (s *SignatureBlock) EstimateHeight(driven.Measurer, float64) float64 {
	return titleHeight + sigRoleH + sigBoxH + 1 + 2*sigLineH + 1
}

// Render draws both signatories.
func (s *SignatureBlock) Render(c driven.Canvas, x, y, width float64) float64 {
	y = sectionTitle(c, x, y, width, s.Title)
	colW := (width - sigGap) / 2
	s.drawParty(c, s.Left, x, y, colW)
	s.drawParty(c, s.Right, x+colW+sigGap, y, colW)
	return y + sigRoleH + sigBoxH + 1 + 2*sigLineH + 1
}

func (s *SignatureBlock) drawParty(c driven.Canvas, p SignatureParty, x, y, w float64) {
	c.SetTextColor(colorMuted)
	c.SetFont(driven.FontBold, sizeBody)
	c.Text(x, y, w, sigRoleH, fitText(c, p.Role, w, driven.FontBold, sizeBody), driven.AlignLeft)
	y += sigRoleH

	c.SetDrawColor(colorRule)
	c.SetLineWidth(0.2)
	c.Rect(x, y, w, sigBoxH, driven.DrawOutline)

	if p.Image != nil {
		name := imageName(s.Title, p.Role)
		if err := c.Image(name, p.Image, x+2, y+1.5, w-sigStampW-6, sigBoxH-3); err != nil {
			s.placeholder(c, x, y, w, "Signature could not be embedded")
		}
		c.SetDrawColor(colorOK)
		c.SetLineWidth(0.3)
		sx, sy := x+w-sigStampW-1.5, y+sigBoxH-sigStampH-1.5
		c.Rect(sx, sy, sigStampW, sigStampH, driven.DrawOutline)
		c.SetTextColor(colorOK)
		c.SetFont(driven.FontBold, sizeSmall)
		c.Text(sx, sy, sigStampW, sigStampH, "Digitally signed", driven.AlignCenter)
	} else {
		s.placeholder(c, x, y, w, "Not signed")
	}
	y += sigBoxH + 1

	c.SetDrawColor(colorInk)
	c.SetLineWidth(0.25)
	c.Line(x, y, x+w, y)

	name := p.Name
	if name == "" {
		name = "-"
	}
	c.SetTextColor(colorInk)
	c.SetFont(driven.FontBold, sizeBody)
	c.Text(x, y, w, sigLineH, fitText(c, "Name: "+name, w, driven.FontBold, sizeBody), driven.AlignLeft)
	c.SetFont(driven.FontRegular, sizeBody)
	date := p.Date
	if date == "" {
		date = "-"
	}
	c.Text(x, y+sigLineH, w, sigLineH, fitText(c, "Date: "+date, w, driven.FontRegular, sizeBody), driven.AlignLeft)
}

func (s *SignatureBlock) placeholder(c driven.Canvas, x, y, w float64, text string) {
	c.SetTextColor(colorMuted)
	c.SetFont(driven.FontItalic, sizeBody)
	c.Text(x, y, w, sigBoxH, text, driven.AlignCenter)
	c.SetTextColor(colorInk)
}

// imageName keys an embedded image by block and role so the same bytes
// under two roles stay distinct.
func imageName(title, role string) string {
	key := strings.ToLower(title + "-" + role)
	return "sig-" + strings.Join(strings.Fields(key), "-")
}
