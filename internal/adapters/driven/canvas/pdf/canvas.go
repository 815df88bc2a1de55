package pdf

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/custodia-labs/podreport/internal/core/domain"
	"github.com/custodia-labs/podreport/internal/core/ports/driven"
)

// Ensure Canvas and Factory implement the interfaces.
var (
	_ driven.Canvas        = (*Canvas)(nil)
	_ driven.CanvasFactory = (*Factory)(nil)
)

const (
	fontFamily = "Helvetica"
	pageAlias  = "{nb}"
	creator    = "podreport"
)

// Canvas draws onto a single fpdf document using the core Helvetica
// faces. Text is transcoded to Windows-1252; characters outside it
// print as a replacement.
type Canvas struct {
	doc       *fpdf.Fpdf
	translate func(string) string
	width     float64
	height    float64

	style driven.FontStyle
	size  float64
}

// NewCanvas creates a portrait document in millimetres with automatic
// page breaks disabled; the caller decides where pages end.
func NewCanvas(opts driven.CanvasOptions) (*Canvas, error) {
	size := opts.PageSize
	if !size.IsValid() {
		size = domain.PageA4
	}
	w, h := size.Dimensions()

	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: w, Ht: h},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetCellMargin(0)
	doc.SetAutoPageBreak(false, 0)
	doc.AliasNbPages(pageAlias)
	doc.SetCatalogSort(true)
	if opts.CreatedAt.IsZero() {
		opts.CreatedAt = time.Unix(0, 0).UTC()
	}
	doc.SetCreationDate(opts.CreatedAt)
	doc.SetModificationDate(opts.CreatedAt)
	doc.SetCreator(creator, true)
	doc.SetProducer(creator, true)
	if opts.Title != "" {
		doc.SetTitle(opts.Title, true)
	}
	if opts.Author != "" {
		doc.SetAuthor(opts.Author, true)
	}
	if opts.Subject != "" {
		doc.SetSubject(opts.Subject, true)
	}

	c := &Canvas{
		doc:       doc,
		translate: doc.UnicodeTranslatorFromDescriptor(""),
		width:     w,
		height:    h,
	}
	c.SetFont(driven.FontRegular, 10)
	if err := doc.Error(); err != nil {
		return nil, fmt.Errorf("init pdf: %w", err)
	}
	return c, nil
}

// StringWidth measures text in millimetres. The current font is
// restored afterwards so measuring never changes what is drawn next.
func (c *Canvas) StringWidth(text string, style driven.FontStyle, size float64) float64 {
	if style == c.style && size == c.size {
		return c.doc.GetStringWidth(c.translate(text))
	}
	c.doc.SetFont(fontFamily, string(style), size)
	w := c.doc.GetStringWidth(c.translate(text))
	c.doc.SetFont(fontFamily, string(c.style), c.size)
	return w
}

// PageSize returns the page dimensions in millimetres.
func (c *Canvas) PageSize() (float64, float64) { return c.width, c.height }

// AddPage starts a new page.
func (c *Canvas) AddPage() {
	c.doc.AddPage()
	c.doc.SetFont(fontFamily, string(c.style), c.size)
}

// PageNo returns the current page number.
func (c *Canvas) PageNo() int { return c.doc.PageNo() }

// TotalPagesAlias returns the token fpdf replaces with the page count.
func (c *Canvas) TotalPagesAlias() string { return pageAlias }

// SetFont selects the face and size for subsequent text.
func (c *Canvas) SetFont(style driven.FontStyle, size float64) {
	c.style, c.size = style, size
	c.doc.SetFont(fontFamily, string(style), size)
}

// SetTextColor sets the text colour.
func (c *Canvas) SetTextColor(rgb driven.RGB) { c.doc.SetTextColor(rgb.R, rgb.G, rgb.B) }

// SetFillColor sets the fill colour.
func (c *Canvas) SetFillColor(rgb driven.RGB) { c.doc.SetFillColor(rgb.R, rgb.G, rgb.B) }

// SetDrawColor sets the outline colour.
func (c *Canvas) SetDrawColor(rgb driven.RGB) { c.doc.SetDrawColor(rgb.R, rgb.G, rgb.B) }

// SetLineWidth sets the outline width.
func (c *Canvas) SetLineWidth(w float64) { c.doc.SetLineWidth(w) }

// Text draws one line in the box, vertically centred. Justified text is
// stretched with word spacing so the line stays a single text run.
func (c *Canvas) Text(x, y, w, h float64, text string, align driven.Align) {
	if text == "" {
		return
	}
	s := c.translate(text)
	c.doc.SetXY(x, y)
	if align != driven.AlignJustify {
		c.doc.CellFormat(w, h, s, "", 0, string(align), false, 0, "")
		return
	}
	gaps := strings.Count(s, " ")
	extra := w - c.doc.GetStringWidth(s)
	if gaps == 0 || extra <= 0 {
		c.doc.CellFormat(w, h, s, "", 0, string(driven.AlignLeft), false, 0, "")
		return
	}
	c.doc.SetWordSpacing(extra / float64(gaps))
	c.doc.CellFormat(w, h, s, "", 0, string(driven.AlignLeft), false, 0, "")
	c.doc.SetWordSpacing(0)
}

// Rect draws a rectangle.
func (c *Canvas) Rect(x, y, w, h float64, style driven.DrawStyle) {
	c.doc.Rect(x, y, w, h, string(style))
}

// Circle draws a circle centred on (x, y).
func (c *Canvas) Circle(x, y, r float64, style driven.DrawStyle) {
	c.doc.Circle(x, y, r, string(style))
}

// Line draws a straight line.
func (c *Canvas) Line(x1, y1, x2, y2 float64) {
	c.doc.Line(x1, y1, x2, y2)
}

// Image registers the image under name on first use and draws it scaled
// to fit the box, keeping its aspect ratio. An image fpdf cannot parse
// is reported and leaves the document unchanged.
func (c *Canvas) Image(name string, img *domain.SignatureImage, x, y, w, h float64) error {
	if img == nil || len(img.Data) == 0 {
		return fmt.Errorf("image %s: no data", name)
	}
	if err := c.doc.Error(); err != nil {
		return err
	}
	opts := fpdf.ImageOptions{ImageType: string(img.Format)}
	info := c.doc.RegisterImageOptionsReader(name, opts, bytes.NewReader(img.Data))
	if err := c.doc.Error(); err != nil {
		// fpdf keeps the first error and refuses all later output. A
		// failed registration stores nothing, so the document stays usable.
		c.doc.ClearError()
		return fmt.Errorf("image %s: %w", name, err)
	}
	iw, ih := info.Extent()
	if iw > 0 && ih > 0 {
		scale := min(w/iw, h/ih)
		dw, dh := iw*scale, ih*scale
		x += (w - dw) / 2
		y += (h - dh) / 2
		w, h = dw, dh
	}
	c.doc.ImageOptions(name, x, y, w, h, false, opts, 0, "")
	return c.doc.Error()
}

// Output writes the finished PDF.
func (c *Canvas) Output(w io.Writer) error {
	if err := c.doc.Error(); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	if err := c.doc.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// Factory creates a new PDF canvas per document.
type Factory struct{}

// NewFactory creates a PDF canvas factory.
func NewFactory() *Factory {
	return &Factory{}
}

// NewCanvas creates a fresh document.
func (f *Factory) NewCanvas(opts driven.CanvasOptions) (driven.Canvas, error) {
	return NewCanvas(opts)
}
