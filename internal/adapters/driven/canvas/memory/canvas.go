package memory

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/custodia-labs/podreport/internal/core/domain"
	"github.com/custodia-labs/podreport/internal/core/ports/driven"
)

// Ensure Canvas and Factory implement the interfaces.
var (
	_ driven.Canvas        = (*Canvas)(nil)
	_ driven.CanvasFactory = (*Factory)(nil)
)

// PageAlias is replaced by the page count in recorded text on Output.
const PageAlias = "{nb}"

const ptToMM = 25.4 / 72

// OpKind names a recorded drawing call.
type OpKind string

// Recorded drawing calls.
const (
	OpText   OpKind = "text"
	OpRect   OpKind = "rect"
	OpCircle OpKind = "circle"
	OpLine   OpKind = "line"
	OpImage  OpKind = "image"
)

// Op is one drawing call. Circles are stored by their bounding box and
// lines by their end points as (X, Y) and (X+W, Y+H).
type Op struct {
	Page  int
	Kind  OpKind
	X, Y  float64
	W, H  float64
	Text  string
	Align driven.Align
	Style driven.DrawStyle
	Font  driven.FontStyle
	Fill  driven.RGB
	Ink   driven.RGB
}

// Bounds returns the normalised box covered by the op.
func (o Op) Bounds() (x1, y1, x2, y2 float64) {
	x1, x2 = o.X, o.X+o.W
	y1, y2 = o.Y, o.Y+o.H
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	return x1, y1, x2, y2
}

// Canvas is an in-memory implementation of driven.Canvas for testing.
// It records every drawing call with the page it landed on and measures
// text with a fixed per-character advance.
type Canvas struct {
	opts   driven.CanvasOptions
	width  float64
	height float64

	page  int
	font  driven.FontStyle
	size  float64
	text  driven.RGB
	fill  driven.RGB
	draw  driven.RGB
	line  float64
	ops   []Op
	names map[string]bool
}

// NewCanvas creates an empty canvas with the page size from opts.
func NewCanvas(opts driven.CanvasOptions) *Canvas {
	if !opts.PageSize.IsValid() {
		opts.PageSize = domain.PageA4
	}
	w, h := opts.PageSize.Dimensions()
	return &Canvas{
		opts:   opts,
		width:  w,
		height: h,
		size:   10,
		line:   0.2,
		names:  make(map[string]bool),
	}
}

// Options returns the options the canvas was created with.
func (c *Canvas) Options() driven.CanvasOptions { return c.opts }

// StringWidth approximates text width: half an em per character, a
// little wider for bold faces.
func (c *Canvas) StringWidth(text string, style driven.FontStyle, size float64) float64 {
	advance := 0.5
	if strings.Contains(string(style), "B") {
		advance = 0.55
	}
	return float64(len([]rune(text))) * advance * size * ptToMM
}

// PageSize returns the page dimensions in millimetres.
func (c *Canvas) PageSize() (float64, float64) { return c.width, c.height }

// AddPage starts a new page.
func (c *Canvas) AddPage() { c.page++ }

// PageNo returns the current page, 0 before the first AddPage.
func (c *Canvas) PageNo() int { return c.page }

// TotalPagesAlias returns PageAlias.
func (c *Canvas) TotalPagesAlias() string { return PageAlias }

// SetFont selects the face and size used for subsequent text.
func (c *Canvas) SetFont(style driven.FontStyle, size float64) {
	c.font, c.size = style, size
}

// SetTextColor sets the text colour.
func (c *Canvas) SetTextColor(rgb driven.RGB) { c.text = rgb }

// SetFillColor sets the fill colour.
func (c *Canvas) SetFillColor(rgb driven.RGB) { c.fill = rgb }

// SetDrawColor sets the outline colour.
func (c *Canvas) SetDrawColor(rgb driven.RGB) { c.draw = rgb }

// SetLineWidth sets the outline width.
func (c *Canvas) SetLineWidth(w float64) { c.line = w }

// Text records a text call.
func (c *Canvas) Text(x, y, w, h float64, text string, align driven.Align) {
	c.ops = append(c.ops, Op{
		Page: c.page, Kind: OpText, X: x, Y: y, W: w, H: h,
		Text: text, Align: align, Font: c.font, Ink: c.text,
	})
}

// Rect records a rectangle.
func (c *Canvas) Rect(x, y, w, h float64, style driven.DrawStyle) {
	c.ops = append(c.ops, Op{
		Page: c.page, Kind: OpRect, X: x, Y: y, W: w, H: h,
		Style: style, Fill: c.fill, Ink: c.draw,
	})
}

// Circle records a circle by its bounding box.
func (c *Canvas) Circle(x, y, r float64, style driven.DrawStyle) {
	c.ops = append(c.ops, Op{
		Page: c.page, Kind: OpCircle, X: x - r, Y: y - r, W: 2 * r, H: 2 * r,
		Style: style, Fill: c.fill, Ink: c.draw,
	})
}

// Line records a straight line.
func (c *Canvas) Line(x1, y1, x2, y2 float64) {
	c.ops = append(c.ops, Op{
		Page: c.page, Kind: OpLine, X: x1, Y: y1, W: x2 - x1, H: y2 - y1, Ink: c.draw,
	})
}

// Image records an image placement. Empty image data is rejected the way
// a real backend rejects an undecodable image.
func (c *Canvas) Image(name string, img *domain.SignatureImage, x, y, w, h float64) error {
	if img == nil || len(img.Data) == 0 {
		return fmt.Errorf("image %q: no data", name)
	}
	c.names[name] = true
	c.ops = append(c.ops, Op{Page: c.page, Kind: OpImage, X: x, Y: y, W: w, H: h, Text: name})
	return nil
}

// Output writes one line per recorded op, with the page alias resolved.
func (c *Canvas) Output(w io.Writer) error {
	total := fmt.Sprint(c.page)
	for _, op := range c.ops {
		text := strings.ReplaceAll(op.Text, PageAlias, total)
		if _, err := fmt.Fprintf(w, "%d %s %.2f %.2f %.2f %.2f %q\n", op.Page, op.Kind, op.X, op.Y, op.W, op.H, text); err != nil {
			return err
		}
	}
	return nil
}

// Ops returns the recorded drawing calls.
func (c *Canvas) Ops() []Op {
	out := make([]Op, len(c.ops))
	copy(out, c.ops)
	return out
}

// Texts returns every recorded string in drawing order.
func (c *Canvas) Texts() []string {
	var out []string
	for _, op := range c.ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

// PageTexts returns the strings drawn on one page.
func (c *Canvas) PageTexts(page int) []string {
	var out []string
	for _, op := range c.ops {
		if op.Kind == OpText && op.Page == page {
			out = append(out, op.Text)
		}
	}
	return out
}

// HasText reports whether any drawn string contains substr.
func (c *Canvas) HasText(substr string) bool {
	for _, t := range c.Texts() {
		if strings.Contains(t, substr) {
			return true
		}
	}
	return false
}

// Factory creates recording canvases and remembers them.
type Factory struct {
	mu       sync.Mutex
	canvases []*Canvas
}

// NewFactory creates a canvas factory for tests.
func NewFactory() *Factory {
	return &Factory{}
}

// NewCanvas creates and remembers a new canvas.
func (f *Factory) NewCanvas(opts driven.CanvasOptions) (driven.Canvas, error) {
	c := NewCanvas(opts)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.canvases = append(f.canvases, c)
	return c, nil
}

// Last returns the most recently created canvas, or nil.
func (f *Factory) Last() *Canvas {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.canvases) == 0 {
		return nil
	}
	return f.canvases[len(f.canvases)-1]
}

// Count returns how many canvases were created.
func (f *Factory) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.canvases)
}
