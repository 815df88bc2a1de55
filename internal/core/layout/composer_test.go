package layout

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/podreport/internal/adapters/driven/canvas/memory"
	"github.com/custodia-labs/podreport/internal/core/domain"
	"github.com/custodia-labs/podreport/internal/core/ports/driven"
)

// block is a fixed-height section that fills its box and can be told
// to draw more than it estimates.
type block struct {
	name  string
	h     float64
	extra float64
}

func (b *block) Name() string { return b.name }

func (b *block) EstimateHeight(driven.Measurer, float64) float64 { return b.h }

func (b *block) Render(c driven.Canvas, x, y, width float64) float64 {
	c.Rect(x, y, width, b.h+b.extra, driven.DrawFill)
	c.Text(x, y, width, 4, b.name, driven.AlignLeft)
	return y + b.h + b.extra
}

func blocks(heights ...float64) []Section {
	out := make([]Section, len(heights))
	for i, h := range heights {
		out[i] = &block{name: fmt.Sprintf("block-%d", i), h: h}
	}
	return out
}

func testChrome() Chrome {
	return Chrome{
		Header: &Header{Data: HeaderData{Company: "Acme", Title: "Report", JobNumber: "J1", Registration: "R1"}},
		Footer: &Footer{RegistrationLine: "Registered in England", Contact: []string{"ops@example.com"}},
	}
}

// A4 content area with the test chrome.
const (
	a4Top    = MarginTop + SectionGap + headerHeight
	a4Bottom = 297 - MarginBottom - footerHeight - SectionGap
)

func TestCompose_SinglePage(t *testing.T) {
	c := newTestCanvas()

	doc, err := Compose(c, testChrome(), blocks(20, 30, 40))

	require.NoError(t, err)
	assert.Equal(t, 1, doc.Pages)
	assert.Equal(t, 1, c.PageNo())
	require.Len(t, doc.Placements, 3)
	assert.InDelta(t, a4Top, doc.UsableTop, tolerance)
	assert.InDelta(t, a4Bottom, doc.UsableBottom, tolerance)
	assert.InDelta(t, a4Top, doc.Placements[0].Top, tolerance)
	assert.InDelta(t, a4Top+20+SectionGap, doc.Placements[1].Top, tolerance)
}

func TestCompose_BreaksBetweenSections(t *testing.T) {
	c := newTestCanvas()

	doc, err := Compose(c, testChrome(), blocks(100, 100, 100))

	require.NoError(t, err)
	assert.Equal(t, 2, doc.Pages)
	pages := []int{}
	for _, p := range doc.Placements {
		pages = append(pages, p.Page)
	}
	assert.Equal(t, []int{1, 1, 2}, pages)
	assert.InDelta(t, a4Top, doc.Placements[2].Top, tolerance, "moved section starts at the top of the new page")
}

func TestCompose_ExactFit(t *testing.T) {
	c := newTestCanvas()

	doc, err := Compose(c, testChrome(), blocks(a4Bottom-a4Top))

	require.NoError(t, err)
	assert.Equal(t, 1, doc.Pages)
	assert.InDelta(t, a4Bottom, doc.Placements[0].Bottom, tolerance)
}

func TestCompose_PlacementsNeverOverlap(t *testing.T) {
	c := newTestCanvas()
	heights := []float64{12, 55, 80, 7, 120, 33, 200, 9, 9, 9, 64, 150, 41}

	doc, err := Compose(c, testChrome(), blocks(heights...))

	require.NoError(t, err)
	require.Len(t, doc.Placements, len(heights))
	for i, p := range doc.Placements {
		assert.GreaterOrEqual(t, p.Top, doc.UsableTop-tolerance, p.Name)
		assert.LessOrEqual(t, p.Bottom, doc.UsableBottom+tolerance, p.Name)
		assert.InDelta(t, heights[i], p.Bottom-p.Top, tolerance)
		if i == 0 {
			continue
		}
		prev := doc.Placements[i-1]
		if prev.Page == p.Page {
			assert.GreaterOrEqual(t, p.Top, prev.Bottom+SectionGap-tolerance)
		} else {
			assert.Equal(t, prev.Page+1, p.Page)
			assert.Greater(t, prev.Bottom+SectionGap+heights[i], doc.UsableBottom, "page broken without need")
		}
	}
}

func TestCompose_ChromeOnEveryPage(t *testing.T) {
	c := newTestCanvas()

	doc, err := Compose(c, testChrome(), blocks(200, 200, 200))

	require.NoError(t, err)
	require.Equal(t, 3, doc.Pages)
	for p := 1; p <= doc.Pages; p++ {
		texts := c.PageTexts(p)
		assert.Contains(t, texts, "Acme", "page %d", p)
		assert.Contains(t, texts, fmt.Sprintf("Page %d of %s", p, memory.PageAlias), "page %d", p)
		assert.Contains(t, texts, "Registered in England", "page %d", p)
		assert.Contains(t, texts, "ops@example.com", "page %d", p)
	}

	var out bytes.Buffer
	require.NoError(t, c.Output(&out))
	assert.Contains(t, out.String(), `"Page 3 of 3"`)
}

func TestCompose_ContentStaysOffChrome(t *testing.T) {
	c := newTestCanvas()

	doc, err := Compose(c, testChrome(), blocks(90, 90, 90, 90, 90))
	require.NoError(t, err)

	_, pageH := c.PageSize()
	footerTop := pageH - MarginBottom - footerHeight
	for _, op := range c.Ops() {
		_, y1, _, y2 := op.Bounds()
		inHeader := y1 >= MarginTop-tolerance && y2 <= MarginTop+headerHeight+tolerance
		inFooter := y1 >= footerTop-tolerance && y2 <= footerTop+footerHeight+tolerance
		inContent := y1 >= doc.UsableTop-tolerance && y2 <= doc.UsableBottom+tolerance
		assert.True(t, inHeader || inFooter || inContent, "%s %q at %.2f-%.2f on page %d", op.Kind, op.Text, y1, y2, op.Page)
	}
}

func TestCompose_WithoutChrome(t *testing.T) {
	c := newTestCanvas()

	doc, err := Compose(c, Chrome{}, blocks(10))

	require.NoError(t, err)
	assert.InDelta(t, MarginTop+SectionGap, doc.UsableTop, tolerance)
	assert.InDelta(t, 297-MarginBottom-SectionGap, doc.UsableBottom, tolerance)
	assert.Equal(t, []string{"block-0"}, c.Texts())
}

func TestCompose_LetterPage(t *testing.T) {
	c := memory.NewCanvas(driven.CanvasOptions{PageSize: domain.PageLetter})

	doc, err := Compose(c, testChrome(), blocks(10))

	require.NoError(t, err)
	assert.InDelta(t, 279.4-MarginBottom-footerHeight-SectionGap, doc.UsableBottom, tolerance)
}

func TestCompose_SectionTooTall(t *testing.T) {
	tests := []struct {
		name     string
		sections []Section
	}{
		{name: "only section", sections: blocks(a4Bottom - a4Top + 0.5)},
		{name: "later section", sections: blocks(10, 20, 400)},
		{name: "panel with fixed tail", sections: []Section{NewPanel("fixed", "Title", &block{name: "tall", h: 300})}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCanvas()

			doc, err := Compose(c, testChrome(), tt.sections)

			assert.ErrorIs(t, err, ErrSectionTooTall)
			assert.Nil(t, doc)
			assert.Equal(t, 0, c.PageNo(), "nothing drawn before the check")
			assert.Empty(t, c.Ops())
		})
	}
}

func TestCompose_EstimateExceeded(t *testing.T) {
	c := newTestCanvas()
	sections := []Section{
		&block{name: "fine", h: 10},
		&block{name: "liar", h: 10, extra: 0.5},
	}

	doc, err := Compose(c, testChrome(), sections)

	require.ErrorIs(t, err, ErrEstimateExceeded)
	assert.Nil(t, doc)
	assert.Contains(t, err.Error(), "liar")
}

func TestCompose_NoSections(t *testing.T) {
	c := newTestCanvas()

	doc, err := Compose(c, testChrome(), nil)

	require.NoError(t, err)
	assert.Equal(t, 1, doc.Pages, "an empty document still has one page of chrome")
	assert.Empty(t, doc.Placements)
}

func TestCompose_RealSections(t *testing.T) {
	c := newTestCanvas()
	sections := testSections()[2:]
	for i := 0; i < 30; i++ {
		sections = append(sections, &DamageEntry{Item: DamageItem{Number: i + 1, Location: "Roof", Kind: "Chip", Size: "Small", Note: longNote, New: i%2 == 0}})
	}

	doc, err := Compose(c, testChrome(), sections)

	require.NoError(t, err)
	assert.Greater(t, doc.Pages, 1)
	assert.Len(t, doc.Placements, len(sections))
	for _, p := range doc.Placements {
		assert.LessOrEqual(t, p.Bottom, doc.UsableBottom+tolerance, p.Name)
	}
}

func TestCompose_SplitsLongText(t *testing.T) {
	c := newTestCanvas()
	sections := []Section{
		&block{name: "before", h: 20},
		&Note{Key: "notes-delivery", Label: "Delivery notes", Text: hugeNote},
		NewPanel("damage-new", "", &DamageHeading{Text: "New damage at delivery (1)", New: true},
			&DamageEntry{Item: DamageItem{Number: 1, Location: "Roof", Kind: "Dent", Size: "Small", Note: hugeNote}}),
		&block{name: "after", h: 10},
	}

	doc, err := Compose(c, testChrome(), sections)

	require.NoError(t, err)
	assert.Greater(t, doc.Pages, 4)
	names := map[string]bool{}
	for _, p := range doc.Placements {
		names[p.Name] = true
		assert.LessOrEqual(t, p.Bottom, doc.UsableBottom+tolerance, p.Name)
		assert.GreaterOrEqual(t, p.Top, doc.UsableTop-tolerance, p.Name)
	}
	for _, want := range []string{"before", "notes-delivery", "notes-delivery#2", "damage-new", "damage:1#2", "after"} {
		assert.True(t, names[want], want)
	}
	assert.Equal(t, "after", doc.Placements[len(doc.Placements)-1].Name)
	assert.True(t, c.HasText("(continued)"))
}

func TestCompose_FittingSplitterIsNotSplit(t *testing.T) {
	c := newTestCanvas()
	note := &Note{Key: "notes-delivery", Label: "Delivery notes", Text: longNote}

	doc, err := Compose(c, testChrome(), []Section{note})

	require.NoError(t, err)
	require.Len(t, doc.Placements, 1)
	assert.Equal(t, "notes-delivery", doc.Placements[0].Name)
}
