package layout

import (
	"errors"
	"fmt"

	"github.com/custodia-labs/podreport/internal/core/ports/driven"
	"github.com/custodia-labs/podreport/internal/logger"
)

var (
	// ErrSectionTooTall is returned when a section cannot fit on an empty
	// page. It means the page constants are wrong, not the input.
	ErrSectionTooTall = errors.New("section taller than usable page height")

	// ErrEstimateExceeded is returned when a section draws below its own
	// height estimate.
	ErrEstimateExceeded = errors.New("section rendered past its height estimate")
)

// estimateSlack absorbs floating point noise when comparing a rendered
// cursor with its estimate.
const estimateSlack = 1e-6

// Chrome is drawn on every page: the header at the top margin and the
// footer against the bottom margin.
type Chrome struct {
	Header Section
	Footer Section
}

// Placement records where a section was drawn.
type Placement struct {
	Name   string
	Page   int
	Top    float64
	Bottom float64
}

// Layout describes a composed document.
type Layout struct {
	Pages      int
	Placements []Placement

	// UsableTop and UsableBottom bound the content area of every page.
	UsableTop    float64
	UsableBottom float64
}

// Compose draws sections in order across as many pages as needed. A
// section is moved whole to a fresh page when it does not fit in the
// space left; it is never split across pages. A Splitter taller than a
// whole page is first cut into page-sized parts. Every section is
// checked against the usable page height before anything is drawn.
func Compose(c driven.Canvas, chrome Chrome, sections []Section) (*Layout, error) {
	pageW, pageH := c.PageSize()
	width := pageW - MarginLeft - MarginRight

	top := MarginTop + SectionGap
	if chrome.Header != nil {
		top += chrome.Header.EstimateHeight(c, width)
	}
	footerH := 0.0
	if chrome.Footer != nil {
		footerH = chrome.Footer.EstimateHeight(c, width)
	}
	bottom := pageH - MarginBottom - footerH - SectionGap
	capacity := bottom - top

	sections, estimates, err := fitPage(c, width, capacity, sections)
	if err != nil {
		return nil, err
	}

	out := &Layout{UsableTop: top, UsableBottom: bottom}
	var y float64
	newPage := func() {
		c.AddPage()
		out.Pages++
		if chrome.Header != nil {
			chrome.Header.Render(c, MarginLeft, MarginTop, width)
		}
		if chrome.Footer != nil {
			chrome.Footer.Render(c, MarginLeft, pageH-MarginBottom-footerH, width)
		}
		y = top
	}

	logger.Section("Layout")
	newPage()
	for i, s := range sections {
		est := estimates[i]
		if y+est > bottom {
			logger.Debug("page break before %s: %.1fmm left, needs %.1fmm", s.Name(), bottom-y, est)
			newPage()
		}
		next := s.Render(c, MarginLeft, y, width)
		if next-y > est+estimateSlack {
			return nil, fmt.Errorf("%w: %s drew %.2fmm, estimated %.2fmm", ErrEstimateExceeded, s.Name(), next-y, est)
		}
		out.Placements = append(out.Placements, Placement{Name: s.Name(), Page: c.PageNo(), Top: y, Bottom: next})
		logger.Debug("placed %s on page %d at %.1f-%.1f", s.Name(), c.PageNo(), y, next)
		y = next + SectionGap
	}
	logger.Info("composed %d sections on %d pages", len(sections), out.Pages)
	return out, nil
}

// fitPage estimates every section, cutting any Splitter taller than
// capacity into parts, and fails on a section that still cannot fit.
func fitPage(m driven.Measurer, width, capacity float64, sections []Section) ([]Section, []float64, error) {
	out := make([]Section, 0, len(sections))
	estimates := make([]float64, 0, len(sections))
	for _, s := range sections {
		est := s.EstimateHeight(m, width)
		if est <= capacity {
			out = append(out, s)
			estimates = append(estimates, est)
			continue
		}
		parts := []Section{s}
		if sp, ok := s.(Splitter); ok {
			parts = sp.Split(m, width, capacity)
			logger.Debug("split %s (%.1fmm) into %d parts", s.Name(), est, len(parts))
		}
		for _, p := range parts {
			pe := p.EstimateHeight(m, width)
			if pe > capacity {
				return nil, nil, fmt.Errorf("%w: %s needs %.1fmm, page has %.1fmm", ErrSectionTooTall, p.Name(), pe, capacity)
			}
			out = append(out, p)
			estimates = append(estimates, pe)
		}
	}
	return out, estimates, nil
}
