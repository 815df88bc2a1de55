package domain

import "strings"

// DocumentInfo describes a finished report read back from its bytes.
type DocumentInfo struct {
	Pages int `json:"pages"`

	// PageTexts holds the text runs of each page in drawing order.
	PageTexts [][]string `json:"pageTexts"`
}

// Text returns every text run of every page, one per line.
func (d *DocumentInfo) Text() string {
	var sb strings.Builder
	for _, page := range d.PageTexts {
		for _, s := range page {
			sb.WriteString(s)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Contains reports whether any text run contains substr.
func (d *DocumentInfo) Contains(substr string) bool {
	for _, page := range d.PageTexts {
		for _, s := range page {
			if strings.Contains(s, substr) {
				return true
			}
		}
	}
	return false
}

// PageContains reports whether the given 1-based page shows substr.
func (d *DocumentInfo) PageContains(page int, substr string) bool {
	if page < 1 || page > len(d.PageTexts) {
		return false
	}
	for _, s := range d.PageTexts[page-1] {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}
