package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageSize(t *testing.T) {
	tests := []struct {
		size  PageSize
		valid bool
		w, h  float64
	}{
		{PageA4, true, 210, 297},
		{PageLetter, true, 215.9, 279.4},
		{"a4", false, 210, 297},
		{"", false, 210, 297},
	}

	for _, tt := range tests {
		t.Run(string(tt.size), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.size.IsValid())
			w, h := tt.size.Dimensions()
			assert.Equal(t, tt.w, w)
			assert.Equal(t, tt.h, h)
			assert.Equal(t, string(tt.size), tt.size.String())
		})
	}
}

func TestDefaultReportSettings(t *testing.T) {
	s := DefaultReportSettings()

	assert.NotEmpty(t, s.Company.Name)
	assert.NotEmpty(t, s.Company.RegistrationLine)
	assert.Equal(t, "Vehicle Condition Report", s.Title)
	assert.Equal(t, DefaultDisclaimer, s.Disclaimer)
	assert.Equal(t, PageA4, s.PageSize)
	assert.Empty(t, s.Company.Address)
}

func TestDefaultReportSettings_Independent(t *testing.T) {
	a := DefaultReportSettings()
	a.Title = "changed"

	assert.Equal(t, "Vehicle Condition Report", DefaultReportSettings().Title)
}
