package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/podreport/internal/core/ports/driven"
)

func TestInspect_NotAPDF(t *testing.T) {
	_, err := Inspect([]byte("not a pdf"))
	assert.Error(t, err)
}

func TestReader_Read(t *testing.T) {
	data := render(t, func(c *Canvas) {
		c.AddPage()
		c.Text(10, 10, 100, 6, "Handover", driven.AlignLeft)
	})

	info, err := NewReader().Read(data)

	require.NoError(t, err)
	assert.Equal(t, 1, info.Pages)
	assert.True(t, info.Contains("Handover"))
}

func TestPageStrings(t *testing.T) {
	content := []byte("BT 10 20 Td (Job J1) Tj ET\nBT 1 2 Td (a \\(b\\) c) Tj ET\n0.5 Tw BT 1 2 Td (x) Tj ET")

	assert.Equal(t, []string{"Job J1", "a (b) c", "x"}, pageStrings(content))
	assert.Empty(t, pageStrings(nil))
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: `plain`, want: "plain"},
		{in: `\(x\)`, want: "(x)"},
		{in: `a\\b`, want: `a\b`},
		{in: `line\nbreak`, want: "line\nbreak"},
		{in: `\353`, want: "\xeb"},
		{in: `\53x`, want: "+x"},
		{in: `trailing\`, want: `trailing\`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, string(unescape([]byte(tt.in))))
		})
	}
}
