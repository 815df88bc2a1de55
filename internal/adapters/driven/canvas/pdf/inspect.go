package pdf

import (
	"bytes"
	"fmt"
	"io"
	"regexp"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"golang.org/x/text/encoding/charmap"

	"github.com/custodia-labs/podreport/internal/core/domain"
	"github.com/custodia-labs/podreport/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.DocumentReader = (*Reader)(nil)

// Reader reads reports written by this package.
type Reader struct{}

// NewReader creates a PDF reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read validates data and extracts its page text.
func (r *Reader) Read(data []byte) (*domain.DocumentInfo, error) {
	return Inspect(data)
}

// showText matches a literal string shown with Tj.
var showText = regexp.MustCompile(`\(((?:\\.|[^\\)])*)\)\s*Tj`)

// Inspect validates a PDF and extracts the text runs of each page. It
// understands the single-byte text runs this package writes, not
// arbitrary PDFs.
func Inspect(data []byte) (*domain.DocumentInfo, error) {
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		return nil, fmt.Errorf("read pdf: %w", err)
	}

	info := &domain.DocumentInfo{Pages: ctx.PageCount}
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
		if err != nil {
			return nil, fmt.Errorf("page %d content: %w", pageNr, err)
		}
		var content []byte
		if r != nil {
			if content, err = io.ReadAll(r); err != nil {
				return nil, fmt.Errorf("page %d content: %w", pageNr, err)
			}
		}
		info.PageTexts = append(info.PageTexts, pageStrings(content))
	}
	return info, nil
}

func pageStrings(content []byte) []string {
	var out []string
	dec := charmap.Windows1252.NewDecoder()
	for _, m := range showText.FindAllSubmatch(content, -1) {
		raw := unescape(m[1])
		s, err := dec.Bytes(raw)
		if err != nil {
			s = raw
		}
		out = append(out, string(s))
	}
	return out
}

// unescape resolves PDF literal string escapes.
func unescape(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] != '\\' || i+1 == len(b) {
			out = append(out, b[i])
			continue
		}
		i++
		switch c := b[i]; c {
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		case 'b':
			out = append(out, '\b')
		case 'f':
			out = append(out, '\f')
		case '0', '1', '2', '3', '4', '5', '6', '7':
			v := 0
			n := 0
			for ; n < 3 && i < len(b) && b[i] >= '0' && b[i] <= '7'; n++ {
				v = v*8 + int(b[i]-'0')
				i++
			}
			i--
			out = append(out, byte(v))
		default:
			out = append(out, c)
		}
	}
	return out
}
