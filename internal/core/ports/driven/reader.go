package driven

import "github.com/custodia-labs/podreport/internal/core/domain"

// DocumentReader reads a finished report back for checking.
type DocumentReader interface {
	// Read validates the document and extracts its page text.
	Read(data []byte) (*domain.DocumentInfo, error)
}
