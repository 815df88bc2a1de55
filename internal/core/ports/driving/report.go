package driving

import (
	"context"

	"github.com/custodia-labs/podreport/internal/core/domain"
)

// GenerateRequest carries everything needed to print one report.
type GenerateRequest struct {
	Collection *domain.InspectionSnapshot
	Delivery   *domain.InspectionSnapshot
	Job        domain.JobMeta
}

// ReportService turns a pair of snapshots into a condition report.
type ReportService interface {
	// Generate validates the request, compares the snapshots and returns
	// the finished document. No bytes are returned on error.
	Generate(ctx context.Context, req GenerateRequest) ([]byte, error)

	// Compare validates the stages and returns the comparison alone.
	Compare(ctx context.Context, collection, delivery *domain.InspectionSnapshot) (*domain.ComparisonResult, error)

	// Inspect reads a generated document back: page count and page text.
	Inspect(ctx context.Context, data []byte) (*domain.DocumentInfo, error)
}
