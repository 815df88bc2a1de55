package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/podreport/internal/core/domain"
	"github.com/custodia-labs/podreport/internal/core/layout"
	"github.com/custodia-labs/podreport/internal/core/ports/driven"
	"github.com/custodia-labs/podreport/internal/core/ports/driving"
	"github.com/custodia-labs/podreport/internal/logger"
)

// Ensure ReportService implements the interface.
var _ driving.ReportService = (*ReportService)(nil)

// referenceSpace namespaces report references derived from job data.
var referenceSpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("podreport:report"))

// ReportService assembles condition reports. It holds no per-report
// state; every call builds its own canvas, so concurrent calls are safe.
type ReportService struct {
	canvases driven.CanvasFactory
	reader   driven.DocumentReader
	settings domain.ReportSettings
}

// NewReportService creates a report service drawing through canvases
// with the given branding. reader may be nil if Inspect is not needed.
func NewReportService(canvases driven.CanvasFactory, reader driven.DocumentReader, settings domain.ReportSettings) *ReportService {
	return &ReportService{
		canvases: canvases,
		reader:   reader,
		settings: settings,
	}
}

// Generate validates the request, compares the snapshots and returns the
// finished document. Every input check runs before a canvas is created,
// and nothing is returned unless the whole document was produced.
func (s *ReportService) Generate(ctx context.Context, req driving.GenerateRequest) ([]byte, error) {
	if err := checkStages(req.Collection, req.Delivery); err != nil {
		return nil, err
	}
	if err := domain.ValidateJob(req.Job); err != nil {
		return nil, err
	}
	sigs, err := decodeSignatures(req.Collection, req.Delivery)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Section("Report " + req.Job.JobNumber)
	result := Compare(req.Collection, req.Delivery)
	logger.Debug("mileage delta %d, fuel delta %d, %d carried, %d new, %d document changes",
		result.MileageDelta, result.FuelDelta, len(result.CarriedDamage), len(result.NewDamage),
		len(result.DocumentStatusChanges))

	chrome, sections := buildReport(reportData{
		job:        req.Job,
		collection: req.Collection,
		delivery:   req.Delivery,
		result:     result,
		settings:   s.settings,
		reference:  Reference(req.Job),
		signatures: sigs,
	})

	canvas, err := s.canvases.NewCanvas(driven.CanvasOptions{
		PageSize:  s.settings.PageSize,
		Title:     fmt.Sprintf("%s %s", s.settings.Title, req.Job.JobNumber),
		Author:    s.settings.Company.Name,
		Subject:   req.Job.Registration,
		CreatedAt: req.Job.GeneratedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("create canvas: %w", err)
	}

	doc, err := layout.Compose(canvas, chrome, sections)
	if err != nil {
		return nil, fmt.Errorf("compose report: %w", err)
	}

	var buf bytes.Buffer
	if err := canvas.Output(&buf); err != nil {
		return nil, fmt.Errorf("output report: %w", err)
	}
	logger.Info("generated report %s: %d pages, %d bytes", req.Job.JobNumber, doc.Pages, buf.Len())
	return buf.Bytes(), nil
}

// Compare validates the stages and returns the comparison alone.
func (s *ReportService) Compare(ctx context.Context, collection, delivery *domain.InspectionSnapshot) (*domain.ComparisonResult, error) {
	if err := checkStages(collection, delivery); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result := Compare(collection, delivery)
	return &result, nil
}

// Inspect reads a generated document back.
func (s *ReportService) Inspect(ctx context.Context, data []byte) (*domain.DocumentInfo, error) {
	if s.reader == nil {
		return nil, errors.New("document reader not configured")
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("inspect: %w: empty document", domain.ErrInvalidInput)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	info, err := s.reader.Read(data)
	if err != nil {
		return nil, fmt.Errorf("inspect: %w", err)
	}
	return info, nil
}

// Reference derives the report reference from the job number and the
// generation time, so regenerating a report keeps its reference.
func Reference(job domain.JobMeta) string {
	name := job.JobNumber + "|" + job.GeneratedAt.UTC().Format(time.RFC3339Nano)
	return strings.ToUpper(uuid.NewSHA1(referenceSpace, []byte(name)).String())
}

func checkStages(collection, delivery *domain.InspectionSnapshot) error {
	if err := checkStage(collection, domain.StageCollection); err != nil {
		return err
	}
	return checkStage(delivery, domain.StageDelivery)
}

func checkStage(s *domain.InspectionSnapshot, want domain.Stage) error {
	if s == nil {
		return &domain.MissingSnapshotError{Expected: want}
	}
	if s.Stage != want {
		got := s.Stage
		if got == "" {
			got = "unset"
		}
		return &domain.MissingSnapshotError{Expected: want, Got: got}
	}
	return nil
}

func decodeSignatures(collection, delivery *domain.InspectionSnapshot) (signatures, error) {
	var sigs signatures
	for _, f := range []struct {
		field   string
		encoded *string
		dst     **domain.SignatureImage
	}{
		{"collection.customerSignature", collection.CustomerSignature, &sigs.collectionCustomer},
		{"collection.driverSignature", collection.DriverSignature, &sigs.collectionDriver},
		{"delivery.customerSignature", delivery.CustomerSignature, &sigs.deliveryCustomer},
		{"delivery.driverSignature", delivery.DriverSignature, &sigs.deliveryDriver},
	} {
		if f.encoded == nil || strings.TrimSpace(*f.encoded) == "" {
			continue
		}
		img, err := domain.DecodeSignature(*f.encoded)
		if err != nil {
			return signatures{}, domain.NewValidationError(f.field, "", err)
		}
		*f.dst = img
	}
	return sigs, nil
}
