package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/podreport/internal/core/domain"
)

func marker(id string, stage domain.Stage) domain.DamageMarker {
	return domain.DamageMarker{
		ID:              id,
		View:            domain.ViewFront,
		Position:        domain.Position{X: 50, Y: 50},
		Type:            domain.DamageScratch,
		Size:            domain.SizeSmall,
		CapturedAtStage: stage,
	}
}

func TestCompare_WorkedExample(t *testing.T) {
	collection := domain.SampleCollection()
	delivery := domain.SampleDelivery()

	result := Compare(collection, delivery)

	assert.Equal(t, 150, result.MileageDelta)
	assert.Equal(t, -2, result.FuelDelta)
	require.Len(t, result.NewDamage, 1)
	assert.Equal(t, domain.DamageDent, result.NewDamage[0].Type)
	require.Len(t, result.CarriedDamage, 1)
	assert.Equal(t, domain.DamageScratch, result.CarriedDamage[0].Type)
	assert.Equal(t, 2, result.DamageCountTotal)
	assert.Empty(t, result.DocumentStatusChanges)
	assert.Equal(t, 2, result.KeyCountBefore)
	assert.Equal(t, 2, result.KeyCountAfter)
	assert.True(t, result.HasNewDamage())
	assert.False(t, result.HasDocumentChanges())
}

func TestCompare_NegativeMileageKept(t *testing.T) {
	collection := domain.SampleCollection()
	delivery := domain.SampleDelivery()
	delivery.Condition.Mileage = collection.Condition.Mileage - 25

	result := Compare(collection, delivery)

	assert.Equal(t, -25, result.MileageDelta)
}

func TestCompare_NoDamage(t *testing.T) {
	collection := &domain.InspectionSnapshot{Stage: domain.StageCollection}
	delivery := &domain.InspectionSnapshot{Stage: domain.StageDelivery}

	result := Compare(collection, delivery)

	assert.NotNil(t, result.NewDamage)
	assert.Empty(t, result.NewDamage)
	assert.Empty(t, result.CarriedDamage)
	assert.Zero(t, result.DamageCountTotal)
	assert.NotNil(t, result.DocumentStatusChanges)
	assert.False(t, result.HasNewDamage())
}

func TestCompare_OnlyDeliveryTaggedMarkersAreNew(t *testing.T) {
	collection := &domain.InspectionSnapshot{
		Stage:         domain.StageCollection,
		DamageMarkers: []domain.DamageMarker{marker("c1", domain.StageCollection), marker("c2", domain.StageCollection)},
	}
	delivery := &domain.InspectionSnapshot{
		Stage: domain.StageDelivery,
		DamageMarkers: []domain.DamageMarker{
			marker("d-repeat", domain.StageCollection),
			marker("d1", domain.StageDelivery),
			marker("d2", domain.StageDelivery),
		},
	}

	result := Compare(collection, delivery)

	require.Len(t, result.NewDamage, 2)
	assert.Equal(t, "d1", result.NewDamage[0].ID)
	assert.Equal(t, "d2", result.NewDamage[1].ID)
	assert.Len(t, result.CarriedDamage, 2)
	assert.Equal(t, 4, result.DamageCountTotal)
}

func TestCompare_SamePositionIsNotMatched(t *testing.T) {
	collection := &domain.InspectionSnapshot{
		Stage:         domain.StageCollection,
		DamageMarkers: []domain.DamageMarker{marker("c1", domain.StageCollection)},
	}
	delivery := &domain.InspectionSnapshot{
		Stage:         domain.StageDelivery,
		DamageMarkers: []domain.DamageMarker{marker("d1", domain.StageDelivery)},
	}

	result := Compare(collection, delivery)

	assert.Len(t, result.NewDamage, 1, "a delivery marker on top of carried damage still counts as new")
	assert.Equal(t, 2, result.DamageCountTotal)
}

func TestCompare_DocumentChanges(t *testing.T) {
	reason := "Customer kept it"
	collection := &domain.InspectionSnapshot{
		Stage: domain.StageCollection,
		DocumentChecks: []domain.DocumentCheck{
			{Document: domain.DocumentV5, Status: domain.StatusProvided},
			{Document: domain.DocumentMOT, Status: domain.StatusProvided},
			{Document: domain.DocumentServiceBook, Status: domain.StatusNotProvided, ReasonIfMissing: &reason},
			{Document: domain.DocumentInsurance, Status: domain.StatusProvided},
		},
	}
	delivery := &domain.InspectionSnapshot{
		Stage: domain.StageDelivery,
		DocumentChecks: []domain.DocumentCheck{
			{Document: domain.DocumentInsurance, Status: domain.StatusProvided},
			{Document: domain.DocumentServiceBook, Status: domain.StatusProvided},
			{Document: domain.DocumentV5, Status: domain.StatusProvided},
		},
	}

	result := Compare(collection, delivery)

	assert.Equal(t, []domain.DocumentStatusChange{
		{Document: domain.DocumentMOT, Before: domain.StatusProvided, After: domain.StatusNotProvided},
		{Document: domain.DocumentServiceBook, Before: domain.StatusNotProvided, After: domain.StatusProvided},
	}, result.DocumentStatusChanges)
	assert.True(t, result.HasDocumentChanges())
}

func TestCompare_DocumentChangeIffStatusDiffers(t *testing.T) {
	statuses := []domain.DocumentStatus{domain.StatusProvided, domain.StatusNotProvided}
	for _, before := range statuses {
		for _, after := range statuses {
			collection := &domain.InspectionSnapshot{
				Stage:          domain.StageCollection,
				DocumentChecks: []domain.DocumentCheck{{Document: domain.DocumentV5, Status: before}},
			}
			delivery := &domain.InspectionSnapshot{
				Stage:          domain.StageDelivery,
				DocumentChecks: []domain.DocumentCheck{{Document: domain.DocumentV5, Status: after}},
			}

			result := Compare(collection, delivery)

			var v5 []domain.DocumentStatusChange
			for _, c := range result.DocumentStatusChanges {
				if c.Document == domain.DocumentV5 {
					v5 = append(v5, c)
				}
			}
			if before == after {
				assert.Empty(t, v5, "%s -> %s", before, after)
			} else {
				assert.Len(t, v5, 1, "%s -> %s", before, after)
			}
		}
	}
}

func TestCompare_ChargeAndKeys(t *testing.T) {
	half, quarter := domain.ChargeHalf, domain.ChargeQuarter
	collection := &domain.InspectionSnapshot{Stage: domain.StageCollection, KeyCount: 2}
	collection.Condition.ChargeLevel = &half
	delivery := &domain.InspectionSnapshot{Stage: domain.StageDelivery, KeyCount: 1}
	delivery.Condition.ChargeLevel = &quarter

	result := Compare(collection, delivery)

	require.NotNil(t, result.ChargeBefore)
	require.NotNil(t, result.ChargeAfter)
	assert.Equal(t, domain.ChargeHalf, *result.ChargeBefore)
	assert.Equal(t, domain.ChargeQuarter, *result.ChargeAfter)
	assert.True(t, result.HasCharge())
	assert.Equal(t, 2, result.KeyCountBefore)
	assert.Equal(t, 1, result.KeyCountAfter)
}

func TestCompare_DoesNotModifyInputs(t *testing.T) {
	collection := domain.SampleCollection()
	delivery := domain.SampleDelivery()
	before := *collection
	beforeMarkers := append([]domain.DamageMarker{}, collection.DamageMarkers...)

	result := Compare(collection, delivery)
	result.CarriedDamage[0].Description = "changed"

	assert.Equal(t, beforeMarkers, collection.DamageMarkers)
	assert.Equal(t, before.Condition, collection.Condition)
}
