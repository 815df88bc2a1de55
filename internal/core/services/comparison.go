package services

import "github.com/custodia-labs/podreport/internal/core/domain"

// Compare computes the difference between a collection and a delivery
// snapshot. Both must be non-nil and are not modified; stage checks are
// the caller's job.
//
// Damage is never matched by position. A delivery marker is new exactly
// when it is tagged as captured at delivery; delivery markers tagged
// collection repeat carried damage and are not counted again.
func Compare(collection, delivery *domain.InspectionSnapshot) domain.ComparisonResult {
	result := domain.ComparisonResult{
		MileageDelta:   delivery.Condition.Mileage - collection.Condition.Mileage,
		FuelDelta:      delivery.Condition.FuelLevelEighths - collection.Condition.FuelLevelEighths,
		NewDamage:      []domain.DamageMarker{},
		CarriedDamage:  append([]domain.DamageMarker{}, collection.DamageMarkers...),
		ChargeBefore:   collection.Condition.ChargeLevel,
		ChargeAfter:    delivery.Condition.ChargeLevel,
		KeyCountBefore: collection.KeyCount,
		KeyCountAfter:  delivery.KeyCount,

		DocumentStatusChanges: []domain.DocumentStatusChange{},
	}

	for _, m := range delivery.DamageMarkers {
		if m.IsNew() {
			result.NewDamage = append(result.NewDamage, m)
		}
	}
	result.DamageCountTotal = len(collection.DamageMarkers) + len(result.NewDamage)

	for _, kind := range domain.DocumentKinds {
		before := collection.DocumentStatus(kind)
		after := delivery.DocumentStatus(kind)
		if before != after {
			result.DocumentStatusChanges = append(result.DocumentStatusChanges, domain.DocumentStatusChange{
				Document: kind,
				Before:   before,
				After:    after,
			})
		}
	}

	return result
}
