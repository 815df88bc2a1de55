package domain

// DocumentStatusChange records a document whose status differs between stages.
type DocumentStatusChange struct {
	Document DocumentKind   `json:"document"`
	Before   DocumentStatus `json:"before"`
	After    DocumentStatus `json:"after"`
}

// ComparisonResult is the difference between a collection and a delivery
// snapshot. It is derived on every report generation and never persisted.
type ComparisonResult struct {
	// MileageDelta is delivery minus collection. Negative values are kept.
	MileageDelta int `json:"mileageDelta"`

	// FuelDelta is delivery minus collection, in eighths.
	FuelDelta int `json:"fuelDelta"`

	NewDamage     []DamageMarker `json:"newDamage"`
	CarriedDamage []DamageMarker `json:"carriedDamage"`

	// DamageCountTotal is collection damage plus new damage.
	DamageCountTotal int `json:"damageCountTotal"`

	DocumentStatusChanges []DocumentStatusChange `json:"documentStatusChanges"`

	ChargeBefore *ChargeLevel `json:"chargeBefore,omitempty"`
	ChargeAfter  *ChargeLevel `json:"chargeAfter,omitempty"`

	KeyCountBefore int `json:"keyCountBefore"`
	KeyCountAfter  int `json:"keyCountAfter"`
}

// HasNewDamage returns true if any damage was discovered at delivery.
func (r *ComparisonResult) HasNewDamage() bool {
	return len(r.NewDamage) > 0
}

// HasDocumentChanges returns true if any document status changed.
func (r *ComparisonResult) HasDocumentChanges() bool {
	return len(r.DocumentStatusChanges) > 0
}

// HasCharge returns true if a charge level was recorded at either stage
// for a vehicle with a traction battery.
func (r *ComparisonResult) HasCharge() bool {
	isEV := func(c *ChargeLevel) bool { return c != nil && *c != ChargeNA }
	return isEV(r.ChargeBefore) || isEV(r.ChargeAfter)
}
