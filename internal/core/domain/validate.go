package domain

import (
	"errors"
	"fmt"
	"strconv"
)

// ValidateSnapshot checks the model invariants of a snapshot. The capture
// UI is expected to enforce these; the report engine itself does not, so
// that anomalies reach the document as recorded. All violations are joined.
func ValidateSnapshot(s *InspectionSnapshot) error {
	if s == nil {
		return NewValidationError("snapshot", "", ErrInvalidInput)
	}

	var errs []error
	add := func(field, value string, wrapped error) {
		errs = append(errs, NewValidationError(field, value, wrapped))
	}

	if !s.Stage.IsValid() {
		add("stage", s.Stage.String(), ErrUnknownValue)
	}
	if s.KeyCount < 1 || s.KeyCount > MaxKeyCount {
		add("keyCount", strconv.Itoa(s.KeyCount), ErrOutOfRange)
	}

	c := s.Condition
	if c.FuelLevelEighths < 0 || c.FuelLevelEighths > MaxFuelEighths {
		add("condition.fuelLevelEighths", strconv.Itoa(c.FuelLevelEighths), ErrOutOfRange)
	}
	if c.Mileage < 0 {
		add("condition.mileage", strconv.Itoa(c.Mileage), ErrOutOfRange)
	}
	if c.ChargeLevel != nil && !c.ChargeLevel.IsValid() {
		add("condition.chargeLevel", c.ChargeLevel.String(), ErrUnknownValue)
	}
	if s.Weather != nil && !s.Weather.IsValid() {
		add("weather", s.Weather.String(), ErrUnknownValue)
	}

	for i, dc := range s.DocumentChecks {
		field := fmt.Sprintf("documentChecks[%d]", i)
		if !dc.Document.IsValid() {
			add(field+".documentName", dc.Document.String(), ErrUnknownValue)
		}
		if !dc.Status.IsValid() {
			add(field+".status", dc.Status.String(), ErrUnknownValue)
			continue
		}
		hasReason := dc.ReasonIfMissing != nil
		if hasReason != (dc.Status == StatusNotProvided) {
			add(field+".reasonIfMissing", dc.Status.String(), ErrMissingReason)
		}
	}

	if err := validateWheels(s.WheelChecks); err != nil {
		errs = append(errs, err)
	}

	seen := make(map[string]bool, len(s.DamageMarkers))
	for i, m := range s.DamageMarkers {
		field := fmt.Sprintf("damageMarkers[%d]", i)
		if m.ID == "" {
			add(field+".id", "", ErrInvalidInput)
		} else if seen[m.ID] {
			add(field+".id", m.ID, ErrDuplicateID)
		}
		seen[m.ID] = true
		if !m.View.IsValid() {
			add(field+".view", m.View.String(), ErrUnknownValue)
		}
		if !m.Type.IsValid() {
			add(field+".damageType", m.Type.String(), ErrUnknownValue)
		}
		if !m.Size.IsValid() {
			add(field+".size", m.Size.String(), ErrUnknownValue)
		}
		if !m.CapturedAtStage.IsValid() {
			add(field+".capturedAtStage", m.CapturedAtStage.String(), ErrUnknownValue)
		}
		if !m.Position.InBounds() {
			add(field+".position", fmt.Sprintf("%g,%g", m.Position.X, m.Position.Y), ErrOutOfRange)
		}
	}

	return errors.Join(errs...)
}

func validateWheels(checks []WheelTyreCheck) error {
	if len(checks) != len(WheelPositions) {
		return NewValidationError("wheelChecks", strconv.Itoa(len(checks)), ErrWheelChecks)
	}
	seen := make(map[WheelPosition]bool, len(checks))
	for _, w := range checks {
		if !w.Wheel.IsValid() || seen[w.Wheel] {
			return NewValidationError("wheelChecks", w.Wheel.String(), ErrWheelChecks)
		}
		if !w.TyreCondition.IsValid() {
			return NewValidationError("wheelChecks.tyreCondition", w.TyreCondition.String(), ErrUnknownValue)
		}
		seen[w.Wheel] = true
	}
	return nil
}

// ValidateJob checks the metadata the report cannot be printed without.
func ValidateJob(j JobMeta) error {
	if j.JobNumber == "" {
		return NewValidationError("jobNumber", "", ErrMissingMetadata)
	}
	if j.Registration == "" {
		return NewValidationError("registration", "", ErrMissingMetadata)
	}
	if j.GeneratedAt.IsZero() {
		return NewValidationError("generatedAt", "", ErrMissingMetadata)
	}
	return nil
}
