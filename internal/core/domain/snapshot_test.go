package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStage(t *testing.T) {
	assert.True(t, StageCollection.IsValid())
	assert.True(t, StageDelivery.IsValid())
	assert.False(t, Stage("handover").IsValid())
	assert.Equal(t, "Collection", StageCollection.Label())
	assert.Equal(t, "Delivery", StageDelivery.Label())
	assert.Equal(t, "Unknown", Stage("").Label())
	assert.Equal(t, "delivery", StageDelivery.String())
}

func TestChargeLevel(t *testing.T) {
	labels := map[ChargeLevel]string{
		ChargeNA:           "N/A",
		ChargeEmpty:        "Empty",
		ChargeQuarter:      "1/4",
		ChargeHalf:         "1/2",
		ChargeThreeQuarter: "3/4",
		ChargeFull:         "Full",
	}
	assert.Len(t, ChargeLevels, len(labels))
	for level, label := range labels {
		assert.True(t, level.IsValid(), level)
		assert.Equal(t, label, level.Label())
	}
	assert.False(t, ChargeLevel("half-ish").IsValid())
	assert.Equal(t, "Unknown", ChargeLevel("x").Label())
}

func TestWeather(t *testing.T) {
	for _, w := range WeatherConditions {
		assert.True(t, w.IsValid(), w)
		assert.NotEqual(t, "Unknown", w.Label())
	}
	assert.False(t, Weather("foggy").IsValid())
	assert.Equal(t, "Unknown", Weather("foggy").Label())
}

func TestFuelLabel(t *testing.T) {
	tests := []struct {
		eighths int
		want    string
	}{
		{0, "E"},
		{1, "1/8"},
		{2, "1/4"},
		{3, "3/8"},
		{4, "1/2"},
		{5, "5/8"},
		{6, "3/4"},
		{7, "7/8"},
		{8, "F"},
		{-1, "-1/8"},
		{9, "9/8"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FuelLabel(tt.eighths))
		})
	}
}

func TestInspectionSnapshot_DocumentStatus(t *testing.T) {
	s := &InspectionSnapshot{DocumentChecks: []DocumentCheck{
		{Document: DocumentV5, Status: StatusProvided},
		{Document: DocumentMOT, Status: StatusNotProvided},
	}}

	assert.Equal(t, StatusProvided, s.DocumentStatus(DocumentV5))
	assert.Equal(t, StatusNotProvided, s.DocumentStatus(DocumentMOT))
	assert.Equal(t, StatusNotProvided, s.DocumentStatus(DocumentInsurance), "unrecorded counts as not provided")

	c, ok := s.Document(DocumentV5)
	assert.True(t, ok)
	assert.True(t, c.Provided())
	_, ok = s.Document(DocumentServiceBook)
	assert.False(t, ok)
}

func TestInspectionSnapshot_Wheel(t *testing.T) {
	s := &InspectionSnapshot{WheelChecks: []WheelTyreCheck{{Wheel: WheelRearLeft, Scuffed: true}}}

	w, ok := s.Wheel(WheelRearLeft)
	assert.True(t, ok)
	assert.True(t, w.Scuffed)
	_, ok = s.Wheel(WheelFrontLeft)
	assert.False(t, ok)
}

func TestInspectionSnapshot_KeyCountLabel(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{1, "1"},
		{3, "3"},
		{4, "4+"},
		{6, "4+"},
	}

	for _, tt := range tests {
		s := &InspectionSnapshot{KeyCount: tt.count}
		assert.Equal(t, tt.want, s.KeyCountLabel())
	}
}

func TestChecksEnums(t *testing.T) {
	for _, k := range DocumentKinds {
		assert.True(t, k.IsValid(), k)
		assert.NotEqual(t, "Unknown", k.Label())
	}
	for _, p := range WheelPositions {
		assert.True(t, p.IsValid(), p)
		assert.NotEqual(t, "Unknown", p.Label())
	}
	assert.False(t, DocumentKind("passport").IsValid())
	assert.False(t, WheelPosition("spare").IsValid())
	assert.Equal(t, "Not provided", StatusNotProvided.Label())
	assert.Equal(t, "Extremely worn", TyreExtremelyWorn.Label())
	assert.False(t, TyreCondition("bald").IsValid())
}

func TestDamageEnums(t *testing.T) {
	for _, v := range Views {
		assert.True(t, v.IsValid(), v)
	}
	assert.Equal(t, "Passenger side", ViewPassengerSide.Label())
	assert.False(t, View("underside").IsValid())

	assert.True(t, DamageStoneChip.IsValid())
	assert.Equal(t, "Stone chip", DamageStoneChip.Label())
	assert.Equal(t, "Unknown", DamageType("hail").Label())
	assert.False(t, DamageType("hail").IsValid())

	assert.Equal(t, "Medium", SizeMedium.Label())
	assert.False(t, DamageSize("huge").IsValid())
}

func TestPosition_InBounds(t *testing.T) {
	assert.True(t, Position{X: 0, Y: 100}.InBounds())
	assert.True(t, Position{X: 55.5, Y: 12.25}.InBounds())
	assert.False(t, Position{X: -0.1, Y: 50}.InBounds())
	assert.False(t, Position{X: 50, Y: 100.1}.InBounds())
}

func TestDamageMarker_IsNew(t *testing.T) {
	assert.True(t, DamageMarker{CapturedAtStage: StageDelivery}.IsNew())
	assert.False(t, DamageMarker{CapturedAtStage: StageCollection}.IsNew())
	assert.False(t, DamageMarker{}.IsNew())
}

func TestJobMeta_Vehicle(t *testing.T) {
	assert.Equal(t, "Volkswagen Golf", JobMeta{Make: "Volkswagen", Model: "Golf"}.Vehicle())
	assert.Equal(t, "Golf", JobMeta{Model: "Golf"}.Vehicle())
	assert.Equal(t, "Volkswagen", JobMeta{Make: "Volkswagen"}.Vehicle())
	assert.Empty(t, JobMeta{}.Vehicle())
}

func TestComparisonResult_HasCharge(t *testing.T) {
	na, half := ChargeNA, ChargeHalf

	assert.False(t, (&ComparisonResult{}).HasCharge())
	assert.False(t, (&ComparisonResult{ChargeBefore: &na, ChargeAfter: &na}).HasCharge())
	assert.True(t, (&ComparisonResult{ChargeBefore: &na, ChargeAfter: &half}).HasCharge())
	assert.True(t, (&ComparisonResult{ChargeBefore: &half}).HasCharge())
}

func TestFuelDeltaLabel(t *testing.T) {
	tests := []struct {
		delta int
		want  string
	}{
		{0, "0"},
		{-2, "-1/4"},
		{2, "+1/4"},
		{3, "+3/8"},
		{-4, "-1/2"},
		{-6, "-3/4"},
		{8, "+1"},
		{-8, "-1"},
		{-7, "-7/8"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FuelDeltaLabel(tt.delta))
		})
	}
}

// TestFuelDeltaLabel_MatchesLevels checks that the difference is printed
// in the same tank fractions as the two levels it is taken from.
func TestFuelDeltaLabel_MatchesLevels(t *testing.T) {
	assert.Equal(t, "1/2", FuelLabel(4))
	assert.Equal(t, "1/4", FuelLabel(2))
	assert.Equal(t, "-1/4", FuelDeltaLabel(2-4))
}
