package domain

import (
	"fmt"
	"time"
)

const unknownLabel = "Unknown"

// Stage identifies when an inspection was captured.
type Stage string

// Inspection stages.
const (
	StageCollection Stage = "collection"
	StageDelivery   Stage = "delivery"
)

// IsValid returns true if the stage is recognised.
func (s Stage) IsValid() bool {
	return s == StageCollection || s == StageDelivery
}

// String returns the string representation.
func (s Stage) String() string {
	return string(s)
}

// Label returns the printed name of the stage.
func (s Stage) Label() string {
	switch s {
	case StageCollection:
		return "Collection"
	case StageDelivery:
		return "Delivery"
	default:
		return unknownLabel
	}
}

// PhotoRef points at a photo stored upstream. The engine never loads it.
type PhotoRef struct {
	ID      string `json:"id"`
	URI     string `json:"uri,omitempty"`
	Caption string `json:"caption,omitempty"`
}

// ChargeLevel is the traction battery reading of an electric vehicle.
type ChargeLevel string

// Charge levels. ChargeNA marks a vehicle without a traction battery.
const (
	ChargeNA           ChargeLevel = "na"
	ChargeEmpty        ChargeLevel = "empty"
	ChargeQuarter      ChargeLevel = "quarter"
	ChargeHalf         ChargeLevel = "half"
	ChargeThreeQuarter ChargeLevel = "threeQuarter"
	ChargeFull         ChargeLevel = "full"
)

// ChargeLevels lists the charge options in radio-group order.
var ChargeLevels = []ChargeLevel{ChargeNA, ChargeEmpty, ChargeQuarter, ChargeHalf, ChargeThreeQuarter, ChargeFull}

// IsValid returns true if the charge level is recognised.
func (c ChargeLevel) IsValid() bool {
	for _, l := range ChargeLevels {
		if c == l {
			return true
		}
	}
	return false
}

// String returns the string representation.
func (c ChargeLevel) String() string {
	return string(c)
}

// Label returns the printed name of the charge level.
func (c ChargeLevel) Label() string {
	switch c {
	case ChargeNA:
		return "N/A"
	case ChargeEmpty:
		return "Empty"
	case ChargeQuarter:
		return "1/4"
	case ChargeHalf:
		return "1/2"
	case ChargeThreeQuarter:
		return "3/4"
	case ChargeFull:
		return "Full"
	default:
		return unknownLabel
	}
}

// Weather records conditions at the time of inspection.
type Weather string

// Weather conditions.
const (
	WeatherDry  Weather = "dry"
	WeatherWet  Weather = "wet"
	WeatherSnow Weather = "snow"
	WeatherDark Weather = "dark"
)

// WeatherConditions lists the weather options in radio-group order.
var WeatherConditions = []Weather{WeatherDry, WeatherWet, WeatherSnow, WeatherDark}

// IsValid returns true if the weather is recognised.
func (w Weather) IsValid() bool {
	switch w {
	case WeatherDry, WeatherWet, WeatherSnow, WeatherDark:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (w Weather) String() string {
	return string(w)
}

// Label returns the printed name of the weather.
func (w Weather) Label() string {
	switch w {
	case WeatherDry:
		return "Dry"
	case WeatherWet:
		return "Wet"
	case WeatherSnow:
		return "Snow"
	case WeatherDark:
		return "Dark"
	default:
		return unknownLabel
	}
}

// MaxFuelEighths is a full tank.
const MaxFuelEighths = 8

// FuelDeltaLabel prints a change in fuel level in the same tank
// fractions as FuelLabel, e.g. "-1/4", "+3/8", "+1", "0".
func FuelDeltaLabel(delta int) string {
	if delta == 0 {
		return "0"
	}
	sign, n := "+", delta
	if n < 0 {
		sign, n = "-", -n
	}
	switch {
	case n%8 == 0:
		return fmt.Sprintf("%s%d", sign, n/8)
	case n%4 == 0:
		return fmt.Sprintf("%s%d/2", sign, n/4)
	case n%2 == 0:
		return fmt.Sprintf("%s%d/4", sign, n/2)
	default:
		return fmt.Sprintf("%s%d/8", sign, n)
	}
}

// FuelLabel prints a fuel level given in eighths, e.g. "E", "3/8", "1/2", "F".
// Values outside [0,8] are printed raw.
func FuelLabel(eighths int) string {
	switch {
	case eighths == 0:
		return "E"
	case eighths == MaxFuelEighths:
		return "F"
	case eighths < 0 || eighths > MaxFuelEighths:
		return fmt.Sprintf("%d/8", eighths)
	case eighths%4 == 0:
		return "1/2"
	case eighths%2 == 0:
		return fmt.Sprintf("%d/4", eighths/2)
	default:
		return fmt.Sprintf("%d/8", eighths)
	}
}

// VehicleConditionReading holds the numeric readings of one inspection.
type VehicleConditionReading struct {
	FuelLevelEighths   int          `json:"fuelLevelEighths"`
	ChargeLevel        *ChargeLevel `json:"chargeLevel,omitempty"`
	Mileage            int          `json:"mileage"`
	OdometerPhotoRefs  []PhotoRef   `json:"odometerPhotoRefs"`
	FuelGaugePhotoRefs []PhotoRef   `json:"fuelGaugePhotoRefs"`
}

// MaxKeyCount is printed as "4+".
const MaxKeyCount = 4

// InspectionSnapshot is one complete inspection captured at a single stage.
// It is treated as immutable once handed to the engine.
type InspectionSnapshot struct {
	Stage          Stage                   `json:"stage"`
	CapturedAt     time.Time               `json:"capturedAt,omitempty"`
	DocumentChecks []DocumentCheck         `json:"documentChecks"`
	KeyCount       int                     `json:"keyCount"`
	WheelChecks    []WheelTyreCheck        `json:"wheelChecks"`
	DamageMarkers  []DamageMarker          `json:"damageMarkers"`
	Condition      VehicleConditionReading `json:"condition"`
	Weather        *Weather                `json:"weather,omitempty"`

	CustomerName string `json:"customerName"`

	// CustomerSignature is a base64 image, optionally a data URL.
	CustomerSignature *string `json:"customerSignature,omitempty"`

	// DriverSignature is the company representative's base64 image.
	DriverSignature *string `json:"driverSignature,omitempty"`

	Notes string `json:"notes"`

	// ConfirmedByCustomer is only meaningful at delivery.
	ConfirmedByCustomer bool `json:"confirmedByCustomer"`
}

// Document returns the check for a document kind, if recorded.
func (s *InspectionSnapshot) Document(kind DocumentKind) (DocumentCheck, bool) {
	for _, c := range s.DocumentChecks {
		if c.Document == kind {
			return c, true
		}
	}
	return DocumentCheck{}, false
}

// DocumentStatus returns the recorded status for a document kind.
// An unrecorded document counts as not provided.
func (s *InspectionSnapshot) DocumentStatus(kind DocumentKind) DocumentStatus {
	if c, ok := s.Document(kind); ok {
		return c.Status
	}
	return StatusNotProvided
}

// Wheel returns the check for a wheel position, if recorded.
func (s *InspectionSnapshot) Wheel(pos WheelPosition) (WheelTyreCheck, bool) {
	for _, w := range s.WheelChecks {
		if w.Wheel == pos {
			return w, true
		}
	}
	return WheelTyreCheck{}, false
}

// KeyCountLabel prints the key count, "4+" at the maximum.
func (s *InspectionSnapshot) KeyCountLabel() string {
	if s.KeyCount >= MaxKeyCount {
		return fmt.Sprintf("%d+", MaxKeyCount)
	}
	return fmt.Sprintf("%d", s.KeyCount)
}
