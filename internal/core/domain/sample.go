package domain

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"time"
)

// SampleJob returns job metadata for the worked example used by the
// sample command and tests.
func SampleJob() JobMeta {
	return JobMeta{
		JobNumber:         "JOB-10427",
		Registration:      "AB12 CDE",
		Make:              "Volkswagen",
		Model:             "Golf",
		Colour:            "Blue",
		VIN:               "WVWZZZ1KZAW000001",
		CollectionAddress: "14 Station Road, Reading, RG1 1AA",
		DeliveryAddress:   "Unit 3, Riverside Park, Bristol, BS1 6XY",
		DriverName:        "Sam Taylor",
		GeneratedAt:       time.Date(2026, 3, 14, 16, 30, 0, 0, time.UTC),
	}
}

// SampleCollection returns a collection snapshot with one scratch,
// 10,000 miles and 6/8 fuel.
func SampleCollection() *InspectionSnapshot {
	weather := WeatherDry
	sig := SampleSignature()
	return &InspectionSnapshot{
		Stage:          StageCollection,
		CapturedAt:     time.Date(2026, 3, 14, 9, 5, 0, 0, time.UTC),
		DocumentChecks: sampleDocuments(),
		KeyCount:       2,
		WheelChecks:    sampleWheels(),
		DamageMarkers: []DamageMarker{{
			ID:              "col-dmg-1",
			View:            ViewDriverSide,
			Position:        Position{X: 42, Y: 57},
			Type:            DamageScratch,
			Size:            SizeSmall,
			Description:     "Light scratch on rear door below handle",
			PhotoRefs:       []PhotoRef{{ID: "p-101"}, {ID: "p-102"}},
			CapturedAtStage: StageCollection,
		}},
		Condition: VehicleConditionReading{
			FuelLevelEighths: 6,
			Mileage:          10000,
		},
		Weather:           &weather,
		CustomerName:      "Alex Morgan",
		CustomerSignature: &sig,
		DriverSignature:   &sig,
		Notes:             "Vehicle clean. Parcel shelf in boot.",
	}
}

// SampleDelivery returns a delivery snapshot with one new dent,
// 10,150 miles and 4/8 fuel.
func SampleDelivery() *InspectionSnapshot {
	weather := WeatherWet
	sig := SampleSignature()
	return &InspectionSnapshot{
		Stage:          StageDelivery,
		CapturedAt:     time.Date(2026, 3, 14, 15, 40, 0, 0, time.UTC),
		DocumentChecks: sampleDocuments(),
		KeyCount:       2,
		WheelChecks:    sampleWheels(),
		DamageMarkers: []DamageMarker{{
			ID:              "del-dmg-1",
			View:            ViewFront,
			Position:        Position{X: 20, Y: 35},
			Type:            DamageDent,
			Size:            SizeMedium,
			Description:     "Dent on front bumper, nearside",
			PhotoRefs:       []PhotoRef{{ID: "p-201"}},
			CapturedAtStage: StageDelivery,
		}},
		Condition: VehicleConditionReading{
			FuelLevelEighths: 4,
			Mileage:          10150,
		},
		Weather:             &weather,
		CustomerName:        "Jordan Lee",
		CustomerSignature:   &sig,
		DriverSignature:     &sig,
		ConfirmedByCustomer: true,
	}
}

func sampleDocuments() []DocumentCheck {
	checks := make([]DocumentCheck, 0, len(DocumentKinds))
	for _, k := range DocumentKinds {
		checks = append(checks, DocumentCheck{Document: k, Status: StatusProvided})
	}
	return checks
}

func sampleWheels() []WheelTyreCheck {
	checks := make([]WheelTyreCheck, 0, len(WheelPositions))
	for _, p := range WheelPositions {
		checks = append(checks, WheelTyreCheck{Wheel: p, TyreCondition: TyreOK})
	}
	return checks
}

// SampleSignature returns a small PNG signature as a data URL.
func SampleSignature() string {
	img := image.NewGray(image.Rect(0, 0, 60, 20))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	for x := 4; x < 56; x++ {
		y := 10 + (x%12)/3 - 2
		img.SetGray(x, y, color.Gray{})
		img.SetGray(x, y+1, color.Gray{})
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}
