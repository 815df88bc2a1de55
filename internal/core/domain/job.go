package domain

import "time"

// JobMeta is the job, vehicle and customer metadata printed on the report.
// It is supplied by the persistence layer alongside the two snapshots.
type JobMeta struct {
	// JobNumber is the transport job reference. Required.
	JobNumber string `json:"jobNumber"`

	// Registration is the vehicle registration mark. Required.
	Registration string `json:"registration"`

	Make   string `json:"make"`
	Model  string `json:"model"`
	Colour string `json:"colour,omitempty"`
	VIN    string `json:"vin,omitempty"`

	CollectionAddress string `json:"collectionAddress"`
	DeliveryAddress   string `json:"deliveryAddress"`

	// DriverName is the company representative who signs at both stages.
	DriverName string `json:"driverName"`

	// GeneratedAt is the only timestamp embedded in the document. Required.
	GeneratedAt time.Time `json:"generatedAt"`
}

// Vehicle returns make and model joined for display.
func (j JobMeta) Vehicle() string {
	switch {
	case j.Make == "":
		return j.Model
	case j.Model == "":
		return j.Make
	default:
		return j.Make + " " + j.Model
	}
}
