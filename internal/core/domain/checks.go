package domain

// DocumentKind names a vehicle document checked at each stage.
type DocumentKind string

// Document kinds.
const (
	DocumentV5          DocumentKind = "v5"
	DocumentMOT         DocumentKind = "mot"
	DocumentServiceBook DocumentKind = "serviceBook"
	DocumentInsurance   DocumentKind = "insurance"
)

// DocumentKinds lists the documents in report order.
var DocumentKinds = []DocumentKind{DocumentV5, DocumentMOT, DocumentServiceBook, DocumentInsurance}

// IsValid returns true if the document kind is recognised.
func (k DocumentKind) IsValid() bool {
	switch k {
	case DocumentV5, DocumentMOT, DocumentServiceBook, DocumentInsurance:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k DocumentKind) String() string {
	return string(k)
}

// Label returns the printed name of the document.
func (k DocumentKind) Label() string {
	switch k {
	case DocumentV5:
		return "V5 logbook"
	case DocumentMOT:
		return "MOT certificate"
	case DocumentServiceBook:
		return "Service book"
	case DocumentInsurance:
		return "Insurance"
	default:
		return unknownLabel
	}
}

// DocumentStatus records whether a document was handed over.
type DocumentStatus string

// Document statuses.
const (
	StatusProvided    DocumentStatus = "provided"
	StatusNotProvided DocumentStatus = "notProvided"
)

// IsValid returns true if the status is recognised.
func (s DocumentStatus) IsValid() bool {
	return s == StatusProvided || s == StatusNotProvided
}

// String returns the string representation.
func (s DocumentStatus) String() string {
	return string(s)
}

// Label returns the printed name of the status.
func (s DocumentStatus) Label() string {
	switch s {
	case StatusProvided:
		return "Provided"
	case StatusNotProvided:
		return "Not provided"
	default:
		return unknownLabel
	}
}

// DocumentCheck is the outcome of checking one document.
type DocumentCheck struct {
	Document  DocumentKind   `json:"documentName"`
	Status    DocumentStatus `json:"status"`
	PhotoRefs []PhotoRef     `json:"photoRefs"`

	// ReasonIfMissing is set if and only if Status is StatusNotProvided.
	ReasonIfMissing *string `json:"reasonIfMissing,omitempty"`
}

// Provided returns true if the document was handed over.
func (c DocumentCheck) Provided() bool {
	return c.Status == StatusProvided
}

// WheelPosition identifies one of the four wheels.
type WheelPosition string

// Wheel positions.
const (
	WheelFrontLeft  WheelPosition = "frontLeft"
	WheelFrontRight WheelPosition = "frontRight"
	WheelRearLeft   WheelPosition = "rearLeft"
	WheelRearRight  WheelPosition = "rearRight"
)

// WheelPositions lists the wheels in report order.
var WheelPositions = []WheelPosition{WheelFrontLeft, WheelFrontRight, WheelRearLeft, WheelRearRight}

// IsValid returns true if the wheel position is recognised.
func (p WheelPosition) IsValid() bool {
	switch p {
	case WheelFrontLeft, WheelFrontRight, WheelRearLeft, WheelRearRight:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p WheelPosition) String() string {
	return string(p)
}

// Label returns the printed name of the wheel.
func (p WheelPosition) Label() string {
	switch p {
	case WheelFrontLeft:
		return "Front left"
	case WheelFrontRight:
		return "Front right"
	case WheelRearLeft:
		return "Rear left"
	case WheelRearRight:
		return "Rear right"
	default:
		return unknownLabel
	}
}

// TyreCondition grades tread wear.
type TyreCondition string

// Tyre conditions.
const (
	TyreOK            TyreCondition = "ok"
	TyreWorn          TyreCondition = "worn"
	TyreExtremelyWorn TyreCondition = "extremelyWorn"
)

// IsValid returns true if the tyre condition is recognised.
func (c TyreCondition) IsValid() bool {
	return c == TyreOK || c == TyreWorn || c == TyreExtremelyWorn
}

// String returns the string representation.
func (c TyreCondition) String() string {
	return string(c)
}

// Label returns the printed name of the condition.
func (c TyreCondition) Label() string {
	switch c {
	case TyreOK:
		return "OK"
	case TyreWorn:
		return "Worn"
	case TyreExtremelyWorn:
		return "Extremely worn"
	default:
		return unknownLabel
	}
}

// WheelTyreCheck is the outcome of checking one wheel and its tyre.
type WheelTyreCheck struct {
	Wheel         WheelPosition `json:"wheelPosition"`
	Scuffed       bool          `json:"scuffed"`
	TyreCondition TyreCondition `json:"tyreCondition"`
	PhotoRefs     []PhotoRef    `json:"photoRefs"`
}
