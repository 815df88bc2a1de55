package domain

// View identifies the vehicle outline a damage marker was placed on.
type View string

// Vehicle outline views.
const (
	ViewFront         View = "front"
	ViewRear          View = "rear"
	ViewDriverSide    View = "driverSide"
	ViewPassengerSide View = "passengerSide"
	ViewRoof          View = "roof"
)

// Views lists every outline in the order the report draws them.
var Views = []View{ViewFront, ViewRear, ViewDriverSide, ViewPassengerSide, ViewRoof}

// IsValid returns true if the view is recognised.
func (v View) IsValid() bool {
	switch v {
	case ViewFront, ViewRear, ViewDriverSide, ViewPassengerSide, ViewRoof:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (v View) String() string {
	return string(v)
}

// Label returns the printed name of the view.
func (v View) Label() string {
	switch v {
	case ViewFront:
		return "Front"
	case ViewRear:
		return "Rear"
	case ViewDriverSide:
		return "Driver side"
	case ViewPassengerSide:
		return "Passenger side"
	case ViewRoof:
		return "Roof"
	default:
		return unknownLabel
	}
}

// DamageType classifies a recorded defect.
type DamageType string

// Damage types.
const (
	DamageScratch     DamageType = "scratch"
	DamageDent        DamageType = "dent"
	DamagePaintChip   DamageType = "paintChip"
	DamageRust        DamageType = "rust"
	DamageCrack       DamageType = "crack"
	DamageMissingPart DamageType = "missingPart"
	DamageBrokenGlass DamageType = "brokenGlass"
	DamageScuffMark   DamageType = "scuffMark"
	DamageStoneChip   DamageType = "stoneChip"
	DamagePanelGap    DamageType = "panelGap"
	DamageOther       DamageType = "other"
)

var damageTypeLabels = map[DamageType]string{
	DamageScratch:     "Scratch",
	DamageDent:        "Dent",
	DamagePaintChip:   "Paint chip",
	DamageRust:        "Rust",
	DamageCrack:       "Crack",
	DamageMissingPart: "Missing part",
	DamageBrokenGlass: "Broken glass",
	DamageScuffMark:   "Scuff mark",
	DamageStoneChip:   "Stone chip",
	DamagePanelGap:    "Panel gap",
	DamageOther:       "Other",
}

// IsValid returns true if the damage type is recognised.
func (t DamageType) IsValid() bool {
	_, ok := damageTypeLabels[t]
	return ok
}

// String returns the string representation.
func (t DamageType) String() string {
	return string(t)
}

// Label returns the printed name of the damage type.
func (t DamageType) Label() string {
	if l, ok := damageTypeLabels[t]; ok {
		return l
	}
	return unknownLabel
}

// DamageSize is the inspector's estimate of a defect's extent.
type DamageSize string

// Damage sizes.
const (
	SizeSmall  DamageSize = "small"
	SizeMedium DamageSize = "medium"
	SizeLarge  DamageSize = "large"
)

// IsValid returns true if the size is recognised.
func (s DamageSize) IsValid() bool {
	return s == SizeSmall || s == SizeMedium || s == SizeLarge
}

// String returns the string representation.
func (s DamageSize) String() string {
	return string(s)
}

// Label returns the printed name of the size.
func (s DamageSize) Label() string {
	switch s {
	case SizeSmall:
		return "Small"
	case SizeMedium:
		return "Medium"
	case SizeLarge:
		return "Large"
	default:
		return unknownLabel
	}
}

// Position locates a marker on its outline as percentages of the
// outline's bounding box, so it does not depend on image resolution.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// InBounds returns true if both coordinates lie within [0,100].
func (p Position) InBounds() bool {
	return p.X >= 0 && p.X <= 100 && p.Y >= 0 && p.Y <= 100
}

// DamageMarker is one defect recorded on a vehicle outline.
type DamageMarker struct {
	// ID is unique within a snapshot and never reused across snapshots.
	ID string `json:"id"`

	View     View       `json:"view"`
	Position Position   `json:"position"`
	Type     DamageType `json:"damageType"`
	Size     DamageSize `json:"size"`

	// Description is the inspector's free-text note.
	Description string `json:"description"`

	PhotoRefs []PhotoRef `json:"photoRefs"`

	// CapturedAtStage is set by the capture UI. A delivery tag marks the
	// defect as newly discovered at delivery.
	CapturedAtStage Stage `json:"capturedAtStage"`
}

// IsNew returns true if the marker was discovered at delivery.
func (m DamageMarker) IsNew() bool {
	return m.CapturedAtStage == StageDelivery
}
