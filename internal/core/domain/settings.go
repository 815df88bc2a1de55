package domain

// PageSize is the paper format of the generated report.
type PageSize string

// Supported page sizes.
const (
	PageA4     PageSize = "A4"
	PageLetter PageSize = "Letter"
)

// IsValid returns true if the page size is supported.
func (p PageSize) IsValid() bool {
	return p == PageA4 || p == PageLetter
}

// String returns the string representation.
func (p PageSize) String() string {
	return string(p)
}

// Dimensions returns the page width and height in millimetres.
func (p PageSize) Dimensions() (width, height float64) {
	if p == PageLetter {
		return 215.9, 279.4
	}
	return 210, 297
}

// CompanyProfile identifies the transport operator issuing the report.
type CompanyProfile struct {
	Name string

	// RegistrationLine is printed in the footer of every page,
	// e.g. "Registered in England and Wales No. 01234567".
	RegistrationLine string

	Address string
	Phone   string
	Email   string
}

// ReportSettings holds the branding and format of the report.
type ReportSettings struct {
	Company    CompanyProfile
	Title      string
	Disclaimer string
	PageSize   PageSize
}

// DefaultDisclaimer is the legal boilerplate printed above the signatures.
const DefaultDisclaimer = "This report records the condition of the vehicle at the time of " +
	"collection and at the time of delivery, as inspected by the driver named above in the " +
	"presence of the customer. Damage recorded at collection was present before the vehicle " +
	"came into our care. Damage recorded as new was first identified at delivery. Inspections " +
	"are visual only and are limited by light, weather and the cleanliness of the vehicle; " +
	"defects that were not visible under those conditions cannot be recorded. Mileage and fuel " +
	"readings are taken from the vehicle's own instruments and are reproduced exactly as read. " +
	"By signing, the customer confirms that the details above are an accurate record. Any claim " +
	"for damage not recorded in this report must be notified in writing within 24 hours of delivery."

// DefaultReportSettings returns settings used when nothing is configured.
func DefaultReportSettings() ReportSettings {
	return ReportSettings{
		Company: CompanyProfile{
			Name:             "Vehicle Transport Services",
			RegistrationLine: "Registered in England and Wales",
		},
		Title:      "Vehicle Condition Report",
		Disclaimer: DefaultDisclaimer,
		PageSize:   PageA4,
	}
}
