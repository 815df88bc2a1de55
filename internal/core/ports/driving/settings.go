package driving

import "github.com/custodia-labs/podreport/internal/core/domain"

// SettingsService manages report branding and format.
type SettingsService interface {
	// Get retrieves current report settings, falling back to defaults.
	Get() (*domain.ReportSettings, error)

	// Save persists report settings.
	Save(settings *domain.ReportSettings) error

	// Set updates a single setting by key, e.g. "company.name".
	Set(key, value string) error

	// Reset removes a stored setting so its default applies again.
	Reset(key string) error

	// Keys returns the recognised setting keys in display order.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.ReportSettings
}
