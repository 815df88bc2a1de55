package services

import (
	"fmt"
	"slices"
	"strings"

	"github.com/custodia-labs/podreport/internal/core/domain"
	"github.com/custodia-labs/podreport/internal/core/ports/driven"
	"github.com/custodia-labs/podreport/internal/core/ports/driving"
	"github.com/custodia-labs/podreport/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyCompanyName         = "company.name"
	keyCompanyRegistration = "company.registration"
	keyCompanyAddress      = "company.address"
	keyCompanyPhone        = "company.phone"
	keyCompanyEmail        = "company.email"
	keyReportTitle         = "report.title"
	keyReportDisclaimer    = "report.disclaimer"
	keyReportPageSize      = "report.page_size"
)

var settingKeys = []string{
	keyCompanyName,
	keyCompanyRegistration,
	keyCompanyAddress,
	keyCompanyPhone,
	keyCompanyEmail,
	keyReportTitle,
	keyReportDisclaimer,
	keyReportPageSize,
}

// SettingsService manages report branding and page format.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current report settings. Empty or unrecognised stored
// values fall back to the defaults.
func (s *SettingsService) Get() (*domain.ReportSettings, error) {
	defaults := domain.DefaultReportSettings()

	return &domain.ReportSettings{
		Company: domain.CompanyProfile{
			Name:             s.getString(keyCompanyName, defaults.Company.Name),
			RegistrationLine: s.getString(keyCompanyRegistration, defaults.Company.RegistrationLine),
			Address:          s.configStore.GetString(keyCompanyAddress),
			Phone:            s.configStore.GetString(keyCompanyPhone),
			Email:            s.configStore.GetString(keyCompanyEmail),
		},
		Title:      s.getString(keyReportTitle, defaults.Title),
		Disclaimer: s.getString(keyReportDisclaimer, defaults.Disclaimer),
		PageSize:   s.getPageSize(defaults.PageSize),
	}, nil
}

// Save persists report settings.
func (s *SettingsService) Save(settings *domain.ReportSettings) error {
	if settings == nil {
		return fmt.Errorf("save settings: %w", domain.ErrInvalidInput)
	}
	if !settings.PageSize.IsValid() {
		return domain.NewValidationError(keyReportPageSize, settings.PageSize.String(), domain.ErrUnknownValue)
	}

	values := []struct {
		key, value string
	}{
		{keyCompanyName, settings.Company.Name},
		{keyCompanyRegistration, settings.Company.RegistrationLine},
		{keyCompanyAddress, settings.Company.Address},
		{keyCompanyPhone, settings.Company.Phone},
		{keyCompanyEmail, settings.Company.Email},
		{keyReportTitle, settings.Title},
		{keyReportDisclaimer, settings.Disclaimer},
		{keyReportPageSize, settings.PageSize.String()},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// Set updates a single setting.
func (s *SettingsService) Set(key, value string) error {
	if !slices.Contains(settingKeys, key) {
		return domain.NewValidationError("key", key, domain.ErrUnknownValue)
	}
	if key == keyReportPageSize {
		size, ok := parsePageSize(value)
		if !ok {
			return domain.NewValidationError(keyReportPageSize, value, domain.ErrUnknownValue)
		}
		value = size.String()
	}
	if err := s.configStore.Set(key, value); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Reset removes a stored setting.
func (s *SettingsService) Reset(key string) error {
	if !slices.Contains(settingKeys, key) {
		return domain.NewValidationError("key", key, domain.ErrUnknownValue)
	}
	if err := s.configStore.Unset(key); err != nil {
		return fmt.Errorf("reset %s: %w", key, err)
	}
	return nil
}

// Keys returns the recognised setting keys in display order.
func (s *SettingsService) Keys() []string {
	return slices.Clone(settingKeys)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.ReportSettings {
	return domain.DefaultReportSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if strings.TrimSpace(val) == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getPageSize(defaultVal domain.PageSize) domain.PageSize {
	raw := s.configStore.GetString(keyReportPageSize)
	size, ok := parsePageSize(raw)
	if !ok {
		if raw != "" {
			logger.Warn("ignoring %s %q, using %s", keyReportPageSize, raw, defaultVal)
		}
		return defaultVal
	}
	return size
}

// parsePageSize accepts page size names in any case.
func parsePageSize(val string) (domain.PageSize, bool) {
	for _, size := range []domain.PageSize{domain.PageA4, domain.PageLetter} {
		if strings.EqualFold(strings.TrimSpace(val), size.String()) {
			return size, true
		}
	}
	return "", false
}
