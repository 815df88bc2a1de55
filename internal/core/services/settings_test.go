package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/podreport/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/podreport/internal/core/domain"
)

// failingStore rejects every write.
type failingStore struct {
	*memory.ConfigStore
}

var errStoreFailed = errors.New("store failed")

func (s failingStore) Set(string, any) error { return errStoreFailed }
func (s failingStore) Unset(string) error    { return errStoreFailed }

func TestNewSettingsService(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.Equal(t, domain.DefaultReportSettings(), *settings)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("company.name", "Acme Vehicle Logistics")
	_ = store.Set("company.registration", "Registered in England No. 0123")
	_ = store.Set("company.address", "1 High Street")
	_ = store.Set("company.phone", "0100 000 000")
	_ = store.Set("company.email", "ops@example.com")
	_ = store.Set("report.title", "Proof of Delivery")
	_ = store.Set("report.disclaimer", "Custom terms.")
	_ = store.Set("report.page_size", "letter")

	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, "Acme Vehicle Logistics", settings.Company.Name)
	assert.Equal(t, "Registered in England No. 0123", settings.Company.RegistrationLine)
	assert.Equal(t, "1 High Street", settings.Company.Address)
	assert.Equal(t, "0100 000 000", settings.Company.Phone)
	assert.Equal(t, "ops@example.com", settings.Company.Email)
	assert.Equal(t, "Proof of Delivery", settings.Title)
	assert.Equal(t, "Custom terms.", settings.Disclaimer)
	assert.Equal(t, domain.PageLetter, settings.PageSize)
}

func TestSettingsService_Get_InvalidValuesReturnDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("report.page_size", "B5")
	_ = store.Set("report.title", "   ")
	_ = store.Set("company.name", 42)

	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	defaults := domain.DefaultReportSettings()
	assert.Equal(t, defaults.PageSize, settings.PageSize)
	assert.Equal(t, defaults.Title, settings.Title)
	assert.Equal(t, defaults.Company.Name, settings.Company.Name)
}

func TestSettingsService_Save(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings := domain.DefaultReportSettings()
	settings.Company.Name = "Acme"
	settings.Company.Email = "ops@example.com"
	settings.PageSize = domain.PageLetter

	require.NoError(t, service.Save(&settings))

	got, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, settings, *got)
	assert.Equal(t, "Letter", store.GetString("report.page_size"))
}

func TestSettingsService_Save_Nil(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	err := service.Save(nil)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsService_Save_InvalidPageSize(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings := domain.DefaultReportSettings()
	settings.PageSize = "A3"

	err := service.Save(&settings)

	assert.ErrorIs(t, err, domain.ErrUnknownValue)
	assert.Empty(t, store.Keys(), "nothing written")
}

func TestSettingsService_Save_StoreError(t *testing.T) {
	service := NewSettingsService(failingStore{memory.NewConfigStore()})
	settings := domain.DefaultReportSettings()

	err := service.Save(&settings)

	assert.ErrorIs(t, err, errStoreFailed)
}

func TestSettingsService_Set(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		stored  string
		wantErr error
	}{
		{name: "company name", key: "company.name", value: "Acme", stored: "Acme"},
		{name: "page size canonicalised", key: "report.page_size", value: " LETTER ", stored: "Letter"},
		{name: "page size a4", key: "report.page_size", value: "a4", stored: "A4"},
		{name: "unknown page size", key: "report.page_size", value: "A5", wantErr: domain.ErrUnknownValue},
		{name: "unknown key", key: "search.mode", value: "x", wantErr: domain.ErrUnknownValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewConfigStore()
			service := NewSettingsService(store)

			err := service.Set(tt.key, tt.value)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, store.Keys())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.stored, store.GetString(tt.key))
		})
	}
}

func TestSettingsService_Set_ReportsField(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	err := service.Set("nope", "x")

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "key", vErr.Field)
	assert.Equal(t, "nope", vErr.Value)
}

func TestSettingsService_Set_StoreError(t *testing.T) {
	service := NewSettingsService(failingStore{memory.NewConfigStore()})

	err := service.Set("company.name", "Acme")

	assert.ErrorIs(t, err, errStoreFailed)
}

func TestSettingsService_Reset(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)
	require.NoError(t, service.Set("report.title", "Proof of Delivery"))

	require.NoError(t, service.Reset("report.title"))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultReportSettings().Title, settings.Title)
	_, ok := store.Get("report.title")
	assert.False(t, ok)
}

func TestSettingsService_Reset_UnknownKey(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	assert.ErrorIs(t, service.Reset("search.mode"), domain.ErrUnknownValue)
}

func TestSettingsService_Reset_StoreError(t *testing.T) {
	service := NewSettingsService(failingStore{memory.NewConfigStore()})

	assert.ErrorIs(t, service.Reset("company.name"), errStoreFailed)
}

func TestSettingsService_Keys(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	keys := service.Keys()
	require.Len(t, keys, 8)
	assert.Equal(t, "company.name", keys[0])
	assert.Contains(t, keys, "report.page_size")

	keys[0] = "changed"
	assert.Equal(t, "company.name", service.Keys()[0], "returns a copy")
}

func TestSettingsService_GetDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	assert.Equal(t, domain.DefaultReportSettings(), service.GetDefaults())
}
