package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/mower-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/mower-cli/internal/core/domain"
)

func TestNewSettingsService(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.Equal(t, domain.DefaultAppSettings(), *settings)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("validation.messages", "generic")
	_ = store.Set("output.format", "json")
	_ = store.Set("output.color", false)

	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.MessageStyleGeneric, settings.Validation.MessageStyle)
	assert.Equal(t, domain.OutputFormatJSON, settings.Output.Format)
	assert.False(t, settings.Output.Color)
}

func TestSettingsService_Get_InvalidValuesReturnDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("validation.messages", "shouty")
	_ = store.Set("output.format", "yaml")

	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.MessageStyleDetailed, settings.Validation.MessageStyle)
	assert.Equal(t, domain.OutputFormatText, settings.Output.Format)
}

func TestSettingsService_Save(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings := &domain.AppSettings{
		Validation: domain.ValidationSettings{MessageStyle: domain.MessageStyleGeneric},
		Output:     domain.OutputSettings{Format: domain.OutputFormatJSON, Color: false},
	}

	require.NoError(t, service.Save(settings))

	assert.Equal(t, "generic", store.GetString("validation.messages"))
	assert.Equal(t, "json", store.GetString("output.format"))
	val, ok := store.Get("output.color")
	assert.True(t, ok)
	assert.Equal(t, false, val)
}

func TestSettingsService_SetMessageStyle(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	require.NoError(t, service.SetMessageStyle(domain.MessageStyleGeneric))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.MessageStyleGeneric, settings.Validation.MessageStyle)
}

func TestSettingsService_SetMessageStyle_Invalid(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	err := service.SetMessageStyle(domain.MessageStyle("loud"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid message style")
}

func TestSettingsService_SetOutputFormat(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	require.NoError(t, service.SetOutputFormat(domain.OutputFormatJSON))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.OutputFormatJSON, settings.Output.Format)

	err = service.SetOutputFormat(domain.OutputFormat("xml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestSettingsService_SetColor(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	require.NoError(t, service.SetColor(false))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.False(t, settings.Output.Color)
	// Other settings are preserved
	assert.Equal(t, domain.MessageStyleDetailed, settings.Validation.MessageStyle)
}

func TestSettingsService_GetDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())
	assert.Equal(t, domain.DefaultAppSettings(), service.GetDefaults())
}
