package mcp

import (
	"context"

	"github.com/custodia-labs/mower-cli/internal/core/domain"
	"github.com/custodia-labs/mower-cli/internal/core/ports/driven"
)

// mockValidator is a mock implementation of driving.Validator.
type mockValidator struct {
	errs    []domain.ValidationError
	content string
}

func (m *mockValidator) Validate(content string) []domain.ValidationError {
	m.content = content
	return m.errs
}

// mockRunner is a mock implementation of driving.Runner.
type mockRunner struct {
	outcome *domain.Outcome
	runs    []domain.Outcome
	err     error
	source  driven.InputSource
	called  bool
}

func (m *mockRunner) Run(_ context.Context, source driven.InputSource) (*domain.Outcome, error) {
	m.called = true
	m.source = source
	if source == nil {
		return &domain.Outcome{ID: "run-missing", Errors: []string{domain.ErrFileRequired.Error()}}, nil
	}
	return m.outcome, m.err
}

func (m *mockRunner) Get(_ context.Context, id string) (*domain.Outcome, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.runs {
		if m.runs[i].ID == id {
			return &m.runs[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockRunner) List(_ context.Context) ([]domain.Outcome, error) {
	return m.runs, m.err
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings domain.AppSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	if m.err != nil {
		return nil, m.err
	}
	s := m.settings
	return &s, nil
}

func (m *mockSettingsService) Save(settings *domain.AppSettings) error {
	m.settings = *settings
	return m.err
}

func (m *mockSettingsService) SetMessageStyle(style domain.MessageStyle) error {
	m.settings.Validation.MessageStyle = style
	return m.err
}

func (m *mockSettingsService) SetOutputFormat(format domain.OutputFormat) error {
	m.settings.Output.Format = format
	return m.err
}

func (m *mockSettingsService) SetColor(enabled bool) error {
	m.settings.Output.Color = enabled
	return m.err
}

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}
