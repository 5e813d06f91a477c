package mcp

import (
	"github.com/custodia-labs/mower-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Validator checks programs line by line.
	Validator driving.Validator

	// Runner validates, simulates and records runs.
	Runner driving.Runner

	// Settings selects how validation messages are worded. Optional;
	// without it messages use the default style.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Validator == nil {
		return ErrMissingValidator
	}
	if p.Runner == nil {
		return ErrMissingRunner
	}
	return nil
}
