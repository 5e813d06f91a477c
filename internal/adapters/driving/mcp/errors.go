// Package mcp provides an MCP (Model Context Protocol) server adapter for mower.
// It lets AI assistants validate and simulate mower programs and read back recent runs.
package mcp

import "errors"

var (
	// ErrMissingValidator is returned when the validator is not provided.
	ErrMissingValidator = errors.New("mcp: validator is required")

	// ErrMissingRunner is returned when the runner is not provided.
	ErrMissingRunner = errors.New("mcp: runner is required")
)
