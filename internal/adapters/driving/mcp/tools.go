package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/mower-cli/internal/adapters/driven/input"
	"github.com/custodia-labs/mower-cli/internal/core/domain"
	"github.com/custodia-labs/mower-cli/internal/core/ports/driven"
	"github.com/custodia-labs/mower-cli/internal/logger"
)

// sourceName names programs submitted through MCP in recorded runs.
const sourceName = "mcp"

// ProgramInput is the input schema for both tools.
type ProgramInput struct {
	Content string `json:"content" jsonschema:"the mower program: lawn corner, then a position line and an instruction line per mower"`
}

// ValidateOutput is the output schema for the validate tool.
type ValidateOutput struct {
	Valid  bool                     `json:"valid"`
	Errors []domain.ValidationError `json:"errors"`
}

// SimulateOutput is the output schema for the simulate tool.
type SimulateOutput struct {
	RunID  string        `json:"run_id"`
	Errors []string      `json:"errors"`
	Mowers []MowerOutput `json:"mowers"`
}

// MowerOutput is one mower's final state.
type MowerOutput struct {
	X           int    `json:"x"`
	Y           int    `json:"y"`
	Orientation int    `json:"orientation"`
	Heading     string `json:"heading"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "validate",
		Description: "Check a mower program line by line without simulating it",
	}, s.handleValidate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "simulate",
		Description: "Validate a mower program and, if well-formed, return each mower's final position",
	}, s.handleSimulate)
}

// handleValidate handles the validate tool invocation.
// Messages are worded in the configured style, as simulate words them.
func (s *Server) handleValidate(
	_ context.Context,
	_ *mcp.CallToolRequest,
	in ProgramInput,
) (*mcp.CallToolResult, ValidateOutput, error) {
	errs := s.ports.Validator.Validate(in.Content)

	style := s.messageStyle()
	out := ValidateOutput{
		Valid:  len(errs) == 0,
		Errors: make([]domain.ValidationError, len(errs)),
	}
	for i, e := range errs {
		e.Message = style.Render(e)
		out.Errors[i] = e
	}
	return nil, out, nil
}

func (s *Server) messageStyle() domain.MessageStyle {
	defaults := domain.DefaultAppSettings().Validation.MessageStyle
	if s.ports.Settings == nil {
		return defaults
	}
	settings, err := s.ports.Settings.Get()
	if err != nil {
		logger.Warn("using default message style: %v", err)
		return defaults
	}
	return settings.Validation.MessageStyle
}

// handleSimulate handles the simulate tool invocation.
// Empty content is treated as missing input.
func (s *Server) handleSimulate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	in ProgramInput,
) (*mcp.CallToolResult, SimulateOutput, error) {
	var source driven.InputSource
	if in.Content != "" {
		source = input.NewTextSource(sourceName, in.Content)
	}

	outcome, err := s.ports.Runner.Run(ctx, source)
	if err != nil {
		return nil, SimulateOutput{}, err
	}

	return nil, toSimulateOutput(outcome), nil
}

func toSimulateOutput(outcome *domain.Outcome) SimulateOutput {
	out := SimulateOutput{
		RunID:  outcome.ID,
		Errors: outcome.Errors,
		Mowers: make([]MowerOutput, len(outcome.Mowers)),
	}
	if out.Errors == nil {
		out.Errors = []string{}
	}

	for i, m := range outcome.Mowers {
		out.Mowers[i] = MowerOutput{
			X:           m.Position.X,
			Y:           m.Position.Y,
			Orientation: int(m.Orientation),
			Heading:     m.Orientation.String(),
		}
	}
	return out
}
