package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/mower-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for mower resources.
	uriScheme = "mower://"

	runsURI = uriScheme + "runs"

	jsonMIME = "application/json"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         runsURI,
		Name:        "runs",
		Description: "Recent runs, newest first",
		MIMEType:    jsonMIME,
	}, s.handleRunsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: runsURI + "/{runId}",
		Name:        "run",
		Description: "A single run with its errors or final mower positions",
		MIMEType:    jsonMIME,
	}, s.handleRunResource)
}

// runInfo is the summary listed by the runs resource.
type runInfo struct {
	ID        string `json:"id"`
	Source    string `json:"source"`
	Errors    int    `json:"errors"`
	Mowers    int    `json:"mowers"`
	CreatedAt string `json:"created_at"`
}

// handleRunsResource lists recorded runs.
func (s *Server) handleRunsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	runs, err := s.ports.Runner.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}

	infos := make([]runInfo, len(runs))
	for i := range runs {
		infos[i] = runInfo{
			ID:        runs[i].ID,
			Source:    runs[i].Source,
			Errors:    len(runs[i].Errors),
			Mowers:    len(runs[i].Mowers),
			CreatedAt: runs[i].CreatedAt.Format(time.RFC3339),
		}
	}

	return jsonResult(req.Params.URI, infos)
}

// handleRunResource returns one recorded run.
func (s *Server) handleRunResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	runID := extractRunID(req.Params.URI)
	if runID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	outcome, err := s.ports.Runner.Get(ctx, runID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting run: %w", err)
	}

	return jsonResult(req.Params.URI, toSimulateOutput(outcome))
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: jsonMIME,
			Text:     string(data),
		}},
	}, nil
}

// extractRunID extracts the run ID from a URI like mower://runs/{runId}.
func extractRunID(uri string) string {
	const prefix = runsURI + "/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
