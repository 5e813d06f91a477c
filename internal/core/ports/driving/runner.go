package driving

import (
	"context"

	"github.com/custodia-labs/mower-cli/internal/core/domain"
	"github.com/custodia-labs/mower-cli/internal/core/ports/driven"
)

// Runner sequences reading, validation and simulation for one input.
type Runner interface {
	// Run reads source once and returns either its errors or its mowers.
	// A nil source yields a single "File required" error without running
	// the validator or the simulator. Only read failures are returned as errors.
	Run(ctx context.Context, source driven.InputSource) (*domain.Outcome, error)

	// Get returns a previously recorded outcome by ID.
	Get(ctx context.Context, id string) (*domain.Outcome, error)

	// List returns recorded outcomes, newest first.
	List(ctx context.Context) ([]domain.Outcome, error)
}
