package driven

import (
	"context"

	"github.com/custodia-labs/mower-cli/internal/core/domain"
)

// RunStore keeps the outcomes produced during the life of the process.
type RunStore interface {
	// Save records an outcome, replacing any with the same ID.
	Save(ctx context.Context, outcome domain.Outcome) error

	// Get retrieves an outcome by ID.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id string) (*domain.Outcome, error)

	// List returns all outcomes, newest first.
	List(ctx context.Context) ([]domain.Outcome, error)
}
