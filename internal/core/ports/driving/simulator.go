package driving

import "github.com/custodia-labs/mower-cli/internal/core/domain"

// Simulator runs every mower described by already-validated input text.
type Simulator interface {
	// LoadMowers returns the final state of each mower, in input order.
	// Text that breaks the grammar yields domain.ErrMalformedInput.
	LoadMowers(content string) ([]domain.Mower, error)
}
