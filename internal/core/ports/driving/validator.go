package driving

import "github.com/custodia-labs/mower-cli/internal/core/domain"

// Validator checks raw input text against the positional line grammar.
type Validator interface {
	// Validate returns every grammar violation in line order.
	// An empty result means the text is well-formed. It never fails.
	Validate(content string) []domain.ValidationError
}
