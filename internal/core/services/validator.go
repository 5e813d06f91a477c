package services

import (
	"regexp"

	"github.com/custodia-labs/mower-cli/internal/core/domain"
	"github.com/custodia-labs/mower-cli/internal/core/ports/driving"
	"github.com/custodia-labs/mower-cli/internal/logger"
)

// Ensure ValidatorService implements the interface.
var _ driving.Validator = (*ValidatorService)(nil)

// Line patterns, one per grammar rule. All are anchored on both ends.
var (
	cornerPattern       = regexp.MustCompile(`^[0-9]{2}$`)
	positionPattern     = regexp.MustCompile(`^[0-9]{2}[NEWS]{1}$`)
	instructionsPattern = regexp.MustCompile(`^[ADG]+$`)
)

// ValidatorService checks input text line by line.
// It holds no state and is safe for concurrent use.
type ValidatorService struct{}

// NewValidatorService creates a new validator service.
func NewValidatorService() *ValidatorService {
	return &ValidatorService{}
}

// Validate returns every grammar violation in line order.
// Scanning never stops early so one pass reports all problems.
func (s *ValidatorService) Validate(content string) []domain.ValidationError {
	lines := splitLines(content)
	logger.Debug("Validating %d line(s)", len(lines))

	var errs []domain.ValidationError
	for i, line := range lines {
		number := i + 1
		rule := domain.RuleForLine(number)
		if !matchesRule(rule, line) {
			logger.Debug("Line %d fails %s rule: %q", number, rule, line)
			errs = append(errs, domain.NewValidationError(number, rule))
		}
	}
	return errs
}

// matchesRule reports whether line satisfies rule.
func matchesRule(rule domain.Rule, line string) bool {
	switch rule {
	case domain.RuleCorner:
		return cornerPattern.MatchString(line)
	case domain.RulePosition:
		return positionPattern.MatchString(line)
	case domain.RuleInstructions:
		return instructionsPattern.MatchString(line)
	default:
		return false
	}
}
