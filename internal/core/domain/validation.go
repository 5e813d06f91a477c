package domain

import "fmt"

// Rule identifies which line of the input grammar a line is checked against.
// The rule is chosen by the line's 1-based position in the input.
type Rule string

// Grammar rules.
const (
	// RuleCorner is line 1: the lawn's upper-right corner, two digits.
	RuleCorner Rule = "corner"

	// RulePosition is every even line: two digits and an orientation letter.
	RulePosition Rule = "position"

	// RuleInstructions is every odd line after the first: one or more of A, D, G.
	RuleInstructions Rule = "instructions"
)

// RuleForLine returns the rule that applies to the given 1-based line.
func RuleForLine(line int) Rule {
	switch {
	case line == 1:
		return RuleCorner
	case line%2 == 0:
		return RulePosition
	default:
		return RuleInstructions
	}
}

// Message returns the user-facing description of a violation of the rule.
func (r Rule) Message() string {
	switch r {
	case RuleCorner:
		return "Error parsing the corner value"
	case RulePosition:
		return "Error parsing the starting position and orientation"
	case RuleInstructions:
		return "Error parsing the instructions"
	default:
		return "Error parsing the input"
	}
}

// String returns the string representation.
func (r Rule) String() string {
	return string(r)
}

// ValidationError is a grammar violation found on one input line.
type ValidationError struct {
	// Line is the 1-based line number.
	Line int `json:"line"`

	// Rule is the grammar rule the line failed.
	Rule Rule `json:"rule"`

	// Message describes the violation.
	Message string `json:"message"`
}

// NewValidationError creates the error for a line failing rule.
func NewValidationError(line int, rule Rule) ValidationError {
	return ValidationError{Line: line, Rule: rule, Message: rule.Message()}
}

// Error implements the error interface as "<line> <message>".
func (e ValidationError) Error() string {
	return fmt.Sprintf("%d %s", e.Line, e.Message)
}

// MessageStyle selects how validation errors are surfaced to users.
type MessageStyle string

// Available message styles.
const (
	// MessageStyleDetailed names the failed rule, e.g. "1 Error parsing the corner value".
	MessageStyleDetailed MessageStyle = "detailed"

	// MessageStyleGeneric only names the line, e.g. "error at line 1".
	MessageStyleGeneric MessageStyle = "generic"
)

// IsValid returns true if the style is recognised.
func (s MessageStyle) IsValid() bool {
	return s == MessageStyleDetailed || s == MessageStyleGeneric
}

// String returns the string representation.
func (s MessageStyle) String() string {
	return string(s)
}

// Render formats a validation error in this style.
// Unknown styles render as detailed.
func (s MessageStyle) Render(e ValidationError) string {
	if s == MessageStyleGeneric {
		return fmt.Sprintf("error at line %d", e.Line)
	}
	return e.Error()
}

// RenderAll formats a list of validation errors, preserving order.
func (s MessageStyle) RenderAll(errs []ValidationError) []string {
	out := make([]string, len(errs))
	for i := range errs {
		out[i] = s.Render(errs[i])
	}
	return out
}
