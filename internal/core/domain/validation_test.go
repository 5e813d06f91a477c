package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuleForLine(t *testing.T) {
	tests := []struct {
		line     int
		expected Rule
	}{
		{1, RuleCorner},
		{2, RulePosition},
		{3, RuleInstructions},
		{4, RulePosition},
		{5, RuleInstructions},
		{10, RulePosition},
		{11, RuleInstructions},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, RuleForLine(tt.line), "line %d", tt.line)
	}
}

func TestRule_Message(t *testing.T) {
	assert.Equal(t, "Error parsing the corner value", RuleCorner.Message())
	assert.Equal(t, "Error parsing the starting position and orientation", RulePosition.Message())
	assert.Equal(t, "Error parsing the instructions", RuleInstructions.Message())
	assert.Equal(t, "Error parsing the input", Rule("other").Message())
}

func TestValidationError_Error(t *testing.T) {
	err := NewValidationError(1, RuleCorner)

	assert.Equal(t, 1, err.Line)
	assert.Equal(t, RuleCorner, err.Rule)
	assert.Equal(t, "1 Error parsing the corner value", err.Error())
}

func TestMessageStyle_Render(t *testing.T) {
	err := NewValidationError(3, RuleInstructions)

	assert.Equal(t, "3 Error parsing the instructions", MessageStyleDetailed.Render(err))
	assert.Equal(t, "error at line 3", MessageStyleGeneric.Render(err))
	assert.Equal(t, "3 Error parsing the instructions", MessageStyle("").Render(err))
}

func TestMessageStyle_RenderAll(t *testing.T) {
	errs := []ValidationError{
		NewValidationError(1, RuleCorner),
		NewValidationError(4, RulePosition),
	}

	assert.Equal(t, []string{"error at line 1", "error at line 4"}, MessageStyleGeneric.RenderAll(errs))
	assert.Empty(t, MessageStyleGeneric.RenderAll(nil))
}

func TestMessageStyle_IsValid(t *testing.T) {
	for _, s := range AllMessageStyles() {
		assert.True(t, s.IsValid(), s.String())
	}
	assert.False(t, MessageStyle("verbose").IsValid())
}
