package domain

import "fmt"

// Instruction is a single mower command.
type Instruction byte

// Available instructions, keyed by their input letter.
const (
	// Advance moves one cell forward.
	Advance Instruction = 'A'

	// TurnLeft rotates 90 degrees counter-clockwise ("gauche").
	TurnLeft Instruction = 'G'

	// TurnRight rotates 90 degrees clockwise ("droite").
	TurnRight Instruction = 'D'
)

// IsValid returns true if the instruction is recognised.
func (i Instruction) IsValid() bool {
	switch i {
	case Advance, TurnLeft, TurnRight:
		return true
	default:
		return false
	}
}

// String returns the instruction letter.
func (i Instruction) String() string {
	return string(rune(i))
}

// ParseInstructions converts an instruction line into a sequence.
// An empty line yields an empty sequence.
func ParseInstructions(line string) ([]Instruction, error) {
	instructions := make([]Instruction, 0, len(line))
	for idx := 0; idx < len(line); idx++ {
		instr := Instruction(line[idx])
		if !instr.IsValid() {
			return nil, fmt.Errorf("%w: unknown instruction %q at column %d", ErrInvalidInput, line[idx], idx+1)
		}
		instructions = append(instructions, instr)
	}
	return instructions, nil
}
