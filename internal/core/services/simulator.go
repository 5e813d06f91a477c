package services

import (
	"fmt"

	"github.com/custodia-labs/mower-cli/internal/core/domain"
	"github.com/custodia-labs/mower-cli/internal/core/ports/driving"
	"github.com/custodia-labs/mower-cli/internal/logger"
)

// Ensure SimulatorService implements the interface.
var _ driving.Simulator = (*SimulatorService)(nil)

// SimulatorService executes mower instructions on a lawn.
// Mowers run one after another, in input order, and never see each other.
type SimulatorService struct{}

// NewSimulatorService creates a new simulator service.
func NewSimulatorService() *SimulatorService {
	return &SimulatorService{}
}

// LoadMowers simulates every mower block and returns their final states.
func (s *SimulatorService) LoadMowers(content string) ([]domain.Mower, error) {
	lawn, blocks, err := ParseBlocks(content)
	if err != nil {
		return nil, err
	}

	logger.Section("Simulation")
	logger.Debug("Lawn: %dx%d, mowers: %d", lawn.MaxX, lawn.MaxY, len(blocks))

	mowers := make([]domain.Mower, 0, len(blocks))
	for _, block := range blocks {
		final := block.Run(lawn)
		logger.Debug("Mower %d: %s %s -> %s %s (%d instruction(s))",
			block.Index,
			block.Start.Position, block.Start.Orientation.Letter(),
			final.Position, final.Orientation.Letter(),
			len(block.Instructions))
		mowers = append(mowers, final)
	}
	return mowers, nil
}

// ParseBlocks parses well-formed input into the lawn and its mower blocks.
// A position line with no instruction line after it is a mower with no
// instructions. Any line breaking the grammar yields ErrMalformedInput.
func ParseBlocks(content string) (domain.Lawn, []domain.MowerBlock, error) {
	lines := splitLines(content)

	lawn, err := parseLawn(lines[0])
	if err != nil {
		return domain.Lawn{}, nil, err
	}

	var blocks []domain.MowerBlock
	for i := 1; i < len(lines); i += 2 {
		start, err := parseStart(i+1, lines[i])
		if err != nil {
			return domain.Lawn{}, nil, err
		}

		var instructions []domain.Instruction
		if i+1 < len(lines) {
			instructions, err = parseInstructionLine(i+2, lines[i+1])
			if err != nil {
				return domain.Lawn{}, nil, err
			}
		}

		blocks = append(blocks, domain.MowerBlock{
			Index:        len(blocks),
			Start:        start,
			Instructions: instructions,
		})
	}
	return lawn, blocks, nil
}

func parseLawn(line string) (domain.Lawn, error) {
	if !cornerPattern.MatchString(line) {
		return domain.Lawn{}, malformed(1, line)
	}
	return domain.Lawn{MaxX: digit(line[0]), MaxY: digit(line[1])}, nil
}

func parseStart(number int, line string) (domain.Mower, error) {
	if !positionPattern.MatchString(line) {
		return domain.Mower{}, malformed(number, line)
	}
	orientation, err := domain.ParseOrientation(line[2])
	if err != nil {
		return domain.Mower{}, fmt.Errorf("%w: line %d: %v", domain.ErrMalformedInput, number, err)
	}
	return domain.NewMower(digit(line[0]), digit(line[1]), orientation), nil
}

func parseInstructionLine(number int, line string) ([]domain.Instruction, error) {
	if !instructionsPattern.MatchString(line) {
		return nil, malformed(number, line)
	}
	instructions, err := domain.ParseInstructions(line)
	if err != nil {
		return nil, fmt.Errorf("%w: line %d: %v", domain.ErrMalformedInput, number, err)
	}
	return instructions, nil
}

func malformed(number int, line string) error {
	return fmt.Errorf("%w: line %d: %q", domain.ErrMalformedInput, number, line)
}

// digit converts an ASCII digit already matched by a pattern.
func digit(b byte) int {
	return int(b - '0')
}
