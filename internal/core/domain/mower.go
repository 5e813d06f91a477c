package domain

import "fmt"

// Mower is a mower's state: where it is and which way it faces.
// Mowers are values; every step returns a new Mower.
type Mower struct {
	Position    Position    `json:"position"`
	Orientation Orientation `json:"orientation"`
}

// NewMower creates a mower at (x, y) facing o.
func NewMower(x, y int, o Orientation) Mower {
	return Mower{Position: Position{X: x, Y: y}, Orientation: o}
}

// Execute applies one instruction on the given lawn.
// An advance that would leave the lawn is ignored.
func (m Mower) Execute(instr Instruction, lawn Lawn) Mower {
	switch instr {
	case Advance:
		next := m.Position.Translate(m.Orientation.Delta())
		if lawn.Contains(next) {
			m.Position = next
		}
	case TurnLeft:
		m.Orientation = m.Orientation.TurnLeft()
	case TurnRight:
		m.Orientation = m.Orientation.TurnRight()
	}
	return m
}

// Run applies instructions left to right and returns the final state.
func (m Mower) Run(instructions []Instruction, lawn Lawn) Mower {
	for _, instr := range instructions {
		m = m.Execute(instr, lawn)
	}
	return m
}

// String renders the mower the way results are reported to users.
func (m Mower) String() string {
	return fmt.Sprintf("X = %d, Y = %d, Orientation = %d", m.Position.X, m.Position.Y, int(m.Orientation))
}

// MowerBlock is one mower's description in the input: its starting
// state and its instruction sequence. Index is the mower's 0-based
// position among the blocks.
type MowerBlock struct {
	Index        int
	Start        Mower
	Instructions []Instruction
}

// Run simulates the block on the lawn.
func (b MowerBlock) Run(lawn Lawn) Mower {
	return b.Start.Run(b.Instructions, lawn)
}
