package domain

import "fmt"

// Position is a cell on the lawn grid.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Translate returns the position moved by (dx, dy).
func (p Position) Translate(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// String returns the position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Lawn is the rectangular grid mowers move on.
// The origin (0,0) is the lower-left corner and (MaxX, MaxY) the
// upper-right corner; both corners are inside the lawn.
type Lawn struct {
	MaxX int `json:"max_x"`
	MaxY int `json:"max_y"`
}

// Contains returns true if p lies inside the lawn.
func (l Lawn) Contains(p Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X <= l.MaxX && p.Y <= l.MaxY
}
