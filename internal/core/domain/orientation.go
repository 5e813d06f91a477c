package domain

import "fmt"

// Orientation is the compass facing of a mower.
// Values are ordered clockwise so turns are modular arithmetic.
type Orientation int

// Orientations in clockwise order. The ordinal is part of the output format.
const (
	North Orientation = iota
	East
	South
	West
)

const orientationCount = 4

// ParseOrientation converts an orientation letter (N, E, S, W).
func ParseOrientation(letter byte) (Orientation, error) {
	switch letter {
	case 'N':
		return North, nil
	case 'E':
		return East, nil
	case 'S':
		return South, nil
	case 'W':
		return West, nil
	default:
		return 0, fmt.Errorf("%w: unknown orientation %q", ErrInvalidInput, letter)
	}
}

// IsValid returns true if the orientation is one of the four facings.
func (o Orientation) IsValid() bool {
	return o >= North && o <= West
}

// TurnLeft returns the orientation after a 90 degree counter-clockwise turn.
func (o Orientation) TurnLeft() Orientation {
	return (o + orientationCount - 1) % orientationCount
}

// TurnRight returns the orientation after a 90 degree clockwise turn.
func (o Orientation) TurnRight() Orientation {
	return (o + 1) % orientationCount
}

// Delta returns the unit displacement of one advance in this orientation.
func (o Orientation) Delta() (dx, dy int) {
	switch o {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case South:
		return 0, -1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Letter returns the single-letter form used in input files.
func (o Orientation) Letter() string {
	switch o {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return "?"
	}
}

// String returns the orientation name.
func (o Orientation) String() string {
	switch o {
	case North:
		return "NORTH"
	case East:
		return "EAST"
	case South:
		return "SOUTH"
	case West:
		return "WEST"
	default:
		return "UNKNOWN"
	}
}
