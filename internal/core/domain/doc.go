// Package domain defines the core business entities for the mower CLI.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Lawn: The rectangular grid a mower moves on
//   - Mower: A position plus an orientation
//   - Instruction: A single advance or turn command
//   - ValidationError: A grammar violation tagged with its line number
//   - Outcome: The result of one validate+simulate cycle
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
