// Package memory provides in-memory implementations of driven port interfaces.
//
// Stores:
//   - ConfigStore: Configuration without a backing file
//   - RunStore: Bounded history of run outcomes for the life of the process
package memory
