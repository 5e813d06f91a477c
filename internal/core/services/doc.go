// Package services implements the driving port interfaces.
// Services contain the core business logic: grammar validation,
// mower simulation and the run sequence that ties them together.
//
// Services are pure Go with no external dependencies.
package services
