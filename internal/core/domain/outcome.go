package domain

import "time"

// Outcome is the result of one validate+simulate cycle.
// Errors and Mowers are mutually exclusive: when any error is
// reported, no simulation took place.
type Outcome struct {
	// ID uniquely identifies this run.
	ID string `json:"id"`

	// Source names where the input came from (file path, "stdin", ...).
	Source string `json:"source"`

	// Errors are the rendered messages to surface, in line order.
	Errors []string `json:"errors,omitempty"`

	// Mowers are the final mower states, in input order.
	Mowers []Mower `json:"mowers,omitempty"`

	// CreatedAt is when the run finished.
	CreatedAt time.Time `json:"created_at"`
}

// HasErrors returns true if the outcome carries errors instead of results.
func (o *Outcome) HasErrors() bool {
	return len(o.Errors) > 0
}
