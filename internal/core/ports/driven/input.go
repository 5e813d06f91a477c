package driven

import "context"

// InputSource supplies the raw text of one input description.
type InputSource interface {
	// Name identifies the source in outcomes and logs (path, "stdin", ...).
	Name() string

	// Read returns the whole text. It returns domain.ErrFileRequired
	// when there is no input to read at all.
	Read(ctx context.Context) (string, error)
}

// InputWatcher reports changes to an input file.
type InputWatcher interface {
	// Watch emits once per settled change to path until ctx is cancelled.
	// The channel is closed when watching stops.
	Watch(ctx context.Context, path string) (<-chan struct{}, error)
}
