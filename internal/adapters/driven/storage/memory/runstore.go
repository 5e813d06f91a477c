package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/mower-cli/internal/core/domain"
	"github.com/custodia-labs/mower-cli/internal/core/ports/driven"
)

// Ensure RunStore implements the interface.
var _ driven.RunStore = (*RunStore)(nil)

// DefaultRunCapacity is how many outcomes a RunStore keeps by default.
const DefaultRunCapacity = 100

// RunStore is an in-memory implementation of driven.RunStore.
// It keeps at most capacity outcomes and evicts the oldest first.
type RunStore struct {
	mu       sync.RWMutex
	capacity int
	order    []string
	runs     map[string]domain.Outcome
}

// NewRunStore creates a new in-memory run store.
// A capacity <= 0 uses DefaultRunCapacity.
func NewRunStore(capacity int) *RunStore {
	if capacity <= 0 {
		capacity = DefaultRunCapacity
	}
	return &RunStore{
		capacity: capacity,
		runs:     make(map[string]domain.Outcome),
	}
}

// Save stores or replaces an outcome.
func (s *RunStore) Save(_ context.Context, outcome domain.Outcome) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.runs[outcome.ID]; !exists {
		s.order = append(s.order, outcome.ID)
	}
	s.runs[outcome.ID] = outcome

	for len(s.order) > s.capacity {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.runs, oldest)
	}
	return nil
}

// Get retrieves an outcome by ID.
func (s *RunStore) Get(_ context.Context, id string) (*domain.Outcome, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	outcome, ok := s.runs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &outcome, nil
}

// List returns all stored outcomes, newest first.
// Outcomes with equal timestamps keep reverse insertion order.
func (s *RunStore) List(_ context.Context) ([]domain.Outcome, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Outcome, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		result = append(result, s.runs[s.order[i]])
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}
