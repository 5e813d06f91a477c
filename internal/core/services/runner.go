package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/custodia-labs/mower-cli/internal/core/domain"
	"github.com/custodia-labs/mower-cli/internal/core/ports/driven"
	"github.com/custodia-labs/mower-cli/internal/core/ports/driving"
	"github.com/custodia-labs/mower-cli/internal/logger"
)

// Ensure RunnerService implements the interface.
var _ driving.Runner = (*RunnerService)(nil)

// RunnerService reads one input, validates it and, only when it is
// well-formed, simulates it. Errors and mowers never appear together.
type RunnerService struct {
	validator driving.Validator
	simulator driving.Simulator
	settings  driving.SettingsService
	runStore  driven.RunStore
	newID     func() string
	now       func() time.Time
	seq       atomic.Uint64
}

// NewRunnerService creates a new runner service.
// The settings and runStore parameters are optional (can be nil).
func NewRunnerService(
	validator driving.Validator,
	simulator driving.Simulator,
	settings driving.SettingsService,
	runStore driven.RunStore,
) *RunnerService {
	return &RunnerService{
		validator: validator,
		simulator: simulator,
		settings:  settings,
		runStore:  runStore,
		now:       time.Now,
	}
}

// SetIDGenerator sets the function used to assign run IDs.
// Without one, IDs are a per-service sequence number.
func (s *RunnerService) SetIDGenerator(fn func() string) {
	s.newID = fn
}

// Run reads source once and returns either its errors or its mowers.
func (s *RunnerService) Run(ctx context.Context, source driven.InputSource) (*domain.Outcome, error) {
	logger.Section("Run")

	outcome := &domain.Outcome{ID: s.nextID()}

	if source == nil {
		logger.Warn("No input supplied")
		return s.finish(ctx, outcome, []string{domain.ErrFileRequired.Error()}, nil)
	}
	outcome.Source = source.Name()
	logger.Debug("Run %s, source: %s", outcome.ID, outcome.Source)

	content, err := source.Read(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrFileRequired) {
			logger.Warn("Source %s has no input", outcome.Source)
			return s.finish(ctx, outcome, []string{domain.ErrFileRequired.Error()}, nil)
		}
		return nil, fmt.Errorf("read %s: %w", outcome.Source, err)
	}

	if errs := s.validator.Validate(content); len(errs) > 0 {
		logger.Info("Validation failed with %d error(s)", len(errs))
		return s.finish(ctx, outcome, s.messageStyle().RenderAll(errs), nil)
	}

	mowers, err := s.simulator.LoadMowers(content)
	if err != nil {
		return nil, fmt.Errorf("simulate %s: %w", outcome.Source, err)
	}
	logger.Info("Simulated %d mower(s)", len(mowers))
	return s.finish(ctx, outcome, nil, mowers)
}

// Get returns a previously recorded outcome by ID.
func (s *RunnerService) Get(ctx context.Context, id string) (*domain.Outcome, error) {
	if s.runStore == nil {
		return nil, domain.ErrNotFound
	}
	return s.runStore.Get(ctx, id)
}

// List returns recorded outcomes, newest first.
func (s *RunnerService) List(ctx context.Context) ([]domain.Outcome, error) {
	if s.runStore == nil {
		return nil, nil
	}
	return s.runStore.List(ctx)
}

func (s *RunnerService) finish(
	ctx context.Context,
	outcome *domain.Outcome,
	errs []string,
	mowers []domain.Mower,
) (*domain.Outcome, error) {
	outcome.Errors = errs
	outcome.Mowers = mowers
	outcome.CreatedAt = s.now()

	if s.runStore != nil {
		if err := s.runStore.Save(ctx, *outcome); err != nil {
			// Recording is best effort; the outcome is still returned.
			logger.Warn("Failed to record run %s: %v", outcome.ID, err)
		}
	}
	return outcome, nil
}

func (s *RunnerService) messageStyle() domain.MessageStyle {
	if s.settings == nil {
		return domain.DefaultAppSettings().Validation.MessageStyle
	}
	settings, err := s.settings.Get()
	if err != nil {
		logger.Warn("Failed to load settings, using defaults: %v", err)
		return domain.DefaultAppSettings().Validation.MessageStyle
	}
	return settings.Validation.MessageStyle
}

func (s *RunnerService) nextID() string {
	if s.newID != nil {
		return s.newID()
	}
	return "run-" + strconv.FormatUint(s.seq.Add(1), 10)
}
