package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"property-ledger/internal/config"
	"property-ledger/internal/filters"
	"property-ledger/internal/models"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound   = errors.New("filter session not found")
	ErrInvalidFilters    = errors.New("invalid filter criteria")
	ErrFilterComputation = errors.New("failed to compute filter results")
)

var _ FilterSessionServiceInterface = (*FilterSessionService)(nil)

// FilterSession is a snapshot of a hosted filter state
type FilterSession struct {
	ID           uuid.UUID
	LandlordID   string
	State        filters.FilterState
	CreatedAt    time.Time
	LastAccessed time.Time
	ExpiresAt    time.Time
}

// sessionEntry serializes dispatches on one session. landlordID and id never change.
// appliedVersion is the criteria version of the results currently held.
type sessionEntry struct {
	id         uuid.UUID
	landlordID string
	createdAt  time.Time

	mu             sync.Mutex
	state          filters.FilterState
	appliedVersion uint64
	lastAccessed   time.Time
}

// FilterSessionService hosts filter states in memory. Each session is owned
// by one landlord and expires after SessionTTL without access.
type FilterSessionService struct {
	billService UtilityBillServiceInterface
	metrics     MetricsRecorderInterface
	events      FilterLoggerInterface
	logger      *slog.Logger
	cfg         config.FiltersConfig
	breaker     *CircuitBreaker
	now         func() time.Time

	mu       sync.RWMutex
	sessions map[uuid.UUID]*sessionEntry
}

// NewFilterSessionService creates a session host that computes results through billService
func NewFilterSessionService(
	billService UtilityBillServiceInterface,
	metrics MetricsRecorderInterface,
	events FilterLoggerInterface,
	logger *slog.Logger,
	cfg config.FiltersConfig,
) *FilterSessionService {
	return &FilterSessionService{
		billService: billService,
		metrics:     metrics,
		events:      events,
		logger:      logger,
		cfg:         cfg,
		breaker: NewCircuitBreaker(CircuitBreakerConfig{
			MaxFailures:    cfg.BreakerMaxFailures,
			ResetTimeout:   cfg.BreakerResetTimeout,
			ProbeSuccesses: 1,
		}),
		now:      time.Now,
		sessions: make(map[uuid.UUID]*sessionEntry),
	}
}

// Create starts a session from the initial criteria, if any, and computes its first results
func (s *FilterSessionService) Create(ctx context.Context, landlordID string, initial *filters.FilterUpdate) (*FilterSession, error) {
	state := filters.InitialState()
	if initial != nil {
		if err := initial.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFilters, err)
		}
		state = filters.InitialStateWith(*initial)
	}

	now := s.now()
	entry := &sessionEntry{
		id:           uuid.New(),
		landlordID:   landlordID,
		createdAt:    now,
		state:        state,
		lastAccessed: now,
	}

	if err := s.recompute(ctx, entry, state.Filters, state.Version); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.sessions[entry.id] = entry
	count := len(s.sessions)
	s.mu.Unlock()

	s.metrics.RecordGauge(MetricFilterSessions, float64(count), nil)
	s.events.LogSessionCreated(ctx, entry.id, landlordID)

	return s.snapshot(entry), nil
}

// Get returns the session's current criteria and results
func (s *FilterSessionService) Get(ctx context.Context, landlordID string, sessionID uuid.UUID) (*FilterSession, error) {
	entry, err := s.lookup(ctx, "get", landlordID, sessionID)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	entry.lastAccessed = s.now()
	entry.mu.Unlock()

	return s.snapshot(entry), nil
}

// UpdateFilters applies a partial criteria update and recomputes the results
func (s *FilterSessionService) UpdateFilters(ctx context.Context, landlordID string, sessionID uuid.UUID, update filters.FilterUpdate) (*FilterSession, error) {
	if err := update.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFilters, err)
	}

	entry, err := s.lookup(ctx, "update_filters", landlordID, sessionID)
	if err != nil {
		return nil, err
	}

	criteria, version := s.dispatch(entry, filters.UpdateFilters{Update: update})
	s.events.LogFiltersUpdated(ctx, sessionID, version, update.Fields())

	if err := s.recompute(ctx, entry, criteria, version); err != nil {
		return nil, err
	}
	return s.snapshot(entry), nil
}

// ResetFilters clears the criteria and recomputes the results
func (s *FilterSessionService) ResetFilters(ctx context.Context, landlordID string, sessionID uuid.UUID) (*FilterSession, error) {
	entry, err := s.lookup(ctx, "reset_filters", landlordID, sessionID)
	if err != nil {
		return nil, err
	}

	criteria, version := s.dispatch(entry, filters.ResetFilters{})
	s.events.LogFiltersReset(ctx, sessionID, version)

	if err := s.recompute(ctx, entry, criteria, version); err != nil {
		return nil, err
	}
	return s.snapshot(entry), nil
}

// Refresh recomputes the results for the criteria in effect, picking up
// bills and payments recorded since the last computation
func (s *FilterSessionService) Refresh(ctx context.Context, landlordID string, sessionID uuid.UUID) (*FilterSession, error) {
	entry, err := s.lookup(ctx, "refresh", landlordID, sessionID)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	entry.lastAccessed = s.now()
	criteria := entry.state.Filters.Clone()
	version := entry.state.Version
	entry.mu.Unlock()

	if err := s.recompute(ctx, entry, criteria, version); err != nil {
		return nil, err
	}
	return s.snapshot(entry), nil
}

// Delete removes the session
func (s *FilterSessionService) Delete(ctx context.Context, landlordID string, sessionID uuid.UUID) error {
	if _, err := s.lookup(ctx, "delete", landlordID, sessionID); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.sessions, sessionID)
	count := len(s.sessions)
	s.mu.Unlock()

	s.metrics.RecordGauge(MetricFilterSessions, float64(count), nil)
	s.events.LogSessionDeleted(ctx, sessionID)
	return nil
}

// ActiveSessions returns the number of sessions held, expired ones included
// until the janitor removes them
func (s *FilterSessionService) ActiveSessions() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// StartJanitor removes idle sessions every JanitorInterval until ctx is cancelled
func (s *FilterSessionService) StartJanitor(ctx context.Context) {
	s.logger.Info("starting filter session janitor",
		slog.Duration("session_ttl", s.cfg.SessionTTL),
		slog.Duration("interval", s.cfg.JanitorInterval),
	)

	ticker := time.NewTicker(s.cfg.JanitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("filter session janitor stopped")
			return
		case <-ticker.C:
			s.removeExpired(ctx)
		}
	}
}

func (s *FilterSessionService) removeExpired(ctx context.Context) {
	now := s.now()

	s.mu.Lock()
	expired := make(map[uuid.UUID]time.Duration)
	for id, entry := range s.sessions {
		entry.mu.Lock()
		idle := now.Sub(entry.lastAccessed)
		entry.mu.Unlock()

		if idle >= s.cfg.SessionTTL {
			delete(s.sessions, id)
			expired[id] = idle
		}
	}
	count := len(s.sessions)
	s.mu.Unlock()

	for id, idle := range expired {
		s.metrics.IncrementCounter(MetricFilterSessionExpired, nil)
		s.events.LogSessionExpired(ctx, id, idle)
	}
	if len(expired) > 0 {
		s.metrics.RecordGauge(MetricFilterSessions, float64(count), nil)
	}
}

// lookup finds a live session owned by landlordID. Sessions of other
// landlords are reported as not found.
func (s *FilterSessionService) lookup(ctx context.Context, operation, landlordID string, sessionID uuid.UUID) (*sessionEntry, error) {
	s.mu.RLock()
	entry, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}
	if entry.landlordID != landlordID {
		s.events.LogAuthorizationFailure(ctx, operation, landlordID, sessionID)
		return nil, ErrSessionNotFound
	}

	entry.mu.Lock()
	idle := s.now().Sub(entry.lastAccessed)
	entry.mu.Unlock()
	if idle >= s.cfg.SessionTTL {
		return nil, ErrSessionNotFound
	}

	return entry, nil
}

// dispatch applies a criteria action under the session lock and returns the
// criteria and version the results must now be computed for
func (s *FilterSessionService) dispatch(entry *sessionEntry, action filters.Action) (filters.FilterCriteria, uint64) {
	entry.mu.Lock()
	defer entry.mu.Unlock()

	entry.state = filters.Transition(entry.state, action)
	entry.lastAccessed = s.now()
	s.metrics.IncrementCounter(MetricFilterActions, map[string]string{"action": string(action.Type())})

	return entry.state.Filters.Clone(), entry.state.Version
}

// recompute loads and filters the landlord's bills for criteria without
// holding the session lock, then applies them as SetData. Results computed
// for an older version than the results already held are dropped, so an
// overtaken recompute that finishes last cannot replace newer results.
// While storage keeps failing the breaker fails recomputes without querying it.
func (s *FilterSessionService) recompute(ctx context.Context, entry *sessionEntry, criteria filters.FilterCriteria, version uint64) error {
	if !s.breaker.Allow() {
		s.metrics.IncrementCounter(MetricFilterComputeFailed, map[string]string{"reason": "breaker_open"})
		s.events.LogComputeFailed(ctx, entry.id, version, ErrCircuitBreakerOpen.Error())
		return fmt.Errorf("%w: %v", ErrFilterComputation, ErrCircuitBreakerOpen)
	}

	computeCtx, cancel := context.WithTimeout(ctx, s.cfg.ComputeTimeout)
	defer cancel()

	start := time.Now()
	data, err := s.compute(computeCtx, entry.landlordID, criteria, version)
	if err != nil {
		s.events.LogComputeFailed(ctx, entry.id, version, err.Error())
		if errors.Is(err, ErrPropertyNotFound) || errors.Is(err, ErrNotOwner) {
			s.breaker.RecordSuccess()
			s.metrics.IncrementCounter(MetricFilterComputeFailed, map[string]string{"reason": "not_found"})
			return err
		}
		s.metrics.IncrementCounter(MetricFilterComputeFailed, map[string]string{"reason": "storage"})
		if s.breaker.RecordFailure() {
			s.logger.WarnContext(ctx, "filter recompute circuit opened",
				"request_id", RequestIDFromContext(ctx),
				"reset_timeout", s.cfg.BreakerResetTimeout.String(),
			)
		}
		return fmt.Errorf("%w: %v", ErrFilterComputation, err)
	}
	s.breaker.RecordSuccess()
	elapsed := time.Since(start)
	s.metrics.RecordProcessingTime(MetricFilterCompute, elapsed)

	entry.mu.Lock()
	current := entry.state.Version
	stale := filters.IsStale(entry.state, data)
	superseded := data.Version < entry.appliedVersion
	if !superseded {
		entry.state = filters.Transition(entry.state, data)
		entry.appliedVersion = data.Version
	}
	entry.mu.Unlock()

	if stale {
		s.metrics.IncrementCounter(MetricFilterResultsStale, nil)
		s.events.LogStaleResults(ctx, entry.id, version, current, !superseded)
	}
	if superseded {
		return nil
	}
	s.metrics.IncrementCounter(MetricFilterActions, map[string]string{"action": string(data.Type())})
	s.events.LogResultsComputed(ctx, entry.id, version, len(data.Bills), len(data.Charges), elapsed.Milliseconds())

	return nil
}

func (s *FilterSessionService) compute(ctx context.Context, landlordID string, criteria filters.FilterCriteria, version uint64) (filters.SetData, error) {
	page, err := s.billService.GetPageData(ctx, landlordID, QueryFor(criteria))
	if err != nil {
		return filters.SetData{}, err
	}

	bills := FilterBills(page.Bills, criteria)
	charges := FilterCharges(page.Charges, BillIDSet(bills), criteria)

	return filters.SetData{
		Bills:   bills,
		Charges: charges,
		Stats:   CalculateStats(bills, charges, criteria),
		Version: version,
	}, nil
}

func (s *FilterSessionService) snapshot(entry *sessionEntry) *FilterSession {
	entry.mu.Lock()
	defer entry.mu.Unlock()

	state := entry.state
	state.Filters = entry.state.Filters.Clone()

	return &FilterSession{
		ID:           entry.id,
		LandlordID:   entry.landlordID,
		State:        state,
		CreatedAt:    entry.createdAt,
		LastAccessed: entry.lastAccessed,
		ExpiresAt:    entry.lastAccessed.Add(s.cfg.SessionTTL),
	}
}

// QueryFor builds the storage query that narrows bills before in-memory
// filtering. Only the property and a complete month range are pushed down.
func QueryFor(criteria filters.FilterCriteria) models.BillQuery {
	query := models.BillQuery{PropertyID: criteria.PropertyID}
	if r := criteria.DateRange; r != nil && r.IsValid() {
		query.StartMonth = r.Start
		query.EndMonth = r.End
	}
	return query
}
