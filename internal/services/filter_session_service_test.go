package services

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"property-ledger/internal/config"
	"property-ledger/internal/dto"
	"property-ledger/internal/filters"
	"property-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"
)

// stubBillService serves a fixed page of bills and records the queries it receives
type stubBillService struct {
	mu      sync.Mutex
	page    models.UtilityPageData
	err     error
	queries []models.BillQuery
}

func (s *stubBillService) GetPageData(ctx context.Context, landlordID string, query models.BillQuery) (*models.UtilityPageData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries = append(s.queries, query)
	if s.err != nil {
		return nil, s.err
	}
	page := s.page
	return &page, nil
}

func (s *stubBillService) lastQuery() models.BillQuery {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queries[len(s.queries)-1]
}

func (s *stubBillService) AddBill(context.Context, string, *dto.CreateUtilityBillRequest) (*models.UtilityBill, error) {
	return nil, errors.New("not implemented")
}

func (s *stubBillService) SetLandlordPaid(context.Context, string, uuid.UUID, bool) (*models.UtilityBill, error) {
	return nil, errors.New("not implemented")
}

func (s *stubBillService) RecordPayment(context.Context, string, uuid.UUID, *dto.RecordPaymentRequest) (*models.UtilityPayment, error) {
	return nil, errors.New("not implemented")
}

func (s *stubBillService) GetFilterOptions(context.Context, string, uuid.UUID) (*models.FilterOptions, error) {
	return nil, errors.New("not implemented")
}

// gatedBillService holds GetPageData calls for one property until released
type gatedBillService struct {
	*stubBillService
	property uuid.UUID
	entered  chan struct{}
	release  chan struct{}
}

func (g *gatedBillService) GetPageData(ctx context.Context, landlordID string, query models.BillQuery) (*models.UtilityPageData, error) {
	if query.PropertyID == g.property {
		g.entered <- struct{}{}
		<-g.release
	}
	return g.stubBillService.GetPageData(ctx, landlordID, query)
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// FilterSessionServiceSuite defines the test suite for FilterSessionService
type FilterSessionServiceSuite struct {
	suite.Suite
	bills      *stubBillService
	clock      *fakeClock
	logs       *bytes.Buffer
	service    *FilterSessionService
	ctx        context.Context
	landlordID string
	propertyA  uuid.UUID
	propertyB  uuid.UUID
	leaseA     uuid.UUID
	leaseB     uuid.UUID
}

func (s *FilterSessionServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.landlordID = "user_" + uuid.NewString()
	s.propertyA, s.propertyB = uuid.New(), uuid.New()
	s.leaseA, s.leaseB = uuid.New(), uuid.New()

	billA := models.UtilityBill{ID: uuid.New(), PropertyID: s.propertyA, UtilityType: "Electric", Provider: "City Power", BillMonth: "2024-03", TotalAmount: decimal.NewFromInt(100)}
	billA2 := models.UtilityBill{ID: uuid.New(), PropertyID: s.propertyA, UtilityType: "Water", Provider: "Metro Water", BillMonth: "2024-02", TotalAmount: decimal.NewFromInt(40), LandlordPaidUtilityCompany: true}
	billB := models.UtilityBill{ID: uuid.New(), PropertyID: s.propertyB, UtilityType: "Gas", Provider: "Northern Gas", BillMonth: "2024-03", TotalAmount: decimal.NewFromInt(60)}

	s.bills = &stubBillService{page: models.UtilityPageData{
		Bills: []models.UtilityBill{billA, billA2, billB},
		Charges: []models.TenantCharge{
			{LeaseID: s.leaseA, UtilityBillID: billA.ID, ChargedAmount: decimal.NewFromInt(50), RemainingAmount: decimal.NewFromInt(20)},
			{LeaseID: s.leaseA, UtilityBillID: billA2.ID, ChargedAmount: decimal.NewFromInt(20), RemainingAmount: decimal.Zero},
			{LeaseID: s.leaseB, UtilityBillID: billB.ID, ChargedAmount: decimal.NewFromInt(30), RemainingAmount: decimal.NewFromInt(30)},
		},
	}}

	s.clock = &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	s.logs = &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(s.logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s.service = NewFilterSessionService(
		s.bills,
		NewPrometheusMetrics(prometheus.NewRegistry()),
		NewFilterLogger(logger),
		logger,
		config.FiltersConfig{
			SessionTTL:      30 * time.Minute,
			JanitorInterval: 10 * time.Millisecond,
			ComputeTimeout:  time.Second,
		},
	)
	s.service.now = s.clock.Now
	s.service.breaker.now = s.clock.Now
}

func TestFilterSessionServiceSuite(t *testing.T) {
	suite.Run(t, new(FilterSessionServiceSuite))
}

func (s *FilterSessionServiceSuite) create(initial *filters.FilterUpdate) *FilterSession {
	session, err := s.service.Create(s.ctx, s.landlordID, initial)
	s.Require().NoError(err)
	return session
}

func (s *FilterSessionServiceSuite) TestCreate_ComputesInitialResults() {
	session := s.create(nil)

	s.NotEqual(uuid.Nil, session.ID)
	s.Equal(s.landlordID, session.LandlordID)
	s.Equal(filters.InitialCriteria(), session.State.Filters)
	s.Equal(uint64(0), session.State.Version)
	s.Len(session.State.FilteredBills, 3)
	s.Len(session.State.FilteredCharges, 3)
	s.Equal(int64(3), session.State.Stats.TotalBills)
	s.Equal(int64(2), session.State.Stats.UnpaidBills)
	s.Equal("200", session.State.Stats.TotalAmount.String())
	s.Equal(s.clock.Now().Add(30*time.Minute), session.ExpiresAt)
	s.Equal(1, s.service.ActiveSessions())
}

func (s *FilterSessionServiceSuite) TestCreate_WithInitialCriteria() {
	session := s.create(&filters.FilterUpdate{PropertyID: &s.propertyA, TenantID: &s.leaseA})

	s.Equal(s.propertyA, session.State.Filters.PropertyID)
	s.Equal(s.leaseA, session.State.Filters.TenantID)
	s.Len(session.State.FilteredBills, 2)
	s.Len(session.State.FilteredCharges, 2)
	// tenant amounts come from charges
	s.Equal("70", session.State.Stats.TotalAmount.String())
	s.Equal("20", session.State.Stats.UnpaidAmount.String())
	s.Equal(s.propertyA, s.bills.lastQuery().PropertyID)
}

func (s *FilterSessionServiceSuite) TestCreate_InvalidPaidStatus() {
	status := filters.PaidStatus("overdue")

	_, err := s.service.Create(s.ctx, s.landlordID, &filters.FilterUpdate{PaidStatus: &status})

	s.ErrorIs(err, ErrInvalidFilters)
	s.Zero(s.service.ActiveSessions())
}

func (s *FilterSessionServiceSuite) TestCreate_ComputeFailure() {
	s.bills.err = errors.New("database unavailable")

	_, err := s.service.Create(s.ctx, s.landlordID, nil)

	s.ErrorIs(err, ErrFilterComputation)
	s.Zero(s.service.ActiveSessions())
}

func (s *FilterSessionServiceSuite) TestUpdateFilters_PropertyChangeClearsTenant() {
	session := s.create(&filters.FilterUpdate{PropertyID: &s.propertyA, TenantID: &s.leaseA})

	updated, err := s.service.UpdateFilters(s.ctx, s.landlordID, session.ID, filters.FilterUpdate{PropertyID: &s.propertyB})

	s.Require().NoError(err)
	s.Equal(s.propertyB, updated.State.Filters.PropertyID)
	s.Equal(uuid.Nil, updated.State.Filters.TenantID)
	s.Equal(session.State.Version+1, updated.State.Version)
	s.Require().Len(updated.State.FilteredBills, 1)
	s.Equal("Gas", updated.State.FilteredBills[0].UtilityType)
	s.Len(updated.State.FilteredCharges, 1)
	s.Contains(s.logs.String(), `"fields":["propertyId"]`)
}

func (s *FilterSessionServiceSuite) TestUpdateFilters_DateRangePushedDown() {
	session := s.create(nil)
	r := filters.DateRange{Start: "2024-03", End: "2024-03"}

	updated, err := s.service.UpdateFilters(s.ctx, s.landlordID, session.ID, filters.FilterUpdate{DateRange: &r})

	s.Require().NoError(err)
	s.Equal(&r, updated.State.Filters.DateRange)
	s.Len(updated.State.FilteredBills, 2)
	q := s.bills.lastQuery()
	s.Equal("2024-03", q.StartMonth)
	s.Equal("2024-03", q.EndMonth)
}

func (s *FilterSessionServiceSuite) TestUpdateFilters_InvalidPaidStatus() {
	session := s.create(nil)
	status := filters.PaidStatus("sometimes")

	_, err := s.service.UpdateFilters(s.ctx, s.landlordID, session.ID, filters.FilterUpdate{PaidStatus: &status})

	s.ErrorIs(err, ErrInvalidFilters)
}

func (s *FilterSessionServiceSuite) TestUpdateFilters_ComputeFailureKeepsCriteria() {
	session := s.create(nil)
	s.bills.err = ErrNotOwner

	_, err := s.service.UpdateFilters(s.ctx, s.landlordID, session.ID, filters.FilterUpdate{PropertyID: &s.propertyB})
	s.ErrorIs(err, ErrNotOwner)

	got, err := s.service.Get(s.ctx, s.landlordID, session.ID)
	s.Require().NoError(err)
	s.Equal(s.propertyB, got.State.Filters.PropertyID)
	s.Len(got.State.FilteredBills, 3)
}

func (s *FilterSessionServiceSuite) TestResetFilters() {
	term := "power"
	session := s.create(&filters.FilterUpdate{PropertyID: &s.propertyA, SearchTerm: &term})
	s.Len(session.State.FilteredBills, 1)

	reset, err := s.service.ResetFilters(s.ctx, s.landlordID, session.ID)

	s.Require().NoError(err)
	s.Equal(filters.InitialCriteria(), reset.State.Filters)
	s.Len(reset.State.FilteredBills, 3)
	s.Equal(session.State.Version+1, reset.State.Version)
}

func (s *FilterSessionServiceSuite) TestRefresh_PicksUpNewData() {
	session := s.create(nil)
	s.bills.mu.Lock()
	s.bills.page.Bills = s.bills.page.Bills[:1]
	s.bills.mu.Unlock()

	refreshed, err := s.service.Refresh(s.ctx, s.landlordID, session.ID)

	s.Require().NoError(err)
	s.Len(refreshed.State.FilteredBills, 1)
	s.Equal(session.State.Version, refreshed.State.Version)
}

func (s *FilterSessionServiceSuite) TestRefresh_BreakerOpensAfterRepeatedFailures() {
	session := s.create(nil)
	s.bills.mu.Lock()
	s.bills.err = errors.New("database unavailable")
	s.bills.mu.Unlock()

	for i := 0; i < DefaultCircuitBreakerConfig().MaxFailures; i++ {
		_, err := s.service.Refresh(s.ctx, s.landlordID, session.ID)
		s.Require().ErrorIs(err, ErrFilterComputation)
	}
	s.Equal(StateOpen, s.service.breaker.State())

	s.bills.mu.Lock()
	queried := len(s.bills.queries)
	s.bills.mu.Unlock()

	_, err := s.service.Refresh(s.ctx, s.landlordID, session.ID)
	s.ErrorIs(err, ErrFilterComputation)
	s.ErrorContains(err, ErrCircuitBreakerOpen.Error())
	s.bills.mu.Lock()
	s.Len(s.bills.queries, queried)
	s.bills.err = nil
	s.bills.mu.Unlock()
	s.Contains(s.logs.String(), "filter recompute circuit opened")

	s.clock.Advance(DefaultCircuitBreakerConfig().ResetTimeout + time.Second)

	_, err = s.service.Refresh(s.ctx, s.landlordID, session.ID)
	s.NoError(err)
	s.Equal(StateHalfOpen, s.service.breaker.State())
}

func (s *FilterSessionServiceSuite) TestOtherLandlordGetsNotFound() {
	session := s.create(nil)
	other := "user_" + uuid.NewString()

	_, err := s.service.Get(s.ctx, other, session.ID)
	s.ErrorIs(err, ErrSessionNotFound)

	_, err = s.service.UpdateFilters(s.ctx, other, session.ID, filters.FilterUpdate{})
	s.ErrorIs(err, ErrSessionNotFound)

	s.ErrorIs(s.service.Delete(s.ctx, other, session.ID), ErrSessionNotFound)
	s.Equal(1, s.service.ActiveSessions())
	s.Contains(s.logs.String(), "authorization_failure")
}

func (s *FilterSessionServiceSuite) TestDelete() {
	session := s.create(nil)

	s.Require().NoError(s.service.Delete(s.ctx, s.landlordID, session.ID))

	_, err := s.service.Get(s.ctx, s.landlordID, session.ID)
	s.ErrorIs(err, ErrSessionNotFound)
	s.Zero(s.service.ActiveSessions())
}

func (s *FilterSessionServiceSuite) TestUnknownSession() {
	_, err := s.service.Get(s.ctx, s.landlordID, uuid.New())
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *FilterSessionServiceSuite) TestExpiry() {
	idle := s.create(nil)
	s.clock.Advance(20 * time.Minute)
	active := s.create(nil)
	s.clock.Advance(15 * time.Minute)

	_, err := s.service.Get(s.ctx, s.landlordID, idle.ID)
	s.ErrorIs(err, ErrSessionNotFound)

	s.service.removeExpired(s.ctx)

	s.Equal(1, s.service.ActiveSessions())
	_, err = s.service.Get(s.ctx, s.landlordID, active.ID)
	s.NoError(err)
	s.Contains(s.logs.String(), "filter_session_expired")
}

func (s *FilterSessionServiceSuite) TestAccessExtendsLifetime() {
	session := s.create(nil)
	s.clock.Advance(20 * time.Minute)

	got, err := s.service.Get(s.ctx, s.landlordID, session.ID)
	s.Require().NoError(err)
	s.Equal(s.clock.Now().Add(30*time.Minute), got.ExpiresAt)

	s.clock.Advance(20 * time.Minute)
	s.service.removeExpired(s.ctx)

	s.Equal(1, s.service.ActiveSessions())
}

func (s *FilterSessionServiceSuite) TestStaleResultsAppliedAndLogged() {
	session := s.create(nil)
	entry, err := s.service.lookup(s.ctx, "test", s.landlordID, session.ID)
	s.Require().NoError(err)

	criteria, version := s.service.dispatch(entry, filters.UpdateFilters{Update: filters.FilterUpdate{PropertyID: &s.propertyB}})
	s.Equal(uint64(1), version)

	// results computed for the criteria of version 0 arrive after version 1
	s.Require().NoError(s.service.recompute(s.ctx, entry, filters.InitialCriteria(), 0))

	got, err := s.service.Get(s.ctx, s.landlordID, session.ID)
	s.Require().NoError(err)
	s.Equal(criteria, got.State.Filters)
	s.Len(got.State.FilteredBills, 3)
	s.Contains(s.logs.String(), "filter_results_stale")
}

func (s *FilterSessionServiceSuite) TestSupersededResultsAreDropped() {
	session := s.create(nil)
	entry, err := s.service.lookup(s.ctx, "test", s.landlordID, session.ID)
	s.Require().NoError(err)

	criteriaA, versionA := s.service.dispatch(entry, filters.UpdateFilters{Update: filters.FilterUpdate{PropertyID: &s.propertyA}})
	criteriaB, versionB := s.service.dispatch(entry, filters.UpdateFilters{Update: filters.FilterUpdate{PropertyID: &s.propertyB}})

	s.Require().NoError(s.service.recompute(s.ctx, entry, criteriaB, versionB))
	s.Require().NoError(s.service.recompute(s.ctx, entry, criteriaA, versionA))

	got, err := s.service.Get(s.ctx, s.landlordID, session.ID)
	s.Require().NoError(err)
	s.Equal(s.propertyB, got.State.Filters.PropertyID)
	s.Require().Len(got.State.FilteredBills, 1)
	s.Equal("Gas", got.State.FilteredBills[0].UtilityType)
	s.Contains(s.logs.String(), `"applied":false`)
}

func (s *FilterSessionServiceSuite) TestOvertakenUpdateDoesNotReplaceNewerResults() {
	gate := &gatedBillService{
		stubBillService: s.bills,
		property:        s.propertyA,
		entered:         make(chan struct{}),
		release:         make(chan struct{}),
	}
	s.service.billService = gate
	session := s.create(nil)

	done := make(chan error, 1)
	go func() {
		_, err := s.service.UpdateFilters(s.ctx, s.landlordID, session.ID, filters.FilterUpdate{PropertyID: &s.propertyA})
		done <- err
	}()
	<-gate.entered

	_, err := s.service.UpdateFilters(s.ctx, s.landlordID, session.ID, filters.FilterUpdate{PropertyID: &s.propertyB})
	s.Require().NoError(err)

	close(gate.release)
	s.Require().NoError(<-done)

	got, err := s.service.Get(s.ctx, s.landlordID, session.ID)
	s.Require().NoError(err)
	s.Equal(uint64(2), got.State.Version)
	s.Equal(s.propertyB, got.State.Filters.PropertyID)
	s.Require().NotEmpty(got.State.FilteredBills)
	for _, bill := range got.State.FilteredBills {
		s.Equal(got.State.Filters.PropertyID, bill.PropertyID, "bill %s belongs to another property", bill.UtilityType)
	}
}

func (s *FilterSessionServiceSuite) TestConcurrentUpdatesAreSerialized() {
	session := s.create(nil)
	types := []string{"Electric", "Water", "Gas"}

	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.service.UpdateFilters(s.ctx, s.landlordID, session.ID, filters.FilterUpdate{
				UtilityTypes: filters.UtilityTypeList{types[i%len(types)]},
			})
			assert.NoError(s.T(), err)
		}(i)
	}
	wg.Wait()

	got, err := s.service.Get(s.ctx, s.landlordID, session.ID)
	s.Require().NoError(err)
	s.Equal(uint64(30), got.State.Version)
	s.Require().Len(got.State.Filters.UtilityTypes, 1)
	for _, bill := range got.State.FilteredBills {
		s.Equal(got.State.Filters.UtilityTypes[0], bill.UtilityType)
	}
}

func TestQueryFor(t *testing.T) {
	property := uuid.New()
	criteria := filters.InitialCriteria()
	assert.Equal(t, models.BillQuery{}, QueryFor(criteria))

	criteria.PropertyID = property
	criteria.DateRange = &filters.DateRange{Start: "2024-01", End: "2024-06"}
	criteria.SearchTerm = "gas"

	assert.Equal(t, models.BillQuery{PropertyID: property, StartMonth: "2024-01", EndMonth: "2024-06"}, QueryFor(criteria))
}

func TestStartJanitor_StopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	service := NewFilterSessionService(
		&stubBillService{},
		NewPrometheusMetrics(prometheus.NewRegistry()),
		NewFilterLogger(discardLogger()),
		discardLogger(),
		config.FiltersConfig{SessionTTL: time.Millisecond, JanitorInterval: 5 * time.Millisecond, ComputeTimeout: time.Second},
	)
	_, err := service.Create(context.Background(), "user_janitor", nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		service.StartJanitor(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return service.ActiveSessions() == 0 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}
