package filters

import (
	"math/rand"
	"testing"

	"property-ledger/internal/models"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func idPtr(id uuid.UUID) *uuid.UUID { return &id }
func strPtr(s string) *string       { return &s }

func statusPtr(s PaidStatus) *PaidStatus { return &s }

func update(state FilterState, u FilterUpdate) FilterState {
	return Transition(state, UpdateFilters{Update: u})
}

func TestInitialState(t *testing.T) {
	state := InitialState()

	assert.Equal(t, uuid.Nil, state.Filters.PropertyID)
	assert.Equal(t, uuid.Nil, state.Filters.TenantID)
	assert.Nil(t, state.Filters.DateRange)
	assert.NotNil(t, state.Filters.UtilityTypes)
	assert.Empty(t, state.Filters.UtilityTypes)
	assert.Equal(t, PaidStatusAll, state.Filters.PaidStatus)
	assert.Equal(t, "", state.Filters.SearchTerm)
	assert.Empty(t, state.FilteredBills)
	assert.Empty(t, state.FilteredCharges)
	assert.Equal(t, int64(0), state.Stats.TotalBills)
	assert.True(t, state.Stats.TotalAmount.IsZero())
	assert.True(t, state.Stats.UnpaidAmount.IsZero())
}

func TestUpdateFilters_PropertyAndTenantTogether(t *testing.T) {
	p1, t1 := uuid.New(), uuid.New()

	state := update(InitialState(), FilterUpdate{PropertyID: idPtr(p1), TenantID: idPtr(t1)})

	want := InitialCriteria()
	want.PropertyID = p1
	want.TenantID = t1
	if diff := cmp.Diff(want, state.Filters); diff != "" {
		t.Errorf("filters mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdateFilters_PropertyChangeClearsTenant(t *testing.T) {
	p1, p2, t1 := uuid.New(), uuid.New(), uuid.New()
	state := update(InitialState(), FilterUpdate{PropertyID: idPtr(p1), TenantID: idPtr(t1)})

	state = update(state, FilterUpdate{PropertyID: idPtr(p2)})

	assert.Equal(t, p2, state.Filters.PropertyID)
	assert.Equal(t, uuid.Nil, state.Filters.TenantID)
	assert.Equal(t, PaidStatusAll, state.Filters.PaidStatus)
	assert.Empty(t, state.Filters.UtilityTypes)
}

func TestUpdateFilters_ClearingPropertyClearsTenant(t *testing.T) {
	p1, t1 := uuid.New(), uuid.New()
	state := update(InitialState(), FilterUpdate{PropertyID: idPtr(p1), TenantID: idPtr(t1)})

	state = update(state, FilterUpdate{PropertyID: idPtr(uuid.Nil)})

	assert.Equal(t, uuid.Nil, state.Filters.PropertyID)
	assert.Equal(t, uuid.Nil, state.Filters.TenantID)
}

func TestUpdateFilters_SamePropertyKeepsTenant(t *testing.T) {
	p1, t1 := uuid.New(), uuid.New()
	state := update(InitialState(), FilterUpdate{PropertyID: idPtr(p1), TenantID: idPtr(t1)})

	state = update(state, FilterUpdate{PropertyID: idPtr(p1), SearchTerm: strPtr("gas")})

	assert.Equal(t, t1, state.Filters.TenantID)
	assert.Equal(t, "gas", state.Filters.SearchTerm)
}

func TestUpdateFilters_TenantPickedWithNewProperty(t *testing.T) {
	p1, p2, t1, t2 := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	state := update(InitialState(), FilterUpdate{PropertyID: idPtr(p1), TenantID: idPtr(t1)})

	state = update(state, FilterUpdate{PropertyID: idPtr(p2), TenantID: idPtr(t2)})

	assert.Equal(t, p2, state.Filters.PropertyID)
	assert.Equal(t, t2, state.Filters.TenantID)
}

func TestUpdateFilters_DateRange(t *testing.T) {
	p1, t1 := uuid.New(), uuid.New()
	base := update(InitialState(), FilterUpdate{PropertyID: idPtr(p1), TenantID: idPtr(t1)})

	tests := []struct {
		name  string
		input DateRange
		want  *DateRange
	}{
		{"valid range", DateRange{"2024-01", "2024-03"}, &DateRange{"2024-01", "2024-03"}},
		{"bad end", DateRange{"2024-01", "bad"}, nil},
		{"bad start", DateRange{"24-01", "2024-03"}, nil},
		{"missing start", DateRange{"", "2024-03"}, nil},
		{"missing end", DateRange{"2024-01", ""}, nil},
		{"empty range", DateRange{}, nil},
		{"full date instead of month", DateRange{"2024-01-01", "2024-03"}, nil},
		{"trailing text", DateRange{"2024-01x", "2024-03"}, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := tc.input
			state := update(base, FilterUpdate{DateRange: &r})

			assert.Equal(t, tc.want, state.Filters.DateRange)
			assert.Equal(t, t1, state.Filters.TenantID, "date range updates leave the tenant alone")
		})
	}
}

func TestUpdateFilters_InvalidRangeReplacesValidOne(t *testing.T) {
	state := update(InitialState(), FilterUpdate{DateRange: &DateRange{"2024-01", "2024-03"}})
	require.NotNil(t, state.Filters.DateRange)

	state = update(state, FilterUpdate{DateRange: &DateRange{"2024-01", "bad"}})

	assert.Nil(t, state.Filters.DateRange)
}

func TestUpdateFilters_UtilityTypesNeverNil(t *testing.T) {
	var zero FilterState

	state := update(zero, FilterUpdate{SearchTerm: strPtr("water")})

	assert.NotNil(t, state.Filters.UtilityTypes)
	assert.Empty(t, state.Filters.UtilityTypes)
}

func TestUpdateFilters_UtilityTypesCopied(t *testing.T) {
	types := UtilityTypeList{models.UtilityTypeGas, models.UtilityTypeWater}
	state := update(InitialState(), FilterUpdate{UtilityTypes: types})

	types[0] = "mutated"

	assert.Equal(t, UtilityTypeList{models.UtilityTypeGas, models.UtilityTypeWater}, state.Filters.UtilityTypes)
}

func TestUpdateFilters_DoesNotModifyInput(t *testing.T) {
	before := update(InitialState(), FilterUpdate{
		UtilityTypes: UtilityTypeList{models.UtilityTypeElectric},
		DateRange:    &DateRange{"2024-01", "2024-02"},
	})
	snapshot := before.Filters.Clone()

	_ = update(before, FilterUpdate{
		UtilityTypes: UtilityTypeList{models.UtilityTypeGas},
		DateRange:    &DateRange{"2023-01", "2023-12"},
	})

	if diff := cmp.Diff(snapshot, before.Filters); diff != "" {
		t.Errorf("input state was modified (-want +got):\n%s", diff)
	}
}

func TestUpdateFilters_PassThroughFields(t *testing.T) {
	state := update(InitialState(), FilterUpdate{
		PaidStatus: statusPtr(PaidStatusUnpaid),
		SearchTerm: strPtr("  City Power "),
	})

	assert.Equal(t, PaidStatusUnpaid, state.Filters.PaidStatus)
	assert.Equal(t, "  City Power ", state.Filters.SearchTerm)
}

func TestResetFilters_KeepsResults(t *testing.T) {
	bill := models.UtilityBill{ID: uuid.New(), UtilityType: models.UtilityTypeGas, TotalAmount: decimal.NewFromInt(100)}
	stats := models.BillStats{TotalBills: 1, UnpaidBills: 1, TotalAmount: decimal.NewFromInt(100), UnpaidAmount: decimal.NewFromInt(100)}

	state := update(InitialState(), FilterUpdate{PropertyID: idPtr(uuid.New()), SearchTerm: strPtr("gas")})
	state = Transition(state, SetData{Bills: []models.UtilityBill{bill}, Charges: []models.TenantCharge{}, Stats: stats, Version: state.Version})

	reset := Transition(state, ResetFilters{})

	if diff := cmp.Diff(InitialCriteria(), reset.Filters); diff != "" {
		t.Errorf("filters not reset (-want +got):\n%s", diff)
	}
	assert.Equal(t, state.FilteredBills, reset.FilteredBills)
	assert.Equal(t, state.FilteredCharges, reset.FilteredCharges)
	assert.Equal(t, state.Stats, reset.Stats)
}

func TestResetFilters_Idempotent(t *testing.T) {
	state := update(InitialState(), FilterUpdate{
		PropertyID:   idPtr(uuid.New()),
		UtilityTypes: UtilityTypeList{models.UtilityTypeWater},
	})

	once := Transition(state, ResetFilters{})
	twice := Transition(once, ResetFilters{})

	if diff := cmp.Diff(once.Filters, twice.Filters); diff != "" {
		t.Errorf("second reset changed filters (-once +twice):\n%s", diff)
	}
	if diff := cmp.Diff(InitialCriteria(), twice.Filters); diff != "" {
		t.Errorf("filters not initial (-want +got):\n%s", diff)
	}
}

func TestSetData_ReplacesResultsOnly(t *testing.T) {
	p1 := uuid.New()
	state := update(InitialState(), FilterUpdate{PropertyID: idPtr(p1)})
	filtersBefore := state.Filters.Clone()

	b1 := models.UtilityBill{ID: uuid.New(), PropertyID: p1, TotalAmount: decimal.NewFromInt(100)}
	stats := models.BillStats{TotalBills: 1, UnpaidBills: 0, TotalAmount: decimal.NewFromInt(100), UnpaidAmount: decimal.Zero}

	next := Transition(state, SetData{Bills: []models.UtilityBill{b1}, Charges: []models.TenantCharge{}, Stats: stats, Version: state.Version})

	assert.Equal(t, []models.UtilityBill{b1}, next.FilteredBills)
	assert.Empty(t, next.FilteredCharges)
	assert.Equal(t, stats, next.Stats)
	assert.Equal(t, state.Version, next.Version)
	if diff := cmp.Diff(filtersBefore, next.Filters); diff != "" {
		t.Errorf("SetData changed filters (-want +got):\n%s", diff)
	}
}

func TestSetData_StaleDataAccepted(t *testing.T) {
	state := update(InitialState(), FilterUpdate{SearchTerm: strPtr("gas")})
	stale := SetData{Stats: models.BillStats{TotalBills: 3}, Version: state.Version - 1}

	assert.True(t, IsStale(state, stale))

	next := Transition(state, stale)
	assert.Equal(t, int64(3), next.Stats.TotalBills)
}

func TestVersion_AdvancesOnCriteriaChanges(t *testing.T) {
	state := InitialState()
	assert.Equal(t, uint64(0), state.Version)

	state = update(state, FilterUpdate{SearchTerm: strPtr("a")})
	assert.Equal(t, uint64(1), state.Version)

	state = Transition(state, ResetFilters{})
	assert.Equal(t, uint64(2), state.Version)

	state = Transition(state, SetData{Version: state.Version})
	assert.Equal(t, uint64(2), state.Version)
	assert.False(t, IsStale(state, SetData{Version: 2}))
}

func TestTransition_NilActionIsNoop(t *testing.T) {
	state := update(InitialState(), FilterUpdate{SearchTerm: strPtr("x")})

	next := Transition(state, nil)

	assert.Equal(t, state, next)
}

func TestInitialStateWith(t *testing.T) {
	p1 := uuid.New()

	state := InitialStateWith(FilterUpdate{PropertyID: idPtr(p1), DateRange: &DateRange{"2024-01", "nope"}})

	assert.Equal(t, p1, state.Filters.PropertyID)
	assert.Nil(t, state.Filters.DateRange)
	assert.Empty(t, state.FilteredBills)
}

// Random walks over updates, resets and data deliveries, checking the
// invariants after every step.
func TestTransition_InvariantsHoldOverRandomSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	properties := []uuid.UUID{uuid.Nil, uuid.New(), uuid.New(), uuid.New()}
	tenants := []uuid.UUID{uuid.Nil, uuid.New(), uuid.New()}
	months := []string{"", "2024-01", "2024-12", "bad", "2024-1", "20240-01"}
	statuses := []PaidStatus{PaidStatusAll, PaidStatusPaid, PaidStatusUnpaid}

	randomUpdate := func() FilterUpdate {
		var u FilterUpdate
		if rng.Intn(2) == 0 {
			u.PropertyID = idPtr(properties[rng.Intn(len(properties))])
		}
		if rng.Intn(3) == 0 {
			u.TenantID = idPtr(tenants[rng.Intn(len(tenants))])
		}
		if rng.Intn(2) == 0 {
			u.DateRange = &DateRange{months[rng.Intn(len(months))], months[rng.Intn(len(months))]}
		}
		if rng.Intn(3) == 0 {
			u.UtilityTypes = UtilityTypeList{models.UtilityTypeGas}
		}
		if rng.Intn(3) == 0 {
			u.PaidStatus = statusPtr(statuses[rng.Intn(len(statuses))])
		}
		return u
	}

	state := InitialState()
	for i := 0; i < 2000; i++ {
		prev := state
		switch rng.Intn(5) {
		case 0:
			state = Transition(state, ResetFilters{})
			assert.Equal(t, InitialCriteria(), state.Filters)
			assert.Equal(t, prev.Stats, state.Stats)
		case 1:
			data := SetData{Stats: models.BillStats{TotalBills: int64(i)}, Version: state.Version}
			state = Transition(state, data)
			require.Equal(t, prev.Filters, state.Filters)
		default:
			u := randomUpdate()
			state = update(state, u)
			assert.Equal(t, prev.Stats, state.Stats)
			assert.Equal(t, prev.FilteredBills, state.FilteredBills)

			if state.Filters.PropertyID != prev.Filters.PropertyID && u.TenantID == nil {
				require.Equal(t, uuid.Nil, state.Filters.TenantID, "step %d", i)
			}
		}

		require.NotNil(t, state.Filters.UtilityTypes, "step %d", i)
		if r := state.Filters.DateRange; r != nil {
			require.True(t, models.IsValidBillMonth(r.Start) && models.IsValidBillMonth(r.End), "step %d: %+v", i, *r)
		}
	}
}
