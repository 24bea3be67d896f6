package filters

import "property-ledger/internal/models"

// FilterState is the criteria in effect plus the last results computed for them.
// Version increases on every criteria change so results can be matched to the
// criteria that produced them.
type FilterState struct {
	Filters         FilterCriteria
	FilteredBills   []models.UtilityBill
	FilteredCharges []models.TenantCharge
	Stats           models.BillStats
	Version         uint64
}

// InitialState returns the state a new filter view starts from
func InitialState() FilterState {
	return FilterState{
		Filters:         InitialCriteria(),
		FilteredBills:   []models.UtilityBill{},
		FilteredCharges: []models.TenantCharge{},
		Stats:           models.ZeroBillStats(),
	}
}

// InitialStateWith starts from InitialState with the update applied
func InitialStateWith(update FilterUpdate) FilterState {
	return Transition(InitialState(), UpdateFilters{Update: update})
}
