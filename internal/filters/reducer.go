package filters

import "github.com/google/uuid"

// Transition applies an action to a state and returns the new state.
// It never fails and never modifies its input; results are replaced only by
// SetData and criteria only by UpdateFilters and ResetFilters.
func Transition(state FilterState, action Action) FilterState {
	switch a := action.(type) {
	case UpdateFilters:
		next := state
		next.Filters = validateDependencies(state.Filters, merge(state.Filters, a.Update), a.Update)
		next.Version = state.Version + 1
		return next

	case ResetFilters:
		next := state
		next.Filters = InitialCriteria()
		next.Version = state.Version + 1
		return next

	case SetData:
		next := state
		next.FilteredBills = a.Bills
		next.FilteredCharges = a.Charges
		next.Stats = a.Stats
		return next

	default:
		return state
	}
}

// IsStale reports whether data was computed for criteria other than the ones
// currently in effect. Transition accepts stale data regardless.
func IsStale(state FilterState, data SetData) bool {
	return data.Version != state.Version
}

func merge(current FilterCriteria, update FilterUpdate) FilterCriteria {
	merged := current.Clone()

	if update.PropertyID != nil {
		merged.PropertyID = *update.PropertyID
	}
	if update.TenantID != nil {
		merged.TenantID = *update.TenantID
	}
	if update.DateRange != nil {
		r := *update.DateRange
		merged.DateRange = &r
	}
	if update.UtilityTypes != nil {
		merged.UtilityTypes = append(UtilityTypeList{}, update.UtilityTypes...)
	}
	if update.PaidStatus != nil {
		merged.PaidStatus = *update.PaidStatus
	}
	if update.SearchTerm != nil {
		merged.SearchTerm = *update.SearchTerm
	}

	return merged
}

// validateDependencies keeps jointly meaningful fields consistent.
// A tenant is scoped to a property: when the property changes the tenant is
// dropped, unless the same update picked the tenant for the new property.
func validateDependencies(previous, merged FilterCriteria, update FilterUpdate) FilterCriteria {
	validated := merged

	if validated.PropertyID != previous.PropertyID && update.TenantID == nil {
		validated.TenantID = uuid.Nil
	}

	if validated.UtilityTypes == nil {
		validated.UtilityTypes = UtilityTypeList{}
	}

	if validated.DateRange != nil && !validated.DateRange.IsValid() {
		validated.DateRange = nil
	}

	return validated
}
