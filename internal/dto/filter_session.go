package dto

import (
	"time"

	"property-ledger/internal/filters"
	"property-ledger/internal/models"

	"github.com/google/uuid"
)

// FilterCriteriaResponse is FilterCriteria on the wire. Absent values are null.
type FilterCriteriaResponse struct {
	PropertyID   *uuid.UUID         `json:"propertyId"`
	TenantID     *uuid.UUID         `json:"tenantId"`
	DateRange    *filters.DateRange `json:"dateRange"`
	UtilityTypes []string           `json:"utilityTypes"`
	PaidStatus   filters.PaidStatus `json:"paidStatus"`
	SearchTerm   string             `json:"searchTerm"`
}

// BillSortQuery orders a session's filtered bills. Without a sort key the
// bills keep the order they were loaded in.
type BillSortQuery struct {
	Sort      string `query:"sort" validate:"omitempty,oneof=billMonth utilityType provider totalAmount dueDate landlordPaidUtilityCompany"`
	Direction string `query:"direction" validate:"omitempty,oneof=asc desc"`
}

// FilterSessionResponse is a filter session's criteria and results
type FilterSessionResponse struct {
	ID              uuid.UUID              `json:"id"`
	Filters         FilterCriteriaResponse `json:"filters"`
	FilteredBills   []models.UtilityBill   `json:"filteredBills"`
	FilteredCharges []models.TenantCharge  `json:"filteredCharges"`
	Stats           models.BillStats       `json:"stats"`
	Version         uint64                 `json:"version"`
	ExpiresAt       time.Time              `json:"expiresAt"`
}

// NewFilterCriteriaResponse converts criteria for the API
func NewFilterCriteriaResponse(c filters.FilterCriteria) FilterCriteriaResponse {
	resp := FilterCriteriaResponse{
		DateRange:    c.DateRange,
		UtilityTypes: []string(c.UtilityTypes),
		PaidStatus:   c.PaidStatus,
		SearchTerm:   c.SearchTerm,
	}
	if resp.UtilityTypes == nil {
		resp.UtilityTypes = []string{}
	}
	if c.HasProperty() {
		id := c.PropertyID
		resp.PropertyID = &id
	}
	if c.HasTenant() {
		id := c.TenantID
		resp.TenantID = &id
	}
	return resp
}

// NewFilterSessionResponse converts a session state for the API
func NewFilterSessionResponse(id uuid.UUID, state filters.FilterState, expiresAt time.Time) FilterSessionResponse {
	resp := FilterSessionResponse{
		ID:              id,
		Filters:         NewFilterCriteriaResponse(state.Filters),
		FilteredBills:   state.FilteredBills,
		FilteredCharges: state.FilteredCharges,
		Stats:           state.Stats,
		Version:         state.Version,
		ExpiresAt:       expiresAt,
	}
	if resp.FilteredBills == nil {
		resp.FilteredBills = []models.UtilityBill{}
	}
	if resp.FilteredCharges == nil {
		resp.FilteredCharges = []models.TenantCharge{}
	}
	return resp
}
