package filters

import (
	"encoding/json"
	"errors"
	"fmt"

	"property-ledger/internal/models"

	"github.com/google/uuid"
)

// PaidStatus selects bills by whether the landlord has paid the utility company
type PaidStatus string

const (
	PaidStatusAll    PaidStatus = "all"
	PaidStatusPaid   PaidStatus = "paid"
	PaidStatusUnpaid PaidStatus = "unpaid"
)

var ErrInvalidPaidStatus = errors.New("paid status must be one of: all, paid, unpaid")

// IsValid reports whether the status is one of the known values
func (s PaidStatus) IsValid() bool {
	switch s {
	case PaidStatusAll, PaidStatusPaid, PaidStatusUnpaid:
		return true
	default:
		return false
	}
}

// DateRange is an inclusive range of bill months, both ends in YYYY-MM form.
// On the wire it is a two element array: ["2024-01", "2024-03"].
type DateRange struct {
	Start string
	End   string
}

// IsValid reports whether both ends are present and well formed
func (r DateRange) IsValid() bool {
	return models.IsValidBillMonth(r.Start) && models.IsValidBillMonth(r.End)
}

func (r DateRange) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{r.Start, r.End})
}

// UnmarshalJSON never fails: anything other than a pair of strings decodes to
// the zero range, which validation then discards.
func (r *DateRange) UnmarshalJSON(data []byte) error {
	*r = DateRange{}

	var pair []interface{}
	if err := json.Unmarshal(data, &pair); err != nil || len(pair) != 2 {
		return nil
	}

	start, okStart := pair[0].(string)
	end, okEnd := pair[1].(string)
	if okStart && okEnd {
		r.Start = start
		r.End = end
	}
	return nil
}

// UtilityTypeList is the set of utility categories a filter selects.
type UtilityTypeList []string

// UnmarshalJSON never fails: a value that is not an array becomes an empty
// list and non-string elements are dropped.
func (l *UtilityTypeList) UnmarshalJSON(data []byte) error {
	*l = UtilityTypeList{}

	var items []interface{}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}

	for _, item := range items {
		if s, ok := item.(string); ok {
			*l = append(*l, s)
		}
	}
	return nil
}

// Contains reports whether the list holds the utility type
func (l UtilityTypeList) Contains(utilityType string) bool {
	for _, t := range l {
		if t == utilityType {
			return true
		}
	}
	return false
}

// FilterCriteria narrows a landlord's utility bills and tenant charges.
// uuid.Nil and a nil DateRange mean "no constraint".
type FilterCriteria struct {
	PropertyID   uuid.UUID
	TenantID     uuid.UUID
	DateRange    *DateRange
	UtilityTypes UtilityTypeList
	PaidStatus   PaidStatus
	SearchTerm   string
}

// InitialCriteria returns criteria with every field cleared
func InitialCriteria() FilterCriteria {
	return FilterCriteria{
		PropertyID:   uuid.Nil,
		TenantID:     uuid.Nil,
		DateRange:    nil,
		UtilityTypes: UtilityTypeList{},
		PaidStatus:   PaidStatusAll,
		SearchTerm:   "",
	}
}

// HasProperty reports whether a property is selected
func (c FilterCriteria) HasProperty() bool {
	return c.PropertyID != uuid.Nil
}

// HasTenant reports whether a tenant (lease) is selected
func (c FilterCriteria) HasTenant() bool {
	return c.TenantID != uuid.Nil
}

// Clone returns a copy that shares no slices or pointers with c
func (c FilterCriteria) Clone() FilterCriteria {
	clone := c
	if c.DateRange != nil {
		r := *c.DateRange
		clone.DateRange = &r
	}
	if c.UtilityTypes != nil {
		clone.UtilityTypes = append(UtilityTypeList{}, c.UtilityTypes...)
	}
	return clone
}

// FilterUpdate is a partial FilterCriteria. A nil field is left unchanged;
// a field pointing at an absent value (uuid.Nil, a zero DateRange) clears it.
type FilterUpdate struct {
	PropertyID   *uuid.UUID
	TenantID     *uuid.UUID
	DateRange    *DateRange
	UtilityTypes UtilityTypeList
	PaidStatus   *PaidStatus
	SearchTerm   *string
}

// IsEmpty reports whether the update carries no fields
func (u FilterUpdate) IsEmpty() bool {
	return u.PropertyID == nil && u.TenantID == nil && u.DateRange == nil &&
		u.UtilityTypes == nil && u.PaidStatus == nil && u.SearchTerm == nil
}

// Fields names the criteria an update carries, in JSON spelling
func (u FilterUpdate) Fields() []string {
	fields := []string{}
	if u.PropertyID != nil {
		fields = append(fields, "propertyId")
	}
	if u.TenantID != nil {
		fields = append(fields, "tenantId")
	}
	if u.DateRange != nil {
		fields = append(fields, "dateRange")
	}
	if u.UtilityTypes != nil {
		fields = append(fields, "utilityTypes")
	}
	if u.PaidStatus != nil {
		fields = append(fields, "paidStatus")
	}
	if u.SearchTerm != nil {
		fields = append(fields, "searchTerm")
	}
	return fields
}

// Validate checks the fields a caller can get wrong in a way normalization
// cannot repair.
func (u FilterUpdate) Validate() error {
	if u.PaidStatus != nil && !u.PaidStatus.IsValid() {
		return ErrInvalidPaidStatus
	}
	return nil
}

// UnmarshalJSON decodes a partial update. Keys that are present with a null
// value clear the corresponding criterion; missing keys leave it unchanged.
func (u *FilterUpdate) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("filter update must be a JSON object: %w", err)
	}

	*u = FilterUpdate{}

	if v, ok := raw["propertyId"]; ok {
		id, err := decodeID(v)
		if err != nil {
			return fmt.Errorf("invalid propertyId: %w", err)
		}
		u.PropertyID = &id
	}

	if v, ok := raw["tenantId"]; ok {
		id, err := decodeID(v)
		if err != nil {
			return fmt.Errorf("invalid tenantId: %w", err)
		}
		u.TenantID = &id
	}

	if v, ok := raw["dateRange"]; ok {
		var r DateRange
		_ = r.UnmarshalJSON(v)
		u.DateRange = &r
	}

	if v, ok := raw["utilityTypes"]; ok {
		var l UtilityTypeList
		_ = l.UnmarshalJSON(v)
		u.UtilityTypes = l
	}

	if v, ok := raw["paidStatus"]; ok {
		status := PaidStatusAll
		var s *string
		if err := json.Unmarshal(v, &s); err != nil {
			return fmt.Errorf("invalid paidStatus: %w", err)
		}
		if s != nil {
			status = PaidStatus(*s)
		}
		u.PaidStatus = &status
	}

	if v, ok := raw["searchTerm"]; ok {
		var s *string
		if err := json.Unmarshal(v, &s); err != nil {
			return fmt.Errorf("invalid searchTerm: %w", err)
		}
		term := ""
		if s != nil {
			term = *s
		}
		u.SearchTerm = &term
	}

	return nil
}

func decodeID(data json.RawMessage) (uuid.UUID, error) {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return uuid.Nil, err
	}
	if s == nil || *s == "" {
		return uuid.Nil, nil
	}
	return uuid.Parse(*s)
}
