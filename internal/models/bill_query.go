package models

import "github.com/google/uuid"

// BillQuery narrows the bills loaded from storage before in-memory filtering.
// StartMonth and EndMonth are only applied together.
type BillQuery struct {
	LandlordID string
	PropertyID uuid.UUID
	StartMonth string
	EndMonth   string
}

// HasMonthRange reports whether both ends of the month range are set
func (q BillQuery) HasMonthRange() bool {
	return q.StartMonth != "" && q.EndMonth != ""
}
