package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TenantCharge is a tenant's computed share of a utility bill. It is derived
// from the bill, the lease utility settings and recorded payments; it is not stored.
type TenantCharge struct {
	LeaseID                  uuid.UUID       `json:"lease_id"`
	TenantName               string          `json:"tenant_name"`
	UnitIdentifier           string          `json:"unit_identifier,omitempty"`
	UtilityBillID            uuid.UUID       `json:"utility_bill_id"`
	UtilityType              string          `json:"utility_type"`
	BillMonth                string          `json:"bill_month"`
	TotalBillAmount          decimal.Decimal `json:"total_bill_amount"`
	ChargedAmount            decimal.Decimal `json:"charged_amount"`
	ResponsibilityPercentage decimal.Decimal `json:"responsibility_percentage"`
	DueDate                  time.Time       `json:"due_date"`
	PaidAmount               decimal.Decimal `json:"paid_amount"`
	RemainingAmount          decimal.Decimal `json:"remaining_amount"`
}

// IsSettled returns true when nothing remains to be paid
func (c *TenantCharge) IsSettled() bool {
	return !c.RemainingAmount.IsPositive()
}
