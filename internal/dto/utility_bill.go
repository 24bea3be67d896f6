package dto

import (
	"time"

	"property-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateUtilityBillRequest contains the fields of a new utility bill
type CreateUtilityBillRequest struct {
	PropertyID                 uuid.UUID       `json:"propertyId" validate:"required"`
	UtilityType                string          `json:"utilityType" validate:"required,utility_type"`
	Provider                   string          `json:"provider" validate:"required,max=255"`
	BillMonth                  string          `json:"billMonth" validate:"required,bill_month"`
	TotalAmount                decimal.Decimal `json:"totalAmount" validate:"money_amount"`
	DueDate                    time.Time       `json:"dueDate" validate:"required"`
	BillDate                   *time.Time      `json:"billDate,omitempty"`
	BillingPeriod              string          `json:"billingPeriod,omitempty" validate:"max=100"`
	Notes                      string          `json:"notes,omitempty" validate:"max=2000"`
	LandlordPaidUtilityCompany bool            `json:"landlordPaidUtilityCompany"`
}

// SetLandlordPaidRequest marks whether the utility company has been paid
type SetLandlordPaidRequest struct {
	Paid *bool `json:"paid" validate:"required"`
}

// RecordPaymentRequest records a tenant paying toward their share of a bill
type RecordPaymentRequest struct {
	LeaseID uuid.UUID       `json:"leaseId" validate:"required"`
	Amount  decimal.Decimal `json:"amount" validate:"money_amount"`
	PaidAt  *time.Time      `json:"paidAt,omitempty"`
}

// BillPageQuery narrows the bills loaded for the landlord's bill page.
// The month range applies only when both ends are given.
type BillPageQuery struct {
	PropertyID string `query:"propertyId" validate:"omitempty,uuid"`
	StartMonth string `query:"startMonth" validate:"omitempty,bill_month"`
	EndMonth   string `query:"endMonth" validate:"omitempty,bill_month"`
}

// FilterOptionsQuery narrows the lease options to one property
type FilterOptionsQuery struct {
	PropertyID string `query:"propertyId" validate:"omitempty,uuid"`
}

// FilterOptionsResponse lists the choices available to a bill filter
type FilterOptionsResponse struct {
	Properties   []PropertyOption `json:"properties"`
	Tenants      []TenantOption   `json:"tenants"`
	UtilityTypes []string         `json:"utilityTypes"`
}

type PropertyOption struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// TenantOption is a lease shown as a tenant choice; its ID is the lease ID
type TenantOption struct {
	ID             uuid.UUID `json:"id"`
	PropertyID     uuid.UUID `json:"propertyId"`
	TenantName     string    `json:"tenantName"`
	UnitIdentifier string    `json:"unitIdentifier,omitempty"`
}

// NewFilterOptionsResponse converts filter options for the API
func NewFilterOptionsResponse(options *models.FilterOptions) FilterOptionsResponse {
	resp := FilterOptionsResponse{
		Properties:   make([]PropertyOption, 0, len(options.Properties)),
		Tenants:      make([]TenantOption, 0, len(options.Leases)),
		UtilityTypes: options.UtilityTypes,
	}
	if resp.UtilityTypes == nil {
		resp.UtilityTypes = []string{}
	}

	for _, p := range options.Properties {
		resp.Properties = append(resp.Properties, PropertyOption{ID: p.ID, Name: p.Name})
	}
	for _, l := range options.Leases {
		resp.Tenants = append(resp.Tenants, TenantOption{
			ID:             l.ID,
			PropertyID:     l.PropertyID,
			TenantName:     l.TenantName,
			UnitIdentifier: l.UnitIdentifier,
		})
	}

	return resp
}
