package models

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Common utility categories. Bills may carry any non-empty type.
const (
	UtilityTypeElectric = "Electric"
	UtilityTypeGas      = "Gas"
	UtilityTypeWater    = "Water"
	UtilityTypeSewer    = "Sewer"
	UtilityTypeTrash    = "Trash"
	UtilityTypeInternet = "Internet"
)

// BillMonthLayout is the time layout of a bill month token (YYYY-MM)
const BillMonthLayout = "2006-01"

var billMonthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

var (
	ErrInvalidBillMonth   = errors.New("bill month must be in YYYY-MM format")
	ErrInvalidBillAmount  = errors.New("bill amount must be greater than 0")
	ErrUtilityTypeMissing = errors.New("utility type is required")
	ErrProviderMissing    = errors.New("provider is required")
)

// UtilityBill is a monthly bill the landlord receives from a utility company
type UtilityBill struct {
	ID                         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	LandlordID                 string          `gorm:"type:varchar(255);not null;index" json:"landlord_id"`
	PropertyID                 uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_utility_bills_property_type_month" json:"property_id"`
	UtilityType                string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_utility_bills_property_type_month" json:"utility_type"`
	Provider                   string          `gorm:"type:varchar(255);not null" json:"provider"`
	BillMonth                  string          `gorm:"type:varchar(7);not null;index;uniqueIndex:idx_utility_bills_property_type_month" json:"bill_month"`
	TotalAmount                decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"total_amount"`
	DueDate                    time.Time       `gorm:"not null" json:"due_date"`
	BillDate                   time.Time       `gorm:"not null" json:"bill_date"`
	BillingPeriod              string          `gorm:"type:varchar(100)" json:"billing_period,omitempty"`
	Notes                      string          `gorm:"type:text" json:"notes,omitempty"`
	LandlordPaidUtilityCompany bool            `gorm:"not null;default:false" json:"landlord_paid_utility_company"`
	CreatedAt                  time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt                  time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for UtilityBill
func (b *UtilityBill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = now
	}

	return b.Validate()
}

// BeforeUpdate hook for UtilityBill
func (b *UtilityBill) BeforeUpdate(tx *gorm.DB) error {
	b.UpdatedAt = time.Now()
	return nil
}

// Validate validates the bill fields
func (b *UtilityBill) Validate() error {
	if b.LandlordID == "" {
		return ErrLandlordRequired
	}
	if b.PropertyID == uuid.Nil {
		return errors.New("property ID is required")
	}
	if b.UtilityType == "" {
		return ErrUtilityTypeMissing
	}
	if b.Provider == "" {
		return ErrProviderMissing
	}
	if !IsValidBillMonth(b.BillMonth) {
		return ErrInvalidBillMonth
	}
	if b.TotalAmount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidBillAmount
	}
	return nil
}

// IsUnpaid reports whether the landlord still owes the utility company
func (b *UtilityBill) IsUnpaid() bool {
	return !b.LandlordPaidUtilityCompany
}

func (b *UtilityBill) TableName() string {
	return "utility_bills"
}

// IsValidBillMonth reports whether s is a YYYY-MM token
func IsValidBillMonth(s string) bool {
	return billMonthPattern.MatchString(s)
}
