package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrInvalidPaymentAmount = errors.New("payment amount must be greater than 0")

// UtilityPayment records a tenant paying toward their share of a bill
type UtilityPayment struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	LeaseID       uuid.UUID       `gorm:"type:uuid;not null;index:idx_utility_payments_lease_bill" json:"lease_id"`
	UtilityBillID uuid.UUID       `gorm:"type:uuid;not null;index:idx_utility_payments_lease_bill" json:"utility_bill_id"`
	AmountPaid    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount_paid"`
	PaidAt        time.Time       `gorm:"not null" json:"paid_at"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for UtilityPayment
func (p *UtilityPayment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	now := time.Now()
	if p.PaidAt.IsZero() {
		p.PaidAt = now
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}

	if p.LeaseID == uuid.Nil || p.UtilityBillID == uuid.Nil {
		return errors.New("lease ID and bill ID are required")
	}
	if p.AmountPaid.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidPaymentAmount
	}
	return nil
}

func (p *UtilityPayment) TableName() string {
	return "utility_payments"
}
