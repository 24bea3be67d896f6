package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrInvalidResponsibility = errors.New("responsibility percentage must be between 0 and 100")

var hundred = decimal.NewFromInt(100)

// LeaseUtilitySetting is the share of a utility type a tenant pays
type LeaseUtilitySetting struct {
	ID                       uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	LeaseID                  uuid.UUID       `gorm:"type:uuid;not null;index" json:"lease_id"`
	UtilityType              string          `gorm:"type:varchar(50);not null" json:"utility_type"`
	ResponsibilityPercentage decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"responsibility_percentage"`
	CreatedAt                time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt                time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for LeaseUtilitySetting
func (s *LeaseUtilitySetting) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	now := time.Now()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = now
	}

	return s.Validate()
}

// Validate validates the setting fields
func (s *LeaseUtilitySetting) Validate() error {
	if s.LeaseID == uuid.Nil {
		return errors.New("lease ID is required")
	}
	if s.UtilityType == "" {
		return ErrUtilityTypeMissing
	}
	if s.ResponsibilityPercentage.IsNegative() || s.ResponsibilityPercentage.GreaterThan(hundred) {
		return ErrInvalidResponsibility
	}
	return nil
}

// ChargesTenant reports whether the tenant carries any share of the utility
func (s *LeaseUtilitySetting) ChargesTenant() bool {
	return s.ResponsibilityPercentage.IsPositive()
}

func (s *LeaseUtilitySetting) TableName() string {
	return "lease_utility_settings"
}
