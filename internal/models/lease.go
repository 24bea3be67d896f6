package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	LeaseStatusActive  = "active"
	LeaseStatusExpired = "expired"
)

var (
	ErrInvalidLeaseStatus = errors.New("invalid lease status")
	ErrTenantNameRequired = errors.New("tenant name is required")
)

// Lease ties a tenant to a property. Tenant filters select charges by lease ID.
type Lease struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	LandlordID     string          `gorm:"type:varchar(255);not null;index" json:"landlord_id"`
	PropertyID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"property_id"`
	TenantName     string          `gorm:"type:varchar(255);not null" json:"tenant_name"`
	TenantEmail    string          `gorm:"type:varchar(255)" json:"tenant_email,omitempty"`
	UnitIdentifier string          `gorm:"type:varchar(50)" json:"unit_identifier,omitempty"`
	StartDate      time.Time       `gorm:"not null" json:"start_date"`
	EndDate        time.Time       `gorm:"not null" json:"end_date"`
	Rent           decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"rent"`
	Status         string          `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	CreatedAt      time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Lease
func (l *Lease) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}

	if l.Status == "" {
		l.Status = LeaseStatusActive
	}

	now := time.Now()
	if l.CreatedAt.IsZero() {
		l.CreatedAt = now
	}
	if l.UpdatedAt.IsZero() {
		l.UpdatedAt = now
	}

	return l.Validate()
}

// Validate validates the lease fields
func (l *Lease) Validate() error {
	if l.LandlordID == "" {
		return ErrLandlordRequired
	}
	if l.PropertyID == uuid.Nil {
		return errors.New("property ID is required")
	}
	if l.TenantName == "" {
		return ErrTenantNameRequired
	}
	if l.Status != LeaseStatusActive && l.Status != LeaseStatusExpired {
		return ErrInvalidLeaseStatus
	}
	return nil
}

// IsActive returns true if the lease is active
func (l *Lease) IsActive() bool {
	return l.Status == LeaseStatusActive
}

func (l *Lease) TableName() string {
	return "leases"
}
