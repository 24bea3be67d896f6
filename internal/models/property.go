package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	PropertyStatusActive   = "active"
	PropertyStatusInactive = "inactive"
)

var (
	ErrLandlordRequired = errors.New("landlord ID is required")
	ErrPropertyName     = errors.New("property name is required")
)

// Property is a rental property owned by a landlord
type Property struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	LandlordID  string          `gorm:"type:varchar(255);not null;index" json:"landlord_id"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Address     string          `gorm:"type:text" json:"address"`
	Type        string          `gorm:"type:varchar(50)" json:"type,omitempty"`
	Status      string          `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	MonthlyRent decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"monthly_rent"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Property
func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	if p.Status == "" {
		p.Status = PropertyStatusActive
	}

	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}

	return p.Validate()
}

// Validate validates the property fields
func (p *Property) Validate() error {
	if p.LandlordID == "" {
		return ErrLandlordRequired
	}
	if p.Name == "" {
		return ErrPropertyName
	}
	return nil
}

// IsOwnedBy reports whether the property belongs to the landlord
func (p *Property) IsOwnedBy(landlordID string) bool {
	return p.LandlordID == landlordID
}

func (p *Property) TableName() string {
	return "properties"
}
