package repositories

import (
	"context"
	"errors"
	"fmt"

	"property-ledger/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrPropertyNotFound = errors.New("property not found")

// propertyRepository implements PropertyRepositoryInterface
type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates a new property repository
func NewPropertyRepository(db *gorm.DB) PropertyRepositoryInterface {
	return &propertyRepository{db: db}
}

// Create creates a new property
func (r *propertyRepository) Create(ctx context.Context, property *models.Property) error {
	if err := r.db.WithContext(ctx).Create(property).Error; err != nil {
		return fmt.Errorf("failed to create property: %w", err)
	}
	return nil
}

// GetByID retrieves a property by ID
func (r *propertyRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	var property models.Property
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&property).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	return &property, nil
}

// GetByLandlordID retrieves every property a landlord owns, ordered by name
func (r *propertyRepository) GetByLandlordID(ctx context.Context, landlordID string) ([]models.Property, error) {
	var properties []models.Property
	if err := r.db.WithContext(ctx).Where("landlord_id = ?", landlordID).
		Order("name ASC").Find(&properties).Error; err != nil {
		return nil, fmt.Errorf("failed to get properties for landlord: %w", err)
	}
	return properties, nil
}
