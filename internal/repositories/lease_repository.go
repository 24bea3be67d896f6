package repositories

import (
	"context"
	"errors"
	"fmt"

	"property-ledger/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrLeaseNotFound = errors.New("lease not found")

// leaseRepository implements LeaseRepositoryInterface
type leaseRepository struct {
	db *gorm.DB
}

// NewLeaseRepository creates a new lease repository
func NewLeaseRepository(db *gorm.DB) LeaseRepositoryInterface {
	return &leaseRepository{db: db}
}

// Create creates a new lease
func (r *leaseRepository) Create(ctx context.Context, lease *models.Lease) error {
	if err := r.db.WithContext(ctx).Create(lease).Error; err != nil {
		return fmt.Errorf("failed to create lease: %w", err)
	}
	return nil
}

// GetByID retrieves a lease by ID
func (r *leaseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Lease, error) {
	var lease models.Lease
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&lease).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeaseNotFound
		}
		return nil, fmt.Errorf("failed to get lease: %w", err)
	}
	return &lease, nil
}

// GetActiveByLandlordID retrieves a landlord's active leases across all properties
func (r *leaseRepository) GetActiveByLandlordID(ctx context.Context, landlordID string) ([]models.Lease, error) {
	var leases []models.Lease
	if err := r.db.WithContext(ctx).
		Where("landlord_id = ? AND status = ?", landlordID, models.LeaseStatusActive).
		Order("tenant_name ASC").Find(&leases).Error; err != nil {
		return nil, fmt.Errorf("failed to get active leases for landlord: %w", err)
	}
	return leases, nil
}

// GetActiveByPropertyID retrieves the active leases on one property
func (r *leaseRepository) GetActiveByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]models.Lease, error) {
	var leases []models.Lease
	if err := r.db.WithContext(ctx).
		Where("property_id = ? AND status = ?", propertyID, models.LeaseStatusActive).
		Order("tenant_name ASC").Find(&leases).Error; err != nil {
		return nil, fmt.Errorf("failed to get active leases for property: %w", err)
	}
	return leases, nil
}
