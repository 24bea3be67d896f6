package repositories

import (
	"context"
	"errors"
	"fmt"

	"property-ledger/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrUtilitySettingNotFound = errors.New("utility setting not found")

// utilitySettingRepository implements UtilitySettingRepositoryInterface
type utilitySettingRepository struct {
	db *gorm.DB
}

// NewUtilitySettingRepository creates a new lease utility setting repository
func NewUtilitySettingRepository(db *gorm.DB) UtilitySettingRepositoryInterface {
	return &utilitySettingRepository{db: db}
}

// Create creates a new lease utility setting
func (r *utilitySettingRepository) Create(ctx context.Context, setting *models.LeaseUtilitySetting) error {
	if err := r.db.WithContext(ctx).Create(setting).Error; err != nil {
		return fmt.Errorf("failed to create utility setting: %w", err)
	}
	return nil
}

// GetByLeaseAndType retrieves the setting for one lease and utility type
func (r *utilitySettingRepository) GetByLeaseAndType(ctx context.Context, leaseID uuid.UUID, utilityType string) (*models.LeaseUtilitySetting, error) {
	var setting models.LeaseUtilitySetting
	err := r.db.WithContext(ctx).
		Where("lease_id = ? AND utility_type = ?", leaseID, utilityType).
		First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUtilitySettingNotFound
		}
		return nil, fmt.Errorf("failed to get utility setting: %w", err)
	}
	return &setting, nil
}

// GetByLeaseIDs retrieves every setting for the given leases
func (r *utilitySettingRepository) GetByLeaseIDs(ctx context.Context, leaseIDs []uuid.UUID) ([]models.LeaseUtilitySetting, error) {
	var settings []models.LeaseUtilitySetting
	if len(leaseIDs) == 0 {
		return settings, nil
	}

	if err := r.db.WithContext(ctx).Where("lease_id IN ?", leaseIDs).Find(&settings).Error; err != nil {
		return nil, fmt.Errorf("failed to get utility settings: %w", err)
	}
	return settings, nil
}
