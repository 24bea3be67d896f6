package repositories

import (
	"context"
	"errors"
	"fmt"

	"property-ledger/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrUtilityBillNotFound  = errors.New("utility bill not found")
	ErrDuplicateUtilityBill = errors.New("a bill for this utility and month already exists")
)

// utilityBillRepository implements UtilityBillRepositoryInterface
type utilityBillRepository struct {
	db *gorm.DB
}

// NewUtilityBillRepository creates a new utility bill repository
func NewUtilityBillRepository(db *gorm.DB) UtilityBillRepositoryInterface {
	return &utilityBillRepository{db: db}
}

// Create creates a new utility bill
func (r *utilityBillRepository) Create(ctx context.Context, bill *models.UtilityBill) error {
	if err := r.db.WithContext(ctx).Create(bill).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateUtilityBill
		}
		return fmt.Errorf("failed to create utility bill: %w", err)
	}
	return nil
}

// GetByID retrieves a utility bill by ID
func (r *utilityBillRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.UtilityBill, error) {
	var bill models.UtilityBill
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&bill).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUtilityBillNotFound
		}
		return nil, fmt.Errorf("failed to get utility bill: %w", err)
	}
	return &bill, nil
}

// ExistsForMonth checks whether a property already has a bill of the type for the month
func (r *utilityBillRepository) ExistsForMonth(ctx context.Context, propertyID uuid.UUID, utilityType, billMonth string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.UtilityBill{}).
		Where("property_id = ? AND utility_type = ? AND bill_month = ?", propertyID, utilityType, billMonth).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check existing utility bill: %w", err)
	}
	return count > 0, nil
}

// GetWithQuery retrieves a landlord's bills narrowed by property and month range,
// newest month first and then by utility type
func (r *utilityBillRepository) GetWithQuery(ctx context.Context, query models.BillQuery) ([]models.UtilityBill, error) {
	var bills []models.UtilityBill

	q := r.db.WithContext(ctx).Where("landlord_id = ?", query.LandlordID)
	if query.PropertyID != uuid.Nil {
		q = q.Where("property_id = ?", query.PropertyID)
	}
	if query.HasMonthRange() {
		q = q.Where("bill_month >= ? AND bill_month <= ?", query.StartMonth, query.EndMonth)
	}

	if err := q.Order("bill_month DESC").Order("utility_type ASC").Find(&bills).Error; err != nil {
		return nil, fmt.Errorf("failed to get utility bills: %w", err)
	}
	return bills, nil
}

// GetUtilityTypes returns the distinct utility types on a landlord's bills, sorted
func (r *utilityBillRepository) GetUtilityTypes(ctx context.Context, landlordID string) ([]string, error) {
	var types []string
	err := r.db.WithContext(ctx).Model(&models.UtilityBill{}).
		Where("landlord_id = ?", landlordID).
		Distinct("utility_type").
		Order("utility_type ASC").
		Pluck("utility_type", &types).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get utility types: %w", err)
	}
	return types, nil
}

// MarkPaid records whether the landlord has paid the utility company
func (r *utilityBillRepository) MarkPaid(ctx context.Context, id uuid.UUID, paid bool) error {
	result := r.db.WithContext(ctx).Model(&models.UtilityBill{ID: id}).
		Update("landlord_paid_utility_company", paid)
	if result.Error != nil {
		return fmt.Errorf("failed to update utility bill: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrUtilityBillNotFound
	}
	return nil
}
