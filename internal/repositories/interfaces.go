package repositories

import (
	"context"
	"time"

	"property-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PropertyRepositoryInterface defines the contract for property repository operations
type PropertyRepositoryInterface interface {
	Create(ctx context.Context, property *models.Property) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error)
	GetByLandlordID(ctx context.Context, landlordID string) ([]models.Property, error)
}

// LeaseRepositoryInterface defines the contract for lease repository operations
type LeaseRepositoryInterface interface {
	Create(ctx context.Context, lease *models.Lease) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Lease, error)
	GetActiveByLandlordID(ctx context.Context, landlordID string) ([]models.Lease, error)
	GetActiveByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]models.Lease, error)
}

// UtilityBillRepositoryInterface defines the contract for utility bill repository operations
type UtilityBillRepositoryInterface interface {
	Create(ctx context.Context, bill *models.UtilityBill) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.UtilityBill, error)
	ExistsForMonth(ctx context.Context, propertyID uuid.UUID, utilityType, billMonth string) (bool, error)
	GetWithQuery(ctx context.Context, query models.BillQuery) ([]models.UtilityBill, error)
	GetUtilityTypes(ctx context.Context, landlordID string) ([]string, error)
	MarkPaid(ctx context.Context, id uuid.UUID, paid bool) error
}

// UtilitySettingRepositoryInterface defines the contract for lease utility setting operations
type UtilitySettingRepositoryInterface interface {
	Create(ctx context.Context, setting *models.LeaseUtilitySetting) error
	GetByLeaseAndType(ctx context.Context, leaseID uuid.UUID, utilityType string) (*models.LeaseUtilitySetting, error)
	GetByLeaseIDs(ctx context.Context, leaseIDs []uuid.UUID) ([]models.LeaseUtilitySetting, error)
}

// UtilityPaymentRepositoryInterface defines the contract for tenant utility payment operations
type UtilityPaymentRepositoryInterface interface {
	CreateWithinBalance(ctx context.Context, payment *models.UtilityPayment, charged decimal.Decimal) (decimal.Decimal, error)
	GetByBillIDs(ctx context.Context, billIDs []uuid.UUID) ([]models.UtilityPayment, error)
}

// AuditLogRepositoryInterface defines the contract for audit log operations
type AuditLogRepositoryInterface interface {
	Create(ctx context.Context, log *models.AuditLog) error
	GetByResource(ctx context.Context, landlordID, resource, resourceID string, offset, limit int) ([]models.AuditLog, int64, error)
	GetByLandlord(ctx context.Context, landlordID string, since *time.Time, offset, limit int) ([]models.AuditLog, int64, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
