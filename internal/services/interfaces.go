package services

import (
	"context"
	"time"

	"property-ledger/internal/dto"
	"property-ledger/internal/filters"
	"property-ledger/internal/models"

	"github.com/google/uuid"
)

// UtilityBillServiceInterface defines landlord utility bill operations
type UtilityBillServiceInterface interface {
	GetPageData(ctx context.Context, landlordID string, query models.BillQuery) (*models.UtilityPageData, error)
	AddBill(ctx context.Context, landlordID string, req *dto.CreateUtilityBillRequest) (*models.UtilityBill, error)
	SetLandlordPaid(ctx context.Context, landlordID string, billID uuid.UUID, paid bool) (*models.UtilityBill, error)
	RecordPayment(ctx context.Context, landlordID string, billID uuid.UUID, req *dto.RecordPaymentRequest) (*models.UtilityPayment, error)
	GetFilterOptions(ctx context.Context, landlordID string, propertyID uuid.UUID) (*models.FilterOptions, error)
}

// AuditServiceInterface records and lists changes landlords make to their bills
type AuditServiceInterface interface {
	RecordBillCreated(ctx context.Context, bill *models.UtilityBill) error
	RecordLandlordPaid(ctx context.Context, bill *models.UtilityBill, previous bool) error
	RecordPayment(ctx context.Context, bill *models.UtilityBill, payment *models.UtilityPayment) error
	GetBillHistory(ctx context.Context, landlordID string, billID uuid.UUID, offset, limit int) ([]models.AuditLog, int64, error)
	GetActivity(ctx context.Context, landlordID string, since *time.Time, offset, limit int) ([]models.AuditLog, int64, error)
	Prune(ctx context.Context, retention time.Duration) (int64, error)
	StartPruner(ctx context.Context, retention, interval time.Duration)
}

// ChargeCalculatorInterface derives tenant charges for a set of bills
type ChargeCalculatorInterface interface {
	ChargesForBills(ctx context.Context, bills []models.UtilityBill, leases []models.Lease) ([]models.TenantCharge, error)
}

// FilterSessionServiceInterface hosts filter state for API clients.
// Every operation is scoped to the landlord that created the session.
type FilterSessionServiceInterface interface {
	Create(ctx context.Context, landlordID string, initial *filters.FilterUpdate) (*FilterSession, error)
	Get(ctx context.Context, landlordID string, sessionID uuid.UUID) (*FilterSession, error)
	UpdateFilters(ctx context.Context, landlordID string, sessionID uuid.UUID, update filters.FilterUpdate) (*FilterSession, error)
	ResetFilters(ctx context.Context, landlordID string, sessionID uuid.UUID) (*FilterSession, error)
	Refresh(ctx context.Context, landlordID string, sessionID uuid.UUID) (*FilterSession, error)
	Delete(ctx context.Context, landlordID string, sessionID uuid.UUID) error
	StartJanitor(ctx context.Context)
	ActiveSessions() int
}

// TokenVerifierInterface validates identity provider bearer tokens
type TokenVerifierInterface interface {
	Verify(tokenString string) (*models.IdentityClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type FilterLoggerInterface interface {
	LogSessionCreated(ctx context.Context, sessionID uuid.UUID, landlordID string)
	LogFiltersUpdated(ctx context.Context, sessionID uuid.UUID, version uint64, fields []string)
	LogFiltersReset(ctx context.Context, sessionID uuid.UUID, version uint64)
	LogResultsComputed(ctx context.Context, sessionID uuid.UUID, version uint64, bills, charges int, durationMs int64)
	LogStaleResults(ctx context.Context, sessionID uuid.UUID, computedFor, current uint64, applied bool)
	LogComputeFailed(ctx context.Context, sessionID uuid.UUID, version uint64, errorMsg string)
	LogSessionExpired(ctx context.Context, sessionID uuid.UUID, idle time.Duration)
	LogSessionDeleted(ctx context.Context, sessionID uuid.UUID)
	LogAuthorizationFailure(ctx context.Context, operation string, landlordID string, resourceID uuid.UUID)
}
