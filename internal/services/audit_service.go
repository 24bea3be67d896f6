package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"property-ledger/internal/models"
	"property-ledger/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrInvalidAuditLog = errors.New("invalid audit log")
	ErrAuditRetention  = errors.New("audit retention must be positive")
)

// AuditService keeps the trail of changes landlords make to their bills
type AuditService struct {
	repo   repositories.AuditLogRepositoryInterface
	logger *slog.Logger
	now    func() time.Time
}

// NewAuditService creates a new audit service
func NewAuditService(repo repositories.AuditLogRepositoryInterface, logger *slog.Logger) *AuditService {
	return &AuditService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

func validAuditAction(action string) bool {
	switch action {
	case models.AuditActionBillCreated,
		models.AuditActionBillMarkedPaid,
		models.AuditActionBillMarkedDue,
		models.AuditActionPaymentRecorded:
		return true
	}
	return false
}

func (s *AuditService) create(ctx context.Context, log *models.AuditLog) error {
	if log == nil || log.LandlordID == "" || !validAuditAction(log.Action) {
		return ErrInvalidAuditLog
	}
	log.RequestID = RequestIDFromContext(ctx)

	if err := s.repo.Create(ctx, log); err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	return nil
}

// RecordBillCreated logs a new bill
func (s *AuditService) RecordBillCreated(ctx context.Context, bill *models.UtilityBill) error {
	return s.create(ctx, &models.AuditLog{
		LandlordID: bill.LandlordID,
		Action:     models.AuditActionBillCreated,
		Resource:   models.AuditResourceUtilityBill,
		ResourceID: bill.ID.String(),
		Metadata: models.AuditMetadata{
			"property_id":  bill.PropertyID.String(),
			"utility_type": bill.UtilityType,
			"bill_month":   bill.BillMonth,
			"total_amount": bill.TotalAmount.StringFixed(2),
		},
	})
}

// RecordLandlordPaid logs the landlord marking a bill paid or unpaid
func (s *AuditService) RecordLandlordPaid(ctx context.Context, bill *models.UtilityBill, previous bool) error {
	action := models.AuditActionBillMarkedDue
	if bill.LandlordPaidUtilityCompany {
		action = models.AuditActionBillMarkedPaid
	}

	return s.create(ctx, &models.AuditLog{
		LandlordID: bill.LandlordID,
		Action:     action,
		Resource:   models.AuditResourceUtilityBill,
		ResourceID: bill.ID.String(),
		Metadata:   models.AuditMetadata{"previous": strconv.FormatBool(previous)},
	})
}

// RecordPayment logs a tenant payment against the bill it pays toward
func (s *AuditService) RecordPayment(ctx context.Context, bill *models.UtilityBill, payment *models.UtilityPayment) error {
	return s.create(ctx, &models.AuditLog{
		LandlordID: bill.LandlordID,
		Action:     models.AuditActionPaymentRecorded,
		Resource:   models.AuditResourceUtilityBill,
		ResourceID: bill.ID.String(),
		Metadata: models.AuditMetadata{
			"payment_id": payment.ID.String(),
			"lease_id":   payment.LeaseID.String(),
			"amount":     payment.AmountPaid.StringFixed(2),
		},
	})
}

// GetBillHistory lists the landlord's audit entries for one bill, newest
// first. Bills of other landlords have no entries.
func (s *AuditService) GetBillHistory(ctx context.Context, landlordID string, billID uuid.UUID, offset, limit int) ([]models.AuditLog, int64, error) {
	return s.repo.GetByResource(ctx, landlordID, models.AuditResourceUtilityBill, billID.String(), offset, limit)
}

// GetActivity lists the landlord's audit entries, newest first
func (s *AuditService) GetActivity(ctx context.Context, landlordID string, since *time.Time, offset, limit int) ([]models.AuditLog, int64, error) {
	return s.repo.GetByLandlord(ctx, landlordID, since, offset, limit)
}

// Prune deletes entries older than retention
func (s *AuditService) Prune(ctx context.Context, retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, ErrAuditRetention
	}

	deleted, err := s.repo.DeleteOlderThan(ctx, s.now().Add(-retention))
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		s.logger.InfoContext(ctx, "pruned audit logs",
			slog.Int64("deleted", deleted),
			slog.String("retention", retention.String()),
		)
	}
	return deleted, nil
}

// StartPruner prunes on every interval until ctx is cancelled
func (s *AuditService) StartPruner(ctx context.Context, retention, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.Prune(ctx, retention); err != nil && ctx.Err() == nil {
				s.logger.WarnContext(ctx, "audit prune failed", slog.String("error", err.Error()))
			}
		}
	}
}
