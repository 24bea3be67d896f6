package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"property-ledger/internal/models"

	"gorm.io/gorm"
)

const maxAuditPageSize = 100

// auditLogRepository implements AuditLogRepositoryInterface
type auditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(db *gorm.DB) AuditLogRepositoryInterface {
	return &auditLogRepository{db: db}
}

// Create creates a new audit log entry
func (r *auditLogRepository) Create(ctx context.Context, log *models.AuditLog) error {
	if log == nil {
		return errors.New("audit log cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(log).Error; err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	return nil
}

// GetByResource retrieves a landlord's audit entries for one resource, newest first
func (r *auditLogRepository) GetByResource(ctx context.Context, landlordID, resource, resourceID string, offset, limit int) ([]models.AuditLog, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.AuditLog{}).
		Where("landlord_id = ? AND resource = ? AND resource_id = ?", landlordID, resource, resourceID)
	return r.page(query, offset, limit)
}

// GetByLandlord retrieves a landlord's audit entries, optionally only those
// created at or after since
func (r *auditLogRepository) GetByLandlord(ctx context.Context, landlordID string, since *time.Time, offset, limit int) ([]models.AuditLog, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.AuditLog{}).Where("landlord_id = ?", landlordID)
	if since != nil {
		query = query.Where("created_at >= ?", *since)
	}
	return r.page(query, offset, limit)
}

// DeleteOlderThan removes audit entries created before cutoff
func (r *auditLogRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&models.AuditLog{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete old audit logs: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *auditLogRepository) page(query *gorm.DB, offset, limit int) ([]models.AuditLog, int64, error) {
	if limit <= 0 || limit > maxAuditPageSize {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count audit logs: %w", err)
	}

	var logs []models.AuditLog
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&logs).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get audit logs: %w", err)
	}
	return logs, total, nil
}
