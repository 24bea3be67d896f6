package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AuditActionBillCreated     = "bill_created"
	AuditActionBillMarkedPaid  = "bill_marked_paid"
	AuditActionBillMarkedDue   = "bill_marked_unpaid"
	AuditActionPaymentRecorded = "payment_recorded"

	AuditResourceUtilityBill = "utility_bill"
)

// AuditLog is one change a landlord made to their ledger
type AuditLog struct {
	ID         uuid.UUID     `gorm:"type:uuid;primary_key" json:"id"`
	LandlordID string        `gorm:"type:varchar(255);not null;index" json:"landlord_id"`
	Action     string        `gorm:"type:varchar(100);not null;index" json:"action"`
	Resource   string        `gorm:"type:varchar(100);not null;index:idx_audit_logs_resource" json:"resource"`
	ResourceID string        `gorm:"type:varchar(255);not null;index:idx_audit_logs_resource" json:"resource_id"`
	RequestID  string        `gorm:"type:varchar(64)" json:"request_id,omitempty"`
	Metadata   AuditMetadata `gorm:"type:text" json:"metadata,omitempty"`
	CreatedAt  time.Time     `gorm:"not null;index" json:"created_at"`
}

func (al *AuditLog) String() string {
	return fmt.Sprintf("%s %s %s/%s by %s", al.CreatedAt.Format(time.RFC3339), al.Action, al.Resource, al.ResourceID, al.LandlordID)
}

func (al *AuditLog) TableName() string {
	return "audit_logs"
}

func (al *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.New()
	}
	if al.CreatedAt.IsZero() {
		al.CreatedAt = time.Now()
	}
	return nil
}

// AuditMetadata holds the string facts recorded with an entry. It is
// stored as a JSON object in a text column, which postgres and sqlite
// both accept.
type AuditMetadata map[string]string

// Get returns the value for key, or "" when absent
func (m AuditMetadata) Get(key string) string {
	return m[key]
}

func (m AuditMetadata) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(map[string]string(m))
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func (m *AuditMetadata) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("audit metadata: unsupported column type %T", src)
	}

	if len(raw) == 0 {
		*m = nil
		return nil
	}
	return json.Unmarshal(raw, (*map[string]string)(m))
}
