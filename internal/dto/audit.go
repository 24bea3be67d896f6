package dto

import (
	"property-ledger/internal/models"
)

// AuditQuery pages through audit entries. Since is a calendar date
// (YYYY-MM-DD) and only applies to the activity feed.
type AuditQuery struct {
	Since  string `query:"since" validate:"omitempty,datetime=2006-01-02"`
	Offset int    `query:"offset" validate:"min=0"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=100"`
}

// AuditPageResponse is one page of audit entries, newest first
type AuditPageResponse struct {
	Entries []models.AuditLog `json:"entries"`
	Total   int64             `json:"total"`
	Offset  int               `json:"offset"`
	Limit   int               `json:"limit"`
}

// NewAuditPageResponse wraps a page of entries for the API
func NewAuditPageResponse(entries []models.AuditLog, total int64, offset, limit int) AuditPageResponse {
	if entries == nil {
		entries = []models.AuditLog{}
	}
	return AuditPageResponse{Entries: entries, Total: total, Offset: offset, Limit: limit}
}
