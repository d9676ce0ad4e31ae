package services

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/qassab/loyalty-core/internal/app/errors"
	"github.com/qassab/loyalty-core/internal/app/models"
	"gorm.io/gorm"
)

type AuditService struct {
	db *gorm.DB
}

func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{
		db: db,
	}
}

// Log records an admin-originated change next to the ledger. Written
// best-effort after commit; the caller logs and drops failures.
func (s *AuditService) Log(action models.AuditAction, customerID, recordID uuid.UUID, data interface{}, actorID *uuid.UUID) error {
	var dataJSON *string
	if data != nil {
		jsonBytes, err := json.Marshal(data)
		if err != nil {
			return errors.NewInternalServerError(err, "Failed to marshal audit data")
		}
		strJSON := string(jsonBytes)
		dataJSON = &strJSON
	}

	auditLog := &models.AuditLog{
		CustomerID: customerID,
		RecordID:   recordID,
		Action:     action,
		Data:       dataJSON,
		ActorID:    actorID,
	}

	if err := s.db.Create(auditLog).Error; err != nil {
		return errors.NewInternalServerError(err, "Failed to create audit log")
	}

	return nil
}

// GetLogsByCustomer returns the audit trail for one customer, newest first.
func (s *AuditService) GetLogsByCustomer(customerID uuid.UUID, limit int) ([]models.AuditLog, error) {
	if limit <= 0 {
		limit = 50
	}

	var logs []models.AuditLog
	err := s.db.Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to get audit logs")
	}

	return logs, nil
}
