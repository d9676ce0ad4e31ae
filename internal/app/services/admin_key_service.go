package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/qassab/loyalty-core/internal/app/errors"
	"github.com/qassab/loyalty-core/internal/app/models"
	"github.com/qassab/loyalty-core/pkg/adminkey"
	"gorm.io/gorm"
)

type AdminKeyService struct {
	db *gorm.DB
}

func NewAdminKeyService(db *gorm.DB) *AdminKeyService {
	return &AdminKeyService{
		db: db,
	}
}

// CreateKey issues a new key for a staff member. The raw key is only
// returned here; afterwards clients authenticate with it opaquely.
func (s *AdminKeyService) CreateKey(adminID uuid.UUID, keyName string, expiresAt *time.Time) (*models.AdminKey, error) {
	raw, err := adminkey.GenerateKey()
	if err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to generate admin key")
	}

	key := &models.AdminKey{
		AdminID:   adminID,
		KeyName:   keyName,
		Key:       raw,
		ExpiresAt: expiresAt,
	}

	if err := s.db.Create(key).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to create admin key")
	}

	return key, nil
}

// GetByKey resolves a presented key to its record, rejecting unknown,
// deleted and expired keys.
func (s *AdminKeyService) GetByKey(raw string) (*models.AdminKey, error) {
	if !adminkey.HasPrefix(raw) {
		return nil, errors.NewUnauthorizedError("Invalid admin key")
	}

	var key models.AdminKey
	err := s.db.Where("key = ?", raw).First(&key).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewUnauthorizedError("Invalid admin key")
		}
		return nil, errors.NewInternalServerError(err, "Failed to look up admin key")
	}

	if key.IsExpired() {
		return nil, errors.NewUnauthorizedError("Admin key has expired")
	}

	return &key, nil
}

// TouchLastUsed stamps the key, best-effort.
func (s *AdminKeyService) TouchLastUsed(keyID uuid.UUID) error {
	now := time.Now()
	return s.db.Model(&models.AdminKey{}).
		Where("id = ?", keyID).
		Update("last_used_at", now).Error
}
