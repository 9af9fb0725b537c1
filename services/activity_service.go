package services

import (
	"encoding/json"
	"fmt"

	"github.com/Samoo1234/HotelCosta-sub000/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActivityService writes and reads the audit trail.
type ActivityService struct {
	DB *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{DB: db}
}

// Record writes one audit entry through tx so the entry commits or
// rolls back together with the mutation it describes.
func (s *ActivityService) Record(tx *gorm.DB, action, entityType string, entityID uint, details interface{}) error {
	var payload datatypes.JSON
	if details != nil {
		raw, err := json.Marshal(details)
		if err != nil {
			return fmt.Errorf("failed to encode activity details: %w", err)
		}
		payload = datatypes.JSON(raw)
	}

	entry := models.ActivityLog{
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    payload,
	}
	if err := tx.Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to write activity log: %w", err)
	}
	return nil
}

// Recent returns the latest entries, optionally filtered by entity
// type and id (zero id means any).
func (s *ActivityService) Recent(entityType string, entityID uint, limit int) ([]models.ActivityLog, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	q := s.DB.Order("id DESC").Limit(limit)
	if entityType != "" {
		q = q.Where("entity_type = ?", entityType)
	}
	if entityID != 0 {
		q = q.Where("entity_id = ?", entityID)
	}

	var entries []models.ActivityLog
	if err := q.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to load activity log: %w", err)
	}
	return entries, nil
}
