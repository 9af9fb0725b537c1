package models

import (
	"time"

	"gorm.io/datatypes"
)

// ActivityLog is the durable audit trail. Every mutating lifecycle
// operation writes one entry; Details carries a structured payload
// (previous/new status, warnings, amounts, related ids).
type ActivityLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Action     string         `gorm:"size:64;index" json:"action"`
	EntityType string         `gorm:"column:entity_type;size:64;index" json:"entity_type"`
	EntityID   uint           `gorm:"column:entity_id;index" json:"entity_id"`
	Details    datatypes.JSON `gorm:"column:details" json:"details,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
