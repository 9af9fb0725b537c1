package models

import (
	"time"

	"gorm.io/gorm"
)

type Guest struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	FullName    string `json:"full_name" gorm:"column:full_name;size:255"`
	Email       string `json:"email" gorm:"size:255;index"`
	Phone       string `json:"phone" gorm:"size:64"`
	Document    string `json:"document" gorm:"size:64"`
	Nationality string `json:"nationality" gorm:"size:64"`
	Notes       string `json:"notes,omitempty" gorm:"type:text"`
}
