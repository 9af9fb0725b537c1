package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RoomStatus represents the operational state of a room.
type RoomStatus string

const (
	RoomAvailable    RoomStatus = "available"
	RoomOccupied     RoomStatus = "occupied"
	RoomMaintenance  RoomStatus = "maintenance"
	RoomReserved     RoomStatus = "reserved"
	RoomOutOfService RoomStatus = "out_of_service"
)

// BlocksCheckIn returns true if a room in this status cannot receive a
// new check-in.
func (s RoomStatus) BlocksCheckIn() bool {
	switch s {
	case RoomOccupied, RoomMaintenance, RoomOutOfService:
		return true
	}
	return false
}

type Room struct {
	gorm.Model

	Number string     `json:"number" gorm:"column:number;uniqueIndex;type:varchar(50)"`
	Type   string     `json:"type" gorm:"column:type;size:64"`
	Status RoomStatus `json:"status" gorm:"column:status;size:32;index;default:available"`
	Floor  string     `json:"floor" gorm:"type:varchar(10)"`

	PricePerNight decimal.Decimal `json:"price_per_night" gorm:"column:price_per_night;type:decimal(10,2)"`
	MaxOccupancy  int             `json:"max_occupancy" gorm:"column:max_occupancy"`
	Description   string          `json:"description" gorm:"type:text"`
}
