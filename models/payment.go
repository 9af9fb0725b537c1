package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	PaymentCompleted = "completed"
)

// Payment is the local ledger record created once per checkout. There
// is no external gateway; the amount covers the stay plus all billed
// consumptions.
type Payment struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ReservationID uint   `gorm:"index;column:reservation_id" json:"reservation_id"`
	ReferenceCode string `gorm:"column:reference_code;size:64;uniqueIndex" json:"reference_code"`

	Amount      decimal.Decimal `gorm:"column:amount;type:decimal(10,2)" json:"amount"`
	Method      string          `gorm:"size:64" json:"method"`
	Status      string          `gorm:"size:32;default:completed" json:"status"`
	PaymentDate time.Time       `gorm:"column:payment_date" json:"payment_date"`
}
