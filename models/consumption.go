package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ConsumptionStatus tracks a room charge through the billing ledger.
type ConsumptionStatus string

const (
	ConsumptionPending   ConsumptionStatus = "pending"
	ConsumptionBilled    ConsumptionStatus = "billed"
	ConsumptionPaid      ConsumptionStatus = "paid"
	ConsumptionCancelled ConsumptionStatus = "cancelled"
)

// validConsumptionTransitions defines the ledger state machine:
// pending charges are either billed at finalization or cancelled, and
// billed charges become paid when the checkout payment is created.
var validConsumptionTransitions = map[ConsumptionStatus][]ConsumptionStatus{
	ConsumptionPending:   {ConsumptionBilled, ConsumptionCancelled},
	ConsumptionBilled:    {ConsumptionPaid},
	ConsumptionPaid:      {},
	ConsumptionCancelled: {},
}

// CanTransitionTo returns true if the ledger allows moving this status
// to the target.
func (s ConsumptionStatus) CanTransitionTo(target ConsumptionStatus) bool {
	allowed, exists := validConsumptionTransitions[s]
	if !exists {
		return false
	}
	for _, t := range allowed {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no further transitions are possible.
func (s ConsumptionStatus) IsTerminal() bool {
	allowed, exists := validConsumptionTransitions[s]
	if !exists {
		return true
	}
	return len(allowed) == 0
}

// String returns the string representation of the status.
func (s ConsumptionStatus) String() string {
	return string(s)
}

// Consumption is a single charge against a reservation. UnitPrice is a
// snapshot of the product price at registration time and TotalAmount is
// denormalized as unit_price * quantity.
type Consumption struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ReservationID uint    `gorm:"index;column:reservation_id" json:"reservation_id"`
	ProductID     uint    `gorm:"index;column:product_id" json:"product_id"`
	Product       Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`

	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"column:unit_price;type:decimal(10,2)" json:"unit_price"`
	TotalAmount decimal.Decimal `gorm:"column:total_amount;type:decimal(10,2)" json:"total_amount"`

	Status          ConsumptionStatus `gorm:"column:status;size:32;index;default:pending" json:"status"`
	ConsumptionDate time.Time         `gorm:"column:consumption_date" json:"consumption_date"`

	// Set when the checkout payment settles this charge.
	PaymentID *uint `gorm:"column:payment_id;index" json:"payment_id,omitempty"`
}
