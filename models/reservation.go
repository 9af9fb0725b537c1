package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReservationStatus represents where a reservation is in its lifecycle.
type ReservationStatus string

const (
	ReservationConfirmed  ReservationStatus = "confirmed"
	ReservationCheckedIn  ReservationStatus = "checked_in"
	ReservationCheckedOut ReservationStatus = "checked_out"
	ReservationCancelled  ReservationStatus = "cancelled"
	ReservationNoShow     ReservationStatus = "no_show"
)

// validReservationTransitions is the single source of truth for the
// reservation state machine. The key is the current status, the value
// is the set of statuses reachable from it.
var validReservationTransitions = map[ReservationStatus][]ReservationStatus{
	ReservationConfirmed:  {ReservationCheckedIn, ReservationCancelled, ReservationNoShow},
	ReservationCheckedIn:  {ReservationCheckedOut, ReservationCancelled},
	ReservationCheckedOut: {},
	ReservationCancelled:  {},
	ReservationNoShow:     {},
}

// IsValid returns true if the status is a recognized reservation status.
func (s ReservationStatus) IsValid() bool {
	_, exists := validReservationTransitions[s]
	return exists
}

// CanTransitionTo returns true if a transition from this status to the
// target is allowed by the state machine.
func (s ReservationStatus) CanTransitionTo(target ReservationStatus) bool {
	allowed, exists := validReservationTransitions[s]
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
func (s ReservationStatus) IsTerminal() bool {
	allowed, exists := validReservationTransitions[s]
	if !exists {
		return true
	}
	return len(allowed) == 0
}

// String returns the string representation of the status.
func (s ReservationStatus) String() string {
	return string(s)
}

// Reservation is the aggregate root for a guest's stay. It owns its
// consumptions and the payment created at checkout; the room is
// referenced, not owned.
type Reservation struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	GuestID uint  `gorm:"index;column:guest_id" json:"guest_id"`
	RoomID  uint  `gorm:"index;column:room_id" json:"room_id"`
	Guest   Guest `gorm:"foreignKey:GuestID" json:"guest,omitempty"`
	Room    Room  `gorm:"foreignKey:RoomID" json:"room,omitempty"`

	CheckInDate  time.Time  `gorm:"column:check_in_date" json:"check_in_date"`
	CheckOutDate *time.Time `gorm:"column:check_out_date" json:"check_out_date,omitempty"`

	// Stay cost only; consumptions are billed separately at checkout.
	TotalAmount decimal.Decimal   `gorm:"column:total_amount;type:decimal(10,2)" json:"total_amount"`
	Status      ReservationStatus `gorm:"column:status;size:32;index;default:confirmed" json:"status"`

	ActualCheckInDate  *time.Time `gorm:"column:actual_check_in_date" json:"actual_check_in_date,omitempty"`
	ActualCheckOutDate *time.Time `gorm:"column:actual_check_out_date" json:"actual_check_out_date,omitempty"`

	CancellationReason string     `gorm:"column:cancellation_reason;type:text" json:"cancellation_reason,omitempty"`
	CancellationDate   *time.Time `gorm:"column:cancellation_date" json:"cancellation_date,omitempty"`

	SpecialRequests string `gorm:"column:special_requests;type:text" json:"special_requests,omitempty"`

	PaymentID *uint `gorm:"column:payment_id;index" json:"payment_id,omitempty"`

	Consumptions []Consumption `gorm:"foreignKey:ReservationID" json:"consumptions,omitempty"`
}
