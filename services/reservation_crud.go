package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Samoo1234/HotelCosta-sub000/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreateReservation registers a new confirmed reservation. The room is
// marked reserved so the front desk sees it as committed inventory.
// Overlap with other reservations on the same room is not checked
// here; availability is resolved at booking time by the caller.
func (s *ReservationService) CreateReservation(r *models.Reservation) error {
	if r.GuestID == 0 {
		return &ValidationError{Result: rejected("guest is required")}
	}
	if r.RoomID == 0 {
		return &ValidationError{Result: rejected("room is required")}
	}
	if r.CheckInDate.IsZero() {
		return &ValidationError{Result: rejected("check-in date is required")}
	}
	if r.CheckOutDate != nil && !r.CheckOutDate.After(r.CheckInDate) {
		return &ValidationError{Result: rejected("check-out date must be after the check-in date")}
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var guest models.Guest
		if err := tx.First(&guest, r.GuestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &ValidationError{Result: rejected(fmt.Sprintf("guest %d not found", r.GuestID))}
			}
			return fmt.Errorf("failed to check guest %d: %w", r.GuestID, err)
		}

		var room models.Room
		if err := tx.First(&room, r.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &ValidationError{Result: rejected(fmt.Sprintf("room %d not found", r.RoomID))}
			}
			return fmt.Errorf("failed to check room %d: %w", r.RoomID, err)
		}

		r.Status = models.ReservationConfirmed
		if r.TotalAmount.IsZero() && r.CheckOutDate != nil {
			nights := int(r.CheckOutDate.Sub(r.CheckInDate).Hours() / 24)
			if nights < 1 {
				nights = 1
			}
			r.TotalAmount = room.PricePerNight.Mul(decimal.NewFromInt(int64(nights)))
		}

		if err := tx.Create(r).Error; err != nil {
			return fmt.Errorf("failed to create reservation: %w", err)
		}

		if room.Status == models.RoomAvailable {
			if err := tx.Model(&models.Room{}).Where("id = ?", room.ID).
				Update("status", models.RoomReserved).Error; err != nil {
				return fmt.Errorf("failed to update room %d status: %w", room.ID, err)
			}
		}

		return s.Activity.Record(tx, "reservation.created", "reservation", r.ID, map[string]interface{}{
			"guest_id":       r.GuestID,
			"room_id":        r.RoomID,
			"check_in_date":  r.CheckInDate.Format("2006-01-02"),
			"check_out_date": formatDatePtr(r.CheckOutDate),
			"total_amount":   r.TotalAmount,
		})
	})
}

// GetReservations lists reservations with guest and room loaded,
// optionally filtered by status.
func (s *ReservationService) GetReservations(status models.ReservationStatus) ([]models.Reservation, error) {
	q := s.DB.Preload("Guest").Preload("Room").Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var list []models.Reservation
	if err := q.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve reservations: %w", err)
	}
	return list, nil
}

// GetReservationByID returns one reservation with guest, room and
// consumptions loaded.
func (s *ReservationService) GetReservationByID(id uint) (*models.Reservation, error) {
	var r models.Reservation
	err := s.DB.Preload("Guest").Preload("Room").Preload("Consumptions").Preload("Consumptions.Product").
		First(&r, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to retrieve reservation %d: %w", id, err)
	}
	return &r, nil
}

// reservationEditableFields is the whitelist for plain updates; status
// changes only happen through the lifecycle operations.
var reservationEditableFields = map[string]bool{
	"check_in_date":    true,
	"check_out_date":   true,
	"total_amount":     true,
	"special_requests": true,
}

// UpdateReservation applies a restricted field update to a
// non-terminal reservation.
func (s *ReservationService) UpdateReservation(id uint, fields map[string]interface{}) error {
	updates := map[string]interface{}{}
	for k, v := range fields {
		if reservationEditableFields[k] {
			updates[k] = v
		}
	}
	if len(updates) == 0 {
		return &ValidationError{Result: rejected("no editable fields in request")}
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		r, err := lockReservation(tx, id)
		if err != nil {
			return err
		}
		if r.Status.IsTerminal() {
			return &ValidationError{Result: rejected(fmt.Sprintf("reservation in status %s cannot be edited", r.Status))}
		}

		if err := tx.Model(&models.Reservation{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update reservation %d: %w", id, err)
		}

		return s.Activity.Record(tx, "reservation.updated", "reservation", id, map[string]interface{}{
			"fields": updates,
		})
	})
}

// DeleteReservation soft-deletes a reservation that is not currently
// checked in.
func (s *ReservationService) DeleteReservation(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		r, err := lockReservation(tx, id)
		if err != nil {
			return err
		}
		if r.Status == models.ReservationCheckedIn {
			return &ValidationError{Result: rejected("a checked-in reservation cannot be deleted; check out or cancel it first")}
		}

		if err := tx.Delete(&models.Reservation{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete reservation %d: %w", id, err)
		}

		if r.Status == models.ReservationConfirmed && r.Room.Status == models.RoomReserved {
			if err := tx.Model(&models.Room{}).Where("id = ?", r.RoomID).
				Update("status", models.RoomAvailable).Error; err != nil {
				return fmt.Errorf("failed to update room %d status: %w", r.RoomID, err)
			}
		}

		return s.Activity.Record(tx, "reservation.deleted", "reservation", id, map[string]interface{}{
			"status_at_deletion": r.Status,
		})
	})
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
